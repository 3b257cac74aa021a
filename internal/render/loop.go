package render

import (
	"context"
	"image"
	"time"

	"github.com/litescript/ls-starfield/internal/logging"
	"github.com/litescript/ls-starfield/internal/starfield"
)

// DefaultFPS is the real-time frame rate.
const DefaultFPS = 60

// Loop advances a world one step per frame, renders it and hands the frame
// to every sink. Loop is not safe for concurrent use.
type Loop struct {
	world    *starfield.World
	renderer *Renderer
	sinks    []Sink
	interval time.Duration
	logger   *logging.Logger

	elapsed time.Duration
	frames  uint64
	failing map[int]bool // sinks whose last Present failed
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithFPS sets the real-time frame rate.
func WithFPS(fps int) LoopOption {
	return func(l *Loop) {
		if fps > 0 {
			l.interval = time.Second / time.Duration(fps)
		}
	}
}

// WithSinks adds frame sinks.
func WithSinks(sinks ...Sink) LoopOption {
	return func(l *Loop) {
		l.sinks = append(l.sinks, sinks...)
	}
}

// WithLogger sets the logger used for sink failures.
func WithLogger(logger *logging.Logger) LoopOption {
	return func(l *Loop) {
		l.logger = logger
	}
}

// NewLoop creates a frame loop over world and renderer.
func NewLoop(world *starfield.World, renderer *Renderer, opts ...LoopOption) *Loop {
	l := &Loop{
		world:    world,
		renderer: renderer,
		interval: time.Second / DefaultFPS,
		logger:   logging.Discard(),
		failing:  make(map[int]bool),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// World returns the animated world.
func (l *Loop) World() *starfield.World {
	return l.world
}

// Interval returns the real-time frame interval.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Elapsed returns the animation time accumulated so far.
func (l *Loop) Elapsed() time.Duration {
	return l.elapsed
}

// Frames returns the number of frames rendered.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Advance runs as many frames as fit in d, rounding up, without sleeping.
// It returns the last rendered frame, which is reused by the next call.
func (l *Loop) Advance(d time.Duration) image.Image {
	n := (d + l.interval - 1) / l.interval
	for i := time.Duration(0); i < n; i++ {
		l.Tick()
	}
	return l.renderer.canvas.Image()
}

// Tick performs one frame: step the world, render at the current animation
// time, hand the frame to the sinks, then move the clock forward.
func (l *Loop) Tick() *image.RGBA {
	l.world.Step()
	img := l.renderer.Draw(l.world, l.elapsed)
	l.elapsed += l.interval
	l.frames++

	for i, s := range l.sinks {
		err := s.Present(img)
		switch {
		case err != nil && !l.failing[i]:
			l.logger.Warn("Frame sink %d failed: %v", i, err)
			l.failing[i] = true
		case err != nil:
			l.logger.Debug("Frame sink %d still failing: %v", i, err)
		case l.failing[i]:
			l.logger.Info("Frame sink %d recovered", i)
			delete(l.failing, i)
		}
	}
	return img
}

// Run ticks at the frame interval until ctx is cancelled. The first frame
// is rendered immediately.
func (l *Loop) Run(ctx context.Context) error {
	l.Tick()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.logger.Debug("Frame loop shutting down after %d frames", l.frames)
			return ctx.Err()
		case <-ticker.C:
			l.Tick()
		}
	}
}
