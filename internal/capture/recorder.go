package capture

import (
	"bytes"
	"context"
	"errors"
	"image"
	"sync/atomic"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/litescript/ls-starfield/internal/logging"
)

// progressBuffer lets intermediate updates queue while the consumer is busy.
const progressBuffer = 16

// FrameSource provides the most recently rendered frame, or nil before the
// first one.
type FrameSource interface {
	LatestFrame() image.Image
}

// Recorder captures frames from a FrameSource on its own timer. Only one
// recording runs at a time.
type Recorder struct {
	src    FrameSource
	opts   Options
	logger *logging.Logger

	recording atomic.Bool
}

// NewRecorder creates a recorder. A nil logger discards output.
func NewRecorder(src FrameSource, opts Options, logger *logging.Logger) *Recorder {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Recorder{src: src, opts: opts, logger: logger}
}

// Options returns the recording options.
func (r *Recorder) Options() Options {
	return r.opts
}

// Recording reports whether a recording is in progress.
func (r *Recorder) Recording() bool {
	return r.recording.Load()
}

// Start begins a recording. Updates arrive on the returned channel, which
// is closed after a final PhaseDone or PhaseFailed update. Cancelling ctx
// aborts the recording.
func (r *Recorder) Start(ctx context.Context) (<-chan Progress, error) {
	if err := r.opts.Validate(); err != nil {
		return nil, err
	}
	if !r.recording.CompareAndSwap(false, true) {
		return nil, ErrAlreadyRecording
	}

	ch := make(chan Progress, progressBuffer)
	go r.run(ctx, ch)
	return ch, nil
}

func (r *Recorder) run(ctx context.Context, ch chan<- Progress) {
	defer close(ch)

	r.logger.Info("Recording started: %d frames every %v", r.opts.Frames(), r.opts.FrameDelay)

	frames, err := r.collect(ctx, ch)
	if err != nil {
		r.logger.Warn("Recording aborted: %v", err)
		r.finish(ctx, ch, Progress{Phase: PhaseFailed, Frames: len(frames), Err: err})
		return
	}

	r.logger.Debug("Recording stopped. Captured %d frames", len(frames))
	notify(ch, Progress{Phase: PhaseEncoding, Frames: len(frames)})

	var buf bytes.Buffer
	err = Encode(&buf, frames, r.opts, func(done, total int) {
		notify(ch, Progress{Phase: PhaseEncoding, Percent: done * 100 / total, Frames: len(frames)})
	})
	if err != nil {
		r.finish(ctx, ch, Progress{Phase: PhaseFailed, Frames: len(frames), Err: err})
		return
	}

	r.logger.Info("GIF created: %d frames, %d bytes", len(frames), buf.Len())
	r.finish(ctx, ch, Progress{Phase: PhaseDone, Percent: 100, Frames: len(frames), GIF: buf.Bytes()})
}

// collect takes one snapshot immediately and one per FrameDelay until the
// frame budget is spent.
func (r *Recorder) collect(ctx context.Context, ch chan<- Progress) ([]image.Image, error) {
	total := r.opts.Frames()
	frames := make([]image.Image, 0, total)

	ticker := time.NewTicker(r.opts.FrameDelay)
	defer ticker.Stop()

	for tick := 1; ; tick++ {
		img, err := Snapshot(r.src.LatestFrame(), r.opts.Width, r.opts.Height)
		switch {
		case errors.Is(err, ErrNoFrame):
			r.logger.Debug("No frame to capture on tick %d", tick)
		case err != nil:
			return frames, err
		default:
			frames = append(frames, img)
		}
		notify(ch, Progress{Phase: PhaseRecording, Percent: tick * 100 / total, Frames: len(frames)})

		if tick >= total {
			break
		}
		select {
		case <-ctx.Done():
			return frames, ctx.Err()
		case <-ticker.C:
		}
	}

	if len(frames) == 0 {
		return nil, ErrNoFrame
	}
	return frames, nil
}

// finish ends the recording and delivers the final update unless the
// caller has gone away. Start may be called again as soon as it arrives.
func (r *Recorder) finish(ctx context.Context, ch chan<- Progress, p Progress) {
	r.recording.Store(false)
	select {
	case ch <- p:
	case <-ctx.Done():
		notify(ch, p)
	}
}

// notify sends p if there is room, dropping it otherwise.
func notify(ch chan<- Progress, p Progress) {
	select {
	case ch <- p:
	default:
	}
}

// Snapshot scales src to width×height into a new image. It returns
// ErrNoFrame for a nil or empty source.
func Snapshot(src image.Image, width, height int) (*image.RGBA, error) {
	if src == nil || src.Bounds().Empty() {
		return nil, ErrNoFrame
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}
