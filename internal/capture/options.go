// Package capture records the animation into an animated GIF, either from a
// live frame source on a timer or deterministically from an offline stepper.
package capture

import (
	"errors"
	"fmt"
	"time"
)

// DefaultOutput is the file name used when no output path is configured.
const DefaultOutput = "starfield.gif"

var (
	// ErrAlreadyRecording is returned by Start while a recording is running.
	ErrAlreadyRecording = errors.New("already recording")

	// ErrNoFrame means the frame source has nothing to capture yet.
	ErrNoFrame = errors.New("no frame available")

	// ErrInvalidOptions wraps option validation failures.
	ErrInvalidOptions = errors.New("invalid capture options")
)

// Options controls a recording.
type Options struct {
	FrameDelay time.Duration // time between captured frames
	Duration   time.Duration // total recording time
	Width      int           // output width in pixels
	Height     int           // output height in pixels

	// Quality is the pixel sampling step used when building each frame's
	// palette. 1 samples every pixel; larger is faster and coarser.
	Quality int
}

// DefaultOptions returns a 3 second, 10 fps, 400×225 recording.
func DefaultOptions() Options {
	return Options{
		FrameDelay: 100 * time.Millisecond,
		Duration:   3 * time.Second,
		Width:      400,
		Height:     225,
		Quality:    20,
	}
}

// Frames returns the number of frames a recording captures: one at the
// start and one per FrameDelay until Duration has passed.
func (o Options) Frames() int {
	if o.FrameDelay <= 0 {
		return 1
	}
	return int(o.Duration/o.FrameDelay) + 1
}

// Validate checks the options for values the encoder cannot handle.
func (o Options) Validate() error {
	switch {
	case o.FrameDelay < 10*time.Millisecond:
		return fmt.Errorf("%w: frame delay %v is below the GIF minimum of 10ms", ErrInvalidOptions, o.FrameDelay)
	case o.Duration < 0:
		return fmt.Errorf("%w: negative duration %v", ErrInvalidOptions, o.Duration)
	case o.Width <= 0 || o.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidOptions, o.Width, o.Height)
	case o.Width > 0xffff || o.Height > 0xffff:
		return fmt.Errorf("%w: size %dx%d exceeds GIF limits", ErrInvalidOptions, o.Width, o.Height)
	}
	return nil
}

// delay returns FrameDelay in GIF units of 1/100 s.
func (o Options) delay() int {
	return max(1, int(o.FrameDelay/(10*time.Millisecond)))
}

// Phase is a recording stage.
type Phase int

const (
	PhaseRecording Phase = iota
	PhaseEncoding
	PhaseDone
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseRecording:
		return "recording"
	case PhaseEncoding:
		return "encoding"
	case PhaseDone:
		return "done"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Progress is a recording status update. GIF is set when Phase is
// PhaseDone, Err when it is PhaseFailed.
type Progress struct {
	Phase   Phase
	Percent int
	Frames  int
	GIF     []byte
	Err     error
}

// String renders the progress as a short status message.
func (p Progress) String() string {
	switch p.Phase {
	case PhaseRecording:
		return fmt.Sprintf("Recording... %d%%", p.Percent)
	case PhaseEncoding:
		return fmt.Sprintf("Creating GIF... %d%%", p.Percent)
	case PhaseDone:
		return fmt.Sprintf("GIF ready (%d frames)", p.Frames)
	case PhaseFailed:
		return fmt.Sprintf("Recording failed: %v", p.Err)
	default:
		return p.Phase.String()
	}
}
