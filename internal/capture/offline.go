package capture

import (
	"fmt"
	"image"
	"time"
)

// Stepper advances an animation by a span of simulated time and returns
// the frame it ends on.
type Stepper interface {
	Advance(d time.Duration) image.Image
}

// RecordOffline captures opts.Frames() frames from s, advancing it by
// FrameDelay before each one. No wall-clock time is spent waiting, so the
// result depends only on the stepper.
func RecordOffline(s Stepper, opts Options) ([]image.Image, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	total := opts.Frames()
	frames := make([]image.Image, 0, total)
	for i := 0; i < total; i++ {
		img, err := Snapshot(s.Advance(opts.FrameDelay), opts.Width, opts.Height)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		frames = append(frames, img)
	}
	return frames, nil
}
