//go:build linux && cgo

package render

import (
	"fmt"
	"image"

	fb "github.com/gonutz/framebuffer"
)

// DefaultFramebuffer is the Linux framebuffer device opened by default.
const DefaultFramebuffer = "/dev/fb0"

// FramebufferSink presents frames on a Linux framebuffer device, scaling
// them to the device size with nearest-neighbour sampling.
type FramebufferSink struct {
	dev *fb.Device
}

// OpenFramebuffer opens a framebuffer device such as /dev/fb0.
func OpenFramebuffer(path string) (*FramebufferSink, error) {
	dev, err := fb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open framebuffer %s: %w", path, err)
	}
	return &FramebufferSink{dev: dev}, nil
}

// Bounds returns the device resolution.
func (s *FramebufferSink) Bounds() image.Rectangle {
	return s.dev.Bounds()
}

// Present blits img to the device.
func (s *FramebufferSink) Present(img *image.RGBA) error {
	dst := s.dev.Bounds()
	src := img.Bounds()
	if dst.Empty() || src.Empty() {
		return nil
	}

	for y := 0; y < dst.Dy(); y++ {
		sy := src.Min.Y + y*src.Dy()/dst.Dy()
		for x := 0; x < dst.Dx(); x++ {
			sx := src.Min.X + x*src.Dx()/dst.Dx()
			s.dev.Set(dst.Min.X+x, dst.Min.Y+y, img.RGBAAt(sx, sy))
		}
	}
	return nil
}

// Close releases the device.
func (s *FramebufferSink) Close() error {
	s.dev.Close()
	return nil
}
