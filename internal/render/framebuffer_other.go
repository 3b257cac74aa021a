//go:build !linux || !cgo

package render

import (
	"errors"
	"image"
)

// DefaultFramebuffer is the Linux framebuffer device opened by default.
const DefaultFramebuffer = "/dev/fb0"

// ErrFramebufferUnsupported is returned by OpenFramebuffer off Linux.
var ErrFramebufferUnsupported = errors.New("framebuffer output is only supported on linux")

// FramebufferSink is unavailable on this platform.
type FramebufferSink struct{}

// OpenFramebuffer always fails off Linux.
func OpenFramebuffer(path string) (*FramebufferSink, error) {
	return nil, ErrFramebufferUnsupported
}

func (s *FramebufferSink) Bounds() image.Rectangle       { return image.Rectangle{} }
func (s *FramebufferSink) Present(img *image.RGBA) error { return ErrFramebufferUnsupported }
func (s *FramebufferSink) Close() error                  { return nil }
