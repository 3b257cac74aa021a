package render

import "image"

// Sink receives every rendered frame. The image is reused by the renderer;
// sinks that keep it must copy.
type Sink interface {
	Present(img *image.RGBA) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(img *image.RGBA) error

// Present calls f(img).
func (f SinkFunc) Present(img *image.RGBA) error {
	return f(img)
}
