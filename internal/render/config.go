// Package render paints the starfield into RGBA frames and drives the frame
// loop that feeds display sinks.
package render

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Shooting star palette.
var (
	headColor = color.NRGBA{R: 180, G: 180, B: 185, A: 0xff}
	tailColor = color.NRGBA{R: 120, G: 120, B: 125, A: 0xff}
	fadeColor = color.NRGBA{R: 100, G: 100, B: 105, A: 0}
)

// Config holds renderer tunables.
type Config struct {
	Background color.RGBA

	// Stars larger than GlowThreshold pixels get a soft halo of
	// GlowScale times their radius.
	GlowThreshold float64
	GlowScale     float64

	// HeadRadius is the radius of a shooting star's glowing head.
	HeadRadius float64

	// FPS is the frame rate of the real-time loop.
	FPS int
}

// DefaultConfig returns the stock renderer settings.
func DefaultConfig() Config {
	return Config{
		Background:    color.RGBA{A: 0xff},
		GlowThreshold: 1.5,
		GlowScale:     2.5,
		HeadRadius:    3,
		FPS:           60,
	}
}

// ParseColor parses a CSS-style hex color such as "#000000" or "#0b1020".
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
