package starfield

import (
	"image/color"
	"math"
	"time"

	"github.com/litescript/ls-starfield/internal/astro"
)

// Star is a renderable star: fixed celestial position plus cached visuals.
type Star struct {
	astro.Star

	Size          float64    // radius in pixels
	Color         color.RGBA // base color from the B−V index
	FlickerOffset float64    // twinkle phase offset, fixed for the star's lifetime
}

// Appearance is a star's color and opacity at one instant.
type Appearance struct {
	Color   color.RGBA
	Opacity float64
}

// newStar derives visuals for a catalog record.
func newStar(s astro.Star, cfg Config, flickerOffset float64) Star {
	st := Star{Star: s, FlickerOffset: flickerOffset}
	st.refresh(cfg)
	return st
}

// refresh recomputes the cached size and color.
func (s *Star) refresh(cfg Config) {
	s.Size = astro.MagnitudeToSize(s.Mag, cfg.StarMinSize, cfg.StarMaxSize)
	s.Color = astro.BVToColor(s.ColorIndex())
}

// Twinkle returns the star's shimmering color and opacity after elapsed
// animation time. Each channel drifts toward white on its own phase.
func (c Config) Twinkle(s *Star, elapsed time.Duration) Appearance {
	ms := float64(elapsed) / float64(time.Millisecond)
	phase := ms*c.FlickerSpeed + s.FlickerOffset

	flicker := math.Sin(phase)*0.5 + 0.5
	opacity := c.FlickerBaseOpacity + flicker*c.FlickerMaxOpacity

	rShift := math.Sin(phase*1.3) * c.ColorShift
	gShift := math.Sin(phase*0.9+1) * c.ColorShift
	bShift := math.Sin(phase*1.1+2) * c.ColorShift

	return Appearance{
		Color: color.RGBA{
			R: shimmer(s.Color.R, rShift),
			G: shimmer(s.Color.G, gShift),
			B: shimmer(s.Color.B, bShift),
			A: 0xff,
		},
		Opacity: math.Max(0, math.Min(1, opacity)),
	}
}

func shimmer(c uint8, shift float64) uint8 {
	v := math.Round(float64(c) + (255-float64(c))*shift)
	return uint8(math.Max(0, math.Min(255, v)))
}
