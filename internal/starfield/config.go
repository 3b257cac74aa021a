// Package starfield holds the animation state of the sky: catalog and random
// stars, the slow sky rotation and the shooting stars crossing the screen.
package starfield

import (
	"math"

	"github.com/litescript/ls-starfield/internal/astro"
)

// Config holds the tunables of the starfield animation.
type Config struct {
	// RandomStars is the number of extra background stars generated on
	// every resize.
	RandomStars int

	StarMinSize float64 // radius in pixels of the faintest stars
	StarMaxSize float64 // radius in pixels of the brightest stars

	// Twinkle
	FlickerBaseOpacity float64
	FlickerMaxOpacity  float64
	FlickerSpeed       float64 // phase advance per millisecond
	ColorShift         float64 // max fraction a channel drifts toward white

	// RotationSpeed is the sky rotation per frame in radians.
	RotationSpeed float64

	Projector astro.Projector
	Shooting  ShootingConfig
}

// ShootingConfig holds the shooting star spawn and fade tunables.
type ShootingConfig struct {
	Chance     float64 // spawn probability per frame
	MinSpeed   float64 // pixels per frame
	MaxSpeed   float64
	MinLife    float64 // frames
	MaxLife    float64
	TailLength float64 // trail length in frames of travel
	MaxActive  int

	// AngleVariance is the full width of the random launch angle spread
	// around the edge normal, in radians.
	AngleVariance float64

	EdgeOffset float64 // spawn distance outside the viewport edge
	Margin     float64 // distance outside the viewport before removal
	MinWidth   float64
	MaxWidth   float64

	FadeIn  float64 // life fraction above which the star fades in
	FadeOut float64 // life fraction below which the star fades out
}

// DefaultConfig returns the stock starfield look.
func DefaultConfig() Config {
	return Config{
		RandomStars:        50,
		StarMinSize:        0.5,
		StarMaxSize:        3.0,
		FlickerBaseOpacity: 0.4,
		FlickerMaxOpacity:  0.6,
		FlickerSpeed:       0.0015,
		ColorShift:         0.15,
		RotationSpeed:      0.0002, // ~9 minutes per revolution at 60 fps
		Projector:          astro.DefaultProjector(),
		Shooting:           DefaultShootingConfig(),
	}
}

// DefaultShootingConfig returns the stock shooting star behavior.
func DefaultShootingConfig() ShootingConfig {
	return ShootingConfig{
		Chance:        0.008,
		MinSpeed:      2,
		MaxSpeed:      2,
		MinLife:       100,
		MaxLife:       150,
		TailLength:    35,
		MaxActive:     2,
		AngleVariance: math.Pi / 1.5,
		EdgeOffset:    10,
		Margin:        50,
		MinWidth:      1.5,
		MaxWidth:      3.0,
		FadeIn:        0.9,
		FadeOut:       0.3,
	}
}
