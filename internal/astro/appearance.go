package astro

import (
	"image/color"
	"math"
)

// Magnitude range mapped onto star sizes. Sirius sits at the bright end,
// naked-eye limit stars at the dim end.
const (
	BrightestMag = -1.5
	FaintestMag  = 5.5
)

// B−V color index range covered by BVToColor.
const (
	BluestBV  = -0.4
	ReddestBV = 2.0
)

// MagnitudeToSize maps an apparent magnitude to a rendered radius between
// minSize and maxSize pixels. Brighter stars (lower magnitude) are larger.
func MagnitudeToSize(mag, minSize, maxSize float64) float64 {
	m := clamp(mag, BrightestMag, FaintestMag)
	normalized := 1 - (m-BrightestMag)/(FaintestMag-BrightestMag)
	return minSize + normalized*(maxSize-minSize)
}

// BVToColor converts a B−V color index to an RGB star color.
//
// The index is clamped to [-0.4, 2.0] and mapped through four linear
// segments: blue to white below 0, near-white up to 0.4, white to yellow up
// to 1.0 and yellow to orange-red beyond. Each segment starts where the
// previous one ends.
func BVToColor(bv float64) color.RGBA {
	bv = clamp(bv, BluestBV, ReddestBV)

	var r, g, b float64
	switch {
	case bv < 0:
		r = 155 + (bv+0.4)*250
		g = 176 + (bv+0.4)*200
		b = 255
	case bv < 0.4:
		r = 255
		g = 255 - bv*30
		b = 255 - bv*60
	case bv < 1.0:
		r = 255
		g = 243 - (bv-0.4)*80
		b = 231 - (bv-0.4)*200
	default:
		r = 255
		g = 195 - (bv-1.0)*100
		b = 111 - (bv-1.0)*80
	}

	return color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: 0xff}
}

// channel rounds and clamps a color component to 0-255.
func channel(v float64) uint8 {
	return uint8(clamp(math.Round(v), 0, 255))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
