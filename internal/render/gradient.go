package render

import (
	"image"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// everywhere is the bounds reported by procedural gradient images.
var everywhere = image.Rect(-1<<20, -1<<20, 1<<20, 1<<20)

// Stop is a color at a fractional offset along a gradient.
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// Stops is an ordered list of gradient stops.
type Stops []Stop

// At returns the interpolated color at t in [0, 1]. Colors are blended
// premultiplied, so a fade to a transparent stop keeps the opaque hue.
func (s Stops) At(t float64) color.NRGBA {
	if len(s) == 0 {
		return color.NRGBA{}
	}
	if t <= s[0].Offset {
		return s[0].Color
	}
	for i := 1; i < len(s); i++ {
		a, b := s[i-1], s[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		return blend(a.Color, b.Color, (t-a.Offset)/span)
	}
	return s[len(s)-1].Color
}

func blend(a, b color.NRGBA, t float64) color.NRGBA {
	aa, ba := float64(a.A)/255, float64(b.A)/255
	alpha := aa + (ba-aa)*t
	if alpha <= 0 {
		return color.NRGBA{}
	}
	c := premultiplied(a, aa).BlendRgb(premultiplied(b, ba), t)
	r, g, bl := colorful.Color{R: c.R / alpha, G: c.G / alpha, B: c.B / alpha}.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(math.Round(alpha * 255))}
}

func premultiplied(c color.NRGBA, alpha float64) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255 * alpha,
		G: float64(c.G) / 255 * alpha,
		B: float64(c.B) / 255 * alpha,
	}
}

// RadialGradient is an image whose color depends on the distance from a
// center point, like a canvas radial gradient with a zero inner radius.
type RadialGradient struct {
	CX, CY float64
	Radius float64
	Stops  Stops
}

func (g *RadialGradient) ColorModel() color.Model { return color.NRGBAModel }
func (g *RadialGradient) Bounds() image.Rectangle { return everywhere }

func (g *RadialGradient) At(x, y int) color.Color {
	if g.Radius <= 0 {
		return g.Stops.At(1)
	}
	dx := float64(x) + 0.5 - g.CX
	dy := float64(y) + 0.5 - g.CY
	return g.Stops.At(math.Hypot(dx, dy) / g.Radius)
}

// LinearGradient is an image whose color varies along the segment from
// (X0, Y0) to (X1, Y1), clamped beyond the end points.
type LinearGradient struct {
	X0, Y0 float64
	X1, Y1 float64
	Stops  Stops
}

func (g *LinearGradient) ColorModel() color.Model { return color.NRGBAModel }
func (g *LinearGradient) Bounds() image.Rectangle { return everywhere }

func (g *LinearGradient) At(x, y int) color.Color {
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return g.Stops.At(0)
	}
	px := float64(x) + 0.5 - g.X0
	py := float64(y) + 0.5 - g.Y0
	t := (px*dx + py*dy) / l2
	return g.Stops.At(math.Max(0, math.Min(1, t)))
}

// withAlpha returns c with its alpha scaled to a in [0, 1].
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(math.Round(math.Max(0, math.Min(1, a)) * 255))
	return c
}

func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
