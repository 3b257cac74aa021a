package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic Bézier control points for a quarter circle.
const kappa = 0.5522847498

// Canvas is an RGBA drawing surface with anti-aliased circle fills.
type Canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

// NewCanvas allocates a width×height canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, max(0, width), max(0, height))),
		z:   vector.NewRasterizer(1, 1),
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Bounds returns the canvas bounds.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// Resize reallocates the backing image when the size changes.
func (c *Canvas) Resize(width, height int) {
	r := image.Rect(0, 0, max(0, width), max(0, height))
	if r.Eq(c.img.Bounds()) {
		return
	}
	c.img = image.NewRGBA(r)
}

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// FillCircle composites src over the disk of radius r centered at (cx, cy).
// Only the part of the disk inside the canvas is rasterized.
func (c *Canvas) FillCircle(cx, cy, r float64, src image.Image) {
	if r <= 0 {
		return
	}
	clip := image.Rect(
		int(math.Floor(cx-r)), int(math.Floor(cy-r)),
		int(math.Ceil(cx+r)), int(math.Ceil(cy+r)),
	).Intersect(c.img.Bounds())
	if clip.Empty() {
		return
	}

	c.z.Reset(clip.Dx(), clip.Dy())
	c.z.DrawOp = draw.Over
	circlePath(c.z, cx-float64(clip.Min.X), cy-float64(clip.Min.Y), r)
	c.z.Draw(c.img, clip, src, clip.Min)
}

// circlePath adds a closed circle to z as four cubic segments.
func circlePath(z *vector.Rasterizer, cx, cy, r float64) {
	k := r * kappa
	f := func(v float64) float32 { return float32(v) }

	z.MoveTo(f(cx+r), f(cy))
	z.CubeTo(f(cx+r), f(cy+k), f(cx+k), f(cy+r), f(cx), f(cy+r))
	z.CubeTo(f(cx-k), f(cy+r), f(cx-r), f(cy+k), f(cx-r), f(cy))
	z.CubeTo(f(cx-r), f(cy-k), f(cx-k), f(cy-r), f(cx), f(cy-r))
	z.CubeTo(f(cx+k), f(cy-r), f(cx+r), f(cy-k), f(cx+r), f(cy))
	z.ClosePath()
}
