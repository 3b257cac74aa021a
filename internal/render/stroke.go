package render

import (
	"image"
	"math"

	"github.com/golang/freetype/raster"
	"golang.org/x/image/math/fixed"
)

// Stroker draws round-capped line segments filled from an arbitrary source
// image, typically a LinearGradient.
type Stroker struct {
	r    *raster.Rasterizer
	path raster.Path
}

// NewStroker returns a stroker for a width×height surface.
func NewStroker(width, height int) *Stroker {
	return &Stroker{r: raster.NewRasterizer(max(1, width), max(1, height))}
}

// Line strokes the segment (x0, y0)-(x1, y1) onto dst with the given width.
func (s *Stroker) Line(dst *image.RGBA, x0, y0, x1, y1, width float64, src image.Image) {
	if width <= 0 {
		return
	}
	b := dst.Bounds()
	s.r.SetBounds(max(1, b.Dx()), max(1, b.Dy()))
	s.r.Clear()
	s.r.UseNonZeroWinding = true

	s.path.Clear()
	s.path.Start(point(x0, y0))
	s.path.Add1(point(x1, y1))
	raster.Stroke(s.r, s.path, fixed.Int26_6(math.Round(width*64)), raster.RoundCapper, raster.RoundJoiner)
	s.r.Rasterize(&gradientPainter{dst: dst, src: src})
}

func point(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(x * 64)),
		Y: fixed.Int26_6(math.Round(y * 64)),
	}
}

// gradientPainter composites src over dst, weighting each pixel by the
// span coverage.
type gradientPainter struct {
	dst *image.RGBA
	src image.Image
}

func (p *gradientPainter) Paint(ss []raster.Span, done bool) {
	b := p.dst.Bounds()
	for _, s := range ss {
		y := s.Y + b.Min.Y
		if y < b.Min.Y || y >= b.Max.Y {
			continue
		}
		coverage := float64(s.Alpha) / 0xffff
		for x := max(s.X0+b.Min.X, b.Min.X); x < min(s.X1+b.Min.X, b.Max.X); x++ {
			sr, sg, sb, sa := p.src.At(x, y).RGBA()
			if sa == 0 {
				continue
			}
			over(p.dst, x, y, sr, sg, sb, sa, coverage)
		}
	}
}

// over blends a premultiplied 16-bit color, scaled by coverage, onto dst.
func over(dst *image.RGBA, x, y int, sr, sg, sb, sa uint32, coverage float64) {
	i := dst.PixOffset(x, y)
	pix := dst.Pix[i : i+4 : i+4]

	a := float64(sa) / 0xffff * coverage
	mix := func(d uint8, s uint32) uint8 {
		v := float64(s)/0xffff*coverage*255 + float64(d)*(1-a)
		return uint8(math.Max(0, math.Min(255, math.Round(v))))
	}
	pix[0] = mix(pix[0], sr)
	pix[1] = mix(pix[1], sg)
	pix[2] = mix(pix[2], sb)
	pix[3] = mix(pix[3], sa)
}
