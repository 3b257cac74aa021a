package capture

import (
	"cmp"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"slices"
)

// maxColors is the GIF palette size limit.
const maxColors = 256

// Encode writes frames as an infinitely looping animated GIF. Each frame
// gets its own palette and is Floyd–Steinberg dithered onto it. progress,
// if non-nil, is called after each frame is quantized.
func Encode(w io.Writer, frames []image.Image, opts Options, progress func(done, total int)) error {
	if len(frames) == 0 {
		return ErrNoFrame
	}

	g := &gif.GIF{LoopCount: 0}
	for i, img := range frames {
		b := img.Bounds()
		p := image.NewPaletted(b, Palette(img, opts.Quality))
		draw.FloydSteinberg.Draw(p, b, img, b.Min)

		g.Image = append(g.Image, p)
		g.Delay = append(g.Delay, opts.delay())
		if progress != nil {
			progress(i+1, len(frames))
		}
	}

	if err := gif.EncodeAll(w, g); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}

// bucket accumulates the pixels that fall into one 15-bit color cell.
type bucket struct {
	key        int
	count      int
	r, g, b, a int
}

// Palette picks up to 256 representative colors for img by popularity:
// pixels are sampled every step pixels, binned at 5 bits per channel, and
// the most populated bins contribute their mean color.
func Palette(img image.Image, step int) color.Palette {
	step = max(1, step)
	b := img.Bounds()

	bins := make(map[int]*bucket)
	n := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			n++
			if (n-1)%step != 0 {
				continue
			}
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			key := int(c.R>>3)<<10 | int(c.G>>3)<<5 | int(c.B>>3)
			bk, ok := bins[key]
			if !ok {
				bk = &bucket{key: key}
				bins[key] = bk
			}
			bk.count++
			bk.r += int(c.R)
			bk.g += int(c.G)
			bk.b += int(c.B)
			bk.a += int(c.A)
		}
	}

	if len(bins) == 0 {
		return color.Palette{color.Black}
	}

	ranked := make([]*bucket, 0, len(bins))
	for _, bk := range bins {
		ranked = append(ranked, bk)
	}
	slices.SortFunc(ranked, func(x, y *bucket) int {
		if c := cmp.Compare(y.count, x.count); c != 0 {
			return c
		}
		return cmp.Compare(x.key, y.key)
	})

	pal := make(color.Palette, 0, min(maxColors, len(ranked)))
	for _, bk := range ranked[:min(maxColors, len(ranked))] {
		pal = append(pal, color.NRGBA{
			R: uint8(bk.r / bk.count),
			G: uint8(bk.g / bk.count),
			B: uint8(bk.b / bk.count),
			A: uint8(bk.a / bk.count),
		})
	}
	return pal
}
