package capture

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestPalette_FewColorsExact(t *testing.T) {
	img := solid(10, 10, color.RGBA{A: 255})
	img.SetRGBA(3, 3, color.RGBA{R: 248, G: 248, B: 248, A: 255})

	pal := Palette(img, 1)
	require.Len(t, pal, 2)
	// Most popular first
	assert.Equal(t, color.NRGBA{A: 255}, pal[0])
	assert.Equal(t, color.NRGBA{R: 248, G: 248, B: 248, A: 255}, pal[1])
}

func TestPalette_CapsAt256(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 4), B: uint8((x + y) * 2), A: 255})
		}
	}

	assert.Len(t, Palette(img, 1), 256)
	assert.LessOrEqual(t, len(Palette(img, 20)), 256)
}

func TestPalette_SamplingStep(t *testing.T) {
	img := solid(4, 1, color.RGBA{A: 255})
	img.SetRGBA(1, 0, color.RGBA{R: 255, A: 255})

	// Step 2 samples pixels 0 and 2 only
	assert.Len(t, Palette(img, 2), 1)
	assert.Len(t, Palette(img, 0), 2)
}

func TestPalette_Empty(t *testing.T) {
	pal := Palette(image.NewRGBA(image.Rectangle{}), 1)
	assert.Len(t, pal, 1)
}

func TestEncode_RoundTrip(t *testing.T) {
	opts := DefaultOptions()
	opts.FrameDelay = 100 * time.Millisecond

	frames := []image.Image{
		solid(40, 20, color.RGBA{A: 255}),
		solid(40, 20, color.RGBA{R: 200, G: 200, B: 210, A: 255}),
		solid(40, 20, color.RGBA{B: 255, A: 255}),
	}

	var calls []int
	var buf bytes.Buffer
	err := Encode(&buf, frames, opts, func(done, total int) {
		assert.Equal(t, 3, total)
		calls = append(calls, done)
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, calls)

	g, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	require.Len(t, g.Image, 3)
	assert.Equal(t, []int{10, 10, 10}, g.Delay)
	assert.Equal(t, 0, g.LoopCount)
	assert.Equal(t, image.Rect(0, 0, 40, 20), g.Image[0].Bounds())

	r, gg, b, _ := g.Image[2].At(5, 5).RGBA()
	assert.Equal(t, uint32(0), r>>8)
	assert.Equal(t, uint32(0), gg>>8)
	assert.Equal(t, uint32(255), b>>8)
}

func TestEncode_NoFrames(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Encode(&buf, nil, DefaultOptions(), nil), ErrNoFrame)
}

func TestOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 31, opts.Frames())
	assert.Equal(t, 10, opts.delay())
	assert.NoError(t, opts.Validate())

	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"tiny delay", func(o *Options) { o.FrameDelay = time.Millisecond }},
		{"negative duration", func(o *Options) { o.Duration = -time.Second }},
		{"zero width", func(o *Options) { o.Width = 0 }},
		{"huge height", func(o *Options) { o.Height = 1 << 20 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			tt.mutate(&o)
			assert.ErrorIs(t, o.Validate(), ErrInvalidOptions)
		})
	}
}

func TestProgressString(t *testing.T) {
	assert.Equal(t, "Recording... 40%", Progress{Phase: PhaseRecording, Percent: 40}.String())
	assert.Equal(t, "Creating GIF... 5%", Progress{Phase: PhaseEncoding, Percent: 5}.String())
	assert.Equal(t, "GIF ready (31 frames)", Progress{Phase: PhaseDone, Frames: 31}.String())
	assert.Contains(t, Progress{Phase: PhaseFailed, Err: ErrNoFrame}.String(), "no frame available")
}
