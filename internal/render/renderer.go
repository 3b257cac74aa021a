package render

import (
	"image"
	"time"

	"github.com/litescript/ls-starfield/internal/astro"
	"github.com/litescript/ls-starfield/internal/starfield"
)

// Renderer draws a world into an RGBA frame. It reuses its canvas between
// frames, so the returned image is only valid until the next Draw.
type Renderer struct {
	cfg    Config
	canvas *Canvas
	stroke *Stroker
}

// NewRenderer creates a renderer.
func NewRenderer(cfg Config) *Renderer {
	return &Renderer{
		cfg:    cfg,
		canvas: NewCanvas(0, 0),
		stroke: NewStroker(1, 1),
	}
}

// Config returns the renderer configuration.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Draw paints one frame: background, catalog stars, random stars, then
// shooting stars on top. elapsed drives the twinkle phase.
func (r *Renderer) Draw(w *starfield.World, elapsed time.Duration) *image.RGBA {
	width, height := w.Size()
	r.canvas.Resize(int(width), int(height))
	r.canvas.Clear(r.cfg.Background)

	cfg := w.Config()
	w.EachVisible(func(s *starfield.Star, pt astro.ScreenPoint) {
		r.drawStar(s, pt, cfg.Twinkle(s, elapsed))
	})

	sc := cfg.Shooting
	for _, s := range w.ShootingStars() {
		r.drawShootingStar(s, s.Opacity(sc.FadeIn, sc.FadeOut), sc.TailLength)
	}
	return r.canvas.Image()
}

func (r *Renderer) drawStar(s *starfield.Star, pt astro.ScreenPoint, app starfield.Appearance) {
	c := nrgba(app.Color)
	a := app.Opacity

	if s.Size > r.cfg.GlowThreshold {
		glow := s.Size * r.cfg.GlowScale
		r.canvas.FillCircle(pt.X, pt.Y, glow, &RadialGradient{
			CX: pt.X, CY: pt.Y, Radius: glow,
			Stops: Stops{
				{0, withAlpha(c, a*0.6)},
				{0.4, withAlpha(c, a*0.2)},
				{1, withAlpha(c, 0)},
			},
		})
	}
	r.canvas.FillCircle(pt.X, pt.Y, s.Size, image.NewUniform(withAlpha(c, a)))
}

func (r *Renderer) drawShootingStar(s starfield.ShootingStar, opacity, tailLength float64) {
	if opacity <= 0 {
		return
	}
	tx, ty := s.Tail(tailLength)

	r.stroke.Line(r.canvas.Image(), s.X, s.Y, tx, ty, s.Width, &LinearGradient{
		X0: s.X, Y0: s.Y, X1: tx, Y1: ty,
		Stops: Stops{
			{0, withAlpha(headColor, opacity*0.9)},
			{0.2, withAlpha(tailColor, opacity*0.5)},
			{0.6, withAlpha(tailColor, opacity*0.2)},
			{1, fadeColor},
		},
	})

	hr := r.cfg.HeadRadius
	r.canvas.FillCircle(s.X, s.Y, hr, &RadialGradient{
		CX: s.X, CY: s.Y, Radius: hr,
		Stops: Stops{
			{0, withAlpha(headColor, opacity*0.8)},
			{0.6, withAlpha(tailColor, opacity*0.3)},
			{1, fadeColor},
		},
	})
}
