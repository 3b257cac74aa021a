package starfield

import (
	"math"
	"math/rand/v2"

	"github.com/litescript/ls-starfield/internal/astro"
)

// Random background star ranges.
const (
	randomMinMag = 3.0
	randomMaxMag = 6.0
	randomMinBV  = -0.2
	randomMaxBV  = 0.6

	maxFlickerOffset = 1000.0
)

// Edges a shooting star can enter from.
const (
	edgeTop = iota
	edgeRight
	edgeBottom
	edgeLeft
)

// World owns all mutable animation state. It is not safe for concurrent
// use; a single frame loop drives it.
type World struct {
	cfg Config
	rng *rand.Rand

	catalog  []Star // fixed celestial positions, visuals refreshed on resize
	random   []Star // regenerated on resize
	shooting []ShootingStar

	rotation      float64 // radians
	width, height float64
}

// NewWorld creates a world from a star catalog. The world has an empty
// viewport until Resize is called.
func NewWorld(cfg Config, catalog astro.StarCatalog, rng *rand.Rand) *World {
	w := &World{
		cfg:     cfg,
		rng:     rng,
		catalog: make([]Star, 0, catalog.Len()),
	}
	for _, s := range catalog.Stars {
		w.catalog = append(w.catalog, newStar(s, cfg, w.rng.Float64()*maxFlickerOffset))
	}
	return w
}

// NewSeededWorld is NewWorld with a PCG source seeded from seed.
func NewSeededWorld(cfg Config, catalog astro.StarCatalog, seed uint64) *World {
	return NewWorld(cfg, catalog, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Config returns the world's configuration.
func (w *World) Config() Config {
	return w.cfg
}

// Resize sets the viewport size, regenerates the random background stars
// and refreshes catalog star visuals. Catalog positions are kept.
func (w *World) Resize(width, height int) {
	w.width = math.Max(0, float64(width))
	w.height = math.Max(0, float64(height))

	for i := range w.catalog {
		w.catalog[i].refresh(w.cfg)
	}

	w.random = w.random[:0]
	for i := 0; i < w.cfg.RandomStars; i++ {
		w.random = append(w.random, w.randomStar())
	}
}

// randomStar places a faint star uniformly on the celestial sphere.
func (w *World) randomStar() Star {
	bv := w.between(randomMinBV, randomMaxBV)
	s := astro.Star{
		RAdeg:  w.rng.Float64() * 360,
		DecDeg: math.Asin(w.rng.Float64()*2-1) * 180 / math.Pi,
		Mag:    w.between(randomMinMag, randomMaxMag),
		BV:     &bv,
	}
	return newStar(s, w.cfg, w.rng.Float64()*maxFlickerOffset)
}

// Size returns the viewport size in pixels.
func (w *World) Size() (width, height float64) {
	return w.width, w.height
}

// Rotation returns the current sky rotation in radians.
func (w *World) Rotation() float64 {
	return w.rotation
}

// CatalogStars returns the catalog stars. The slice must not be modified.
func (w *World) CatalogStars() []Star {
	return w.catalog
}

// RandomStars returns the random background stars. The slice must not be
// modified.
func (w *World) RandomStars() []Star {
	return w.random
}

// ShootingStars returns the active shooting stars. The slice must not be
// modified.
func (w *World) ShootingStars() []ShootingStar {
	return w.shooting
}

// Project returns the star's current screen position, recomputed from its
// celestial coordinates and the current rotation.
func (w *World) Project(s *Star) (astro.ScreenPoint, bool) {
	return w.cfg.Projector.Project(s.RAdeg, s.DecDeg, w.rotation, w.width, w.height)
}

// EachVisible calls fn for every catalog star, then every random star, that
// projects onto the viewport this frame.
func (w *World) EachVisible(fn func(s *Star, pt astro.ScreenPoint)) {
	for _, stars := range [][]Star{w.catalog, w.random} {
		for i := range stars {
			if pt, ok := w.Project(&stars[i]); ok {
				fn(&stars[i], pt)
			}
		}
	}
}

// Step advances the animation by one frame: rotates the sky, maybe spawns a
// shooting star, then moves and prunes the active shooting stars.
func (w *World) Step() {
	w.rotation += w.cfg.RotationSpeed
	w.spawnShootingStar()
	w.updateShootingStars()
}

func (w *World) spawnShootingStar() {
	sc := w.cfg.Shooting
	if w.width <= 0 || w.height <= 0 {
		return
	}
	if len(w.shooting) >= sc.MaxActive {
		return
	}
	if w.rng.Float64() > sc.Chance {
		return
	}

	speed := w.between(sc.MinSpeed, sc.MaxSpeed)
	life := w.between(sc.MinLife, sc.MaxLife)
	variance := (w.rng.Float64() - 0.5) * sc.AngleVariance

	var x, y, angle float64
	switch w.rng.IntN(4) {
	case edgeTop:
		x, y = w.rng.Float64()*w.width, -sc.EdgeOffset
		angle = math.Pi/2 + variance
	case edgeRight:
		x, y = w.width+sc.EdgeOffset, w.rng.Float64()*w.height
		angle = math.Pi + variance
	case edgeBottom:
		x, y = w.rng.Float64()*w.width, w.height+sc.EdgeOffset
		angle = -math.Pi/2 + variance
	case edgeLeft:
		x, y = -sc.EdgeOffset, w.rng.Float64()*w.height
		angle = variance
	}

	w.shooting = append(w.shooting, ShootingStar{
		X:           x,
		Y:           y,
		VX:          math.Cos(angle) * speed,
		VY:          math.Sin(angle) * speed,
		Life:        life,
		InitialLife: life,
		Width:       w.between(sc.MinWidth, sc.MaxWidth),
	})
}

func (w *World) updateShootingStars() {
	margin := w.cfg.Shooting.Margin
	kept := w.shooting[:0]
	for _, s := range w.shooting {
		s.advance()
		if s.expired(w.width, w.height, margin) {
			continue
		}
		kept = append(kept, s)
	}
	w.shooting = kept
}

// between draws uniformly from [lo, hi).
func (w *World) between(lo, hi float64) float64 {
	return lo + w.rng.Float64()*(hi-lo)
}
