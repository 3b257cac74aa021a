package starfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/ls-starfield/internal/astro"
)

func alwaysSpawn() Config {
	cfg := DefaultConfig()
	cfg.Shooting.Chance = 1
	return cfg
}

func TestShootingStars_NeverExceedCap(t *testing.T) {
	for _, maxActive := range []int{0, 1, 2, 5} {
		cfg := alwaysSpawn()
		cfg.Shooting.MaxActive = maxActive
		w := NewSeededWorld(cfg, astro.StarCatalog{}, uint64(maxActive))
		w.Resize(320, 200)

		for i := 0; i < 2000; i++ {
			w.Step()
			require.LessOrEqual(t, len(w.ShootingStars()), maxActive, "frame %d", i)
		}
	}
}

func TestShootingStars_SpawnRespectsChance(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Shooting.Chance = 0
	w := NewSeededWorld(cfg, astro.StarCatalog{}, 9)
	w.Resize(800, 600)

	for i := 0; i < 500; i++ {
		w.Step()
	}
	assert.Empty(t, w.ShootingStars())
}

func TestShootingStars_NoSpawnWithoutViewport(t *testing.T) {
	w := NewSeededWorld(alwaysSpawn(), astro.StarCatalog{}, 9)

	w.Step()
	assert.Empty(t, w.ShootingStars())
}

func TestShootingStars_SpawnRanges(t *testing.T) {
	cfg := alwaysSpawn()
	cfg.Shooting.MinSpeed = 2
	cfg.Shooting.MaxSpeed = 4
	cfg.Shooting.MaxActive = 1
	w := NewSeededWorld(cfg, astro.StarCatalog{}, 5)
	w.Resize(800, 600)

	for i := 0; i < 50; i++ {
		w.spawnShootingStar()
		require.Len(t, w.shooting, 1)
		s := w.shooting[0]

		speed := s.VX*s.VX + s.VY*s.VY
		assert.GreaterOrEqual(t, speed, 4.0-1e-9)
		assert.LessOrEqual(t, speed, 16.0+1e-9)
		assert.GreaterOrEqual(t, s.InitialLife, cfg.Shooting.MinLife)
		assert.Less(t, s.InitialLife, cfg.Shooting.MaxLife)
		assert.Equal(t, s.Life, s.InitialLife)
		assert.GreaterOrEqual(t, s.Width, 1.5)
		assert.Less(t, s.Width, 3.0)

		// Spawned just outside the viewport, heading inward
		switch {
		case s.Y == -10:
			assert.Greater(t, s.VY, 0.0)
		case s.Y == 610:
			assert.Less(t, s.VY, 0.0)
		case s.X == -10:
			assert.Greater(t, s.VX, 0.0)
		case s.X == 810:
			assert.Less(t, s.VX, 0.0)
		default:
			t.Errorf("spawn at (%v, %v) is not on an edge", s.X, s.Y)
		}

		w.shooting = w.shooting[:0]
	}
}

func TestShootingStars_LifeDecreasesUntilRemoval(t *testing.T) {
	cfg := DefaultConfig()
	w := NewSeededWorld(cfg, astro.StarCatalog{}, 1)
	w.Resize(10000, 10000)
	w.shooting = []ShootingStar{{X: 5000, Y: 5000, VX: 1, Life: 5, InitialLife: 5, Width: 2}}
	w.cfg.Shooting.Chance = 0

	prev := 5.0
	for frame := 0; frame < 10; frame++ {
		w.Step()
		if len(w.ShootingStars()) == 0 {
			assert.Equal(t, 4, frame, "removed on the frame life reached zero")
			return
		}
		life := w.ShootingStars()[0].Life
		assert.Less(t, life, prev)
		assert.Greater(t, life, 0.0)
		prev = life
	}
	t.Fatal("shooting star never expired")
}

func TestShootingStars_RemovedOutsideMargin(t *testing.T) {
	w := NewSeededWorld(DefaultConfig(), astro.StarCatalog{}, 1)
	w.Resize(100, 100)
	w.cfg.Shooting.Chance = 0
	w.shooting = []ShootingStar{
		{X: 149, Y: 50, VX: 0.5, Life: 100, InitialLife: 100}, // 149.5: inside margin
		{X: 150, Y: 50, VX: 1, Life: 100, InitialLife: 100},   // 151: beyond
		{X: 50, Y: -49, VY: -2, Life: 100, InitialLife: 100},  // -51: beyond
	}

	w.Step()

	require.Len(t, w.ShootingStars(), 1)
	assert.InDelta(t, 149.5, w.ShootingStars()[0].X, 1e-9)
}

func TestShootingStar_Opacity(t *testing.T) {
	tests := []struct {
		name     string
		life     float64
		expected float64
	}{
		{"just spawned", 100, 0},
		{"fading in", 95, 0.5},
		{"fade-in done", 90, 1},
		{"plateau", 50, 1},
		{"fade-out start", 30, 1},
		{"fading out", 15, 0.5},
		{"dead", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ShootingStar{Life: tt.life, InitialLife: 100}
			assert.InDelta(t, tt.expected, s.Opacity(0.9, 0.3), 1e-9)
		})
	}
}

func TestShootingStar_OpacityBounded(t *testing.T) {
	for life := 0.0; life <= 150; life += 0.5 {
		o := ShootingStar{Life: life, InitialLife: 150}.Opacity(0.9, 0.3)
		assert.GreaterOrEqual(t, o, 0.0)
		assert.LessOrEqual(t, o, 1.0)
	}
	assert.Zero(t, ShootingStar{}.Opacity(0.9, 0.3))
}

func TestShootingStar_Tail(t *testing.T) {
	s := ShootingStar{X: 100, Y: 50, VX: 2, VY: -1}
	x, y := s.Tail(35)
	assert.Equal(t, 30.0, x)
	assert.Equal(t, 85.0, y)
}
