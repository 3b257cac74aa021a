package astro

import (
	"math"
	"testing"
)

func TestProject_CenterStarAtScreenCenter(t *testing.T) {
	p := DefaultProjector()

	pt, ok := p.Project(180, 20, 0, 1920, 1080)
	if !ok {
		t.Fatal("view center should be visible")
	}
	if math.Abs(pt.X-960) > 1e-9 || math.Abs(pt.Y-540) > 1e-9 {
		t.Errorf("Project(center) = (%v, %v), want (960, 540)", pt.X, pt.Y)
	}
}

func TestProject_DepthThreshold(t *testing.T) {
	p := DefaultProjector()
	// Huge margin so only the depth test can reject a point
	p.CullMargin = 1e9

	for ra := 0.0; ra < 360; ra += 7.5 {
		for dec := -85.0; dec <= 85; dec += 5 {
			d := p.Depth(ra, dec, 0)
			_, ok := p.Project(ra, dec, 0, 800, 600)

			if d >= p.MinDepth && !ok {
				t.Errorf("RA=%v Dec=%v depth=%v should project", ra, dec, d)
			}
			if d < p.MinDepth && ok {
				t.Errorf("RA=%v Dec=%v depth=%v should be hidden", ra, dec, d)
			}
		}
	}
}

func TestProject_NaN(t *testing.T) {
	p := DefaultProjector()

	tests := []struct {
		name     string
		ra, dec  float64
		rotation float64
		width    float64
	}{
		{"nan ra", math.NaN(), 20, 0, 800},
		{"nan dec", 180, math.NaN(), 0, 800},
		{"inf ra", math.Inf(1), 20, 0, 800},
		{"nan rotation", 180, 20, math.NaN(), 800},
		{"nan width", 180, 20, 0, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if pt, ok := p.Project(tt.ra, tt.dec, tt.rotation, tt.width, 600); ok {
				t.Errorf("Project() = %+v, want not visible", pt)
			}
		})
	}
}

func TestProject_BehindViewer(t *testing.T) {
	p := DefaultProjector()

	// Antipode of the view center
	if _, ok := p.Project(0, -20, 0, 800, 600); ok {
		t.Error("antipode of view center should not be visible")
	}
}

func TestProject_Orientation(t *testing.T) {
	p := DefaultProjector()
	w, h := 1000.0, 1000.0

	north, ok := p.Project(180, 30, 0, w, h)
	if !ok {
		t.Fatal("point north of center should be visible")
	}
	if north.Y >= h/2 {
		t.Errorf("higher declination should be above center, got y=%v", north.Y)
	}

	east, ok := p.Project(190, 20, 0, w, h)
	if !ok {
		t.Fatal("point at larger RA should be visible")
	}
	if east.X <= w/2 {
		t.Errorf("larger RA should land right of center, got x=%v", east.X)
	}
}

func TestProject_RotationShiftsSky(t *testing.T) {
	p := DefaultProjector()

	// Rotating by 10° brings RA 190 to where RA 180 was
	rot := degToRad(10)
	pt, ok := p.Project(190, 20, rot, 800, 600)
	if !ok {
		t.Fatal("rotated star should be visible")
	}
	if math.Abs(pt.X-400) > 1e-6 || math.Abs(pt.Y-300) > 1e-6 {
		t.Errorf("rotated star at (%v, %v), want (400, 300)", pt.X, pt.Y)
	}
}

func TestProject_ZeroViewport(t *testing.T) {
	p := DefaultProjector()

	tests := []struct {
		name          string
		width, height float64
	}{
		{"zero width", 0, 600},
		{"zero height", 800, 0},
		{"both zero", 0, 0},
		{"negative", -1, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := p.Project(180, 20, 0, tt.width, tt.height); ok {
				t.Error("empty viewport should show nothing")
			}
		})
	}
}

func TestProject_CullMargin(t *testing.T) {
	p := DefaultProjector()
	w, h := 200.0, 100.0

	// Walk east from the center until the projection gets culled; the last
	// visible point must lie within the margin.
	var last ScreenPoint
	for ra := 180.0; ra < 300; ra += 0.25 {
		pt, ok := p.Project(ra, 20, 0, w, h)
		if !ok {
			break
		}
		last = pt
	}

	if last.X > w+p.CullMargin {
		t.Errorf("visible point at x=%v beyond margin %v", last.X, w+p.CullMargin)
	}
	if last.X < w {
		t.Errorf("expected points to stay visible up to the viewport edge, last x=%v", last.X)
	}
}

func TestProject_ScaleUsesShorterSide(t *testing.T) {
	p := DefaultProjector()

	// Same angular offset, wide vs tall viewport with equal short side
	a, okA := p.Project(180, 25, 0, 1600, 800)
	b, okB := p.Project(180, 25, 0, 800, 1600)
	if !okA || !okB {
		t.Fatal("both projections should be visible")
	}

	dyA := 400 - a.Y
	dyB := 800 - b.Y
	if math.Abs(dyA-dyB) > 1e-9 {
		t.Errorf("offset differs between orientations: %v vs %v", dyA, dyB)
	}
}
