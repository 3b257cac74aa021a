package astro

import (
	"math"
	"testing"
	"time"
)

func TestJulianDate(t *testing.T) {
	tests := []struct {
		name     string
		time     time.Time
		expected float64
		tol      float64
	}{
		{
			name:     "J2000 epoch",
			time:     time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
			expected: 2451545.0,
			tol:      0.0001,
		},
		{
			name:     "Unix epoch",
			time:     time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: 2440587.5,
			tol:      0.0001,
		},
		{
			name:     "Known date 2024-01-01 00:00 UTC",
			time:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: 2460310.5,
			tol:      0.0001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := julianDate(tt.time)
			if math.Abs(got-tt.expected) > tt.tol {
				t.Errorf("julianDate() = %v, want %v (±%v)", got, tt.expected, tt.tol)
			}
		})
	}
}

func TestGreenwichMeanSiderealTime(t *testing.T) {
	// At J2000 epoch (2000-01-01 12:00 UTC), GMST should be approximately 280.46°
	t2000 := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	gmst := greenwichMeanSiderealTime(t2000)

	// GMST at J2000 should be very close to 280.46°
	if math.Abs(gmst-280.46) > 0.1 {
		t.Errorf("GMST at J2000 = %v, want ~280.46", gmst)
	}

	// GMST should be in range 0-360
	if gmst < 0 || gmst >= 360 {
		t.Errorf("GMST out of range: %v", gmst)
	}
}

func TestLocalSiderealTime(t *testing.T) {
	// LST = GMST + longitude
	testTime := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	// At longitude 0 (Greenwich), LST should equal GMST
	gmst := greenwichMeanSiderealTime(testTime)
	lst0 := localSiderealTime(testTime, 0)
	if math.Abs(lst0-gmst) > 0.001 {
		t.Errorf("LST at lon=0 should equal GMST: got %v, want %v", lst0, gmst)
	}

	// At longitude +90° (east), LST should be GMST + 90°
	lst90 := localSiderealTime(testTime, 90)
	expected90 := math.Mod(gmst+90, 360)
	if math.Abs(lst90-expected90) > 0.001 {
		t.Errorf("LST at lon=90 = %v, want %v", lst90, expected90)
	}

	// LST should always be in 0-360 range
	for lon := -180.0; lon <= 180; lon += 30 {
		lst := localSiderealTime(testTime, lon)
		if lst < 0 || lst >= 360 {
			t.Errorf("LST at lon=%v out of range: %v", lon, lst)
		}
	}
}

func TestZenith_MatchesSiderealTime(t *testing.T) {
	observer := Observer{LatDeg: 35.0, LonDeg: -117.0}
	testTime := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	ra, dec := Zenith(observer, testTime)

	if math.Abs(ra-localSiderealTime(testTime, observer.LonDeg)) > 1e-9 {
		t.Errorf("Zenith RA = %v, want LST %v", ra, localSiderealTime(testTime, observer.LonDeg))
	}
	if dec != observer.LatDeg {
		t.Errorf("Zenith Dec = %v, want latitude %v", dec, observer.LatDeg)
	}
}

func TestZenith_ProjectsToScreenCenter(t *testing.T) {
	// Centering the view on the zenith puts the zenith itself in the middle
	observer := Observer{LatDeg: -33.9, LonDeg: 151.2}
	testTime := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	ra, dec := Zenith(observer, testTime)
	p := DefaultProjector()
	p.CenterRA = ra
	p.CenterDec = dec

	pt, ok := p.Project(ra, dec, 0, 800, 600)
	if !ok {
		t.Fatal("zenith should be visible")
	}
	if math.Abs(pt.X-400) > 1e-6 || math.Abs(pt.Y-300) > 1e-6 {
		t.Errorf("zenith projected to (%v, %v), want (400, 300)", pt.X, pt.Y)
	}
}

func TestZenith_ClampsLatitude(t *testing.T) {
	_, dec := Zenith(Observer{LatDeg: 95}, time.Now())
	if dec != 90 {
		t.Errorf("Zenith Dec = %v, want 90", dec)
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{-10, 350},
		{725, 5},
	}

	for _, tt := range tests {
		got := normalizeDegrees(tt.input)
		if math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("normalizeDegrees(%v) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestDegToRad(t *testing.T) {
	tests := []struct {
		deg float64
		rad float64
	}{
		{0, 0},
		{90, math.Pi / 2},
		{180, math.Pi},
		{360, 2 * math.Pi},
		{-90, -math.Pi / 2},
	}

	for _, tt := range tests {
		got := degToRad(tt.deg)
		if math.Abs(got-tt.rad) > 1e-10 {
			t.Errorf("degToRad(%v) = %v, want %v", tt.deg, got, tt.rad)
		}
	}
}

func TestRadToDeg(t *testing.T) {
	tests := []struct {
		rad float64
		deg float64
	}{
		{0, 0},
		{math.Pi / 2, 90},
		{math.Pi, 180},
		{2 * math.Pi, 360},
	}

	for _, tt := range tests {
		got := radToDeg(tt.rad)
		if math.Abs(got-tt.deg) > 1e-10 {
			t.Errorf("radToDeg(%v) = %v, want %v", tt.rad, got, tt.deg)
		}
	}
}
