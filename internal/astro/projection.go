package astro

import "math"

// Projection defaults.
const (
	DefaultCenterRA   = 180.0 // degrees
	DefaultCenterDec  = 20.0  // degrees, northern hemisphere view
	DefaultMinDepth   = 0.1
	DefaultScale      = 0.8
	DefaultCullMargin = 50.0 // pixels
)

// ScreenPoint is a projected position in pixels, origin at the top-left
// corner with Y growing downward.
type ScreenPoint struct {
	X float64
	Y float64
}

// Projector maps celestial coordinates onto a viewport with a stereographic
// projection centered on (CenterRA, CenterDec).
type Projector struct {
	CenterRA  float64 // Right Ascension of the view center in degrees
	CenterDec float64 // Declination of the view center in degrees

	// MinDepth is the smallest depth factor still drawn. Points below it are
	// behind the viewer or too close to the horizon to project cleanly.
	MinDepth float64

	// Scale multiplies min(width, height) to get the pixel scale.
	Scale float64

	// CullMargin is how far outside the viewport (pixels) a point may land
	// before it is reported as not visible.
	CullMargin float64
}

// DefaultProjector returns a projector looking at RA 180°, Dec 20°.
func DefaultProjector() Projector {
	return Projector{
		CenterRA:   DefaultCenterRA,
		CenterDec:  DefaultCenterDec,
		MinDepth:   DefaultMinDepth,
		Scale:      DefaultScale,
		CullMargin: DefaultCullMargin,
	}
}

// Depth returns the depth factor of (raDeg, decDeg) under the given rotation
// (radians): the cosine of the angular distance to the view center.
func (p Projector) Depth(raDeg, decDeg, rotation float64) float64 {
	ra := degToRad(raDeg - p.CenterRA - radToDeg(rotation))
	dec := degToRad(decDeg)
	cDec := degToRad(p.CenterDec)
	return math.Sin(cDec)*math.Sin(dec) + math.Cos(cDec)*math.Cos(dec)*math.Cos(ra)
}

// Project converts (raDeg, decDeg) to screen coordinates for a viewport of
// width×height pixels with the sky rotated by rotation radians.
// It returns false when the point is behind the viewer, falls outside the
// viewport plus CullMargin, or the viewport is empty.
func (p Projector) Project(raDeg, decDeg, rotation, width, height float64) (ScreenPoint, bool) {
	if !(width > 0 && height > 0) {
		return ScreenPoint{}, false
	}

	ra := degToRad(raDeg - p.CenterRA - radToDeg(rotation))
	dec := degToRad(decDeg)
	cDec := degToRad(p.CenterDec)

	cosDec, sinDec := math.Cos(dec), math.Sin(dec)
	cosCDec, sinCDec := math.Cos(cDec), math.Sin(cDec)
	cosRA, sinRA := math.Cos(ra), math.Sin(ra)

	d := sinCDec*sinDec + cosCDec*cosDec*cosRA
	if !(d >= p.MinDepth) { // also rejects NaN
		return ScreenPoint{}, false
	}

	scale := math.Min(width, height) * p.Scale
	x := (cosDec * sinRA) / d * scale
	y := (cosCDec*sinDec - sinCDec*cosDec*cosRA) / d * scale

	pt := ScreenPoint{
		X: width/2 + x,
		Y: height/2 - y, // screen Y grows downward
	}

	m := p.CullMargin
	if pt.X < -m || pt.X > width+m || pt.Y < -m || pt.Y > height+m {
		return ScreenPoint{}, false
	}
	return pt, true
}
