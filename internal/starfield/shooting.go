package starfield

import "math"

// ShootingStar is a transient streak crossing the viewport.
type ShootingStar struct {
	X, Y        float64 // head position in pixels
	VX, VY      float64 // velocity in pixels per frame
	Life        float64 // remaining frames
	InitialLife float64
	Width       float64 // stroke width in pixels
}

// Progress returns the remaining fraction of the star's life.
func (s ShootingStar) Progress() float64 {
	if s.InitialLife <= 0 {
		return 0
	}
	return s.Life / s.InitialLife
}

// Opacity returns the star's opacity: a fade-in while progress is above
// fadeIn, a fade-out below fadeOut, fully visible in between.
func (s ShootingStar) Opacity(fadeIn, fadeOut float64) float64 {
	p := s.Progress()

	var o float64
	switch {
	case p > fadeIn:
		o = (1 - p) / (1 - fadeIn)
	case p < fadeOut:
		o = p / fadeOut
	default:
		o = 1
	}
	return math.Max(0, math.Min(1, o))
}

// Tail returns the end point of the trail, tailLength frames of travel
// behind the head.
func (s ShootingStar) Tail(tailLength float64) (x, y float64) {
	return s.X - s.VX*tailLength, s.Y - s.VY*tailLength
}

// advance moves the star one frame.
func (s *ShootingStar) advance() {
	s.X += s.VX
	s.Y += s.VY
	s.Life--
}

// expired reports whether the star should leave the active set.
func (s ShootingStar) expired(width, height, margin float64) bool {
	return s.Life <= 0 ||
		s.X > width+margin || s.X < -margin ||
		s.Y > height+margin || s.Y < -margin
}
