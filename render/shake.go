package render

import "math"

// Shake is a decaying screen shake. The zero value is at rest.
type Shake struct {
	Intensity float64
	Duration  int
	Elapsed   int
}

// Trigger starts a shake unless a stronger one is already running.
func (s *Shake) Trigger(intensity float64, duration int) {
	if s.Active() && intensity <= s.Intensity {
		return
	}
	s.Intensity = intensity
	s.Duration = duration
	s.Elapsed = 0
}

// Active reports whether the shake is still running.
func (s *Shake) Active() bool {
	return s.Elapsed < s.Duration
}

// Advance steps the shake by one frame and returns the screen offset.
func (s *Shake) Advance() (float64, float64) {
	if !s.Active() {
		return 0, 0
	}
	s.Elapsed++

	// Calculate decaying intensity
	progress := float64(s.Duration-s.Elapsed) / float64(s.Duration)
	if progress < 0 {
		progress = 0
	}
	current := s.Intensity * progress

	return math.Sin(float64(s.Elapsed)*1.1) * current, math.Cos(float64(s.Elapsed)*1.3) * current
}
