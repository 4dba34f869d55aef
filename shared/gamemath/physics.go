package gamemath

// Damp scales a speed component by a per-tick factor in [0, 1].
func Damp(speed, factor float64) float64 {
	return speed * factor
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Bounds is the playable rectangle of an arena. The ground line sits above the bottom edge.
type Bounds struct {
	Width   float64
	Height  float64
	GroundY float64
}

// ClampResult reports which edges stopped a body.
type ClampResult struct {
	HitLeft, HitRight, Grounded bool
}

// ClampBody keeps a w*h body at (x, y) inside b and zeroes the speed component of every edge hit.
func ClampBody(b Bounds, x, y *float64, w, h float64, vx, vy *float64) ClampResult {
	var r ClampResult
	if *x < 0 {
		*x = 0
		*vx = 0
		r.HitLeft = true
	}
	if *x+w > b.Width {
		*x = b.Width - w
		*vx = 0
		r.HitRight = true
	}
	if *y+h > b.GroundY {
		*y = b.GroundY - h
		*vy = 0
		r.Grounded = true
	}
	return r
}
