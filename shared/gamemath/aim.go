package gamemath

import "math"

// CalculateHomingVelocity returns velocity components to move from (fromX, fromY) toward a target.
func CalculateHomingVelocity(fromX, fromY, targetX, targetY, speed float64) (velX, velY float64) {
	angle := math.Atan2(targetY-fromY, targetX-fromX)
	return math.Cos(angle) * speed, math.Sin(angle) * speed
}

// CalculateKnockback returns a velocity of the given force directed from source toward target.
func CalculateKnockback(sourceX, sourceY, targetX, targetY, force float64) (velX, velY float64) {
	return CalculateHomingVelocity(sourceX, sourceY, targetX, targetY, force)
}

// AimAngle returns the launch angle from one point toward another, in radians.
func AimAngle(fromX, fromY, toX, toY float64) float64 {
	return math.Atan2(toY-fromY, toX-fromX)
}

// FacingAngle is 0 for right-facing shots and Pi for left-facing shots.
func FacingAngle(facingX float64) float64 {
	if facingX < 0 {
		return math.Pi
	}
	return 0
}
