// Package arena provides the arena layout read from a Tiled map.
// It has no dependencies on ebitengine, donburi, or resolv. Pure data only.
package arena

import (
	"github.com/automoto/throne-wars/config"
	"github.com/automoto/throne-wars/shared/gamemath"
)

// Point is a position in arena pixels.
type Point struct {
	X, Y float64
}

// Layout holds everything the simulation needs to know about the arena.
type Layout struct {
	Name        string
	Width       float64
	Height      float64
	GroundY     float64 // Bodies rest with their bottom edge on this line
	PlayerSpawn Point   // Top-left corner of the player body at session start
	BossSpawn   Point   // Top-left corner of the boss body
}

// Default returns the built-in layout used when no map is supplied.
func Default() Layout {
	w, h := config.Arena.Width, config.Arena.Height
	return WithSize(w, h)
}

// WithSize derives a layout from dimensions alone using the built-in offsets.
func WithSize(w, h float64) Layout {
	return Layout{
		Name:    "default",
		Width:   w,
		Height:  h,
		GroundY: h - config.Arena.GroundOffset,
		PlayerSpawn: Point{
			X: w/2 - config.Player.Width/2,
			Y: h/2 - config.Player.Height/2,
		},
		BossSpawn: Point{
			X: w - config.Wave.BossSpawnLeft,
			Y: h - config.Wave.BossSpawnAbove,
		},
	}
}

// Bounds returns the clamp rectangle used by the physics step.
func (l Layout) Bounds() gamemath.Bounds {
	return gamemath.Bounds{Width: l.Width, Height: l.Height, GroundY: l.GroundY}
}
