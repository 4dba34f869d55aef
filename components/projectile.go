package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type ProjectileData struct {
	Seq        int // Creation order within the battle
	Position   math.Vec2
	Angle      float64 // Radians, fixed at launch
	Speed      float64
	Damage     int
	FromPlayer bool
	Alive      bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()
