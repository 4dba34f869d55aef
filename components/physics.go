package components

import (
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	Gravity  float64
	Friction float64 // 1 disables damping
	OnGround bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
