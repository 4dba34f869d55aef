package systems

import (
	"github.com/automoto/throne-wars/components"
	"github.com/automoto/throne-wars/shared/gamemath"
	"github.com/yohamta/donburi"
)

// applyPhysics runs one physics step on a body: gravity, damping, integration and the arena
// clamp. The resolv object is re-registered in the grid afterwards.
func applyPhysics(w donburi.World, e *donburi.Entry) {
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e)

	physics.SpeedY += physics.Gravity
	physics.SpeedX = gamemath.Damp(physics.SpeedX, physics.Friction)
	physics.SpeedY = gamemath.Damp(physics.SpeedY, physics.Friction)

	obj.X += physics.SpeedX
	obj.Y += physics.SpeedY

	clamp := gamemath.ClampBody(GetArena(w).Bounds(), &obj.X, &obj.Y, obj.W, obj.H, &physics.SpeedX, &physics.SpeedY)
	physics.OnGround = clamp.Grounded

	obj.Update()
}
