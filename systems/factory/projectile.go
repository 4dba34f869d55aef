package factory

import (
	"github.com/automoto/throne-wars/archetypes"
	"github.com/automoto/throne-wars/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateProjectile spawns an arrow at (x, y) travelling along angle.
func CreateProjectile(w donburi.World, x, y, angle, speed float64, damage int, fromPlayer bool) *donburi.Entry {
	p := archetypes.Projectile.Spawn(w)
	battle := components.Battle.Get(components.Battle.MustFirst(w))
	battle.NextArrowID++

	components.Projectile.SetValue(p, components.ProjectileData{
		Seq:        battle.NextArrowID,
		Position:   math.Vec2{X: x, Y: y},
		Angle:      angle,
		Speed:      speed,
		Damage:     damage,
		FromPlayer: fromPlayer,
		Alive:      true,
	})
	return p
}
