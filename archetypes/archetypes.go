package archetypes

import (
	"github.com/automoto/throne-wars/components"
	"github.com/automoto/throne-wars/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
		components.Stamina,
		components.Loadout,
		components.Physics,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.Physics,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
	)
	Effect = newArchetype(
		tags.Effect,
		components.Effect,
	)
	Space = newArchetype(
		components.Space,
	)
	Battle = newArchetype(
		components.Battle,
		components.Combo,
		components.Arena,
		components.Random,
		components.Intent,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
