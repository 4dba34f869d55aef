package systems

import (
	"math"
	"sort"

	"github.com/automoto/throne-wars/components"
	"github.com/automoto/throne-wars/shared/gamemath"
	"github.com/automoto/throne-wars/tags"
	"github.com/yohamta/donburi"
)

// UpdateProjectiles moves every arrow, tests it against the opposing side and prunes the spent ones.
func UpdateProjectiles(w donburi.World) {
	projectiles := ProjectileEntries(w)
	bounds := GetArena(w).Bounds()
	for _, e := range projectiles {
		p := components.Projectile.Get(e)
		if !p.Alive {
			continue
		}

		p.Position.X += math.Cos(p.Angle) * p.Speed
		p.Position.Y += math.Sin(p.Angle) * p.Speed
		if gamemath.OutOfBounds(p.Position.X, p.Position.Y, bounds.Width, bounds.Height) {
			p.Alive = false
			continue
		}

		if p.FromPlayer {
			resolvePlayerArrow(w, p)
		} else {
			resolveEnemyArrow(w, p)
		}
	}

	for _, e := range projectiles {
		if !components.Projectile.Get(e).Alive {
			w.Remove(e.Entity())
		}
	}
}

// ProjectileEntries returns every projectile in creation order. Removal swaps entries inside
// the archetype storage, so the order is restored from the creation sequence.
func ProjectileEntries(w donburi.World) []*donburi.Entry {
	var entries []*donburi.Entry
	tags.Projectile.Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	sort.Slice(entries, func(i, j int) bool {
		return components.Projectile.Get(entries[i]).Seq < components.Projectile.Get(entries[j]).Seq
	})
	return entries
}

// resolvePlayerArrow hits the first alive enemy in spawn order.
func resolvePlayerArrow(w donburi.World, p *components.ProjectileData) {
	playerEntry, ok := GetPlayer(w)
	if !ok {
		return
	}
	source := components.Object.Get(playerEntry)

	for _, enemyEntry := range EnemyEntries(w) {
		if !components.Enemy.Get(enemyEntry).Alive {
			continue
		}
		if !gamemath.PointHitsBox(p.Position.X, p.Position.Y, components.Object.Get(enemyEntry).Rect()) {
			continue
		}
		ApplyEnemyDamage(w, enemyEntry, p.Damage, source.X, source.Y)
		RegisterHit(w)
		p.Alive = false
		return
	}
}

// resolveEnemyArrow is spent on contact even when the player shrugs it off.
func resolveEnemyArrow(w donburi.World, p *components.ProjectileData) {
	playerEntry, ok := GetPlayer(w)
	if !ok || components.Player.Get(playerEntry).Defeated {
		return
	}
	if !gamemath.PointHitsBox(p.Position.X, p.Position.Y, components.Object.Get(playerEntry).Rect()) {
		return
	}
	ApplyPlayerDamage(w, playerEntry, p.Damage)
	p.Alive = false
}
