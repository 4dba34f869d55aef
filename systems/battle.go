package systems

import (
	"math/rand"

	"github.com/automoto/throne-wars/components"
	"github.com/automoto/throne-wars/shared/arena"
	"github.com/automoto/throne-wars/shared/messages"
	"github.com/automoto/throne-wars/tags"
	"github.com/yohamta/donburi"
)

// System is one per-step update over a session world.
type System func(w donburi.World)

// WithGameplayChecks skips the wrapped system once the battle is over.
func WithGameplayChecks(system System) System {
	return func(w donburi.World) {
		if IsBattleOver(w) {
			return
		}
		system(w)
	}
}

// IsBattleOver reports whether the player has been defeated.
func IsBattleOver(w donburi.World) bool {
	entry, ok := components.Battle.First(w)
	if !ok {
		return true
	}
	return components.Battle.Get(entry).Over
}

// GetBattle returns the singleton battle state.
func GetBattle(w donburi.World) *components.BattleData {
	return components.Battle.Get(components.Battle.MustFirst(w))
}

// GetCombo returns the singleton combo state.
func GetCombo(w donburi.World) *components.ComboData {
	return components.Combo.Get(components.Combo.MustFirst(w))
}

// GetArena returns the session arena layout.
func GetArena(w donburi.World) arena.Layout {
	return components.Arena.Get(components.Arena.MustFirst(w)).Layout
}

// GetRand returns the session random source.
func GetRand(w donburi.World) *rand.Rand {
	return components.Random.Get(components.Random.MustFirst(w)).Rand
}

// SetIntent stores the input for the next step.
func SetIntent(w donburi.World, intent messages.Intent) {
	components.Intent.SetValue(components.Intent.MustFirst(w), components.IntentData{Intent: intent})
}

// GetIntent returns the input for the current step.
func GetIntent(w donburi.World) messages.Intent {
	return components.Intent.Get(components.Intent.MustFirst(w)).Intent
}

// GetPlayer returns the player entry, if one exists.
func GetPlayer(w donburi.World) (*donburi.Entry, bool) {
	return tags.Player.First(w)
}

// EnemyEntries returns every enemy entry in spawn order. Collected up front so callers may
// create or remove entities while walking the list.
func EnemyEntries(w donburi.World) []*donburi.Entry {
	var entries []*donburi.Entry
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	return entries
}

// AliveEnemies counts enemies that still take part in combat.
func AliveEnemies(w donburi.World) int {
	alive := 0
	components.Enemy.Each(w, func(e *donburi.Entry) {
		if components.Enemy.Get(e).Alive {
			alive++
		}
	})
	return alive
}
