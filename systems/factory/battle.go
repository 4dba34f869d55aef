package factory

import (
	"math/rand"

	"github.com/automoto/throne-wars/archetypes"
	"github.com/automoto/throne-wars/components"
	cfg "github.com/automoto/throne-wars/config"
	"github.com/automoto/throne-wars/shared/arena"
	"github.com/yohamta/donburi"
)

// CreateBattle spawns the singleton holding level, score, combo, arena and random source.
func CreateBattle(w donburi.World, layout arena.Layout, seed int64) *donburi.Entry {
	battle := archetypes.Battle.Spawn(w)
	components.Battle.SetValue(battle, components.BattleData{
		Level: cfg.Wave.StartingLevel,
	})
	components.Arena.SetValue(battle, components.ArenaData{Layout: layout})
	components.Random.SetValue(battle, components.RandomData{Rand: rand.New(rand.NewSource(seed))})
	return battle
}
