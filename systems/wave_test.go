package systems

import (
	"fmt"
	"testing"

	"github.com/automoto/throne-wars/components"
	cfg "github.com/automoto/throne-wars/config"
	"github.com/automoto/throne-wars/shared/gamemath"
	"github.com/automoto/throne-wars/shared/messages"
	"github.com/automoto/throne-wars/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestWaveComposition(t *testing.T) {
	tests := []struct {
		level   int
		regular int
		boss    bool
	}{
		{level: 1, regular: 7},
		{level: 2, regular: 9},
		{level: 3, regular: 11, boss: true},
		{level: 6, regular: 17, boss: true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("level %d", tt.level), func(t *testing.T) {
			tb := newTestBattle(t, cfg.ClassNone)
			SpawnWave(tb.w, tt.level)

			total := tt.regular
			if tt.boss {
				total++
			}
			assert.Len(t, EnemyEntries(tb.w), total)
			assert.Equal(t, total, AliveEnemies(tb.w))

			bosses := 0
			tags.Boss.Each(tb.w, func(*donburi.Entry) { bosses++ })
			if tt.boss {
				assert.Equal(t, 1, bosses)
			} else {
				assert.Zero(t, bosses)
			}

			events := tb.drain()
			require.NotEmpty(t, events)
			last := events[len(events)-1]
			assert.Equal(t, messages.EventWaveSpawned, last.Kind)
			assert.Equal(t, tt.level, last.Amount)
			assert.Equal(t, total, last.Count)
		})
	}
}

func TestWaveSpawnsAwayFromPlayer(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	player := components.Object.Get(tb.player)
	layout := GetArena(tb.w)

	for level := 1; level <= 5; level++ {
		SpawnWave(tb.w, level)
		for _, e := range EnemyEntries(tb.w) {
			if e.HasComponent(tags.Boss) {
				continue
			}
			obj := components.Object.Get(e)
			assert.False(t, gamemath.TooClose(obj.X, obj.Y, player.X, player.Y, cfg.Wave.MinSeparation))
			assert.GreaterOrEqual(t, obj.X, cfg.Wave.SpawnMargin)
			assert.Less(t, obj.X, layout.Width-cfg.Wave.SpawnMargin)
			assert.GreaterOrEqual(t, obj.Y, cfg.Wave.SpawnMargin)
			assert.Less(t, obj.Y, layout.Height-cfg.Wave.SpawnFloor+cfg.Wave.SpawnMargin)
		}
	}
}

func TestSpawnWaveReplacesEnemies(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	SpawnWave(tb.w, 1)
	old := EnemyEntries(tb.w)
	ApplyEnemyDamage(tb.w, old[0], 1000, 0, 0)
	oldEntity := old[0].Entity()
	oldID := components.Enemy.Get(old[0]).ID

	SpawnWave(tb.w, 2)
	entries := EnemyEntries(tb.w)
	assert.Len(t, entries, 9)
	for _, e := range entries {
		assert.True(t, components.Enemy.Get(e).Alive)
		assert.NotNil(t, components.Object.Get(e).Space)
		assert.NotEqual(t, oldID, components.Enemy.Get(e).ID)
	}
	assert.False(t, tb.w.Valid(oldEntity))
}

func TestSpawnPointGivesUpAfterMaxTries(t *testing.T) {
	calls := 0
	// Always lands on the player
	x, y := spawnPoint(1280, 720, 50, 50, func() float64 { calls++; return 0 })
	assert.Equal(t, 50.0, x)
	assert.Equal(t, 50.0, y)
	assert.Equal(t, 2*cfg.Wave.MaxSpawnTries, calls)
}

func TestLevelComplete(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	SpawnWave(tb.w, 1)
	for _, e := range EnemyEntries(tb.w) {
		ApplyEnemyDamage(tb.w, e, 1000, 0, 0)
	}
	require.Zero(t, AliveEnemies(tb.w))
	scoreBefore := GetBattle(tb.w).Score

	components.Health.Get(tb.player).Current = 12
	tb.stamina().Current = 3
	tb.playerData().Blocking = true
	tb.drain()

	UpdateWave(tb.w)

	battle := GetBattle(tb.w)
	assert.Equal(t, 2, battle.Level)
	assert.Equal(t, scoreBefore+400, battle.Score)
	assert.Equal(t, 100.0, tb.health())
	assert.Equal(t, tb.stamina().Max, tb.stamina().Current)
	assert.False(t, tb.playerData().Blocking)
	assert.Equal(t, 9, AliveEnemies(tb.w))

	kinds := tb.kinds()
	require.Len(t, kinds, 2)
	assert.Equal(t, messages.EventLevelComplete, kinds[0])
	assert.Equal(t, messages.EventWaveSpawned, kinds[1])
}

func TestUpdateWaveWaitsForLastEnemy(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	SpawnWave(tb.w, 1)
	entries := EnemyEntries(tb.w)
	for _, e := range entries[1:] {
		ApplyEnemyDamage(tb.w, e, 1000, 0, 0)
	}
	UpdateWave(tb.w)
	assert.Equal(t, 1, GetBattle(tb.w).Level)
}
