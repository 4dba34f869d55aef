package systems

import (
	"fmt"

	"github.com/automoto/throne-wars/components"
	cfg "github.com/automoto/throne-wars/config"
	"github.com/automoto/throne-wars/shared/gamemath"
	"github.com/automoto/throne-wars/shared/messages"
	"github.com/automoto/throne-wars/systems/factory"
	"github.com/yohamta/donburi"
)

// WaveSize returns the number of regular enemies in a level's wave.
func WaveSize(level int) int {
	return cfg.Wave.BaseCount + cfg.Wave.PerLevel*level
}

// HasBoss reports whether a level adds a boss to its wave.
func HasBoss(level int) bool {
	return cfg.Wave.BossEvery > 0 && level%cfg.Wave.BossEvery == 0
}

// SpawnWave replaces every enemy with a fresh wave for level.
func SpawnWave(w donburi.World, level int) {
	for _, e := range EnemyEntries(w) {
		factory.DestroyEnemy(w, e)
	}

	layout := GetArena(w)
	rng := GetRand(w)

	var playerX, playerY float64
	if playerEntry, ok := GetPlayer(w); ok {
		obj := components.Object.Get(playerEntry)
		playerX, playerY = obj.X, obj.Y
	}

	pool := cfg.Wave.SpawnPool
	count := WaveSize(level)
	for i := 0; i < count; i++ {
		enemyType := pool[rng.Intn(len(pool))]
		x, y := spawnPoint(layout.Width, layout.Height, playerX, playerY, rng.Float64)
		factory.CreateEnemy(w, x, y, enemyType)
	}

	total := count
	if HasBoss(level) {
		factory.CreateEnemy(w, layout.BossSpawn.X, layout.BossSpawn.Y, cfg.EnemyBoss)
		total++
	}

	emitEvent(w, messages.FeedbackEvent{
		Kind:   messages.EventWaveSpawned,
		Amount: level,
		Count:  total,
	})
}

// spawnPoint rejection-samples a position that is not close to the player on both axes.
// After MaxSpawnTries the last sample is taken as is.
func spawnPoint(width, height, playerX, playerY float64, random func() float64) (float64, float64) {
	margin := cfg.Wave.SpawnMargin
	var x, y float64
	for try := 0; try < cfg.Wave.MaxSpawnTries; try++ {
		x = margin + random()*(width-2*margin)
		y = margin + random()*(height-cfg.Wave.SpawnFloor)
		if !gamemath.TooClose(x, y, playerX, playerY, cfg.Wave.MinSeparation) {
			break
		}
	}
	return x, y
}

// UpdateWave completes the level once every enemy is down.
func UpdateWave(w donburi.World) {
	if AliveEnemies(w) > 0 {
		return
	}
	CompleteLevel(w)
}

// CompleteLevel advances the level, restores the player and awards the level bonus.
func CompleteLevel(w donburi.World) {
	battle := GetBattle(w)
	battle.Level++
	bonus := battle.Level * cfg.Wave.LevelBonus
	battle.AddScore(bonus)

	layout := GetArena(w)
	cx, cy := layout.Width/2, layout.Height/2

	if playerEntry, ok := GetPlayer(w); ok {
		hp := components.Health.Get(playerEntry)
		hp.Current = hp.Max
		stamina := components.Stamina.Get(playerEntry)
		stamina.Current = stamina.Max
		components.Player.Get(playerEntry).Blocking = false
	}

	factory.CreateCombatText(w, cfg.TextLevelComplete, cx, cy)
	factory.CreateCombatText(w, fmt.Sprintf("+%d points", bonus), cx, cy+50)
	emitEvent(w, messages.FeedbackEvent{
		Kind:   messages.EventLevelComplete,
		X:      cx,
		Y:      cy,
		Amount: bonus,
		Count:  battle.Level,
	})

	SpawnWave(w, battle.Level)
}
