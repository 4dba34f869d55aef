package systems

import (
	"testing"

	"github.com/automoto/throne-wars/components"
	cfg "github.com/automoto/throne-wars/config"
	"github.com/automoto/throne-wars/shared/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemyIdlesOutsideAggroRange(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	tb.placePlayer(100, 540)
	enemy := tb.spawnEnemy(1000, 540, cfg.EnemySoldier)
	physics := components.Physics.Get(enemy)
	physics.SpeedX = 4

	UpdateEnemies(tb.w)
	assert.InDelta(t, 3.6, physics.SpeedX, 1e-9)
}

func TestEnemyPursuesPlayer(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	tb.placePlayer(600, 540)
	enemy := tb.spawnEnemy(800, 540, cfg.EnemySoldier)

	UpdateEnemies(tb.w)
	obj := components.Object.Get(enemy)
	assert.InDelta(t, 798, obj.X, 1e-9)
	assert.Less(t, components.Physics.Get(enemy).SpeedX, 0.0)
}

func TestEnemyMeleeNeedsOverlap(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	tb.placePlayer(600, 540)
	touching := tb.spawnEnemy(640, 540, cfg.EnemyKnight)

	UpdateEnemies(tb.w)
	assert.Equal(t, 80.0, tb.health())
	enemy := components.Enemy.Get(touching)
	assert.True(t, enemy.Attacking)
	assert.Equal(t, cfg.Enemy.MeleeCooldown-1, enemy.AttackTimer)

	// Timer is running, so no second blow even once the invulnerability ends
	tb.playerData().InvulnFrames = 0
	UpdateEnemies(tb.w)
	assert.Equal(t, 80.0, tb.health())
}

func TestEnemyMeleeWhiffStillStartsCooldown(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	tb.placePlayer(600, 540)
	// Within attack range but the bodies are apart
	enemy := tb.spawnEnemy(655, 540, cfg.EnemySoldier)

	UpdateEnemies(tb.w)
	data := components.Enemy.Get(enemy)
	assert.Equal(t, cfg.Enemy.MeleeCooldown-1, data.AttackTimer)
	assert.Equal(t, 100.0, tb.health())
}

func TestArcherFiresOnCooldown(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	tb.placePlayer(600, 540)
	archer := tb.spawnEnemy(560, 500, cfg.EnemyArcher)
	tb.drain()

	UpdateEnemies(tb.w)
	require.Equal(t, 1, countProjectiles(tb.w))
	assert.Equal(t, cfg.Enemy.RangedCooldown-1, components.Enemy.Get(archer).RangedCooldown)

	arrow, _ := components.Projectile.First(tb.w)
	p := components.Projectile.Get(arrow)
	assert.False(t, p.FromPlayer)
	assert.Equal(t, cfg.Projectile.EnemySpeed, p.Speed)
	assert.Equal(t, 15, p.Damage)
	assert.Contains(t, tb.kinds(), messages.EventProjectileFired)

	UpdateEnemies(tb.w)
	assert.Equal(t, 1, countProjectiles(tb.w))
}

func TestArcherFiresOncePerCooldown(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	tb.placePlayer(600, 540)
	archer := tb.spawnEnemy(560, 500, cfg.EnemyArcher)
	obj := components.Object.Get(archer)
	tb.drain()

	fired := 0
	for i := 0; i < 2*cfg.Enemy.RangedCooldown; i++ {
		tb.playerData().InvulnFrames = cfg.Player.InvulnFrames
		UpdateEnemies(tb.w)
		obj.X, obj.Y = 560, 500
		obj.Update()
		for _, kind := range tb.kinds() {
			if kind == messages.EventProjectileFired {
				fired++
			}
		}
	}
	assert.Equal(t, 2, fired)
	assert.Equal(t, 2, countProjectiles(tb.w))
}

func TestEnemyMeleeAcrossCellLine(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	// Player body ends at 224.5, just past the cell line at 224
	tb.placePlayer(174.5, 540)
	tb.spawnEnemy(224.2, 540, cfg.EnemySoldier)

	UpdateEnemies(tb.w)
	assert.Equal(t, 90.0, tb.health())
}

func TestDeadEnemiesSitStill(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	tb.placePlayer(600, 540)
	enemy := tb.spawnEnemy(700, 540, cfg.EnemySoldier)
	ApplyEnemyDamage(tb.w, enemy, 100, 600, 540)
	x := components.Object.Get(enemy).X

	UpdateEnemies(tb.w)
	assert.Equal(t, x, components.Object.Get(enemy).X)
}
