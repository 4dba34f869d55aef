package systems

import (
	"math"
	"testing"

	"github.com/automoto/throne-wars/components"
	cfg "github.com/automoto/throne-wars/config"
	"github.com/automoto/throne-wars/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectileLeavesArena(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	factory.CreateProjectile(tb.w, 5, 300, math.Pi, 15, 20, true)
	factory.CreateProjectile(tb.w, 640, 300, 0, 15, 20, true)

	UpdateProjectiles(tb.w)
	require.Equal(t, 1, countProjectiles(tb.w))

	entry, ok := components.Projectile.First(tb.w)
	require.True(t, ok)
	assert.Equal(t, 655.0, components.Projectile.Get(entry).Position.X)
}

func TestPlayerArrowHitsFirstEnemyOnly(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	tb.placePlayer(100, 540)
	first := tb.spawnEnemy(400, 540, cfg.EnemySoldier)
	second := tb.spawnEnemy(400, 540, cfg.EnemyKnight)

	// One step lands the arrow on both centers (425, 580)
	factory.CreateProjectile(tb.w, 410, 580, 0, 15, 20, true)
	UpdateProjectiles(tb.w)

	assert.Equal(t, 30.0, components.Health.Get(first).Current)
	assert.Equal(t, 100.0, components.Health.Get(second).Current)
	assert.Equal(t, 1, GetCombo(tb.w).Count)
	assert.Equal(t, 0, countProjectiles(tb.w))

	// Knocked away from the shooter
	assert.Greater(t, components.Physics.Get(first).SpeedX, 0.0)
}

func TestPlayerArrowSkipsDeadEnemies(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	dead := tb.spawnEnemy(400, 540, cfg.EnemySoldier)
	ApplyEnemyDamage(tb.w, dead, 100, 0, 0)
	alive := tb.spawnEnemy(400, 540, cfg.EnemyKnight)

	factory.CreateProjectile(tb.w, 410, 580, 0, 15, 20, true)
	UpdateProjectiles(tb.w)
	assert.Equal(t, 80.0, components.Health.Get(alive).Current)
}

func TestEnemyArrowHitsPlayer(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	tb.placePlayer(600, 540)

	// Player center is (625, 580)
	factory.CreateProjectile(tb.w, 635, 580, math.Pi, 10, 15, false)
	UpdateProjectiles(tb.w)
	assert.Equal(t, 85.0, tb.health())
	assert.Equal(t, 0, countProjectiles(tb.w))
	assert.Equal(t, 0, GetCombo(tb.w).Count, "enemy arrows never feed the combo")
}

func TestEnemyArrowSpentOnInvinciblePlayer(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	tb.placePlayer(600, 540)
	tb.playerData().InvulnFrames = 10

	factory.CreateProjectile(tb.w, 635, 580, math.Pi, 10, 15, false)
	UpdateProjectiles(tb.w)
	assert.Equal(t, 100.0, tb.health())
	assert.Equal(t, 0, countProjectiles(tb.w))
}

func TestArrowMissKeepsFlying(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	tb.placePlayer(600, 540)
	tb.spawnEnemy(400, 540, cfg.EnemySoldier)

	// Player arrows ignore the player; enemy arrows ignore enemies
	factory.CreateProjectile(tb.w, 610, 580, 0, 15, 20, true)
	factory.CreateProjectile(tb.w, 410, 580, 0, 10, 20, false)
	UpdateProjectiles(tb.w)
	assert.Equal(t, 2, countProjectiles(tb.w))
	assert.Equal(t, 100.0, tb.health())
}

func TestProjectilesKeepCreationOrder(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	factory.CreateProjectile(tb.w, 5, 300, math.Pi, 15, 20, true)
	factory.CreateProjectile(tb.w, 640, 200, 0, 15, 20, true)
	factory.CreateProjectile(tb.w, 640, 300, 0, 15, 20, true)

	UpdateProjectiles(tb.w)
	factory.CreateProjectile(tb.w, 640, 400, 0, 15, 20, true)

	var seqs []int
	for _, e := range ProjectileEntries(tb.w) {
		seqs = append(seqs, components.Projectile.Get(e).Seq)
	}
	assert.Equal(t, []int{2, 3, 4}, seqs)
}
