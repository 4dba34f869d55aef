package systems

import (
	"testing"

	"github.com/automoto/throne-wars/components"
	cfg "github.com/automoto/throne-wars/config"
	"github.com/automoto/throne-wars/shared/gamemath"
	"github.com/automoto/throne-wars/shared/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerDamage(t *testing.T) {
	tests := []struct {
		name     string
		blocking bool
		dodging  bool
		invuln   int
		amount   int
		taken    int
		kinds    []messages.EventKind
	}{
		{name: "open hit", amount: 20, taken: 20, kinds: []messages.EventKind{messages.EventPlayerHit}},
		{name: "blocked", blocking: true, amount: 20, taken: 6, kinds: []messages.EventKind{messages.EventBlock}},
		{name: "blocked rounds down", blocking: true, amount: 15, taken: 4, kinds: []messages.EventKind{messages.EventBlock}},
		{name: "dodging", dodging: true, amount: 20},
		{name: "invincible", invuln: 5, amount: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := newTestBattle(t, cfg.ClassNone)
			player := tb.playerData()
			player.Blocking = tt.blocking
			player.Dodging = tt.dodging
			player.InvulnFrames = tt.invuln
			before := tb.health()

			taken := ApplyPlayerDamage(tb.w, tb.player, tt.amount)
			assert.Equal(t, tt.taken, taken)
			assert.Equal(t, before-float64(tt.taken), tb.health())
			assert.Equal(t, tt.kinds, tb.kinds())
		})
	}
}

func TestPlayerInvincibleAfterHit(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	ApplyPlayerDamage(tb.w, tb.player, 10)
	assert.Equal(t, cfg.Player.InvulnFrames, tb.playerData().InvulnFrames)
	assert.Equal(t, 90.0, tb.health())

	assert.Equal(t, 0, ApplyPlayerDamage(tb.w, tb.player, 10))
	assert.Equal(t, 90.0, tb.health())

	for i := 0; i < cfg.Player.InvulnFrames; i++ {
		tb.step(messages.Intent{})
	}
	assert.Equal(t, 10, ApplyPlayerDamage(tb.w, tb.player, 10))
	assert.Equal(t, 80.0, tb.health())
}

func TestPlayerDeathEndsBattle(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	tb.drain()

	ApplyPlayerDamage(tb.w, tb.player, 500)
	assert.Equal(t, 0.0, tb.health())
	assert.True(t, tb.playerData().Defeated)
	assert.True(t, IsBattleOver(tb.w))
	assert.Equal(t, []messages.EventKind{messages.EventPlayerHit, messages.EventPlayerDeath}, tb.kinds())

	// Gated systems stop running
	WithGameplayChecks(UpdatePlayer)(tb.w)
	assert.Equal(t, 0, ApplyPlayerDamage(tb.w, tb.player, 10))
}

func TestEnemyDamageKnocksBackAndKills(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	enemy := tb.spawnEnemy(700, 540, cfg.EnemySoldier)

	ApplyEnemyDamage(tb.w, enemy, 20, 600, 540)
	physics := components.Physics.Get(enemy)
	assert.InDelta(t, cfg.Enemy.KnockbackForce, physics.SpeedX, 1e-9)
	assert.InDelta(t, 0, physics.SpeedY, 1e-9)
	assert.Equal(t, 30.0, components.Health.Get(enemy).Current)
	assert.True(t, components.Enemy.Get(enemy).Alive)

	ApplyEnemyDamage(tb.w, enemy, 30, 800, 540)
	assert.Less(t, physics.SpeedX, 0.0)
	assert.False(t, components.Enemy.Get(enemy).Alive)
	assert.Equal(t, 100, GetBattle(tb.w).Score)
	assert.Nil(t, components.Object.Get(enemy).Space, "dead bodies leave the space")

	kinds := tb.kinds()
	assert.Equal(t, []messages.EventKind{messages.EventEnemyHit, messages.EventEnemyHit, messages.EventEnemyDeath}, kinds)

	// Further damage is ignored
	ApplyEnemyDamage(tb.w, enemy, 30, 800, 540)
	assert.Equal(t, 100, GetBattle(tb.w).Score)
}

func TestBossKillScore(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	boss := tb.spawnEnemy(900, 500, cfg.EnemyBoss)
	ApplyEnemyDamage(tb.w, boss, 1000, 0, 0)
	assert.Equal(t, 500, GetBattle(tb.w).Score)
}

func TestMeleeHitsOnlyInFront(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	tb.placePlayer(600, 540)
	front := tb.spawnEnemy(670, 540, cfg.EnemySoldier)
	behind := tb.spawnEnemy(520, 540, cfg.EnemySoldier)
	far := tb.spawnEnemy(900, 540, cfg.EnemySoldier)

	weapon := components.Loadout.Get(tb.player).Equipped()
	hits := ResolveMeleeHitbox(tb.w, tb.player, weapon)
	assert.Equal(t, 1, hits)

	damage := 50 - components.Health.Get(front).Current
	assert.GreaterOrEqual(t, damage, 15.0)
	assert.Less(t, damage, 20.0)
	assert.Equal(t, 50.0, components.Health.Get(behind).Current)
	assert.Equal(t, 50.0, components.Health.Get(far).Current)
	assert.Equal(t, 1, GetCombo(tb.w).Count)

	tb.playerData().Direction = cfg.DirectionLeft
	assert.Equal(t, 1, ResolveMeleeHitbox(tb.w, tb.player, weapon))
	assert.Less(t, components.Health.Get(behind).Current, 50.0)
	assert.Equal(t, 2, GetCombo(tb.w).Count)
}

func TestMeleeHitsEveryOverlappingEnemy(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	tb.placePlayer(600, 540)
	tb.spawnEnemy(655, 540, cfg.EnemySoldier)
	tb.spawnEnemy(680, 540, cfg.EnemyKnight)

	weapon := components.Loadout.Get(tb.player).Equipped()
	assert.Equal(t, 2, ResolveMeleeHitbox(tb.w, tb.player, weapon))
	assert.Equal(t, 2, GetCombo(tb.w).Count)
}

func TestMeleeHitsAcrossCellLine(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	// Band ends at 224.5, just past the cell line at 224
	tb.placePlayer(114.5, 540)
	enemy := tb.spawnEnemy(224.2, 540, cfg.EnemySoldier)

	weapon := components.Loadout.Get(tb.player).Equipped()
	box := MeleeHitbox(tb.player, weapon.Range)
	require.True(t, gamemath.Overlaps(box, components.Object.Get(enemy).Rect()))

	assert.Equal(t, 1, ResolveMeleeHitbox(tb.w, tb.player, weapon))
	assert.Less(t, components.Health.Get(enemy).Current, 50.0)
}

func TestMeleeHitboxGeometry(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	tb.placePlayer(600, 540)

	box := MeleeHitbox(tb.player, 60)
	assert.Equal(t, 650.0, box.X)
	assert.Equal(t, 560.0, box.Y)
	assert.Equal(t, 60.0, box.W)
	assert.Equal(t, 40.0, box.H)

	tb.playerData().Direction = cfg.DirectionLeft
	assert.Equal(t, 540.0, MeleeHitbox(tb.player, 60).X)
}
