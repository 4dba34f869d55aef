package systems

import (
	"math"
	"testing"

	"github.com/automoto/throne-wars/components"
	cfg "github.com/automoto/throne-wars/config"
	"github.com/automoto/throne-wars/shared/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerJumpOnlyFromGround(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	tb.step(messages.Intent{})
	physics := components.Physics.Get(tb.player)
	require.True(t, physics.OnGround)

	tb.step(messages.Intent{JumpRequested: true})
	assert.False(t, physics.OnGround)
	assert.Less(t, physics.SpeedY, 0.0)

	// A second request mid-air does nothing
	speed := physics.SpeedY
	tb.step(messages.Intent{JumpRequested: true})
	assert.Greater(t, physics.SpeedY, speed)
}

func TestPlayerStickUpJumps(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	tb.step(messages.Intent{})
	tb.step(messages.Intent{MoveY: -0.5})
	assert.False(t, components.Physics.Get(tb.player).OnGround)
}

func TestPlayerMovementSetsFacing(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	startX := components.Object.Get(tb.player).X

	tb.step(messages.Intent{MoveX: -1})
	assert.Equal(t, cfg.DirectionLeft, tb.playerData().Direction)
	assert.Less(t, components.Object.Get(tb.player).X, startX)

	tb.step(messages.Intent{MoveX: 1})
	assert.Equal(t, cfg.DirectionRight, tb.playerData().Direction)
}

func TestPlayerStaysInsideArena(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassArcher)
	for i := 0; i < 600; i++ {
		tb.step(messages.Intent{MoveX: -1, JumpRequested: i%30 == 0})
	}
	obj := components.Object.Get(tb.player)
	assert.Equal(t, 0.0, obj.X)
	layout := GetArena(tb.w)
	assert.LessOrEqual(t, obj.Y+obj.H, layout.GroundY)
}

func TestBlockCostsStaminaAndReleasesWhenEmpty(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	stamina := tb.stamina()

	tb.step(messages.Intent{BlockHeld: true})
	assert.True(t, tb.playerData().Blocking)
	assert.Equal(t, cfg.Player.MaxStamina-cfg.Player.BlockCost, stamina.Current)

	tb.step(messages.Intent{BlockHeld: true})
	assert.Equal(t, cfg.Player.MaxStamina-cfg.Player.BlockCost-cfg.Player.BlockDrain, stamina.Current)

	tb.step(messages.Intent{})
	assert.False(t, tb.playerData().Blocking)

	stamina.Current = cfg.Player.BlockMinStamina
	steps := 0
	for tb.playerData().Blocking || steps == 0 {
		tb.step(messages.Intent{BlockHeld: true})
		steps++
		require.Less(t, steps, 100)
	}
	assert.Equal(t, 33, steps)
	assert.Equal(t, stamina.Regen, stamina.Current)
}

func TestBlockNeedsMinimumStamina(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	tb.stamina().Current = cfg.Player.BlockMinStamina - 1
	tb.step(messages.Intent{BlockHeld: true})
	assert.False(t, tb.playerData().Blocking)
}

func TestDodgeGating(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	stamina := tb.stamina()

	stamina.Current = 29
	assert.False(t, Dodge(tb.w, tb.player))
	assert.False(t, tb.playerData().Dodging)

	stamina.Current = 100
	require.True(t, Dodge(tb.w, tb.player))
	player := tb.playerData()
	assert.Equal(t, 70.0, stamina.Current)
	assert.Equal(t, 60, player.DodgeCooldown)
	assert.Equal(t, 20, player.InvulnFrames)
	assert.True(t, player.Dodging)
	assert.Equal(t, cfg.Player.DodgeSpeed, components.Physics.Get(tb.player).SpeedX)
	assert.Contains(t, tb.kinds(), messages.EventDodge)

	// Cooldown blocks a second dodge
	assert.False(t, Dodge(tb.w, tb.player))
	assert.Equal(t, 70.0, stamina.Current)
}

func TestDodgeClearsAfterDuration(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	tb.step(messages.Intent{DodgeRequested: true})
	require.True(t, tb.playerData().Dodging)

	for i := 2; i < cfg.Player.DodgeDuration; i++ {
		tb.step(messages.Intent{})
	}
	assert.True(t, tb.playerData().Dodging)
	tb.step(messages.Intent{})
	assert.False(t, tb.playerData().Dodging)

	// Cooldown still running, so a new request is ignored
	tb.step(messages.Intent{DodgeRequested: true})
	assert.False(t, tb.playerData().Dodging)
}

func TestStaminaStaysInRange(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassBerserker)
	for i := 0; i < 400; i++ {
		tb.step(messages.Intent{
			BlockHeld:      i%50 < 30,
			DodgeRequested: i%7 == 0,
		})
		s := tb.stamina()
		require.GreaterOrEqual(t, s.Current, 0.0)
		require.LessOrEqual(t, s.Current, s.Max)
	}
}

func TestAttackStartsCooldownAndAnimation(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	tb.step(messages.Intent{AttackRequested: true})

	player := tb.playerData()
	assert.True(t, player.Attacking)
	assert.Equal(t, cfg.Weapons[cfg.WeaponSword].Cooldown-1, player.AttackCooldown)
	assert.Equal(t, 1, player.AttackAnimation)

	// Still swinging
	assert.False(t, Attack(tb.w, tb.player))

	for i := 0; i < cfg.Player.AttackAnimation; i++ {
		tb.step(messages.Intent{})
	}
	assert.False(t, player.Attacking)
	assert.Equal(t, 0, player.AttackAnimation)
}

func TestEmptyBowOnlyReportsMiss(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	loadout := components.Loadout.Get(tb.player)
	loadout.Current = int(cfg.WeaponBow)
	loadout.Equipped().Ammo = 0
	tb.drain()

	assert.False(t, Attack(tb.w, tb.player))
	assert.False(t, tb.playerData().Attacking)
	assert.Equal(t, 0, tb.playerData().AttackCooldown)
	assert.Equal(t, []messages.EventKind{messages.EventOutOfAmmo}, tb.kinds())
	assert.Equal(t, 0, countProjectiles(tb.w))
}

func TestBowFiresAlongFacing(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	loadout := components.Loadout.Get(tb.player)
	loadout.Current = int(cfg.WeaponBow)
	tb.playerData().Direction = cfg.DirectionLeft

	require.True(t, Attack(tb.w, tb.player))
	assert.Equal(t, cfg.Weapons[cfg.WeaponBow].MaxAmmo-1, loadout.Equipped().Ammo)

	obj := components.Object.Get(tb.player)
	arrow, ok := components.Projectile.First(tb.w)
	require.True(t, ok)
	p := components.Projectile.Get(arrow)
	assert.Equal(t, obj.X, p.Position.X)
	assert.Equal(t, obj.Y+obj.H/2, p.Position.Y)
	assert.Equal(t, math.Pi, p.Angle)
	assert.True(t, p.FromPlayer)
	assert.Contains(t, tb.kinds(), messages.EventProjectileFired)
}

func TestReloadAndSwitch(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassArcher)
	loadout := components.Loadout.Get(tb.player)

	// Melee weapons have nothing to reload
	assert.False(t, Reload(tb.w, tb.player))

	tb.step(messages.Intent{SwitchWeaponRequested: true})
	tb.step(messages.Intent{SwitchWeaponRequested: true})
	require.Equal(t, int(cfg.WeaponBow), loadout.Current)
	assert.False(t, Reload(tb.w, tb.player), "full quiver")

	loadout.Equipped().Ammo = 3
	tb.drain()
	tb.step(messages.Intent{ReloadRequested: true})
	assert.Equal(t, 15, loadout.Equipped().Ammo)
	assert.Contains(t, tb.kinds(), messages.EventWeaponReload)

	tb.step(messages.Intent{SwitchWeaponRequested: true})
	assert.Equal(t, int(cfg.WeaponSword), loadout.Current)
	assert.Contains(t, tb.kinds(), messages.EventWeaponSwitch)
}
