package systems

import (
	"github.com/automoto/throne-wars/components"
	cfg "github.com/automoto/throne-wars/config"
	"github.com/automoto/throne-wars/shared/gamemath"
	"github.com/automoto/throne-wars/shared/messages"
	"github.com/automoto/throne-wars/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdatePlayer applies the step intent to the player and advances its physics and timers.
func UpdatePlayer(w donburi.World) {
	playerEntry, ok := GetPlayer(w)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.Defeated {
		return
	}

	intent := GetIntent(w)

	// Discrete actions first so their effects show up in this step's physics
	if intent.SwitchWeaponRequested {
		SwitchWeapon(w, playerEntry)
	}
	if intent.ReloadRequested {
		Reload(w, playerEntry)
	}
	updateBlock(playerEntry, intent.BlockHeld)
	if intent.DodgeRequested {
		Dodge(w, playerEntry)
	}
	if intent.AttackRequested {
		Attack(w, playerEntry)
	}

	handleMovement(playerEntry, intent)
	applyPhysics(w, playerEntry)
	updatePlayerTimers(playerEntry)
}

func handleMovement(playerEntry *donburi.Entry, intent messages.Intent) {
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	if physics.OnGround && (intent.JumpRequested || intent.MoveY < cfg.Player.JumpStickThreshold) {
		physics.SpeedY = cfg.Player.JumpSpeed
		physics.OnGround = false
	}

	if intent.MoveX == 0 {
		return
	}
	if intent.MoveX > 0 {
		player.Direction = cfg.DirectionRight
	} else {
		player.Direction = cfg.DirectionLeft
	}
	// The dodge impulse owns horizontal speed until the dodge ends
	if !player.Dodging {
		physics.SpeedX = intent.MoveX * player.Speed
	}
}

func updatePlayerTimers(playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	stamina := components.Stamina.Get(playerEntry)

	if !player.Blocking && !player.Dodging && stamina.Current < stamina.Max {
		stamina.Current = gamemath.Clamp(stamina.Current+stamina.Regen, 0, stamina.Max)
	}

	if player.AttackCooldown > 0 {
		player.AttackCooldown--
	}
	if player.DodgeCooldown > 0 {
		player.DodgeCooldown--
	}
	if player.InvulnFrames > 0 {
		player.InvulnFrames--
	}
	if player.DodgeTimer > 0 {
		player.DodgeTimer--
		if player.DodgeTimer == 0 {
			player.Dodging = false
		}
	}

	if player.Attacking && player.AttackAnimation < cfg.Player.AttackAnimation {
		player.AttackAnimation++
	} else {
		player.Attacking = false
		player.AttackAnimation = 0
	}
}

// updateBlock raises, holds or drops the guard. Stamina pays for it and running dry drops it.
func updateBlock(playerEntry *donburi.Entry, held bool) {
	player := components.Player.Get(playerEntry)
	stamina := components.Stamina.Get(playerEntry)

	if !held {
		player.Blocking = false
		return
	}

	if !player.Blocking {
		if stamina.Current >= cfg.Player.BlockMinStamina {
			player.Blocking = true
			stamina.Current -= cfg.Player.BlockCost
		}
	} else {
		stamina.Current -= cfg.Player.BlockDrain
	}

	if stamina.Current <= 0 {
		stamina.Current = 0
		player.Blocking = false
	}
}

// Dodge grants a short invincible burst in the facing direction. Ignored on cooldown or when
// stamina is short.
func Dodge(w donburi.World, playerEntry *donburi.Entry) bool {
	player := components.Player.Get(playerEntry)
	stamina := components.Stamina.Get(playerEntry)
	if player.DodgeCooldown > 0 || stamina.Current < cfg.Player.DodgeCost {
		return false
	}

	player.Dodging = true
	player.DodgeTimer = cfg.Player.DodgeDuration
	player.DodgeCooldown = cfg.Player.DodgeCooldown
	player.InvulnFrames = cfg.Player.DodgeInvuln
	stamina.Current -= cfg.Player.DodgeCost

	physics := components.Physics.Get(playerEntry)
	physics.SpeedX = player.Direction * cfg.Player.DodgeSpeed

	obj := components.Object.Get(playerEntry)
	feetX, feetY := obj.X+obj.W/2, obj.Y+obj.H
	factory.CreateEffect(w, cfg.EffectDust, feetX, feetY)
	emit(w, messages.EventDodge, feetX, feetY, 0)
	return true
}

// SwitchWeapon cycles to the next carried weapon.
func SwitchWeapon(w donburi.World, playerEntry *donburi.Entry) {
	loadout := components.Loadout.Get(playerEntry)
	loadout.Cycle()

	obj := components.Object.Get(playerEntry)
	emitEvent(w, messages.FeedbackEvent{
		Kind:   messages.EventWeaponSwitch,
		X:      obj.X,
		Y:      obj.Y,
		Amount: int(loadout.Equipped().ID),
		Count:  loadout.Current,
	})
}

// Reload refills the equipped weapon if it is ranged and not already full.
func Reload(w donburi.World, playerEntry *donburi.Entry) bool {
	weapon := components.Loadout.Get(playerEntry).Equipped()
	if !weapon.Ranged || weapon.Ammo >= weapon.MaxAmmo {
		return false
	}
	weapon.Ammo = weapon.MaxAmmo

	obj := components.Object.Get(playerEntry)
	factory.CreateCombatText(w, cfg.TextBowReloaded, obj.X, obj.Y-50)
	emit(w, messages.EventWeaponReload, obj.X, obj.Y, weapon.Ammo)
	return true
}

// Attack swings or fires the equipped weapon. An empty ranged weapon only reports the miss.
func Attack(w donburi.World, playerEntry *donburi.Entry) bool {
	player := components.Player.Get(playerEntry)
	if player.AttackCooldown > 0 || player.Attacking {
		return false
	}

	obj := components.Object.Get(playerEntry)
	weapon := components.Loadout.Get(playerEntry).Equipped()

	if weapon.Ranged && weapon.Ammo <= 0 {
		factory.CreateCombatText(w, cfg.TextNoArrows, obj.X, obj.Y-50)
		emit(w, messages.EventOutOfAmmo, obj.X, obj.Y, 0)
		return false
	}

	player.Attacking = true
	player.AttackAnimation = 0
	player.AttackCooldown = weapon.Cooldown
	emit(w, messages.EventAttack, obj.X, obj.Y, int(weapon.ID))

	if weapon.Ranged {
		weapon.Ammo--
		fireArrow(w, playerEntry, weapon)
		return true
	}

	ResolveMeleeHitbox(w, playerEntry, weapon)
	return true
}

func fireArrow(w donburi.World, playerEntry *donburi.Entry, weapon *components.WeaponSlot) {
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	x := obj.X
	if player.Direction > 0 {
		x = obj.X + obj.W
	}
	y := obj.Y + obj.H/2

	factory.CreateProjectile(w, x, y, gamemath.FacingAngle(player.Direction), cfg.Projectile.PlayerSpeed, weapon.Damage, true)
	emitEvent(w, messages.FeedbackEvent{
		Kind:   messages.EventProjectileFired,
		X:      x,
		Y:      y,
		Amount: weapon.Damage,
		Count:  weapon.Ammo,
	})
}
