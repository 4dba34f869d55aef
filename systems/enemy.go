package systems

import (
	"github.com/automoto/throne-wars/components"
	cfg "github.com/automoto/throne-wars/config"
	"github.com/automoto/throne-wars/shared/gamemath"
	"github.com/automoto/throne-wars/shared/messages"
	"github.com/automoto/throne-wars/systems/factory"
	"github.com/automoto/throne-wars/tags"
	"github.com/yohamta/donburi"
)

// UpdateEnemies runs AI, attacks and physics for every alive enemy in spawn order.
func UpdateEnemies(w donburi.World) {
	playerEntry, ok := GetPlayer(w)
	if !ok {
		return
	}

	for _, e := range EnemyEntries(w) {
		if !components.Enemy.Get(e).Alive {
			continue
		}
		// A hit earlier in this pass may have ended the battle
		if IsBattleOver(w) {
			return
		}
		updateEnemyAI(w, e, playerEntry)
		applyPhysics(w, e)
		updateEnemyTimers(e)
	}
}

func updateEnemyAI(w donburi.World, enemyEntry *donburi.Entry, playerEntry *donburi.Entry) {
	enemy := components.Enemy.Get(enemyEntry)
	physics := components.Physics.Get(enemyEntry)
	enemyObject := components.Object.Get(enemyEntry)
	playerObject := components.Object.Get(playerEntry)

	// Distance between top-left corners
	distanceToPlayer := gamemath.Distance(enemyObject.X, enemyObject.Y, playerObject.X, playerObject.Y)

	if distanceToPlayer >= cfg.Enemy.AggroRange {
		physics.SpeedX = gamemath.Damp(physics.SpeedX, cfg.Physics.IdleDecay)
		physics.SpeedY = gamemath.Damp(physics.SpeedY, cfg.Physics.IdleDecay)
		return
	}

	physics.SpeedX, physics.SpeedY = gamemath.CalculateHomingVelocity(
		enemyObject.X, enemyObject.Y, playerObject.X, playerObject.Y, enemy.TypeConfig.Speed)

	if distanceToPlayer >= cfg.Enemy.AttackRange {
		return
	}
	if enemy.AttackTimer <= 0 {
		enemyMeleeAttack(w, enemyEntry, playerEntry)
		enemy.AttackTimer = cfg.Enemy.MeleeCooldown
	}
	if enemy.TypeConfig.IsRanged && enemy.RangedCooldown <= 0 {
		enemyRangedAttack(w, enemyEntry, playerEntry)
		enemy.RangedCooldown = cfg.Enemy.RangedCooldown
	}
}

// enemyMeleeAttack always starts the swing; damage only lands when the bodies overlap.
func enemyMeleeAttack(w donburi.World, enemyEntry *donburi.Entry, playerEntry *donburi.Entry) {
	enemy := components.Enemy.Get(enemyEntry)
	enemy.Attacking = true
	enemy.AttackAnimation = 0

	enemyObject := components.Object.Get(enemyEntry)
	playerObject := components.Object.Get(playerEntry)

	if len(broadPhase(w, enemyObject.Rect(), tags.ResolvPlayer)) == 0 {
		return
	}
	if !gamemath.Overlaps(enemyObject.Rect(), playerObject.Rect()) {
		return
	}
	ApplyPlayerDamage(w, playerEntry, enemy.TypeConfig.Damage)
}

func enemyRangedAttack(w donburi.World, enemyEntry *donburi.Entry, playerEntry *donburi.Entry) {
	enemy := components.Enemy.Get(enemyEntry)
	fromX, fromY := components.Object.Get(enemyEntry).Center()
	toX, toY := components.Object.Get(playerEntry).Center()

	angle := gamemath.AimAngle(fromX, fromY, toX, toY)
	factory.CreateProjectile(w, fromX, fromY, angle, cfg.Projectile.EnemySpeed, enemy.TypeConfig.Damage, false)
	emitEvent(w, messages.FeedbackEvent{
		Kind:     messages.EventProjectileFired,
		X:        fromX,
		Y:        fromY,
		Amount:   enemy.TypeConfig.Damage,
		EntityID: enemy.ID,
	})
}

func updateEnemyTimers(enemyEntry *donburi.Entry) {
	enemy := components.Enemy.Get(enemyEntry)
	if enemy.AttackTimer > 0 {
		enemy.AttackTimer--
	}
	if enemy.RangedCooldown > 0 {
		enemy.RangedCooldown--
	}

	if enemy.Attacking && enemy.AttackAnimation < cfg.Enemy.AttackAnimation {
		enemy.AttackAnimation++
	} else {
		enemy.Attacking = false
		enemy.AttackAnimation = 0
	}
}
