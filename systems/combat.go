package systems

import (
	"math"

	"github.com/automoto/throne-wars/components"
	cfg "github.com/automoto/throne-wars/config"
	"github.com/automoto/throne-wars/shared/gamemath"
	"github.com/automoto/throne-wars/shared/messages"
	"github.com/automoto/throne-wars/systems/factory"
	"github.com/automoto/throne-wars/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ApplyPlayerDamage hurts the player unless the invulnerability window is open or a dodge is
// in progress. Blocking cuts the damage to BlockFactor. Returns the damage actually taken.
func ApplyPlayerDamage(w donburi.World, playerEntry *donburi.Entry, amount int) int {
	player := components.Player.Get(playerEntry)
	if player.Defeated || player.Invincible() || player.Dodging {
		return 0
	}

	obj := components.Object.Get(playerEntry)
	cx, cy := obj.Center()

	// --------------------------------------------------------------------
	// 1. Mitigation
	// --------------------------------------------------------------------
	kind := messages.EventPlayerHit
	if player.Blocking {
		amount = int(math.Floor(float64(amount) * cfg.Player.BlockFactor))
		kind = messages.EventBlock
		factory.CreateEffect(w, cfg.EffectBlockRing, cx, cy)
	} else {
		factory.CreateEffect(w, cfg.EffectBlood, cx, cy)
	}
	if amount < 0 {
		amount = 0
	}

	// --------------------------------------------------------------------
	// 2. Apply and open the invulnerability window
	// --------------------------------------------------------------------
	hp := components.Health.Get(playerEntry)
	hp.Current = gamemath.Clamp(hp.Current-float64(amount), 0, hp.Max)
	player.InvulnFrames = cfg.Player.InvulnFrames

	factory.CreateDamagePopup(w, amount, cx, obj.Y)
	emit(w, kind, cx, cy, amount)

	// --------------------------------------------------------------------
	// 3. Death
	// --------------------------------------------------------------------
	if hp.Current <= 0 {
		player.Defeated = true
		player.Blocking = false
		GetBattle(w).Over = true
		emit(w, messages.EventPlayerDeath, cx, cy, 0)
	}
	return amount
}

// ApplyEnemyDamage hurts an enemy and knocks it away from (sourceX, sourceY).
// Dead enemies ignore further damage.
func ApplyEnemyDamage(w donburi.World, enemyEntry *donburi.Entry, amount int, sourceX, sourceY float64) {
	enemy := components.Enemy.Get(enemyEntry)
	if !enemy.Alive {
		return
	}

	obj := components.Object.Get(enemyEntry)
	hp := components.Health.Get(enemyEntry)
	hp.Current -= float64(amount)

	physics := components.Physics.Get(enemyEntry)
	physics.SpeedX, physics.SpeedY = gamemath.CalculateKnockback(sourceX, sourceY, obj.X, obj.Y, cfg.Enemy.KnockbackForce)

	cx, cy := obj.Center()
	factory.CreateDamagePopup(w, amount, cx, obj.Y)
	factory.CreateEffect(w, cfg.EffectBlood, cx, cy)
	emitEvent(w, messages.FeedbackEvent{
		Kind:     messages.EventEnemyHit,
		X:        cx,
		Y:        cy,
		Amount:   amount,
		EntityID: enemy.ID,
	})

	if hp.Current <= 0 {
		hp.Current = 0
		killEnemy(w, enemyEntry)
	}
}

func killEnemy(w donburi.World, enemyEntry *donburi.Entry) {
	enemy := components.Enemy.Get(enemyEntry)
	enemy.Alive = false
	enemy.Attacking = false

	obj := components.Object.Get(enemyEntry)
	cx, cy := obj.Center()

	GetBattle(w).AddScore(enemy.TypeConfig.KillScore)
	factory.RemoveBody(w, enemyEntry)
	factory.CreateEffect(w, cfg.EffectDeathRing, cx, cy)
	emitEvent(w, messages.FeedbackEvent{
		Kind:     messages.EventEnemyDeath,
		X:        cx,
		Y:        cy,
		Amount:   enemy.TypeConfig.KillScore,
		EntityID: enemy.ID,
	})
}

// MeleeHitbox returns the attack band in front of the player for the given reach.
func MeleeHitbox(playerEntry *donburi.Entry, reach float64) gamemath.Rect {
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	x := obj.X + obj.W
	if player.Direction < 0 {
		x = obj.X - reach
	}
	return gamemath.Rect{
		X: x,
		Y: obj.Y + obj.H/2 - cfg.Player.HitboxOffsetY,
		W: reach,
		H: cfg.Player.HitboxHeight,
	}
}

// ResolveMeleeHitbox swings the equipped melee weapon. Every alive enemy overlapping the band
// takes damage plus a small random bonus and feeds the combo. Returns the number of enemies hit.
func ResolveMeleeHitbox(w donburi.World, playerEntry *donburi.Entry, weapon *components.WeaponSlot) int {
	box := MeleeHitbox(playerEntry, weapon.Range)
	obj := components.Object.Get(playerEntry)

	// Broad phase through the space, narrow phase with the strict box test
	candidates := map[donburi.Entity]bool{}
	for _, o := range broadPhase(w, box, tags.ResolvEnemy) {
		if entry, ok := o.Data.(*donburi.Entry); ok {
			candidates[entry.Entity()] = true
		}
	}

	rng := GetRand(w)
	hits := 0
	for _, enemyEntry := range EnemyEntries(w) {
		if !candidates[enemyEntry.Entity()] || !components.Enemy.Get(enemyEntry).Alive {
			continue
		}
		if !gamemath.Overlaps(box, components.Object.Get(enemyEntry).Rect()) {
			continue
		}
		damage := weapon.Damage + rng.Intn(cfg.Player.MeleeBonusRange)
		ApplyEnemyDamage(w, enemyEntry, damage, obj.X, obj.Y)
		RegisterHit(w)
		hits++
	}
	return hits
}

// broadPhase returns the objects tagged tag that share a cell with rect grown by one cell on
// every side. resolv maps a body's far edge to the cell of X+W-1, so a sub-pixel overlap across
// a cell line would otherwise never become a candidate.
func broadPhase(w donburi.World, rect gamemath.Rect, tag string) []*resolv.Object {
	space := factory.SpaceOf(w)
	padX, padY := float64(space.CellWidth), float64(space.CellHeight)
	query := resolv.NewObject(rect.X-padX, rect.Y-padY, rect.W+2*padX, rect.H+2*padY, tags.ResolvHitbox)
	space.Add(query)
	defer space.Remove(query)

	collision := query.Check(0, 0, tag)
	if collision == nil {
		return nil
	}
	return collision.Objects
}
