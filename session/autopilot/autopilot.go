// Package autopilot drives a session without a human. It reads snapshots and answers with
// intents, so it sees exactly what a player would see on screen.
package autopilot

import (
	"math"
	"math/rand"

	cfg "github.com/automoto/throne-wars/config"
	"github.com/automoto/throne-wars/session"
	"github.com/automoto/throne-wars/shared/gamemath"
	"github.com/automoto/throne-wars/shared/messages"
)

// State is the current high level plan of the pilot
type State int

const (
	StateIdle State = iota
	StateChase
	StateAttack
	StateRetreat
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateChase:
		return "chase"
	case StateAttack:
		return "attack"
	case StateRetreat:
		return "retreat"
	}
	return "unknown"
}

// Pilot is a simple state machine player. It is not safe for concurrent use.
type Pilot struct {
	tuning cfg.AutopilotDifficultyConfig
	rng    *rand.Rand

	state          State
	decisionTimer  int
	attackCooldown int
	jumpCooldown   int
	switchCooldown int
}

// New creates a pilot for difficulty. The seed only drives small timing jitter so runs stay
// reproducible.
func New(difficulty cfg.AutopilotDifficulty, seed int64) *Pilot {
	tuning, ok := cfg.Autopilot.Difficulties[difficulty]
	if !ok {
		tuning = cfg.Autopilot.Difficulties[cfg.AutopilotNormal]
	}
	return &Pilot{
		tuning: tuning,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// State returns the plan chosen at the last decision.
func (p *Pilot) State() State {
	return p.state
}

type target struct {
	x, y float64 // Center
	gap  float64 // Horizontal space between the two bodies, 0 when they overlap
	dist float64 // Center distance
	high bool    // Vertically out of reach of a horizontal swing
}

// NextIntent implements session.IntentSource.
func (p *Pilot) NextIntent(snap session.Snapshot) messages.Intent {
	var in messages.Intent
	if snap.Over {
		return in
	}

	if p.decisionTimer > 0 {
		p.decisionTimer--
	}
	if p.attackCooldown > 0 {
		p.attackCooldown--
	}
	if p.jumpCooldown > 0 {
		p.jumpCooldown--
	}
	if p.switchCooldown > 0 {
		p.switchCooldown--
	}

	me := snap.Player
	mx, my := me.X+me.Width/2, me.Y+me.Height/2

	// ---- 1. Incoming arrows take priority ----
	if p.evade(&in, snap, mx, my) {
		return in
	}

	tgt, found := nearestEnemy(snap, mx, my)

	// ---- 2. Re-plan at the reaction rate ----
	if p.decisionTimer <= 0 {
		p.decide(me, tgt, found)
		p.decisionTimer = p.tuning.ReactionDelay / 3
		p.manageWeapon(&in, me, tgt, found)
	}

	// ---- 3. Act on the plan ----
	switch p.state {
	case StateChase:
		p.chase(&in, me, tgt, mx, my)
	case StateAttack:
		p.attack(&in, me, tgt, mx)
	case StateRetreat:
		p.retreat(&in, me, tgt, mx)
	}
	return in
}

func nearestEnemy(snap session.Snapshot, mx, my float64) (target, bool) {
	best := target{dist: math.MaxFloat64}
	found := false
	me := snap.Player
	for _, e := range snap.Enemies {
		if !e.Alive {
			continue
		}
		ex, ey := e.X+e.Width/2, e.Y+e.Height/2
		d := gamemath.Distance(mx, my, ex, ey)
		if d >= best.dist {
			continue
		}
		gap := math.Abs(ex-mx) - (me.Width+e.Width)/2
		if gap < 0 {
			gap = 0
		}
		best = target{
			x:    ex,
			y:    ey,
			gap:  gap,
			dist: d,
			high: math.Abs(ey-my) > (me.Height+e.Height)/2,
		}
		found = true
	}
	return best, found
}

func (p *Pilot) decide(me session.PlayerView, tgt target, found bool) {
	if !found {
		p.state = StateIdle
		return
	}
	if me.MaxHealth > 0 && me.Health/me.MaxHealth < p.tuning.RetreatThreshold {
		p.state = StateRetreat
		return
	}
	if tgt.gap < p.reach(me.Weapon()) && !tgt.high {
		p.state = StateAttack
		return
	}
	p.state = StateChase
}

// reach is how close a target must be before swinging or shooting
func (p *Pilot) reach(w session.WeaponView) float64 {
	if w.Ranged && w.Ammo > 0 {
		return w.Range
	}
	return math.Min(p.tuning.EngageRange, w.Range)
}

// manageWeapon keeps a usable weapon in hand: reload an empty bow, and cycle toward the
// bow for long shots or toward the hardest hitting melee weapon up close.
func (p *Pilot) manageWeapon(in *messages.Intent, me session.PlayerView, tgt target, found bool) {
	current := me.Weapon()
	if current.Ranged && current.Ammo == 0 && current.MaxAmmo > 0 {
		in.ReloadRequested = true
		return
	}
	if !found || p.switchCooldown > 0 {
		return
	}

	want := preferredWeapon(me, tgt)
	if want >= 0 && want != me.CurrentWeapon {
		in.SwitchWeaponRequested = true
		p.switchCooldown = p.tuning.ReactionDelay
	}
}

func preferredWeapon(me session.PlayerView, tgt target) int {
	bow, melee := -1, -1
	for i, w := range me.Weapons {
		if w.Ranged {
			if bow < 0 {
				bow = i
			}
			continue
		}
		if melee < 0 || w.Damage > me.Weapons[melee].Damage {
			melee = i
		}
	}
	if bow >= 0 && tgt.gap > me.Weapons[bow].Range/3 && tgt.gap < me.Weapons[bow].Range {
		return bow
	}
	return melee
}

func (p *Pilot) chase(in *messages.Intent, me session.PlayerView, tgt target, mx, my float64) {
	dx := tgt.x - mx
	if dx > 10 {
		in.MoveX = 1
	} else if dx < -10 {
		in.MoveX = -1
	}

	// Jump for targets above us, and now and then to shake up the approach
	if me.Grounded && p.jumpCooldown <= 0 && (tgt.y-my < -60 || p.rng.Intn(240) == 0) {
		in.JumpRequested = true
		p.jumpCooldown = 45
	}
}

func (p *Pilot) attack(in *messages.Intent, me session.PlayerView, tgt target, mx float64) {
	face(in, tgt.x-mx)

	// Close the last few pixels for a swing
	if !me.Weapon().Ranged && tgt.gap > 10 {
		in.MoveX = math.Copysign(1, in.MoveX)
	}

	if p.attackCooldown > 0 {
		return
	}
	in.AttackRequested = true
	p.attackCooldown = 20 + p.tuning.ReactionDelay/2 + p.rng.Intn(5)
}

func (p *Pilot) retreat(in *messages.Intent, me session.PlayerView, tgt target, mx float64) {
	dx := tgt.x - mx
	if tgt.dist < 120 {
		if dx > 0 {
			in.MoveX = -1
		} else {
			in.MoveX = 1
		}
	}

	// Cornered: turn, guard and hit back
	if tgt.gap < p.reach(me.Weapon()) && !tgt.high {
		face(in, dx)
		if me.Stamina >= cfg.Player.BlockMinStamina && p.attackCooldown > 0 {
			in.BlockHeld = true
			return
		}
		if p.attackCooldown <= 0 {
			in.AttackRequested = true
			p.attackCooldown = 30 + p.tuning.ReactionDelay
		}
	}
}

// face nudges the stick toward dx so the facing turns without running
func face(in *messages.Intent, dx float64) {
	if dx >= 0 {
		in.MoveX = 0.2
	} else {
		in.MoveX = -0.2
	}
}

// evade reacts to the closest enemy arrow heading our way: dodge when possible, guard otherwise.
func (p *Pilot) evade(in *messages.Intent, snap session.Snapshot, mx, my float64) bool {
	if p.tuning.DodgeRange <= 0 {
		return false
	}
	me := snap.Player
	if me.Dodging || me.Invincible {
		return false
	}

	threat := false
	for _, a := range snap.Projectiles {
		if a.FromPlayer {
			continue
		}
		dx, dy := mx-a.X, my-a.Y
		if dx*math.Cos(a.Angle)+dy*math.Sin(a.Angle) <= 0 {
			continue // Moving away
		}
		if gamemath.WithinRadius(mx, my, a.X, a.Y, p.tuning.DodgeRange) {
			threat = true
			break
		}
	}
	if !threat {
		return false
	}

	if me.Stamina >= cfg.Player.DodgeCost {
		in.DodgeRequested = true
		return true
	}
	if me.Stamina >= cfg.Player.BlockMinStamina || me.Blocking {
		in.BlockHeld = true
		return true
	}
	return false
}
