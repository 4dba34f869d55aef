// Package session runs one battle: it owns the world, steps the systems at a fixed rate and
// hands back events and snapshots. Nothing here draws, plays sound or reads devices.
package session

import (
	"log"
	"math"
	"time"

	cfg "github.com/automoto/throne-wars/config"
	"github.com/automoto/throne-wars/shared/arena"
	"github.com/automoto/throne-wars/shared/messages"
	"github.com/automoto/throne-wars/systems"
	"github.com/automoto/throne-wars/systems/factory"
	"github.com/yohamta/donburi"
)

// Options configures a new session. The zero value is a classless fighter on the default
// arena with a time-based seed.
type Options struct {
	Class  cfg.ClassID
	Seed   int64         // 0 picks a seed from the clock
	Layout *arena.Layout // nil uses arena.Default()
	Logger *log.Logger   // nil uses log.Default()
}

// TickResult is everything a presentation layer needs after one Tick call.
type TickResult struct {
	Events   []messages.FeedbackEvent `json:"events"`
	Snapshot Snapshot                 `json:"snapshot"`
}

// Summary is the final outcome of a session.
type Summary struct {
	Score        int `json:"score"`
	LevelReached int `json:"level_reached"`
}

// Session is a single battle. It is not safe for concurrent use.
type Session struct {
	world   donburi.World
	systems []systems.System
	logger  *log.Logger
	seed    int64

	accumulator float64
	pending     messages.Intent // Edge requests not yet consumed by a step
	events      []messages.FeedbackEvent

	lastLevel int
	loggedEnd bool
}

// NewSession starts a battle for class with a clock seed on the default arena.
func NewSession(class cfg.ClassID) *Session {
	return New(Options{Class: class})
}

// New builds the world, places the player and spawns the first wave.
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	layout := arena.Default()
	if opts.Layout != nil {
		layout = *opts.Layout
	}

	w := donburi.NewWorld()
	s := &Session{
		world:  w,
		logger: logger,
		seed:   seed,
		systems: []systems.System{
			systems.WithGameplayChecks(systems.UpdatePlayer),
			systems.WithGameplayChecks(systems.UpdateEnemies),
			systems.WithGameplayChecks(systems.UpdateProjectiles),
			systems.WithGameplayChecks(systems.UpdateWave),
			systems.WithGameplayChecks(systems.UpdateCombo),
			systems.WithGameplayChecks(systems.UpdateEffects),
		},
	}

	systems.Feedback.Subscribe(w, func(_ donburi.World, ev messages.FeedbackEvent) {
		s.events = append(s.events, ev)
	})

	factory.CreateSpace(w, layout.Width, layout.Height, cfg.Arena.CellSize)
	factory.CreateBattle(w, layout, seed)
	factory.CreatePlayer(w, layout.PlayerSpawn.X, layout.PlayerSpawn.Y, opts.Class)

	level := systems.GetBattle(w).Level
	systems.SpawnWave(w, level)
	s.lastLevel = level

	factory.CreateCombatText(w, cfg.TextBattleStart, layout.PlayerSpawn.X, layout.PlayerSpawn.Y-100)

	logger.Printf("Session started: class=%s arena=%s seed=%d level=%d enemies=%d",
		opts.Class, layout.Name, seed, level, systems.AliveEnemies(w))
	return s
}

// Seed returns the random seed the session was built with.
func (s *Session) Seed() int64 {
	return s.seed
}

// World exposes the underlying world for presentation layers that draw entities directly.
func (s *Session) World() donburi.World {
	return s.world
}

// Tick advances the simulation by delta, measured in fixed steps (1.0 is one 1/60 s step).
// Whole steps are run from an accumulator, at most cfg.Sim.MaxStepsPerTick per call.
// Edge requests in intent go to the first step only; held input applies to every step.
// After the game is over Tick does nothing and returns the final snapshot.
func (s *Session) Tick(intent messages.Intent, delta float64) TickResult {
	s.events = nil
	if s.IsOver() {
		return TickResult{Snapshot: s.Snapshot()}
	}

	intent = intent.Normalized()
	s.pending = mergeEdges(s.pending, intent)

	if math.IsNaN(delta) || delta < 0 {
		delta = 0
	}
	maxSteps := cfg.Sim.MaxStepsPerTick
	if delta > float64(maxSteps) {
		delta = float64(maxSteps)
	}

	s.accumulator += delta
	steps := int(s.accumulator)
	if steps >= maxSteps {
		steps = maxSteps
		s.accumulator = 0
	} else {
		s.accumulator -= float64(steps)
	}

	for i := 0; i < steps && !s.IsOver(); i++ {
		in := intent.Held()
		if i == 0 {
			in = mergeEdges(in, s.pending)
			s.pending = messages.Intent{}
		}
		s.step(in)
	}

	s.logProgress()
	return TickResult{Events: s.events, Snapshot: s.Snapshot()}
}

// step runs every system once and collects the events they published.
func (s *Session) step(intent messages.Intent) {
	battle := systems.GetBattle(s.world)
	battle.Tick++

	systems.SetIntent(s.world, intent)
	for _, system := range s.systems {
		system(s.world)
	}
	systems.Feedback.ProcessEvents(s.world)
}

func (s *Session) logProgress() {
	battle := systems.GetBattle(s.world)
	if battle.Level != s.lastLevel {
		s.logger.Printf("Level %d reached at tick %d (score %d)", battle.Level, battle.Tick, battle.Score)
		s.lastLevel = battle.Level
	}
	if battle.Over && !s.loggedEnd {
		s.logger.Printf("Game over at tick %d: score=%d level=%d", battle.Tick, battle.Score, battle.Level)
		s.loggedEnd = true
	}
}

// IsOver reports whether the player has been defeated.
func (s *Session) IsOver() bool {
	return systems.IsBattleOver(s.world)
}

// Summary returns the score and level reached so far.
func (s *Session) Summary() Summary {
	battle := systems.GetBattle(s.world)
	return Summary{Score: battle.Score, LevelReached: battle.Level}
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	return takeSnapshot(s.world)
}

// mergeEdges ORs the edge-triggered requests of b into a.
func mergeEdges(a, b messages.Intent) messages.Intent {
	a.JumpRequested = a.JumpRequested || b.JumpRequested
	a.AttackRequested = a.AttackRequested || b.AttackRequested
	a.DodgeRequested = a.DodgeRequested || b.DodgeRequested
	a.SwitchWeaponRequested = a.SwitchWeaponRequested || b.SwitchWeaponRequested
	a.ReloadRequested = a.ReloadRequested || b.ReloadRequested
	return a
}
