package components

import (
	"math/rand"

	"github.com/automoto/throne-wars/shared/arena"
	"github.com/automoto/throne-wars/shared/messages"
	"github.com/yohamta/donburi"
)

// BattleData stores the session progress.
// This is a singleton component - one battle exists per world.
type BattleData struct {
	Level       int
	Score       int
	Tick        int // Simulation steps run so far
	Over        bool
	NextEnemyID int
	NextArrowID int
}

// AddScore adds a non-negative amount to the score
func (b *BattleData) AddScore(amount int) {
	if amount > 0 {
		b.Score += amount
	}
}

var Battle = donburi.NewComponentType[BattleData]()

// ComboData is the combo counter and its countdown window. Singleton.
type ComboData struct {
	Count int
	Timer int // Frames left in the window; 0 when idle
}

var Combo = donburi.NewComponentType[ComboData]()

// ArenaData holds the arena layout. Singleton.
type ArenaData struct {
	arena.Layout
}

var Arena = donburi.NewComponentType[ArenaData]()

// RandomData is the session random source. Singleton.
type RandomData struct {
	*rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()

// IntentData holds the input for the step being run. Singleton.
type IntentData struct {
	Intent messages.Intent
}

var Intent = donburi.NewComponentType[IntentData]()
