package components

import (
	"github.com/automoto/throne-wars/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	ID         int
	Type       config.EnemyType
	TypeConfig config.EnemyTypeConfig // Copied at spawn so tuning changes never touch live enemies

	Alive bool

	// Combat
	AttackTimer     int // Frames until the next melee attack
	RangedCooldown  int // Frames until the next arrow (ranged types only)
	Attacking       bool
	AttackAnimation int
}

var Enemy = donburi.NewComponentType[EnemyData]()
