package components

import (
	"github.com/automoto/throne-wars/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Class     config.ClassID
	Speed     float64
	Direction float64 // config.DirectionLeft or config.DirectionRight

	// Attack
	Attacking       bool
	AttackAnimation int // Frames into the current swing
	AttackCooldown  int // Frames until the next attack is allowed

	// Defense
	Blocking      bool
	Dodging       bool
	DodgeTimer    int // Frames until Dodging clears
	DodgeCooldown int
	InvulnFrames  int // Invulnerability frames timer

	Defeated bool
}

// Invincible reports whether the invulnerability window is open.
func (p *PlayerData) Invincible() bool {
	return p.InvulnFrames > 0
}

var Player = donburi.NewComponentType[PlayerData]()
