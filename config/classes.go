package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownClass is returned when a class name does not match the class table
var ErrUnknownClass = errors.New("unknown character class")

// ClassID identifies a playable character class
type ClassID int

const (
	ClassNone ClassID = iota
	ClassKnight
	ClassBerserker
	ClassArcher
)

var classNames = map[ClassID]string{
	ClassNone:      "none",
	ClassKnight:    "knight",
	ClassBerserker: "berserker",
	ClassArcher:    "archer",
}

func (c ClassID) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseClass maps a class name to its ID
func ParseClass(name string) (ClassID, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for id, n := range classNames {
		if n == name {
			return id, nil
		}
	}
	return ClassNone, fmt.Errorf("%w: %q", ErrUnknownClass, name)
}

// WeaponOverride replaces stats of one loadout slot for a class. Zero fields keep the base value.
type WeaponOverride struct {
	Damage  int
	MaxAmmo int
}

// ClassConfig is the starting stat block of a character class
type ClassConfig struct {
	ID           ClassID
	MaxHealth    float64
	Speed        float64
	StaminaRegen float64 // 0 keeps Player.StaminaRegen
	Overrides    map[WeaponID]WeaponOverride
}

// Classes holds every playable class, including the unclassed default
var Classes map[ClassID]ClassConfig

// PlayableClasses lists the selectable classes in menu order
var PlayableClasses = []ClassID{ClassKnight, ClassBerserker, ClassArcher}

func classTable() map[ClassID]ClassConfig {
	return map[ClassID]ClassConfig{
		ClassNone: {
			ID:        ClassNone,
			MaxHealth: 100,
			Speed:     5,
		},
		ClassKnight: {
			ID:        ClassKnight,
			MaxHealth: 150,
			Speed:     4,
			Overrides: map[WeaponID]WeaponOverride{
				WeaponSword: {Damage: 18},
			},
		},
		ClassBerserker: {
			ID:           ClassBerserker,
			MaxHealth:    120,
			Speed:        5.5,
			StaminaRegen: 0.8,
			Overrides: map[WeaponID]WeaponOverride{
				WeaponAxe: {Damage: 30},
			},
		},
		ClassArcher: {
			ID:        ClassArcher,
			MaxHealth: 100,
			Speed:     6,
			Overrides: map[WeaponID]WeaponOverride{
				WeaponBow: {Damage: 25, MaxAmmo: 15},
			},
		},
	}
}

// Loadout returns the weapon stats for a class in slot order. Every class carries every weapon.
func (c ClassConfig) Loadout() []WeaponConfig {
	loadout := make([]WeaponConfig, 0, WeaponCount)
	for _, w := range Weapons {
		if o, ok := c.Overrides[w.ID]; ok {
			if o.Damage > 0 {
				w.Damage = o.Damage
			}
			if o.MaxAmmo > 0 {
				w.MaxAmmo = o.MaxAmmo
			}
		}
		loadout = append(loadout, w)
	}
	return loadout
}

// Regen returns the class stamina regeneration per frame
func (c ClassConfig) Regen() float64 {
	if c.StaminaRegen > 0 {
		return c.StaminaRegen
	}
	return Player.StaminaRegen
}
