package components

import (
	"github.com/automoto/throne-wars/config"
	"github.com/yohamta/donburi"
)

// WeaponSlot is one carried weapon with its live ammo count.
type WeaponSlot struct {
	config.WeaponConfig
	Ammo int
}

// LoadoutData holds the weapons a player carries and which one is equipped.
type LoadoutData struct {
	Weapons []WeaponSlot
	Current int
}

// Equipped returns the active weapon slot.
func (l *LoadoutData) Equipped() *WeaponSlot {
	return &l.Weapons[l.Current]
}

// Cycle equips the next weapon, wrapping around.
func (l *LoadoutData) Cycle() {
	if len(l.Weapons) == 0 {
		return
	}
	l.Current = (l.Current + 1) % len(l.Weapons)
}

var Loadout = donburi.NewComponentType[LoadoutData]()
