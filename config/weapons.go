package config

// WeaponID identifies a weapon in the fixed weapon table
type WeaponID int

const (
	WeaponSword WeaponID = iota
	WeaponAxe
	WeaponBow
	WeaponCount // Must be last - used for array sizing
)

func (w WeaponID) String() string {
	switch w {
	case WeaponSword:
		return "Sword"
	case WeaponAxe:
		return "Axe"
	case WeaponBow:
		return "Bow"
	}
	return "Unknown"
}

// WeaponConfig is the constant parameter block for one weapon kind
type WeaponConfig struct {
	ID       WeaponID
	Damage   int
	Range    float64
	Cooldown int  // Frames before the next attack
	Ranged   bool // Ranged weapons fire projectiles and spend ammo
	MaxAmmo  int
}

// Weapons is indexed by WeaponID
var Weapons [WeaponCount]WeaponConfig

func weaponTable() [WeaponCount]WeaponConfig {
	return [WeaponCount]WeaponConfig{
		WeaponSword: {ID: WeaponSword, Damage: 15, Range: 60, Cooldown: 20},
		WeaponAxe:   {ID: WeaponAxe, Damage: 25, Range: 50, Cooldown: 30},
		WeaponBow:   {ID: WeaponBow, Damage: 20, Range: 300, Cooldown: 15, Ranged: true, MaxAmmo: 10},
	}
}
