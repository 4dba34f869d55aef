package config

import (
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// Overrides is a partial tuning file. Only fields present in the YAML are applied.
type Overrides struct {
	Physics *struct {
		Gravity  *float64 `yaml:"gravity"`
		Friction *float64 `yaml:"friction"`
	} `yaml:"physics"`

	Player *struct {
		JumpSpeed    *float64 `yaml:"jump_speed"`
		MaxStamina   *float64 `yaml:"max_stamina"`
		StaminaRegen *float64 `yaml:"stamina_regen"`
		BlockFactor  *float64 `yaml:"block_factor"`
		DodgeCost    *float64 `yaml:"dodge_cost"`
		InvulnFrames *int     `yaml:"invuln_frames"`
	} `yaml:"player"`

	Weapons map[string]struct {
		Damage   *int     `yaml:"damage"`
		Range    *float64 `yaml:"range"`
		Cooldown *int     `yaml:"cooldown"`
		MaxAmmo  *int     `yaml:"max_ammo"`
	} `yaml:"weapons"`

	Enemies map[string]struct {
		Health    *float64 `yaml:"health"`
		Speed     *float64 `yaml:"speed"`
		Damage    *int     `yaml:"damage"`
		KillScore *int     `yaml:"kill_score"`
	} `yaml:"enemies"`

	Wave *struct {
		BaseCount  *int `yaml:"base_count"`
		PerLevel   *int `yaml:"per_level"`
		BossEvery  *int `yaml:"boss_every"`
		LevelBonus *int `yaml:"level_bonus"`
	} `yaml:"wave"`

	Combo *struct {
		Window    *int `yaml:"window"`
		Threshold *int `yaml:"threshold"`
		BonusPer  *int `yaml:"bonus_per"`
	} `yaml:"combo"`
}

// ParseOverrides decodes a YAML tuning document
func ParseOverrides(data []byte) (*Overrides, error) {
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parse tuning overrides: %w", err)
	}
	return &o, nil
}

// LoadOverrides reads a YAML tuning file from fsys and applies it to the global tables.
// It must be called before any session is created.
func LoadOverrides(fsys fs.FS, path string) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("read tuning overrides %s: %w", path, err)
	}
	o, err := ParseOverrides(data)
	if err != nil {
		return err
	}
	return o.Apply()
}

// Apply writes every present field into the global configuration
func (o *Overrides) Apply() error {
	if p := o.Physics; p != nil {
		setFloat(&Physics.Gravity, p.Gravity)
		setFloat(&Physics.Friction, p.Friction)
	}

	if p := o.Player; p != nil {
		setFloat(&Player.JumpSpeed, p.JumpSpeed)
		setFloat(&Player.MaxStamina, p.MaxStamina)
		setFloat(&Player.StaminaRegen, p.StaminaRegen)
		setFloat(&Player.BlockFactor, p.BlockFactor)
		setFloat(&Player.DodgeCost, p.DodgeCost)
		setInt(&Player.InvulnFrames, p.InvulnFrames)
	}

	for name, w := range o.Weapons {
		id, ok := weaponByName(name)
		if !ok {
			return fmt.Errorf("tuning overrides: unknown weapon %q", name)
		}
		cfg := &Weapons[id]
		setInt(&cfg.Damage, w.Damage)
		setFloat(&cfg.Range, w.Range)
		setInt(&cfg.Cooldown, w.Cooldown)
		setInt(&cfg.MaxAmmo, w.MaxAmmo)
	}

	for name, e := range o.Enemies {
		t, ok := enemyByName(name)
		if !ok {
			return fmt.Errorf("tuning overrides: unknown enemy %q", name)
		}
		cfg := Enemy.Types[t]
		setFloat(&cfg.Health, e.Health)
		setFloat(&cfg.Speed, e.Speed)
		setInt(&cfg.Damage, e.Damage)
		setInt(&cfg.KillScore, e.KillScore)
		Enemy.Types[t] = cfg
	}

	if w := o.Wave; w != nil {
		setInt(&Wave.BaseCount, w.BaseCount)
		setInt(&Wave.PerLevel, w.PerLevel)
		setInt(&Wave.BossEvery, w.BossEvery)
		setInt(&Wave.LevelBonus, w.LevelBonus)
	}

	if c := o.Combo; c != nil {
		setInt(&Combo.Window, c.Window)
		setInt(&Combo.Threshold, c.Threshold)
		setInt(&Combo.BonusPer, c.BonusPer)
	}

	return nil
}

func weaponByName(name string) (WeaponID, bool) {
	for id := WeaponID(0); id < WeaponCount; id++ {
		if strings.EqualFold(id.String(), name) {
			return id, true
		}
	}
	return 0, false
}

func enemyByName(name string) (EnemyType, bool) {
	for t := range Enemy.Types {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
