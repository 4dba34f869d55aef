package config

// EffectKind identifies a transient visual effect descriptor
type EffectKind int

const (
	EffectBlood EffectKind = iota
	EffectDust
	EffectBlockRing
	EffectDeathRing
	EffectDamagePopup
	EffectCombatText
)

func (k EffectKind) String() string {
	switch k {
	case EffectBlood:
		return "blood"
	case EffectDust:
		return "dust"
	case EffectBlockRing:
		return "block"
	case EffectDeathRing:
		return "death"
	case EffectDamagePopup:
		return "damage"
	case EffectCombatText:
		return "text"
	}
	return "unknown"
}

// EffectConfig describes how an effect evolves over its lifetime
type EffectConfig struct {
	Life        int     // Frames until the effect is pruned
	StartRadius float64 // Ring radius or particle spread at spawn
	EndRadius   float64
	RiseSpeed   float64 // Upward drift per frame for text effects
	Particles   int
}

// Effects is keyed by EffectKind
var Effects map[EffectKind]EffectConfig

// Combat text shown for notable moments
const (
	TextBattleStart   = "The battle begins!"
	TextNoArrows      = "No arrows!"
	TextBowReloaded   = "Bow reloaded!"
	TextLevelComplete = "Level complete!"
)

func effectTable() map[EffectKind]EffectConfig {
	return map[EffectKind]EffectConfig{
		EffectBlood:       {Life: 60, StartRadius: 0, EndRadius: 60, Particles: 20},
		EffectDust:        {Life: 40, StartRadius: 0, EndRadius: 40, Particles: 15},
		EffectBlockRing:   {Life: 30, StartRadius: 30, EndRadius: 90},
		EffectDeathRing:   {Life: 30, StartRadius: 5, EndRadius: 100},
		EffectDamagePopup: {Life: 60, RiseSpeed: 1},
		EffectCombatText:  {Life: 120, RiseSpeed: 0.5},
	}
}
