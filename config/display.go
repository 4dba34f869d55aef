package config

import "image/color"

// DisplayConfig holds the colors and HUD layout of the windowed front-end
type DisplayConfig struct {
	Background color.RGBA
	GroundFill color.RGBA
	GroundLine color.RGBA

	Player         color.RGBA
	PlayerBlocking color.RGBA
	PlayerDodging  color.RGBA
	PlayerHurt     color.RGBA
	Swing          color.RGBA
	Enemies        map[EnemyType]color.RGBA
	EnemyAttacking color.RGBA
	PlayerArrow    color.RGBA
	EnemyArrow     color.RGBA
	ArrowLength    float64

	Effects map[EffectKind]color.RGBA

	HUDMargin    float64
	HUDBarWidth  float64
	HUDBarHeight float64
	HUDBarGap    float64
	HUDBarBack   color.RGBA
	HealthBar    color.RGBA
	StaminaBar   color.RGBA
	HUDText      color.RGBA
	ComboText    color.RGBA
	PauseOverlay color.RGBA
}

// Display is the global front-end look
var Display DisplayConfig

func init() {
	Display = DisplayConfig{
		Background: Night,
		GroundFill: Ground,
		GroundLine: Forest,

		Player:         Steel,
		PlayerBlocking: Silver,
		PlayerDodging:  color.RGBA{R: 42, G: 77, B: 105, A: 120},
		PlayerHurt:     White,
		Swing:          color.RGBA{R: 255, G: 255, B: 255, A: 90},
		Enemies: map[EnemyType]color.RGBA{
			EnemySoldier: Blood,
			EnemyKnight:  color.RGBA{R: 90, G: 90, B: 110, A: 255},
			EnemyArcher:  Forest,
			EnemyBoss:    Orange,
		},
		EnemyAttacking: Red,
		PlayerArrow:    Gold,
		EnemyArrow:     Red,
		ArrowLength:    20,

		Effects: map[EffectKind]color.RGBA{
			EffectBlood:       Blood,
			EffectDust:        color.RGBA{R: 160, G: 140, B: 110, A: 255},
			EffectBlockRing:   Silver,
			EffectDeathRing:   Gold,
			EffectDamagePopup: Red,
			EffectCombatText:  Gold,
		},

		HUDMargin:    10,
		HUDBarWidth:  200,
		HUDBarHeight: 14,
		HUDBarGap:    6,
		HUDBarBack:   color.RGBA{R: 40, G: 40, B: 40, A: 255},
		HealthBar:    color.RGBA{R: 40, G: 220, B: 40, A: 255},
		StaminaBar:   color.RGBA{R: 60, G: 140, B: 230, A: 255},
		HUDText:      White,
		ComboText:    Gold,
		PauseOverlay: BlackOverlay,
	}
}
