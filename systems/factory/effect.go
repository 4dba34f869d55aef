package factory

import (
	"github.com/automoto/throne-wars/archetypes"
	"github.com/automoto/throne-wars/components"
	cfg "github.com/automoto/throne-wars/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateEffect spawns a visual effect descriptor centered at (x, y).
// The tween runs over the effect lifetime measured in frames.
func CreateEffect(w donburi.World, kind cfg.EffectKind, x, y float64) *donburi.Entry {
	effectCfg := cfg.Effects[kind]

	easing := ease.Linear
	if kind == cfg.EffectBlood || kind == cfg.EffectDust {
		easing = ease.OutQuad
	}

	e := archetypes.Effect.Spawn(w)
	components.Effect.SetValue(e, components.EffectData{
		Kind:     kind,
		Position: math.Vec2{X: x, Y: y},
		Tween:    gween.New(float32(effectCfg.StartRadius), float32(effectCfg.EndRadius), float32(effectCfg.Life), easing),
		Radius:   effectCfg.StartRadius,
		Life:     effectCfg.Life,
	})
	return e
}

// CreateCombatText spawns a floating text effect.
func CreateCombatText(w donburi.World, text string, x, y float64) *donburi.Entry {
	e := CreateEffect(w, cfg.EffectCombatText, x, y)
	components.Effect.Get(e).Text = text
	return e
}

// CreateDamagePopup spawns a floating damage number.
func CreateDamagePopup(w donburi.World, amount int, x, y float64) *donburi.Entry {
	e := CreateEffect(w, cfg.EffectDamagePopup, x, y)
	components.Effect.Get(e).Amount = amount
	return e
}
