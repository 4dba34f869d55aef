package render

import (
	"math"
	"strconv"

	"github.com/automoto/throne-wars/components"
	cfg "github.com/automoto/throne-wars/config"
	"github.com/automoto/throne-wars/fonts"
	"github.com/automoto/throne-wars/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawEffects renders rings, particle bursts and floating text, fading each over its life.
func DrawEffects(e *ecs.ECS, screen *ebiten.Image) {
	tags.Effect.Each(e.World, func(entry *donburi.Entry) {
		effect := components.Effect.Get(entry)
		base, ok := cfg.Display.Effects[effect.Kind]
		if !ok {
			base = cfg.White
		}
		c := fade(base, 1-effect.Progress())
		x, y := float32(effect.Position.X), float32(effect.Position.Y)

		switch effect.Kind {
		case cfg.EffectBlockRing, cfg.EffectDeathRing:
			vector.StrokeCircle(screen, x, y, float32(effect.Radius), 3, c, true)

		case cfg.EffectBlood, cfg.EffectDust:
			n := cfg.Effects[effect.Kind].Particles
			for i := 0; i < n; i++ {
				a := float64(i) * 2 * math.Pi / float64(n)
				px := effect.Position.X + math.Cos(a)*effect.Radius
				py := effect.Position.Y + math.Sin(a)*effect.Radius
				vector.FillCircle(screen, float32(px), float32(py), 2, c, false)
			}

		case cfg.EffectDamagePopup:
			text.Draw(screen, strconv.Itoa(effect.Amount), fonts.Bold.Get(), int(x), int(y), c)

		case cfg.EffectCombatText:
			face := fonts.Bold.Get()
			bounds := text.BoundString(face, effect.Text) //nolint:staticcheck // TODO: migrate to text/v2
			text.Draw(screen, effect.Text, face, int(x)-bounds.Dx()/2, int(y), c)
		}
	})
}
