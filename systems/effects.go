package systems

import (
	"github.com/automoto/throne-wars/components"
	cfg "github.com/automoto/throne-wars/config"
	"github.com/automoto/throne-wars/tags"
	"github.com/yohamta/donburi"
)

// UpdateEffects advances every effect by one frame and destroys the finished ones.
func UpdateEffects(w donburi.World) {
	var toDestroy []*donburi.Entry

	tags.Effect.Each(w, func(e *donburi.Entry) {
		effect := components.Effect.Get(e)
		effect.Age++

		done := effect.Age >= effect.Life
		if effect.Tween != nil {
			radius, finished := effect.Tween.Update(1)
			effect.Radius = float64(radius)
			done = done || finished
		}
		effect.Position.Y -= cfg.Effects[effect.Kind].RiseSpeed

		if done {
			effect.Finished = true
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		w.Remove(e.Entity())
	}
}
