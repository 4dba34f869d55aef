package components

import (
	"github.com/automoto/throne-wars/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// EffectData is a transient visual effect descriptor. The simulation only advances it;
// drawing is up to the presentation layer.
type EffectData struct {
	Kind     config.EffectKind
	Position math.Vec2
	Text     string
	Amount   int

	Tween    *gween.Tween // Radius or spread over the lifetime
	Radius   float64
	Life     int // Total frames
	Age      int
	Finished bool
}

// Progress returns how far through its life the effect is, in [0, 1].
func (e *EffectData) Progress() float64 {
	if e.Life <= 0 {
		return 1
	}
	p := float64(e.Age) / float64(e.Life)
	if p > 1 {
		return 1
	}
	return p
}

var Effect = donburi.NewComponentType[EffectData]()
