package systems

import (
	"github.com/automoto/throne-wars/components"
	"github.com/automoto/throne-wars/shared/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Feedback carries events for the presentation layer. Sessions subscribe a collector per world
// and drain it after every step.
var Feedback = events.NewEventType[messages.FeedbackEvent]()

func emit(w donburi.World, kind messages.EventKind, x, y float64, amount int) {
	emitEvent(w, messages.FeedbackEvent{Kind: kind, X: x, Y: y, Amount: amount})
}

func emitEvent(w donburi.World, ev messages.FeedbackEvent) {
	if entry, ok := components.Battle.First(w); ok {
		ev.Tick = components.Battle.Get(entry).Tick
	}
	Feedback.Publish(w, ev)
}
