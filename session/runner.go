package session

import (
	"sync"
	"time"

	"github.com/automoto/throne-wars/shared/messages"
)

// IntentSource produces the input for the next tick from the latest snapshot.
type IntentSource interface {
	NextIntent(snap Snapshot) messages.Intent
}

// IntentFunc adapts a plain function to IntentSource.
type IntentFunc func(snap Snapshot) messages.Intent

func (f IntentFunc) NextIntent(snap Snapshot) messages.Intent {
	return f(snap)
}

// Runner drives a session without a window, one step per tick.
type Runner struct {
	session  *Session
	input    IntentSource
	tickRate int // Ticks per second; 0 or less runs as fast as possible
	maxTicks int // 0 runs until the game is over or Stop is called
	onTick   func(TickResult)
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewRunner creates a runner for s fed by input.
func NewRunner(s *Session, input IntentSource, tickRate int) *Runner {
	return &Runner{
		session:  s,
		input:    input,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// WithMaxTicks stops the run after n ticks.
func (r *Runner) WithMaxTicks(n int) *Runner {
	r.maxTicks = n
	return r
}

// OnTick registers a callback that sees every tick result.
func (r *Runner) OnTick(fn func(TickResult)) *Runner {
	r.onTick = fn
	return r
}

// Run blocks until the game ends, the tick budget runs out or Stop is called.
func (r *Runner) Run() Summary {
	r.session.logger.Printf("Runner started at %d ticks/second", r.tickRate)

	var tickC <-chan time.Time
	if r.tickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(r.tickRate))
		defer ticker.Stop()
		tickC = ticker.C
	}

	snap := r.session.Snapshot()
	for ticks := 0; r.maxTicks <= 0 || ticks < r.maxTicks; ticks++ {
		if tickC != nil {
			select {
			case <-r.stopChan:
				r.session.logger.Println("Runner stopped")
				return r.session.Summary()
			case <-tickC:
			}
		} else {
			select {
			case <-r.stopChan:
				r.session.logger.Println("Runner stopped")
				return r.session.Summary()
			default:
			}
		}

		result := r.tick(snap)
		snap = result.Snapshot
		if snap.Over {
			break
		}
	}

	return r.session.Summary()
}

// Stop ends a running Run. Safe to call more than once.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopChan)
	})
}

func (r *Runner) tick(snap Snapshot) TickResult {
	result := r.session.Tick(r.input.NextIntent(snap), 1)
	if r.onTick != nil {
		r.onTick(result)
	}
	return result
}
