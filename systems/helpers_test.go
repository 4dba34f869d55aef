package systems

import (
	"testing"

	"github.com/automoto/throne-wars/components"
	cfg "github.com/automoto/throne-wars/config"
	"github.com/automoto/throne-wars/shared/arena"
	"github.com/automoto/throne-wars/shared/messages"
	"github.com/automoto/throne-wars/systems/factory"
	"github.com/yohamta/donburi"
)

const testSeed = 12345

type testBattle struct {
	w      donburi.World
	player *donburi.Entry
	events []messages.FeedbackEvent
}

// newTestBattle builds a world with a space, the battle singleton and a grounded player,
// but no enemies.
func newTestBattle(t *testing.T, class cfg.ClassID) *testBattle {
	t.Helper()
	w := donburi.NewWorld()
	layout := arena.Default()
	factory.CreateSpace(w, layout.Width, layout.Height, cfg.Arena.CellSize)
	factory.CreateBattle(w, layout, testSeed)

	tb := &testBattle{w: w}
	tb.player = factory.CreatePlayer(w, layout.PlayerSpawn.X, layout.GroundY-cfg.Player.Height, class)
	Feedback.Subscribe(w, func(_ donburi.World, ev messages.FeedbackEvent) {
		tb.events = append(tb.events, ev)
	})
	return tb
}

// drain flushes the event bus and returns everything published since the last drain.
func (tb *testBattle) drain() []messages.FeedbackEvent {
	Feedback.ProcessEvents(tb.w)
	out := tb.events
	tb.events = nil
	return out
}

func (tb *testBattle) kinds() []messages.EventKind {
	var out []messages.EventKind
	for _, ev := range tb.drain() {
		out = append(out, ev.Kind)
	}
	return out
}

func (tb *testBattle) placePlayer(x, y float64) {
	obj := components.Object.Get(tb.player)
	obj.X, obj.Y = x, y
	obj.Update()
}

func (tb *testBattle) spawnEnemy(x, y float64, enemyType cfg.EnemyType) *donburi.Entry {
	return factory.CreateEnemy(tb.w, x, y, enemyType)
}

func (tb *testBattle) step(intent messages.Intent) {
	SetIntent(tb.w, intent)
	UpdatePlayer(tb.w)
}

func (tb *testBattle) playerData() *components.PlayerData {
	return components.Player.Get(tb.player)
}

func (tb *testBattle) health() float64 {
	return components.Health.Get(tb.player).Current
}

func (tb *testBattle) stamina() *components.StaminaData {
	return components.Stamina.Get(tb.player)
}

func countProjectiles(w donburi.World) int {
	n := 0
	components.Projectile.Each(w, func(*donburi.Entry) { n++ })
	return n
}
