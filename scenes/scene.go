package scenes

import (
	"github.com/automoto/throne-wars/records"
	"github.com/automoto/throne-wars/shared/arena"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Settings are the command line choices that carry over between battles
type Settings struct {
	Layout  *arena.Layout  // nil uses the bundled arena
	Seed    int64          // 0 picks a new seed per battle
	Records *records.Store // nil disables best scores
}
