package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/throne-wars/config"
	"github.com/automoto/throne-wars/session"
	"github.com/automoto/throne-wars/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameOverScene displays the final score
type GameOverScene struct {
	sceneChanger SceneChanger
	settings     Settings
	class        cfg.ClassID
	summary      session.Summary
	gameOverUI   *ui.GameOverUI
	once         sync.Once
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, settings Settings, class cfg.ClassID, summary session.Summary) *GameOverScene {
	return &GameOverScene{
		sceneChanger: sc,
		settings:     settings,
		class:        class,
		summary:      summary,
	}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.gameOverUI.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.gameOverUI == nil {
		return
	}
	gs.gameOverUI.UI.Draw(screen)
}

func (gs *GameOverScene) configure() {
	best, isNew := gs.settings.Records.Submit(gs.class, gs.summary)
	gs.gameOverUI = ui.NewGameOverUI(gs.summary.Score, gs.summary.LevelReached, best.Score, isNew,
		func() {
			gs.sceneChanger.ChangeScene(NewBattleScene(gs.sceneChanger, gs.settings, gs.class))
		},
		func() {
			gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger, gs.settings))
		},
	)
}
