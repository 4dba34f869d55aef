package scenes

import (
	"image/color"
	"os"
	"sync"

	cfg "github.com/automoto/throne-wars/config"
	"github.com/automoto/throne-wars/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// MenuScene displays the class select screen
type MenuScene struct {
	sceneChanger SceneChanger
	settings     Settings
	menuUI       *ui.ClassSelectUI
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, settings Settings) *MenuScene {
	return &MenuScene{sceneChanger: sc, settings: settings}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menuUI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.menuUI = ui.NewClassSelectUI(
		func(class cfg.ClassID) {
			ms.sceneChanger.ChangeScene(NewBattleScene(ms.sceneChanger, ms.settings, class))
		},
		func() {
			os.Exit(0)
		},
	)
}
