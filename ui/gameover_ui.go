package ui

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
)

// GameOverUI shows the final score with retry and menu buttons.
type GameOverUI struct {
	UI *ebitenui.UI

	OnRetry func()
	OnMenu  func()

	faces faces
}

func NewGameOverUI(score, level, best int, newBest bool, onRetry, onMenu func()) *GameOverUI {
	ui := &GameOverUI{
		OnRetry: onRetry,
		OnMenu:  onMenu,
		faces:   loadFaces(),
	}
	ui.buildUI(score, level, best, newBest)
	return ui
}

func (ui *GameOverUI) buildUI(score, level, best int, newBest bool) {
	root := newRoot()
	content := newCenteredColumn(14)

	content.AddChild(newLabel("YOU DIED", &ui.faces.title, titleColor))
	content.AddChild(newLabel(fmt.Sprintf("Final score: %d", score), &ui.faces.normal, labelColor))
	content.AddChild(newLabel(fmt.Sprintf("Level reached: %d", level), &ui.faces.normal, labelColor))
	if newBest {
		content.AddChild(newLabel("New best!", &ui.faces.normal, titleColor))
	} else if best > 0 {
		content.AddChild(newLabel(fmt.Sprintf("Best: %d", best), &ui.faces.small, labelColor))
	}

	content.AddChild(newButton("Retry", &ui.faces.normal, 200, func() {
		if ui.OnRetry != nil {
			ui.OnRetry()
		}
	}))
	content.AddChild(newButton("Main Menu", &ui.faces.normal, 200, func() {
		if ui.OnMenu != nil {
			ui.OnMenu()
		}
	}))

	root.AddChild(content)
	ui.UI = &ebitenui.UI{Container: root}
}

func (ui *GameOverUI) Update() {
	ui.UI.Update()
}
