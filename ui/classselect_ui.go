package ui

import (
	"fmt"
	"strings"

	cfg "github.com/automoto/throne-wars/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// ClassSelectUI is the title screen: one button per playable class plus quit.
type ClassSelectUI struct {
	UI *ebitenui.UI

	OnSelect func(class cfg.ClassID)
	OnQuit   func()

	faces faces
}

func NewClassSelectUI(onSelect func(cfg.ClassID), onQuit func()) *ClassSelectUI {
	ui := &ClassSelectUI{
		OnSelect: onSelect,
		OnQuit:   onQuit,
		faces:    loadFaces(),
	}
	ui.buildUI()
	return ui
}

func (ui *ClassSelectUI) buildUI() {
	root := newRoot()
	content := newCenteredColumn(12)

	content.AddChild(newLabel("THRONE WARS", &ui.faces.title, titleColor))
	content.AddChild(newLabel("Choose your fighter", &ui.faces.normal, labelColor))

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)
	for _, class := range cfg.PlayableClasses {
		class := class
		panel.AddChild(newButton(strings.ToUpper(class.String()), &ui.faces.normal, 260, func() {
			if ui.OnSelect != nil {
				ui.OnSelect(class)
			}
		}))
		panel.AddChild(newLabel(ClassSummary(class), &ui.faces.small, labelColor))
	}
	content.AddChild(panel)

	content.AddChild(newLabel("Arrows move, Space jumps, J attacks, K blocks, L dodges, Q switches, R reloads",
		&ui.faces.small, labelColor))

	content.AddChild(newButton("Quit", &ui.faces.normal, 120, func() {
		if ui.OnQuit != nil {
			ui.OnQuit()
		}
	}))

	root.AddChild(content)
	ui.UI = &ebitenui.UI{Container: root}
}

// ClassSummary describes a class in one line for the select screen.
func ClassSummary(class cfg.ClassID) string {
	c := cfg.Classes[class]
	best := cfg.WeaponConfig{}
	for _, w := range c.Loadout() {
		if _, ok := c.Overrides[w.ID]; ok {
			best = w
		}
	}
	summary := fmt.Sprintf("%.0f HP  speed %.1f", c.MaxHealth, c.Speed)
	if best.Damage > 0 {
		summary += fmt.Sprintf("  %s %d dmg", best.ID, best.Damage)
	}
	return summary
}

func (ui *ClassSelectUI) Update() {
	ui.UI.Update()
}
