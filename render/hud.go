package render

import (
	"fmt"

	"github.com/automoto/throne-wars/components"
	cfg "github.com/automoto/throne-wars/config"
	"github.com/automoto/throne-wars/fonts"
	"github.com/automoto/throne-wars/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders health and stamina bars, the equipped weapon, score, level and combo.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	d := cfg.Display
	battle := systems.GetBattle(e.World)

	playerEntry, ok := systems.GetPlayer(e.World)
	if ok {
		hp := components.Health.Get(playerEntry)
		stamina := components.Stamina.Get(playerEntry)
		weapon := components.Loadout.Get(playerEntry).Equipped()

		x, y := d.HUDMargin, d.HUDMargin
		drawBar(screen, x, y, d.HUDBarWidth, d.HUDBarHeight, hp.Current/hp.Max, d.HealthBar)
		y += d.HUDBarHeight + d.HUDBarGap
		drawBar(screen, x, y, d.HUDBarWidth, d.HUDBarHeight, stamina.Current/stamina.Max, d.StaminaBar)
		y += d.HUDBarHeight + d.HUDBarGap

		label := weapon.ID.String()
		if weapon.Ranged {
			label = fmt.Sprintf("%s %d/%d", label, weapon.Ammo, weapon.MaxAmmo)
		}
		text.Draw(screen, label, fonts.Regular.Get(), int(x), int(y)+14, d.HUDText)
	}

	width := screen.Bounds().Dx()
	face := fonts.Bold.Get()
	score := fmt.Sprintf("Score %d", battle.Score)
	bounds := text.BoundString(face, score) //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, score, face, width-bounds.Dx()-int(d.HUDMargin), int(d.HUDMargin)+20, d.HUDText)
	text.Draw(screen, fmt.Sprintf("Level %d", battle.Level), fonts.Regular.Get(),
		width-bounds.Dx()-int(d.HUDMargin), int(d.HUDMargin)+40, d.HUDText)

	combo := systems.GetCombo(e.World)
	if combo.Count > 1 {
		msg := fmt.Sprintf("%d hits", combo.Count)
		bounds := text.BoundString(face, msg) //nolint:staticcheck // TODO: migrate to text/v2
		text.Draw(screen, msg, face, (width-bounds.Dx())/2, int(d.HUDMargin)+20, d.ComboText)
	}
}

// DrawPause dims the screen and shows the pause banner.
func DrawPause(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), cfg.Display.PauseOverlay, false)

	face := fonts.Title.Get()
	msg := "PAUSED"
	bounds := text.BoundString(face, msg) //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, msg, face, (w-bounds.Dx())/2, h/2, cfg.White)
}
