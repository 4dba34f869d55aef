package systems

import (
	"fmt"

	"github.com/automoto/throne-wars/components"
	cfg "github.com/automoto/throne-wars/config"
	"github.com/automoto/throne-wars/shared/messages"
	"github.com/automoto/throne-wars/systems/factory"
	"github.com/yohamta/donburi"
)

// RegisterHit extends the combo and restarts its window.
func RegisterHit(w donburi.World) {
	combo := GetCombo(w)
	combo.Count++
	combo.Timer = cfg.Combo.Window
	emitEvent(w, messages.FeedbackEvent{
		Kind:   messages.EventComboHit,
		Amount: combo.Count,
		Count:  combo.Count,
	})
}

// ComboBonus returns the score awarded when a combo of count hits expires.
func ComboBonus(count int) int {
	if count <= cfg.Combo.Threshold {
		return 0
	}
	return count * cfg.Combo.BonusPer
}

// UpdateCombo counts the window down and cashes the combo in when it runs out.
func UpdateCombo(w donburi.World) {
	combo := GetCombo(w)
	if combo.Timer <= 0 {
		return
	}
	combo.Timer--
	if combo.Timer > 0 {
		return
	}

	if bonus := ComboBonus(combo.Count); bonus > 0 {
		GetBattle(w).AddScore(bonus)

		var x, y float64
		if playerEntry, ok := GetPlayer(w); ok {
			obj := components.Object.Get(playerEntry)
			x, y = obj.X, obj.Y-80
		}
		factory.CreateCombatText(w, fmt.Sprintf("Combo x%d! +%d", combo.Count, bonus), x, y)
		emitEvent(w, messages.FeedbackEvent{
			Kind:   messages.EventComboBonus,
			X:      x,
			Y:      y,
			Amount: bonus,
			Count:  combo.Count,
		})
	}
	combo.Count = 0
}
