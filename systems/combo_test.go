package systems

import (
	"testing"

	cfg "github.com/automoto/throne-wars/config"
	"github.com/automoto/throne-wars/shared/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComboBonusOnExpiry(t *testing.T) {
	tests := []struct {
		name  string
		hits  int
		bonus int
	}{
		{name: "below threshold", hits: 3, bonus: 0},
		{name: "just above threshold", hits: 4, bonus: 200},
		{name: "five hits", hits: 5, bonus: 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := newTestBattle(t, cfg.ClassNone)
			for i := 0; i < tt.hits; i++ {
				RegisterHit(tb.w)
			}
			require.Equal(t, tt.hits, GetCombo(tb.w).Count)
			tb.drain()

			for i := 0; i < cfg.Combo.Window-1; i++ {
				UpdateCombo(tb.w)
			}
			assert.Equal(t, tt.hits, GetCombo(tb.w).Count, "window still open")
			assert.Zero(t, GetBattle(tb.w).Score)

			UpdateCombo(tb.w)
			assert.Zero(t, GetCombo(tb.w).Count)
			assert.Equal(t, tt.bonus, GetBattle(tb.w).Score)

			events := tb.drain()
			if tt.bonus > 0 {
				require.Len(t, events, 1)
				assert.Equal(t, messages.EventComboBonus, events[0].Kind)
				assert.Equal(t, tt.bonus, events[0].Amount)
				assert.Equal(t, tt.hits, events[0].Count)
			} else {
				assert.Empty(t, events)
			}
		})
	}
}

func TestSpacedHitsEarnBonus(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	const gap = 100
	require.Less(t, gap, cfg.Combo.Window)

	for i := 0; i < 5; i++ {
		if i > 0 {
			for j := 0; j < gap; j++ {
				UpdateCombo(tb.w)
			}
		}
		RegisterHit(tb.w)
	}
	require.Equal(t, 5, GetCombo(tb.w).Count)

	for i := 0; i < cfg.Combo.Window; i++ {
		UpdateCombo(tb.w)
	}
	assert.Zero(t, GetCombo(tb.w).Count)
	assert.Equal(t, 250, GetBattle(tb.w).Score)
}

func TestHitRestartsComboWindow(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	RegisterHit(tb.w)
	for i := 0; i < 100; i++ {
		UpdateCombo(tb.w)
	}
	RegisterHit(tb.w)
	assert.Equal(t, cfg.Combo.Window, GetCombo(tb.w).Timer)

	for i := 0; i < 100; i++ {
		UpdateCombo(tb.w)
	}
	assert.Equal(t, 2, GetCombo(tb.w).Count)
}

func TestRegisterHitEmitsCount(t *testing.T) {
	tb := newTestBattle(t, cfg.ClassNone)
	RegisterHit(tb.w)
	RegisterHit(tb.w)

	events := tb.drain()
	require.Len(t, events, 2)
	assert.Equal(t, messages.EventComboHit, events[1].Kind)
	assert.Equal(t, 2, events[1].Amount)
}

func TestComboBonus(t *testing.T) {
	assert.Zero(t, ComboBonus(0))
	assert.Zero(t, ComboBonus(3))
	assert.Equal(t, 500, ComboBonus(10))
}
