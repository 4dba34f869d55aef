// Package controls turns keyboard and gamepad state into simulation intents.
package controls

import (
	"github.com/automoto/throne-wars/shared/messages"
	"github.com/hajimehoshi/ebiten/v2"
)

// ActionState is the per-frame view of one action.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// State holds two frames of polled input plus the left stick.
type State struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool

	// Left stick after the deadzone, in [-1, 1]
	AxisX float64
	AxisY float64
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Poll reads the keyboard and every standard layout gamepad. Call once per frame.
func (s *State) Poll() {
	// Swap buffers: current becomes previous, then zero out current
	s.Previous = s.Current
	s.Current = [ActionCount]bool{}
	s.AxisX, s.AxisY = 0, 0

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				s.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					s.Current[actionID] = true
				}
			}
		}
	}

	deadzone := Input.AnalogDeadzone
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if horizontal < -deadzone || horizontal > deadzone {
			s.AxisX = horizontal
		}
		if vertical < -deadzone || vertical > deadzone {
			s.AxisY = vertical
		}
	}
}

// Action returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func (s *State) Action(id ActionID) ActionState {
	curr := s.Current[id]
	prev := s.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Intent maps the polled state to one simulation intent. Digital directions win over the stick.
func (s *State) Intent() messages.Intent {
	in := messages.Intent{
		MoveX:                 s.AxisX,
		MoveY:                 s.AxisY,
		JumpRequested:         s.Action(ActionJump).JustPressed,
		AttackRequested:       s.Action(ActionAttack).JustPressed,
		BlockHeld:             s.Current[ActionBlock],
		DodgeRequested:        s.Action(ActionDodge).JustPressed,
		SwitchWeaponRequested: s.Action(ActionSwitchWeapon).JustPressed,
		ReloadRequested:       s.Action(ActionReload).JustPressed,
	}

	left, right := s.Current[ActionMoveLeft], s.Current[ActionMoveRight]
	switch {
	case left && !right:
		in.MoveX = -1
	case right && !left:
		in.MoveX = 1
	}
	if s.Current[ActionMoveUp] {
		in.MoveY = -1
	} else if s.Current[ActionMoveDown] {
		in.MoveY = 1
	}
	return in
}
