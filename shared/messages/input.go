package messages

// Intent is the normalized input for one tick, produced by a keyboard, touch or autopilot mapper.
// MoveX and MoveY are in [-1, 1]. The Requested fields are edge triggered.
type Intent struct {
	MoveX float64
	MoveY float64

	JumpRequested         bool
	AttackRequested       bool
	BlockHeld             bool
	DodgeRequested        bool
	SwitchWeaponRequested bool
	ReloadRequested       bool
}

// Held returns the intent with every edge-triggered request cleared, keeping stick and guard state.
func (in Intent) Held() Intent {
	return Intent{
		MoveX:     in.MoveX,
		MoveY:     in.MoveY,
		BlockHeld: in.BlockHeld,
	}
}

// Normalized clamps the axes into [-1, 1].
func (in Intent) Normalized() Intent {
	in.MoveX = clampAxis(in.MoveX)
	in.MoveY = clampAxis(in.MoveY)
	return in
}

func clampAxis(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	if v != v { // NaN
		return 0
	}
	return v
}
