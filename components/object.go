package components

import (
	"github.com/automoto/throne-wars/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the body of a character. Its X, Y, W and H are the authoritative position and size.
type ObjectData struct {
	*resolv.Object
}

// Rect returns the body as a plain box.
func (o *ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// Center returns the body midpoint.
func (o *ObjectData) Center() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData is the broad-phase grid shared by every body in a session.
type SpaceData struct {
	*resolv.Space
}

var Space = donburi.NewComponentType[SpaceData]()
