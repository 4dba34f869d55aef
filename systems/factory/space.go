package factory

import (
	"math"

	"github.com/automoto/throne-wars/archetypes"
	"github.com/automoto/throne-wars/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace builds the broad-phase grid covering a width*height arena.
func CreateSpace(w donburi.World, width, height float64, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	cols := int(math.Ceil(width))
	rows := int(math.Ceil(height))
	spaceData := resolv.NewSpace(cols, rows, cellSize, cellSize)
	components.Space.SetValue(space, components.SpaceData{Space: spaceData})
	return space
}

// SpaceOf returns the world's broad-phase grid.
func SpaceOf(w donburi.World) *resolv.Space {
	return components.Space.Get(components.Space.MustFirst(w)).Space
}
