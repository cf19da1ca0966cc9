package block

import (
	"github.com/dm-vev/shaftgen/server/block/cube"
	"github.com/dm-vev/shaftgen/server/world"
)

// solid is embedded by blocks that are made of solid material.
type solid struct{}

// SolidMaterial ...
func (solid) SolidMaterial() bool {
	return true
}

// DirectionMapper converts a direction from one frame of reference to another, for example from the local
// space of a structure piece to world space.
type DirectionMapper func(d cube.Direction) cube.Direction

// Orientable is implemented by blocks whose state depends on the horizontal direction they face.
type Orientable interface {
	world.Block
	// Orient returns the block with all of its directions converted by the DirectionMapper passed.
	Orient(f DirectionMapper) world.Block
}

// facingDirection returns the Bedrock facing_direction value of the direction passed.
func facingDirection(d cube.Direction) int32 {
	switch d {
	case cube.North:
		return 2
	case cube.South:
		return 3
	case cube.West:
		return 4
	case cube.East:
		return 5
	}
	return 0
}
