package block

import (
	"github.com/dm-vev/shaftgen/server/block/cube"
	"github.com/dm-vev/shaftgen/server/world"
)

// Ladder is a wooden block used for climbing walls either vertically or horizontally. It is attached to
// the block behind it, opposite to the direction it faces.
type Ladder struct {
	// Facing is the side of the block the ladder is currently attached to.
	Facing cube.Direction
}

// EncodeBlock ...
func (l Ladder) EncodeBlock() (string, map[string]any) {
	return "minecraft:ladder", map[string]any{"facing_direction": facingDirection(l.Facing)}
}

// Orient ...
func (l Ladder) Orient(f DirectionMapper) world.Block {
	l.Facing = f(l.Facing)
	return l
}
