package block

import (
	"github.com/dm-vev/shaftgen/server/block/cube"
	"github.com/dm-vev/shaftgen/server/world"
)

// Rail is a block on which minecarts travel. Rails used by generated structures are always straight.
type Rail struct {
	// Axis is the horizontal axis the rail runs along.
	Axis cube.Axis
}

// EncodeBlock ...
func (r Rail) EncodeBlock() (string, map[string]any) {
	var dir int32
	if r.Axis == cube.X {
		dir = 1
	}
	return "minecraft:rail", map[string]any{"rail_direction": dir}
}

// Orient ...
func (r Rail) Orient(f DirectionMapper) world.Block {
	if r.Axis == cube.X {
		r.Axis = f(cube.East).Axis()
	} else {
		r.Axis = f(cube.South).Axis()
	}
	return r
}
