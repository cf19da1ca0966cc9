package block

import (
	"github.com/dm-vev/shaftgen/server/block/cube"
	"github.com/dm-vev/shaftgen/server/world"
)

// Vines are climbable non-solid vegetation blocks that grow on walls.
type Vines struct {
	// NorthDirection is true if the vines are attached towards north.
	NorthDirection bool
	// EastDirection is true if the vines are attached towards east.
	EastDirection bool
	// SouthDirection is true if the vines are attached towards south.
	SouthDirection bool
	// WestDirection is true if the vines are attached towards west.
	WestDirection bool
}

// WithAttachment returns a Vines block with an attachment on the direction passed.
func (v Vines) WithAttachment(d cube.Direction, attached bool) Vines {
	switch d {
	case cube.North:
		v.NorthDirection = attached
	case cube.East:
		v.EastDirection = attached
	case cube.South:
		v.SouthDirection = attached
	case cube.West:
		v.WestDirection = attached
	}
	return v
}

// Attachment returns the attachment of the vines for the given direction.
func (v Vines) Attachment(d cube.Direction) bool {
	switch d {
	case cube.North:
		return v.NorthDirection
	case cube.East:
		return v.EastDirection
	case cube.South:
		return v.SouthDirection
	case cube.West:
		return v.WestDirection
	}
	return false
}

// EncodeBlock ...
func (v Vines) EncodeBlock() (string, map[string]any) {
	var bits int32
	for i, ok := range []bool{v.SouthDirection, v.WestDirection, v.NorthDirection, v.EastDirection} {
		if ok {
			bits |= 1 << i
		}
	}
	return "minecraft:vine", map[string]any{"vine_direction_bits": bits}
}

// Orient ...
func (v Vines) Orient(f DirectionMapper) world.Block {
	var o Vines
	for _, d := range cube.Directions() {
		if v.Attachment(d) {
			o = o.WithAttachment(f(d), true)
		}
	}
	return o
}
