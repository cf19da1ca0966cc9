package mineshaft

import (
	"github.com/dm-vev/shaftgen/server/block/cube"
)

// TunnelBounds is the local-space footprint of a surface tunnel. StartX/StartZ and EndX/EndZ are inclusive.
type TunnelBounds struct {
	StartX, StartZ, EndX, EndZ int
	// Relative is the tunnel direction expressed in the local space of the piece.
	Relative cube.Direction
	// AlongZ is true if the tunnel runs along the local Z axis, which is the case when the piece faces
	// along the same axis as the tunnel. The tunnel is inset on the X axis if true and on the Z axis if not.
	AlongZ bool
}

// Length returns the amount of steps along the travel axis of the tunnel, including both ends.
func (b TunnelBounds) Length() int {
	if b.AlongZ {
		return b.EndZ - b.StartZ + 1
	}
	return b.EndX - b.StartX + 1
}

// MapTunnel returns the local-space footprint of a tunnel of the length passed that leaves the shaft of a
// piece facing facing in world direction dir. Both directions must be valid.
//
// The tunnel is anchored to the wall of the shaft it leaves through: the difference between the rotations
// of facing and dir turns north into the relative direction of the tunnel, which selects the wall. The
// rotated frames of pieces facing south and west are mirrored, so for those the west and east walls swap.
func MapTunnel(facing, dir cube.Direction, length int) TunnelBounds {
	diff := facing.Rotation() - dir.Rotation()
	rel := cube.DirectionFromRotation(cube.North.Rotation() - diff)
	mirrored := facing == cube.South || facing == cube.West

	b := TunnelBounds{Relative: rel, AlongZ: facing.Axis() == dir.Axis()}
	switch {
	case rel == cube.North:
		b.StartX, b.StartZ, b.EndX, b.EndZ = shaftStart, shaftEnd, shaftEnd, shaftEnd+length
	case rel == cube.West && !mirrored, rel == cube.East && mirrored:
		b.StartX, b.StartZ, b.EndX, b.EndZ = shaftStart-length, shaftStart, shaftStart, shaftEnd
	case rel == cube.South:
		b.StartX, b.StartZ, b.EndX, b.EndZ = shaftStart, shaftStart-length, shaftEnd, shaftStart
	default:
		b.StartX, b.StartZ, b.EndX, b.EndZ = shaftEnd, shaftStart, shaftEnd+length, shaftEnd
	}
	return b
}
