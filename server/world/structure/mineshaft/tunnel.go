package mineshaft

import (
	"github.com/dm-vev/shaftgen/server/block"
	"github.com/dm-vev/shaftgen/server/world"
	"github.com/dm-vev/shaftgen/server/world/generator/pmgen/rand"
	"github.com/dm-vev/shaftgen/server/world/structure"
)

// wallChance is the chance of a solid block around the tunnel being replaced by a wall block.
const wallChance = 0.6

// carveTunnel carves the surface tunnel from the top of the shaft to the opening found by the evaluation,
// then places supports and rails along it. The orientation of the tunnel is only known at generation
// time, so its footprint is mapped onto the piece manually.
func (e *VerticalEntrance) carveTunnel(c *structure.Carver, r *rand.Random, pal Palette) {
	b := MapTunnel(e.piece.Facing, e.tunnel.Direction, e.tunnel.Length)
	fa := e.tunnel.FloorAltitude

	c.ChanceReplaceNonAir(r, structure.Box(b.StartX, fa, b.StartZ, b.EndX, fa+4, b.EndZ), wallChance, pal.Selector)

	// The floor and the hollow interior are inset by one block on the axis perpendicular to travel.
	ix, iz := 1, 0
	if !b.AlongZ {
		ix, iz = 0, 1
	}
	floor := structure.Box(b.StartX+ix, fa, b.StartZ+iz, b.EndX-ix, fa, b.EndZ-iz)
	c.ReplaceAir(floor, pal.Main)
	if pal.MyceliumFloor {
		c.ChanceReplaceNonAir(r, floor, myceliumChance, structure.Fixed{Block: block.Mycelium{}})
	}
	c.Fill(structure.Box(b.StartX+ix, fa+1, b.StartZ+iz, b.EndX-ix, fa+3, b.EndZ-iz), block.Air{})

	e.conf.Decorator.Vines(c, r, structure.Box(b.StartX+1, fa, b.StartZ+1, b.EndX-1, fa+4, b.EndZ-1))

	mask := floorMask(c, b, fa)
	placeSupports(r, mask, func(i int) {
		e.placeSupport(c, r, pal, b, fa, i)
	})
	rail := block.Rail{Axis: b.Relative.Axis()}
	placeRails(r, mask, func(i int) {
		x, z := stepPos(b, i)
		c.PlaceBlock(x, fa+1, z, rail)
	})
}

// floorMask returns, for every step along the travel axis of the tunnel, if the centre block of the floor
// is solid.
func floorMask(c *structure.Carver, b TunnelBounds, fa int) []bool {
	mask := make([]bool, b.Length())
	for i := range mask {
		x, z := stepPos(b, i)
		mask[i] = world.Solid(c.BlockAt(x, fa, z))
	}
	return mask
}

// stepPos returns the local X and Z of the centre of the tunnel at step i along its travel axis.
func stepPos(b TunnelBounds, i int) (x, z int) {
	if b.AlongZ {
		return b.StartX + 2, b.StartZ + i
	}
	return b.StartX + i, b.StartZ + 2
}
