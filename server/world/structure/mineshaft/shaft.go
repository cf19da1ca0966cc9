package mineshaft

import (
	"github.com/dm-vev/shaftgen/server/block"
	"github.com/dm-vev/shaftgen/server/block/cube"
	"github.com/dm-vev/shaftgen/server/world/generator/pmgen/rand"
	"github.com/dm-vev/shaftgen/server/world/structure"
)

// myceliumChance is the chance of a floor block of a mushroom mineshaft turning into mycelium.
const myceliumChance = 0.8

// carveShaft carves the 5x5 ladder shaft from the floor of the piece up to the ceiling found by the
// evaluation, with a doorway towards the rest of the mineshaft at its bottom.
func (e *VerticalEntrance) carveShaft(c *structure.Carver, r *rand.Random, pal Palette) {
	const s, end = shaftStart, shaftEnd
	top := e.shaft.LocalYEnd()

	// Walls, hollowed out.
	c.FillRandom(r, structure.Box(s, 0, s, end, top, end), pal.Selector)
	c.Fill(structure.Box(s+1, 1, s+1, end-1, top-1, end-1), block.Air{})

	floor := structure.Box(s+1, 0, s+1, end-1, 0, end-1)
	c.ReplaceAir(floor, pal.Main)
	if pal.MyceliumFloor {
		c.ChanceReplaceNonAir(r, floor, myceliumChance, structure.Fixed{Block: block.Mycelium{}})
	}

	// Ladder, attached to the wall behind it.
	c.ReplaceAir(structure.Box(s+2, 1, s, s+2, top-4, s), pal.Main)
	c.Fill(structure.Box(s+2, 1, s+1, s+2, top-4, s+1), block.Ladder{Facing: cube.South})

	// Doorway.
	c.Fill(structure.Box(s+1, 1, s+4, s+3, 2, s+4), pal.DoorwayWall)
	c.Fill(structure.Box(s+2, 3, s+4, s+2, 3, s+4), pal.DoorwaySlab)
	c.Fill(structure.Box(s+2, 1, s+4, s+2, 2, s+4), block.Air{})

	dec := e.conf.Decorator
	dec.Biome(c, r, structure.Box(s+1, 0, s+1, end-1, 1, end-1), e.variant)
	dec.Vines(c, r, structure.Box(s+1, 0, s+1, end-1, top-4, end-1))
}
