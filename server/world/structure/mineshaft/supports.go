package mineshaft

import (
	"github.com/dm-vev/shaftgen/server/block"
	"github.com/dm-vev/shaftgen/server/world/generator/pmgen/rand"
	"github.com/dm-vev/shaftgen/server/world/structure"
)

const (
	// supportSpacing is the minimum distance in steps between two supports.
	supportSpacing = 4
	// beamChance is the chance of a beam block being replaced by the support block.
	beamChance = 0.25
	// cobwebChance is the chance of a cobweb next to a support post.
	cobwebChance = 0.15
	// railChance is the chance of a rail on a step with a solid floor.
	railChance = 0.5
)

// placeSupports walks the steps of the mask in order and calls place for every step that gets a support.
// One integer is drawn per step walked. A step gets a support if the draw is 0 and its floor is solid,
// after which the next supportSpacing-1 steps are skipped without drawing.
func placeSupports(r *rand.Random, mask []bool, place func(i int)) {
	for i := 0; i < len(mask); i++ {
		if r.Int31n(4) == 0 && mask[i] {
			place(i)
			i += supportSpacing - 1
		}
	}
}

// placeRails walks the steps of the mask in order and calls place for every step that gets a rail. A float
// is drawn for every step with a solid floor and no others.
func placeRails(r *rand.Random, mask []bool, place func(i int)) {
	for i, solid := range mask {
		if solid && r.Float32() < railChance {
			place(i)
		}
	}
}

// placeSupport places a support at step i of the tunnel: two posts on both sides of the centre, a beam
// across them and the occasional cobweb next to the top of the posts.
func (e *VerticalEntrance) placeSupport(c *structure.Carver, r *rand.Random, pal Palette, b TunnelBounds, fa, i int) {
	cobweb := block.Cobweb{}
	if b.AlongZ {
		x, z := b.StartX, b.StartZ+i
		c.Fill(structure.Box(x+1, fa+1, z, x+1, fa+2, z), pal.Support)
		c.Fill(structure.Box(x+3, fa+1, z, x+3, fa+2, z), pal.Support)
		beam := structure.Box(x+1, fa+3, z, x+3, fa+3, z)
		c.Fill(beam, pal.Main)
		c.ChanceReplaceNonAir(r, beam, beamChance, structure.Fixed{Block: pal.Support})

		c.ChanceReplaceAir(r, structure.Box(x+1, fa+3, z-1, x+1, fa+3, z+1), cobwebChance, cobweb)
		c.ChanceReplaceAir(r, structure.Box(x+3, fa+3, z-1, x+3, fa+3, z+1), cobwebChance, cobweb)
		return
	}
	x, z := b.StartX+i, b.StartZ
	c.Fill(structure.Box(x, fa+1, z+1, x, fa+2, z+1), pal.Support)
	c.Fill(structure.Box(x, fa+1, z+3, x, fa+2, z+3), pal.Support)
	beam := structure.Box(x, fa+3, z+1, x, fa+3, z+3)
	c.Fill(beam, pal.Main)
	c.ChanceReplaceNonAir(r, beam, beamChance, structure.Fixed{Block: pal.Support})

	c.ChanceReplaceAir(r, structure.Box(x-1, fa+3, z+1, x+1, fa+3, z+1), cobwebChance, cobweb)
	c.ChanceReplaceAir(r, structure.Box(x-1, fa+3, z+3, x+1, fa+3, z+3), cobwebChance, cobweb)
}
