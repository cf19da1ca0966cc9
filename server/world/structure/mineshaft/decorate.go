package mineshaft

import (
	"github.com/dm-vev/shaftgen/server/block"
	"github.com/dm-vev/shaftgen/server/block/cube"
	"github.com/dm-vev/shaftgen/server/world"
	"github.com/dm-vev/shaftgen/server/world/generator/pmgen/rand"
	"github.com/dm-vev/shaftgen/server/world/structure"
)

// Decorator adds decorations after the shaft and tunnel of a piece have been carved. Boxes passed are in
// the local space of the piece carved by the Carver.
type Decorator interface {
	// Biome decorates the floor of the shaft according to the variant of the mineshaft.
	Biome(c *structure.Carver, r *rand.Random, box cube.BlockBox, v Variant)
	// Vines hangs vines from the walls enclosing the box.
	Vines(c *structure.Carver, r *rand.Random, box cube.BlockBox)
}

// NopDecorator is a Decorator that adds no decorations and consumes no randomness.
type NopDecorator struct{}

// Biome ...
func (NopDecorator) Biome(*structure.Carver, *rand.Random, cube.BlockBox, Variant) {}

// Vines ...
func (NopDecorator) Vines(*structure.Carver, *rand.Random, cube.BlockBox) {}

// VineDecorator is a Decorator that hangs vines on walls. Every position of a vine box draws one float;
// with the chance of the VineDecorator an air block next to a solid wall gets vines attached to the first
// such wall in the order of cube.Directions.
type VineDecorator struct {
	NopDecorator
	// Chance is the chance of vines on a candidate position.
	Chance float32
}

// Vines ...
func (v VineDecorator) Vines(c *structure.Carver, r *rand.Random, box cube.BlockBox) {
	box.Range(func(pos cube.Pos) {
		if r.Float32() >= v.Chance || !world.IsAir(c.BlockAt(pos[0], pos[1], pos[2])) {
			return
		}
		for _, d := range cube.Directions() {
			side := pos.Side(d)
			if world.Solid(c.BlockAt(side[0], side[1], side[2])) {
				c.PlaceBlock(pos[0], pos[1], pos[2], block.Vines{}.WithAttachment(d, true))
				return
			}
		}
	})
}
