// Package structure implements the building blocks shared by generated structure pieces: the transform
// from the local space of a piece to world space and the carving primitives operating in local space.
package structure

import (
	"github.com/dm-vev/shaftgen/server/block"
	"github.com/dm-vev/shaftgen/server/block/cube"
	"github.com/dm-vev/shaftgen/server/world"
	"github.com/dm-vev/shaftgen/server/world/generator/pmgen/rand"
)

// Piece holds the placement of a single structure piece: the world-space box it occupies and the direction
// it faces. Positions within a piece are expressed in local space, where the piece always faces the same
// way, and converted to world space according to the facing of the piece.
type Piece struct {
	// Box is the world-space box occupied by the piece.
	Box cube.BlockBox
	// Facing is the direction the piece faces. Pieces that are carved must have a valid facing.
	Facing cube.Direction
	// ChainLength is the distance of the piece from the first piece of its structure, counted in pieces.
	ChainLength int
}

// World converts the local position x, y, z to world space.
//
//	north: (minX + x, maxZ - z)   south: (minX + x, minZ + z)
//	west:  (maxX - z, minZ + x)   east:  (minX + z, minZ + x)
func (p Piece) World(x, y, z int) cube.Pos {
	b := p.Box
	pos := cube.Pos{b.Min[0] + x, b.Min[1] + y, b.Min[2] + z}
	switch p.Facing {
	case cube.North:
		pos[2] = b.Max[2] - z
	case cube.West:
		pos[0], pos[2] = b.Max[0]-z, b.Min[2]+x
	case cube.East:
		pos[0], pos[2] = b.Min[0]+z, b.Min[2]+x
	}
	return pos
}

// Direction converts a direction in local space to world space. Local space matches world space for pieces
// facing south.
func (p Piece) Direction(d cube.Direction) cube.Direction {
	dx, dz := d.Vector()
	switch p.Facing {
	case cube.North:
		dz = -dz
	case cube.West:
		dx, dz = -dz, dx
	case cube.East:
		dx, dz = dz, dx
	}
	return cube.DirectionOf(dx, dz)
}

// Carver returns a Carver that writes to the Region passed. Only writes that fall within both the chunk box
// and the box of the piece are made: generation runs once per chunk that a piece intersects, and a piece
// never writes outside of its own box.
func (p Piece) Carver(r world.Region, chunk cube.BlockBox) *Carver {
	clip, ok := chunk.Intersection(p.Box)
	if !ok {
		clip = Box(0, 0, 0, -1, -1, -1)
	}
	return &Carver{piece: p, region: r, chunk: chunk, clip: clip}
}

// Carver implements the carving primitives of a Piece. All positions and boxes passed to its methods are in
// the local space of the piece. Boxes are iterated with x outermost and z innermost. Methods that consume
// randomness draw a float for every position of the box in that order, whether the position ends up
// written or not. Pickers are only consulted for positions that are written, so the stream consumed by
// ChanceReplaceNonAir does depend on the chunk carved.
type Carver struct {
	piece  Piece
	region world.Region
	chunk  cube.BlockBox
	// clip is the part of the chunk box that lies within the piece.
	clip   cube.BlockBox
}

// Piece returns the Piece the Carver carves.
func (c *Carver) Piece() Piece {
	return c.piece
}

// BlockAt returns the block at the local position passed. Positions outside the chunk box or the loaded
// part of the region hold air.
func (c *Carver) BlockAt(x, y, z int) world.Block {
	pos := c.piece.World(x, y, z)
	if !c.chunk.Contains(pos) || !c.region.Loaded(pos) {
		return block.Air{}
	}
	if b := c.region.Block(pos); b != nil {
		return b
	}
	return block.Air{}
}

// PlaceBlock places b at the local position passed. Blocks implementing block.Orientable are rotated to
// world space first. Positions outside the chunk box or the box of the piece are left untouched.
func (c *Carver) PlaceBlock(x, y, z int, b world.Block) {
	pos := c.piece.World(x, y, z)
	if !c.clip.Contains(pos) {
		return
	}
	if o, ok := b.(block.Orientable); ok {
		b = o.Orient(c.piece.Direction)
	}
	c.region.SetBlock(pos, b)
}

// Fill fills every position in the box with b.
func (c *Carver) Fill(box cube.BlockBox, b world.Block) {
	box.Range(func(pos cube.Pos) {
		c.PlaceBlock(pos[0], pos[1], pos[2], b)
	})
}

// FillRandom fills every position in the box with a block picked by p.
func (c *Carver) FillRandom(r *rand.Random, box cube.BlockBox, p Picker) {
	box.Range(func(pos cube.Pos) {
		c.PlaceBlock(pos[0], pos[1], pos[2], p.Pick(r))
	})
}

// ReplaceAir places b at every position of the box that currently holds air.
func (c *Carver) ReplaceAir(box cube.BlockBox, b world.Block) {
	box.Range(func(pos cube.Pos) {
		if world.IsAir(c.BlockAt(pos[0], pos[1], pos[2])) {
			c.PlaceBlock(pos[0], pos[1], pos[2], b)
		}
	})
}

// ChanceReplaceNonAir replaces every position of the box that does not hold air with a block picked by p,
// with the chance passed. A float is drawn for every position; p is only consulted for positions that are
// replaced.
func (c *Carver) ChanceReplaceNonAir(r *rand.Random, box cube.BlockBox, chance float32, p Picker) {
	box.Range(func(pos cube.Pos) {
		if r.Float32() < chance && !world.IsAir(c.BlockAt(pos[0], pos[1], pos[2])) {
			c.PlaceBlock(pos[0], pos[1], pos[2], p.Pick(r))
		}
	})
}

// ChanceReplaceAir places b at every position of the box that holds air, with the chance passed. A float is
// drawn for every position.
func (c *Carver) ChanceReplaceAir(r *rand.Random, box cube.BlockBox, chance float32, b world.Block) {
	box.Range(func(pos cube.Pos) {
		if r.Float32() < chance && world.IsAir(c.BlockAt(pos[0], pos[1], pos[2])) {
			c.PlaceBlock(pos[0], pos[1], pos[2], b)
		}
	})
}

// Box returns a local-space box between the two corners passed. Unlike cube.NewBlockBox the corners are
// not reordered: a box whose maximum lies below its minimum on any axis is empty.
func Box(x0, y0, z0, x1, y1, z1 int) cube.BlockBox {
	return cube.BlockBox{Min: cube.Pos{x0, y0, z0}, Max: cube.Pos{x1, y1, z1}}
}
