package world

import (
	"errors"

	"github.com/dm-vev/shaftgen/server/block/cube"
)

// ErrChunkNotLoaded is returned when terrain is sampled in a chunk that is not currently available.
var ErrChunkNotLoaded = errors.New("chunk not loaded")

// Region is a part of a world that blocks may be read from and written to. Only a bounded neighbourhood
// of chunks is available at any time: writes to positions outside of it are silently dropped rather than
// deferred, so that generation never corrupts chunks that have not been loaded yet.
type Region interface {
	// Loaded reports if the position passed is currently available for reading and writing.
	Loaded(pos cube.Pos) bool
	// Block returns the block at the position passed. The block returned for positions that are not
	// loaded is unspecified.
	Block(pos cube.Pos) Block
	// SetBlock sets the block at the position passed. Writes to positions that are not loaded are dropped.
	SetBlock(pos cube.Pos, b Block)
}

// TerrainSampler provides the surface height of columns of a world.
type TerrainSampler interface {
	// SurfaceHeight returns the height of the surface at block column x, z in the chunk passed: the Y of the
	// first non-ground block of the column. Heights of 1 or lower mean the height is unknown. If the chunk
	// is not loaded, ErrChunkNotLoaded is returned.
	SurfaceHeight(chunk ChunkPos, x, z int) (int, error)
}

// Ground returns a function that produces the blocks of the terrain sampled by t: ground below the
// surface height of a column and air above it. Columns that cannot be sampled are air.
func Ground(t TerrainSampler, ground, air Block) func(pos cube.Pos) Block {
	return func(pos cube.Pos) Block {
		h, err := t.SurfaceHeight(chunkPosFromBlockPos(pos), pos[0], pos[2])
		if err != nil || pos[1] >= h {
			return air
		}
		return ground
	}
}
