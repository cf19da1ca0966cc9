package world

import (
	"fmt"

	"github.com/dm-vev/shaftgen/server/block/cube"
)

// ChunkPos holds the position of a chunk. The type is provided as a utility struct for keeping track of a
// chunk's position. Chunks do not themselves keep track of that. Chunk positions are different from block
// positions in the way that increasing the X/Z by one means increasing the absolute value on the X/Z axis in
// terms of blocks by 16.
type ChunkPos [2]int32

// String implements fmt.Stringer using a ChunkPos's coordinates.
func (p ChunkPos) String() string {
	return fmt.Sprintf("(%v, %v)", p[0], p[1])
}

// X returns the X coordinate of the chunk position.
func (p ChunkPos) X() int32 {
	return p[0]
}

// Z returns the Z coordinate of the chunk position.
func (p ChunkPos) Z() int32 {
	return p[1]
}

// ChunkPosOf returns the position of the chunk that holds the column at block coordinates x and z.
func ChunkPosOf(x, z int) ChunkPos {
	return ChunkPos{int32(x >> 4), int32(z >> 4)}
}

// chunkPosFromBlockPos returns the ChunkPos of the chunk that a block at a cube.Pos is in.
func chunkPosFromBlockPos(p cube.Pos) ChunkPos {
	return ChunkPosOf(p[0], p[2])
}

// ChunksIn returns the positions of all chunks that hold at least one column of the box passed, ordered
// by X and then Z.
func ChunksIn(box cube.BlockBox) []ChunkPos {
	minC, maxC := ChunkPosOf(box.Min[0], box.Min[2]), ChunkPosOf(box.Max[0], box.Max[2])
	chunks := make([]ChunkPos, 0, int(maxC[0]-minC[0]+1)*int(maxC[1]-minC[1]+1))
	for x := minC[0]; x <= maxC[0]; x++ {
		for z := minC[1]; z <= maxC[1]; z++ {
			chunks = append(chunks, ChunkPos{x, z})
		}
	}
	return chunks
}

// ChunkBox returns the box of block positions covered by the chunk at pos, spanning the full height
// range passed.
func ChunkBox(pos ChunkPos, r cube.Range) cube.BlockBox {
	x, z := int(pos[0])<<4, int(pos[1])<<4
	return cube.NewBlockBox(x, r.Min(), z, x+15, r.Max(), z+15)
}
