package world

import (
	"github.com/dm-vev/shaftgen/server/block/cube"
)

// Buffer is an in-memory Region holding a fixed set of loaded chunks. Blocks that were never written are
// produced by the base function of the Buffer. Every accepted write is recorded in the Journal of the
// Buffer.
type Buffer struct {
	ra      cube.Range
	base    func(pos cube.Pos) Block
	loaded  map[ChunkPos]struct{}
	blocks  map[cube.Pos]Block
	journal *Journal
}

// NewBuffer creates a Buffer with the height range passed. base produces the blocks of positions that were
// not written to and may be nil, in which case those positions hold nil blocks, which are treated as air.
// The chunks passed are loaded immediately.
func NewBuffer(ra cube.Range, base func(pos cube.Pos) Block, chunks ...ChunkPos) *Buffer {
	b := &Buffer{
		ra:      ra,
		base:    base,
		loaded:  make(map[ChunkPos]struct{}, len(chunks)),
		blocks:  make(map[cube.Pos]Block),
		journal: &Journal{},
	}
	b.Load(chunks...)
	return b
}

// Load makes the chunks passed available for reading and writing.
func (b *Buffer) Load(chunks ...ChunkPos) {
	for _, pos := range chunks {
		b.loaded[pos] = struct{}{}
	}
}

// Range returns the height range of the Buffer.
func (b *Buffer) Range() cube.Range {
	return b.ra
}

// Loaded ...
func (b *Buffer) Loaded(pos cube.Pos) bool {
	if pos[1] < b.ra[0] || pos[1] > b.ra[1] {
		return false
	}
	_, ok := b.loaded[chunkPosFromBlockPos(pos)]
	return ok
}

// Block ...
func (b *Buffer) Block(pos cube.Pos) Block {
	if bl, ok := b.blocks[pos]; ok {
		return bl
	}
	if b.base == nil {
		return nil
	}
	return b.base(pos)
}

// SetBlock ...
func (b *Buffer) SetBlock(pos cube.Pos, bl Block) {
	if !b.Loaded(pos) {
		return
	}
	b.blocks[pos] = bl
	b.journal.Add(pos, bl)
}

// Journal returns the Journal recording all writes accepted by the Buffer.
func (b *Buffer) Journal() *Journal {
	return b.journal
}
