package structure

import (
	"fmt"

	"github.com/dm-vev/shaftgen/server/world"
	"github.com/dm-vev/shaftgen/server/world/generator/pmgen/rand"
)

// Picker picks a block to place, possibly consuming randomness to do so.
type Picker interface {
	Pick(r *rand.Random) world.Block
}

// Fixed is a Picker that always picks the same block without consuming any randomness.
type Fixed struct {
	world.Block
}

// Pick ...
func (f Fixed) Pick(*rand.Random) world.Block {
	return f.Block
}

// Selector is a Picker that picks one of several blocks, each with its own chance. If none of the blocks
// is picked, the default block of the Selector is returned. A single float is drawn per pick.
type Selector struct {
	def     world.Block
	entries []selectorEntry
	total   float32
}

type selectorEntry struct {
	b      world.Block
	chance float32
}

// NewSelector returns a Selector that picks def unless one of the blocks added later is picked.
func NewSelector(def world.Block) *Selector {
	return &Selector{def: def}
}

// Add adds a block with the chance passed to the Selector and returns the Selector. Add panics if the
// chances of all blocks added exceed 1.
func (s *Selector) Add(b world.Block, chance float32) *Selector {
	if s.total+chance > 1.0001 {
		panic(fmt.Sprintf("structure: selector chances exceed 1 adding %v with chance %v", b, chance))
	}
	s.entries = append(s.entries, selectorEntry{b: b, chance: chance})
	s.total += chance
	return s
}

// Default returns the block picked when none of the weighted blocks is.
func (s *Selector) Default() world.Block {
	return s.def
}

// Pick ...
func (s *Selector) Pick(r *rand.Random) world.Block {
	target := r.Float32()
	var bottom float32
	for _, e := range s.entries {
		if target >= bottom && target < bottom+e.chance {
			return e.b
		}
		bottom += e.chance
	}
	return s.def
}
