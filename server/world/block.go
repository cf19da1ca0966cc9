package world

// Block is a block that may be placed or found in a world. Block values are comparable: two blocks
// are the same state if they compare equal with ==.
type Block interface {
	// EncodeBlock encodes the block to a string ID such as 'minecraft:grass' and properties associated
	// with the block.
	EncodeBlock() (string, map[string]any)
}

// SolidMaterial is implemented by blocks that are made of solid material. Blocks that do not implement
// it, such as air, liquids and decorations like rails or ladders, are never solid.
type SolidMaterial interface {
	Block
	// SolidMaterial reports if the block is made of solid material.
	SolidMaterial() bool
}

// Solid checks if the block passed is made of solid material. A nil block is treated as air.
func Solid(b Block) bool {
	s, ok := b.(SolidMaterial)
	return ok && s.SolidMaterial()
}

// Air is implemented by blocks that represent the absence of a block.
type Air interface {
	Block
	// Air is a marker method that always returns true.
	Air() bool
}

// IsAir checks if the block passed is air. A nil block is treated as air.
func IsAir(b Block) bool {
	if b == nil {
		return true
	}
	a, ok := b.(Air)
	return ok && a.Air()
}
