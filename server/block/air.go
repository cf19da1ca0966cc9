package block

// Air is the block present in otherwise empty space.
type Air struct{}

// Air ...
func (Air) Air() bool {
	return true
}

// EncodeBlock ...
func (Air) EncodeBlock() (string, map[string]any) {
	return "minecraft:air", nil
}

// Water is a still water source block.
type Water struct{}

// EncodeBlock ...
func (Water) EncodeBlock() (string, map[string]any) {
	return "minecraft:water", map[string]any{"liquid_depth": int32(0)}
}
