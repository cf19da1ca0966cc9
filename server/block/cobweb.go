package block

// Cobweb is a block that slows down entities moving through it. It is not made of solid material.
type Cobweb struct{}

// EncodeBlock ...
func (Cobweb) EncodeBlock() (string, map[string]any) {
	return "minecraft:web", nil
}
