package block

// Stone is a block found underground in the world or on mountains.
type Stone struct {
	solid
}

// EncodeBlock ...
func (Stone) EncodeBlock() (string, map[string]any) {
	return "minecraft:stone", nil
}

// Andesite is a type of igneous rock.
type Andesite struct {
	solid
}

// EncodeBlock ...
func (Andesite) EncodeBlock() (string, map[string]any) {
	return "minecraft:andesite", nil
}

// Cobblestone is a common block, obtained from mining stone.
type Cobblestone struct {
	solid

	// Mossy specifies if the cobblestone is mossy.
	Mossy bool
}

// EncodeBlock ...
func (c Cobblestone) EncodeBlock() (string, map[string]any) {
	if c.Mossy {
		return "minecraft:mossy_cobblestone", nil
	}
	return "minecraft:cobblestone", nil
}

// Gravel is a block affected by gravity.
type Gravel struct {
	solid
}

// EncodeBlock ...
func (Gravel) EncodeBlock() (string, map[string]any) {
	return "minecraft:gravel", nil
}

// Dirt is a block found abundantly in most biomes under a layer of grass blocks at the top of the world.
type Dirt struct {
	solid
}

// EncodeBlock ...
func (Dirt) EncodeBlock() (string, map[string]any) {
	return "minecraft:dirt", nil
}

// Mycelium is a variant of dirt found in mushroom fields.
type Mycelium struct {
	solid
}

// EncodeBlock ...
func (Mycelium) EncodeBlock() (string, map[string]any) {
	return "minecraft:mycelium", nil
}

// Sandstone is a solid block commonly found in deserts and beaches underneath sand.
type Sandstone struct {
	solid

	// Red specifies if the sandstone is red sandstone.
	Red bool
}

// EncodeBlock ...
func (s Sandstone) EncodeBlock() (string, map[string]any) {
	if s.Red {
		return "minecraft:red_sandstone", nil
	}
	return "minecraft:sandstone", nil
}

// Terracotta is a block formed from clay, found in badlands.
type Terracotta struct {
	solid
}

// EncodeBlock ...
func (Terracotta) EncodeBlock() (string, map[string]any) {
	return "minecraft:hardened_clay", nil
}

// PackedIce is an opaque solid block variant of ice.
type PackedIce struct {
	solid
}

// EncodeBlock ...
func (PackedIce) EncodeBlock() (string, map[string]any) {
	return "minecraft:packed_ice", nil
}

// Snow is a full block of snow.
type Snow struct {
	solid
}

// EncodeBlock ...
func (Snow) EncodeBlock() (string, map[string]any) {
	return "minecraft:snow", nil
}
