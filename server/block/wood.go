package block

import (
	"github.com/dm-vev/shaftgen/server/block/cube"
	"github.com/dm-vev/shaftgen/server/world"
)

// WoodType represents a type of wood of a block. Some blocks, such as log blocks, bark blocks, wooden planks and
// others carry one of these types.
type WoodType struct {
	wood
}

type wood uint8

// OakWood returns oak wood material.
func OakWood() WoodType {
	return WoodType{0}
}

// SpruceWood returns spruce wood material.
func SpruceWood() WoodType {
	return WoodType{1}
}

// BirchWood returns birch wood material.
func BirchWood() WoodType {
	return WoodType{2}
}

// JungleWood returns jungle wood material.
func JungleWood() WoodType {
	return WoodType{3}
}

// AcaciaWood returns acacia wood material.
func AcaciaWood() WoodType {
	return WoodType{4}
}

// DarkOakWood returns dark oak wood material.
func DarkOakWood() WoodType {
	return WoodType{5}
}

// String ...
func (w wood) String() string {
	switch w {
	case 0:
		return "oak"
	case 1:
		return "spruce"
	case 2:
		return "birch"
	case 3:
		return "jungle"
	case 4:
		return "acacia"
	case 5:
		return "dark_oak"
	}
	panic("unknown wood type")
}

// Planks are common blocks used in crafting recipes. They are made by crafting logs into planks.
type Planks struct {
	solid

	// Wood is the type of wood of the planks.
	Wood WoodType
}

// EncodeBlock ...
func (p Planks) EncodeBlock() (string, map[string]any) {
	return "minecraft:" + p.Wood.String() + "_planks", nil
}

// Log is a naturally occurring block found in trees, primarily used to create planks.
type Log struct {
	solid

	// Wood is the type of wood of the log.
	Wood WoodType
	// Axis is the axis which the log block faces.
	Axis cube.Axis
}

// EncodeBlock ...
func (l Log) EncodeBlock() (string, map[string]any) {
	return "minecraft:" + l.Wood.String() + "_log", map[string]any{"pillar_axis": l.Axis.String()}
}

// Orient ...
func (l Log) Orient(f DirectionMapper) world.Block {
	switch l.Axis {
	case cube.X:
		l.Axis = f(cube.East).Axis()
	case cube.Z:
		l.Axis = f(cube.South).Axis()
	}
	return l
}

// WoodFence are blocks similar to Walls, which cannot normally be jumped over.
type WoodFence struct {
	solid

	// Wood is the type of wood of the fence.
	Wood WoodType
}

// EncodeBlock ...
func (w WoodFence) EncodeBlock() (string, map[string]any) {
	return "minecraft:" + w.Wood.String() + "_fence", nil
}

// WoodSlab is a half block that allows entities to walk up blocks without jumping.
type WoodSlab struct {
	solid

	// Wood is the type of wood of the slabs.
	Wood WoodType
	// Top specifies if the slab is in the top part of the block.
	Top bool
}

// EncodeBlock ...
func (s WoodSlab) EncodeBlock() (string, map[string]any) {
	half := "bottom"
	if s.Top {
		half = "top"
	}
	return "minecraft:" + s.Wood.String() + "_slab", map[string]any{"minecraft:vertical_half": half}
}
