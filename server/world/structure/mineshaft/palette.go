package mineshaft

import (
	"github.com/dm-vev/shaftgen/server/block"
	"github.com/dm-vev/shaftgen/server/block/cube"
	"github.com/dm-vev/shaftgen/server/world"
	"github.com/dm-vev/shaftgen/server/world/structure"
)

// Palette holds the blocks a mineshaft of a specific Variant is built from.
type Palette struct {
	// Main is the block used for floors and beams.
	Main world.Block
	// Selector picks the blocks that texture solid walls.
	Selector *structure.Selector
	// Support is the block used for support posts.
	Support world.Block
	// DoorwayWall and DoorwaySlab frame the doorway of the shaft.
	DoorwayWall, DoorwaySlab world.Block
	// MyceliumFloor specifies if floors are partially overgrown with mycelium.
	MyceliumFloor bool
}

var palettes = map[Variant]Palette{
	Normal: woodPalette(block.OakWood(), structure.NewSelector(block.Planks{Wood: block.OakWood()}).
		Add(block.Cobblestone{}, 0.2).
		Add(block.Cobblestone{Mossy: true}, 0.1).
		Add(block.Andesite{}, 0.1)),
	Mesa: woodPalette(block.DarkOakWood(), structure.NewSelector(block.Terracotta{}).
		Add(block.Sandstone{Red: true}, 0.3).
		Add(block.Planks{Wood: block.DarkOakWood()}, 0.2)),
	Jungle: woodPalette(block.JungleWood(), structure.NewSelector(block.Planks{Wood: block.JungleWood()}).
		Add(block.Cobblestone{Mossy: true}, 0.3).
		Add(block.Log{Wood: block.JungleWood(), Axis: cube.Y}, 0.1)),
	Snow: woodPalette(block.SpruceWood(), structure.NewSelector(block.Planks{Wood: block.SpruceWood()}).
		Add(block.Snow{}, 0.3).
		Add(block.Stone{}, 0.1)),
	Ice: woodPalette(block.SpruceWood(), structure.NewSelector(block.PackedIce{}).
		Add(block.Snow{}, 0.2).
		Add(block.Planks{Wood: block.SpruceWood()}, 0.1)),
	Desert: sandstonePalette(false, block.BirchWood()),
	RedDesert: sandstonePalette(true, block.DarkOakWood()),
	Savanna: woodPalette(block.AcaciaWood(), structure.NewSelector(block.Planks{Wood: block.AcaciaWood()}).
		Add(block.Cobblestone{}, 0.2).
		Add(block.Dirt{}, 0.1)),
	Mushroom: mushroomPalette(),
}

// PaletteOf returns the Palette of the Variant passed. Unknown variants use the Normal palette.
func PaletteOf(v Variant) Palette {
	if p, ok := palettes[v]; ok {
		return p
	}
	return palettes[Normal]
}

func woodPalette(w block.WoodType, sel *structure.Selector) Palette {
	return Palette{
		Main:        block.Planks{Wood: w},
		Selector:    sel,
		Support:     block.WoodFence{Wood: w},
		DoorwayWall: block.Log{Wood: w, Axis: cube.Y},
		DoorwaySlab: block.WoodSlab{Wood: w},
	}
}

func sandstonePalette(red bool, w block.WoodType) Palette {
	stone := block.Sandstone{Red: red}
	return Palette{
		Main:        stone,
		Selector:    structure.NewSelector(stone).Add(block.Planks{Wood: w}, 0.2).Add(block.Gravel{}, 0.1),
		Support:     block.WoodFence{Wood: w},
		DoorwayWall: stone,
		DoorwaySlab: block.WoodSlab{Wood: w},
	}
}

func mushroomPalette() Palette {
	p := woodPalette(block.OakWood(), structure.NewSelector(block.Dirt{}).
		Add(block.Cobblestone{}, 0.2).
		Add(block.Mycelium{}, 0.2))
	p.MyceliumFloor = true
	return p
}
