package block

import (
	"testing"

	"github.com/dm-vev/shaftgen/server/block/cube"
	"github.com/dm-vev/shaftgen/server/world"
)

func TestOrient(t *testing.T) {
	right := DirectionMapper(func(d cube.Direction) cube.Direction {
		dx, dz := d.Vector()
		return cube.DirectionOf(-dz, dx)
	})
	tests := []struct {
		b, want world.Block
	}{
		{Ladder{Facing: cube.North}, Ladder{Facing: cube.East}},
		{Rail{Axis: cube.Z}, Rail{Axis: cube.X}},
		{Rail{Axis: cube.X}, Rail{Axis: cube.Z}},
		{Log{Wood: OakWood(), Axis: cube.Y}, Log{Wood: OakWood(), Axis: cube.Y}},
		{Log{Wood: OakWood(), Axis: cube.X}, Log{Wood: OakWood(), Axis: cube.Z}},
		{Vines{NorthDirection: true, WestDirection: true}, Vines{EastDirection: true, NorthDirection: true}},
	}
	for _, tt := range tests {
		if got := tt.b.(Orientable).Orient(right); got != tt.want {
			t.Errorf("%#v: expected %#v, got %#v", tt.b, tt.want, got)
		}
	}
}

func TestEncodeBlock(t *testing.T) {
	tests := []struct {
		b     world.Block
		name  string
		key   string
		value any
	}{
		{Ladder{Facing: cube.West}, "minecraft:ladder", "facing_direction", int32(4)},
		{Rail{Axis: cube.X}, "minecraft:rail", "rail_direction", int32(1)},
		{Vines{SouthDirection: true, EastDirection: true}, "minecraft:vine", "vine_direction_bits", int32(9)},
	}
	for _, tt := range tests {
		name, props := tt.b.EncodeBlock()
		if name != tt.name || props[tt.key] != tt.value {
			t.Errorf("%#v: expected %v with %v=%v, got %v %v", tt.b, tt.name, tt.key, tt.value, name, props)
		}
	}
}

func TestSolid(t *testing.T) {
	for _, b := range []world.Block{Stone{}, Planks{Wood: SpruceWood()}, WoodFence{Wood: OakWood()}, Sandstone{Red: true}} {
		if !world.Solid(b) {
			t.Errorf("expected %#v to be solid", b)
		}
	}
	for _, b := range []world.Block{Air{}, Cobweb{}, Vines{}, Ladder{}, Rail{}, nil} {
		if world.Solid(b) {
			t.Errorf("expected %#v not to be solid", b)
		}
	}
	if !world.IsAir(Air{}) || !world.IsAir(nil) || world.IsAir(Water{}) {
		t.Errorf("unexpected air classification")
	}
}
