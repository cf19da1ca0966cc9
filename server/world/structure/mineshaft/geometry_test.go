package mineshaft

import (
	"testing"

	"github.com/dm-vev/shaftgen/server/block/cube"
)

func TestMapTunnel(t *testing.T) {
	tests := []struct {
		facing, dir cube.Direction
		want        TunnelBounds
	}{
		{cube.South, cube.South, TunnelBounds{22, 26, 26, 31, cube.North, true}},
		{cube.South, cube.North, TunnelBounds{22, 17, 26, 22, cube.South, true}},
		{cube.South, cube.West, TunnelBounds{17, 22, 22, 26, cube.East, false}},
		{cube.South, cube.East, TunnelBounds{26, 22, 31, 26, cube.West, false}},
		{cube.North, cube.South, TunnelBounds{22, 17, 26, 22, cube.South, true}},
		{cube.North, cube.North, TunnelBounds{22, 26, 26, 31, cube.North, true}},
		{cube.North, cube.West, TunnelBounds{17, 22, 22, 26, cube.West, false}},
		{cube.North, cube.East, TunnelBounds{26, 22, 31, 26, cube.East, false}},
		{cube.West, cube.South, TunnelBounds{26, 22, 31, 26, cube.West, false}},
		{cube.West, cube.North, TunnelBounds{17, 22, 22, 26, cube.East, false}},
		{cube.West, cube.West, TunnelBounds{22, 26, 26, 31, cube.North, true}},
		{cube.West, cube.East, TunnelBounds{22, 17, 26, 22, cube.South, true}},
		{cube.East, cube.South, TunnelBounds{26, 22, 31, 26, cube.East, false}},
		{cube.East, cube.North, TunnelBounds{17, 22, 22, 26, cube.West, false}},
		{cube.East, cube.West, TunnelBounds{22, 17, 26, 22, cube.South, true}},
		{cube.East, cube.East, TunnelBounds{22, 26, 26, 31, cube.North, true}},
	}
	if len(tests) != 16 {
		t.Fatalf("expected a box for every facing and direction, got %v", len(tests))
	}
	for _, tt := range tests {
		if got := MapTunnel(tt.facing, tt.dir, 5); got != tt.want {
			t.Errorf("facing %v, dir %v: expected %+v, got %+v", tt.facing, tt.dir, tt.want, got)
		}
	}
}

func TestMapTunnelLength(t *testing.T) {
	for _, facing := range cube.Directions() {
		for _, dir := range cube.Directions() {
			for _, length := range []int{0, 1, 13} {
				b := MapTunnel(facing, dir, length)
				if b.Length() != length+1 {
					t.Errorf("facing %v, dir %v: expected %v steps, got %v", facing, dir, length+1, b.Length())
				}
				if b.AlongZ != (facing.Axis() == dir.Axis()) {
					t.Errorf("facing %v, dir %v: unexpected travel axis", facing, dir)
				}
			}
		}
	}
}

// TestMouthDirection checks that the tunnel mapped to local space points in the world direction that the
// drop-off was found in, for every combination of facing and direction.
func TestMouthDirection(t *testing.T) {
	centre := cube.Pos{-5, 12, 40}
	for _, facing := range cube.Directions() {
		for _, dir := range cube.Directions() {
			e := Config{}.New(centre, facing, Normal, 0)
			e.state = StateEvaluated
			e.tunnel = TunnelGeometry{HasTunnel: true, Direction: dir, Length: 5, FloorAltitude: 10}

			mouth, ok := e.Mouth()
			if !ok {
				t.Fatalf("facing %v, dir %v: expected a mouth", facing, dir)
			}
			dx, dz := dir.Vector()
			want := centre.Add(cube.Pos{dx * 7, 11, dz * 7})
			if mouth != want {
				t.Errorf("facing %v, dir %v: expected mouth at %v, got %v", facing, dir, want, mouth)
			}
		}
	}
	if _, ok := (Config{}).New(centre, cube.North, Normal, 0).Mouth(); ok {
		t.Errorf("expected no mouth without tunnel")
	}
}
