package mineshaft

import (
	"errors"
	"fmt"

	"github.com/dm-vev/shaftgen/server/block/cube"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

// ErrInvalidState is returned when decoding data that does not describe a consistent VerticalEntrance.
var ErrInvalidState = errors.New("mineshaft: invalid vertical entrance data")

// entranceData is the persisted form of a VerticalEntrance.
type entranceData struct {
	Orientation int32    `nbt:"O"`
	Box         [6]int32 `nbt:"BB"`
	ChainLength int32    `nbt:"GD"`
	Variant     int32    `nbt:"MST"`

	Centre        [3]int32 `nbt:"centerPos"`
	YAxisLen      int32    `nbt:"yAxisLen"`
	TunnelLen     int32    `nbt:"tunnelLen"`
	FloorAltitude int32    `nbt:"floorAltitude"`
	TunnelDir     int32    `nbt:"tunnelDir"`
	HasTunnel     uint8    `nbt:"hasTunnel"`
}

// MarshalNBT encodes the VerticalEntrance to little endian NBT, as stored on disk.
func (e *VerticalEntrance) MarshalNBT() ([]byte, error) {
	b := e.piece.Box
	data := entranceData{
		Orientation:   int32(e.piece.Facing.Horizontal()),
		Box:           [6]int32{int32(b.Min[0]), int32(b.Min[1]), int32(b.Min[2]), int32(b.Max[0]), int32(b.Max[1]), int32(b.Max[2])},
		ChainLength:   int32(e.piece.ChainLength),
		Variant:       int32(e.variant),
		Centre:        [3]int32{int32(e.centre[0]), int32(e.centre[1]), int32(e.centre[2])},
		YAxisLen:      int32(e.shaft.YAxisLen),
		TunnelLen:     int32(e.tunnel.Length),
		FloorAltitude: int32(e.tunnel.FloorAltitude),
		TunnelDir:     int32(e.tunnel.Direction.Horizontal()),
	}
	if e.tunnel.HasTunnel {
		data.HasTunnel = 1
	}
	raw, err := nbt.MarshalEncoding(data, nbt.LittleEndian)
	if err != nil {
		return nil, fmt.Errorf("encode vertical entrance at %v: %w", e.centre, err)
	}
	return raw, nil
}

// Decode decodes a VerticalEntrance previously encoded using VerticalEntrance.MarshalNBT. Entrances with a
// tunnel are restored in the evaluated state with their geometry frozen. Entrances without one are restored
// in the placed state, so their terrain is evaluated again when generated.
func (conf Config) Decode(raw []byte) (*VerticalEntrance, error) {
	var data entranceData
	if err := nbt.UnmarshalEncoding(raw, &data, nbt.LittleEndian); err != nil {
		return nil, fmt.Errorf("decode vertical entrance: %w", err)
	}
	bb := data.Box
	box := cube.BlockBox{
		Min: cube.Pos{int(bb[0]), int(bb[1]), int(bb[2])},
		Max: cube.Pos{int(bb[3]), int(bb[4]), int(bb[5])},
	}
	if box.Min[0] > box.Max[0] || box.Min[1] > box.Max[1] || box.Min[2] > box.Max[2] {
		return nil, fmt.Errorf("%w: bounding box %v", ErrInvalidState, box)
	}
	dir := cube.DirectionFromHorizontal(int(data.TunnelDir))
	if data.HasTunnel != 0 && !dir.Valid() {
		return nil, fmt.Errorf("%w: tunnel without direction", ErrInvalidState)
	}

	centre := cube.Pos{int(data.Centre[0]), int(data.Centre[1]), int(data.Centre[2])}
	e := conf.New(centre, cube.DirectionFromHorizontal(int(data.Orientation)), Variant(data.Variant), int(data.ChainLength))
	e.piece.Box = box
	e.shaft = ShaftGeometry{YAxisLen: int(data.YAxisLen)}
	e.tunnel = TunnelGeometry{
		HasTunnel:     data.HasTunnel != 0,
		Direction:     dir,
		Length:        int(data.TunnelLen),
		FloorAltitude: int(data.FloorAltitude),
	}
	if e.tunnel.HasTunnel {
		e.state = StateEvaluated
	}
	return e, nil
}
