// Package mineshaft implements the vertical entrance of a mineshaft: a ladder shaft rising from the
// underground structure that connects to the surface through a tunnel into a nearby cliff face or
// hillside drop-off. Whether the tunnel exists, and its direction and length, are only decided when the
// piece is generated, from the surface heights of the surrounding terrain.
package mineshaft

import (
	"errors"
	"log/slog"

	"github.com/dm-vev/shaftgen/server/block/cube"
	"github.com/dm-vev/shaftgen/server/world"
	"github.com/dm-vev/shaftgen/server/world/generator/pmgen/rand"
	"github.com/dm-vev/shaftgen/server/world/structure"
)

// ErrNoFacing is the panic value of Generate when a piece with a tunnel is carved without a facing.
var ErrNoFacing = errors.New("mineshaft: vertical entrance carved without facing")

const (
	// shaftStart and shaftEnd are the local X and Z bounds of the 5x5 shaft column.
	shaftStart, shaftEnd = 22, 26
	// halfWidth is the distance from the centre of the piece to the edges of its box.
	halfWidth = 24
	// maxY is the top of the box of every vertical entrance.
	maxY = 256
)

// State is the stage of the lifecycle of a VerticalEntrance.
type State uint8

const (
	// StatePlaced is the state of a newly placed piece. Its geometry is not known yet.
	StatePlaced State = iota
	// StateEvaluated is the state of a piece whose surroundings have been evaluated. Its geometry is final.
	StateEvaluated
	// StateCarved is the state of a piece that has been carved into at least one chunk.
	StateCarved
)

// String ...
func (s State) String() string {
	switch s {
	case StatePlaced:
		return "placed"
	case StateEvaluated:
		return "evaluated"
	case StateCarved:
		return "carved"
	}
	return "unknown"
}

// ShaftGeometry is the vertical extent of the shaft of a VerticalEntrance.
type ShaftGeometry struct {
	// YAxisLen is the height of the shaft from its floor to its carved ceiling.
	YAxisLen int
}

// LocalYEnd returns the local Y of the top layer of the shaft.
func (s ShaftGeometry) LocalYEnd() int {
	return s.YAxisLen - 1
}

// TunnelGeometry is the geometry of the surface tunnel of a VerticalEntrance.
type TunnelGeometry struct {
	// HasTunnel is true if a surface opening was found. Once true, the geometry never changes.
	HasTunnel bool
	// Direction is the world direction from the shaft towards the opening, or cube.NoDirection.
	Direction cube.Direction
	// Length is the distance of the opening from the shaft in steps.
	Length int
	// FloorAltitude is the local Y of the tunnel floor.
	FloorAltitude int
}

// Config holds the tunables of vertical entrances. The zero value is usable.
type Config struct {
	// Log is the Logger to use for logging. If nil, Log is set to slog.Default().
	Log *slog.Logger
	// SeaLevel is the minimum surface height around the shaft for which a surface tunnel is considered.
	// If 0, 60 is used.
	SeaLevel int
	// Radius is the amount of steps that make up one band of the directional search. If 0, 8 is used.
	Radius int
	// Radii is the amount of bands searched in every direction. If 0, 3 is used.
	Radii int
	// Decorator decorates the carved shaft and tunnel. If nil, no decorations are added.
	Decorator Decorator
}

func (conf Config) withDefaults() Config {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	if conf.SeaLevel == 0 {
		conf.SeaLevel = 60
	}
	if conf.Radius <= 0 {
		conf.Radius = 8
	}
	if conf.Radii <= 0 {
		conf.Radii = 3
	}
	if conf.Decorator == nil {
		conf.Decorator = NopDecorator{}
	}
	return conf
}

// New places a VerticalEntrance with its shaft centred on the position passed. Unlike most pieces, the
// position is the centre of the piece rather than its corner. facing is the direction towards the rest of
// the mineshaft.
func (conf Config) New(centre cube.Pos, facing cube.Direction, v Variant, chainLength int) *VerticalEntrance {
	return &VerticalEntrance{
		conf: conf.withDefaults(),
		piece: structure.Piece{
			Box:         initialBox(centre),
			Facing:      facing,
			ChainLength: chainLength,
		},
		variant: v,
		centre:  centre,
		tunnel:  TunnelGeometry{Direction: cube.NoDirection},
	}
}

// initialBox returns the box of a piece centred on the position passed: 48 blocks wide, reaching from the
// shaft floor to the top of the world.
func initialBox(centre cube.Pos) cube.BlockBox {
	return cube.BlockBox{
		Min: cube.Pos{centre[0] - halfWidth, centre[1], centre[2] - halfWidth},
		Max: cube.Pos{centre[0] + halfWidth, maxY, centre[2] + halfWidth},
	}
}

// VerticalEntrance is a mineshaft piece connecting the underground structure to the surface. A
// VerticalEntrance moves through the states placed, evaluated and carved. Its geometry may only change when
// it moves from placed to evaluated. A VerticalEntrance is not safe for concurrent use.
type VerticalEntrance struct {
	conf    Config
	piece   structure.Piece
	variant Variant
	centre  cube.Pos

	state  State
	shaft  ShaftGeometry
	tunnel TunnelGeometry
}

// Centre returns the position of the centre of the shaft floor.
func (e *VerticalEntrance) Centre() cube.Pos {
	return e.centre
}

// Facing returns the direction the piece faces, towards the rest of the mineshaft.
func (e *VerticalEntrance) Facing() cube.Direction {
	return e.piece.Facing
}

// Variant returns the mineshaft variant of the piece.
func (e *VerticalEntrance) Variant() Variant {
	return e.variant
}

// Piece returns the placement of the piece.
func (e *VerticalEntrance) Piece() structure.Piece {
	return e.piece
}

// State returns the current lifecycle state of the piece.
func (e *VerticalEntrance) State() State {
	return e.state
}

// Shaft returns the shaft geometry. It is zero until the piece has been evaluated.
func (e *VerticalEntrance) Shaft() ShaftGeometry {
	return e.shaft
}

// Tunnel returns the tunnel geometry. HasTunnel is false until an opening has been found.
func (e *VerticalEntrance) Tunnel() TunnelGeometry {
	return e.tunnel
}

// Evaluate evaluates the terrain around the piece if it has not been evaluated yet, moving it to the
// evaluated state. It reports if the piece has a surface tunnel.
func (e *VerticalEntrance) Evaluate(t world.TerrainSampler) bool {
	if e.state == StatePlaced {
		e.shaft, e.tunnel = e.conf.Evaluate(t, e.centre, e.piece.Box.Min[1])
		e.state = StateEvaluated
		if e.tunnel.HasTunnel {
			e.conf.Log.Debug("found surface opening", "centre", e.centre, "direction", e.tunnel.Direction, "length", e.tunnel.Length, "floor", e.tunnel.FloorAltitude)
		}
	}
	return e.tunnel.HasTunnel
}

// Generate evaluates the piece if needed and carves the part of it that lies in the chunk box passed into
// the Region. Generate returns false, without writing anything, if the piece has no surface tunnel. The
// Random passed is consumed in a fixed order, so equal terrain and equal seeds produce equal blocks.
// Generate panics with ErrNoFacing if a piece with a tunnel has no facing.
func (e *VerticalEntrance) Generate(t world.TerrainSampler, region world.Region, r *rand.Random, chunk cube.BlockBox) bool {
	if !e.Evaluate(t) {
		return false
	}
	if !e.piece.Facing.Valid() {
		panic(ErrNoFacing)
	}
	c := e.piece.Carver(region, chunk)
	pal := PaletteOf(e.variant)

	e.carveShaft(c, r, pal)
	e.carveTunnel(c, r, pal)
	e.state = StateCarved
	return true
}

// Opening returns the position and direction at which the rest of the mineshaft continues from the shaft.
// It returns false if the piece has no facing.
func (e *VerticalEntrance) Opening() (cube.Pos, cube.Direction, bool) {
	c, d := e.centre, e.piece.Facing
	switch d {
	case cube.North:
		return cube.Pos{c[0] - 4, c[1], c[2] - 3}, d, true
	case cube.South:
		return cube.Pos{c[0] + 4, c[1], c[2] + 3}, d, true
	case cube.West:
		return cube.Pos{c[0] - 3, c[1], c[2] + 4}, d, true
	case cube.East:
		return cube.Pos{c[0] + 3, c[1], c[2] - 4}, d, true
	}
	return cube.Pos{}, cube.NoDirection, false
}

// Mouth returns the world position of the far end of the surface tunnel, one block above its floor. It
// returns false if the piece has no tunnel.
func (e *VerticalEntrance) Mouth() (cube.Pos, bool) {
	if !e.tunnel.HasTunnel || !e.piece.Facing.Valid() {
		return cube.Pos{}, false
	}
	b := MapTunnel(e.piece.Facing, e.tunnel.Direction, e.tunnel.Length)
	x, z := (shaftStart+shaftEnd)/2, (shaftStart+shaftEnd)/2
	switch {
	case b.AlongZ && b.StartZ == shaftEnd:
		z = b.EndZ
	case b.AlongZ:
		z = b.StartZ
	case b.StartX == shaftEnd:
		x = b.EndX
	default:
		x = b.StartX
	}
	return e.piece.World(x, e.tunnel.FloorAltitude+1, z), true
}
