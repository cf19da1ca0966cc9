package mineshaft

import (
	"github.com/dm-vev/shaftgen/server/block/cube"
	"github.com/dm-vev/shaftgen/server/world"
)

// footprintRadius is the distance of the outermost columns of the shaft from its centre.
const footprintRadius = 2

// Evaluate decides from the terrain around centre whether a vertical entrance there connects to the
// surface, and returns the resulting geometry. minY is the world Y of the bottom of the piece.
//
// The ceiling of the shaft is placed 2 blocks below the lowest surface of its 5x5 footprint. Entrances
// whose footprint has no known surface height, or whose lowest surface lies below the sea level of the
// Config, have no tunnel and zero shaft geometry. Otherwise, the four directions are walked in the order
// of cube.Directions, band by band, and the first column whose surface lies at or below the tunnel floor
// becomes the opening. Evaluate consumes no randomness: its result only depends on the terrain.
func (conf Config) Evaluate(t world.TerrainSampler, centre cube.Pos, minY int) (ShaftGeometry, TunnelGeometry) {
	conf = conf.withDefaults()
	none := TunnelGeometry{Direction: cube.NoDirection}

	minHeight, valid := 0, false
	for xOff := -footprintRadius; xOff <= footprintRadius; xOff++ {
		for zOff := -footprintRadius; zOff <= footprintRadius; zOff++ {
			x, z := centre[0]+xOff, centre[2]+zOff
			h, err := t.SurfaceHeight(world.ChunkPosOf(x, z), x, z)
			if err != nil {
				conf.Log.Warn("sample shaft footprint: "+err.Error(), "x", x, "z", z)
				continue
			}
			if h <= 1 {
				continue
			}
			if !valid || h < minHeight {
				minHeight, valid = h, true
			}
		}
	}
	// The surface opening must lie above sea level.
	if !valid || minHeight < conf.SeaLevel {
		return ShaftGeometry{}, none
	}

	ceiling := minHeight - 2
	floor := ceiling - 4
	shaft := ShaftGeometry{YAxisLen: ceiling - centre[1] + 1}

	for band := 0; band < conf.Radii; band++ {
		for _, d := range cube.Directions() {
			pos := centre.Offset(d, conf.Radius*band+2)
			for i := band * conf.Radius; i < (band+1)*conf.Radius; i, pos = i+1, pos.Side(d) {
				h, err := t.SurfaceHeight(world.ChunkPosOf(pos[0], pos[2]), pos[0], pos[2])
				if err != nil {
					conf.Log.Debug("sample drop-off: "+err.Error(), "x", pos[0], "z", pos[2])
					continue
				}
				if h <= floor && h > 1 {
					return shaft, TunnelGeometry{
						HasTunnel:     true,
						Direction:     d,
						Length:        i,
						FloorAltitude: ceiling - 4 - minY,
					}
				}
			}
		}
	}
	return shaft, none
}
