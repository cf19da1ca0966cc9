package world

import (
	"github.com/brentp/intintmap"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/dm-vev/shaftgen/server/block/cube"
)

// Heightmap is a TerrainSampler holding a surface height per column. Columns without an explicit height
// have the default height of the Heightmap. A Heightmap may be restricted to a set of chunks, in which
// case sampling outside of them fails with ErrChunkNotLoaded.
type Heightmap struct {
	def     int
	heights *intintmap.Map
	loaded  map[ChunkPos]struct{}
}

// NewHeightmap returns a Heightmap in which every column has the height passed.
func NewHeightmap(def int) *Heightmap {
	return &Heightmap{def: def, heights: intintmap.New(256, 0.6)}
}

// Set sets the surface height of the column at x, z.
func (h *Heightmap) Set(x, z, height int) {
	h.heights.Put(columnKey(x, z), int64(height))
}

// Restrict limits the chunks that may be sampled to those passed. Calling Restrict again adds more
// chunks.
func (h *Heightmap) Restrict(chunks ...ChunkPos) {
	if h.loaded == nil {
		h.loaded = make(map[ChunkPos]struct{}, len(chunks))
	}
	for _, pos := range chunks {
		h.loaded[pos] = struct{}{}
	}
}

// SurfaceHeight ...
func (h *Heightmap) SurfaceHeight(chunk ChunkPos, x, z int) (int, error) {
	if ChunkPosOf(x, z) != chunk {
		return 0, ErrChunkNotLoaded
	}
	if h.loaded != nil {
		if _, ok := h.loaded[chunk]; !ok {
			return 0, ErrChunkNotLoaded
		}
	}
	if v, ok := h.heights.Get(columnKey(x, z)); ok {
		return int(v), nil
	}
	return h.def, nil
}

// Snapshot samples every column of the chunks passed from t and returns a Heightmap restricted to those
// chunks, so that terrain is only known where a region is loaded. Columns that fail to sample have an
// unknown height.
func Snapshot(t TerrainSampler, chunks ...ChunkPos) *Heightmap {
	h := NewHeightmap(0)
	h.Restrict(chunks...)
	for _, pos := range chunks {
		box := ChunkBox(pos, cube.Range{0, 0})
		for x := box.Min[0]; x <= box.Max[0]; x++ {
			for z := box.Min[2]; z <= box.Max[2]; z++ {
				if height, err := t.SurfaceHeight(pos, x, z); err == nil {
					h.Set(x, z, height)
				}
			}
		}
	}
	return h
}

// columnKey packs the column coordinates into a single map key.
func columnKey(x, z int) int64 {
	return int64(x)<<32 | int64(uint32(int32(z)))
}

// Cliff is a TerrainSampler of a plateau that drops off to a lower height. Columns that lie at least
// Distance blocks away from Origin in Direction have the Low height, all others the High height.
type Cliff struct {
	Origin    cube.Pos
	Direction cube.Direction
	Distance  float64
	High, Low int
}

// SurfaceHeight ...
func (c Cliff) SurfaceHeight(chunk ChunkPos, x, z int) (int, error) {
	if ChunkPosOf(x, z) != chunk {
		return 0, ErrChunkNotLoaded
	}
	dx, dz := c.Direction.Vector()
	rel := mgl64.Vec2{float64(x - c.Origin[0]), float64(z - c.Origin[2])}
	if rel.Dot(mgl64.Vec2{float64(dx), float64(dz)}) >= c.Distance {
		return c.Low, nil
	}
	return c.High, nil
}
