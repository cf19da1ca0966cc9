// Package pmgen implements terrain in the style of the pm-gen generator. Only the surface of the terrain is
// produced: vertical entrances need nothing more than the surface height of a column to find drop-offs.
package pmgen

import (
	"math"

	"github.com/dm-vev/shaftgen/server/world"
	"github.com/dm-vev/shaftgen/server/world/generator/pmgen/biome"
	"github.com/dm-vev/shaftgen/server/world/generator/pmgen/rand"
)

// SmoothSize is the distance in blocks over which the elevation of neighbouring biomes is blended.
const SmoothSize = 2

// cellShift is the base 2 logarithm of the width of the square cells that share a biome.
const cellShift = 6

var gaussianKernel = [5][5]float64{
	{
		1.4715177646858,
		2.141045714076,
		2.4261226388505,
		2.141045714076,
		1.4715177646858,
	},
	{
		2.141045714076,
		3.1152031322856,
		3.5299876103384,
		3.1152031322856,
		2.141045714076,
	},
	{
		2.4261226388505,
		3.5299876103384,
		4,
		3.5299876103384,
		2.4261226388505,
	},
	{
		2.141045714076,
		3.1152031322856,
		3.5299876103384,
		3.1152031322856,
		2.141045714076,
	},
	{
		1.4715177646858,
		2.141045714076,
		2.4261226388505,
		2.141045714076,
		1.4715177646858,
	},
}

// Terrain is a world.TerrainSampler producing pm-gen style terrain. Biomes are laid out in square cells,
// and the surface of every column lies halfway between the lowest and highest elevation of the biomes
// around it, smoothed with a gaussian kernel. Neighbouring biomes of very different elevation, such as
// mountains next to plains, form steep drop-offs. Terrain is safe for concurrent use.
type Terrain struct {
	seed int64
}

// New creates pm-gen terrain using the seed passed.
func New(seed int64) *Terrain {
	return &Terrain{seed: seed}
}

// SurfaceHeight ...
func (t *Terrain) SurfaceHeight(chunk world.ChunkPos, x, z int) (int, error) {
	if world.ChunkPosOf(x, z) != chunk {
		return 0, world.ErrChunkNotLoaded
	}
	var minSum, maxSum, weightSum float64
	for sx := -SmoothSize; sx <= SmoothSize; sx++ {
		for sz := -SmoothSize; sz <= SmoothSize; sz++ {
			weight := gaussianKernel[sx+SmoothSize][sz+SmoothSize]

			lo, hi := t.Biome(x+sx, z+sz).Elevation()
			minSum += float64(lo-1) * weight
			maxSum += float64(hi) * weight
			weightSum += weight
		}
	}
	minSum /= weightSum
	maxSum /= weightSum

	smoothHeight := (maxSum - minSum) / 2
	return int(math.Round(minSum + smoothHeight)), nil
}

// Biome returns the biome of the column at x, z. The borders between cells are jittered by a block so
// that they do not form straight lines.
func (t *Terrain) Biome(x, z int) biome.Biome {
	hash := int64(x)*2345803 ^ int64(z)*9236449 ^ t.seed
	hash *= hash + 223
	xNoise := hash >> 20 & 3
	zNoise := hash >> 22 & 3
	if xNoise == 3 {
		xNoise = 1
	}
	if zNoise == 3 {
		zNoise = 1
	}
	return t.cellBiome((x+int(xNoise)-1)>>cellShift, (z+int(zNoise)-1)>>cellShift)
}

// cellBiome returns the biome of the cell at cx, cz. Most cells get the land biome matching a random
// climate. The rest are oceans and rivers.
func (t *Terrain) cellBiome(cx, cz int) biome.Biome {
	r := rand.NewRandom(t.seed ^ int64(cx)*341873128712 ^ int64(cz)*132897987541)
	switch r.Int31n(10) {
	case 0:
		return biome.Ocean
	case 1:
		return biome.River
	}
	closest := biome.Closest(r.Float64()*2, r.Float64())
	return closest[r.Int31n(int32(len(closest)))]
}
