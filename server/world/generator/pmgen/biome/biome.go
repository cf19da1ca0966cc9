// Package biome holds the biomes of pm-gen terrain. Biomes determine the elevation of the terrain and the
// variant of mineshafts generated in them.
package biome

import "github.com/dm-vev/shaftgen/server/world/structure/mineshaft"

// Biome is a biome of pm-gen terrain.
type Biome struct {
	// ID is the pm-gen ID of the biome.
	ID uint8
	// Name is the name of the biome, such as "ice_plains".
	Name string
	// MinElevation and MaxElevation are the lowest and highest surface height of the biome.
	MinElevation, MaxElevation int
	// Temperature and Rainfall are the climate of the biome. Land biomes are selected by the climate of an
	// area of the terrain.
	Temperature, Rainfall float64
	// Variant is the variant of mineshafts generated in the biome.
	Variant mineshaft.Variant
}

// Elevation returns the lowest and highest surface height of the biome.
func (b Biome) Elevation() (min, max int) {
	return b.MinElevation, b.MaxElevation
}

// String ...
func (b Biome) String() string {
	return b.Name
}

// IDs of the biomes, as used by pm-gen.
const (
	IDOcean          uint8 = 0
	IDPlains         uint8 = 1
	IDDesert         uint8 = 2
	IDMountains      uint8 = 3
	IDForest         uint8 = 4
	IDTaiga          uint8 = 5
	IDSwamp          uint8 = 6
	IDRiver          uint8 = 7
	IDIcePlains      uint8 = 12
	IDSmallMountains uint8 = 20
	IDBirchForest    uint8 = 27
)

var (
	// Ocean is a biome of deep water. Its surface lies below sea level, so vertical entrances in it never
	// get a surface tunnel.
	Ocean = Biome{ID: IDOcean, Name: "ocean", MinElevation: 46, MaxElevation: 58, Temperature: 0.5, Rainfall: 0.5, Variant: mineshaft.Normal}
	// River is a narrow biome of shallow water.
	River = Biome{ID: IDRiver, Name: "river", MinElevation: 58, MaxElevation: 62, Temperature: 0.5, Rainfall: 0.7, Variant: mineshaft.Normal}

	Plains         = Biome{ID: IDPlains, Name: "plains", MinElevation: 63, MaxElevation: 68, Temperature: 0.8, Rainfall: 0.4, Variant: mineshaft.Normal}
	Desert         = Biome{ID: IDDesert, Name: "desert", MinElevation: 63, MaxElevation: 74, Temperature: 2.0, Rainfall: 0.0, Variant: mineshaft.Desert}
	Mountains      = Biome{ID: IDMountains, Name: "mountains", MinElevation: 63, MaxElevation: 127, Temperature: 0.4, Rainfall: 0.5, Variant: mineshaft.Normal}
	SmallMountains = Biome{ID: IDSmallMountains, Name: "small_mountains", MinElevation: 63, MaxElevation: 97, Temperature: 0.4, Rainfall: 0.5, Variant: mineshaft.Normal}
	Forest         = Biome{ID: IDForest, Name: "forest", MinElevation: 63, MaxElevation: 81, Temperature: 0.7, Rainfall: 0.8, Variant: mineshaft.Normal}
	BirchForest    = Biome{ID: IDBirchForest, Name: "birch_forest", MinElevation: 60, MaxElevation: 70, Temperature: 0.6, Rainfall: 0.6, Variant: mineshaft.Normal}
	Taiga          = Biome{ID: IDTaiga, Name: "taiga", MinElevation: 63, MaxElevation: 81, Temperature: 0.05, Rainfall: 0.8, Variant: mineshaft.Snow}
	// IcePlains is a flat frozen biome. Mineshafts in it are built of packed ice.
	IcePlains = Biome{ID: IDIcePlains, Name: "ice_plains", MinElevation: 63, MaxElevation: 74, Temperature: 0.05, Rainfall: 0.8, Variant: mineshaft.Ice}
	// Swamp is a wet, flat biome just above sea level. Mineshafts in it are overgrown like jungle ones.
	Swamp = Biome{ID: IDSwamp, Name: "swamp", MinElevation: 62, MaxElevation: 63, Temperature: 0.8, Rainfall: 0.9, Variant: mineshaft.Jungle}
)

// Biomes returns all land biomes that may be selected by climate. Oceans and rivers are placed by
// chance rather than climate and are not included.
func Biomes() []Biome {
	return []Biome{Plains, Desert, Mountains, SmallMountains, Forest, Taiga, Swamp, IcePlains, BirchForest}
}

// Closest returns the land biomes with the climate closest to the temperature and rainfall passed. More
// than one biome is returned if several share that climate.
func Closest(temperature, rainfall float64) []Biome {
	var (
		closest []Biome
		dist    float64
	)
	for _, b := range Biomes() {
		dt, dr := b.Temperature-temperature, b.Rainfall-rainfall
		switch d := dt*dt + dr*dr; {
		case closest == nil || d < dist:
			closest, dist = []Biome{b}, d
		case d == dist:
			closest = append(closest, b)
		}
	}
	return closest
}
