package server

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dm-vev/shaftgen/server/block/cube"
	"github.com/dm-vev/shaftgen/server/world"
	"github.com/dm-vev/shaftgen/server/world/generator/pmgen"
	"github.com/dm-vev/shaftgen/server/world/structure/mineshaft"
	"github.com/dm-vev/shaftgen/server/world/structure/piecedb"
	"github.com/google/uuid"
)

// Config contains options for generating mineshaft entrances.
type Config struct {
	// Log is the Logger to use for logging information. If nil, Log is set to
	// slog.Default().
	Log *slog.Logger
	// Seed is the seed of the world. Together with the centre of a piece it
	// determines the random stream used to carve the piece, so that equal
	// seeds and equal terrain always produce equal blocks.
	Seed int64
	// Entrances holds the tunables of the vertical entrances generated. If
	// its Log is nil, it is set to the Log of the Config.
	Entrances mineshaft.Config
	// PieceProvider is the mineshaft.Provider used for storing and loading
	// generated pieces. If left as nil, pieces are newly placed and evaluated
	// every time and nothing is stored.
	PieceProvider mineshaft.Provider
	// ReadOnly specifies if generated pieces should not be saved to the
	// PieceProvider. Pieces may still be loaded from it.
	ReadOnly bool
}

// New creates a Server using fields of conf.
func (conf Config) New() *Server {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	if conf.PieceProvider == nil {
		conf.PieceProvider = mineshaft.NopProvider{}
	}
	id := uuid.New()
	conf.Log = conf.Log.With("run", id.String())
	if conf.Entrances.Log == nil {
		conf.Entrances.Log = conf.Log
	}
	return &Server{conf: conf, id: id}
}

// UserConfig is the user configuration for generating a mineshaft entrance.
// UserConfig may be serialised and can be converted to a Config by calling
// UserConfig.Config().
type UserConfig struct {
	World struct {
		// Seed is the seed of the world the entrance is generated in.
		Seed int64
		// SaveData controls whether generated pieces will be saved and
		// loaded. If true, the default LevelDB piece provider is used.
		SaveData bool
		// Folder is the folder that the piece database resides in.
		Folder string
	}
	Entrance struct {
		// X, Y and Z are the coordinates of the centre of the shaft floor.
		X, Y, Z int
		// Facing is the direction towards the rest of the mineshaft: one of
		// "north", "south", "west" and "east".
		Facing string
		// Variant is the mineshaft variant, such as "normal" or "mesa". If set
		// to "auto", the variant follows the biome at the entrance.
		Variant string
	}
	Terrain struct {
		// Generator is the terrain generator used: "cliff" for a plateau that
		// drops off, or "pmgen" for biome based terrain from the world seed.
		Generator string
		// BaseHeight is the surface height of the plateau the entrance is
		// generated in.
		BaseHeight int
		// DropHeight is the surface height past the drop-off.
		DropHeight int
		// DropDistance is the distance of the drop-off from the entrance,
		// measured along DropDirection.
		DropDistance float64
		// DropDirection is the direction in which the terrain drops off.
		DropDirection string
	}
	Search struct {
		// SeaLevel is the minimum surface height around the shaft for which a
		// surface tunnel is considered.
		SeaLevel int
		// Radius is the amount of steps in a single band of the search.
		Radius int
		// Radii is the amount of bands searched in every direction.
		Radii int
	}
	Decoration struct {
		// Vines specifies if vines should be hung on the walls of the shaft
		// and tunnel.
		Vines bool
		// VineChance is the chance of vines on a position next to a wall.
		VineChance float32
	}
	Output struct {
		// Journal is the path to which the blocks written are exported as
		// zstd compressed JSON lines. Leave empty to disable the export.
		Journal string
	}
}

// Config converts a UserConfig to a Config, so that it may be used for
// creating a Server. An error is returned if creating the piece provider
// failed.
func (uc UserConfig) Config(log *slog.Logger) (Config, error) {
	conf := Config{
		Log:  log,
		Seed: uc.World.Seed,
		Entrances: mineshaft.Config{
			Log:      log,
			SeaLevel: uc.Search.SeaLevel,
			Radius:   uc.Search.Radius,
			Radii:    uc.Search.Radii,
		},
	}
	if uc.Decoration.Vines {
		conf.Entrances.Decorator = mineshaft.VineDecorator{Chance: uc.Decoration.VineChance}
	}
	if uc.World.SaveData {
		prov, err := piecedb.NewProvider(uc.World.Folder)
		if err != nil {
			return conf, fmt.Errorf("create piece provider: %w", err)
		}
		conf.PieceProvider = prov
	}
	return conf, nil
}

// Placement returns the centre, facing and variant of the entrance
// configured.
func (uc UserConfig) Placement() (cube.Pos, cube.Direction, mineshaft.Variant, error) {
	centre := cube.Pos{uc.Entrance.X, uc.Entrance.Y, uc.Entrance.Z}
	facing, ok := cube.ParseDirection(strings.ToLower(strings.TrimSpace(uc.Entrance.Facing)))
	if !ok {
		return centre, cube.NoDirection, 0, fmt.Errorf("unknown entrance facing %q", uc.Entrance.Facing)
	}
	if strings.EqualFold(strings.TrimSpace(uc.Entrance.Variant), "auto") {
		return centre, facing, uc.biomeVariant(centre), nil
	}
	v, ok := mineshaft.ParseVariant(uc.Entrance.Variant)
	if !ok {
		return centre, facing, 0, fmt.Errorf("unknown mineshaft variant %q", uc.Entrance.Variant)
	}
	return centre, facing, v, nil
}

// biomeVariant returns the variant of the biome at pos. Terrain other than
// pmgen terrain has no biomes, so the normal variant is used.
func (uc UserConfig) biomeVariant(pos cube.Pos) mineshaft.Variant {
	if uc.generator() != "pmgen" {
		return mineshaft.Normal
	}
	return pmgen.New(uc.World.Seed).Biome(pos[0], pos[2]).Variant
}

func (uc UserConfig) generator() string {
	return strings.ToLower(strings.TrimSpace(uc.Terrain.Generator))
}

// Sampler returns the TerrainSampler of the terrain generator configured.
func (uc UserConfig) Sampler() (world.TerrainSampler, error) {
	switch uc.generator() {
	case "", "cliff":
		return uc.Cliff()
	case "pmgen":
		return pmgen.New(uc.World.Seed), nil
	}
	return nil, fmt.Errorf("unknown terrain generator %q", uc.Terrain.Generator)
}

// Cliff returns the terrain configured: a plateau around the entrance that
// drops off at a distance in one direction.
func (uc UserConfig) Cliff() (world.Cliff, error) {
	d, ok := cube.ParseDirection(strings.ToLower(strings.TrimSpace(uc.Terrain.DropDirection)))
	if !ok {
		return world.Cliff{}, fmt.Errorf("unknown drop direction %q", uc.Terrain.DropDirection)
	}
	return world.Cliff{
		Origin:    cube.Pos{uc.Entrance.X, uc.Entrance.Y, uc.Entrance.Z},
		Direction: d,
		Distance:  uc.Terrain.DropDistance,
		High:      uc.Terrain.BaseHeight,
		Low:       uc.Terrain.DropHeight,
	}, nil
}

// DefaultConfig returns a configuration with the default values filled out.
func DefaultConfig() UserConfig {
	c := UserConfig{}
	c.World.Seed = 0
	c.World.SaveData = true
	c.World.Folder = "pieces"
	c.Entrance.Y = 30
	c.Entrance.Facing = "north"
	c.Entrance.Variant = "normal"
	c.Terrain.Generator = "cliff"
	c.Terrain.BaseHeight = 80
	c.Terrain.DropHeight = 66
	c.Terrain.DropDistance = 12
	c.Terrain.DropDirection = "east"
	c.Search.SeaLevel = 60
	c.Search.Radius = 8
	c.Search.Radii = 3
	c.Decoration.Vines = true
	c.Decoration.VineChance = 0.25
	return c
}
