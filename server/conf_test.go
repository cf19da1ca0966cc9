package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dm-vev/shaftgen/server/block/cube"
	"github.com/dm-vev/shaftgen/server/world"
	"github.com/dm-vev/shaftgen/server/world/generator/pmgen"
	"github.com/dm-vev/shaftgen/server/world/structure/mineshaft"
)

func TestLoadUserConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "config.toml")
	c, err := LoadUserConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c != DefaultConfig() {
		t.Fatalf("expected default config, got %+v", c)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file to be created: %v", err)
	}

	again, err := LoadUserConfig(path)
	if err != nil {
		t.Fatalf("load again: %v", err)
	}
	if again != c {
		t.Fatalf("expected written config to load back, got %+v", again)
	}
}

func TestLoadUserConfigRoundTrip(t *testing.T) {
	for _, name := range []string{"config.toml", "config.yaml"} {
		path := filepath.Join(t.TempDir(), name)
		c := DefaultConfig()
		c.World.Seed = -1234567
		c.Entrance.X, c.Entrance.Z = 100, -20
		c.Entrance.Facing = "west"
		c.Entrance.Variant = "red_desert"
		c.Terrain.DropDistance = 15.5
		c.Output.Journal = "journal.zst"
		if err := WriteUserConfig(path, c); err != nil {
			t.Fatalf("%v: write: %v", name, err)
		}
		got, err := LoadUserConfig(path)
		if err != nil {
			t.Fatalf("%v: load: %v", name, err)
		}
		if got != c {
			t.Fatalf("%v: expected %+v, got %+v", name, c, got)
		}
	}
}

func TestLoadUserConfigPartialYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("world:\n  seed: 77\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := LoadUserConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.World.Seed != 77 || c.Search.SeaLevel != 60 || c.Entrance.Facing != "north" {
		t.Fatalf("expected seed override with defaults kept, got %+v", c)
	}
}

func TestLoadUserConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[World\nSeed = "), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadUserConfig(path); err == nil {
		t.Fatalf("expected invalid TOML to fail")
	}
	if _, err := LoadUserConfig(""); err == nil {
		t.Fatalf("expected empty path to fail")
	}
}

func TestUserConfigPlacement(t *testing.T) {
	c := DefaultConfig()
	c.Entrance.X, c.Entrance.Y, c.Entrance.Z = 1, 2, 3
	c.Entrance.Facing = " South "
	c.Entrance.Variant = "Mushroom"
	centre, facing, v, err := c.Placement()
	if err != nil {
		t.Fatalf("placement: %v", err)
	}
	if centre != (cube.Pos{1, 2, 3}) || facing != cube.South || v != mineshaft.Mushroom {
		t.Fatalf("unexpected placement %v %v %v", centre, facing, v)
	}

	c.Entrance.Facing = "up"
	if _, _, _, err := c.Placement(); err == nil {
		t.Fatalf("expected unknown facing to fail")
	}
	c.Entrance.Facing, c.Entrance.Variant = "east", "nether"
	if _, _, _, err := c.Placement(); err == nil {
		t.Fatalf("expected unknown variant to fail")
	}
}

func TestUserConfigConvert(t *testing.T) {
	c := DefaultConfig()
	c.World.SaveData = false
	conf, err := c.Config(nil)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if conf.PieceProvider != nil {
		t.Fatalf("expected no piece provider without saving data")
	}
	if d, ok := conf.Entrances.Decorator.(mineshaft.VineDecorator); !ok || d.Chance != 0.25 {
		t.Fatalf("expected vine decorator, got %#v", conf.Entrances.Decorator)
	}

	c.World.SaveData = true
	c.World.Folder = filepath.Join(t.TempDir(), "pieces")
	conf, err = c.Config(nil)
	if err != nil {
		t.Fatalf("config with piece db: %v", err)
	}
	srv := conf.New()
	if err := srv.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	cliff, err := DefaultConfig().Cliff()
	if err != nil {
		t.Fatalf("cliff: %v", err)
	}
	if cliff.Direction != cube.East || cliff.High != 80 || cliff.Low != 66 || cliff.Distance != 12 {
		t.Fatalf("unexpected cliff %+v", cliff)
	}
}

func TestUserConfigSampler(t *testing.T) {
	c := DefaultConfig()
	s, err := c.Sampler()
	if err != nil {
		t.Fatalf("sampler: %v", err)
	}
	if _, ok := s.(world.Cliff); !ok {
		t.Fatalf("expected cliff terrain by default, got %T", s)
	}

	c.Terrain.Generator = "PMGen"
	c.World.Seed = 99
	s, err = c.Sampler()
	if err != nil {
		t.Fatalf("sampler: %v", err)
	}
	if _, ok := s.(*pmgen.Terrain); !ok {
		t.Fatalf("expected pmgen terrain, got %T", s)
	}

	c.Terrain.Generator = "flat"
	if _, err := c.Sampler(); err == nil {
		t.Fatalf("expected unknown generator to fail")
	}
}

func TestUserConfigAutoVariant(t *testing.T) {
	c := DefaultConfig()
	c.Entrance.Variant = "auto"
	if _, _, v, err := c.Placement(); err != nil || v != mineshaft.Normal {
		t.Fatalf("expected normal variant on cliff terrain, got %v (%v)", v, err)
	}

	c.Terrain.Generator = "pmgen"
	c.World.Seed = 4
	c.Entrance.X, c.Entrance.Z = 500, -300
	_, _, v, err := c.Placement()
	if err != nil {
		t.Fatalf("placement: %v", err)
	}
	if want := pmgen.New(4).Biome(500, -300).Variant; v != want {
		t.Fatalf("expected biome variant %v, got %v", want, v)
	}
}
