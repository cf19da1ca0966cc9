package piecedb

import (
	"bytes"
	"errors"
	"testing"

	"github.com/df-mc/goleveldb/leveldb"
	"github.com/df-mc/goleveldb/leveldb/storage"
	"github.com/dm-vev/shaftgen/server/block/cube"
	"github.com/dm-vev/shaftgen/server/world"
	"github.com/dm-vev/shaftgen/server/world/structure/mineshaft"
)

func newMemProvider(t *testing.T) *Provider {
	t.Helper()
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		t.Fatalf("open memory db: %v", err)
	}
	p := NewProviderFromDB(db)
	t.Cleanup(func() {
		if err := p.Close(); err != nil {
			t.Errorf("close provider: %v", err)
		}
	})
	return p
}

func TestProviderSaveLoad(t *testing.T) {
	p := newMemProvider(t)
	conf := mineshaft.Config{}

	centre := cube.Pos{100, 30, -200}
	terrain := world.NewHeightmap(80)
	terrain.Set(centre[0], centre[2]-7, 70)

	e := conf.New(centre, cube.East, mineshaft.Jungle, 3)
	if !e.Evaluate(terrain) {
		t.Fatalf("expected a tunnel to be found")
	}
	if err := p.Save(e); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := p.Load(centre, conf)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Tunnel() != e.Tunnel() || loaded.Shaft() != e.Shaft() {
		t.Fatalf("loaded geometry %+v/%+v differs from saved %+v/%+v", loaded.Shaft(), loaded.Tunnel(), e.Shaft(), e.Tunnel())
	}
	if loaded.Facing() != cube.East || loaded.Variant() != mineshaft.Jungle || loaded.Piece() != e.Piece() {
		t.Fatalf("loaded placement %+v differs from saved %+v", loaded.Piece(), e.Piece())
	}
	if loaded.State() != mineshaft.StateEvaluated {
		t.Fatalf("expected loaded entrance to be evaluated, got %v", loaded.State())
	}
}

func TestProviderLoadMissing(t *testing.T) {
	p := newMemProvider(t)
	if _, err := p.Load(cube.Pos{1, 2, 3}, mineshaft.Config{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProviderEntrances(t *testing.T) {
	p := newMemProvider(t)
	conf := mineshaft.Config{}
	for _, centre := range []cube.Pos{{0, 20, 0}, {-64, 25, 32}, {512, 10, -512}} {
		if err := p.Save(conf.New(centre, cube.North, mineshaft.Normal, 0)); err != nil {
			t.Fatalf("save %v: %v", centre, err)
		}
	}
	if err := p.Delete(cube.Pos{0, 20, 0}); err != nil {
		t.Fatalf("delete: %v", err)
	}

	entrances, err := p.Entrances(conf)
	if err != nil {
		t.Fatalf("entrances: %v", err)
	}
	if len(entrances) != 2 {
		t.Fatalf("expected 2 entrances, got %v", len(entrances))
	}
	for _, e := range entrances {
		if e.State() != mineshaft.StatePlaced {
			t.Errorf("entrance at %v: expected placed state, got %v", e.Centre(), e.State())
		}
	}
}

func TestProviderRaw(t *testing.T) {
	p := newMemProvider(t)
	conf := mineshaft.Config{}
	stored := map[cube.Pos][]byte{}
	for _, centre := range []cube.Pos{{-64, 25, 32}, {512, 10, -512}} {
		e := conf.New(centre, cube.West, mineshaft.Mesa, 1)
		if err := p.Save(e); err != nil {
			t.Fatalf("save %v: %v", centre, err)
		}
		data, err := e.MarshalNBT()
		if err != nil {
			t.Fatalf("marshal %v: %v", centre, err)
		}
		stored[centre] = data
	}

	var n int
	err := p.Raw(func(centre cube.Pos, data []byte) error {
		n++
		want, ok := stored[centre]
		if !ok {
			t.Fatalf("unexpected centre %v", centre)
		}
		if !bytes.Equal(data, want) {
			t.Fatalf("centre %v: stored data differs from the encoded entrance", centre)
		}
		return nil
	})
	if err != nil || n != len(stored) {
		t.Fatalf("expected %v entrances, got %v (%v)", len(stored), n, err)
	}

	stop := errors.New("stop")
	if err := p.Raw(func(cube.Pos, []byte) error { return stop }); !errors.Is(err, stop) {
		t.Fatalf("expected error returned by f, got %v", err)
	}
}
