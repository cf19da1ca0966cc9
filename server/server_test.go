package server

import (
	"errors"
	"testing"

	"github.com/df-mc/goleveldb/leveldb"
	"github.com/df-mc/goleveldb/leveldb/storage"
	"github.com/dm-vev/shaftgen/server/block"
	"github.com/dm-vev/shaftgen/server/block/cube"
	"github.com/dm-vev/shaftgen/server/world"
	"github.com/dm-vev/shaftgen/server/world/structure/mineshaft"
	"github.com/dm-vev/shaftgen/server/world/structure/piecedb"
)

var testRange = cube.Range{-64, 319}

func testCliff(centre cube.Pos) world.Cliff {
	return world.Cliff{Origin: centre, Direction: cube.East, Distance: 12, High: 80, Low: 66}
}

func newRegion(t world.TerrainSampler, e *mineshaft.VerticalEntrance) *world.Buffer {
	return world.NewBuffer(testRange, world.Ground(t, block.Stone{}, block.Air{}), world.ChunksIn(e.Piece().Box)...)
}

func TestServerGenerate(t *testing.T) {
	srv := Config{Seed: 42}.New()
	centre := cube.Pos{0, 30, 0}
	terrain := testCliff(centre)

	e, err := srv.Entrance(centre, cube.North, mineshaft.Normal)
	if err != nil {
		t.Fatalf("entrance: %v", err)
	}
	buf := newRegion(terrain, e)
	res, err := srv.Generate(e, terrain, buf)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !res.Tunnel || res.Direction != cube.East || res.Length != 10 {
		t.Fatalf("expected east tunnel of length 10, got %+v", res)
	}
	if res.Mouth != (cube.Pos{12, 75, 0}) || res.Reach != 57 {
		t.Fatalf("expected mouth at (12, 75, 0) with reach 57, got %v with reach %v", res.Mouth, res.Reach)
	}
	if res.Chunks != len(world.ChunksIn(e.Piece().Box)) {
		t.Fatalf("expected all %v chunks to be carved, got %v", len(world.ChunksIn(e.Piece().Box)), res.Chunks)
	}
	if res.Writes() == 0 || res.Writes() != buf.Journal().Len() || res.Fingerprint() != buf.Journal().Fingerprint() {
		t.Fatalf("expected the result to record all %v writes, got %v", buf.Journal().Len(), res.Writes())
	}
	if e.State() != mineshaft.StateCarved {
		t.Fatalf("expected carved entrance, got %v", e.State())
	}
}

func TestServerDeterministic(t *testing.T) {
	centre := cube.Pos{-77, 24, 301}
	terrain := testCliff(centre)
	run := func(seed int64) uint64 {
		srv := Config{Seed: seed}.New()
		e, _ := srv.Entrance(centre, cube.South, mineshaft.Mesa)
		res, err := srv.Generate(e, terrain, newRegion(terrain, e))
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		return res.Fingerprint()
	}
	if a, b := run(9), run(9); a != b {
		t.Fatalf("expected equal fingerprints, got %x and %x", a, b)
	}
	if a, b := run(9), run(10); a == b {
		t.Fatalf("expected different seeds to produce different blocks")
	}
}

func TestServerNoTunnel(t *testing.T) {
	srv := Config{}.New()
	terrain := world.NewHeightmap(40)
	e, _ := srv.Entrance(cube.Pos{0, 10, 0}, cube.West, mineshaft.Ice)
	res, err := srv.Generate(e, terrain, newRegion(terrain, e))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if res.Tunnel || res.Writes() != 0 || res.Chunks != 0 || res.Direction != cube.NoDirection {
		t.Fatalf("expected nothing to be generated, got %+v", res)
	}
}

func TestServerPieceProvider(t *testing.T) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		t.Fatalf("open memory db: %v", err)
	}
	srv := Config{Seed: 3, PieceProvider: piecedb.NewProviderFromDB(db)}.New()
	defer func() {
		if err := srv.Close(); err != nil {
			t.Errorf("close: %v", err)
		}
	}()

	centre := cube.Pos{40, 30, 40}
	terrain := testCliff(centre)
	e, _ := srv.Entrance(centre, cube.East, mineshaft.Jungle)
	first, err := srv.Generate(e, terrain, newRegion(terrain, e))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// The stored entrance keeps its tunnel, even if the terrain changed since.
	loaded, err := srv.Entrance(centre, cube.North, mineshaft.Normal)
	if err != nil {
		t.Fatalf("load entrance: %v", err)
	}
	if loaded.Facing() != cube.East || loaded.Variant() != mineshaft.Jungle || loaded.Tunnel() != e.Tunnel() {
		t.Fatalf("expected stored entrance, got facing %v, variant %v, tunnel %+v", loaded.Facing(), loaded.Variant(), loaded.Tunnel())
	}
	flat := world.NewHeightmap(80)
	second, err := srv.Generate(loaded, flat, newRegion(flat, loaded))
	if err != nil {
		t.Fatalf("generate stored entrance: %v", err)
	}
	if second.Direction != first.Direction || second.Length != first.Length {
		t.Fatalf("expected stored geometry %v/%v, got %v/%v", first.Direction, first.Length, second.Direction, second.Length)
	}
}

func TestServerReadOnly(t *testing.T) {
	prov := &countingProvider{}
	srv := Config{PieceProvider: prov, ReadOnly: true}.New()
	terrain := testCliff(cube.Pos{})
	e, _ := srv.Entrance(cube.Pos{}, cube.North, mineshaft.Normal)
	if _, err := srv.Generate(e, terrain, newRegion(terrain, e)); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if prov.saves != 0 {
		t.Fatalf("expected read-only server not to save, got %v saves", prov.saves)
	}
}

func TestServerLoadError(t *testing.T) {
	srv := Config{PieceProvider: &countingProvider{err: errors.New("disk on fire")}}.New()
	if _, err := srv.Entrance(cube.Pos{}, cube.North, mineshaft.Normal); err == nil {
		t.Fatalf("expected load error to be returned")
	}
}

type countingProvider struct {
	mineshaft.NopProvider
	saves int
	err   error
}

func (p *countingProvider) Save(*mineshaft.VerticalEntrance) error {
	p.saves++
	return nil
}

func (p *countingProvider) Load(cube.Pos, mineshaft.Config) (*mineshaft.VerticalEntrance, error) {
	if p.err != nil {
		return nil, p.err
	}
	return nil, mineshaft.ErrNotFound
}
