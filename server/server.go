package server

import (
	"errors"
	"fmt"

	"github.com/dm-vev/shaftgen/server/block/cube"
	"github.com/dm-vev/shaftgen/server/world"
	"github.com/dm-vev/shaftgen/server/world/generator/pmgen/rand"
	"github.com/dm-vev/shaftgen/server/world/structure/mineshaft"
	"github.com/google/uuid"
	"github.com/segmentio/fasthash/fnv1a"
)

// Server places, generates and stores mineshaft entrances. A Server may be
// used by multiple goroutines at the same time, but a single piece must only
// be generated by one goroutine at a time.
type Server struct {
	conf Config
	id   uuid.UUID
}

// Result is the outcome of generating a single piece.
type Result struct {
	// Tunnel is true if the piece connects to the surface. If false, nothing
	// was written.
	Tunnel bool
	// Direction and Length are the world direction and length of the tunnel.
	Direction cube.Direction
	Length    int
	// Mouth is the far end of the tunnel and Reach its taxicab distance from
	// the centre of the shaft.
	Mouth cube.Pos
	Reach int
	// Chunks is the amount of chunks carved.
	Chunks int
	// Journal holds all block writes accepted by the region.
	Journal *world.Journal
}

// Writes returns the amount of blocks written.
func (r Result) Writes() int {
	return r.Journal.Len()
}

// Fingerprint returns the fingerprint of all blocks written.
func (r Result) Fingerprint() uint64 {
	return r.Journal.Fingerprint()
}

// ID returns the unique ID of the run of the Server, which is attached to all
// of its logs.
func (srv *Server) ID() uuid.UUID {
	return srv.id
}

// Entrance returns the vertical entrance centred on the position passed. An
// entrance stored by the piece provider is returned with its geometry intact.
// If none is stored, a new entrance is placed using the facing and variant
// passed.
func (srv *Server) Entrance(centre cube.Pos, facing cube.Direction, v mineshaft.Variant) (*mineshaft.VerticalEntrance, error) {
	e, err := srv.conf.PieceProvider.Load(centre, srv.conf.Entrances)
	if err == nil {
		srv.conf.Log.Debug("loaded vertical entrance", "centre", centre, "state", e.State())
		return e, nil
	}
	if !errors.Is(err, mineshaft.ErrNotFound) {
		return nil, fmt.Errorf("load vertical entrance at %v: %w", centre, err)
	}
	return srv.conf.Entrances.New(centre, facing, v, 0), nil
}

// Generate generates the vertical entrance passed into the region, one chunk
// at a time, using the terrain passed to evaluate it. The random stream is
// reset to the seed of the piece for every chunk, so that the outcome does
// not depend on the chunks loaded. Unless the Server is read-only, the piece
// is saved afterwards.
func (srv *Server) Generate(e *mineshaft.VerticalEntrance, t world.TerrainSampler, region world.Region) (Result, error) {
	rec := journalRegion{Region: region, journal: &world.Journal{}}
	res := Result{Journal: rec.journal, Direction: cube.NoDirection}

	seed := srv.pieceSeed(e.Centre())
	r := rand.NewRandom(seed)
	box := e.Piece().Box
	ra := cube.Range{box.Min[1], box.Max[1]}
	for _, pos := range world.ChunksIn(box) {
		r.SetSeed(seed)
		if !e.Generate(t, rec, r, world.ChunkBox(pos, ra)) {
			break
		}
		res.Chunks++
	}

	if tunnel := e.Tunnel(); tunnel.HasTunnel {
		res.Tunnel, res.Direction, res.Length = true, tunnel.Direction, tunnel.Length
		res.Mouth, _ = e.Mouth()
		res.Reach = e.Centre().Manhattan(res.Mouth)
		srv.conf.Log.Info("generated vertical entrance", "centre", e.Centre(), "variant", e.Variant(), "direction", res.Direction, "length", res.Length, "mouth", res.Mouth, "writes", res.Writes())
	} else {
		srv.conf.Log.Info("vertical entrance has no surface opening", "centre", e.Centre())
	}

	if !srv.conf.ReadOnly {
		if err := srv.conf.PieceProvider.Save(e); err != nil {
			return res, fmt.Errorf("save vertical entrance: %w", err)
		}
	}
	return res, nil
}

// Close closes the piece provider of the Server.
func (srv *Server) Close() error {
	if err := srv.conf.PieceProvider.Close(); err != nil {
		return fmt.Errorf("close piece provider: %w", err)
	}
	return nil
}

// pieceSeed returns the seed of the random stream used to carve the piece
// centred on the position passed.
func (srv *Server) pieceSeed(centre cube.Pos) int64 {
	h := fnv1a.HashUint64(uint64(srv.conf.Seed))
	for _, v := range centre {
		h = fnv1a.AddUint64(h, uint64(int64(v)))
	}
	return int64(h)
}

// journalRegion is a world.Region that records the writes accepted by the
// Region it wraps.
type journalRegion struct {
	world.Region
	journal *world.Journal
}

// SetBlock ...
func (r journalRegion) SetBlock(pos cube.Pos, b world.Block) {
	if !r.Loaded(pos) {
		return
	}
	r.Region.SetBlock(pos, b)
	r.journal.Add(pos, b)
}
