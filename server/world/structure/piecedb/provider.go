// Package piecedb stores generated structure pieces in a LevelDB database, so that the geometry found
// when a piece was first generated survives restarts.
package piecedb

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/df-mc/goleveldb/leveldb"
	"github.com/df-mc/goleveldb/leveldb/opt"
	"github.com/df-mc/goleveldb/leveldb/util"
	"github.com/dm-vev/shaftgen/server/block/cube"
	"github.com/dm-vev/shaftgen/server/world/structure/mineshaft"
)

// ErrNotFound is returned when no piece is stored at the position requested. It is the same error as
// mineshaft.ErrNotFound.
var ErrNotFound = mineshaft.ErrNotFound

// entrancePrefix prefixes the keys of vertical entrances.
const entrancePrefix = "vertical_entrance/"

// Provider is a LevelDB backed store of vertical entrances keyed by the centre of their shaft.
type Provider struct {
	db *leveldb.DB
}

// NewProvider opens a Provider using the directory passed, creating the database if it does not yet
// exist.
func NewProvider(dir string) (*Provider, error) {
	db, err := leveldb.OpenFile(dir, &opt.Options{Compression: opt.FlateCompression})
	if err != nil {
		return nil, fmt.Errorf("open piece db: %w", err)
	}
	return NewProviderFromDB(db), nil
}

// NewProviderFromDB returns a Provider using a database that was already opened.
func NewProviderFromDB(db *leveldb.DB) *Provider {
	return &Provider{db: db}
}

// Save stores the vertical entrance passed, replacing any entrance previously stored at its centre.
func (p *Provider) Save(e *mineshaft.VerticalEntrance) error {
	raw, err := e.MarshalNBT()
	if err != nil {
		return err
	}
	if err := p.db.Put(entranceKey(e.Centre()), raw, nil); err != nil {
		return fmt.Errorf("write vertical entrance at %v: %w", e.Centre(), err)
	}
	return nil
}

// Load loads the vertical entrance centred on the position passed. ErrNotFound is returned if there is
// none.
func (p *Provider) Load(centre cube.Pos, conf mineshaft.Config) (*mineshaft.VerticalEntrance, error) {
	raw, err := p.db.Get(entranceKey(centre), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("read vertical entrance at %v: %w", centre, err)
	}
	return conf.Decode(raw)
}

// Delete removes the vertical entrance centred on the position passed, if any.
func (p *Provider) Delete(centre cube.Pos) error {
	return p.db.Delete(entranceKey(centre), nil)
}

// Entrances loads all vertical entrances stored, ordered by their keys.
func (p *Provider) Entrances(conf mineshaft.Config) ([]*mineshaft.VerticalEntrance, error) {
	iter := p.db.NewIterator(util.BytesPrefix([]byte(entrancePrefix)), nil)
	defer iter.Release()

	var entrances []*mineshaft.VerticalEntrance
	for iter.Next() {
		e, err := conf.Decode(iter.Value())
		if err != nil {
			return nil, fmt.Errorf("key %x: %w", iter.Key(), err)
		}
		entrances = append(entrances, e)
	}
	return entrances, iter.Error()
}

// Raw calls f with the centre and the stored NBT of every vertical entrance, ordered by their keys. The
// data passed to f is only valid until f returns. Iteration stops at the first error returned by f.
func (p *Provider) Raw(f func(centre cube.Pos, data []byte) error) error {
	iter := p.db.NewIterator(util.BytesPrefix([]byte(entrancePrefix)), nil)
	defer iter.Release()

	for iter.Next() {
		centre, ok := parseEntranceKey(iter.Key())
		if !ok {
			return fmt.Errorf("invalid vertical entrance key %x", iter.Key())
		}
		if err := f(centre, iter.Value()); err != nil {
			return err
		}
	}
	return iter.Error()
}

// Compile time check to make sure Provider implements mineshaft.Provider.
var _ mineshaft.Provider = (*Provider)(nil)

// Close closes the database of the Provider.
func (p *Provider) Close() error {
	return p.db.Close()
}

// entranceKey returns the key of the vertical entrance centred on the position passed.
func entranceKey(centre cube.Pos) []byte {
	key := make([]byte, len(entrancePrefix)+12)
	copy(key, entrancePrefix)
	for i, v := range centre {
		binary.BigEndian.PutUint32(key[len(entrancePrefix)+i*4:], uint32(int32(v)))
	}
	return key
}

// parseEntranceKey returns the centre encoded in a key produced by entranceKey.
func parseEntranceKey(key []byte) (cube.Pos, bool) {
	if len(key) != len(entrancePrefix)+12 {
		return cube.Pos{}, false
	}
	var centre cube.Pos
	for i := range centre {
		centre[i] = int(int32(binary.BigEndian.Uint32(key[len(entrancePrefix)+i*4:])))
	}
	return centre, true
}
