package mineshaft

import (
	"errors"

	"github.com/dm-vev/shaftgen/server/block/cube"
)

// ErrNotFound is returned by a Provider when no entrance is stored at the position requested.
var ErrNotFound = errors.New("mineshaft: vertical entrance not found")

// Provider represents a value that may provide vertical entrances to generate. Entrances saved are loaded
// with their geometry intact, so a piece found once keeps its tunnel across restarts.
type Provider interface {
	// Save saves the VerticalEntrance passed, keyed by its centre.
	Save(e *VerticalEntrance) error
	// Load loads the VerticalEntrance centred on the position passed, using the Config passed for its
	// tunables. If none is stored, ErrNotFound is returned.
	Load(centre cube.Pos, conf Config) (*VerticalEntrance, error)
	// Close closes the Provider.
	Close() error
}

// NopProvider is a Provider that does not store anything. Load always returns ErrNotFound.
type NopProvider struct{}

// Save ...
func (NopProvider) Save(*VerticalEntrance) error { return nil }

// Load ...
func (NopProvider) Load(cube.Pos, Config) (*VerticalEntrance, error) { return nil, ErrNotFound }

// Close ...
func (NopProvider) Close() error { return nil }
