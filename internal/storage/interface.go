// Package storage persists the GameState snapshot. Every mutating operation
// in the engine reads the entire snapshot, applies one change in memory and
// writes the entire snapshot back.
package storage

import (
	"errors"

	"github.com/tysonmb/sportfolio/internal/models"
)

// ErrNoSnapshot is returned by Load when no snapshot file exists yet.
// Callers treat it as "fresh season", not as a fault.
var ErrNoSnapshot = errors.New("no snapshot found")

// Interface defines the contract for game-state persistence.
//
// Implementations must be safe for concurrent use - callers can assume all
// methods are goroutine-safe. The provided JSONStorage implementation uses
// sync.RWMutex to serialize access.
type Interface interface {
	// Load reads the full snapshot. A missing file yields ErrNoSnapshot; a
	// corrupt file yields a parse error. Neither is fatal to callers, who
	// degrade to a freshly initialized season.
	Load() (*models.GameState, error)
	// Save overwrites the full snapshot atomically, stamping LastUpdated.
	Save(gs *models.GameState) error
}

// NewStorage creates a new storage implementation (currently JSON-based).
// In the future, this can be extended to support different storage backends.
func NewStorage(filepath string) (Interface, error) {
	return NewJSONStorage(filepath)
}

// Ensure implementations satisfy Interface.
var (
	_ Interface = (*JSONStorage)(nil)
	_ Interface = (*CircuitBreakerStorage)(nil)
	_ Interface = (*MockStorage)(nil)
)
