package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/tysonmb/sportfolio/internal/models"
)

// JSONStorage persists the snapshot as an indented JSON file, written to a
// temp file and renamed into place so a crash mid-write never leaves a
// half-written snapshot behind.
type JSONStorage struct {
	mu       sync.RWMutex
	filepath string
}

// NewJSONStorage creates a JSON-file storage at the given path. The file is
// not created until the first Save.
func NewJSONStorage(filepath string) (*JSONStorage, error) {
	if filepath == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	return &JSONStorage{filepath: filepath}, nil
}

// Load reads and parses the full snapshot.
func (s *JSONStorage) Load() (*models.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoSnapshot, s.filepath)
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var gs models.GameState
	if err := json.Unmarshal(data, &gs); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return &gs, nil
}

// Save writes the full snapshot atomically, stamping LastUpdated.
func (s *JSONStorage) Save(gs *models.GameState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	gs.LastUpdated = time.Now()

	data, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	// Write to temp file first
	tmpFile := s.filepath + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	// Atomic rename
	if err := os.Rename(tmpFile, s.filepath); err != nil {
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}
