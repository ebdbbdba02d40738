package storage

import (
	"sync"

	"github.com/tysonmb/sportfolio/internal/models"
)

// MockStorage implements Interface for testing.
type MockStorage struct {
	mu            sync.Mutex
	state         *models.GameState
	loadError     error
	saveError     error
	loadCallCount int
	saveCallCount int
}

// NewMockStorage creates a new mock storage for testing. An empty mock
// behaves like a first run: Load returns ErrNoSnapshot until a Save.
func NewMockStorage() *MockStorage {
	return &MockStorage{}
}

// Load returns the last saved state, or the injected error.
func (m *MockStorage) Load() (*models.GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadCallCount++
	if m.loadError != nil {
		return nil, m.loadError
	}
	if m.state == nil {
		return nil, ErrNoSnapshot
	}
	return m.state, nil
}

// Save stores the state in memory, or returns the injected error.
func (m *MockStorage) Save(gs *models.GameState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveCallCount++
	if m.saveError != nil {
		return m.saveError
	}
	m.state = gs
	return nil
}

// SetState seeds the mock with a state for Load to return.
func (m *MockStorage) SetState(gs *models.GameState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = gs
}

// SetLoadError makes every Load fail with err.
func (m *MockStorage) SetLoadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadError = err
}

// SetSaveError makes every Save fail with err.
func (m *MockStorage) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveError = err
}

// SaveCallCount returns how many times Save was invoked.
func (m *MockStorage) SaveCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveCallCount
}

// LoadCallCount returns how many times Load was invoked.
func (m *MockStorage) LoadCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadCallCount
}
