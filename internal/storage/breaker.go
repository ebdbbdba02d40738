package storage

import (
	"errors"
	"log"
	"time"

	"github.com/sony/gobreaker"

	"github.com/tysonmb/sportfolio/internal/models"
)

// CircuitBreakerStorage wraps a storage Interface with circuit breaker
// functionality so a persistently failing disk stops being hammered on
// every request.
type CircuitBreakerStorage struct {
	storage Interface
	breaker *gobreaker.CircuitBreaker
}

// CircuitBreakerSettings configures circuit breaker behavior.
type CircuitBreakerSettings struct {
	MaxRequests  uint32        // Max requests when half-open
	Interval     time.Duration // Reset counts interval
	Timeout      time.Duration // Open circuit duration
	MinRequests  uint32        // Min requests before tripping
	FailureRatio float64       // Failure ratio threshold
}

// NewCircuitBreakerStorage creates a CircuitBreakerStorage with sensible
// defaults.
func NewCircuitBreakerStorage(st Interface) *CircuitBreakerStorage {
	return NewCircuitBreakerStorageWithSettings(st, CircuitBreakerSettings{
		MaxRequests:  3,                // Allow 3 requests when half-open
		Interval:     60 * time.Second, // Reset counts every minute
		Timeout:      30 * time.Second, // Open circuit for 30 seconds
		MinRequests:  5,                // Minimum requests before tripping
		FailureRatio: 0.6,              // Trip if 60% failure rate
	})
}

// NewCircuitBreakerStorageWithSettings creates a CircuitBreakerStorage with
// custom settings. ErrNoSnapshot does not count as a failure: a missing file
// is an expected first-run condition, not a broken disk.
func NewCircuitBreakerStorageWithSettings(st Interface, settings CircuitBreakerSettings) *CircuitBreakerStorage {
	gbSettings := gobreaker.Settings{
		Name:        "SnapshotStorage",
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNoSnapshot)
		},
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests == 0 || counts.Requests < settings.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= settings.FailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Printf("Circuit breaker %s state changed from %s to %s", name, from, to)
		},
	}

	return &CircuitBreakerStorage{
		storage: st,
		breaker: gobreaker.NewCircuitBreaker(gbSettings),
	}
}

// Load wraps the underlying load with the circuit breaker.
func (c *CircuitBreakerStorage) Load() (*models.GameState, error) {
	res, err := c.breaker.Execute(func() (interface{}, error) {
		gs, err := c.storage.Load()
		if err != nil {
			return nil, err
		}
		return gs, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(*models.GameState), nil
}

// Save wraps the underlying save with the circuit breaker.
func (c *CircuitBreakerStorage) Save(gs *models.GameState) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.storage.Save(gs)
	})
	return err
}
