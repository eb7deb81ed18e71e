package memory

import (
	"context"
	"sync"
	"time"

	"github.com/aretw0/countdown/pkg/domain"
)

// Store implements ports.DateStore in memory.
// Safe for concurrent use.
type Store struct {
	ms  int64
	set bool
	mu  sync.RWMutex
}

// NewStore creates a new, empty in-memory store.
func NewStore() *Store {
	return &Store{}
}

// Get returns the stored date.
func (s *Store) Get(ctx context.Context) (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.set {
		return time.Time{}, domain.ErrDateNotFound
	}
	return time.UnixMilli(s.ms), nil
}

// Set stores the date with millisecond precision.
func (s *Store) Set(ctx context.Context, date time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ms = date.UnixMilli()
	s.set = true
	return nil
}

// Remove clears the stored date.
func (s *Store) Remove(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ms = 0
	s.set = false
	return nil
}
