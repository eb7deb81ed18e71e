package ports_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/countdown/pkg/domain"
	"github.com/aretw0/countdown/pkg/ports"
)

// MockStore keeps the date as epoch milliseconds, like the real adapters.
type MockStore struct {
	ms  int64
	set bool
}

func (m *MockStore) Get(ctx context.Context) (time.Time, error) {
	if !m.set {
		return time.Time{}, domain.ErrDateNotFound
	}
	return time.UnixMilli(m.ms), nil
}

func (m *MockStore) Set(ctx context.Context, date time.Time) error {
	m.ms = date.UnixMilli()
	m.set = true
	return nil
}

func (m *MockStore) Remove(ctx context.Context) error {
	m.set = false
	return nil
}

func TestDateStore_Contract(t *testing.T) {
	// Verifies the contract suite itself against a trivial implementation.
	ports.RunDateStoreContract(t, &MockStore{})
}
