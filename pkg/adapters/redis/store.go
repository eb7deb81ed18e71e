package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aretw0/countdown/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Store implements ports.DateStore using Redis.
// The date is kept under a single key as epoch milliseconds.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration of the persisted date.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "countdown:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key() string {
	return s.prefix + "date"
}

// Get retrieves the date from Redis.
func (s *Store) Get(ctx context.Context) (time.Time, error) {
	val, err := s.client.Get(ctx, s.key()).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return time.Time{}, domain.ErrDateNotFound
		}
		return time.Time{}, fmt.Errorf("failed to get from redis: %w", err)
	}

	ms, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse stored date %q: %w", val, err)
	}
	return time.UnixMilli(ms), nil
}

// Set persists the date to Redis.
func (s *Store) Set(ctx context.Context, date time.Time) error {
	// Use 0 for no expiration if ttl is not set.
	err := s.client.Set(ctx, s.key(), strconv.FormatInt(date.UnixMilli(), 10), s.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Remove deletes the date.
func (s *Store) Remove(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key()).Err(); err != nil {
		return fmt.Errorf("failed to delete from redis: %w", err)
	}
	return nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
