package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Storage keys for the four persisted records. Values are JSON documents
// replaced wholesale on every write; there is no partial update and no
// transactional guarantee across keys.
const (
	KeyAuth         = "reserve_auth"
	KeyConfig       = "reserve_config"
	KeyReservations = "reserve_bookings"
	KeyStats        = "reserve_stats"
)

// Store is the key-value gateway every record repository is built on. Read
// returns ErrNotFound when nothing is stored under the key; Write replaces
// the stored value. Implementations: RedisStore in production, MemStore in
// tests.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
}

// RedisStore backs the gateway with a Redis instance. Values are plain
// string keys holding JSON; no TTL is applied, records live until replaced.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore wraps an already connected Redis client.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	if rdb == nil {
		panic("nil redis client passed to NewRedisStore")
	}
	return &RedisStore{rdb: rdb}
}

// Read fetches the raw value under key, mapping redis.Nil to ErrNotFound.
func (s *RedisStore) Read(ctx context.Context, key string) ([]byte, error) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store read %s: %w", key, err)
	}
	return b, nil
}

// Write replaces the value under key.
func (s *RedisStore) Write(ctx context.Context, key string, value []byte) error {
	if err := s.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("store write %s: %w", key, err)
	}
	return nil
}

// MemStore is an in-memory Store used by tests to substitute the gateway.
type MemStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

func (s *MemStore) Read(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, nil
}

func (s *MemStore) Write(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	s.data[key] = cp
	return nil
}
