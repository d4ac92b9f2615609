// Package cache holds an in-process TTL store with load coalescing.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/riskibarqy/football-explorer/internal/platform/resilience"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

func (e entry[V]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !e.expiresAt.After(now)
}

// Store is an in-process TTL cache. A non-positive ttl keeps entries until
// they are deleted.
type Store[V any] struct {
	ttl    time.Duration
	now    func() time.Time
	flight resilience.SingleFlight[V]

	mu      sync.RWMutex
	entries map[string]entry[V]
	// generations is bumped by Delete; a load that started under an older
	// generation returns its value but does not store it.
	generations map[string]uint64
}

func NewStore[V any](ttl time.Duration) *Store[V] {
	return &Store[V]{
		ttl:         ttl,
		now:         time.Now,
		entries:     make(map[string]entry[V]),
		generations: make(map[string]uint64),
	}
}

func (s *Store[V]) Get(_ context.Context, key string) (V, bool) {
	var zero V
	if key == "" {
		return zero, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok || e.expired(s.now()) {
		return zero, false
	}
	return e.value, true
}

func (s *Store[V]) Set(_ context.Context, key string, value V) {
	if key == "" {
		return
	}
	s.mu.Lock()
	s.entries[key] = s.newEntry(value)
	s.mu.Unlock()
}

// Delete removes key and detaches any load in flight for it.
func (s *Store[V]) Delete(_ context.Context, key string) {
	if key == "" {
		return
	}
	s.mu.Lock()
	delete(s.entries, key)
	s.generations[key]++
	s.mu.Unlock()
	s.flight.Forget(key)
}

// Len counts stored entries, expired ones included until they are replaced.
func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// GetOrLoad returns the cached value for key or runs loader once for all
// concurrent callers. Failed loads are not cached.
func (s *Store[V]) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (V, error)) (V, error) {
	var zero V
	if loader == nil {
		return zero, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}
	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	value, err, _ := s.flight.Do(key, func() (V, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		s.mu.RLock()
		generation := s.generations[key]
		s.mu.RUnlock()

		loaded, err := loader(ctx)
		if err != nil {
			return zero, err
		}

		s.mu.Lock()
		if s.generations[key] == generation {
			s.entries[key] = s.newEntry(loaded)
		}
		s.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return zero, err
	}
	return value, nil
}

func (s *Store[V]) newEntry(value V) entry[V] {
	e := entry[V]{value: value}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	return e
}
