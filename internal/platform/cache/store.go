package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/neuproject/sports-calendar/internal/platform/resilience"
)

// Store is an in-process TTL cache. Loads for the same key are coalesced,
// so a cold calendar month hits the repository once rather than per request.
type Store struct {
	mu      sync.RWMutex
	records map[string]record
	ttl     time.Duration
	flight  resilience.SingleFlight
}

type record struct {
	value    any
	deadline time.Time // zero when the store has no TTL
}

func (r record) live(at time.Time) bool {
	return r.deadline.IsZero() || r.deadline.After(at)
}

// NewStore builds a store whose entries expire ttl after Set. A ttl of zero
// or less disables expiry.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		records: make(map[string]record),
		ttl:     ttl,
	}
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	s.mu.RLock()
	rec, ok := s.records[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !rec.live(time.Now()) {
		s.mu.Lock()
		delete(s.records, key)
		s.mu.Unlock()
		return nil, false
	}
	return rec.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}

	rec := record{value: value}
	if s.ttl > 0 {
		rec.deadline = time.Now().Add(s.ttl)
	}

	s.mu.Lock()
	s.records[key] = rec
	s.mu.Unlock()
}

func (s *Store) Delete(_ context.Context, key string) {
	if key == "" {
		return
	}

	s.mu.Lock()
	delete(s.records, key)
	s.mu.Unlock()
}

// DeletePrefix drops every entry whose key starts with prefix; follow
// toggles use it to invalidate one member's calendar pages.
func (s *Store) DeletePrefix(_ context.Context, prefix string) {
	if prefix == "" {
		return
	}

	s.mu.Lock()
	for key := range s.records {
		if strings.HasPrefix(key, prefix) {
			delete(s.records, key)
		}
	}
	s.mu.Unlock()
}

// GetOrLoad returns the cached value or runs loader and caches its result.
// Loader errors are returned without being cached. An empty key bypasses the
// store entirely.
func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	value, err, _ := s.flight.Do(key, func() (any, error) {
		// A coalesced caller may have populated the entry already.
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.Set(ctx, key, loaded)
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}
