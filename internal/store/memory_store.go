package store

import (
	"context"
	"sync"
	"time"

	"nba-shotviz-service/internal/domain"
)

// MemoryStore keeps a thread-safe TTL cache of fetched shot charts, keyed by
// request key. Expired entries are dropped lazily on read.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

type entry struct {
	chart     domain.ShotChart
	expiresAt time.Time
}

// NewMemoryStore constructs an empty store. A non-positive TTL means entries
// never expire.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached chart for key, if present and unexpired.
func (s *MemoryStore) Get(ctx context.Context, key string) (domain.ShotChart, bool, error) {
	_ = ctx

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return domain.ShotChart{}, false, nil
	}

	if !e.expiresAt.IsZero() && s.now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return domain.ShotChart{}, false, nil
	}
	return e.chart, true, nil
}

// Set stores a chart under key with the configured TTL.
func (s *MemoryStore) Set(ctx context.Context, key string, chart domain.ShotChart) error {
	_ = ctx

	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry{chart: chart, expiresAt: expiresAt}
	return nil
}

// Invalidate removes one entry.
func (s *MemoryStore) Invalidate(ctx context.Context, key string) error {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

// InvalidateAll clears the store.
func (s *MemoryStore) InvalidateAll(ctx context.Context) error {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]entry)
	return nil
}

// Len reports the number of cached entries, counting expired ones not yet
// evicted.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}
