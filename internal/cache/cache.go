package cache

import (
	"context"
	"sync"

	"travelweather/internal/models"

	"go.uber.org/zap"
)

// Entry is one cached forecast bundle. Timestamp is the write time in epoch
// milliseconds; freshness against a TTL is decided by the caller, not here.
type Entry struct {
	Timestamp int64                 `json:"timestamp"`
	Data      models.ForecastBundle `json:"data"`
}

// Store is a dumb persistence shim for forecast bundles. Get treats any
// malformed or unreadable stored value as absent, and Set swallows backing
// store failures. Implementations must be safe for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) (Entry, bool)
	Set(ctx context.Context, key string, entry Entry)
}

// MemoryStore keeps entries in a map. Entries are only ever superseded by
// overwrites; expiry is the caller's policy.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
	logger  *zap.Logger
}

func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]Entry),
		logger:  logger,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[key]
	return entry, ok
}

func (s *MemoryStore) Set(_ context.Context, key string, entry Entry) {
	s.mu.Lock()
	s.entries[key] = entry
	s.mu.Unlock()

	s.logger.Debug("Forecast bundle cached",
		zap.String("key", key),
		zap.Int64("timestamp", entry.Timestamp))
}

// Len reports the number of stored entries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
