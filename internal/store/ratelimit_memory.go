package store

import (
	"context"
	"sync"
	"time"
)

// RateLimitMemoryStore is an in-memory implementation of ratelimit.Store.
// Entries expire lazily on read.
type RateLimitMemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// NewRateLimitMemoryStore creates a new in-memory rate limit store.
func NewRateLimitMemoryStore() *RateLimitMemoryStore {
	return &RateLimitMemoryStore{
		entries: make(map[string]memoryEntry),
	}
}

func (s *RateLimitMemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return "", false, nil
	}

	if time.Now().After(entry.expiresAt) {
		delete(s.entries, key)

		return "", false, nil
	}

	return entry.value, true, nil
}

func (s *RateLimitMemoryStore) Put(_ context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = memoryEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}

	return nil
}
