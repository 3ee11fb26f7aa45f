package ratelimit

import (
	"context"
	"time"
)

// Store defines the key-value backend shared by all handler instances.
// Implementations must report missing keys via found=false, not an error;
// errors are reserved for transport failures.
type Store interface {
	// Get returns the value stored under key, or found=false if absent.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Put stores value under key, replacing any prior value, and schedules
	// automatic deletion no sooner than ttl after the call.
	Put(ctx context.Context, key, value string, ttl time.Duration) error
}
