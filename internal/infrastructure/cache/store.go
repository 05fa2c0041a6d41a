// Package cache provides short-lived key/value storage backed by memory or Redis.
package cache

import (
	"context"
	"time"
)

// Store is a string key/value store with per-key expiration
type Store interface {
	// Get returns the value and true, or "" and false when the key is missing or expired
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
