// Package cache provides pluggable byte-level caching for fetched portfolio data.
//
// Three backends are available:
//   - FileCache: JSON files in a directory, for CLI usage
//   - RedisCache: Redis-backed storage for long-running deployments
//   - NullCache: no-op cache for testing or --no-cache runs
//
// Caching here is strictly a performance optimization. Every backend treats
// corrupted, expired, or unreadable entries as a miss, and callers are expected
// to treat Set/Delete failures as non-fatal.
package cache

import (
	"context"
	"time"
)

// Cache is the interface for cache storage backends.
type Cache interface {
	// Get retrieves a value by key.
	// Returns (data, true, nil) on a hit and (nil, false, nil) on a miss.
	// Expired or corrupted entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value under key with the given TTL.
	// A TTL of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
