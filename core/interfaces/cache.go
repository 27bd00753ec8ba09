// Package interfaces defines the contracts the core business logic depends on.
// All external concerns (cache, HTTP, logging, storage) are injected through
// these interfaces so the transformation pipeline stays testable in isolation.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for ancillary cache operations.
//
// Only derived side data (banner metadata, accent colors) is ever cached.
// Article render models are recomputed on every invocation and must never
// be stored here.
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached data as []byte or an error if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
