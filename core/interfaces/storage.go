// ABOUTME: Storage interfaces for persisting user preferences
// ABOUTME: Defines the contract for the append-only host blacklist

package interfaces

import (
	"context"

	"wikireader-api/core/domain"
)

// BlacklistStorage defines the interface for blacklist persistence.
// The transformation pipeline never touches it; only the navigation
// redirector appends to and consults the blacklist.
type BlacklistStorage interface {
	// Add persists a blacklist entry. Adding an already-present host is a no-op.
	Add(ctx context.Context, entry *domain.BlacklistEntry) error

	// Contains reports whether the host is blacklisted.
	Contains(ctx context.Context, host string) (bool, error)
}
