// ABOUTME: Preference domain model for the reader's host blacklist
// ABOUTME: Hosts on the blacklist are never intercepted by the redirector

package domain

import (
	"errors"
	"strings"
	"time"
)

// BlacklistEntry records one host the user excluded from interception.
type BlacklistEntry struct {
	// Host is the lowercased hostname, without scheme or port
	Host string

	// AddedAt is when the entry was created
	AddedAt time.Time
}

// NewBlacklistEntry validates and normalizes a host into an entry.
func NewBlacklistEntry(host string) (*BlacklistEntry, error) {
	host = strings.ToLower(strings.TrimSpace(host))
	if host == "" {
		return nil, errors.New("host cannot be empty")
	}
	if strings.ContainsAny(host, "/ :") {
		return nil, errors.New("host must be a bare hostname")
	}
	return &BlacklistEntry{
		Host:    host,
		AddedAt: time.Now(),
	}, nil
}
