// ABOUTME: SQLite-based blacklist storage that survives application restarts
// ABOUTME: Implements the append-only host blacklist preference store

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"wikireader-api/core/domain"
)

// BlacklistStore implements the BlacklistStorage interface using SQLite
type BlacklistStore struct {
	db       *sql.DB
	filePath string
}

// NewBlacklistStore creates a new SQLite-backed blacklist store
func NewBlacklistStore(filePath string) (*BlacklistStore, error) {
	if filePath == "" {
		filePath = "preferences.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	store := &BlacklistStore{
		db:       db,
		filePath: filePath,
	}

	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the blacklist table if it doesn't exist
func (s *BlacklistStore) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS blacklist (
			host TEXT PRIMARY KEY,
			added_at INTEGER NOT NULL
		);
	`

	_, err := s.db.Exec(query)
	return err
}

// Add persists a blacklist entry. Re-adding an existing host is a no-op.
func (s *BlacklistStore) Add(ctx context.Context, entry *domain.BlacklistEntry) error {
	if entry == nil || entry.Host == "" {
		return errors.New("entry host cannot be empty")
	}

	query := `
		INSERT OR IGNORE INTO blacklist (host, added_at)
		VALUES (?, ?)
	`

	_, err := s.db.ExecContext(ctx, query, entry.Host, entry.AddedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to add blacklist entry: %w", err)
	}
	return nil
}

// Contains reports whether the host is blacklisted
func (s *BlacklistStore) Contains(ctx context.Context, host string) (bool, error) {
	if host == "" {
		return false, errors.New("host cannot be empty")
	}

	var found int
	query := "SELECT 1 FROM blacklist WHERE host = ?"
	err := s.db.QueryRowContext(ctx, query, host).Scan(&found)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query blacklist: %w", err)
	}
	return true, nil
}

// Close releases the underlying database handle
func (s *BlacklistStore) Close() error {
	return s.db.Close()
}
