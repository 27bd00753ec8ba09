package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"wikireader-api/core/domain"
)

func newTestStore(t *testing.T) *BlacklistStore {
	t.Helper()
	store, err := NewBlacklistStore(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAddAndContains(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	entry, err := domain.NewBlacklistEntry("en.wikipedia.org")
	if err != nil {
		t.Fatalf("NewBlacklistEntry returned error: %v", err)
	}
	if err := store.Add(ctx, entry); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	found, err := store.Contains(ctx, "en.wikipedia.org")
	if err != nil {
		t.Fatalf("Contains returned error: %v", err)
	}
	if !found {
		t.Error("added host should be found")
	}
}

func TestContains_AbsentHost(t *testing.T) {
	store := newTestStore(t)

	found, err := store.Contains(context.Background(), "example.com")

	if err != nil {
		t.Fatalf("Contains returned error: %v", err)
	}
	if found {
		t.Error("absent host should not be found")
	}
}

func TestAdd_DuplicateIsNoOp(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	entry, _ := domain.NewBlacklistEntry("en.wikipedia.org")
	if err := store.Add(ctx, entry); err != nil {
		t.Fatalf("first Add returned error: %v", err)
	}
	if err := store.Add(ctx, entry); err != nil {
		t.Errorf("re-adding an existing host returned error: %v", err)
	}
}

func TestAdd_NilEntry(t *testing.T) {
	store := newTestStore(t)

	if err := store.Add(context.Background(), nil); err == nil {
		t.Error("nil entry should be rejected")
	}
}

func TestContains_EmptyHost(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Contains(context.Background(), ""); err == nil {
		t.Error("empty host should be rejected")
	}
}

func TestPersistenceAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	ctx := context.Background()

	store, err := NewBlacklistStore(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	entry, _ := domain.NewBlacklistEntry("en.wikipedia.org")
	if err := store.Add(ctx, entry); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	store.Close()

	reopened, err := NewBlacklistStore(path)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	defer reopened.Close()

	found, err := reopened.Contains(ctx, "en.wikipedia.org")
	if err != nil {
		t.Fatalf("Contains returned error: %v", err)
	}
	if !found {
		t.Error("blacklist should survive a restart")
	}
}
