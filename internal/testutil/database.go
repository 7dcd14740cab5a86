// Package testutil provides shared helpers for audit tests: throwaway
// databases and realistic reservation and message fixtures.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/service"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/storage"
)

// SetupTestDB creates a migrated SQLite database in a temp directory and
// registers cleanup with the test.
func SetupTestDB(t *testing.T) service.Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "entaudit-test.db")
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	return store
}
