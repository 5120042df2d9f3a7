package db

import (
	"os"
	"path/filepath"
	"testing"

	"gorm.io/gorm/logger"
)

// testStore creates a Store backed by a temporary SQLite database. Migrations
// run as part of NewStore, so the schema is ready for use.
func testStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := NewStore(Config{
		Driver:   "sqlite",
		DSN:      dbPath,
		MaxConns: 1,
		LogLevel: logger.Silent,
	})
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
		_ = os.Remove(dbPath)
	})

	return store
}
