package testutil

import (
	"database/sql"
	"testing"

	"github.com/mwhelan/solace/internal/db"
)

// NewTestDB opens a fresh in-memory Solace database, fully migrated, and
// registers its cleanup with t. Every test gets its own isolated schema.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

// NewTestUoW wraps a test database in the real UnitOfWork implementation.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
