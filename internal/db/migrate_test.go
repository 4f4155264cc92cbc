package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Run migrations a second time — should succeed without error.
	err := Migrate(db)
	require.NoError(t, err)

	// Third time for good measure.
	err = Migrate(db)
	require.NoError(t, err)
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"mood_entries", "journal_entries", "journal_tags", "reminders", "exercise_logs", "user_profile"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_MoodLevelConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(
		`INSERT INTO mood_entries (id, level, recorded_at, created_at) VALUES (?, ?, ?, ?)`,
		"m1", "ecstatic", "2026-01-01T00:00:00Z", "2026-01-01T00:00:00Z")
	assert.Error(t, err, "level outside the enum should be rejected")
}

func TestMigrate_TagCascadeDelete(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(
		`INSERT INTO journal_entries (id, content, created_at) VALUES (?, ?, ?)`,
		"j1", "a quiet day", "2026-01-01T00:00:00Z")
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO journal_tags (entry_id, tag) VALUES (?, ?)`, "j1", "calm")
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM journal_entries WHERE id = ?`, "j1")
	require.NoError(t, err)

	var n int
	err = db.QueryRow(`SELECT COUNT(*) FROM journal_tags WHERE entry_id = ?`, "j1").Scan(&n)
	require.NoError(t, err)
	assert.Zero(t, n, "tags should cascade with their entry")
}
