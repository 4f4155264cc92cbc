package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// migrations are idempotent and re-run on every startup in order.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS mood_entries (
		id          TEXT PRIMARY KEY,
		level       TEXT NOT NULL
		            CHECK(level IN ('great','good','okay','low','terrible')),
		note        TEXT NOT NULL DEFAULT '',
		recorded_at TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_mood_entries_recorded_at
		ON mood_entries(recorded_at)`,

	`CREATE TABLE IF NOT EXISTS journal_entries (
		id         TEXT PRIMARY KEY,
		content    TEXT NOT NULL,
		mood       TEXT NOT NULL DEFAULT '',
		prompt     TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_journal_entries_created_at
		ON journal_entries(created_at)`,

	`CREATE TABLE IF NOT EXISTS journal_tags (
		entry_id TEXT NOT NULL REFERENCES journal_entries(id) ON DELETE CASCADE,
		tag      TEXT NOT NULL,
		position INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (entry_id, tag)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_journal_tags_tag
		ON journal_tags(tag)`,

	`CREATE TABLE IF NOT EXISTS reminders (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		due_at      TEXT NOT NULL,
		recurrence  TEXT NOT NULL DEFAULT 'none'
		            CHECK(recurrence IN ('none','daily','weekly','monthly')),
		completed   INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reminders_due_at
		ON reminders(due_at)`,

	`CREATE TABLE IF NOT EXISTS exercise_logs (
		id            TEXT PRIMARY KEY,
		module_id     TEXT NOT NULL,
		exercise_name TEXT NOT NULL,
		completed_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_exercise_logs_module
		ON exercise_logs(module_id)`,

	`CREATE TABLE IF NOT EXISTS user_profile (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL DEFAULT '',
		country      TEXT NOT NULL DEFAULT '',
		checkin_hour INTEGER NOT NULL DEFAULT 9
	)`,
	`INSERT OR IGNORE INTO user_profile (id) VALUES ('default')`,
}
