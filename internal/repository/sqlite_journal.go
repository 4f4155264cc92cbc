package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mwhelan/solace/internal/db"
	"github.com/mwhelan/solace/internal/domain"
)

// SQLiteJournalRepo implements JournalRepo using a SQLite database. Tags live
// in a child table and are loaded alongside each entry.
type SQLiteJournalRepo struct {
	db db.DBTX
}

// NewSQLiteJournalRepo creates a new SQLiteJournalRepo.
func NewSQLiteJournalRepo(conn db.DBTX) *SQLiteJournalRepo {
	return &SQLiteJournalRepo{db: conn}
}

const journalColumns = `id, content, mood, prompt, created_at`

func (r *SQLiteJournalRepo) Create(ctx context.Context, e *domain.JournalEntry) error {
	query := `INSERT INTO journal_entries (` + journalColumns + `) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Content,
		string(e.Mood),
		e.Prompt,
		formatTime(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting journal entry: %w", err)
	}
	for i, tag := range e.Tags {
		_, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO journal_tags (entry_id, tag, position) VALUES (?, ?, ?)`,
			e.ID, tag, i)
		if err != nil {
			return fmt.Errorf("inserting journal tag: %w", err)
		}
	}
	return nil
}

func (r *SQLiteJournalRepo) GetByID(ctx context.Context, id string) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalColumns + ` FROM journal_entries WHERE id = ?`
	e, err := r.scanEntry(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if err := r.loadTags(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *SQLiteJournalRepo) List(ctx context.Context, limit int) ([]*domain.JournalEntry, error) {
	query := `SELECT ` + journalColumns + ` FROM journal_entries ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	return r.queryEntries(ctx, query, args...)
}

func (r *SQLiteJournalRepo) ListByTag(ctx context.Context, tag string) ([]*domain.JournalEntry, error) {
	query := `SELECT ` + journalColumns + ` FROM journal_entries
		WHERE id IN (SELECT entry_id FROM journal_tags WHERE tag = ? COLLATE NOCASE)
		ORDER BY created_at DESC`
	return r.queryEntries(ctx, query, tag)
}

func (r *SQLiteJournalRepo) Search(ctx context.Context, query string) ([]*domain.JournalEntry, error) {
	if query == "" {
		return nil, nil
	}
	like := "%" + query + "%"
	stmt := `SELECT ` + journalColumns + ` FROM journal_entries
		WHERE content LIKE ? COLLATE NOCASE
		   OR prompt LIKE ? COLLATE NOCASE
		   OR id IN (SELECT entry_id FROM journal_tags WHERE tag LIKE ? COLLATE NOCASE)
		ORDER BY created_at DESC`
	return r.queryEntries(ctx, stmt, like, like, like)
}

func (r *SQLiteJournalRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM journal_entries WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting journal entry: %w", err)
	}
	return nil
}

func (r *SQLiteJournalRepo) queryEntries(ctx context.Context, query string, args ...any) ([]*domain.JournalEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing journal entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.JournalEntry
	for rows.Next() {
		e, err := r.scanEntryFromRows(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating journal entries: %w", err)
	}
	for _, e := range entries {
		if err := r.loadTags(ctx, e); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

func (r *SQLiteJournalRepo) loadTags(ctx context.Context, e *domain.JournalEntry) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT tag FROM journal_tags WHERE entry_id = ? ORDER BY position`, e.ID)
	if err != nil {
		return fmt.Errorf("loading journal tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return fmt.Errorf("scanning journal tag: %w", err)
		}
		e.Tags = append(e.Tags, tag)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating journal tags: %w", err)
	}
	return nil
}

func (r *SQLiteJournalRepo) scanEntry(row *sql.Row) (*domain.JournalEntry, error) {
	var e domain.JournalEntry
	var mood, createdAt string
	err := row.Scan(&e.ID, &e.Content, &mood, &e.Prompt, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("journal entry: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning journal entry: %w", err)
	}
	e.Mood = domain.MoodLevel(mood)
	e.CreatedAt = parseTime(createdAt)
	return &e, nil
}

func (r *SQLiteJournalRepo) scanEntryFromRows(rows *sql.Rows) (*domain.JournalEntry, error) {
	var e domain.JournalEntry
	var mood, createdAt string
	if err := rows.Scan(&e.ID, &e.Content, &mood, &e.Prompt, &createdAt); err != nil {
		return nil, fmt.Errorf("scanning journal entry: %w", err)
	}
	e.Mood = domain.MoodLevel(mood)
	e.CreatedAt = parseTime(createdAt)
	return &e, nil
}
