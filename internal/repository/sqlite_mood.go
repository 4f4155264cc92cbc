package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mwhelan/solace/internal/db"
	"github.com/mwhelan/solace/internal/domain"
)

// SQLiteMoodRepo implements MoodRepo using a SQLite database.
type SQLiteMoodRepo struct {
	db db.DBTX
}

// NewSQLiteMoodRepo creates a new SQLiteMoodRepo.
func NewSQLiteMoodRepo(conn db.DBTX) *SQLiteMoodRepo {
	return &SQLiteMoodRepo{db: conn}
}

const moodColumns = `id, level, note, recorded_at, created_at`

func (r *SQLiteMoodRepo) Create(ctx context.Context, m *domain.MoodEntry) error {
	query := `INSERT INTO mood_entries (` + moodColumns + `) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		string(m.Level),
		m.Note,
		formatTime(m.RecordedAt),
		formatTime(m.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting mood entry: %w", err)
	}
	return nil
}

func (r *SQLiteMoodRepo) GetByID(ctx context.Context, id string) (*domain.MoodEntry, error) {
	query := `SELECT ` + moodColumns + ` FROM mood_entries WHERE id = ?`
	return r.scanMood(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteMoodRepo) ListRecent(ctx context.Context, days int) ([]*domain.MoodEntry, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	return r.ListRange(ctx, cutoff, time.Now().UTC())
}

func (r *SQLiteMoodRepo) ListRange(ctx context.Context, from, to time.Time) ([]*domain.MoodEntry, error) {
	query := `SELECT ` + moodColumns + ` FROM mood_entries
		WHERE recorded_at >= ? AND recorded_at <= ? ORDER BY recorded_at`
	rows, err := r.db.QueryContext(ctx, query, formatTime(from), formatTime(to))
	if err != nil {
		return nil, fmt.Errorf("listing mood entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.MoodEntry
	for rows.Next() {
		m, err := r.scanMoodFromRows(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mood entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteMoodRepo) Latest(ctx context.Context) (*domain.MoodEntry, error) {
	query := `SELECT ` + moodColumns + ` FROM mood_entries ORDER BY recorded_at DESC LIMIT 1`
	return r.scanMood(r.db.QueryRowContext(ctx, query))
}

func (r *SQLiteMoodRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM mood_entries WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting mood entry: %w", err)
	}
	return nil
}

func (r *SQLiteMoodRepo) scanMood(row *sql.Row) (*domain.MoodEntry, error) {
	var m domain.MoodEntry
	var level, recordedAt, createdAt string
	err := row.Scan(&m.ID, &level, &m.Note, &recordedAt, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("mood entry: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning mood entry: %w", err)
	}
	m.Level = domain.MoodLevel(level)
	m.RecordedAt = parseTime(recordedAt)
	m.CreatedAt = parseTime(createdAt)
	return &m, nil
}

func (r *SQLiteMoodRepo) scanMoodFromRows(rows *sql.Rows) (*domain.MoodEntry, error) {
	var m domain.MoodEntry
	var level, recordedAt, createdAt string
	if err := rows.Scan(&m.ID, &level, &m.Note, &recordedAt, &createdAt); err != nil {
		return nil, fmt.Errorf("scanning mood entry: %w", err)
	}
	m.Level = domain.MoodLevel(level)
	m.RecordedAt = parseTime(recordedAt)
	m.CreatedAt = parseTime(createdAt)
	return &m, nil
}
