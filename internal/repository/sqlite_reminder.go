package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mwhelan/solace/internal/db"
	"github.com/mwhelan/solace/internal/domain"
)

// SQLiteReminderRepo implements ReminderRepo using a SQLite database.
type SQLiteReminderRepo struct {
	db db.DBTX
}

// NewSQLiteReminderRepo creates a new SQLiteReminderRepo.
func NewSQLiteReminderRepo(conn db.DBTX) *SQLiteReminderRepo {
	return &SQLiteReminderRepo{db: conn}
}

const reminderColumns = `id, title, description, due_at, recurrence, completed, created_at`

func (r *SQLiteReminderRepo) Create(ctx context.Context, rem *domain.Reminder) error {
	query := `INSERT INTO reminders (` + reminderColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rem.ID,
		rem.Title,
		rem.Description,
		formatTime(rem.At),
		string(rem.Recurrence),
		boolToInt(rem.Completed),
		formatTime(rem.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting reminder: %w", err)
	}
	return nil
}

func (r *SQLiteReminderRepo) GetByID(ctx context.Context, id string) (*domain.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE id = ?`
	return r.scanReminder(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteReminderRepo) List(ctx context.Context, includeCompleted bool) ([]*domain.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders ORDER BY due_at`
	if !includeCompleted {
		query = `SELECT ` + reminderColumns + ` FROM reminders WHERE completed = 0 ORDER BY due_at`
	}
	return r.queryReminders(ctx, query)
}

func (r *SQLiteReminderRepo) ListDue(ctx context.Context, now time.Time) ([]*domain.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders
		WHERE completed = 0 AND due_at <= ? ORDER BY due_at`
	return r.queryReminders(ctx, query, formatTime(now))
}

func (r *SQLiteReminderRepo) Update(ctx context.Context, rem *domain.Reminder) error {
	query := `UPDATE reminders SET title = ?, description = ?, due_at = ?, recurrence = ?, completed = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		rem.Title,
		rem.Description,
		formatTime(rem.At),
		string(rem.Recurrence),
		boolToInt(rem.Completed),
		rem.ID,
	)
	if err != nil {
		return fmt.Errorf("updating reminder: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("reminder: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteReminderRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting reminder: %w", err)
	}
	return nil
}

func (r *SQLiteReminderRepo) queryReminders(ctx context.Context, query string, args ...any) ([]*domain.Reminder, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing reminders: %w", err)
	}
	defer rows.Close()

	var reminders []*domain.Reminder
	for rows.Next() {
		rem, err := r.scanReminderFromRows(rows)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reminders: %w", err)
	}
	return reminders, nil
}

func (r *SQLiteReminderRepo) scanReminder(row *sql.Row) (*domain.Reminder, error) {
	var rem domain.Reminder
	var dueAt, recurrence, createdAt string
	var completed int
	err := row.Scan(&rem.ID, &rem.Title, &rem.Description, &dueAt, &recurrence, &completed, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("reminder: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning reminder: %w", err)
	}
	rem.At = parseTime(dueAt)
	rem.Recurrence = domain.Recurrence(recurrence)
	rem.Completed = intToBool(completed)
	rem.CreatedAt = parseTime(createdAt)
	return &rem, nil
}

func (r *SQLiteReminderRepo) scanReminderFromRows(rows *sql.Rows) (*domain.Reminder, error) {
	var rem domain.Reminder
	var dueAt, recurrence, createdAt string
	var completed int
	if err := rows.Scan(&rem.ID, &rem.Title, &rem.Description, &dueAt, &recurrence, &completed, &createdAt); err != nil {
		return nil, fmt.Errorf("scanning reminder: %w", err)
	}
	rem.At = parseTime(dueAt)
	rem.Recurrence = domain.Recurrence(recurrence)
	rem.Completed = intToBool(completed)
	rem.CreatedAt = parseTime(createdAt)
	return &rem, nil
}
