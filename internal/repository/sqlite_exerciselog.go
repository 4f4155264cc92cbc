package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mwhelan/solace/internal/db"
	"github.com/mwhelan/solace/internal/domain"
)

// SQLiteExerciseLogRepo implements ExerciseLogRepo using a SQLite database.
type SQLiteExerciseLogRepo struct {
	db db.DBTX
}

// NewSQLiteExerciseLogRepo creates a new SQLiteExerciseLogRepo.
func NewSQLiteExerciseLogRepo(conn db.DBTX) *SQLiteExerciseLogRepo {
	return &SQLiteExerciseLogRepo{db: conn}
}

const exerciseLogColumns = `id, module_id, exercise_name, completed_at`

func (r *SQLiteExerciseLogRepo) Create(ctx context.Context, l *domain.ExerciseLog) error {
	query := `INSERT INTO exercise_logs (` + exerciseLogColumns + `) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		l.ID,
		l.ModuleID,
		l.ExerciseName,
		formatTime(l.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting exercise log: %w", err)
	}
	return nil
}

func (r *SQLiteExerciseLogRepo) ListByModule(ctx context.Context, moduleID string) ([]*domain.ExerciseLog, error) {
	query := `SELECT ` + exerciseLogColumns + ` FROM exercise_logs
		WHERE module_id = ? ORDER BY completed_at DESC`
	return r.queryLogs(ctx, query, moduleID)
}

func (r *SQLiteExerciseLogRepo) ListRecent(ctx context.Context, days int) ([]*domain.ExerciseLog, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	query := `SELECT ` + exerciseLogColumns + ` FROM exercise_logs
		WHERE completed_at >= ? ORDER BY completed_at DESC`
	return r.queryLogs(ctx, query, formatTime(cutoff))
}

func (r *SQLiteExerciseLogRepo) CountByModule(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT module_id, COUNT(*) FROM exercise_logs GROUP BY module_id`)
	if err != nil {
		return nil, fmt.Errorf("counting exercise logs: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var moduleID string
		var n int
		if err := rows.Scan(&moduleID, &n); err != nil {
			return nil, fmt.Errorf("scanning exercise count: %w", err)
		}
		counts[moduleID] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating exercise counts: %w", err)
	}
	return counts, nil
}

func (r *SQLiteExerciseLogRepo) queryLogs(ctx context.Context, query string, args ...any) ([]*domain.ExerciseLog, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing exercise logs: %w", err)
	}
	defer rows.Close()

	var logs []*domain.ExerciseLog
	for rows.Next() {
		l, err := scanExerciseLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating exercise logs: %w", err)
	}
	return logs, nil
}

func scanExerciseLog(rows *sql.Rows) (*domain.ExerciseLog, error) {
	var l domain.ExerciseLog
	var completedAt string
	if err := rows.Scan(&l.ID, &l.ModuleID, &l.ExerciseName, &completedAt); err != nil {
		return nil, fmt.Errorf("scanning exercise log: %w", err)
	}
	l.CompletedAt = parseTime(completedAt)
	return &l, nil
}
