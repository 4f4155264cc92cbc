package repository

import (
	"context"
	"time"

	"github.com/mwhelan/solace/internal/domain"
)

type MoodRepo interface {
	Create(ctx context.Context, m *domain.MoodEntry) error
	GetByID(ctx context.Context, id string) (*domain.MoodEntry, error)
	ListRecent(ctx context.Context, days int) ([]*domain.MoodEntry, error)
	ListRange(ctx context.Context, from, to time.Time) ([]*domain.MoodEntry, error)
	Latest(ctx context.Context) (*domain.MoodEntry, error)
	Delete(ctx context.Context, id string) error
}

type JournalRepo interface {
	Create(ctx context.Context, e *domain.JournalEntry) error
	GetByID(ctx context.Context, id string) (*domain.JournalEntry, error)
	List(ctx context.Context, limit int) ([]*domain.JournalEntry, error)
	ListByTag(ctx context.Context, tag string) ([]*domain.JournalEntry, error)
	Search(ctx context.Context, query string) ([]*domain.JournalEntry, error)
	Delete(ctx context.Context, id string) error
}

type ReminderRepo interface {
	Create(ctx context.Context, r *domain.Reminder) error
	GetByID(ctx context.Context, id string) (*domain.Reminder, error)
	List(ctx context.Context, includeCompleted bool) ([]*domain.Reminder, error)
	ListDue(ctx context.Context, now time.Time) ([]*domain.Reminder, error)
	Update(ctx context.Context, r *domain.Reminder) error
	Delete(ctx context.Context, id string) error
}

type ExerciseLogRepo interface {
	Create(ctx context.Context, l *domain.ExerciseLog) error
	ListByModule(ctx context.Context, moduleID string) ([]*domain.ExerciseLog, error)
	ListRecent(ctx context.Context, days int) ([]*domain.ExerciseLog, error)
	CountByModule(ctx context.Context) (map[string]int, error)
}

type UserProfileRepo interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Upsert(ctx context.Context, p *domain.UserProfile) error
}
