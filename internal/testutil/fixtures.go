package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/mwhelan/solace/internal/domain"
)

// MoodEntry options
type MoodOption func(*domain.MoodEntry)

func WithMoodNote(note string) MoodOption {
	return func(m *domain.MoodEntry) {
		m.Note = note
	}
}

func WithRecordedAt(at time.Time) MoodOption {
	return func(m *domain.MoodEntry) {
		m.RecordedAt = at
	}
}

func NewTestMoodEntry(level domain.MoodLevel, opts ...MoodOption) *domain.MoodEntry {
	now := time.Now().UTC().Truncate(time.Second)
	m := &domain.MoodEntry{
		ID:         uuid.New().String(),
		Level:      level,
		RecordedAt: now,
		CreatedAt:  now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// JournalEntry options
type JournalOption func(*domain.JournalEntry)

func WithTags(tags ...string) JournalOption {
	return func(e *domain.JournalEntry) {
		e.Tags = tags
	}
}

func WithPrompt(prompt string) JournalOption {
	return func(e *domain.JournalEntry) {
		e.Prompt = prompt
	}
}

func WithJournalMood(level domain.MoodLevel) JournalOption {
	return func(e *domain.JournalEntry) {
		e.Mood = level
	}
}

func WithCreatedAt(at time.Time) JournalOption {
	return func(e *domain.JournalEntry) {
		e.CreatedAt = at
	}
}

func NewTestJournalEntry(content string, opts ...JournalOption) *domain.JournalEntry {
	e := &domain.JournalEntry{
		ID:        uuid.New().String(),
		Content:   content,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Reminder options
type ReminderOption func(*domain.Reminder)

func WithRecurrence(r domain.Recurrence) ReminderOption {
	return func(rem *domain.Reminder) {
		rem.Recurrence = r
	}
}

func WithDueAt(at time.Time) ReminderOption {
	return func(rem *domain.Reminder) {
		rem.At = at
	}
}

func WithCompleted() ReminderOption {
	return func(rem *domain.Reminder) {
		rem.Completed = true
	}
}

func NewTestReminder(title string, opts ...ReminderOption) *domain.Reminder {
	now := time.Now().UTC().Truncate(time.Second)
	rem := &domain.Reminder{
		ID:         uuid.New().String(),
		Title:      title,
		At:         now.Add(time.Hour),
		Recurrence: domain.RecurNone,
		CreatedAt:  now,
	}
	for _, opt := range opts {
		opt(rem)
	}
	return rem
}

func NewTestExerciseLog(moduleID, exerciseName string) *domain.ExerciseLog {
	return &domain.ExerciseLog{
		ID:           uuid.New().String(),
		ModuleID:     moduleID,
		ExerciseName: exerciseName,
		CompletedAt:  time.Now().UTC().Truncate(time.Second),
	}
}
