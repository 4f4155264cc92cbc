package service

import (
	"context"
	"time"

	"github.com/mwhelan/solace/internal/domain"
	"github.com/mwhelan/solace/internal/exercises"
)

// CheckInResult bundles everything the daily check-in flow shows after a mood
// is recorded.
type CheckInResult struct {
	Entry    *domain.MoodEntry
	Response string // supportive reply to the note, empty when no note
	Prompt   string // journal prompt suggestion matching the mood
}

type CheckInService interface {
	RecordMood(ctx context.Context, level domain.MoodLevel, note string) (*CheckInResult, error)
	LatestMood(ctx context.Context) (*domain.MoodEntry, error)
	Profile(ctx context.Context) (*domain.UserProfile, error)
	SaveProfile(ctx context.Context, p *domain.UserProfile) error
}

// TagCount pairs a tag with how many entries carry it.
type TagCount struct {
	Tag   string
	Count int
}

// JournalStats summarizes the whole journal.
type JournalStats struct {
	Count           int
	FirstEntry      *time.Time
	StreakDays      int // consecutive days journaled, 0 unless there is an entry today
	CommonMood      domain.MoodLevel // empty when no entry carries a mood
	CommonMoodCount int
	TopTags         []TagCount // at most 3, by count
}

type JournalService interface {
	AddEntry(ctx context.Context, content string, mood domain.MoodLevel, prompt string, tags []string) (*domain.JournalEntry, error)
	GetEntry(ctx context.Context, id string) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, limit int) ([]*domain.JournalEntry, error)
	ListByTag(ctx context.Context, tag string) ([]*domain.JournalEntry, error)
	Search(ctx context.Context, query string) ([]*domain.JournalEntry, error)
	DeleteEntry(ctx context.Context, id string) error
	Stats(ctx context.Context) (*JournalStats, error)
	SuggestPrompt(recentText string) string
	SuggestMoodPrompt(level domain.MoodLevel) string
}

// ReminderSuggestion is a self-care reminder template offered to the user.
type ReminderSuggestion struct {
	Title       string
	Description string
	Recurrence  domain.Recurrence
}

type ReminderService interface {
	Add(ctx context.Context, title, description string, at time.Time, recurrence domain.Recurrence) (*domain.Reminder, error)
	List(ctx context.Context, includeCompleted bool) ([]*domain.Reminder, error)
	Due(ctx context.Context, now time.Time) ([]*domain.Reminder, error)
	Complete(ctx context.Context, id string) (*domain.Reminder, error)
	Delete(ctx context.Context, id string) error
	Suggestions() []ReminderSuggestion
	SuggestCheckInTime(ctx context.Context, now time.Time) (time.Time, error)
}

// Trend summarizes the direction of a mood series.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendSteady    Trend = "steady"
)

// MoodSummary aggregates mood entries over a reporting window.
type MoodSummary struct {
	Days         int
	Count        int
	Average      float64 // mean of numeric mood values, 0 when empty
	AverageLevel domain.MoodLevel
	Trend        Trend
	ByLevel      map[domain.MoodLevel]int
	Entries      []*domain.MoodEntry
}

type InsightService interface {
	MoodSummary(ctx context.Context, days int) (*MoodSummary, error)
	TopTopics(ctx context.Context, days, limit int) ([]string, error)
}

// ModuleProgress summarizes completion history for one exercise module.
type ModuleProgress struct {
	ModuleID        string
	TotalCompleted  int
	UniqueExercises int
	LastSession     *time.Time
	RecentCount     int // completions in the past 7 days
}

type ExerciseService interface {
	Modules() []exercises.Module
	RandomExercise(moduleID string) (*exercises.Exercise, error)
	LogCompletion(ctx context.Context, moduleID, exerciseName string) (*domain.ExerciseLog, error)
	Progress(ctx context.Context, moduleID string) (*ModuleProgress, error)
}
