package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mwhelan/solace/internal/analysis"
	"github.com/mwhelan/solace/internal/domain"
	"github.com/mwhelan/solace/internal/repository"
)

type journalService struct {
	entries  repository.JournalRepo
	analyzer *analysis.Analyzer
	observer UseCaseObserver
}

// NewJournalService creates the journaling service.
func NewJournalService(entries repository.JournalRepo, analyzer *analysis.Analyzer, observers ...UseCaseObserver) JournalService {
	return &journalService{
		entries:  entries,
		analyzer: analyzer,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *journalService) AddEntry(ctx context.Context, content string, mood domain.MoodLevel, prompt string, tags []string) (*domain.JournalEntry, error) {
	started := time.Now()

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("journal entry content is required")
	}

	// Tags are stored trimmed and deduplicated, preserving first-seen order.
	seen := map[string]bool{}
	var clean []string
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		key := strings.ToLower(tag)
		if tag == "" || seen[key] {
			continue
		}
		seen[key] = true
		clean = append(clean, tag)
	}

	entry := &domain.JournalEntry{
		ID:        uuid.New().String(),
		Content:   content,
		Mood:      mood,
		Prompt:    prompt,
		Tags:      clean,
		CreatedAt: time.Now().UTC(),
	}
	err := s.entries.Create(ctx, entry)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "journal.add_entry",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"tags": len(clean)},
		StartedAt: started,
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *journalService) GetEntry(ctx context.Context, id string) (*domain.JournalEntry, error) {
	return s.entries.GetByID(ctx, id)
}

func (s *journalService) ListEntries(ctx context.Context, limit int) ([]*domain.JournalEntry, error) {
	return s.entries.List(ctx, limit)
}

func (s *journalService) ListByTag(ctx context.Context, tag string) ([]*domain.JournalEntry, error) {
	return s.entries.ListByTag(ctx, tag)
}

func (s *journalService) Search(ctx context.Context, query string) ([]*domain.JournalEntry, error) {
	return s.entries.Search(ctx, strings.TrimSpace(query))
}

func (s *journalService) DeleteEntry(ctx context.Context, id string) error {
	return s.entries.Delete(ctx, id)
}

func (s *journalService) Stats(ctx context.Context) (*JournalStats, error) {
	entries, err := s.entries.List(ctx, 0)
	if err != nil {
		return nil, err
	}

	stats := &JournalStats{
		Count:      len(entries),
		StreakDays: journalStreak(entries, time.Now()),
	}
	if len(entries) == 0 {
		return stats, nil
	}

	// Entries come newest first.
	first := entries[len(entries)-1].CreatedAt
	stats.FirstEntry = &first

	moodCounts := make(map[domain.MoodLevel]int)
	tagCounts := make(map[string]int)
	tagCasing := make(map[string]string)
	for _, e := range entries {
		if e.Mood != "" {
			moodCounts[e.Mood]++
		}
		for _, tag := range e.Tags {
			key := strings.ToLower(tag)
			if _, ok := tagCasing[key]; !ok {
				tagCasing[key] = tag
			}
			tagCounts[key]++
		}
	}

	for mood, count := range moodCounts {
		if count > stats.CommonMoodCount ||
			(count == stats.CommonMoodCount && mood.Value() > stats.CommonMood.Value()) {
			stats.CommonMood = mood
			stats.CommonMoodCount = count
		}
	}

	tags := make([]TagCount, 0, len(tagCounts))
	for key, count := range tagCounts {
		tags = append(tags, TagCount{Tag: tagCasing[key], Count: count})
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Count != tags[j].Count {
			return tags[i].Count > tags[j].Count
		}
		return tags[i].Tag < tags[j].Tag
	})
	if len(tags) > 3 {
		tags = tags[:3]
	}
	stats.TopTags = tags

	return stats, nil
}

// journalStreak counts consecutive days with at least one entry, ending
// today. No entry today means no streak.
func journalStreak(entries []*domain.JournalEntry, now time.Time) int {
	days := make(map[string]bool, len(entries))
	for _, e := range entries {
		days[e.CreatedAt.Local().Format("2006-01-02")] = true
	}

	if !days[now.Format("2006-01-02")] {
		return 0
	}

	streak := 1
	for d := now.AddDate(0, 0, -1); days[d.Format("2006-01-02")]; d = d.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

func (s *journalService) SuggestPrompt(recentText string) string {
	return s.analyzer.SuggestPrompt(recentText)
}

func (s *journalService) SuggestMoodPrompt(level domain.MoodLevel) string {
	return s.analyzer.SuggestMoodPrompt(level.Value())
}
