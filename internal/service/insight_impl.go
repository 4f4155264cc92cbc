package service

import (
	"context"
	"strings"

	"github.com/mwhelan/solace/internal/analysis"
	"github.com/mwhelan/solace/internal/domain"
	"github.com/mwhelan/solace/internal/repository"
	"gonum.org/v1/gonum/stat"
)

// trendDelta is the minimum difference between half-window daily means
// treated as a real direction rather than noise.
const trendDelta = 0.5

type insightService struct {
	moods    repository.MoodRepo
	journal  repository.JournalRepo
	analyzer *analysis.Analyzer
}

// NewInsightService creates the mood insight service.
func NewInsightService(moods repository.MoodRepo, journal repository.JournalRepo, analyzer *analysis.Analyzer) InsightService {
	return &insightService{moods: moods, journal: journal, analyzer: analyzer}
}

func (s *insightService) MoodSummary(ctx context.Context, days int) (*MoodSummary, error) {
	entries, err := s.moods.ListRecent(ctx, days)
	if err != nil {
		return nil, err
	}

	summary := &MoodSummary{
		Days:    days,
		Count:   len(entries),
		ByLevel: make(map[domain.MoodLevel]int),
		Entries: entries,
	}
	if len(entries) == 0 {
		summary.AverageLevel = domain.MoodOkay
		summary.Trend = TrendSteady
		return summary, nil
	}

	values := make([]float64, len(entries))
	for i, e := range entries {
		values[i] = float64(e.Level.Value())
		summary.ByLevel[e.Level]++
	}

	summary.Average = stat.Mean(values, nil)
	summary.AverageLevel = domain.MoodLevelFromValue(int(summary.Average + 0.5))
	summary.Trend = moodTrend(entries)
	return summary, nil
}

// moodTrend compares the first and second half of the window's daily mood
// averages. Entries arrive ordered oldest first; fewer than three distinct
// days is too little signal to call a direction.
func moodTrend(entries []*domain.MoodEntry) Trend {
	var days []string
	byDay := make(map[string][]float64)
	for _, e := range entries {
		day := e.RecordedAt.Format("2006-01-02")
		if _, ok := byDay[day]; !ok {
			days = append(days, day)
		}
		byDay[day] = append(byDay[day], float64(e.Level.Value()))
	}
	if len(days) < 3 {
		return TrendSteady
	}

	means := make([]float64, len(days))
	for i, day := range days {
		means[i] = stat.Mean(byDay[day], nil)
	}
	half := len(means) / 2
	delta := stat.Mean(means[half:], nil) - stat.Mean(means[:half], nil)
	switch {
	case delta > trendDelta:
		return TrendImproving
	case delta < -trendDelta:
		return TrendDeclining
	default:
		return TrendSteady
	}
}

func (s *insightService) TopTopics(ctx context.Context, days, limit int) ([]string, error) {
	entries, err := s.journal.List(ctx, 0)
	if err != nil {
		return nil, err
	}

	cutoff := cutoffDays(days)
	var texts []string
	for _, e := range entries {
		if days > 0 && e.CreatedAt.Before(cutoff) {
			continue
		}
		texts = append(texts, e.Content)
	}
	if len(texts) == 0 {
		return nil, nil
	}
	return s.analyzer.ExtractTopics(strings.Join(texts, " "), limit), nil
}
