package service

import (
	"context"
	"testing"
	"time"

	"github.com/mwhelan/solace/internal/domain"
	"github.com/mwhelan/solace/internal/repository"
	"github.com/mwhelan/solace/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInsightFixture(t *testing.T) (InsightService, repository.MoodRepo, repository.JournalRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	moods := repository.NewSQLiteMoodRepo(database)
	journal := repository.NewSQLiteJournalRepo(database)
	return NewInsightService(moods, journal, newTestAnalyzer(1)), moods, journal
}

func seedMoods(t *testing.T, moods repository.MoodRepo, levels ...domain.MoodLevel) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()
	for i, level := range levels {
		entry := testutil.NewTestMoodEntry(level,
			testutil.WithRecordedAt(now.AddDate(0, 0, i-len(levels))))
		require.NoError(t, moods.Create(ctx, entry))
	}
}

func TestInsight_MoodSummary_Empty(t *testing.T) {
	svc, _, _ := newInsightFixture(t)

	summary, err := svc.MoodSummary(context.Background(), 30)
	require.NoError(t, err)
	assert.Zero(t, summary.Count)
	assert.Equal(t, domain.MoodOkay, summary.AverageLevel)
	assert.Equal(t, TrendSteady, summary.Trend)
}

func TestInsight_MoodSummary_Average(t *testing.T) {
	svc, moods, _ := newInsightFixture(t)
	seedMoods(t, moods, domain.MoodGreat, domain.MoodOkay, domain.MoodOkay, domain.MoodGreat)

	summary, err := svc.MoodSummary(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Count)
	assert.InDelta(t, 4.0, summary.Average, 1e-9)
	assert.Equal(t, domain.MoodGood, summary.AverageLevel)
	assert.Equal(t, 2, summary.ByLevel[domain.MoodGreat])
	assert.Equal(t, 2, summary.ByLevel[domain.MoodOkay])
}

func TestInsight_MoodSummary_ImprovingTrend(t *testing.T) {
	svc, moods, _ := newInsightFixture(t)
	seedMoods(t, moods, domain.MoodTerrible, domain.MoodLow, domain.MoodOkay, domain.MoodGood, domain.MoodGreat)

	summary, err := svc.MoodSummary(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, TrendImproving, summary.Trend)
}

func TestInsight_MoodSummary_DecliningTrend(t *testing.T) {
	svc, moods, _ := newInsightFixture(t)
	seedMoods(t, moods, domain.MoodGreat, domain.MoodGood, domain.MoodOkay, domain.MoodLow, domain.MoodTerrible)

	summary, err := svc.MoodSummary(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, TrendDeclining, summary.Trend)
}

func TestInsight_MoodSummary_SmallShiftIsSteady(t *testing.T) {
	svc, moods, _ := newInsightFixture(t)
	seedMoods(t, moods, domain.MoodOkay, domain.MoodOkay, domain.MoodOkay,
		domain.MoodOkay, domain.MoodOkay, domain.MoodGood)

	summary, err := svc.MoodSummary(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, TrendSteady, summary.Trend, "one good day at the end should not flip the trend")
}

func TestInsight_MoodSummary_TrendAveragesSameDay(t *testing.T) {
	svc, moods, _ := newInsightFixture(t)
	ctx := context.Background()
	now := time.Now().UTC()

	// Two flat days, then a volatile day whose average is still okay.
	byDay := map[int][]domain.MoodLevel{
		-3: {domain.MoodLow},
		-2: {domain.MoodLow},
		-1: {domain.MoodGreat, domain.MoodTerrible, domain.MoodTerrible, domain.MoodTerrible},
	}
	for offset, levels := range byDay {
		for _, level := range levels {
			entry := testutil.NewTestMoodEntry(level,
				testutil.WithRecordedAt(now.AddDate(0, 0, offset)))
			require.NoError(t, moods.Create(ctx, entry))
		}
	}

	summary, err := svc.MoodSummary(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, TrendSteady, summary.Trend, "days are averaged before comparing halves")
}

func TestInsight_MoodSummary_SteadyWithFewEntries(t *testing.T) {
	svc, moods, _ := newInsightFixture(t)
	seedMoods(t, moods, domain.MoodTerrible, domain.MoodGreat)

	summary, err := svc.MoodSummary(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, TrendSteady, summary.Trend, "two points are not a trend")
}

func TestInsight_TopTopics(t *testing.T) {
	svc, _, journal := newInsightFixture(t)
	ctx := context.Background()

	entries := []string{
		"work deadlines kept me up",
		"more work again, plus the garden",
		"the garden is a nice break from work",
	}
	for _, content := range entries {
		require.NoError(t, journal.Create(ctx, testutil.NewTestJournalEntry(content)))
	}

	topics, err := svc.TopTopics(ctx, 30, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"work", "garden"}, topics)
}

func TestInsight_TopTopics_NoEntries(t *testing.T) {
	svc, _, _ := newInsightFixture(t)

	topics, err := svc.TopTopics(context.Background(), 30, 3)
	require.NoError(t, err)
	assert.Empty(t, topics)
}
