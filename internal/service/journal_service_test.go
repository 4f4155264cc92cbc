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

func newJournalService(t *testing.T) JournalService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewJournalService(repository.NewSQLiteJournalRepo(database), newTestAnalyzer(1))
}

func TestJournal_AddEntry(t *testing.T) {
	svc := newJournalService(t)
	ctx := context.Background()

	entry, err := svc.AddEntry(ctx, "wrote in the garden today", domain.MoodGood,
		"What felt peaceful today?", []string{"garden", "outdoors"})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)

	fetched, err := svc.GetEntry(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "wrote in the garden today", fetched.Content)
	assert.Equal(t, []string{"garden", "outdoors"}, fetched.Tags)
}

func TestJournal_AddEntry_EmptyContent(t *testing.T) {
	svc := newJournalService(t)

	_, err := svc.AddEntry(context.Background(), "   ", "", "", nil)
	assert.Error(t, err)
}

func TestJournal_AddEntry_DeduplicatesTags(t *testing.T) {
	svc := newJournalService(t)

	entry, err := svc.AddEntry(context.Background(), "tagged twice", "", "",
		[]string{"Calm", "calm", " calm ", "", "walk"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Calm", "walk"}, entry.Tags)
}

func TestJournal_SearchAndListByTag(t *testing.T) {
	svc := newJournalService(t)
	ctx := context.Background()

	_, err := svc.AddEntry(ctx, "deadlines piling up at work", "", "", []string{"work"})
	require.NoError(t, err)
	_, err = svc.AddEntry(ctx, "slow weekend morning", "", "", []string{"rest"})
	require.NoError(t, err)

	found, err := svc.Search(ctx, "deadlines")
	require.NoError(t, err)
	require.Len(t, found, 1)

	tagged, err := svc.ListByTag(ctx, "WORK")
	require.NoError(t, err)
	require.Len(t, tagged, 1)
	assert.Equal(t, found[0].ID, tagged[0].ID)
}

func TestJournal_DeleteEntry(t *testing.T) {
	svc := newJournalService(t)
	ctx := context.Background()

	entry, err := svc.AddEntry(ctx, "temporary", "", "", nil)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteEntry(ctx, entry.ID))

	_, err = svc.GetEntry(ctx, entry.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestJournal_SuggestPrompt(t *testing.T) {
	svc := newJournalService(t)

	assert.NotEmpty(t, svc.SuggestPrompt("can't sleep lately"))
	assert.NotEmpty(t, svc.SuggestMoodPrompt(domain.MoodTerrible))
}

func TestJournal_Stats_Empty(t *testing.T) {
	svc := newJournalService(t)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Count)
	assert.Equal(t, 0, stats.StreakDays)
	assert.Nil(t, stats.FirstEntry)
}

func TestJournal_Stats(t *testing.T) {
	svc := newJournalService(t)
	ctx := context.Background()

	_, err := svc.AddEntry(ctx, "a walk in the park", domain.MoodGood, "", []string{"walk", "park"})
	require.NoError(t, err)
	_, err = svc.AddEntry(ctx, "rough meeting", domain.MoodLow, "", []string{"work"})
	require.NoError(t, err)
	_, err = svc.AddEntry(ctx, "better afternoon", domain.MoodGood, "", []string{"work", "walk"})
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Count)
	require.NotNil(t, stats.FirstEntry)
	assert.Equal(t, domain.MoodGood, stats.CommonMood)
	assert.Equal(t, 2, stats.CommonMoodCount)
	// All entries were written today.
	assert.Equal(t, 1, stats.StreakDays)

	require.Len(t, stats.TopTags, 3)
	assert.Equal(t, TagCount{Tag: "walk", Count: 2}, stats.TopTags[0])
	assert.Equal(t, TagCount{Tag: "work", Count: 2}, stats.TopTags[1])
	assert.Equal(t, TagCount{Tag: "park", Count: 1}, stats.TopTags[2])
}

func TestJournalStreak(t *testing.T) {
	now := time.Date(2026, 8, 30, 20, 0, 0, 0, time.Local)
	day := func(offset int) *domain.JournalEntry {
		return &domain.JournalEntry{CreatedAt: now.AddDate(0, 0, offset)}
	}

	assert.Equal(t, 0, journalStreak(nil, now))
	assert.Equal(t, 0, journalStreak([]*domain.JournalEntry{day(-1)}, now))
	assert.Equal(t, 1, journalStreak([]*domain.JournalEntry{day(0)}, now))
	assert.Equal(t, 3, journalStreak([]*domain.JournalEntry{day(0), day(-1), day(-2)}, now))
	// A gap breaks the streak.
	assert.Equal(t, 2, journalStreak([]*domain.JournalEntry{day(0), day(-1), day(-3)}, now))
}
