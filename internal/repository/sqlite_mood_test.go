package repository

import (
	"context"
	"testing"
	"time"

	"github.com/mwhelan/solace/internal/domain"
	"github.com/mwhelan/solace/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoodRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteMoodRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	entry := testutil.NewTestMoodEntry(domain.MoodGood, testutil.WithMoodNote("sunny walk"))
	require.NoError(t, repo.Create(ctx, entry))

	fetched, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, fetched.ID)
	assert.Equal(t, domain.MoodGood, fetched.Level)
	assert.Equal(t, "sunny walk", fetched.Note)
	assert.True(t, entry.RecordedAt.Equal(fetched.RecordedAt))
}

func TestMoodRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteMoodRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMoodRepo_ListRange_OrderedByRecordedAt(t *testing.T) {
	repo := NewSQLiteMoodRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	older := testutil.NewTestMoodEntry(domain.MoodLow, testutil.WithRecordedAt(now.AddDate(0, 0, -3)))
	newer := testutil.NewTestMoodEntry(domain.MoodGreat, testutil.WithRecordedAt(now.AddDate(0, 0, -1)))
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, older))

	entries, err := repo.ListRange(ctx, now.AddDate(0, 0, -7), now)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, older.ID, entries[0].ID)
	assert.Equal(t, newer.ID, entries[1].ID)
}

func TestMoodRepo_ListRecent_ExcludesOld(t *testing.T) {
	repo := NewSQLiteMoodRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	recent := testutil.NewTestMoodEntry(domain.MoodOkay, testutil.WithRecordedAt(now.AddDate(0, 0, -2)))
	old := testutil.NewTestMoodEntry(domain.MoodOkay, testutil.WithRecordedAt(now.AddDate(0, 0, -30)))
	require.NoError(t, repo.Create(ctx, recent))
	require.NoError(t, repo.Create(ctx, old))

	entries, err := repo.ListRecent(ctx, 7)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, recent.ID, entries[0].ID)
}

func TestMoodRepo_Latest(t *testing.T) {
	repo := NewSQLiteMoodRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	first := testutil.NewTestMoodEntry(domain.MoodLow, testutil.WithRecordedAt(now.AddDate(0, 0, -2)))
	second := testutil.NewTestMoodEntry(domain.MoodGood, testutil.WithRecordedAt(now.AddDate(0, 0, -1)))
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
}

func TestMoodRepo_Latest_Empty(t *testing.T) {
	repo := NewSQLiteMoodRepo(testutil.NewTestDB(t))

	_, err := repo.Latest(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMoodRepo_Delete(t *testing.T) {
	repo := NewSQLiteMoodRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	entry := testutil.NewTestMoodEntry(domain.MoodTerrible)
	require.NoError(t, repo.Create(ctx, entry))
	require.NoError(t, repo.Delete(ctx, entry.ID))

	_, err := repo.GetByID(ctx, entry.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMoodRepo_InvalidLevelRejected(t *testing.T) {
	repo := NewSQLiteMoodRepo(testutil.NewTestDB(t))

	entry := testutil.NewTestMoodEntry(domain.MoodLevel("ecstatic"))
	err := repo.Create(context.Background(), entry)
	assert.Error(t, err)
}
