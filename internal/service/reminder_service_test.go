package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mwhelan/solace/internal/domain"
	"github.com/mwhelan/solace/internal/repository"
	"github.com/mwhelan/solace/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReminderService(t *testing.T) (ReminderService, repository.ReminderRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteReminderRepo(database)
	return NewReminderService(repo, testutil.NewTestUoW(database)), repo
}

func TestReminder_AddAndList(t *testing.T) {
	svc, _ := newReminderService(t)
	ctx := context.Background()

	rem, err := svc.Add(ctx, "Evening walk", "20 minutes outside",
		time.Now().Add(time.Hour), domain.RecurDaily)
	require.NoError(t, err)
	assert.NotEmpty(t, rem.ID)

	all, err := svc.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Evening walk", all[0].Title)
}

func TestReminder_Add_Invalid(t *testing.T) {
	svc, _ := newReminderService(t)

	_, err := svc.Add(context.Background(), "", "", time.Now(), domain.RecurNone)
	assert.Error(t, err)
}

func TestReminder_Due(t *testing.T) {
	svc, _ := newReminderService(t)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := svc.Add(ctx, "overdue", "", now.Add(-time.Hour), domain.RecurNone)
	require.NoError(t, err)
	_, err = svc.Add(ctx, "upcoming", "", now.Add(time.Hour), domain.RecurNone)
	require.NoError(t, err)

	due, err := svc.Due(ctx, now)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "overdue", due[0].Title)
}

func TestReminder_Complete_OneShot(t *testing.T) {
	svc, repo := newReminderService(t)
	ctx := context.Background()

	rem, err := svc.Add(ctx, "one-shot", "", time.Now(), domain.RecurNone)
	require.NoError(t, err)

	next, err := svc.Complete(ctx, rem.ID)
	require.NoError(t, err)
	assert.Nil(t, next)

	fetched, err := repo.GetByID(ctx, rem.ID)
	require.NoError(t, err)
	assert.True(t, fetched.Completed)
}

func TestReminder_Complete_RecurringRollsOver(t *testing.T) {
	svc, repo := newReminderService(t)
	ctx := context.Background()
	at := time.Now().UTC().Truncate(time.Second)

	rem, err := svc.Add(ctx, "weekly review", "look back at the week", at, domain.RecurWeekly)
	require.NoError(t, err)

	next, err := svc.Complete(ctx, rem.ID)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.NotEqual(t, rem.ID, next.ID)
	assert.Equal(t, "weekly review", next.Title)
	assert.Equal(t, domain.RecurWeekly, next.Recurrence)
	assert.True(t, next.At.Equal(at.AddDate(0, 0, 7)))
	assert.False(t, next.Completed)

	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestReminder_Complete_NotFound(t *testing.T) {
	svc, _ := newReminderService(t)

	_, err := svc.Complete(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestReminder_Complete_RollbackOnRolloverFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteReminderRepo(database)

	boom := errors.New("boom")
	// Exec 1 is the completion UPDATE, exec 2 the rollover INSERT.
	svc := NewReminderService(repo, &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: boom})
	ctx := context.Background()

	rem, err := svc.Add(ctx, "daily stretch", "", time.Now().UTC(), domain.RecurDaily)
	require.NoError(t, err)

	_, err = svc.Complete(ctx, rem.ID)
	require.Error(t, err)

	// The completion must have rolled back with the failed insert.
	fetched, err := repo.GetByID(ctx, rem.ID)
	require.NoError(t, err)
	assert.False(t, fetched.Completed)

	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestReminder_Delete(t *testing.T) {
	svc, _ := newReminderService(t)
	ctx := context.Background()

	rem, err := svc.Add(ctx, "short-lived", "", time.Now(), domain.RecurNone)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, rem.ID))

	all, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestReminder_Suggestions(t *testing.T) {
	svc, _ := newReminderService(t)

	suggestions := svc.Suggestions()
	require.NotEmpty(t, suggestions)

	titles := make(map[string]bool)
	for _, s := range suggestions {
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.Description)
		titles[s.Title] = true
	}
	assert.True(t, titles["Daily Mood Check-in"])
	assert.True(t, titles["Weekly Journal Session"])
}

func TestReminder_SuggestCheckInTime_NoHistory(t *testing.T) {
	svc, _ := newReminderService(t)
	now := time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC)

	got, err := svc.SuggestCheckInTime(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC), got)
}

func TestReminder_SuggestCheckInTime_FollowsCommonHour(t *testing.T) {
	svc, _ := newReminderService(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)

	for _, day := range []int{1, 2, 3} {
		_, err := svc.Add(ctx, "wind down", "",
			time.Date(2026, 9, day, 19, 0, 0, 0, time.UTC), domain.RecurNone)
		require.NoError(t, err)
	}

	got, err := svc.SuggestCheckInTime(ctx, now)
	require.NoError(t, err)

	assert.Equal(t, 19, got.Hour())
	assert.Equal(t, 31, got.Day())
}

func TestReminder_SuggestCheckInTime_KeepsLocalHour(t *testing.T) {
	svc, _ := newReminderService(t)
	ctx := context.Background()
	zone := time.FixedZone("UTC+5", 5*60*60)
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, zone)

	// 9am in the user's zone is 04:00 UTC in storage.
	for _, day := range []int{1, 2, 3} {
		_, err := svc.Add(ctx, "morning pages", "",
			time.Date(2026, 9, day, 9, 0, 0, 0, zone), domain.RecurNone)
		require.NoError(t, err)
	}

	got, err := svc.SuggestCheckInTime(ctx, now)
	require.NoError(t, err)

	assert.Equal(t, zone, got.Location())
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 31, got.Day())
}
