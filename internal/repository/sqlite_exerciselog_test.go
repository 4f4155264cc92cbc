package repository

import (
	"context"
	"testing"
	"time"

	"github.com/mwhelan/solace/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExerciseLogRepo_CreateAndListByModule(t *testing.T) {
	repo := NewSQLiteExerciseLogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	log := testutil.NewTestExerciseLog("anxiety", "Box Breathing")
	other := testutil.NewTestExerciseLog("stress", "Priority Matrix")
	require.NoError(t, repo.Create(ctx, log))
	require.NoError(t, repo.Create(ctx, other))

	logs, err := repo.ListByModule(ctx, "anxiety")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "Box Breathing", logs[0].ExerciseName)
}

func TestExerciseLogRepo_ListRecent(t *testing.T) {
	repo := NewSQLiteExerciseLogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	recent := testutil.NewTestExerciseLog("mood", "Gratitude List")
	old := testutil.NewTestExerciseLog("mood", "Pleasant Activity")
	old.CompletedAt = time.Now().UTC().AddDate(0, 0, -60)
	require.NoError(t, repo.Create(ctx, recent))
	require.NoError(t, repo.Create(ctx, old))

	logs, err := repo.ListRecent(ctx, 30)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, recent.ID, logs[0].ID)
}

func TestExerciseLogRepo_CountByModule(t *testing.T) {
	repo := NewSQLiteExerciseLogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestExerciseLog("anxiety", "Box Breathing")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestExerciseLog("anxiety", "Grounding")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestExerciseLog("sleep", "Body Scan")))

	counts, err := repo.CountByModule(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"anxiety": 2, "sleep": 1}, counts)
}
