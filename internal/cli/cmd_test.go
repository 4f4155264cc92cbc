package cli

import (
	"bytes"
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/mwhelan/solace/internal/analysis"
	"github.com/mwhelan/solace/internal/domain"
	"github.com/mwhelan/solace/internal/repository"
	"github.com/mwhelan/solace/internal/resources"
	"github.com/mwhelan/solace/internal/service"
	"github.com/mwhelan/solace/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration
// tests. The terminal is reported as non-interactive so every command runs
// on flags alone.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	moodRepo := repository.NewSQLiteMoodRepo(database)
	journalRepo := repository.NewSQLiteJournalRepo(database)
	reminderRepo := repository.NewSQLiteReminderRepo(database)
	exerciseRepo := repository.NewSQLiteExerciseLogRepo(database)
	profileRepo := repository.NewSQLiteUserProfileRepo(database)
	uow := testutil.NewTestUoW(database)

	rng := rand.New(rand.NewSource(1))
	analyzer := analysis.NewDefault(rng)

	return &App{
		CheckIns:      service.NewCheckInService(moodRepo, profileRepo, analyzer),
		Journal:       service.NewJournalService(journalRepo, analyzer),
		Reminders:     service.NewReminderService(reminderRepo, uow),
		Insights:      service.NewInsightService(moodRepo, journalRepo, analyzer),
		Exercises:     service.NewExerciseService(exerciseRepo, rng),
		Analyzer:      analyzer,
		Resources:     resources.NewLibrary(rand.New(rand.NewSource(2))),
		IsInteractive: func() bool { return false },
		// Companion left nil — LLM disabled.
	}
}

// executeCmd runs a cobra command and captures cobra's own output.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestCheckinCmd_RequiresMoodWhenNotInteractive(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "checkin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--mood is required")
}

func TestCheckinCmd_WithFlags(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "checkin", "--mood", "low", "--note", "rough day at work")
	require.NoError(t, err)

	latest, err := app.CheckIns.LatestMood(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.MoodLow, latest.Level)
	assert.Equal(t, "rough day at work", latest.Note)
}

func TestCheckinCmd_RejectsUnknownMood(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "checkin", "--mood", "fantastic")
	assert.Error(t, err)
}

func TestMoodLogCmd(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "mood", "log", "great")
	require.NoError(t, err)

	latest, err := app.CheckIns.LatestMood(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.MoodGreat, latest.Level)
}

func TestMoodChartAndSummaryCmds(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "mood", "log", "good")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "mood", "chart", "--days", "7")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "mood", "summary")
	require.NoError(t, err)
}

func TestJournalAddAndListCmds(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	_, err := executeCmd(t, app, "journal", "add", "slept badly, worried about deadlines",
		"--tags", "sleep,work", "--mood", "low")
	require.NoError(t, err)

	entries, err := app.Journal.ListEntries(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"sleep", "work"}, entries[0].Tags)
	assert.Equal(t, domain.MoodLow, entries[0].Mood)

	_, err = executeCmd(t, app, "journal", "list", "--tag", "work")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "journal", "search", "deadlines")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "journal", "stats")
	require.NoError(t, err)
}

func TestJournalAddCmd_NoContentNonInteractive(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "journal", "add")
	require.Error(t, err)
}

func TestJournalDeleteCmd(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	entry, err := app.Journal.AddEntry(ctx, "short-lived thought", "", "", nil)
	require.NoError(t, err)

	_, err = executeCmd(t, app, "journal", "delete", entry.ID)
	require.NoError(t, err)

	remaining, err := app.Journal.ListEntries(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestRemindAddDoneAndRollover(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	_, err := executeCmd(t, app, "remind", "add", "Evening walk",
		"--at", "2027-03-01 19:00", "--recur", "weekly")
	require.NoError(t, err)

	all, err := app.Reminders.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 1)

	_, err = executeCmd(t, app, "remind", "done", all[0].ID)
	require.NoError(t, err)

	// Weekly reminder rolled over into a new pending instance.
	pending, err := app.Reminders.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.NotEqual(t, all[0].ID, pending[0].ID)
}

func TestRemindAddCmd_BadTime(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "remind", "add", "x", "--at", "whenever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized time")
}

func TestRemindSuggestCmd(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "remind", "suggest")
	require.NoError(t, err)
}

func TestExerciseCmds(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	_, err := executeCmd(t, app, "exercise", "list")
	require.NoError(t, err)

	// Non-interactive start picks a random exercise and logs it without
	// asking for confirmation.
	_, err = executeCmd(t, app, "exercise", "start", "anxiety")
	require.NoError(t, err)

	progress, err := app.Exercises.Progress(ctx, "anxiety")
	require.NoError(t, err)
	assert.Equal(t, 1, progress.TotalCompleted)

	_, err = executeCmd(t, app, "exercise", "progress")
	require.NoError(t, err)
}

func TestExerciseStartCmd_UnknownModule(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "exercise", "start", "juggling")
	require.Error(t, err)
}

func TestResourcesCmds(t *testing.T) {
	app := testApp(t)

	for _, args := range [][]string{
		{"resources", "crisis"},
		{"resources", "crisis", "--country", "uk"},
		{"resources", "selfhelp"},
		{"resources", "selfhelp", "--tag", "anxiety"},
		{"resources", "reading"},
		{"resources", "reading", "--category", "mindfulness"},
		{"resources", "fact"},
	} {
		_, err := executeCmd(t, app, args...)
		require.NoError(t, err, "args %v", args)
	}
}

func TestProfileSetAndShowCmds(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	_, err := executeCmd(t, app, "profile", "set", "--name", "Sam", "--country", "uk", "--checkin-hour", "20")
	require.NoError(t, err)

	profile, err := app.CheckIns.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Sam", profile.Name)
	assert.Equal(t, "uk", profile.Country)
	assert.Equal(t, 20, profile.CheckInHour)

	_, err = executeCmd(t, app, "profile", "show")
	require.NoError(t, err)
}

func TestProfileSetCmd_RejectsBadHour(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "profile", "set", "--checkin-hour", "24")
	require.Error(t, err)
}

func TestChatCmd_OnceWithoutCompanion(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "chat", "--once", "hello there")
	require.NoError(t, err)
}

func TestChatCmd_NeedsTerminalWithoutOnce(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "chat")
	require.Error(t, err)
}

func TestParseReminderTime(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	full, err := parseReminderTime("2026-09-01 08:30", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 1, 8, 30, 0, 0, time.UTC), full)

	dateOnly, err := parseReminderTime("2026-09-01", now)
	require.NoError(t, err)
	assert.Equal(t, 9, dateOnly.Hour())

	// A clock time already past today rolls to tomorrow.
	past, err := parseReminderTime("08:00", now)
	require.NoError(t, err)
	assert.Equal(t, 31, past.Day())

	future, err := parseReminderTime("18:00", now)
	require.NoError(t, err)
	assert.Equal(t, 30, future.Day())

	_, err = parseReminderTime("whenever", now)
	assert.Error(t, err)
}
