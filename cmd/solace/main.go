package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/mwhelan/solace/internal/analysis"
	"github.com/mwhelan/solace/internal/cli"
	"github.com/mwhelan/solace/internal/db"
	"github.com/mwhelan/solace/internal/intelligence"
	"github.com/mwhelan/solace/internal/llm"
	"github.com/mwhelan/solace/internal/repository"
	"github.com/mwhelan/solace/internal/resources"
	"github.com/mwhelan/solace/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.solace/solace.db
	dbPath := os.Getenv("SOLACE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".solace", "solace.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	moodRepo := repository.NewSQLiteMoodRepo(database)
	journalRepo := repository.NewSQLiteJournalRepo(database)
	reminderRepo := repository.NewSQLiteReminderRepo(database)
	exerciseRepo := repository.NewSQLiteExerciseLogRepo(database)
	profileRepo := repository.NewSQLiteUserProfileRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	analyzer := analysis.NewDefault(rng)

	// Use-case logging mirrors the LLM observer: opt-in via env, to stderr.
	var ucObserver service.UseCaseObserver = service.NoopUseCaseObserver{}
	if on, _ := strconv.ParseBool(os.Getenv("SOLACE_LOG_USECASES")); on {
		ucObserver = service.NewLogUseCaseObserver(os.Stderr)
	}

	// Wire services
	app := &cli.App{
		CheckIns:  service.NewCheckInService(moodRepo, profileRepo, analyzer, ucObserver),
		Journal:   service.NewJournalService(journalRepo, analyzer, ucObserver),
		Reminders: service.NewReminderService(reminderRepo, uow, ucObserver),
		Insights:  service.NewInsightService(moodRepo, journalRepo, analyzer),
		Exercises: service.NewExerciseService(exerciseRepo, rng),
		Analyzer:  analyzer,
		Resources: resources.NewLibrary(rng),
	}

	// Detect interactive terminal for form and chat entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Wire the companion only when the LLM layer is enabled; every caller
	// falls back to the analyzer on its own.
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient := llm.NewOllamaClient(llmCfg, observer)
		app.Companion = intelligence.NewCompanionService(llmClient, analyzer)
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
