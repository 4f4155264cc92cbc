package cli

import (
	"github.com/mwhelan/solace/internal/analysis"
	"github.com/mwhelan/solace/internal/intelligence"
	"github.com/mwhelan/solace/internal/resources"
	"github.com/mwhelan/solace/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	CheckIns  service.CheckInService
	Journal   service.JournalService
	Reminders service.ReminderService
	Insights  service.InsightService
	Exercises service.ExerciseService

	Analyzer  *analysis.Analyzer
	Resources *resources.Library

	// Companion is nil when the LLM layer is disabled; chat falls back to
	// the analyzer.
	Companion intelligence.CompanionService

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "solace" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "solace",
		Short: "A terminal wellness companion",
	}

	root.AddCommand(
		newCheckinCmd(app),
		newChatCmd(app),
		newMoodCmd(app),
		newJournalCmd(app),
		newRemindCmd(app),
		newExerciseCmd(app),
		newResourcesCmd(app),
		newProfileCmd(app),
	)

	return root
}
