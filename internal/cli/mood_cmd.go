package cli

import (
	"context"
	"fmt"

	"github.com/mwhelan/solace/internal/cli/formatter"
	"github.com/mwhelan/solace/internal/domain"
	"github.com/spf13/cobra"
)

func newMoodCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mood",
		Short: "Track mood over time",
	}

	cmd.AddCommand(
		newMoodLogCmd(app),
		newMoodHistoryCmd(app),
		newMoodSummaryCmd(app),
	)

	return cmd
}

func newMoodLogCmd(app *App) *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "log <level>",
		Short: "Log a mood without the full check-in flow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := domain.ParseMoodLevel(args[0])
			if err != nil {
				return err
			}

			result, err := app.CheckIns.RecordMood(context.Background(), level, note)
			if err != nil {
				return err
			}

			fmt.Printf("Recorded %s (%s)\n", formatter.MoodPill(result.Entry.Level), formatter.TruncID(result.Entry.ID))
			if result.Response != "" {
				fmt.Println(formatter.StyleBlue.Render(result.Response))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "What's on your mind")

	return cmd
}

func newMoodHistoryCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:     "chart",
		Aliases: []string{"history"},
		Short:   "Show recent mood entries as a chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Insights.MoodSummary(context.Background(), days)
			if err != nil {
				return err
			}

			if summary.Count == 0 {
				fmt.Println("No mood entries yet. Try \"solace checkin\".")
				return nil
			}

			fmt.Println(formatter.Header(fmt.Sprintf("Mood history (last %d days)", days)))
			fmt.Print(formatter.RenderMoodHistory(summary.Entries, 20))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 14, "How many days back to show")

	return cmd
}

func newMoodSummaryCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize mood trend and distribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			summary, err := app.Insights.MoodSummary(ctx, days)
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header(fmt.Sprintf("Mood summary (last %d days)", days)))

			if summary.Count == 0 {
				fmt.Println("No mood entries in this window.")
				return nil
			}

			fmt.Printf("Check-ins: %s\n", formatter.Bold(fmt.Sprintf("%d", summary.Count)))
			fmt.Printf("Average:   %s %s\n",
				formatter.MoodPill(summary.AverageLevel),
				formatter.Dim(fmt.Sprintf("(%.1f/5)", summary.Average)))
			fmt.Printf("Trend:     %s\n", formatter.TrendIndicator(string(summary.Trend)))
			fmt.Println()
			fmt.Print(formatter.RenderMoodDistribution(summary.ByLevel, 20))

			topics, err := app.Insights.TopTopics(ctx, days, 3)
			if err == nil && len(topics) > 0 {
				fmt.Println()
				fmt.Printf("On your mind: %s\n", formatter.TagBadges(topics))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "Reporting window in days")

	return cmd
}
