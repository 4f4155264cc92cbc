package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mwhelan/solace/internal/cli/formatter"
	"github.com/mwhelan/solace/internal/domain"
	"github.com/spf13/cobra"
)

func newJournalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Keep a private journal",
	}

	cmd.AddCommand(
		newJournalAddCmd(app),
		newJournalListCmd(app),
		newJournalShowCmd(app),
		newJournalSearchCmd(app),
		newJournalDeleteCmd(app),
		newJournalPromptCmd(app),
		newJournalStatsCmd(app),
	)

	return cmd
}

func newJournalAddCmd(app *App) *cobra.Command {
	var moodFlag, prompt string
	var tags []string

	cmd := &cobra.Command{
		Use:   "add [content]",
		Short: "Write a journal entry",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := strings.Join(args, " ")
			if content == "" {
				var err error
				content, prompt, err = collectJournalEntry(app, prompt)
				if err != nil {
					return err
				}
			}

			var mood domain.MoodLevel
			if moodFlag != "" {
				parsed, err := domain.ParseMoodLevel(moodFlag)
				if err != nil {
					return err
				}
				mood = parsed
			}

			entry, err := app.Journal.AddEntry(context.Background(), content, mood, prompt, tags)
			if err != nil {
				return err
			}

			fmt.Printf("Saved entry %s %s\n", formatter.TruncID(entry.ID), formatter.TagBadges(entry.Tags))
			return nil
		},
	}

	cmd.Flags().StringVar(&moodFlag, "mood", "", "Mood to attach (great, good, okay, low, terrible)")
	cmd.Flags().StringVar(&prompt, "prompt", "", "Prompt this entry answers")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Comma-separated tags")

	return cmd
}

// collectJournalEntry opens an interactive editor for the entry, offering a
// suggested prompt when none was given.
func collectJournalEntry(app *App, prompt string) (content, usedPrompt string, err error) {
	if app.IsInteractive == nil || !app.IsInteractive() {
		return "", "", fmt.Errorf("entry content is required when not running in a terminal")
	}

	if prompt == "" {
		prompt = app.Journal.SuggestPrompt("")
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Journal entry").
				Description(prompt).
				Value(&content),
		),
	).WithTheme(solaceHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", "", err
	}
	return content, prompt, nil
}

func newJournalListCmd(app *App) *cobra.Command {
	var limit int
	var tag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent journal entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var entries []*domain.JournalEntry
			var err error
			if tag != "" {
				entries, err = app.Journal.ListByTag(ctx, tag)
			} else {
				entries, err = app.Journal.ListEntries(ctx, limit)
			}
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				fmt.Println("No journal entries found.")
				return nil
			}

			printJournalTable(entries)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum entries to show")
	cmd.Flags().StringVar(&tag, "tag", "", "Only entries carrying this tag")

	return cmd
}

func newJournalShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one journal entry in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := app.Journal.GetEntry(context.Background(), args[0])
			if err != nil {
				return err
			}

			var b strings.Builder
			if entry.Prompt != "" {
				b.WriteString(formatter.Dim(entry.Prompt))
				b.WriteString("\n\n")
			}
			b.WriteString(entry.Content)
			b.WriteString("\n\n")
			if entry.Mood != "" {
				b.WriteString(formatter.MoodPill(entry.Mood))
				b.WriteString("  ")
			}
			b.WriteString(formatter.TagBadges(entry.Tags))

			fmt.Println(formatter.RenderBox(formatter.HumanDate(entry.CreatedAt), b.String()))
			return nil
		},
	}
}

func newJournalSearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search journal entries by content, prompt or tag",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			entries, err := app.Journal.Search(context.Background(), query)
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				fmt.Printf("No entries matching %q.\n", query)
				return nil
			}

			printJournalTable(entries)
			return nil
		},
	}
}

func newJournalDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Journal.DeleteEntry(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Entry deleted.")
			return nil
		},
	}
}

func newJournalPromptCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Suggest a writing prompt based on recent entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			recent, err := app.Journal.ListEntries(ctx, 3)
			if err != nil {
				return err
			}

			var parts []string
			for _, e := range recent {
				parts = append(parts, e.Content)
			}
			prompt := app.Journal.SuggestPrompt(strings.Join(parts, " "))

			fmt.Println(formatter.RenderBox("Writing prompt", prompt))
			return nil
		},
	}
}

func newJournalStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show journaling statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Journal.Stats(context.Background())
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header("Journal"))
			if stats.Count == 0 {
				fmt.Println("No journal entries yet.")
				return nil
			}

			fmt.Printf("Total entries:     %s\n", formatter.Bold(fmt.Sprintf("%d", stats.Count)))
			fmt.Printf("Journaling since:  %s\n", stats.FirstEntry.Format("Jan 2, 2006"))
			fmt.Printf("Current streak:    %s\n", formatter.Bold(fmt.Sprintf("%d day(s)", stats.StreakDays)))
			if stats.CommonMood != "" {
				fmt.Printf("Most common mood:  %s %s\n",
					formatter.MoodPill(stats.CommonMood),
					formatter.Dim(fmt.Sprintf("(%d entries)", stats.CommonMoodCount)))
			}
			if len(stats.TopTags) > 0 {
				parts := make([]string, 0, len(stats.TopTags))
				for _, tc := range stats.TopTags {
					parts = append(parts, fmt.Sprintf("%s %s",
						formatter.TagBadges([]string{tc.Tag}),
						formatter.Dim(fmt.Sprintf("(%d)", tc.Count))))
				}
				fmt.Printf("Top tags:          %s\n", strings.Join(parts, "  "))
			}
			return nil
		},
	}
}

func printJournalTable(entries []*domain.JournalEntry) {
	headers := []string{"ID", "WHEN", "MOOD", "TAGS", "CONTENT"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		mood := formatter.Dim("--")
		if e.Mood != "" {
			mood = formatter.MoodPill(e.Mood)
		}
		rows = append(rows, []string{
			formatter.TruncID(e.ID),
			formatter.HumanTimestamp(e.CreatedAt),
			mood,
			formatter.TagBadges(e.Tags),
			formatter.Truncate(e.Content, 50),
		})
	}
	fmt.Print(formatter.RenderTable(headers, rows))
}
