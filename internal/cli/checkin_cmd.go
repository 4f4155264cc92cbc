package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/mwhelan/solace/internal/cli/formatter"
	"github.com/mwhelan/solace/internal/domain"
	"github.com/mwhelan/solace/internal/intelligence"
	"github.com/spf13/cobra"
)

func newCheckinCmd(app *App) *cobra.Command {
	var moodFlag, note string

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Record how you're feeling right now",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			printGreeting(ctx, app)
			printDueReminders(ctx, app)

			level, note, err := collectCheckin(app, moodFlag, note)
			if err != nil {
				return err
			}

			result, err := app.CheckIns.RecordMood(ctx, level, note)
			if err != nil {
				return err
			}

			fmt.Printf("Recorded %s\n", formatter.MoodPill(result.Entry.Level))
			if result.Response != "" {
				fmt.Println()
				fmt.Println(formatter.StyleBlue.Render(result.Response))
			}
			if result.Prompt != "" {
				fmt.Println()
				fmt.Println(formatter.Dim("If you feel like writing: ") + result.Prompt)
				fmt.Println(formatter.Dim(`Use "solace journal add" to capture it.`))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&moodFlag, "mood", "", "Mood level (great, good, okay, low, terrible)")
	cmd.Flags().StringVar(&note, "note", "", "What's on your mind")

	return cmd
}

// collectCheckin resolves the mood level and note, using a huh form when the
// terminal is interactive and no mood flag was given.
func collectCheckin(app *App, moodFlag, note string) (domain.MoodLevel, string, error) {
	if moodFlag != "" {
		level, err := domain.ParseMoodLevel(moodFlag)
		if err != nil {
			return "", "", err
		}
		return level, note, nil
	}

	if app.IsInteractive == nil || !app.IsInteractive() {
		return "", "", fmt.Errorf("--mood is required when not running in a terminal")
	}

	options := make([]huh.Option[string], 0, len(domain.AllMoodLevels))
	for _, l := range domain.AllMoodLevels {
		options = append(options, huh.NewOption(l.Emoji()+" "+l.Label(), string(l)))
	}

	var picked string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How are you feeling right now?").
				Options(options...).
				Value(&picked),
			huh.NewInput().
				Title("Anything on your mind? (optional)").
				Value(&note),
		),
	).WithTheme(solaceHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", "", err
	}

	level, err := domain.ParseMoodLevel(picked)
	if err != nil {
		return "", "", err
	}
	return level, note, nil
}

func printGreeting(ctx context.Context, app *App) {
	gc := buildGreetingContext(ctx, app)

	text := intelligence.DeterministicGreeting(gc)
	if app.Companion != nil {
		if reply, err := app.Companion.Greeting(ctx, gc); err == nil {
			text = reply.Text
		}
	}
	fmt.Println(formatter.StyleHeader.Render(text))
	fmt.Println()
}

func buildGreetingContext(ctx context.Context, app *App) intelligence.GreetingContext {
	gc := intelligence.GreetingContext{
		TimeOfDay: intelligence.TimeOfDay(time.Now().Hour()),
	}

	if profile, err := app.CheckIns.Profile(ctx); err == nil {
		gc.Name = profile.Name
	}
	if latest, err := app.CheckIns.LatestMood(ctx); err == nil {
		level := latest.Level
		gc.LastMood = &level
		gc.DaysSince = int(time.Since(latest.RecordedAt).Hours() / 24)
	}
	if due, err := app.Reminders.Due(ctx, time.Now()); err == nil {
		gc.DueReminders = len(due)
	}
	return gc
}

func printDueReminders(ctx context.Context, app *App) {
	due, err := app.Reminders.Due(ctx, time.Now())
	if err != nil || len(due) == 0 {
		return
	}

	fmt.Println(formatter.StyleYellow.Render(fmt.Sprintf("You have %d reminder(s) due:", len(due))))
	shown := due
	if len(shown) > 3 {
		shown = shown[:3]
	}
	for i, r := range shown {
		fmt.Printf("%d. %s %s\n", i+1, r.Title, formatter.DueStamp(r.At, time.Now()))
	}
	if len(due) > 3 {
		fmt.Println(formatter.Dim(fmt.Sprintf("...and %d more.", len(due)-3)))
	}
	fmt.Println()
}
