package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/mwhelan/solace/internal/cli/formatter"
	"github.com/mwhelan/solace/internal/domain"
	"github.com/spf13/cobra"
)

func newRemindCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Manage self-care reminders",
	}

	cmd.AddCommand(
		newRemindAddCmd(app),
		newRemindListCmd(app),
		newRemindDueCmd(app),
		newRemindDoneCmd(app),
		newRemindDeleteCmd(app),
		newRemindSuggestCmd(app),
	)

	return cmd
}

// parseReminderTime accepts "2006-01-02 15:04", "2006-01-02" (9am assumed)
// or "15:04" (today, or tomorrow when already past).
func parseReminderTime(s string, now time.Time) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02 15:04", s, now.Location()); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, now.Location()); err == nil {
		return t.Add(9 * time.Hour), nil
	}
	if t, err := time.ParseInLocation("15:04", s, now.Location()); err == nil {
		at := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
		if !at.After(now) {
			at = at.AddDate(0, 0, 1)
		}
		return at, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q (want \"2006-01-02 15:04\", \"2006-01-02\" or \"15:04\")", s)
}

func newRemindAddCmd(app *App) *cobra.Command {
	var at, description, recurrence string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			when, err := parseReminderTime(at, time.Now())
			if err != nil {
				return err
			}
			recur, err := domain.ParseRecurrence(recurrence)
			if err != nil {
				return err
			}

			r, err := app.Reminders.Add(context.Background(), args[0], description, when, recur)
			if err != nil {
				return err
			}

			fmt.Printf("Reminder %s set for %s %s\n",
				formatter.TruncID(r.ID),
				r.At.Format("Jan 2, 2006 15:04"),
				formatter.RecurrenceBadge(r.Recurrence))
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "When to remind (\"2006-01-02 15:04\", \"2006-01-02\" or \"15:04\")")
	cmd.Flags().StringVar(&description, "description", "", "Extra detail")
	cmd.Flags().StringVar(&recurrence, "recur", "", "Repeat: daily, weekly or monthly")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}

func newRemindListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			reminders, err := app.Reminders.List(context.Background(), all)
			if err != nil {
				return err
			}

			if len(reminders) == 0 {
				fmt.Println("No reminders.")
				return nil
			}

			printReminderTable(reminders)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include completed reminders")

	return cmd
}

func newRemindDueCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "due",
		Short: "List reminders that are due now",
		RunE: func(cmd *cobra.Command, args []string) error {
			due, err := app.Reminders.Due(context.Background(), time.Now())
			if err != nil {
				return err
			}

			if len(due) == 0 {
				fmt.Println("Nothing due. Nice.")
				return nil
			}

			printReminderTable(due)
			return nil
		},
	}
}

func newRemindDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a reminder as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			next, err := app.Reminders.Complete(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Println("Done.")
			if next != nil {
				fmt.Printf("Next occurrence: %s %s\n",
					next.At.Format("Jan 2, 2006 15:04"),
					formatter.RecurrenceBadge(next.Recurrence))
			}
			return nil
		},
	}
}

func newRemindDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Reminders.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Reminder deleted.")
			return nil
		},
	}
}

func newRemindSuggestCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "Suggest self-care reminders and a check-in time",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			fmt.Println(formatter.Header("Reminder ideas"))
			for _, s := range app.Reminders.Suggestions() {
				fmt.Printf("%s %s\n", formatter.Bold(s.Title), formatter.RecurrenceBadge(s.Recurrence))
				fmt.Println(formatter.Dim("  " + s.Description))
			}

			at, err := app.Reminders.SuggestCheckInTime(ctx, time.Now())
			if err != nil {
				return err
			}
			fmt.Println()
			fmt.Printf("A good time for your next check-in: %s\n", formatter.Bold(at.Format("Jan 2, 2006 15:04")))
			fmt.Println(formatter.Dim(fmt.Sprintf(`Set it with: solace remind add "Daily Mood Check-in" --at %q --recur daily`, at.Format("2006-01-02 15:04"))))
			return nil
		},
	}
}

func printReminderTable(reminders []*domain.Reminder) {
	now := time.Now()
	headers := []string{"ID", "TITLE", "WHEN", "REPEAT", "STATUS"}
	rows := make([][]string, 0, len(reminders))
	for _, r := range reminders {
		status := formatter.StyleBlue.Render("○ pending")
		if r.Completed {
			status = formatter.Dim("✔ done")
		} else if r.Due(now) {
			status = formatter.StyleYellow.Render("● due")
		}
		rows = append(rows, []string{
			formatter.TruncID(r.ID),
			formatter.Truncate(r.Title, 32),
			formatter.DueStamp(r.At, now),
			formatter.RecurrenceBadge(r.Recurrence),
			status,
		})
	}
	fmt.Print(formatter.RenderTable(headers, rows))
}
