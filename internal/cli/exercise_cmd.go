package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/mwhelan/solace/internal/cli/formatter"
	"github.com/mwhelan/solace/internal/exercises"
	"github.com/spf13/cobra"
)

func newExerciseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exercise",
		Short: "Guided exercises for anxiety, mood, stress and sleep",
	}

	cmd.AddCommand(
		newExerciseListCmd(app),
		newExerciseStartCmd(app),
		newExerciseProgressCmd(app),
	)

	return cmd
}

func newExerciseListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List exercise modules",
		RunE: func(cmd *cobra.Command, args []string) error {
			headers := []string{"MODULE", "NAME", "EXERCISES", "DESCRIPTION"}
			var rows [][]string
			for _, m := range app.Exercises.Modules() {
				rows = append(rows, []string{
					formatter.StylePurple.Render(m.ID),
					m.Name,
					fmt.Sprintf("%d", len(m.Exercises)),
					formatter.Truncate(m.Description, 50),
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newExerciseStartCmd(app *App) *cobra.Command {
	var random bool

	cmd := &cobra.Command{
		Use:   "start <module>",
		Short: "Walk through an exercise from a module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			moduleID := args[0]

			module := exercises.FindModule(moduleID)
			if module == nil {
				return fmt.Errorf("unknown module %q, see \"solace exercise list\"", moduleID)
			}

			exercise, err := chooseExercise(app, module, random)
			if err != nil {
				return err
			}

			fmt.Println(formatter.RenderBox(exercise.Name, exercise.Description))
			fmt.Println()
			for i, step := range exercise.Steps {
				fmt.Printf("%s %s\n", formatter.StyleHeader.Render(fmt.Sprintf("%d.", i+1)), step)
			}
			fmt.Println()

			if app.IsInteractive != nil && app.IsInteractive() {
				var done bool
				form := huh.NewForm(
					huh.NewGroup(
						huh.NewConfirm().
							Title("Did you complete this exercise?").
							Value(&done),
					),
				).WithTheme(solaceHuhTheme()).WithShowHelp(false)
				if err := form.Run(); err != nil {
					return err
				}
				if !done {
					fmt.Println(formatter.Dim("No worries. It'll be here when you're ready."))
					return nil
				}
			}

			if _, err := app.Exercises.LogCompletion(context.Background(), module.ID, exercise.Name); err != nil {
				return err
			}
			fmt.Println(formatter.StyleGreen.Render("Logged. Well done."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&random, "random", false, "Pick an exercise at random")

	return cmd
}

func chooseExercise(app *App, module *exercises.Module, random bool) (*exercises.Exercise, error) {
	if random || app.IsInteractive == nil || !app.IsInteractive() {
		return app.Exercises.RandomExercise(module.ID)
	}

	options := make([]huh.Option[string], 0, len(module.Exercises))
	for _, e := range module.Exercises {
		options = append(options, huh.NewOption(e.Name, e.Name))
	}

	var picked string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which exercise?").
				Options(options...).
				Value(&picked),
		),
	).WithTheme(solaceHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return nil, err
	}

	exercise := module.FindExercise(picked)
	if exercise == nil {
		return nil, fmt.Errorf("exercise %q not found in module %q", picked, module.ID)
	}
	return exercise, nil
}

func newExerciseProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show completion history per module",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			headers := []string{"MODULE", "COMPLETED", "UNIQUE", "LAST 7 DAYS", "LAST SESSION"}
			var rows [][]string
			for _, m := range app.Exercises.Modules() {
				progress, err := app.Exercises.Progress(ctx, m.ID)
				if err != nil {
					return err
				}

				last := formatter.Dim("--")
				if progress.LastSession != nil {
					last = formatter.HumanTimestamp(*progress.LastSession)
				}
				rows = append(rows, []string{
					formatter.StylePurple.Render(m.ID),
					fmt.Sprintf("%d", progress.TotalCompleted),
					fmt.Sprintf("%d/%d", progress.UniqueExercises, len(m.Exercises)),
					fmt.Sprintf("%d", progress.RecentCount),
					last,
				})
			}

			fmt.Println(formatter.Header("Exercise progress"))
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
}
