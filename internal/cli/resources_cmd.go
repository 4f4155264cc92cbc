package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/mwhelan/solace/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newResourcesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resources",
		Short: "Crisis hotlines, self-help sites and reading",
	}

	cmd.AddCommand(
		newResourcesCrisisCmd(app),
		newResourcesSelfHelpCmd(app),
		newResourcesReadingCmd(app),
		newResourcesFactCmd(app),
	)

	return cmd
}

func newResourcesCrisisCmd(app *App) *cobra.Command {
	var country string

	cmd := &cobra.Command{
		Use:   "crisis",
		Short: "Show crisis hotlines",
		RunE: func(cmd *cobra.Command, args []string) error {
			if country == "" {
				if profile, err := app.CheckIns.Profile(context.Background()); err == nil {
					country = profile.Country
				}
			}

			global := app.Resources.GlobalCrisisResource()
			fmt.Println(formatter.RenderBox("If you are in crisis",
				fmt.Sprintf("%s\n%s\n%s", global.Name, formatter.Bold(global.Number), global.Website)))
			fmt.Println()

			byCountry := app.Resources.CrisisHotlines(country)
			for c, hotlines := range byCountry {
				fmt.Println(formatter.Header(strings.ToUpper(c)))
				for _, h := range hotlines {
					fmt.Printf("%s  %s\n", formatter.Bold(h.Name), formatter.StyleRed.Render(h.Number))
					if h.Description != "" {
						fmt.Println(formatter.Dim("  " + h.Description))
					}
					if h.Website != "" {
						fmt.Println(formatter.StyleBlue.Render("  " + h.Website))
					}
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "Country (us, uk, canada, australia); default from profile")

	return cmd
}

func newResourcesSelfHelpCmd(app *App) *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:   "selfhelp",
		Short: "Suggest online self-help resources",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := app.Resources.SelfHelpResources(tag, 5)
			if len(items) == 0 {
				fmt.Printf("Nothing tagged %q. Try without --tag.\n", tag)
				return nil
			}

			for _, r := range items {
				fmt.Printf("%s %s\n", formatter.Bold(r.Name), formatter.TagBadges(r.Tags))
				fmt.Println(formatter.Dim("  " + r.Description))
				fmt.Println(formatter.StyleBlue.Render("  " + r.Website))
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "Filter by tag (anxiety, sleep, meditation, ...)")

	return cmd
}

func newResourcesReadingCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "reading",
		Short: "Recommend books by topic",
		RunE: func(cmd *cobra.Command, args []string) error {
			books := app.Resources.ReadingRecommendations(category, 3)
			if len(books) == 0 {
				fmt.Printf("No category %q. Available: %s\n",
					category, strings.Join(app.Resources.ReadingCategories(), ", "))
				return nil
			}

			for _, b := range books {
				fmt.Printf("%s %s\n", formatter.Bold(b.Title), formatter.Dim("by "+b.Author))
				fmt.Println(formatter.Dim("  " + b.Description))
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Topic (anxiety, depression, mindfulness, ...)")

	return cmd
}

func newResourcesFactCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "fact",
		Short: "Share a mental health fact",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(formatter.RenderBox("Did you know?", app.Resources.RandomFact()))
			return nil
		},
	}
}
