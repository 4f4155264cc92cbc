package cli

import (
	"context"
	"fmt"

	"github.com/mwhelan/solace/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View or update your profile",
	}

	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileSetCmd(app),
	)

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.CheckIns.Profile(context.Background())
			if err != nil {
				return err
			}

			name := profile.Name
			if name == "" {
				name = formatter.Dim("(not set)")
			}
			country := profile.Country
			if country == "" {
				country = formatter.Dim("(all)")
			}

			fmt.Println(formatter.Header("Profile"))
			fmt.Printf("Name:           %s\n", name)
			fmt.Printf("Country:        %s\n", country)
			fmt.Printf("Check-in hour:  %02d:00\n", profile.CheckInHour)
			return nil
		},
	}
}

func newProfileSetCmd(app *App) *cobra.Command {
	var name, country string
	var checkinHour int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			profile, err := app.CheckIns.Profile(ctx)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				profile.Name = name
			}
			if cmd.Flags().Changed("country") {
				profile.Country = country
			}
			if cmd.Flags().Changed("checkin-hour") {
				profile.CheckInHour = checkinHour
			}

			if err := app.CheckIns.SaveProfile(ctx, profile); err != nil {
				return err
			}
			fmt.Println("Profile updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "What Solace should call you")
	cmd.Flags().StringVar(&country, "country", "", "Country key for crisis resources (us, uk, canada, australia)")
	cmd.Flags().IntVar(&checkinHour, "checkin-hour", 9, "Preferred daily check-in hour (0-23)")

	return cmd
}
