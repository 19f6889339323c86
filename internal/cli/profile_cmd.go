package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/resisync/internal/cli/formatter"
	"github.com/alexanderramin/resisync/internal/domain"
	"github.com/alexanderramin/resisync/internal/repository"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the traveler profile",
	}

	cmd.AddCommand(
		newProfileInitCmd(app),
		newProfileShowCmd(app),
	)

	return cmd
}

func newProfileInitCmd(app *App) *cobra.Command {
	var nationality, location string
	var goals []string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Set up the traveler profile",
		Long: "Set up the traveler profile used to tailor compliance analysis.\n" +
			"Without flags on an interactive terminal, an onboarding form is shown.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.UserProfile{
				Nationality:     nationality,
				CurrentLocation: location,
				TravelGoals:     goals,
			}

			// No flags on a terminal: run the onboarding form instead.
			if nationality == "" && location == "" &&
				app.IsInteractive != nil && app.IsInteractive() {
				var err error
				p, err = runOnboardingForm()
				if err != nil {
					return err
				}
			}

			if err := app.Profile.Onboard(context.Background(), p, force); err != nil {
				return err
			}
			fmt.Printf("Profile saved for %s nomad based in %s\n", p.Nationality, p.CurrentLocation)
			return nil
		},
	}

	cmd.Flags().StringVar(&nationality, "nationality", "", "Passport nationality (e.g. US, German)")
	cmd.Flags().StringVar(&location, "location", "", "Current base (e.g. Lisbon, Portugal)")
	cmd.Flags().StringArrayVar(&goals, "goal", nil, "Strategic goal (repeatable)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing profile")

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the traveler profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profile.Get(context.Background())
			if errors.Is(err, repository.ErrNotFound) {
				fmt.Println("No profile yet. Run `resisync profile init` first.")
				return nil
			}
			if err != nil {
				return err
			}

			goals := formatter.Dim("--")
			if len(p.TravelGoals) > 0 {
				goals = strings.Join(p.TravelGoals, ", ")
			}
			content := fmt.Sprintf("%s %s\n%s %s\n%s %s",
				formatter.Bold("Nationality:"), p.Nationality,
				formatter.Bold("Base:       "), p.CurrentLocation,
				formatter.Bold("Goals:      "), goals)
			fmt.Printf("%s\n", formatter.RenderBox("Profile", content))
			return nil
		},
	}
}
