package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/resisync/internal/cli/formatter"
	"github.com/alexanderramin/resisync/internal/domain"
	"github.com/alexanderramin/resisync/internal/repository"
	"github.com/spf13/cobra"
)

// loadProfile fetches the profile, translating the pre-onboarding state
// into a user-facing error.
func loadProfile(ctx context.Context, app *App) (*domain.UserProfile, error) {
	p, err := app.Profile.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("no profile yet, run `resisync profile init` first")
	}
	return p, err
}

// runAnalysisOnce executes one compliance cycle over the given trips,
// with a spinner and a retry notice on primary-tier failure.
func runAnalysisOnce(ctx context.Context, app *App, trips []*domain.Trip, profile *domain.UserProfile) *domain.ComplianceStatus {
	stopSpinner := formatter.StartSpinner("Analyzing travel schedule...")
	status := app.Compliance.Analyze(ctx, trips, profile, func() {
		fmt.Printf("\r\033[K  %s\n", formatter.Dim("Primary model busy, retrying with fallback..."))
	})
	stopSpinner()
	return status
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Run compliance analysis over the trip log",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			profile, err := loadProfile(ctx, app)
			if err != nil {
				return err
			}
			trips, err := app.Trips.List(ctx)
			if err != nil {
				return err
			}

			status := runAnalysisOnce(ctx, app, trips, profile)
			fmt.Printf("%s\n", formatter.FormatComplianceStatus(status))
			return nil
		},
	}
}
