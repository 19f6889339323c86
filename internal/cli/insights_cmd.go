package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/resisync/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newInsightsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "insights COUNTRY",
		Short: "Show a destination brief for a country",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			country := strings.Join(args, " ")

			profile, err := loadProfile(ctx, app)
			if err != nil {
				return err
			}

			stopSpinner := formatter.StartSpinner("Fetching destination brief...")
			brief := app.Insights.DestinationInsights(ctx, country, profile)
			stopSpinner()

			fmt.Printf("%s\n", formatter.Header(country))
			fmt.Print(formatter.RenderMarkdown(brief, 80))
			return nil
		},
	}
}
