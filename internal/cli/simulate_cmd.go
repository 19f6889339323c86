package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/resisync/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSimulateCmd(app *App) *cobra.Command {
	var country, code string
	var start, end time.Time
	var schengen bool

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a what-if analysis with a hypothetical trip",
		Long: "Stage a hypothetical trip on top of the saved log and run the\n" +
			"analysis once. Nothing is persisted; the saved log is untouched.\n" +
			"In the TUI, staged trips persist for the session ('s' to stage,\n" +
			"'S' to clear).",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			profile, err := loadProfile(ctx, app)
			if err != nil {
				return err
			}

			params := tripParamsFromFlags(cmd, country, code, start, end, "", schengen)
			sim, err := app.Simulation.Add(params)
			if err != nil {
				return err
			}
			defer app.Simulation.Clear()

			real, err := app.Trips.List(ctx)
			if err != nil {
				return err
			}
			merged := app.Simulation.Merged(real)

			fmt.Printf("Simulating: %s, %s (%d days)\n\n",
				sim.Country,
				formatter.DateRange(sim.StartDate, sim.EndDate),
				sim.InclusiveDays())

			status := runAnalysisOnce(ctx, app, merged, profile)
			fmt.Printf("%s\n", formatter.FormatComplianceStatus(status))
			return nil
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "Hypothetical destination country")
	cmd.Flags().StringVar(&code, "code", "", "2-letter country code")
	cmd.Flags().Var(newDateValue(&start), "start", "Start date (YYYY-MM-DD)")
	cmd.Flags().Var(newDateValue(&end), "end", "End date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&schengen, "schengen", false, "Override the Schengen auto-suggestion")
	_ = cmd.MarkFlagRequired("country")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}
