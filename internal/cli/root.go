package cli

import (
	"github.com/alexanderramin/resisync/internal/intelligence"
	"github.com/alexanderramin/resisync/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Trips      service.TripService
	Profile    service.ProfileService
	Simulation *service.SimulationOverlay

	Compliance intelligence.ComplianceService
	Insights   intelligence.InsightService
	Parser     intelligence.ParserService
	Chat       intelligence.ChatService

	// IsInteractive reports whether stdin is a terminal. The bare
	// "resisync" invocation opens the TUI only when interactive.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "resisync" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "resisync",
		Short: "Travel compliance tracker for digital nomads",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newTripCmd(app),
		newProfileCmd(app),
		newStatusCmd(app),
		newInsightsCmd(app),
		newChatCmd(app),
		newSimulateCmd(app),
	)

	return root
}
