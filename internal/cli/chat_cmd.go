package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/resisync/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat MESSAGE",
		Short: "Ask the compliance assistant a one-off question",
		Long: "Ask the compliance assistant a one-off question grounded in your\n" +
			"trips and profile. For a multi-turn conversation, open the TUI and\n" +
			"press 'c'.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			message := strings.Join(args, " ")

			profile, err := loadProfile(ctx, app)
			if err != nil {
				return err
			}
			trips, err := app.Trips.List(ctx)
			if err != nil {
				return err
			}

			stopSpinner := formatter.StartSpinner("Thinking...")
			reply := app.Chat.Send(ctx, message, nil, trips, profile)
			stopSpinner()

			fmt.Print(formatter.RenderMarkdown(reply.Text, 80))
			if out := formatter.FormatSources(reply.Sources); out != "" {
				fmt.Print(out)
			}
			return nil
		},
	}
}
