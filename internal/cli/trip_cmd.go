package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/resisync/internal/cli/formatter"
	"github.com/alexanderramin/resisync/internal/domain"
	"github.com/alexanderramin/resisync/internal/service"
	"github.com/spf13/cobra"
)

// resolveTripID matches an exact ID or a unique ID prefix.
func resolveTripID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("trip ID is required")
	}

	trips, err := app.Trips.List(ctx)
	if err != nil {
		return "", err
	}

	for _, t := range trips {
		if t.ID == input {
			return t.ID, nil
		}
	}

	var matches []string
	for _, t := range trips {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("trip not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("trip ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newTripCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trip",
		Short: "Manage the trip log",
	}

	cmd.AddCommand(
		newTripAddCmd(app),
		newTripListCmd(app),
		newTripRemoveCmd(app),
		newTripAttachCmd(app),
		newTripParseCmd(app),
	)

	return cmd
}

func tripParamsFromFlags(cmd *cobra.Command, country, code string, start, end time.Time, notes string, schengen bool) service.CreateTripParams {
	p := service.CreateTripParams{
		Country:     country,
		CountryCode: strings.ToUpper(code),
		StartDate:   start,
		EndDate:     end,
		Notes:       notes,
	}
	if cmd.Flags().Changed("schengen") {
		p.Schengen = &schengen
	}
	return p
}

func newTripAddCmd(app *App) *cobra.Command {
	var country, code, notes string
	var start, end time.Time
	var schengen bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a trip to the log",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := tripParamsFromFlags(cmd, country, code, start, end, notes, schengen)

			trip, err := app.Trips.Create(context.Background(), params)
			if err != nil {
				return err
			}

			area := "non-Schengen"
			if trip.IsSchengen {
				area = "Schengen"
			}
			fmt.Printf("Added trip to %s (%s, %d days)\n", trip.Country, area, trip.InclusiveDays())
			return nil
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "Destination country")
	cmd.Flags().StringVar(&code, "code", "", "2-letter country code (e.g. ES)")
	cmd.Flags().Var(newDateValue(&start), "start", "Start date (YYYY-MM-DD)")
	cmd.Flags().Var(newDateValue(&end), "end", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().BoolVar(&schengen, "schengen", false, "Override the Schengen auto-suggestion")
	_ = cmd.MarkFlagRequired("country")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newTripListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List logged trips",
		RunE: func(cmd *cobra.Command, args []string) error {
			trips, err := app.Trips.List(context.Background())
			if err != nil {
				return err
			}

			if len(trips) == 0 {
				fmt.Println("No trips logged yet. Add one with `resisync trip add`.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatTripList(trips))
			return nil
		},
	}
}

func newTripRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tripID, err := resolveTripID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Trips.Delete(ctx, tripID); err != nil {
				return err
			}
			fmt.Printf("Removed trip %s\n", tripID)
			return nil
		},
	}
}

func newTripAttachCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "attach ID DOCUMENT",
		Short: "Attach a document name (visa, booking) to a trip",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tripID, err := resolveTripID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Trips.AttachDocument(ctx, tripID, args[1]); err != nil {
				return err
			}
			fmt.Printf("Attached %q to trip %s\n", args[1], tripID)
			return nil
		},
	}
}

func newTripParseCmd(app *App) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "parse TEXT",
		Short: "Extract a trip from free text (booking email, message)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			text := strings.Join(args, " ")

			stopSpinner := formatter.StartSpinner("Extracting travel details...")
			draft := app.Parser.ParseTravelText(ctx, text)
			stopSpinner()

			fmt.Printf("%s\n", formatter.FormatTripDraft(draft))
			if draft.Empty() {
				return nil
			}

			if !save {
				fmt.Println(formatter.Dim("Re-run with --save to add this trip."))
				return nil
			}

			startDate, err := time.Parse(domain.DateLayout, draft.StartDate)
			if err != nil {
				return fmt.Errorf("extracted start date %q is not usable, add the trip manually", draft.StartDate)
			}
			endDate, err := time.Parse(domain.DateLayout, draft.EndDate)
			if err != nil {
				return fmt.Errorf("extracted end date %q is not usable, add the trip manually", draft.EndDate)
			}

			schengen := draft.IsSchengen
			trip, err := app.Trips.Create(ctx, service.CreateTripParams{
				Country:     draft.Country,
				CountryCode: draft.CountryCode,
				StartDate:   startDate,
				EndDate:     endDate,
				Schengen:    &schengen,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Added trip to %s (%d days)\n", trip.Country, trip.InclusiveDays())
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Save the extracted trip to the log")

	return cmd
}
