package formatter

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/resisync/internal/domain"
)

// SchengenBadge marks a trip as counting against the 90/180 allowance.
func SchengenBadge(t *domain.Trip) string {
	if !t.IsSchengen {
		return StyleDim.Render("--")
	}
	return StyleBlue.Render("Schengen")
}

// SimBadge marks an overlay trip that is not part of the saved log.
func SimBadge(t *domain.Trip) string {
	if !t.IsSimulation {
		return ""
	}
	return StylePurple.Render("[sim]")
}

// FormatTripList renders the trip log as an aligned table.
func FormatTripList(trips []*domain.Trip) string {
	headers := []string{"ID", "COUNTRY", "DATES", "DAYS", "AREA", "DOC"}
	rows := make([][]string, 0, len(trips))
	for _, t := range trips {
		country := t.Country
		if badge := SimBadge(t); badge != "" {
			country += " " + badge
		}
		doc := StyleDim.Render("--")
		if t.DocumentName != "" {
			doc = StyleFg.Render(t.DocumentName)
		}
		rows = append(rows, []string{
			TruncID(t.ID),
			country,
			DateRange(t.StartDate, t.EndDate),
			strconv.Itoa(t.InclusiveDays()),
			SchengenBadge(t),
			doc,
		})
	}
	return RenderTable(headers, rows)
}

// FormatTripDraft renders an extracted draft for confirmation.
func FormatTripDraft(d *domain.TripDraft) string {
	if d.Empty() {
		return Dim("No travel details found.")
	}

	area := "non-Schengen"
	if d.IsSchengen {
		area = "Schengen"
	}
	country := d.Country
	if d.CountryCode != "" {
		country = fmt.Sprintf("%s (%s)", d.Country, d.CountryCode)
	}

	lines := fmt.Sprintf("%s %s\n%s %s → %s\n%s %s",
		Bold("Country:"), country,
		Bold("Dates:  "), orDim(d.StartDate), orDim(d.EndDate),
		Bold("Area:   "), area)
	return lines
}

func orDim(s string) string {
	if s == "" {
		return Dim("?")
	}
	return s
}
