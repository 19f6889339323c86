package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DateLayout is the wire and storage format for trip dates.
const DateLayout = "2006-01-02"

type Trip struct {
	ID           string     `json:"id"`
	Country      string     `json:"country"`
	CountryCode  string     `json:"countryCode,omitempty"`
	StartDate    time.Time  `json:"-"`
	EndDate      time.Time  `json:"-"`
	IsSchengen   bool       `json:"isSchengen"`
	IsSimulation bool       `json:"isSimulation,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	DocumentName string     `json:"-"`
	CreatedAt    time.Time  `json:"-"`
}

// Validate checks the invariants enforced at trip creation.
// Trips are never revalidated after creation; only the attached
// document may change later.
func (t *Trip) Validate() error {
	if strings.TrimSpace(t.Country) == "" {
		return fmt.Errorf("country is required")
	}
	if t.StartDate.IsZero() {
		return fmt.Errorf("start date is required")
	}
	if t.EndDate.IsZero() {
		return fmt.Errorf("end date is required")
	}
	if t.EndDate.Before(t.StartDate) {
		return fmt.Errorf("end date cannot be before start date")
	}
	return nil
}

// InclusiveDays returns the number of calendar days the trip covers,
// counting both the start and end date: ceil(end-start) + 1.
// A one-day trip (start == end) counts as 1.
func (t *Trip) InclusiveDays() int {
	diff := t.EndDate.Sub(t.StartDate)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours()/24)) + 1
}

// PromptJSON is the shape serialized into LLM prompts. Dates go out as
// YYYY-MM-DD strings to match what the model is asked to reason about.
type tripPromptJSON struct {
	ID           string `json:"id"`
	Country      string `json:"country"`
	CountryCode  string `json:"countryCode,omitempty"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	IsSchengen   bool   `json:"isSchengen"`
	IsSimulation bool   `json:"isSimulation,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// PromptView returns a JSON-marshalable view of the trip with dates
// formatted as YYYY-MM-DD.
func (t *Trip) PromptView() any {
	return tripPromptJSON{
		ID:           t.ID,
		Country:      t.Country,
		CountryCode:  t.CountryCode,
		StartDate:    t.StartDate.Format(DateLayout),
		EndDate:      t.EndDate.Format(DateLayout),
		IsSchengen:   t.IsSchengen,
		IsSimulation: t.IsSimulation,
		Notes:        t.Notes,
	}
}

// PromptViews maps a trip slice to prompt views, preserving order.
func PromptViews(trips []*Trip) []any {
	views := make([]any, 0, len(trips))
	for _, t := range trips {
		views = append(views, t.PromptView())
	}
	return views
}

// TripDraft is a partially extracted trip, produced by the free-text
// parser. A draft without a country means nothing was extracted and
// callers must leave any in-progress form untouched.
type TripDraft struct {
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	IsSchengen  bool   `json:"isSchengen"`
}

// Empty reports whether the draft carries no extracted country.
func (d *TripDraft) Empty() bool {
	return d == nil || strings.TrimSpace(d.Country) == ""
}
