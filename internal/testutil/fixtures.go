package testutil

import (
	"time"

	"github.com/alexanderramin/resisync/internal/domain"
	"github.com/google/uuid"
)

// Trip options
type TripOption func(*domain.Trip)

func WithCountryCode(code string) TripOption {
	return func(t *domain.Trip) {
		t.CountryCode = code
	}
}

func WithSchengen(flag bool) TripOption {
	return func(t *domain.Trip) {
		t.IsSchengen = flag
	}
}

func WithNotes(notes string) TripOption {
	return func(t *domain.Trip) {
		t.Notes = notes
	}
}

func WithSimulation() TripOption {
	return func(t *domain.Trip) {
		t.IsSimulation = true
	}
}

// NewTestTrip builds a trip with the given country and YYYY-MM-DD dates.
// The Schengen flag defaults from the country name, as the service layer does.
func NewTestTrip(country, start, end string, opts ...TripOption) *domain.Trip {
	startDate, err := time.Parse(domain.DateLayout, start)
	if err != nil {
		panic(err)
	}
	endDate, err := time.Parse(domain.DateLayout, end)
	if err != nil {
		panic(err)
	}
	t := &domain.Trip{
		ID:         uuid.New().String(),
		Country:    country,
		StartDate:  startDate,
		EndDate:    endDate,
		IsSchengen: domain.SuggestSchengen(country),
		CreatedAt:  time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewTestProfile builds a profile for a US-passport nomad based in Lisbon.
func NewTestProfile() *domain.UserProfile {
	return &domain.UserProfile{
		Nationality:     "US",
		CurrentLocation: "Lisbon, Portugal",
		TravelGoals:     []string{"Minimize taxes", "Stay Schengen-legal"},
	}
}
