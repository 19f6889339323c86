package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestTripValidate(t *testing.T) {
	tests := []struct {
		name    string
		trip    Trip
		wantErr string
	}{
		{
			name: "valid",
			trip: Trip{Country: "Spain", StartDate: date("2024-01-01"), EndDate: date("2024-01-10")},
		},
		{
			name:    "missing country",
			trip:    Trip{Country: "  ", StartDate: date("2024-01-01"), EndDate: date("2024-01-10")},
			wantErr: "country is required",
		},
		{
			name:    "missing start date",
			trip:    Trip{Country: "Spain", EndDate: date("2024-01-10")},
			wantErr: "start date is required",
		},
		{
			name:    "missing end date",
			trip:    Trip{Country: "Spain", StartDate: date("2024-01-01")},
			wantErr: "end date is required",
		},
		{
			name:    "end before start",
			trip:    Trip{Country: "Spain", StartDate: date("2024-01-10"), EndDate: date("2024-01-01")},
			wantErr: "end date cannot be before start date",
		},
		{
			name: "single day trip is valid",
			trip: Trip{Country: "Spain", StartDate: date("2024-01-01"), EndDate: date("2024-01-01")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.trip.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestTripInclusiveDays(t *testing.T) {
	tests := []struct {
		start, end string
		want       int
	}{
		{"2024-01-01", "2024-01-10", 10},
		{"2024-01-01", "2024-01-01", 1},
		{"2024-01-01", "2024-01-02", 2},
		{"2023-10-01", "2023-11-15", 46},
		{"2024-02-28", "2024-03-01", 3}, // leap year
	}

	for _, tt := range tests {
		trip := Trip{StartDate: date(tt.start), EndDate: date(tt.end)}
		assert.Equal(t, tt.want, trip.InclusiveDays(), "start=%s end=%s", tt.start, tt.end)
	}
}

func TestSuggestSchengen(t *testing.T) {
	assert.True(t, SuggestSchengen("Spain"))
	assert.True(t, SuggestSchengen("spain"))
	assert.True(t, SuggestSchengen("southern France"))
	assert.True(t, SuggestSchengen("CZECH REPUBLIC"))
	assert.False(t, SuggestSchengen("UK"))
	assert.False(t, SuggestSchengen("Japan"))
	assert.False(t, SuggestSchengen(""))
}

func TestTripDraftEmpty(t *testing.T) {
	var nilDraft *TripDraft
	assert.True(t, nilDraft.Empty())
	assert.True(t, (&TripDraft{}).Empty())
	assert.True(t, (&TripDraft{Country: "  "}).Empty())
	assert.False(t, (&TripDraft{Country: "Spain"}).Empty())
}

func TestTripPromptView(t *testing.T) {
	trip := Trip{
		ID:        "t1",
		Country:   "Spain",
		StartDate: date("2024-01-05"),
		EndDate:   date("2024-02-05"),
	}
	view := trip.PromptView().(tripPromptJSON)
	assert.Equal(t, "2024-01-05", view.StartDate)
	assert.Equal(t, "2024-02-05", view.EndDate)
}
