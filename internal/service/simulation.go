package service

import (
	"sort"
	"sync"
	"time"

	"github.com/alexanderramin/resisync/internal/domain"
	"github.com/google/uuid"
)

// SimulationOverlay holds hypothetical trips layered over the persisted
// log for what-if analysis. Overlay trips live only in memory: they are
// merged into analysis input but never written to the store, and
// clearing the overlay restores the real state exactly.
type SimulationOverlay struct {
	mu    sync.Mutex
	trips []*domain.Trip
}

func NewSimulationOverlay() *SimulationOverlay {
	return &SimulationOverlay{}
}

// Add stages a hypothetical trip. The trip is validated, marked as a
// simulation and given its own ID so it can be listed alongside real
// trips without colliding.
func (o *SimulationOverlay) Add(p CreateTripParams) (*domain.Trip, error) {
	schengen := domain.SuggestSchengen(p.Country)
	if p.Schengen != nil {
		schengen = *p.Schengen
	}

	trip := &domain.Trip{
		ID:           uuid.New().String(),
		Country:      p.Country,
		CountryCode:  p.CountryCode,
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		IsSchengen:   schengen,
		IsSimulation: true,
		Notes:        p.Notes,
		CreatedAt:    time.Now().UTC(),
	}
	if err := trip.Validate(); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.trips = append(o.trips, trip)
	return trip, nil
}

// List returns the staged hypothetical trips.
func (o *SimulationOverlay) List() []*domain.Trip {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]*domain.Trip, len(o.trips))
	copy(out, o.trips)
	return out
}

// Clear drops all staged trips.
func (o *SimulationOverlay) Clear() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.trips = nil
}

// Active reports whether any hypothetical trips are staged.
func (o *SimulationOverlay) Active() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.trips) > 0
}

// Merged returns the real trips plus the overlay, ordered by start
// date. The input slice is not modified.
func (o *SimulationOverlay) Merged(real []*domain.Trip) []*domain.Trip {
	o.mu.Lock()
	defer o.mu.Unlock()

	merged := make([]*domain.Trip, 0, len(real)+len(o.trips))
	merged = append(merged, real...)
	merged = append(merged, o.trips...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].StartDate.Before(merged[j].StartDate)
	})
	return merged
}
