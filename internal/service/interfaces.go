package service

import (
	"context"
	"time"

	"github.com/alexanderramin/resisync/internal/domain"
)

// CreateTripParams carries the inputs for trip creation. Schengen is a
// tri-state: nil means "derive from the country name", a non-nil value
// is an explicit override.
type CreateTripParams struct {
	Country     string
	CountryCode string
	StartDate   time.Time
	EndDate     time.Time
	Schengen    *bool
	Notes       string
}

// TripService manages the persisted trip log. Trips are immutable after
// creation except for document attachment; corrections are delete and
// re-add.
type TripService interface {
	Create(ctx context.Context, p CreateTripParams) (*domain.Trip, error)
	GetByID(ctx context.Context, id string) (*domain.Trip, error)
	List(ctx context.Context) ([]*domain.Trip, error)
	AttachDocument(ctx context.Context, id, documentName string) error
	Delete(ctx context.Context, id string) error
}

// ProfileService manages the single onboarding profile.
type ProfileService interface {
	// Get returns the profile, or repository.ErrNotFound before onboarding.
	Get(ctx context.Context) (*domain.UserProfile, error)
	// Onboard stores the profile. A profile is created once; a second
	// call fails unless force is set.
	Onboard(ctx context.Context, p *domain.UserProfile, force bool) error
}
