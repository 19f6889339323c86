package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/resisync/internal/domain"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// TripRepo persists real (non-simulation) trips. Trips are immutable
// after creation except for the attached document, so there is no
// general Update operation.
type TripRepo interface {
	Create(ctx context.Context, t *domain.Trip) error
	GetByID(ctx context.Context, id string) (*domain.Trip, error)
	List(ctx context.Context) ([]*domain.Trip, error)
	AttachDocument(ctx context.Context, id, documentName string) error
	Delete(ctx context.Context, id string) error
}

// UserProfileRepo persists the single user profile record.
type UserProfileRepo interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Upsert(ctx context.Context, p *domain.UserProfile) error
}
