package service

import (
	"context"
	"time"

	"github.com/alexanderramin/resisync/internal/domain"
	"github.com/alexanderramin/resisync/internal/repository"
	"github.com/google/uuid"
)

type tripService struct {
	trips    repository.TripRepo
	observer UseCaseObserver
}

func NewTripService(trips repository.TripRepo, observers ...UseCaseObserver) TripService {
	return &tripService{
		trips:    trips,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *tripService) Create(ctx context.Context, p CreateTripParams) (trip *domain.Trip, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "trip.create", start, err, map[string]any{"country": p.Country})
	}()

	schengen := domain.SuggestSchengen(p.Country)
	if p.Schengen != nil {
		schengen = *p.Schengen
	}

	trip = &domain.Trip{
		ID:          uuid.New().String(),
		Country:     p.Country,
		CountryCode: p.CountryCode,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		IsSchengen:  schengen,
		Notes:       p.Notes,
		CreatedAt:   time.Now().UTC(),
	}
	if err = trip.Validate(); err != nil {
		return nil, err
	}
	if err = s.trips.Create(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

func (s *tripService) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	return s.trips.GetByID(ctx, id)
}

func (s *tripService) List(ctx context.Context) ([]*domain.Trip, error) {
	return s.trips.List(ctx)
}

func (s *tripService) AttachDocument(ctx context.Context, id, documentName string) (err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "trip.attach_document", start, err, map[string]any{"trip_id": id})
	}()
	return s.trips.AttachDocument(ctx, id, documentName)
}

func (s *tripService) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "trip.delete", start, err, map[string]any{"trip_id": id})
	}()
	return s.trips.Delete(ctx, id)
}
