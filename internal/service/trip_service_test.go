package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/resisync/internal/repository"
	"github.com/alexanderramin/resisync/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTripService(t *testing.T) TripService {
	conn := testutil.NewTestDB(t)
	return NewTripService(repository.NewSQLiteTripRepo(conn))
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestTripCreateDerivesSchengenFromCountry(t *testing.T) {
	svc := newTripService(t)
	ctx := context.Background()

	trip, err := svc.Create(ctx, CreateTripParams{
		Country:   "France",
		StartDate: date(t, "2024-05-01"),
		EndDate:   date(t, "2024-05-10"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, trip.ID)
	assert.True(t, trip.IsSchengen)

	trip, err = svc.Create(ctx, CreateTripParams{
		Country:   "Japan",
		StartDate: date(t, "2024-06-01"),
		EndDate:   date(t, "2024-06-10"),
	})
	require.NoError(t, err)
	assert.False(t, trip.IsSchengen)
}

func TestTripCreateExplicitSchengenOverride(t *testing.T) {
	svc := newTripService(t)

	// Monaco is not on the member list but is treated as Schengen
	// territory in practice; the override must win over the suggestion.
	override := true
	trip, err := svc.Create(context.Background(), CreateTripParams{
		Country:   "Monaco",
		StartDate: date(t, "2024-05-01"),
		EndDate:   date(t, "2024-05-03"),
		Schengen:  &override,
	})
	require.NoError(t, err)
	assert.True(t, trip.IsSchengen)
}

func TestTripCreateRejectsInvalidDates(t *testing.T) {
	svc := newTripService(t)

	_, err := svc.Create(context.Background(), CreateTripParams{
		Country:   "Spain",
		StartDate: date(t, "2024-05-10"),
		EndDate:   date(t, "2024-05-01"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end date")

	_, err = svc.Create(context.Background(), CreateTripParams{
		StartDate: date(t, "2024-05-01"),
		EndDate:   date(t, "2024-05-10"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "country")
}

func TestTripCreateListRoundTrip(t *testing.T) {
	svc := newTripService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateTripParams{
		Country:     "Spain",
		CountryCode: "ES",
		StartDate:   date(t, "2024-05-01"),
		EndDate:     date(t, "2024-05-10"),
		Notes:       "Barcelona coworking",
	})
	require.NoError(t, err)

	trips, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, created.ID, trips[0].ID)
	assert.Equal(t, "ES", trips[0].CountryCode)
	assert.Equal(t, "Barcelona coworking", trips[0].Notes)
}

func TestTripAttachDocument(t *testing.T) {
	svc := newTripService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateTripParams{
		Country:   "Spain",
		StartDate: date(t, "2024-05-01"),
		EndDate:   date(t, "2024-05-10"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.AttachDocument(ctx, created.ID, "visa-es.pdf"))

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "visa-es.pdf", got.DocumentName)

	err = svc.AttachDocument(ctx, "missing-id", "x.pdf")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTripDelete(t *testing.T) {
	svc := newTripService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateTripParams{
		Country:   "Spain",
		StartDate: date(t, "2024-05-01"),
		EndDate:   date(t, "2024-05-10"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID), repository.ErrNotFound)
}

func TestTripCreateEmitsUseCaseEvent(t *testing.T) {
	conn := testutil.NewTestDB(t)
	recorder := &recordingObserver{}
	svc := NewTripService(repository.NewSQLiteTripRepo(conn), recorder)

	_, err := svc.Create(context.Background(), CreateTripParams{
		Country:   "Spain",
		StartDate: date(t, "2024-05-01"),
		EndDate:   date(t, "2024-05-10"),
	})
	require.NoError(t, err)

	require.Len(t, recorder.events, 1)
	assert.Equal(t, "trip.create", recorder.events[0].Name)
	assert.True(t, recorder.events[0].Success)
	assert.Equal(t, "Spain", recorder.events[0].Fields["country"])
}

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.events = append(r.events, event)
}
