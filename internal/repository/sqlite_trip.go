package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/resisync/internal/db"
	"github.com/alexanderramin/resisync/internal/domain"
)

// SQLiteTripRepo implements TripRepo using a SQLite database.
type SQLiteTripRepo struct {
	db db.DBTX
}

// NewSQLiteTripRepo creates a new SQLiteTripRepo.
func NewSQLiteTripRepo(conn db.DBTX) *SQLiteTripRepo {
	return &SQLiteTripRepo{db: conn}
}

func (r *SQLiteTripRepo) Create(ctx context.Context, t *domain.Trip) error {
	query := `INSERT INTO trips (id, country, country_code, start_date, end_date,
		is_schengen, notes, document_name, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Country,
		t.CountryCode,
		t.StartDate.Format(domain.DateLayout),
		t.EndDate.Format(domain.DateLayout),
		boolToInt(t.IsSchengen),
		t.Notes,
		t.DocumentName,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting trip: %w", err)
	}
	return nil
}

func (r *SQLiteTripRepo) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	query := tripSelect + ` WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	t, err := scanTrip(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("trip %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning trip: %w", err)
	}
	return t, nil
}

func (r *SQLiteTripRepo) List(ctx context.Context) ([]*domain.Trip, error) {
	query := tripSelect + ` ORDER BY start_date, created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing trips: %w", err)
	}
	defer rows.Close()

	var trips []*domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning trip row: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating trips: %w", err)
	}
	return trips, nil
}

func (r *SQLiteTripRepo) AttachDocument(ctx context.Context, id, documentName string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE trips SET document_name = ? WHERE id = ?`, documentName, id)
	if err != nil {
		return fmt.Errorf("attaching document: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking document attach: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("trip %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTripRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trips WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting trip: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking trip delete: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("trip %s: %w", id, ErrNotFound)
	}
	return nil
}

const tripSelect = `SELECT id, country, country_code, start_date, end_date,
	is_schengen, notes, document_name, created_at FROM trips`

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTrip(row scanner) (*domain.Trip, error) {
	var (
		t          domain.Trip
		startDate  string
		endDate    string
		isSchengen int
		createdAt  string
	)
	err := row.Scan(
		&t.ID,
		&t.Country,
		&t.CountryCode,
		&startDate,
		&endDate,
		&isSchengen,
		&t.Notes,
		&t.DocumentName,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if t.StartDate, err = time.Parse(domain.DateLayout, startDate); err != nil {
		return nil, fmt.Errorf("parsing start date %q: %w", startDate, err)
	}
	if t.EndDate, err = time.Parse(domain.DateLayout, endDate); err != nil {
		return nil, fmt.Errorf("parsing end date %q: %w", endDate, err)
	}
	t.IsSchengen = intToBool(isSchengen)
	if created, err := time.Parse(time.RFC3339, createdAt); err == nil {
		t.CreatedAt = created
	}
	return &t, nil
}
