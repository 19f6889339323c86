package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/resisync/internal/db"
	"github.com/alexanderramin/resisync/internal/domain"
)

// SQLiteUserProfileRepo implements UserProfileRepo using a SQLite database.
// There is at most one profile row, keyed 'default'.
type SQLiteUserProfileRepo struct {
	db db.DBTX
}

// NewSQLiteUserProfileRepo creates a new SQLiteUserProfileRepo.
func NewSQLiteUserProfileRepo(conn db.DBTX) *SQLiteUserProfileRepo {
	return &SQLiteUserProfileRepo{db: conn}
}

func (r *SQLiteUserProfileRepo) Get(ctx context.Context) (*domain.UserProfile, error) {
	query := `SELECT nationality, current_location, travel_goals
		FROM user_profile WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var (
		p     domain.UserProfile
		goals string
	)
	err := row.Scan(&p.Nationality, &p.CurrentLocation, &goals)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user profile: %w", err)
	}
	if err := json.Unmarshal([]byte(goals), &p.TravelGoals); err != nil {
		return nil, fmt.Errorf("decoding travel goals: %w", err)
	}
	return &p, nil
}

func (r *SQLiteUserProfileRepo) Upsert(ctx context.Context, p *domain.UserProfile) error {
	goals, err := json.Marshal(p.TravelGoals)
	if err != nil {
		return fmt.Errorf("encoding travel goals: %w", err)
	}
	query := `INSERT OR REPLACE INTO user_profile (id, nationality, current_location, travel_goals, created_at)
		VALUES ('default', ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, p.Nationality, p.CurrentLocation, string(goals), nowUTC()); err != nil {
		return fmt.Errorf("upserting user profile: %w", err)
	}
	return nil
}
