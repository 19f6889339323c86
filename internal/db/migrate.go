package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. The migration list is re-run on
// every startup; statements are written to be idempotent.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS trips (
		id            TEXT PRIMARY KEY,
		country       TEXT NOT NULL,
		country_code  TEXT NOT NULL DEFAULT '',
		start_date    TEXT NOT NULL,
		end_date      TEXT NOT NULL,
		is_schengen   INTEGER NOT NULL DEFAULT 0,
		notes         TEXT NOT NULL DEFAULT '',
		document_name TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_trips_start ON trips(start_date)`,
	`CREATE INDEX IF NOT EXISTS idx_trips_country ON trips(country)`,

	`CREATE TABLE IF NOT EXISTS user_profile (
		id               TEXT PRIMARY KEY DEFAULT 'default',
		nationality      TEXT NOT NULL,
		current_location TEXT NOT NULL,
		travel_goals     TEXT NOT NULL DEFAULT '[]',
		created_at       TEXT NOT NULL
	)`,
}
