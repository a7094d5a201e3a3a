package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// One row per analyzed test session. cache_key is the full
		// parameter tuple; a resubmission with identical parameters
		// updates the existing row instead of growing history.
		`CREATE TABLE IF NOT EXISTS assessments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at TEXT NOT NULL,
			athlete_name TEXT,
			vo2max REAL NOT NULL,
			lt1_hr INTEGER NOT NULL,
			lt2_hr INTEGER NOT NULL,
			max_hr INTEGER NOT NULL,
			sprint_power REAL NOT NULL,
			notes TEXT,
			cache_key TEXT NOT NULL UNIQUE,
			options_json TEXT NOT NULL,
			steady_state REAL NOT NULL,
			oxygen_deficit REAL NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_assessments_created ON assessments(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_assessments_cache_key ON assessments(cache_key)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}
	return nil
}
