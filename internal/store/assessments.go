package store

import (
	"database/sql"
	"fmt"
	"time"
)

// SaveAssessment stores an assessment, replacing any existing row with the
// same cache key. Returns the row ID.
func (s *Store) SaveAssessment(a *Assessment) (int64, error) {
	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.db.Exec(`
		INSERT INTO assessments (
			created_at, athlete_name, vo2max, lt1_hr, lt2_hr, max_hr,
			sprint_power, notes, cache_key, options_json, steady_state, oxygen_deficit
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(cache_key) DO UPDATE SET
			created_at = excluded.created_at,
			athlete_name = excluded.athlete_name,
			notes = excluded.notes
	`,
		createdAt.UTC().Format(time.RFC3339), a.AthleteName,
		a.Vo2Max, a.LT1HeartRate, a.LT2HeartRate, a.MaxHeartRate,
		a.SprintPower, a.Notes, a.CacheKey, a.OptionsJSON,
		a.SteadyState, a.OxygenDeficit,
	)
	if err != nil {
		return 0, fmt.Errorf("saving assessment: %w", err)
	}

	// LastInsertId is unreliable through the upsert path; the unique
	// cache key identifies the row either way.
	var id int64
	if err := s.db.QueryRow(`SELECT id FROM assessments WHERE cache_key = ?`, a.CacheKey).Scan(&id); err != nil {
		return 0, fmt.Errorf("fetching assessment id: %w", err)
	}
	return id, nil
}

// GetAssessment retrieves one assessment by ID
func (s *Store) GetAssessment(id int64) (*Assessment, error) {
	return s.scanOne(s.db.QueryRow(selectColumns+` WHERE id = ?`, id))
}

// GetAssessmentByCacheKey retrieves the assessment computed from an exact
// parameter tuple, if one was stored. This is the memoization lookup: a hit
// means the same inputs were already analyzed.
func (s *Store) GetAssessmentByCacheKey(key string) (*Assessment, error) {
	return s.scanOne(s.db.QueryRow(selectColumns+` WHERE cache_key = ?`, key))
}

// ListAssessments returns stored assessments, most recent first.
func (s *Store) ListAssessments(limit int) ([]Assessment, error) {
	rows, err := s.db.Query(selectColumns+` ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing assessments: %w", err)
	}
	defer rows.Close()

	var result []Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *a)
	}
	return result, rows.Err()
}

// DeleteAssessment removes one assessment by ID
func (s *Store) DeleteAssessment(id int64) error {
	res, err := s.db.Exec(`DELETE FROM assessments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting assessment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAssessmentNotFound
	}
	return nil
}

const selectColumns = `
	SELECT id, created_at, athlete_name, vo2max, lt1_hr, lt2_hr, max_hr,
		sprint_power, notes, cache_key, options_json, steady_state, oxygen_deficit
	FROM assessments`

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func (s *Store) scanOne(row *sql.Row) (*Assessment, error) {
	a, err := scanAssessment(row)
	if err == sql.ErrNoRows {
		return nil, ErrAssessmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func scanAssessment(sc scanner) (*Assessment, error) {
	var a Assessment
	var createdAt string
	var athleteName, notes sql.NullString

	err := sc.Scan(
		&a.ID, &createdAt, &athleteName,
		&a.Vo2Max, &a.LT1HeartRate, &a.LT2HeartRate, &a.MaxHeartRate,
		&a.SprintPower, &notes, &a.CacheKey, &a.OptionsJSON,
		&a.SteadyState, &a.OxygenDeficit,
	)
	if err != nil {
		return nil, err
	}

	a.AthleteName = athleteName.String
	a.Notes = notes.String
	a.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at %q: %w", createdAt, err)
	}
	return &a, nil
}
