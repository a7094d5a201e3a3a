package store

import "time"

// Assessment is one stored test session: the measurements that were
// entered plus the scalar results worth listing without re-running the
// models. The curves themselves are recomputed on load; with identical
// parameters the engine reproduces them exactly.
type Assessment struct {
	ID            int64
	CreatedAt     time.Time
	AthleteName   string
	Vo2Max        float64
	LT1HeartRate  int
	LT2HeartRate  int
	MaxHeartRate  int
	SprintPower   float64
	Notes         string
	CacheKey      string
	OptionsJSON   string // report.Options as JSON, to re-assemble identically
	SteadyState   float64
	OxygenDeficit float64
}
