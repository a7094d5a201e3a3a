package engine

import "fmt"

// InputSpec is one athlete's test measurements, the input to every model.
// Validate it once; a spec that passed Validate never changes.
type InputSpec struct {
	Vo2Max       float64 // ml/kg/min
	LT1HeartRate int     // aerobic threshold, bpm
	LT2HeartRate int     // anaerobic threshold, bpm
	MaxHeartRate int     // bpm
	SprintPower  float64 // 5s sprint power, watts
	Notes        string  // optional, free text
}

// Validate checks that all required measurements are present and that the
// threshold ordering LT1 < LT2 < HRmax holds. It reports the first field
// that violates a constraint; no model should run on a spec that fails here.
func (s InputSpec) Validate() error {
	if s.Vo2Max <= 0 {
		return fmt.Errorf("%w: vo2max = %.1f, must be > 0", ErrInvalidInput, s.Vo2Max)
	}
	if s.LT1HeartRate <= 0 {
		return fmt.Errorf("%w: lt1_heart_rate = %d, must be > 0", ErrInvalidInput, s.LT1HeartRate)
	}
	if s.LT2HeartRate <= 0 {
		return fmt.Errorf("%w: lt2_heart_rate = %d, must be > 0", ErrInvalidInput, s.LT2HeartRate)
	}
	if s.MaxHeartRate <= 0 {
		return fmt.Errorf("%w: max_heart_rate = %d, must be > 0", ErrInvalidInput, s.MaxHeartRate)
	}
	if s.SprintPower <= 0 {
		return fmt.Errorf("%w: sprint_power = %.1f, must be > 0", ErrInvalidInput, s.SprintPower)
	}
	if s.LT1HeartRate >= s.LT2HeartRate {
		return fmt.Errorf("%w: lt1_heart_rate (%d) must be below lt2_heart_rate (%d)",
			ErrThresholdOrder, s.LT1HeartRate, s.LT2HeartRate)
	}
	if s.LT2HeartRate >= s.MaxHeartRate {
		return fmt.Errorf("%w: lt2_heart_rate (%d) must be below max_heart_rate (%d)",
			ErrThresholdOrder, s.LT2HeartRate, s.MaxHeartRate)
	}
	return nil
}
