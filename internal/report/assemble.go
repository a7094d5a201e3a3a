// Package report runs the four metabolic models against one validated
// input and collects their outputs into a single record for the TUI,
// the store, and text export.
package report

import (
	"strconv"
	"strings"
	"time"

	"vo2lab/internal/engine"
)

// Options carry every model override. Callers start from DefaultOptions
// and adjust; out-of-domain values are rejected by the model they belong
// to, not silently corrected.
type Options struct {
	Lactate   engine.LactateParams
	Kinetics  engine.KineticsParams
	Substrate engine.SubstrateParams
}

// DefaultOptions returns the documented defaults for all three
// parameterized models.
func DefaultOptions() Options {
	return Options{
		Lactate:   engine.DefaultLactateParams(),
		Kinetics:  engine.DefaultKineticsParams(),
		Substrate: engine.DefaultSubstrateParams(),
	}
}

// Report is one complete metabolic analysis: the validated input plus the
// four model outputs. All fields are plain values; a Report never changes
// after Assemble returns it.
type Report struct {
	Input       engine.InputSpec
	Zones       engine.ZoneSet
	Lactate     engine.LactateCurve
	Kinetics    engine.KineticsCurve
	Substrate   engine.SubstrateCurve
	GeneratedAt time.Time
}

// Assemble validates the input and runs the four models. The models are
// independent; the first failure aborts the whole computation and nothing
// partial is returned.
func Assemble(spec engine.InputSpec, opts Options) (*Report, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	zones, err := engine.ComputeZones(
		float64(spec.LT1HeartRate), float64(spec.LT2HeartRate), float64(spec.MaxHeartRate))
	if err != nil {
		return nil, err
	}

	lactate, err := engine.SimulateLactateCurve(spec.SprintPower, opts.Lactate)
	if err != nil {
		return nil, err
	}

	kinetics, err := engine.SimulateKinetics(spec.Vo2Max, opts.Kinetics)
	if err != nil {
		return nil, err
	}

	substrate, err := engine.SimulateSubstrateCurve(opts.Substrate)
	if err != nil {
		return nil, err
	}

	return &Report{
		Input:       spec,
		Zones:       zones,
		Lactate:     lactate,
		Kinetics:    kinetics,
		Substrate:   substrate,
		GeneratedAt: time.Now(),
	}, nil
}

// CacheKey builds a deterministic key covering every parameter that
// affects model output. Two calls produce identical reports exactly when
// their keys match; notes are excluded because no model reads them.
func CacheKey(spec engine.InputSpec, opts Options) string {
	parts := []string{
		"v1",
		formatFloat(spec.Vo2Max),
		strconv.Itoa(spec.LT1HeartRate),
		strconv.Itoa(spec.LT2HeartRate),
		strconv.Itoa(spec.MaxHeartRate),
		formatFloat(spec.SprintPower),
		formatFloat(opts.Lactate.LT1Fraction),
		formatFloat(opts.Lactate.LT2Fraction),
		strconv.Itoa(opts.Lactate.SampleCount),
		formatFloat(opts.Kinetics.SteadyStateFraction),
		formatFloat(opts.Kinetics.TimeConstant),
		strconv.Itoa(opts.Kinetics.DurationSeconds),
		strconv.Itoa(opts.Kinetics.StepSeconds),
		formatFloat(opts.Substrate.BaseCalorieRate),
		formatFloat(opts.Substrate.IntensityMin),
		formatFloat(opts.Substrate.IntensityMax),
		strconv.Itoa(opts.Substrate.SampleCount),
	}
	return strings.Join(parts, "|")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
