package engine

import (
	"errors"
	"math"
	"testing"
)

func TestSimulateSubstrateCurve(t *testing.T) {
	curve, err := SimulateSubstrateCurve(DefaultSubstrateParams())
	if err != nil {
		t.Fatalf("SimulateSubstrateCurve() error = %v", err)
	}

	if len(curve.Points) != 11 {
		t.Fatalf("got %d points, want 11", len(curve.Points))
	}

	first, last := curve.Points[0], curve.Points[len(curve.Points)-1]

	// At 50%: 10 kcal/min, 80% from fat
	if math.Abs(first.Intensity-50) > 1e-9 {
		t.Errorf("first intensity = %v, want 50", first.Intensity)
	}
	if math.Abs(first.TotalCalories-10) > 1e-9 {
		t.Errorf("total at 50%% = %v, want 10", first.TotalCalories)
	}
	if math.Abs(first.FatCalories-8) > 1e-9 {
		t.Errorf("fat at 50%% = %v, want 8", first.FatCalories)
	}

	// At 100%: 20 kcal/min, nothing from fat
	if math.Abs(last.Intensity-100) > 1e-9 {
		t.Errorf("last intensity = %v, want 100", last.Intensity)
	}
	if math.Abs(last.TotalCalories-20) > 1e-9 {
		t.Errorf("total at 100%% = %v, want 20", last.TotalCalories)
	}
	if math.Abs(last.FatCalories) > 1e-9 {
		t.Errorf("fat at 100%% = %v, want 0", last.FatCalories)
	}
	if math.Abs(last.CarbCalories-20) > 1e-9 {
		t.Errorf("carbs at 100%% = %v, want 20", last.CarbCalories)
	}
}

// Fat and carbohydrate contributions must partition the total at every
// sample, and the fat share never rises with intensity.
func TestSubstratePartitionInvariant(t *testing.T) {
	tests := []struct {
		name   string
		params SubstrateParams
	}{
		{"defaults", DefaultSubstrateParams()},
		{"wide range", SubstrateParams{BaseCalorieRate: 7.5, IntensityMin: 30, IntensityMax: 100, SampleCount: 25}},
		{"narrow range", SubstrateParams{BaseCalorieRate: 12, IntensityMin: 60, IntensityMax: 70, SampleCount: 5}},
		{"high burn rate", SubstrateParams{BaseCalorieRate: 18.3, IntensityMin: 50, IntensityMax: 100, SampleCount: 11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			curve, err := SimulateSubstrateCurve(tt.params)
			if err != nil {
				t.Fatalf("SimulateSubstrateCurve() error = %v", err)
			}
			for i, pt := range curve.Points {
				if math.Abs(pt.FatCalories+pt.CarbCalories-pt.TotalCalories) > 1e-9 {
					t.Errorf("point %d: fat %v + carb %v != total %v",
						i, pt.FatCalories, pt.CarbCalories, pt.TotalCalories)
				}
				if pt.FatPercent < 0 || pt.FatPercent > 80 {
					t.Errorf("point %d: fat percent %v outside [0, 80]", i, pt.FatPercent)
				}
				if i > 0 && pt.FatPercent > curve.Points[i-1].FatPercent {
					t.Errorf("fat percent rising at %d: %v -> %v",
						i, curve.Points[i-1].FatPercent, pt.FatPercent)
				}
			}
		})
	}
}

func TestSimulateSubstrateCurveErrors(t *testing.T) {
	tests := []struct {
		name    string
		params  SubstrateParams
		wantErr error
	}{
		{
			"inverted range",
			SubstrateParams{BaseCalorieRate: 10, IntensityMin: 100, IntensityMax: 50, SampleCount: 11},
			ErrInvalidRange,
		},
		{
			"empty range",
			SubstrateParams{BaseCalorieRate: 10, IntensityMin: 50, IntensityMax: 50, SampleCount: 11},
			ErrInvalidRange,
		},
		{
			"zero lower bound",
			SubstrateParams{BaseCalorieRate: 10, IntensityMin: 0, IntensityMax: 100, SampleCount: 11},
			ErrInvalidRange,
		},
		{
			"zero calorie rate",
			SubstrateParams{BaseCalorieRate: 0, IntensityMin: 50, IntensityMax: 100, SampleCount: 11},
			ErrInvalidCalorieRate,
		},
		{
			"single sample",
			SubstrateParams{BaseCalorieRate: 10, IntensityMin: 50, IntensityMax: 100, SampleCount: 1},
			ErrInvalidGrid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SimulateSubstrateCurve(tt.params)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("SimulateSubstrateCurve() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
