package engine

import (
	"errors"
	"math"
	"testing"
)

func TestSimulateLactateCurve(t *testing.T) {
	curve, err := SimulateLactateCurve(500, DefaultLactateParams())
	if err != nil {
		t.Fatalf("SimulateLactateCurve() error = %v", err)
	}

	if len(curve.Points) != 15 {
		t.Fatalf("got %d points, want 15", len(curve.Points))
	}

	// Grid spans 40% to 110% of sprint power
	first, last := curve.Points[0], curve.Points[len(curve.Points)-1]
	if math.Abs(first.Intensity-200) > 1e-9 {
		t.Errorf("first intensity = %v, want 200", first.Intensity)
	}
	if math.Abs(last.Intensity-550) > 1e-9 {
		t.Errorf("last intensity = %v, want 550", last.Intensity)
	}

	// Lowest sample: 1 + 0.5*(200/300)
	if want := 1 + 0.5*(200.0/300.0); math.Abs(first.Value-want) > 1e-9 {
		t.Errorf("lactate at 200W = %v, want %v", first.Value, want)
	}

	// Intensity strictly increasing
	for i := 1; i < len(curve.Points); i++ {
		if curve.Points[i].Intensity <= curve.Points[i-1].Intensity {
			t.Errorf("intensity not increasing at %d: %v -> %v",
				i, curve.Points[i-1].Intensity, curve.Points[i].Intensity)
		}
	}

	// Breakpoint markers
	if curve.LT1Power != 300 {
		t.Errorf("LT1Power = %v, want 300", curve.LT1Power)
	}
	if curve.LT2Power != 450 {
		t.Errorf("LT2Power = %v, want 450", curve.LT2Power)
	}
}

// The piecewise model must be continuous: at each breakpoint the lower
// segment's formula and the upper segment's formula evaluate to the same
// value (1.5 at LT1 power, 3.5 at LT2 power).
func TestLactateCurveContinuity(t *testing.T) {
	params := DefaultLactateParams()
	powers := []float64{250, 500, 850, 1234.5}

	for _, sprint := range powers {
		lt1 := params.LT1Fraction * sprint
		lt2 := params.LT2Fraction * sprint

		// Segment formulas evaluated directly at the breakpoints
		lowerAtLT1 := 1 + 0.5*(lt1/lt1)
		upperAtLT1 := 1.5 + 2*((lt1-lt1)/(lt2-lt1))
		if math.Abs(lowerAtLT1-upperAtLT1) > 1e-12 {
			t.Errorf("sprint %v: discontinuity at LT1: %v vs %v", sprint, lowerAtLT1, upperAtLT1)
		}
		if math.Abs(lowerAtLT1-1.5) > 1e-12 {
			t.Errorf("sprint %v: lactate at LT1 = %v, want 1.5", sprint, lowerAtLT1)
		}

		middleAtLT2 := 1.5 + 2*((lt2-lt1)/(lt2-lt1))
		upperAtLT2 := 3.5 + 5*((lt2-lt2)/((1-params.LT2Fraction)*sprint))
		if math.Abs(middleAtLT2-upperAtLT2) > 1e-12 {
			t.Errorf("sprint %v: discontinuity at LT2: %v vs %v", sprint, middleAtLT2, upperAtLT2)
		}
		if math.Abs(middleAtLT2-3.5) > 1e-12 {
			t.Errorf("sprint %v: lactate at LT2 = %v, want 3.5", sprint, middleAtLT2)
		}

		// And the model itself agrees at the exact breakpoints
		if got := LactateAt(lt1, sprint, params); math.Abs(got-1.5) > 1e-12 {
			t.Errorf("sprint %v: LactateAt(LT1) = %v, want 1.5", sprint, got)
		}
		if got := LactateAt(lt2, sprint, params); math.Abs(got-3.5) > 1e-12 {
			t.Errorf("sprint %v: LactateAt(LT2) = %v, want 3.5", sprint, got)
		}
	}
}

func TestLactateCurveMonotonic(t *testing.T) {
	curve, err := SimulateLactateCurve(850, DefaultLactateParams())
	if err != nil {
		t.Fatalf("SimulateLactateCurve() error = %v", err)
	}
	for i := 1; i < len(curve.Points); i++ {
		if curve.Points[i].Value <= curve.Points[i-1].Value {
			t.Errorf("lactate not rising at %d: %v -> %v",
				i, curve.Points[i-1].Value, curve.Points[i].Value)
		}
	}
}

func TestSimulateLactateCurveErrors(t *testing.T) {
	tests := []struct {
		name    string
		power   float64
		params  LactateParams
		wantErr error
	}{
		{"zero power", 0, DefaultLactateParams(), ErrInvalidPower},
		{"negative power", -200, DefaultLactateParams(), ErrInvalidPower},
		{
			"fractions inverted", 500,
			LactateParams{LT1Fraction: 0.9, LT2Fraction: 0.6, SampleCount: 15},
			ErrInvalidFractions,
		},
		{
			"lt2 fraction at 1", 500,
			LactateParams{LT1Fraction: 0.6, LT2Fraction: 1.0, SampleCount: 15},
			ErrInvalidFractions,
		},
		{
			"zero lt1 fraction", 500,
			LactateParams{LT1Fraction: 0, LT2Fraction: 0.9, SampleCount: 15},
			ErrInvalidFractions,
		},
		{
			"single sample", 500,
			LactateParams{LT1Fraction: 0.6, LT2Fraction: 0.9, SampleCount: 1},
			ErrInvalidGrid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SimulateLactateCurve(tt.power, tt.params)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("SimulateLactateCurve() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSimulateLactateCurveCustomFractions(t *testing.T) {
	params := LactateParams{LT1Fraction: 0.5, LT2Fraction: 0.8, SampleCount: 8}
	curve, err := SimulateLactateCurve(400, params)
	if err != nil {
		t.Fatalf("SimulateLactateCurve() error = %v", err)
	}
	if curve.LT1Power != 200 || curve.LT2Power != 320 {
		t.Errorf("markers = (%v, %v), want (200, 320)", curve.LT1Power, curve.LT2Power)
	}
	if len(curve.Points) != 8 {
		t.Errorf("got %d points, want 8", len(curve.Points))
	}
	if got := LactateAt(200, 400, params); math.Abs(got-1.5) > 1e-12 {
		t.Errorf("LactateAt(LT1) = %v, want 1.5", got)
	}
}
