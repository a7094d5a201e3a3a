package engine

import "fmt"

// SubstrateParams control the fuel partition simulation.
type SubstrateParams struct {
	BaseCalorieRate float64 // kcal/min burned at the bottom of the range
	IntensityMin    float64 // % of max intensity, start of the grid
	IntensityMax    float64 // % of max intensity, end of the grid
	SampleCount     int
}

// DefaultSubstrateParams returns the documented defaults: 50-100% intensity
// in 11 samples, 10 kcal/min at the bottom of the range.
func DefaultSubstrateParams() SubstrateParams {
	return SubstrateParams{
		BaseCalorieRate: 10,
		IntensityMin:    50,
		IntensityMax:    100,
		SampleCount:     11,
	}
}

// SubstratePoint is one sample of the fuel partition. FatCalories and
// CarbCalories always sum to TotalCalories.
type SubstratePoint struct {
	Intensity     float64 // % of max
	FatPercent    float64
	FatCalories   float64 // kcal/min
	CarbCalories  float64 // kcal/min
	TotalCalories float64 // kcal/min
}

// SubstrateCurve is the simulated energy contribution by fuel source
// across the intensity range.
type SubstrateCurve struct {
	Points []SubstratePoint
}

// SimulateSubstrateCurve models the fat/carbohydrate split across
// intensity. Fat share declines linearly from 80% at the bottom of the
// range (8 points per 5% intensity, clamped to [0, 80]); carbohydrate takes
// the remainder. Total burn rate scales linearly with intensity from
// BaseCalorieRate at IntensityMin.
func SimulateSubstrateCurve(p SubstrateParams) (SubstrateCurve, error) {
	if p.IntensityMin <= 0 || p.IntensityMax <= 0 || p.IntensityMin >= p.IntensityMax {
		return SubstrateCurve{}, fmt.Errorf("%w: [%.0f, %.0f], need 0 < min < max",
			ErrInvalidRange, p.IntensityMin, p.IntensityMax)
	}
	if p.BaseCalorieRate <= 0 {
		return SubstrateCurve{}, fmt.Errorf("%w: got %.1f", ErrInvalidCalorieRate, p.BaseCalorieRate)
	}
	if p.SampleCount < 2 {
		return SubstrateCurve{}, fmt.Errorf("%w: sample count %d, need at least 2", ErrInvalidGrid, p.SampleCount)
	}

	curve := SubstrateCurve{Points: make([]SubstratePoint, 0, p.SampleCount)}
	for _, intensity := range linspace(p.IntensityMin, p.IntensityMax, p.SampleCount) {
		fatPct := clamp(80-8*(intensity-p.IntensityMin)/5, 0, 80)
		total := p.BaseCalorieRate * (intensity / p.IntensityMin)
		fat := total * fatPct / 100
		curve.Points = append(curve.Points, SubstratePoint{
			Intensity:     intensity,
			FatPercent:    fatPct,
			FatCalories:   fat,
			CarbCalories:  total - fat,
			TotalCalories: total,
		})
	}
	return curve, nil
}
