package engine

import "fmt"

// LactateParams control the lactate curve simulation. The breakpoint
// fractions are proxies for LT1/LT2 expressed as fractions of sprint power;
// they are not derived from the athlete's threshold heart rates.
type LactateParams struct {
	LT1Fraction float64 // fraction of sprint power where the first rise starts
	LT2Fraction float64 // fraction of sprint power where the sharp rise starts
	SampleCount int     // points on the intensity grid
}

// DefaultLactateParams returns the documented defaults.
func DefaultLactateParams() LactateParams {
	return LactateParams{
		LT1Fraction: 0.6,
		LT2Fraction: 0.9,
		SampleCount: 15,
	}
}

// CurvePoint is one sample of an intensity curve.
type CurvePoint struct {
	Intensity float64 // watts
	Value     float64 // mmol/L for lactate
}

// LactateCurve is the simulated blood lactate profile, with the two
// breakpoint intensities reported as chart markers.
type LactateCurve struct {
	Points   []CurvePoint
	LT1Power float64 // watts, LT1Fraction * sprint power
	LT2Power float64 // watts, LT2Fraction * sprint power
}

// SimulateLactateCurve models blood lactate versus power as three continuous
// linear segments: a slow rise to ~1.5 mmol/L at the LT1 breakpoint, a
// moderate rise to 3.5 mmol/L at LT2, and a sharp rise beyond. Intensities
// span 40% to 110% of sprint power.
func SimulateLactateCurve(sprintPower float64, p LactateParams) (LactateCurve, error) {
	if sprintPower <= 0 {
		return LactateCurve{}, fmt.Errorf("%w: got %.1f", ErrInvalidPower, sprintPower)
	}
	if p.LT1Fraction <= 0 || p.LT1Fraction >= p.LT2Fraction || p.LT2Fraction >= 1 {
		return LactateCurve{}, fmt.Errorf("%w: lt1=%.2f lt2=%.2f, need 0 < lt1 < lt2 < 1",
			ErrInvalidFractions, p.LT1Fraction, p.LT2Fraction)
	}
	if p.SampleCount < 2 {
		return LactateCurve{}, fmt.Errorf("%w: sample count %d, need at least 2", ErrInvalidGrid, p.SampleCount)
	}

	curve := LactateCurve{
		Points:   make([]CurvePoint, 0, p.SampleCount),
		LT1Power: p.LT1Fraction * sprintPower,
		LT2Power: p.LT2Fraction * sprintPower,
	}
	for _, power := range linspace(0.4*sprintPower, 1.1*sprintPower, p.SampleCount) {
		curve.Points = append(curve.Points, CurvePoint{
			Intensity: power,
			Value:     LactateAt(power, sprintPower, p),
		})
	}
	return curve, nil
}

// LactateAt evaluates the piecewise lactate model at a single power.
// Each segment is continuous with the previous one at its breakpoint:
// the first segment reaches exactly 1.5 at LT1 power, the second exactly
// 3.5 at LT2 power.
func LactateAt(power, sprintPower float64, p LactateParams) float64 {
	lt1 := p.LT1Fraction * sprintPower
	lt2 := p.LT2Fraction * sprintPower
	switch {
	case power < lt1:
		return 1 + 0.5*(power/lt1)
	case power < lt2:
		return 1.5 + 2*((power-lt1)/(lt2-lt1))
	default:
		return 3.5 + 5*((power-lt2)/((1-p.LT2Fraction)*sprintPower))
	}
}
