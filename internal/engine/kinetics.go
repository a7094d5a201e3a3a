package engine

import (
	"fmt"
	"math"
)

// KineticsParams control the oxygen uptake simulation at exercise onset.
type KineticsParams struct {
	SteadyStateFraction float64 // steady-state VO2 as a fraction of VO2max
	TimeConstant        float64 // tau, seconds to ~63% of steady state
	DurationSeconds     int     // simulated length of the effort
	StepSeconds         int     // sampling interval
}

// DefaultKineticsParams returns the documented defaults: a 5-minute effort
// at 85% of VO2max sampled every 5s, with a 40s time constant.
func DefaultKineticsParams() KineticsParams {
	return KineticsParams{
		SteadyStateFraction: 0.85,
		TimeConstant:        40,
		DurationSeconds:     300,
		StepSeconds:         5,
	}
}

// KineticsPoint is one time sample of the demand and response lines.
type KineticsPoint struct {
	TimeSeconds float64
	Demand      float64 // ml/kg/min, constant from onset
	Response    float64 // ml/kg/min, measured uptake
}

// KineticsCurve is the simulated VO2 step response.
type KineticsCurve struct {
	Points        []KineticsPoint
	SteadyState   float64 // ml/kg/min, the demand plateau
	OxygenDeficit float64 // ml/kg, integral of demand minus response to convergence
}

// SimulateKinetics models oxygen uptake after a step change in required
// intensity as a first-order exponential rise:
//
//	demand(t)   = vo2max * steadyStateFraction
//	response(t) = demand * (1 - exp(-t/tau))
//
// The time grid starts at 0 and always includes a sample at or past
// DurationSeconds. The oxygen deficit is the analytic integral of the
// shortfall over the full rise, demand * tau.
func SimulateKinetics(vo2max float64, p KineticsParams) (KineticsCurve, error) {
	if vo2max <= 0 {
		return KineticsCurve{}, fmt.Errorf("%w: got %.1f", ErrInvalidVo2Max, vo2max)
	}
	if p.TimeConstant <= 0 {
		return KineticsCurve{}, fmt.Errorf("%w: got %.1f", ErrInvalidTimeConstant, p.TimeConstant)
	}
	if p.SteadyStateFraction <= 0 {
		return KineticsCurve{}, fmt.Errorf("%w: steady state fraction %.2f, must be > 0",
			ErrInvalidGrid, p.SteadyStateFraction)
	}
	if p.DurationSeconds <= 0 || p.StepSeconds <= 0 {
		return KineticsCurve{}, fmt.Errorf("%w: duration %ds, step %ds, both must be > 0",
			ErrInvalidGrid, p.DurationSeconds, p.StepSeconds)
	}

	demand := vo2max * p.SteadyStateFraction

	// Round the step count up so the final sample lands at or past the
	// requested duration.
	steps := (p.DurationSeconds + p.StepSeconds - 1) / p.StepSeconds

	curve := KineticsCurve{
		Points:        make([]KineticsPoint, 0, steps+1),
		SteadyState:   demand,
		OxygenDeficit: demand * p.TimeConstant,
	}
	for i := 0; i <= steps; i++ {
		t := float64(i * p.StepSeconds)
		curve.Points = append(curve.Points, KineticsPoint{
			TimeSeconds: t,
			Demand:      demand,
			Response:    demand * (1 - math.Exp(-t/p.TimeConstant)),
		})
	}
	return curve, nil
}
