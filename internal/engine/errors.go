package engine

import "errors"

// Sentinel errors for the engine package.
// Use errors.Is to check: errors.Is(err, engine.ErrThresholdOrder)
var (
	// ErrInvalidInput is returned by InputSpec.Validate when a required
	// measurement is missing or non-positive.
	ErrInvalidInput = errors.New("engine: invalid input")

	// ErrThresholdOrder is returned when LT1 < LT2 < HRmax does not hold.
	ErrThresholdOrder = errors.New("engine: thresholds out of order")

	// ErrInvalidPower is returned when sprint power is not positive.
	ErrInvalidPower = errors.New("engine: sprint power must be positive")

	// ErrInvalidFractions is returned when lactate breakpoint fractions
	// do not satisfy 0 < lt1 < lt2 < 1.
	ErrInvalidFractions = errors.New("engine: breakpoint fractions out of range")

	// ErrInvalidVo2Max is returned when VO2max is not positive.
	ErrInvalidVo2Max = errors.New("engine: vo2max must be positive")

	// ErrInvalidTimeConstant is returned when the kinetics time constant
	// is not positive.
	ErrInvalidTimeConstant = errors.New("engine: time constant must be positive")

	// ErrInvalidRange is returned when an intensity range is empty,
	// inverted, or extends below zero.
	ErrInvalidRange = errors.New("engine: intensity range invalid")

	// ErrInvalidCalorieRate is returned when the base calorie rate is
	// not positive.
	ErrInvalidCalorieRate = errors.New("engine: calorie rate must be positive")

	// ErrInvalidGrid is returned when a sampling grid cannot be built
	// (too few samples, non-positive duration or step).
	ErrInvalidGrid = errors.New("engine: sampling grid invalid")
)
