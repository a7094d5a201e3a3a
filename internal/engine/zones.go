package engine

import "fmt"

// Zone is one named heart rate band. Bounds are kept unrounded; the
// presentation layer rounds for display.
type Zone struct {
	Label string
	Low   float64 // bpm, inclusive
	High  float64 // bpm, exclusive except the final zone
}

// ZoneSet is the full 5-zone scheme for one athlete, ordered by Low,
// contiguous over [0, HRmax] with shared boundaries.
type ZoneSet struct {
	Zones []Zone
	HRMax float64
}

// Zone labels follow the classic polarized naming.
var zoneLabels = [5]string{
	"Zone 1 (Easy/Recovery)",
	"Zone 2 (Endurance)",
	"Zone 3 (Threshold)",
	"Zone 4 (Interval)",
	"Zone 5 (Max Effort)",
}

// ComputeZones derives the 5-zone heart rate scheme from the two lactate
// thresholds and max heart rate:
//
//	Zone 1: [0, LT1)
//	Zone 2: [LT1, midpoint(LT1, LT2))
//	Zone 3: [midpoint(LT1, LT2), LT2)
//	Zone 4: [LT2, 0.95*HRmax)
//	Zone 5: [0.95*HRmax, HRmax]
//
// Inputs must satisfy 0 < lt1 < lt2 < hrMax.
func ComputeZones(lt1, lt2, hrMax float64) (ZoneSet, error) {
	if lt1 <= 0 || lt2 <= 0 || hrMax <= 0 {
		return ZoneSet{}, fmt.Errorf("%w: thresholds must be positive (lt1=%.0f lt2=%.0f hrMax=%.0f)",
			ErrThresholdOrder, lt1, lt2, hrMax)
	}
	if lt1 >= lt2 {
		return ZoneSet{}, fmt.Errorf("%w: lt1 (%.0f) must be below lt2 (%.0f)", ErrThresholdOrder, lt1, lt2)
	}
	if lt2 >= hrMax {
		return ZoneSet{}, fmt.Errorf("%w: lt2 (%.0f) must be below hrMax (%.0f)", ErrThresholdOrder, lt2, hrMax)
	}

	mid := (lt1 + lt2) / 2
	ceiling := 0.95 * hrMax

	bounds := [6]float64{0, lt1, mid, lt2, ceiling, hrMax}
	zones := make([]Zone, 5)
	for i := range zones {
		zones[i] = Zone{
			Label: zoneLabels[i],
			Low:   bounds[i],
			High:  bounds[i+1],
		}
	}
	return ZoneSet{Zones: zones, HRMax: hrMax}, nil
}

// ZoneFor returns the zone containing the given heart rate. Boundaries
// belong to the higher zone (left-closed, right-open), except HRmax which
// closes the final zone. Returns false for rates outside [0, HRmax].
func (zs ZoneSet) ZoneFor(hr float64) (Zone, bool) {
	for i, z := range zs.Zones {
		last := i == len(zs.Zones)-1
		if hr >= z.Low && (hr < z.High || (last && hr == z.High)) {
			return z, true
		}
	}
	return Zone{}, false
}
