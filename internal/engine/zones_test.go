package engine

import (
	"errors"
	"math"
	"testing"
)

func TestComputeZonesExample(t *testing.T) {
	zs, err := ComputeZones(100, 150, 190)
	if err != nil {
		t.Fatalf("ComputeZones() error = %v", err)
	}

	want := []struct {
		low, high float64
	}{
		{0, 100},
		{100, 125},
		{125, 150},
		{150, 180.5},
		{180.5, 190},
	}

	if len(zs.Zones) != len(want) {
		t.Fatalf("got %d zones, want %d", len(zs.Zones), len(want))
	}
	for i, w := range want {
		z := zs.Zones[i]
		if math.Abs(z.Low-w.low) > 1e-12 || math.Abs(z.High-w.high) > 1e-12 {
			t.Errorf("zone %d = [%v, %v), want [%v, %v)", i+1, z.Low, z.High, w.low, w.high)
		}
	}
	if zs.HRMax != 190 {
		t.Errorf("HRMax = %v, want 190", zs.HRMax)
	}
}

func TestComputeZonesContiguity(t *testing.T) {
	tests := []struct {
		name            string
		lt1, lt2, hrMax float64
	}{
		{"typical runner", 140, 165, 190},
		{"example values", 100, 150, 190},
		{"narrow threshold gap", 150, 152, 200},
		{"lt2 near zone 5 floor", 120, 170, 185},
		{"low hrMax", 90, 110, 140},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zs, err := ComputeZones(tt.lt1, tt.lt2, tt.hrMax)
			if err != nil {
				t.Fatalf("ComputeZones() error = %v", err)
			}

			// Coverage of [0, hrMax]
			if zs.Zones[0].Low != 0 {
				t.Errorf("first zone starts at %v, want 0", zs.Zones[0].Low)
			}
			if last := zs.Zones[len(zs.Zones)-1]; last.High != tt.hrMax {
				t.Errorf("last zone ends at %v, want %v", last.High, tt.hrMax)
			}

			// Contiguous, non-overlapping, ordered by increasing lower bound
			for i := 1; i < len(zs.Zones); i++ {
				if zs.Zones[i].Low != zs.Zones[i-1].High {
					t.Errorf("gap between zone %d and %d: %v != %v",
						i, i+1, zs.Zones[i-1].High, zs.Zones[i].Low)
				}
				if zs.Zones[i].Low < zs.Zones[i-1].Low {
					t.Errorf("zones out of order at %d", i)
				}
			}
			for i, z := range zs.Zones {
				if z.Low > z.High {
					t.Errorf("zone %d inverted: [%v, %v)", i+1, z.Low, z.High)
				}
			}
		})
	}
}

func TestComputeZonesErrors(t *testing.T) {
	tests := []struct {
		name            string
		lt1, lt2, hrMax float64
	}{
		{"lt1 above lt2", 170, 140, 190},
		{"lt1 equal lt2", 150, 150, 190},
		{"lt2 at hrMax", 100, 190, 190},
		{"zero lt1", 0, 150, 190},
		{"negative hrMax", 100, 150, -190},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeZones(tt.lt1, tt.lt2, tt.hrMax)
			if !errors.Is(err, ErrThresholdOrder) {
				t.Errorf("ComputeZones(%v, %v, %v) = %v, want ErrThresholdOrder",
					tt.lt1, tt.lt2, tt.hrMax, err)
			}
		})
	}
}

func TestZoneFor(t *testing.T) {
	zs, err := ComputeZones(100, 150, 190)
	if err != nil {
		t.Fatalf("ComputeZones() error = %v", err)
	}

	tests := []struct {
		hr        float64
		wantLabel string
		wantOK    bool
	}{
		{0, "Zone 1 (Easy/Recovery)", true},
		{99.9, "Zone 1 (Easy/Recovery)", true},
		// A rate exactly on a boundary belongs to the higher zone
		{100, "Zone 2 (Endurance)", true},
		{125, "Zone 3 (Threshold)", true},
		{150, "Zone 4 (Interval)", true},
		{180.5, "Zone 5 (Max Effort)", true},
		// The final zone is closed at hrMax
		{190, "Zone 5 (Max Effort)", true},
		{190.1, "", false},
		{-1, "", false},
	}

	for _, tt := range tests {
		z, ok := zs.ZoneFor(tt.hr)
		if ok != tt.wantOK {
			t.Errorf("ZoneFor(%v) ok = %v, want %v", tt.hr, ok, tt.wantOK)
			continue
		}
		if ok && z.Label != tt.wantLabel {
			t.Errorf("ZoneFor(%v) = %q, want %q", tt.hr, z.Label, tt.wantLabel)
		}
	}
}
