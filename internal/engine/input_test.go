package engine

import (
	"errors"
	"testing"
)

func validSpec() InputSpec {
	return InputSpec{
		Vo2Max:       55.5,
		LT1HeartRate: 140,
		LT2HeartRate: 165,
		MaxHeartRate: 190,
		SprintPower:  850,
		Notes:        "post-camp retest",
	}
}

func TestInputSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*InputSpec)
		wantErr error
	}{
		{
			name:    "valid spec",
			mutate:  func(s *InputSpec) {},
			wantErr: nil,
		},
		{
			name:    "notes are unconstrained",
			mutate:  func(s *InputSpec) { s.Notes = "" },
			wantErr: nil,
		},
		{
			name:    "zero vo2max",
			mutate:  func(s *InputSpec) { s.Vo2Max = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative vo2max",
			mutate:  func(s *InputSpec) { s.Vo2Max = -1 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero lt1",
			mutate:  func(s *InputSpec) { s.LT1HeartRate = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero lt2",
			mutate:  func(s *InputSpec) { s.LT2HeartRate = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero max HR",
			mutate:  func(s *InputSpec) { s.MaxHeartRate = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero sprint power",
			mutate:  func(s *InputSpec) { s.SprintPower = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name: "lt1 above lt2",
			mutate: func(s *InputSpec) {
				s.LT1HeartRate = 170
				s.LT2HeartRate = 140
			},
			wantErr: ErrThresholdOrder,
		},
		{
			name: "lt1 equal to lt2",
			mutate: func(s *InputSpec) {
				s.LT1HeartRate = 165
				s.LT2HeartRate = 165
			},
			wantErr: ErrThresholdOrder,
		},
		{
			name: "lt2 at max HR",
			mutate: func(s *InputSpec) {
				s.LT2HeartRate = 190
			},
			wantErr: ErrThresholdOrder,
		},
		{
			name: "lt2 above max HR",
			mutate: func(s *InputSpec) {
				s.LT2HeartRate = 195
			},
			wantErr: ErrThresholdOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validSpec()
			tt.mutate(&spec)
			err := spec.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
