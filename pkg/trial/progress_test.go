package trial

import (
	"errors"
	"math"
	"testing"

	"Distillery-Tracker/domain"
)

func TestProgress(t *testing.T) {
	tests := []struct {
		name      string
		initial   float64
		current   float64
		target    float64
		want      float64
		wantErr   error
	}{
		{name: "untouched", initial: 1.050, current: 1.050, target: 0.998, want: 0},
		{name: "partway", initial: 1.060, current: 1.025, target: 1.000, want: 58.333333},
		{name: "done", initial: 1.050, current: 0.998, target: 0.998, want: 100},
		{name: "overshoot clamps to 100", initial: 1.050, current: 0.990, target: 0.998, want: 100},
		{name: "rising gravity clamps to 0", initial: 1.050, current: 1.060, target: 0.998, want: 0},
		{name: "flat range", initial: 1.020, current: 1.010, target: 1.020, want: 0, wantErr: domain.ErrFlatGravityRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Progress(tt.initial, tt.current, tt.target)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Progress() err = %v, want %v", err, tt.wantErr)
			}
			if math.Abs(got-tt.want) > 1e-4 {
				t.Errorf("Progress() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProgressIdempotent(t *testing.T) {
	a, err := Progress(1.050, 1.020, 0.998)
	if err != nil {
		t.Fatalf("Progress returned error: %v", err)
	}
	b, err := Progress(1.050, 1.020, 0.998)
	if err != nil {
		t.Fatalf("Progress returned error: %v", err)
	}
	if a != b {
		t.Errorf("repeated calls disagree: %v vs %v", a, b)
	}
}
