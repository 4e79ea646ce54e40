package upscale

import (
	"errors"
	"testing"

	"Distillery-Tracker/domain"
	"Distillery-Tracker/entities"
)

func TestDefaultLadderVolumes(t *testing.T) {
	ladder := DefaultLadder()
	want := []float64{1, 5, 30, 100}

	if ladder.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", ladder.Len(), len(want))
	}
	for i, w := range want {
		got, err := ladder.VolumeAt(i)
		if err != nil {
			t.Fatalf("VolumeAt(%d) returned error: %v", i, err)
		}
		if got != w {
			t.Errorf("VolumeAt(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestLadderStageLabels(t *testing.T) {
	ladder := DefaultLadder()
	want := []string{"1L", "5L", "30L", "100L"}

	for i, w := range want {
		got, err := ladder.StageLabel(i)
		if err != nil {
			t.Fatalf("StageLabel(%d) returned error: %v", i, err)
		}
		if got != w {
			t.Errorf("StageLabel(%d) = %q, want %q", i, got, w)
		}
	}

	if _, err := ladder.StageLabel(4); !errors.Is(err, domain.ErrLadderExhausted) {
		t.Errorf("StageLabel(4) err = %v, want ErrLadderExhausted", err)
	}
	if _, err := ladder.VolumeAt(-1); !errors.Is(err, domain.ErrLadderExhausted) {
		t.Errorf("VolumeAt(-1) err = %v, want ErrLadderExhausted", err)
	}
}

func runsWithStatuses(statuses ...string) []entities.UpscaleRun {
	runs := make([]entities.UpscaleRun, 0, len(statuses))
	for i, s := range statuses {
		runs = append(runs, entities.UpscaleRun{StageIndex: i, Status: s})
	}
	return runs
}

func TestLadderCanStartNext(t *testing.T) {
	ladder := DefaultLadder()

	tests := []struct {
		name string
		runs []entities.UpscaleRun
		want bool
	}{
		{name: "no runs yet", runs: nil, want: true},
		{name: "latest complete", runs: runsWithStatuses(domain.UpscaleStatusComplete), want: true},
		{name: "latest pending", runs: runsWithStatuses(domain.UpscaleStatusPending), want: false},
		{name: "failed run blocks", runs: runsWithStatuses(domain.UpscaleStatusComplete, domain.UpscaleStatusFailed), want: false},
		{
			name: "ladder exhausted",
			runs: runsWithStatuses(
				domain.UpscaleStatusComplete,
				domain.UpscaleStatusComplete,
				domain.UpscaleStatusComplete,
				domain.UpscaleStatusComplete,
			),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ladder.CanStartNext(tt.runs); got != tt.want {
				t.Errorf("CanStartNext() = %v, want %v", got, tt.want)
			}
			if next := ladder.NextIndex(tt.runs); next != len(tt.runs) {
				t.Errorf("NextIndex() = %d, want %d", next, len(tt.runs))
			}
		})
	}
}
