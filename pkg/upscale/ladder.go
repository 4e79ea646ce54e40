package upscale

import (
	"fmt"

	"Distillery-Tracker/domain"
	"Distillery-Tracker/entities"
)

// Ladder is an ordered sequence of scale-up volumes, in liters. A trial
// on the distillation path walks the ladder one rung at a time.
type Ladder struct {
	volumes []float64
}

// DefaultLadder is the conventional four-stage scale-up sequence.
func DefaultLadder() Ladder {
	return NewLadder([]float64{1, 5, 30, 100})
}

func NewLadder(volumes []float64) Ladder {
	vs := make([]float64, len(volumes))
	copy(vs, volumes)
	return Ladder{volumes: vs}
}

func (l Ladder) Len() int { return len(l.volumes) }

// VolumeAt returns the target volume of the given rung.
func (l Ladder) VolumeAt(index int) (float64, error) {
	if index < 0 || index >= len(l.volumes) {
		return 0, domain.ErrLadderExhausted
	}
	return l.volumes[index], nil
}

// StageLabel renders rung labels like "5L".
func (l Ladder) StageLabel(index int) (string, error) {
	vol, err := l.VolumeAt(index)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%gL", vol), nil
}

// NextIndex determines the rung the next run would occupy given the
// runs recorded so far, which is simply how many runs exist.
func (l Ladder) NextIndex(runs []entities.UpscaleRun) int {
	return len(runs)
}

// CanStartNext reports whether a new run may begin: true only when no
// runs exist yet or the most recent run is complete, and rungs remain.
// A failed run blocks the ladder the same way a pending one does; the
// ladder never skips past a rung that did not finish cleanly.
func (l Ladder) CanStartNext(runs []entities.UpscaleRun) bool {
	if len(runs) >= len(l.volumes) {
		return false
	}
	if len(runs) == 0 {
		return true
	}
	return runs[len(runs)-1].Status == domain.UpscaleStatusComplete
}
