package journey

import (
	"sort"
	"time"

	"Distillery-Tracker/domain"
	"Distillery-Tracker/entities"
)

// Stage is one step of the fixed batch journey.
type Stage struct {
	ID    string
	Label string
}

// Stages is the ordered journey vocabulary. Every batch walks these in
// order; there is no partial completion within a stage.
var Stages = []Stage{
	{ID: "arrival", Label: "Arrival"},
	{ID: "prep", Label: "Chemistry Prep"},
	{ID: "heat", Label: "Heat Activation"},
	{ID: "ferment", Label: "Fermentation"},
	{ID: "distill", Label: "Distillation"},
}

// StageOrdinal returns the position of stage in the journey, or an
// ErrUnknownStage when it is not part of the vocabulary.
func StageOrdinal(stage string) (int, error) {
	for i, s := range Stages {
		if s.ID == stage {
			return i, nil
		}
	}
	return 0, domain.ErrUnknownStage
}

// NextStage returns the stage following current, or ErrJourneyFinished
// when current is the last one.
func NextStage(current string) (string, error) {
	ord, err := StageOrdinal(current)
	if err != nil {
		return "", err
	}
	if ord == len(Stages)-1 {
		return "", domain.ErrJourneyFinished
	}
	return Stages[ord+1].ID, nil
}

// Classify derives the status of every journey stage from the batch's
// declared current stage: earlier stages are completed, the current one
// in progress, later ones not started. Pure over its inputs.
func Classify(currentStage string) ([]domain.JourneyStageResponse, error) {
	currentOrd, err := StageOrdinal(currentStage)
	if err != nil {
		return nil, err
	}

	out := make([]domain.JourneyStageResponse, 0, len(Stages))
	for i, s := range Stages {
		status := domain.StageStatusNotStarted
		switch {
		case i < currentOrd:
			status = domain.StageStatusCompleted
		case i == currentOrd:
			status = domain.StageStatusInProgress
		}
		out = append(out, domain.JourneyStageResponse{
			Stage:  s.ID,
			Label:  s.Label,
			Status: status,
		})
	}
	return out, nil
}

// Enrich attaches the most recent event timestamp per stage. The event
// log arrives in insertion order; each stage's events are re-sorted by
// timestamp descending to find the latest. The log itself is not mutated.
func Enrich(stages []domain.JourneyStageResponse, events []entities.BatchEvent) []domain.JourneyStageResponse {
	byStage := make(map[string][]time.Time)
	for _, ev := range events {
		byStage[ev.Stage] = append(byStage[ev.Stage], ev.Timestamp)
	}
	for stage, ts := range byStage {
		sort.Slice(ts, func(i, j int) bool { return ts[i].After(ts[j]) })
		byStage[stage] = ts
	}

	for i := range stages {
		if ts, ok := byStage[stages[i].Stage]; ok && len(ts) > 0 {
			latest := ts[0]
			stages[i].LastEventTime = &latest
		}
	}
	return stages
}
