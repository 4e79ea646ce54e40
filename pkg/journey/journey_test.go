package journey

import (
	"errors"
	"testing"
	"time"

	"Distillery-Tracker/domain"
	"Distillery-Tracker/entities"
)

func TestStageOrdinal(t *testing.T) {
	for i, s := range Stages {
		ord, err := StageOrdinal(s.ID)
		if err != nil {
			t.Fatalf("StageOrdinal(%q) returned error: %v", s.ID, err)
		}
		if ord != i {
			t.Errorf("StageOrdinal(%q) = %d, want %d", s.ID, ord, i)
		}
	}

	if _, err := StageOrdinal("bottling"); !errors.Is(err, domain.ErrUnknownStage) {
		t.Errorf("unknown stage err = %v, want ErrUnknownStage", err)
	}
}

func TestNextStage(t *testing.T) {
	got, err := NextStage("arrival")
	if err != nil {
		t.Fatalf("NextStage returned error: %v", err)
	}
	if got != "prep" {
		t.Errorf("NextStage(arrival) = %q, want %q", got, "prep")
	}

	if _, err := NextStage("distill"); !errors.Is(err, domain.ErrJourneyFinished) {
		t.Errorf("NextStage(distill) err = %v, want ErrJourneyFinished", err)
	}
	if _, err := NextStage("bottling"); !errors.Is(err, domain.ErrUnknownStage) {
		t.Errorf("NextStage(bottling) err = %v, want ErrUnknownStage", err)
	}
}

func TestClassify(t *testing.T) {
	stages, err := Classify("ferment")
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if len(stages) != len(Stages) {
		t.Fatalf("Classify returned %d stages, want %d", len(stages), len(Stages))
	}

	want := map[string]string{
		"arrival": domain.StageStatusCompleted,
		"prep":    domain.StageStatusCompleted,
		"heat":    domain.StageStatusCompleted,
		"ferment": domain.StageStatusInProgress,
		"distill": domain.StageStatusNotStarted,
	}
	for _, s := range stages {
		if s.Status != want[s.Stage] {
			t.Errorf("stage %q status = %q, want %q", s.Stage, s.Status, want[s.Stage])
		}
	}

	if stages[1].Label != "Chemistry Prep" {
		t.Errorf("prep label = %q, want %q", stages[1].Label, "Chemistry Prep")
	}

	if _, err := Classify("bottling"); !errors.Is(err, domain.ErrUnknownStage) {
		t.Errorf("Classify(bottling) err = %v, want ErrUnknownStage", err)
	}
}

func TestEnrich(t *testing.T) {
	stages, err := Classify("prep")
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}

	base := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)
	later := base.Add(6 * time.Hour)
	events := []entities.BatchEvent{
		{Stage: "arrival", Timestamp: base},
		// Out of order on purpose: the later prep event arrived first.
		{Stage: "prep", Timestamp: later},
		{Stage: "prep", Timestamp: base.Add(2 * time.Hour)},
	}

	enriched := Enrich(stages, events)

	byStage := make(map[string]domain.JourneyStageResponse, len(enriched))
	for _, s := range enriched {
		byStage[s.Stage] = s
	}

	if got := byStage["arrival"].LastEventTime; got == nil || !got.Equal(base) {
		t.Errorf("arrival LastEventTime = %v, want %v", got, base)
	}
	if got := byStage["prep"].LastEventTime; got == nil || !got.Equal(later) {
		t.Errorf("prep LastEventTime = %v, want %v", got, later)
	}
	if got := byStage["heat"].LastEventTime; got != nil {
		t.Errorf("heat LastEventTime = %v, want nil", got)
	}
}
