package domain

import (
	"errors"
	"time"
)

const (
	StageStatusCompleted  = "completed"
	StageStatusInProgress = "in-progress"
	StageStatusNotStarted = "not-started"
)

var (
	MessageSuccessGetTimeline = "batch journey retrieved successfully"
	MessageSuccessAddEvent    = "journey event recorded successfully"

	MessageFailedGetTimeline = "failed to retrieve batch journey"
	MessageFailedAddEvent    = "failed to record journey event"

	ErrUnknownStage = errors.New("unknown journey stage")
)

type (
	AppendEventRequest struct {
		Stage   string `json:"stage" validate:"required,oneof=arrival prep heat ferment distill"`
		Message string `json:"message" validate:"required"`
	}

	JourneyStageResponse struct {
		Stage         string     `json:"stage"`
		Label         string     `json:"label"`
		Status        string     `json:"status"`
		LastEventTime *time.Time `json:"last_event_time,omitempty"`
	}

	JourneyTimelineResponse struct {
		BatchID      string                 `json:"batch_id"`
		CurrentStage string                 `json:"current_stage"`
		Stages       []JourneyStageResponse `json:"stages"`
	}

	JourneyEventResponse struct {
		ID        string    `json:"id"`
		Stage     string    `json:"stage"`
		Message   string    `json:"message"`
		Timestamp time.Time `json:"timestamp"`
	}
)
