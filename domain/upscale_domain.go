package domain

import (
	"errors"
	"time"
)

const (
	UpscaleStatusPending  = "pending"
	UpscaleStatusComplete = "complete"
	UpscaleStatusFailed   = "failed"
)

var (
	MessageSuccessStartUpscale    = "upscale run started successfully"
	MessageSuccessGetUpscales     = "upscale runs retrieved successfully"
	MessageSuccessRecordResults   = "upscale results recorded successfully"
	MessageSuccessCompleteUpscale = "upscale run completed successfully"
	MessageSuccessFailUpscale     = "upscale run marked as failed"

	MessageFailedStartUpscale    = "failed to start upscale run"
	MessageFailedGetUpscales     = "failed to retrieve upscale runs"
	MessageFailedRecordResults   = "failed to record upscale results"
	MessageFailedCompleteUpscale = "failed to complete upscale run"
	MessageFailedFailUpscale     = "failed to mark upscale run as failed"

	ErrUpscaleNotFound    = errors.New("upscale run not found")
	ErrUpscaleActive      = errors.New("trial already has an active upscale run")
	ErrUpscaleBlocked     = errors.New("previous upscale run did not complete")
	ErrLadderExhausted    = errors.New("upscale ladder exhausted")
	ErrNotDistillationPath = errors.New("trial is not on the distillation path")
	ErrInvalidYield       = errors.New("yield amount must be positive")
	ErrInvalidABVResult   = errors.New("abv result must be in (0,100]")
	ErrResultsNotRecorded = errors.New("cannot complete upscale: yield and ABV results required")
	ErrUpscaleNotPending  = errors.New("upscale run is not pending")
)

type (
	RecordUpscaleResultsRequest struct {
		YieldAmount     float64 `json:"yield_amount" validate:"required"`
		ABVResult       float64 `json:"abv_result" validate:"required"`
		CompoundSummary string  `json:"compound_summary" validate:"omitempty"`
	}

	UpscaleResponse struct {
		ID           string   `json:"id"`
		UpscaleCode  string   `json:"upscale_code"`
		TrialID      string   `json:"trial_id"`
		StageIndex   int      `json:"stage_index"`
		Stage        string   `json:"stage"`
		TargetVolume float64  `json:"target_volume"`
		YieldAmount  *float64 `json:"yield_amount,omitempty"`
		ABVResult    *float64 `json:"abv_result,omitempty"`
		CompoundSummary string `json:"compound_summary,omitempty"`
		Status       string   `json:"status"`
		CreatedAt    time.Time `json:"created_at"`
	}

	UpscaleListResponse struct {
		Upscales     []UpscaleResponse `json:"upscales"`
		CanStartNext bool              `json:"can_start_next"`
		NextVolume   *float64          `json:"next_volume,omitempty"`
	}
)
