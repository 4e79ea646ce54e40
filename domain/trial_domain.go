package domain

import (
	"errors"
	"time"
)

const (
	PathVinegar      = "vinegar"
	PathDistillation = "distillation"
	PathArchived     = "archived"

	TrialStatusFermenting = "Fermenting"
	TrialStatusBranching  = "Ready for Branching"
	TrialStatusComplete   = "Complete"
	TrialStatusArchived   = "Archived"

	// A trial whose ABV passes this mark is ready for path selection.
	BranchingABVThreshold = 8.0
)

var (
	MessageSuccessCreateTrial  = "fermentation trial created successfully"
	MessageSuccessGetTrials    = "fermentation trials retrieved successfully"
	MessageSuccessGetTrial     = "fermentation trial retrieved successfully"
	MessageSuccessDeleteTrial  = "fermentation trial deleted successfully"
	MessageSuccessAddReading   = "daily reading recorded successfully"
	MessageSuccessSetPath      = "trial path recorded successfully"

	MessageFailedCreateTrial = "failed to create fermentation trial"
	MessageFailedGetTrials   = "failed to retrieve fermentation trials"
	MessageFailedGetTrial    = "failed to retrieve fermentation trial"
	MessageFailedDeleteTrial = "failed to delete fermentation trial"
	MessageFailedAddReading  = "failed to record daily reading"
	MessageFailedSetPath     = "failed to record trial path"

	ErrTrialNotFound    = errors.New("fermentation trial not found")
	ErrTrialArchived    = errors.New("trial is archived")
	ErrFlatGravityRange = errors.New("initial and target gravity are equal")
)

type (
	CreateTrialRequest struct {
		BatchID      string  `json:"batch_id" validate:"required,uuid"`
		JuiceVariant string  `json:"juice_variant" validate:"required,oneof=JP1 JP2 JP3 JP4 JP5"`
		YeastStrain  string  `json:"yeast_strain" validate:"required"`
		InitialSG    float64 `json:"initial_sg" validate:"required,gt=0"`
		TargetSG     float64 `json:"target_sg" validate:"required,gt=0"`
		PH           *float64 `json:"ph" validate:"omitempty,gte=0,lte=14"`
		Temperature  *float64 `json:"temperature" validate:"omitempty"`
	}

	AddReadingRequest struct {
		ReadingDate string   `json:"reading_date" validate:"omitempty"` // defaults to now
		SG          float64  `json:"sg" validate:"required,gt=0"`
		ABV         float64  `json:"abv" validate:"gte=0,lte=100"`
		Temperature *float64 `json:"temperature" validate:"omitempty"`
		PH          *float64 `json:"ph" validate:"omitempty,gte=0,lte=14"`
		Notes       string   `json:"notes" validate:"omitempty"`
	}

	SetPathRequest struct {
		Path string `json:"path" validate:"required,oneof=vinegar distillation archived"`
	}

	TrialReadingResponse struct {
		ID          string    `json:"id"`
		ReadingDate time.Time `json:"reading_date"`
		SG          float64   `json:"sg"`
		ABV         float64   `json:"abv"`
		Temperature *float64  `json:"temperature,omitempty"`
		PH          *float64  `json:"ph,omitempty"`
		Notes       string    `json:"notes,omitempty"`
	}

	TrialResponse struct {
		ID           string  `json:"id"`
		TrialCode    string  `json:"trial_code"`
		BatchID      string  `json:"batch_id"`
		JuiceVariant string  `json:"juice_variant"`
		YeastStrain  string  `json:"yeast_strain"`
		InitialSG    float64 `json:"initial_sg"`
		CurrentSG    float64 `json:"current_sg"`
		TargetSG     float64 `json:"target_sg"`
		CurrentABV   float64 `json:"current_abv"`
		PH           *float64 `json:"ph,omitempty"`
		Temperature  *float64 `json:"temperature,omitempty"`
		PathTaken    string  `json:"path_taken,omitempty"`
		Status       string  `json:"status"`
		Progress     float64 `json:"progress"`
		Readings     []TrialReadingResponse `json:"readings,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
	}
)
