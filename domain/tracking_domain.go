package domain

import (
	"errors"
)

var (
	ErrMissingField = errors.New("missing required field(s)")
	ErrInvalidDate  = errors.New("invalid date format")
)

type (
	TrackingIDRequest struct {
		GrowerID     string `json:"grower_id"`
		FruitID      string `json:"fruit_id"`
		VarietalID   string `json:"varietal_id"`
		BatchID      string `json:"batch_id"`
		ProcessStage string `json:"process_stage"`
		ProcessDate  string `json:"process_date"`
	}

	TrackingIDResponse struct {
		TrackingID string `json:"tracking_id"`
		Status     string `json:"status"`
	}
)
