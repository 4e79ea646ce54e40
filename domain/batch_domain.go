package domain

import (
	"errors"
	"time"
)

const (
	BatchStatusActive     = "active"
	BatchStatusInProgress = "in_progress"
	BatchStatusCompleted  = "completed"
	BatchStatusPaused     = "paused"
	BatchStatusCancelled  = "cancelled"
)

// BatchStatuses is the closed set of batch statuses.
var BatchStatuses = []string{
	BatchStatusActive,
	BatchStatusInProgress,
	BatchStatusCompleted,
	BatchStatusPaused,
	BatchStatusCancelled,
}

var (
	MessageSuccessCreateBatch   = "batch created successfully"
	MessageSuccessUpdateBatch   = "batch updated successfully"
	MessageSuccessDeleteBatch   = "batch deleted successfully"
	MessageSuccessGetBatches    = "batches retrieved successfully"
	MessageSuccessGetBatch      = "batch retrieved successfully"
	MessageSuccessUpdateStatus  = "batch status updated successfully"
	MessageSuccessAdvanceStage  = "batch stage advanced successfully"
	MessageSuccessGetDashboard  = "dashboard statistics retrieved successfully"

	MessageFailedCreateBatch  = "failed to create batch"
	MessageFailedUpdateBatch  = "failed to update batch"
	MessageFailedDeleteBatch  = "failed to delete batch"
	MessageFailedGetBatches   = "failed to retrieve batches"
	MessageFailedGetBatch     = "failed to retrieve batch"
	MessageFailedUpdateStatus = "failed to update batch status"
	MessageFailedAdvanceStage = "failed to advance batch stage"
	MessageFailedGetDashboard = "failed to retrieve dashboard statistics"

	ErrBatchNotFound    = errors.New("batch not found")
	ErrBatchCompleted   = errors.New("completed batch can no longer change status")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrInvalidStartDate = errors.New("invalid start date")
	ErrJourneyFinished  = errors.New("batch already reached the final stage")
)

type (
	CreateBatchRequest struct {
		Name        string  `json:"name" validate:"required"`
		FruitType   string  `json:"fruit_type" validate:"required,oneof=apple pear grape mixed other"`
		ProcessType string  `json:"process_type" validate:"required,oneof=fresh concentrate blend custom"`
		Quantity    float64 `json:"quantity" validate:"required,gt=0"`
		Unit        string  `json:"unit" validate:"required"`
		StartDate   string  `json:"start_date" validate:"required"`
		ExpectedCompletionDate string `json:"expected_completion_date" validate:"omitempty"`
		SupplierID  string  `json:"supplier_id" validate:"omitempty,uuid"`
		Notes       string  `json:"notes" validate:"omitempty"`
	}

	UpdateBatchRequest struct {
		Name     string   `json:"name" validate:"omitempty"`
		Quantity float64  `json:"quantity" validate:"omitempty,gt=0"`
		Unit     string   `json:"unit" validate:"omitempty"`
		ExpectedCompletionDate string `json:"expected_completion_date" validate:"omitempty"`
		Temperature    *float64 `json:"temperature" validate:"omitempty"`
		PH             *float64 `json:"ph" validate:"omitempty,gte=0,lte=14"`
		Brix           *float64 `json:"brix" validate:"omitempty,gte=0"`
		AlcoholContent *float64 `json:"alcohol_content" validate:"omitempty,gte=0,lte=100"`
		Notes          string   `json:"notes" validate:"omitempty"`
	}

	UpdateBatchStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=active in_progress completed paused cancelled"`
	}

	BatchResponse struct {
		ID           string    `json:"id"`
		BatchCode    string    `json:"batch_code"`
		Name         string    `json:"name"`
		FruitType    string    `json:"fruit_type"`
		ProcessType  string    `json:"process_type"`
		Status       string    `json:"status"`
		CurrentStage string    `json:"current_stage"`
		Progress     float64   `json:"progress"`
		Quantity     float64   `json:"quantity"`
		Unit         string    `json:"unit"`
		StartDate    time.Time `json:"start_date"`
		ExpectedCompletionDate *time.Time `json:"expected_completion_date,omitempty"`
		Temperature    *float64 `json:"temperature,omitempty"`
		PH             *float64 `json:"ph,omitempty"`
		Brix           *float64 `json:"brix,omitempty"`
		AlcoholContent *float64 `json:"alcohol_content,omitempty"`
		Notes          string   `json:"notes,omitempty"`
		CreatedAt      time.Time `json:"created_at"`
	}

	// BatchUpdateEvent is the payload pushed over the WebSocket channel
	// whenever a batch mutates. Last write wins; no ordering guarantee.
	BatchUpdateEvent struct {
		BatchID      string  `json:"batchId"`
		Status       string  `json:"status"`
		Progress     float64 `json:"progress"`
		CurrentStage string  `json:"currentStage"`
		QualityScore float64 `json:"qualityScore"`
	}

	BatchDashboardResponse struct {
		TotalBatches     int64 `json:"total_batches"`
		ActiveBatches    int64 `json:"active_batches"`
		InProgressBatches int64 `json:"in_progress_batches"`
		CompletedBatches int64 `json:"completed_batches"`
		PausedBatches    int64 `json:"paused_batches"`
		CancelledBatches int64 `json:"cancelled_batches"`
	}
)
