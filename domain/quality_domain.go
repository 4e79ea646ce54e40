package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	QualityResultPass    = "pass"
	QualityResultWarning = "warning"
	QualityResultFail    = "fail"
)

var (
	MessageSuccessCreateCheck   = "quality check recorded successfully"
	MessageSuccessGetChecks     = "quality checks retrieved successfully"
	MessageSuccessDeleteCheck   = "quality check deleted successfully"
	MessageSuccessUploadEvidence = "evidence photo uploaded successfully"

	MessageFailedCreateCheck    = "failed to record quality check"
	MessageFailedGetChecks      = "failed to retrieve quality checks"
	MessageFailedDeleteCheck    = "failed to delete quality check"
	MessageFailedUploadEvidence = "failed to upload evidence photo"

	ErrCheckNotFound      = errors.New("quality check not found")
	ErrInvalidCheckType   = errors.New("invalid quality check type")
	ErrInvalidImageFormat = errors.New("invalid image format")
)

type (
	CreateQualityCheckRequest struct {
		BatchID   string `json:"batch_id" validate:"required,uuid"`
		CheckType string `json:"check_type" validate:"required,oneof=ph brix temperature alcohol acidity visual taste aroma"`
		ActualValue      *float64 `json:"actual_value" validate:"omitempty"`
		ExpectedRangeMin *float64 `json:"expected_range_min" validate:"omitempty"`
		ExpectedRangeMax *float64 `json:"expected_range_max" validate:"omitempty"`
		UnitOfMeasure    string   `json:"unit_of_measure" validate:"omitempty"`
		Result      string `json:"result" validate:"required,oneof=pass warning fail"`
		PerformedBy string `json:"performed_by" validate:"required"`
		Notes       string `json:"notes" validate:"omitempty"`
		CheckedAt   string `json:"checked_at" validate:"omitempty"` // defaults to now
	}

	UploadEvidenceRequest struct {
		CheckID string                `json:"check_id" form:"check_id" validate:"required,uuid"`
		Image   *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	QualityCheckResponse struct {
		ID        string `json:"id"`
		BatchID   string `json:"batch_id"`
		CheckType string `json:"check_type"`
		ActualValue      *float64 `json:"actual_value,omitempty"`
		ExpectedRangeMin *float64 `json:"expected_range_min,omitempty"`
		ExpectedRangeMax *float64 `json:"expected_range_max,omitempty"`
		UnitOfMeasure    string   `json:"unit_of_measure,omitempty"`
		Result      string    `json:"result"`
		PerformedBy string    `json:"performed_by"`
		Notes       string    `json:"notes,omitempty"`
		EvidenceURL string    `json:"evidence_url,omitempty"`
		CheckedAt   time.Time `json:"checked_at"`
	}
)
