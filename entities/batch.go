package entities

import (
	"time"

	"github.com/google/uuid"
)

type Batch struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	BatchCode    string    `gorm:"uniqueIndex" json:"batch_code"`
	Name         string    `json:"name"`
	FruitType    string    `json:"fruit_type"`   // "apple", "pear", "grape", "mixed", "other"
	ProcessType  string    `json:"process_type"` // "fresh", "concentrate", "blend", "custom"
	Status       string    `gorm:"index" json:"status"` // "active", "in_progress", "completed", "paused", "cancelled"
	CurrentStage string    `json:"current_stage"`       // one of the journey stages
	Progress     float64   `json:"progress"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
	StartDate    time.Time `json:"start_date"`
	ExpectedCompletionDate *time.Time `json:"expected_completion_date,omitempty"`

	// Latest chemistry readings, all optional.
	Temperature    *float64 `json:"temperature,omitempty"`
	PH             *float64 `json:"ph,omitempty"`
	Brix           *float64 `json:"brix,omitempty"`
	AlcoholContent *float64 `json:"alcohol_content,omitempty"`

	Notes string `json:"notes,omitempty"`

	SupplierID *uuid.UUID `json:"supplier_id,omitempty"`
	Supplier   *Supplier  `gorm:"foreignKey:SupplierID" json:"-"`

	Trials []FermentationTrial `gorm:"foreignKey:BatchID" json:"-"`
	Events []BatchEvent        `gorm:"foreignKey:BatchID" json:"-"`
	Timestamp
}

// BatchEvent is an append-only journey log entry for a batch.
type BatchEvent struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	BatchID   uuid.UUID `gorm:"index" json:"batch_id"`
	Stage     string    `json:"stage"` // "arrival", "prep", "heat", "ferment", "distill"
	Message   string    `json:"message"`
	Timestamp time.Time `gorm:"type:timestamp" json:"timestamp"`

	Batch *Batch `gorm:"foreignKey:BatchID" json:"-"`
}
