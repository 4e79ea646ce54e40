package entities

import (
	"time"

	"github.com/google/uuid"
)

type QualityCheck struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	BatchID uuid.UUID `gorm:"index" json:"batch_id"`

	CheckType string `json:"check_type"` // "ph", "brix", "temperature", "alcohol", "acidity", "visual", "taste", "aroma"

	// Measured parameters, all optional.
	ActualValue      *float64 `json:"actual_value,omitempty"`
	ExpectedRangeMin *float64 `json:"expected_range_min,omitempty"`
	ExpectedRangeMax *float64 `json:"expected_range_max,omitempty"`
	UnitOfMeasure    string   `json:"unit_of_measure,omitempty"`

	Result      string    `gorm:"index" json:"result"` // "pass", "warning", "fail"
	PerformedBy string    `json:"performed_by"`
	Notes       string    `json:"notes,omitempty"`
	EvidenceURL string    `json:"evidence_url,omitempty"`
	CheckedAt   time.Time `gorm:"type:timestamp" json:"checked_at"`

	Batch *Batch `gorm:"foreignKey:BatchID" json:"-"`
	Timestamp
}
