package entities

import (
	"time"

	"github.com/google/uuid"
)

type FermentationTrial struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	TrialCode string    `gorm:"uniqueIndex" json:"trial_code"` // e.g. T-042-03
	BatchID   uuid.UUID `gorm:"index" json:"batch_id"`

	JuiceVariant string `json:"juice_variant"` // "JP1".."JP5"
	YeastStrain  string `json:"yeast_strain"`

	InitialSG float64 `json:"initial_sg"`
	CurrentSG float64 `json:"current_sg"`
	TargetSG  float64 `json:"target_sg"`

	CurrentABV  float64  `json:"current_abv"`
	PH          *float64 `json:"ph,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`

	PathTaken string `json:"path_taken"` // "", "vinegar", "distillation", "archived"
	Status    string `gorm:"index" json:"status"` // "Fermenting", "Ready for Branching", "Distillation Path", ...

	Batch    *Batch         `gorm:"foreignKey:BatchID" json:"-"`
	Readings []TrialReading `gorm:"foreignKey:TrialID" json:"-"`
	Upscales []UpscaleRun   `gorm:"foreignKey:TrialID" json:"-"`
	Timestamp
}

// TrialReading is one daily measurement, stored in arrival order.
type TrialReading struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	TrialID uuid.UUID `gorm:"index" json:"trial_id"`

	ReadingDate time.Time `gorm:"type:timestamp" json:"reading_date"`
	SG          float64   `json:"sg"`
	ABV         float64   `json:"abv"`
	Temperature *float64  `json:"temperature,omitempty"`
	PH          *float64  `json:"ph,omitempty"`
	Notes       string    `json:"notes,omitempty"`

	Trial *FermentationTrial `gorm:"foreignKey:TrialID" json:"-"`
	Timestamp
}
