package entities

import (
	"github.com/google/uuid"
)

type UpscaleRun struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UpscaleCode string    `gorm:"uniqueIndex" json:"upscale_code"` // e.g. U-042-03-5L
	TrialID     uuid.UUID `gorm:"index" json:"trial_id"`

	StageIndex   int     `json:"stage_index"` // position in the ladder, zero-based
	Stage        string  `json:"stage"`       // e.g. "5L"
	TargetVolume float64 `json:"target_volume"`

	YieldAmount     *float64 `json:"yield_amount,omitempty"`
	ABVResult       *float64 `json:"abv_result,omitempty"`
	CompoundSummary string   `json:"compound_summary,omitempty"`

	Status string `gorm:"index" json:"status"` // "pending", "complete", "failed"

	Trial *FermentationTrial `gorm:"foreignKey:TrialID" json:"-"`
	Timestamp
}
