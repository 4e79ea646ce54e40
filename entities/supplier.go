package entities

import (
	"github.com/google/uuid"
)

type Supplier struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	GrowerCode string    `gorm:"uniqueIndex" json:"grower_code"` // used as the GROWER field of tracking codes
	Name       string    `gorm:"index" json:"name"`
	ContactName  string  `json:"contact_name,omitempty"`
	ContactEmail string  `json:"contact_email,omitempty"`
	ContactPhone string  `json:"contact_phone,omitempty"`
	Region     string    `json:"region,omitempty"`
	FruitTypes string    `json:"fruit_types,omitempty"` // comma-separated
	IsActive   bool      `json:"is_active"`

	Timestamp
}
