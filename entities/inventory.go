package entities

import (
	"github.com/google/uuid"
)

type InventoryItem struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `gorm:"index" json:"name"`
	Type string    `json:"type"` // "raw_material", "packaging", "finished_product", "supplies"

	Quantity         float64 `json:"quantity"`
	Unit             string  `json:"unit"`
	ReorderThreshold float64 `json:"reorder_threshold"`
	Status           string  `gorm:"index" json:"status"` // "in_stock", "low_stock", "out_of_stock"

	Location string `json:"location,omitempty"`
	Notes    string `json:"notes,omitempty"`

	SupplierID *uuid.UUID `json:"supplier_id,omitempty"`
	Supplier   *Supplier  `gorm:"foreignKey:SupplierID" json:"-"`
	Timestamp
}
