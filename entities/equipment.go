package entities

import (
	"time"

	"github.com/google/uuid"
)

type Equipment struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `gorm:"index" json:"name"`
	Type string    `json:"type"`                 // "juicer", "pasteurizer", "filter", "pump", "tank", "still", "other"
	Status string  `gorm:"index" json:"status"`  // "operational", "maintenance", "repair", "decommissioned", "offline"

	Capacity     *float64 `json:"capacity,omitempty"`
	Manufacturer string   `json:"manufacturer,omitempty"`
	ModelNumber  string   `json:"model_number,omitempty"`
	SerialNumber string   `json:"serial_number,omitempty"`
	Location     string   `json:"location,omitempty"`
	IsCritical   bool     `json:"is_critical"`
	Notes        string   `json:"notes,omitempty"`

	InstallationDate    *time.Time `json:"installation_date,omitempty"`
	LastMaintenanceDate *time.Time `json:"last_maintenance_date,omitempty"`
	NextMaintenanceDate *time.Time `json:"next_maintenance_date,omitempty"`

	MaintenanceRecords []MaintenanceRecord `gorm:"foreignKey:EquipmentID" json:"-"`
	Timestamp
}

type MaintenanceRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	EquipmentID uuid.UUID `gorm:"index" json:"equipment_id"`

	Type        string `json:"type"`                // "preventive", "corrective", "routine", "emergency"
	Status      string `gorm:"index" json:"status"` // "scheduled", "in_progress", "completed", "cancelled", "overdue"
	Description string `json:"description,omitempty"`
	PerformedBy string `json:"performed_by,omitempty"`

	ScheduledDate time.Time  `gorm:"type:timestamp" json:"scheduled_date"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`

	Equipment *Equipment `gorm:"foreignKey:EquipmentID" json:"-"`
	Timestamp
}
