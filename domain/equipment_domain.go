package domain

import (
	"errors"
	"time"
)

const (
	EquipmentStatusOperational    = "operational"
	EquipmentStatusMaintenance    = "maintenance"
	EquipmentStatusRepair         = "repair"
	EquipmentStatusDecommissioned = "decommissioned"
	EquipmentStatusOffline        = "offline"

	MaintenanceStatusScheduled  = "scheduled"
	MaintenanceStatusInProgress = "in_progress"
	MaintenanceStatusCompleted  = "completed"
	MaintenanceStatusCancelled  = "cancelled"
	MaintenanceStatusOverdue    = "overdue"
)

var (
	MessageSuccessCreateEquipment = "equipment created successfully"
	MessageSuccessUpdateEquipment = "equipment updated successfully"
	MessageSuccessDeleteEquipment = "equipment deleted successfully"
	MessageSuccessGetEquipment    = "equipment retrieved successfully"
	MessageSuccessScheduleMaintenance = "maintenance scheduled successfully"
	MessageSuccessCompleteMaintenance = "maintenance completed successfully"
	MessageSuccessGetMaintenance      = "maintenance records retrieved successfully"

	MessageFailedCreateEquipment = "failed to create equipment"
	MessageFailedUpdateEquipment = "failed to update equipment"
	MessageFailedDeleteEquipment = "failed to delete equipment"
	MessageFailedGetEquipment    = "failed to retrieve equipment"
	MessageFailedScheduleMaintenance = "failed to schedule maintenance"
	MessageFailedCompleteMaintenance = "failed to complete maintenance"
	MessageFailedGetMaintenance      = "failed to retrieve maintenance records"

	ErrEquipmentNotFound       = errors.New("equipment not found")
	ErrMaintenanceNotFound     = errors.New("maintenance record not found")
	ErrMaintenanceNotOpen      = errors.New("maintenance record is not open")
	ErrEquipmentDecommissioned = errors.New("equipment is decommissioned")
	ErrInvalidScheduledDate    = errors.New("invalid scheduled date")
)

type (
	CreateEquipmentRequest struct {
		Name string `json:"name" validate:"required"`
		Type string `json:"type" validate:"required,oneof=juicer pasteurizer filter pump tank still other"`
		Capacity     *float64 `json:"capacity" validate:"omitempty,gt=0"`
		Manufacturer string   `json:"manufacturer" validate:"omitempty"`
		ModelNumber  string   `json:"model_number" validate:"omitempty"`
		SerialNumber string   `json:"serial_number" validate:"omitempty"`
		Location     string   `json:"location" validate:"omitempty"`
		IsCritical   bool     `json:"is_critical"`
		InstallationDate string `json:"installation_date" validate:"omitempty"`
		Notes        string   `json:"notes" validate:"omitempty"`
	}

	UpdateEquipmentRequest struct {
		Name     string   `json:"name" validate:"omitempty"`
		Status   string   `json:"status" validate:"omitempty,oneof=operational maintenance repair decommissioned offline"`
		Capacity *float64 `json:"capacity" validate:"omitempty,gt=0"`
		Location string   `json:"location" validate:"omitempty"`
		IsCritical *bool  `json:"is_critical" validate:"omitempty"`
		Notes    string   `json:"notes" validate:"omitempty"`
	}

	ScheduleMaintenanceRequest struct {
		EquipmentID   string `json:"equipment_id" validate:"required,uuid"`
		Type          string `json:"type" validate:"required,oneof=preventive corrective routine emergency"`
		ScheduledDate string `json:"scheduled_date" validate:"required"`
		Description   string `json:"description" validate:"omitempty"`
	}

	CompleteMaintenanceRequest struct {
		PerformedBy string `json:"performed_by" validate:"required"`
		Notes       string `json:"notes" validate:"omitempty"`
		NextMaintenanceDate string `json:"next_maintenance_date" validate:"omitempty"`
	}

	EquipmentResponse struct {
		ID       string   `json:"id"`
		Name     string   `json:"name"`
		Type     string   `json:"type"`
		Status   string   `json:"status"`
		Capacity *float64 `json:"capacity,omitempty"`
		Manufacturer string `json:"manufacturer,omitempty"`
		ModelNumber  string `json:"model_number,omitempty"`
		SerialNumber string `json:"serial_number,omitempty"`
		Location     string `json:"location,omitempty"`
		IsCritical   bool   `json:"is_critical"`
		InstallationDate    *time.Time `json:"installation_date,omitempty"`
		LastMaintenanceDate *time.Time `json:"last_maintenance_date,omitempty"`
		NextMaintenanceDate *time.Time `json:"next_maintenance_date,omitempty"`
		Notes string `json:"notes,omitempty"`
	}

	MaintenanceResponse struct {
		ID          string     `json:"id"`
		EquipmentID string     `json:"equipment_id"`
		Type        string     `json:"type"`
		Status      string     `json:"status"`
		Description string     `json:"description,omitempty"`
		PerformedBy string     `json:"performed_by,omitempty"`
		ScheduledDate time.Time `json:"scheduled_date"`
		CompletedDate *time.Time `json:"completed_date,omitempty"`
	}
)
