package equipment

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"Distillery-Tracker/domain"
	"Distillery-Tracker/entities"
	"Distillery-Tracker/internal/utils"
	"Distillery-Tracker/internal/utils/mailing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	EquipmentService interface {
		CreateEquipment(ctx context.Context, req domain.CreateEquipmentRequest) (domain.EquipmentResponse, error)
		GetEquipment(ctx context.Context, status string, page, limit int) ([]domain.EquipmentResponse, int64, error)
		GetEquipmentByID(ctx context.Context, id string) (domain.EquipmentResponse, error)
		UpdateEquipment(ctx context.Context, id string, req domain.UpdateEquipmentRequest) (domain.EquipmentResponse, error)
		DeleteEquipment(ctx context.Context, id string) error

		ScheduleMaintenance(ctx context.Context, req domain.ScheduleMaintenanceRequest) (domain.MaintenanceResponse, error)
		CompleteMaintenance(ctx context.Context, id string, req domain.CompleteMaintenanceRequest) (domain.MaintenanceResponse, error)
		GetMaintenanceByEquipment(ctx context.Context, equipmentID string) ([]domain.MaintenanceResponse, error)
		NotifyOverdueMaintenance(ctx context.Context) (int, error)
	}

	equipmentService struct {
		equipmentRepository EquipmentRepository
	}
)

func NewEquipmentService(equipmentRepository EquipmentRepository) EquipmentService {
	return &equipmentService{equipmentRepository: equipmentRepository}
}

func (s *equipmentService) CreateEquipment(ctx context.Context, req domain.CreateEquipmentRequest) (domain.EquipmentResponse, error) {
	equipment := &entities.Equipment{
		ID:     uuid.New(),
		Name:   req.Name,
		Type:   req.Type,
		Status: domain.EquipmentStatusOperational,
		Capacity:     req.Capacity,
		Manufacturer: req.Manufacturer,
		ModelNumber:  req.ModelNumber,
		SerialNumber: req.SerialNumber,
		Location:     req.Location,
		IsCritical:   req.IsCritical,
		Notes:        req.Notes,
	}
	if req.InstallationDate != "" {
		parsed, err := time.Parse("2006-01-02", req.InstallationDate)
		if err != nil {
			return domain.EquipmentResponse{}, domain.ErrInvalidDate
		}
		equipment.InstallationDate = &parsed
	}

	if err := s.equipmentRepository.CreateEquipment(ctx, equipment); err != nil {
		return domain.EquipmentResponse{}, err
	}
	return equipmentToResponse(equipment), nil
}

func (s *equipmentService) GetEquipment(ctx context.Context, status string, page, limit int) ([]domain.EquipmentResponse, int64, error) {
	equipment, count, err := s.equipmentRepository.GetEquipment(ctx, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.EquipmentResponse, 0, len(equipment))
	for i := range equipment {
		result = append(result, equipmentToResponse(&equipment[i]))
	}
	return result, count, nil
}

func (s *equipmentService) GetEquipmentByID(ctx context.Context, id string) (domain.EquipmentResponse, error) {
	equipment, err := s.equipmentRepository.GetEquipmentByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.EquipmentResponse{}, domain.ErrEquipmentNotFound
		}
		return domain.EquipmentResponse{}, err
	}
	return equipmentToResponse(equipment), nil
}

func (s *equipmentService) UpdateEquipment(ctx context.Context, id string, req domain.UpdateEquipmentRequest) (domain.EquipmentResponse, error) {
	equipment, err := s.equipmentRepository.GetEquipmentByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.EquipmentResponse{}, domain.ErrEquipmentNotFound
		}
		return domain.EquipmentResponse{}, err
	}
	if equipment.Status == domain.EquipmentStatusDecommissioned {
		return domain.EquipmentResponse{}, domain.ErrEquipmentDecommissioned
	}

	if req.Name != "" {
		equipment.Name = req.Name
	}
	if req.Status != "" {
		equipment.Status = req.Status
	}
	if req.Capacity != nil {
		equipment.Capacity = req.Capacity
	}
	if req.Location != "" {
		equipment.Location = req.Location
	}
	if req.IsCritical != nil {
		equipment.IsCritical = *req.IsCritical
	}
	if req.Notes != "" {
		equipment.Notes = req.Notes
	}

	if err := s.equipmentRepository.UpdateEquipment(ctx, equipment); err != nil {
		return domain.EquipmentResponse{}, err
	}
	return equipmentToResponse(equipment), nil
}

func (s *equipmentService) DeleteEquipment(ctx context.Context, id string) error {
	if _, err := s.equipmentRepository.GetEquipmentByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrEquipmentNotFound
		}
		return err
	}
	return s.equipmentRepository.DeleteEquipment(ctx, id)
}

func (s *equipmentService) ScheduleMaintenance(ctx context.Context, req domain.ScheduleMaintenanceRequest) (domain.MaintenanceResponse, error) {
	equipment, err := s.equipmentRepository.GetEquipmentByID(ctx, req.EquipmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MaintenanceResponse{}, domain.ErrEquipmentNotFound
		}
		return domain.MaintenanceResponse{}, err
	}
	if equipment.Status == domain.EquipmentStatusDecommissioned {
		return domain.MaintenanceResponse{}, domain.ErrEquipmentDecommissioned
	}

	scheduledDate, err := time.Parse("2006-01-02", req.ScheduledDate)
	if err != nil {
		return domain.MaintenanceResponse{}, domain.ErrInvalidScheduledDate
	}

	record := &entities.MaintenanceRecord{
		ID:          uuid.New(),
		EquipmentID: equipment.ID,
		Type:        req.Type,
		Status:      domain.MaintenanceStatusScheduled,
		Description: req.Description,
		ScheduledDate: scheduledDate,
	}
	if err := s.equipmentRepository.CreateMaintenance(ctx, record); err != nil {
		return domain.MaintenanceResponse{}, err
	}

	equipment.NextMaintenanceDate = &scheduledDate
	if err := s.equipmentRepository.UpdateEquipment(ctx, equipment); err != nil {
		return domain.MaintenanceResponse{}, err
	}

	return maintenanceToResponse(record), nil
}

func (s *equipmentService) CompleteMaintenance(ctx context.Context, id string, req domain.CompleteMaintenanceRequest) (domain.MaintenanceResponse, error) {
	record, err := s.equipmentRepository.GetMaintenanceByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MaintenanceResponse{}, domain.ErrMaintenanceNotFound
		}
		return domain.MaintenanceResponse{}, err
	}
	if record.Status != domain.MaintenanceStatusScheduled && record.Status != domain.MaintenanceStatusInProgress {
		return domain.MaintenanceResponse{}, domain.ErrMaintenanceNotOpen
	}

	now := time.Now().UTC()
	record.Status = domain.MaintenanceStatusCompleted
	record.PerformedBy = req.PerformedBy
	record.CompletedDate = &now
	if req.Notes != "" {
		record.Description = req.Notes
	}
	if err := s.equipmentRepository.UpdateMaintenance(ctx, record); err != nil {
		return domain.MaintenanceResponse{}, err
	}

	equipment, err := s.equipmentRepository.GetEquipmentByID(ctx, record.EquipmentID.String())
	if err == nil {
		equipment.LastMaintenanceDate = &now
		equipment.NextMaintenanceDate = nil
		if req.NextMaintenanceDate != "" {
			if next, err := time.Parse("2006-01-02", req.NextMaintenanceDate); err == nil {
				equipment.NextMaintenanceDate = &next
			}
		}
		if err := s.equipmentRepository.UpdateEquipment(ctx, equipment); err != nil {
			return domain.MaintenanceResponse{}, err
		}
	}

	return maintenanceToResponse(record), nil
}

func (s *equipmentService) GetMaintenanceByEquipment(ctx context.Context, equipmentID string) ([]domain.MaintenanceResponse, error) {
	if _, err := s.equipmentRepository.GetEquipmentByID(ctx, equipmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEquipmentNotFound
		}
		return nil, err
	}

	records, err := s.equipmentRepository.GetMaintenanceByEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.MaintenanceResponse, 0, len(records))
	for i := range records {
		result = append(result, maintenanceToResponse(&records[i]))
	}
	return result, nil
}

// NotifyOverdueMaintenance flags overdue records and mails the
// configured alert address. Returns how many records went overdue.
func (s *equipmentService) NotifyOverdueMaintenance(ctx context.Context) (int, error) {
	records, err := s.equipmentRepository.GetOverdueMaintenance(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}

	for i := range records {
		records[i].Status = domain.MaintenanceStatusOverdue
		if err := s.equipmentRepository.UpdateMaintenance(ctx, &records[i]); err != nil {
			return 0, err
		}
	}

	alertEmail := utils.GetConfig("MAINTENANCE_ALERT_EMAIL")
	if alertEmail != "" {
		body := fmt.Sprintf("<p>%d maintenance record(s) are overdue.</p>", len(records))
		if err := mailing.SendMail(alertEmail, "Overdue equipment maintenance", body); err != nil {
			log.Printf("failed to send maintenance alert: %v", err)
		}
	}

	return len(records), nil
}

func equipmentToResponse(equipment *entities.Equipment) domain.EquipmentResponse {
	return domain.EquipmentResponse{
		ID:       equipment.ID.String(),
		Name:     equipment.Name,
		Type:     equipment.Type,
		Status:   equipment.Status,
		Capacity: equipment.Capacity,
		Manufacturer: equipment.Manufacturer,
		ModelNumber:  equipment.ModelNumber,
		SerialNumber: equipment.SerialNumber,
		Location:     equipment.Location,
		IsCritical:   equipment.IsCritical,
		InstallationDate:    equipment.InstallationDate,
		LastMaintenanceDate: equipment.LastMaintenanceDate,
		NextMaintenanceDate: equipment.NextMaintenanceDate,
		Notes: equipment.Notes,
	}
}

func maintenanceToResponse(record *entities.MaintenanceRecord) domain.MaintenanceResponse {
	return domain.MaintenanceResponse{
		ID:          record.ID.String(),
		EquipmentID: record.EquipmentID.String(),
		Type:        record.Type,
		Status:      record.Status,
		Description: record.Description,
		PerformedBy: record.PerformedBy,
		ScheduledDate: record.ScheduledDate,
		CompletedDate: record.CompletedDate,
	}
}
