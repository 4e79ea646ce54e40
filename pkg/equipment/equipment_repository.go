package equipment

import (
	"context"
	"time"

	"Distillery-Tracker/domain"
	"Distillery-Tracker/entities"

	"gorm.io/gorm"
)

type (
	EquipmentRepository interface {
		CreateEquipment(ctx context.Context, equipment *entities.Equipment) error
		GetEquipmentByID(ctx context.Context, id string) (*entities.Equipment, error)
		UpdateEquipment(ctx context.Context, equipment *entities.Equipment) error
		DeleteEquipment(ctx context.Context, id string) error
		GetEquipment(ctx context.Context, status string, page, limit int) ([]entities.Equipment, int64, error)

		CreateMaintenance(ctx context.Context, record *entities.MaintenanceRecord) error
		GetMaintenanceByID(ctx context.Context, id string) (*entities.MaintenanceRecord, error)
		UpdateMaintenance(ctx context.Context, record *entities.MaintenanceRecord) error
		GetMaintenanceByEquipment(ctx context.Context, equipmentID string) ([]entities.MaintenanceRecord, error)
		GetOverdueMaintenance(ctx context.Context, asOf time.Time) ([]entities.MaintenanceRecord, error)
	}

	equipmentRepository struct {
		db *gorm.DB
	}
)

func NewEquipmentRepository(db *gorm.DB) EquipmentRepository {
	return &equipmentRepository{db: db}
}

func (r *equipmentRepository) CreateEquipment(ctx context.Context, equipment *entities.Equipment) error {
	return r.db.WithContext(ctx).Create(equipment).Error
}

func (r *equipmentRepository) GetEquipmentByID(ctx context.Context, id string) (*entities.Equipment, error) {
	var equipment entities.Equipment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&equipment).Error; err != nil {
		return nil, err
	}
	return &equipment, nil
}

func (r *equipmentRepository) UpdateEquipment(ctx context.Context, equipment *entities.Equipment) error {
	return r.db.WithContext(ctx).Save(equipment).Error
}

func (r *equipmentRepository) DeleteEquipment(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Equipment{}).Error
}

func (r *equipmentRepository) GetEquipment(ctx context.Context, status string, page, limit int) ([]entities.Equipment, int64, error) {
	var equipment []entities.Equipment
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Equipment{})
	if status != "all" && status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&equipment).Error; err != nil {
		return nil, 0, err
	}

	return equipment, count, nil
}

func (r *equipmentRepository) CreateMaintenance(ctx context.Context, record *entities.MaintenanceRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *equipmentRepository) GetMaintenanceByID(ctx context.Context, id string) (*entities.MaintenanceRecord, error) {
	var record entities.MaintenanceRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *equipmentRepository) UpdateMaintenance(ctx context.Context, record *entities.MaintenanceRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *equipmentRepository) GetMaintenanceByEquipment(ctx context.Context, equipmentID string) ([]entities.MaintenanceRecord, error) {
	var records []entities.MaintenanceRecord
	if err := r.db.WithContext(ctx).
		Where("equipment_id = ?", equipmentID).
		Order("scheduled_date desc").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *equipmentRepository) GetOverdueMaintenance(ctx context.Context, asOf time.Time) ([]entities.MaintenanceRecord, error) {
	var records []entities.MaintenanceRecord
	if err := r.db.WithContext(ctx).
		Where("status = ? AND scheduled_date < ?", domain.MaintenanceStatusScheduled, asOf).
		Order("scheduled_date asc").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
