package trial

import (
	"context"

	"Distillery-Tracker/entities"

	"gorm.io/gorm"
)

type (
	TrialRepository interface {
		CreateTrial(ctx context.Context, trial *entities.FermentationTrial) error
		GetTrialByID(ctx context.Context, id string) (*entities.FermentationTrial, error)
		UpdateTrial(ctx context.Context, trial *entities.FermentationTrial) error
		DeleteTrial(ctx context.Context, id string) error
		GetTrialsByBatch(ctx context.Context, batchID string) ([]*entities.FermentationTrial, error)
		CountTrialsByBatch(ctx context.Context, batchID string) (int64, error)

		AddReading(ctx context.Context, reading *entities.TrialReading) error
		GetReadingsByTrial(ctx context.Context, trialID string) ([]entities.TrialReading, error)
	}

	trialRepository struct {
		db *gorm.DB
	}
)

func NewTrialRepository(db *gorm.DB) TrialRepository {
	return &trialRepository{db: db}
}

func (r *trialRepository) CreateTrial(ctx context.Context, trial *entities.FermentationTrial) error {
	return r.db.WithContext(ctx).Create(trial).Error
}

func (r *trialRepository) GetTrialByID(ctx context.Context, id string) (*entities.FermentationTrial, error) {
	var trial entities.FermentationTrial
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&trial).Error; err != nil {
		return nil, err
	}
	return &trial, nil
}

func (r *trialRepository) UpdateTrial(ctx context.Context, trial *entities.FermentationTrial) error {
	return r.db.WithContext(ctx).Save(trial).Error
}

func (r *trialRepository) DeleteTrial(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FermentationTrial{}).Error
}

func (r *trialRepository) GetTrialsByBatch(ctx context.Context, batchID string) ([]*entities.FermentationTrial, error) {
	var trials []*entities.FermentationTrial
	if err := r.db.WithContext(ctx).
		Where("batch_id = ?", batchID).
		Order("created_at asc").
		Find(&trials).Error; err != nil {
		return nil, err
	}
	return trials, nil
}

func (r *trialRepository) CountTrialsByBatch(ctx context.Context, batchID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.FermentationTrial{}).
		Where("batch_id = ?", batchID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *trialRepository) AddReading(ctx context.Context, reading *entities.TrialReading) error {
	return r.db.WithContext(ctx).Create(reading).Error
}

// GetReadingsByTrial returns readings in arrival order; they are stored
// append-only and never re-sorted by reading date.
func (r *trialRepository) GetReadingsByTrial(ctx context.Context, trialID string) ([]entities.TrialReading, error) {
	var readings []entities.TrialReading
	if err := r.db.WithContext(ctx).
		Where("trial_id = ?", trialID).
		Order("created_at asc").
		Find(&readings).Error; err != nil {
		return nil, err
	}
	return readings, nil
}
