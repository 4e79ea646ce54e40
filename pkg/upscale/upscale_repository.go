package upscale

import (
	"context"

	"Distillery-Tracker/entities"

	"gorm.io/gorm"
)

type (
	UpscaleRepository interface {
		CreateUpscale(ctx context.Context, run *entities.UpscaleRun) error
		GetUpscaleByID(ctx context.Context, id string) (*entities.UpscaleRun, error)
		UpdateUpscale(ctx context.Context, run *entities.UpscaleRun) error
		GetUpscalesByTrial(ctx context.Context, trialID string) ([]entities.UpscaleRun, error)
	}

	upscaleRepository struct {
		db *gorm.DB
	}
)

func NewUpscaleRepository(db *gorm.DB) UpscaleRepository {
	return &upscaleRepository{db: db}
}

func (r *upscaleRepository) CreateUpscale(ctx context.Context, run *entities.UpscaleRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *upscaleRepository) GetUpscaleByID(ctx context.Context, id string) (*entities.UpscaleRun, error) {
	var run entities.UpscaleRun
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&run).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *upscaleRepository) UpdateUpscale(ctx context.Context, run *entities.UpscaleRun) error {
	return r.db.WithContext(ctx).Save(run).Error
}

// GetUpscalesByTrial returns runs in ladder order.
func (r *upscaleRepository) GetUpscalesByTrial(ctx context.Context, trialID string) ([]entities.UpscaleRun, error) {
	var runs []entities.UpscaleRun
	if err := r.db.WithContext(ctx).
		Where("trial_id = ?", trialID).
		Order("stage_index asc").
		Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}
