package quality

import (
	"context"

	"Distillery-Tracker/entities"

	"gorm.io/gorm"
)

type (
	QualityRepository interface {
		CreateCheck(ctx context.Context, check *entities.QualityCheck) error
		GetCheckByID(ctx context.Context, id string) (*entities.QualityCheck, error)
		UpdateCheck(ctx context.Context, check *entities.QualityCheck) error
		DeleteCheck(ctx context.Context, id string) error
		GetChecksByBatch(ctx context.Context, batchID string, page, limit int) ([]entities.QualityCheck, int64, error)
	}

	qualityRepository struct {
		db *gorm.DB
	}
)

func NewQualityRepository(db *gorm.DB) QualityRepository {
	return &qualityRepository{db: db}
}

func (r *qualityRepository) CreateCheck(ctx context.Context, check *entities.QualityCheck) error {
	return r.db.WithContext(ctx).Create(check).Error
}

func (r *qualityRepository) GetCheckByID(ctx context.Context, id string) (*entities.QualityCheck, error) {
	var check entities.QualityCheck
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&check).Error; err != nil {
		return nil, err
	}
	return &check, nil
}

func (r *qualityRepository) UpdateCheck(ctx context.Context, check *entities.QualityCheck) error {
	return r.db.WithContext(ctx).Save(check).Error
}

func (r *qualityRepository) DeleteCheck(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.QualityCheck{}).Error
}

func (r *qualityRepository) GetChecksByBatch(ctx context.Context, batchID string, page, limit int) ([]entities.QualityCheck, int64, error) {
	var checks []entities.QualityCheck
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.QualityCheck{}).Where("batch_id = ?", batchID)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Offset(offset).Limit(limit).Order("checked_at desc").Find(&checks).Error; err != nil {
		return nil, 0, err
	}

	return checks, count, nil
}
