package batch

import (
	"context"

	"Distillery-Tracker/domain"
	"Distillery-Tracker/entities"

	"gorm.io/gorm"
)

type (
	BatchRepository interface {
		CreateBatch(ctx context.Context, batch *entities.Batch) error
		GetBatchByID(ctx context.Context, id string) (*entities.Batch, error)
		UpdateBatch(ctx context.Context, batch *entities.Batch) error
		DeleteBatch(ctx context.Context, id string) error
		GetBatches(ctx context.Context, status string, page, limit int) ([]*entities.Batch, int64, error)
		CountBatchCodesWithPrefix(ctx context.Context, prefix string) (int64, error)
		GetDashboardStats(ctx context.Context) (domain.BatchDashboardResponse, error)
		QualityScore(ctx context.Context, batchID string) (float64, error)
	}

	batchRepository struct {
		db *gorm.DB
	}
)

func NewBatchRepository(db *gorm.DB) BatchRepository {
	return &batchRepository{db: db}
}

func (r *batchRepository) CreateBatch(ctx context.Context, batch *entities.Batch) error {
	return r.db.WithContext(ctx).Create(batch).Error
}

func (r *batchRepository) GetBatchByID(ctx context.Context, id string) (*entities.Batch, error) {
	var batch entities.Batch
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&batch).Error; err != nil {
		return nil, err
	}
	return &batch, nil
}

func (r *batchRepository) UpdateBatch(ctx context.Context, batch *entities.Batch) error {
	return r.db.WithContext(ctx).Save(batch).Error
}

// DeleteBatch is a hard delete with no cascade; journey events, trials
// and quality checks referencing the batch are left in place.
func (r *batchRepository) DeleteBatch(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Batch{}).Error
}

func (r *batchRepository) GetBatches(ctx context.Context, status string, page, limit int) ([]*entities.Batch, int64, error) {
	var batches []*entities.Batch
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Batch{})
	if status != "all" && status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("start_date desc").Find(&batches).Error; err != nil {
		return nil, 0, err
	}

	return batches, count, nil
}

func (r *batchRepository) CountBatchCodesWithPrefix(ctx context.Context, prefix string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Batch{}).
		Where("batch_code LIKE ?", prefix+"%").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *batchRepository) GetDashboardStats(ctx context.Context) (domain.BatchDashboardResponse, error) {
	var stats domain.BatchDashboardResponse

	counts := []struct {
		status string
		target *int64
	}{
		{domain.BatchStatusActive, &stats.ActiveBatches},
		{domain.BatchStatusInProgress, &stats.InProgressBatches},
		{domain.BatchStatusCompleted, &stats.CompletedBatches},
		{domain.BatchStatusPaused, &stats.PausedBatches},
		{domain.BatchStatusCancelled, &stats.CancelledBatches},
	}

	if err := r.db.WithContext(ctx).Model(&entities.Batch{}).
		Count(&stats.TotalBatches).Error; err != nil {
		return stats, err
	}
	for _, c := range counts {
		if err := r.db.WithContext(ctx).Model(&entities.Batch{}).
			Where("status = ?", c.status).
			Count(c.target).Error; err != nil {
			return stats, err
		}
	}

	return stats, nil
}

// QualityScore averages the batch's quality check results: pass counts
// 100, warning 50, fail 0. A batch with no checks scores 0.
func (r *batchRepository) QualityScore(ctx context.Context, batchID string) (float64, error) {
	var checks []entities.QualityCheck
	if err := r.db.WithContext(ctx).
		Where("batch_id = ?", batchID).
		Find(&checks).Error; err != nil {
		return 0, err
	}
	if len(checks) == 0 {
		return 0, nil
	}

	var total float64
	for _, c := range checks {
		switch c.Result {
		case domain.QualityResultPass:
			total += 100
		case domain.QualityResultWarning:
			total += 50
		}
	}
	return total / float64(len(checks)), nil
}
