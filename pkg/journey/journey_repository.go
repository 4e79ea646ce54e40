package journey

import (
	"context"

	"Distillery-Tracker/entities"

	"gorm.io/gorm"
)

type (
	JourneyRepository interface {
		AppendEvent(ctx context.Context, event *entities.BatchEvent) error
		GetEventsByBatch(ctx context.Context, batchID string) ([]entities.BatchEvent, error)
	}

	journeyRepository struct {
		db *gorm.DB
	}
)

func NewJourneyRepository(db *gorm.DB) JourneyRepository {
	return &journeyRepository{db: db}
}

func (r *journeyRepository) AppendEvent(ctx context.Context, event *entities.BatchEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *journeyRepository) GetEventsByBatch(ctx context.Context, batchID string) ([]entities.BatchEvent, error) {
	var events []entities.BatchEvent
	if err := r.db.WithContext(ctx).
		Where("batch_id = ?", batchID).
		Order("timestamp asc").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
