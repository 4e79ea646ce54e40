package journey

import (
	"context"
	"errors"
	"time"

	"Distillery-Tracker/domain"
	"Distillery-Tracker/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// BatchSource is the slice of the batch repository the journey
	// service needs; satisfied by batch.BatchRepository.
	BatchSource interface {
		GetBatchByID(ctx context.Context, id string) (*entities.Batch, error)
	}

	JourneyService interface {
		GetTimeline(ctx context.Context, batchID string) (domain.JourneyTimelineResponse, error)
		AppendEvent(ctx context.Context, batchID string, req domain.AppendEventRequest) (domain.JourneyEventResponse, error)
		GetEvents(ctx context.Context, batchID string) ([]domain.JourneyEventResponse, error)
	}

	journeyService struct {
		journeyRepository JourneyRepository
		batches           BatchSource
	}
)

func NewJourneyService(journeyRepository JourneyRepository, batches BatchSource) JourneyService {
	return &journeyService{
		journeyRepository: journeyRepository,
		batches:           batches,
	}
}

func (s *journeyService) GetTimeline(ctx context.Context, batchID string) (domain.JourneyTimelineResponse, error) {
	batch, err := s.batches.GetBatchByID(ctx, batchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.JourneyTimelineResponse{}, domain.ErrBatchNotFound
		}
		return domain.JourneyTimelineResponse{}, err
	}

	stages, err := Classify(batch.CurrentStage)
	if err != nil {
		return domain.JourneyTimelineResponse{}, err
	}

	events, err := s.journeyRepository.GetEventsByBatch(ctx, batchID)
	if err != nil {
		return domain.JourneyTimelineResponse{}, err
	}

	return domain.JourneyTimelineResponse{
		BatchID:      batch.ID.String(),
		CurrentStage: batch.CurrentStage,
		Stages:       Enrich(stages, events),
	}, nil
}

func (s *journeyService) AppendEvent(ctx context.Context, batchID string, req domain.AppendEventRequest) (domain.JourneyEventResponse, error) {
	batch, err := s.batches.GetBatchByID(ctx, batchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.JourneyEventResponse{}, domain.ErrBatchNotFound
		}
		return domain.JourneyEventResponse{}, err
	}

	if _, err := StageOrdinal(req.Stage); err != nil {
		return domain.JourneyEventResponse{}, err
	}

	event := &entities.BatchEvent{
		ID:        uuid.New(),
		BatchID:   batch.ID,
		Stage:     req.Stage,
		Message:   req.Message,
		Timestamp: time.Now().UTC(),
	}
	if err := s.journeyRepository.AppendEvent(ctx, event); err != nil {
		return domain.JourneyEventResponse{}, err
	}

	return domain.JourneyEventResponse{
		ID:        event.ID.String(),
		Stage:     event.Stage,
		Message:   event.Message,
		Timestamp: event.Timestamp,
	}, nil
}

func (s *journeyService) GetEvents(ctx context.Context, batchID string) ([]domain.JourneyEventResponse, error) {
	events, err := s.journeyRepository.GetEventsByBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.JourneyEventResponse, 0, len(events))
	for _, ev := range events {
		result = append(result, domain.JourneyEventResponse{
			ID:        ev.ID.String(),
			Stage:     ev.Stage,
			Message:   ev.Message,
			Timestamp: ev.Timestamp,
		})
	}
	return result, nil
}
