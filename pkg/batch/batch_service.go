package batch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"Distillery-Tracker/domain"
	"Distillery-Tracker/entities"
	"Distillery-Tracker/pkg/journey"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// UpdatePublisher pushes batch updates to connected WebSocket clients.
	// Implemented by ws.Hub; a no-op stands in for tests.
	UpdatePublisher interface {
		PublishBatchUpdate(update domain.BatchUpdateEvent)
	}

	BatchService interface {
		CreateBatch(ctx context.Context, req domain.CreateBatchRequest) (domain.BatchResponse, error)
		GetBatch(ctx context.Context, id string) (domain.BatchResponse, error)
		GetBatches(ctx context.Context, status string, page, limit int) ([]domain.BatchResponse, int64, error)
		UpdateBatch(ctx context.Context, id string, req domain.UpdateBatchRequest) (domain.BatchResponse, error)
		UpdateStatus(ctx context.Context, id string, req domain.UpdateBatchStatusRequest) (domain.BatchResponse, error)
		AdvanceStage(ctx context.Context, id string) (domain.BatchResponse, error)
		DeleteBatch(ctx context.Context, id string) error
		GetDashboardStats(ctx context.Context) (domain.BatchDashboardResponse, error)
	}

	batchService struct {
		batchRepository   BatchRepository
		journeyRepository journey.JourneyRepository
		publisher         UpdatePublisher
	}
)

func NewBatchService(batchRepository BatchRepository, journeyRepository journey.JourneyRepository, publisher UpdatePublisher) BatchService {
	return &batchService{
		batchRepository:   batchRepository,
		journeyRepository: journeyRepository,
		publisher:         publisher,
	}
}

func (s *batchService) CreateBatch(ctx context.Context, req domain.CreateBatchRequest) (domain.BatchResponse, error) {
	if req.Quantity <= 0 {
		return domain.BatchResponse{}, domain.ErrInvalidQuantity
	}
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return domain.BatchResponse{}, domain.ErrInvalidStartDate
	}

	var expected *time.Time
	if req.ExpectedCompletionDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpectedCompletionDate)
		if err != nil {
			return domain.BatchResponse{}, domain.ErrInvalidStartDate
		}
		expected = &parsed
	}

	code, err := s.nextBatchCode(ctx, req.FruitType, req.ProcessType, startDate)
	if err != nil {
		return domain.BatchResponse{}, err
	}

	batch := &entities.Batch{
		ID:           uuid.New(),
		BatchCode:    code,
		Name:         req.Name,
		FruitType:    req.FruitType,
		ProcessType:  req.ProcessType,
		Status:       domain.BatchStatusActive,
		CurrentStage: journey.Stages[0].ID,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		StartDate:    startDate,
		ExpectedCompletionDate: expected,
		Notes:        req.Notes,
	}
	if req.SupplierID != "" {
		supplierID, err := uuid.Parse(req.SupplierID)
		if err != nil {
			return domain.BatchResponse{}, domain.ErrParseUUID
		}
		batch.SupplierID = &supplierID
	}

	if err := s.batchRepository.CreateBatch(ctx, batch); err != nil {
		return domain.BatchResponse{}, err
	}

	event := &entities.BatchEvent{
		ID:        uuid.New(),
		BatchID:   batch.ID,
		Stage:     batch.CurrentStage,
		Message:   fmt.Sprintf("Batch %s received", batch.BatchCode),
		Timestamp: time.Now().UTC(),
	}
	if err := s.journeyRepository.AppendEvent(ctx, event); err != nil {
		return domain.BatchResponse{}, err
	}

	s.publish(ctx, batch)
	return toResponse(batch), nil
}

func (s *batchService) GetBatch(ctx context.Context, id string) (domain.BatchResponse, error) {
	batch, err := s.batchRepository.GetBatchByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.BatchResponse{}, domain.ErrBatchNotFound
		}
		return domain.BatchResponse{}, err
	}
	return toResponse(batch), nil
}

func (s *batchService) GetBatches(ctx context.Context, status string, page, limit int) ([]domain.BatchResponse, int64, error) {
	batches, count, err := s.batchRepository.GetBatches(ctx, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.BatchResponse, 0, len(batches))
	for _, b := range batches {
		result = append(result, toResponse(b))
	}
	return result, count, nil
}

func (s *batchService) UpdateBatch(ctx context.Context, id string, req domain.UpdateBatchRequest) (domain.BatchResponse, error) {
	batch, err := s.batchRepository.GetBatchByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.BatchResponse{}, domain.ErrBatchNotFound
		}
		return domain.BatchResponse{}, err
	}

	if req.Name != "" {
		batch.Name = req.Name
	}
	if req.Quantity > 0 {
		batch.Quantity = req.Quantity
	}
	if req.Unit != "" {
		batch.Unit = req.Unit
	}
	if req.ExpectedCompletionDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpectedCompletionDate)
		if err != nil {
			return domain.BatchResponse{}, domain.ErrInvalidStartDate
		}
		batch.ExpectedCompletionDate = &parsed
	}
	if req.Temperature != nil {
		batch.Temperature = req.Temperature
	}
	if req.PH != nil {
		batch.PH = req.PH
	}
	if req.Brix != nil {
		batch.Brix = req.Brix
	}
	if req.AlcoholContent != nil {
		batch.AlcoholContent = req.AlcoholContent
	}
	if req.Notes != "" {
		batch.Notes = req.Notes
	}

	if err := s.batchRepository.UpdateBatch(ctx, batch); err != nil {
		return domain.BatchResponse{}, err
	}

	s.publish(ctx, batch)
	return toResponse(batch), nil
}

// UpdateStatus applies a soft status change. A completed batch is
// terminal and never transitions again; removal is the hard delete.
func (s *batchService) UpdateStatus(ctx context.Context, id string, req domain.UpdateBatchStatusRequest) (domain.BatchResponse, error) {
	batch, err := s.batchRepository.GetBatchByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.BatchResponse{}, domain.ErrBatchNotFound
		}
		return domain.BatchResponse{}, err
	}
	if batch.Status == domain.BatchStatusCompleted {
		return domain.BatchResponse{}, domain.ErrBatchCompleted
	}

	batch.Status = req.Status
	if req.Status == domain.BatchStatusCompleted {
		batch.Progress = 100
	}
	if err := s.batchRepository.UpdateBatch(ctx, batch); err != nil {
		return domain.BatchResponse{}, err
	}

	s.publish(ctx, batch)
	return toResponse(batch), nil
}

// AdvanceStage moves the batch to the next journey stage, appends the
// matching journey event and recomputes coarse progress from the stage
// ordinal.
func (s *batchService) AdvanceStage(ctx context.Context, id string) (domain.BatchResponse, error) {
	batch, err := s.batchRepository.GetBatchByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.BatchResponse{}, domain.ErrBatchNotFound
		}
		return domain.BatchResponse{}, err
	}

	next, err := journey.NextStage(batch.CurrentStage)
	if err != nil {
		return domain.BatchResponse{}, err
	}

	batch.CurrentStage = next
	ord, _ := journey.StageOrdinal(next)
	batch.Progress = float64(ord) / float64(len(journey.Stages)-1) * 100
	if err := s.batchRepository.UpdateBatch(ctx, batch); err != nil {
		return domain.BatchResponse{}, err
	}

	event := &entities.BatchEvent{
		ID:        uuid.New(),
		BatchID:   batch.ID,
		Stage:     next,
		Message:   fmt.Sprintf("Entered %s stage", stageLabel(next)),
		Timestamp: time.Now().UTC(),
	}
	if err := s.journeyRepository.AppendEvent(ctx, event); err != nil {
		return domain.BatchResponse{}, err
	}

	s.publish(ctx, batch)
	return toResponse(batch), nil
}

func (s *batchService) DeleteBatch(ctx context.Context, id string) error {
	if _, err := s.batchRepository.GetBatchByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrBatchNotFound
		}
		return err
	}
	return s.batchRepository.DeleteBatch(ctx, id)
}

func (s *batchService) GetDashboardStats(ctx context.Context) (domain.BatchDashboardResponse, error) {
	return s.batchRepository.GetDashboardStats(ctx)
}

func (s *batchService) publish(ctx context.Context, batch *entities.Batch) {
	if s.publisher == nil {
		return
	}
	score, err := s.batchRepository.QualityScore(ctx, batch.ID.String())
	if err != nil {
		score = 0
	}
	s.publisher.PublishBatchUpdate(domain.BatchUpdateEvent{
		BatchID:      batch.ID.String(),
		Status:       batch.Status,
		Progress:     batch.Progress,
		CurrentStage: batch.CurrentStage,
		QualityScore: score,
	})
}

// nextBatchCode builds codes like 240321-AP-FE-001: date, fruit code,
// process code, then the day's sequence number.
func (s *batchService) nextBatchCode(ctx context.Context, fruitType, processType string, startDate time.Time) (string, error) {
	prefix := fmt.Sprintf("%s-%s-%s",
		startDate.Format("060102"),
		strings.ToUpper(fruitType[:2]),
		strings.ToUpper(processType[:2]),
	)
	seq, err := s.batchRepository.CountBatchCodesWithPrefix(ctx, prefix)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%03d", prefix, seq+1), nil
}

func stageLabel(stage string) string {
	for _, s := range journey.Stages {
		if s.ID == stage {
			return s.Label
		}
	}
	return stage
}

func toResponse(batch *entities.Batch) domain.BatchResponse {
	return domain.BatchResponse{
		ID:           batch.ID.String(),
		BatchCode:    batch.BatchCode,
		Name:         batch.Name,
		FruitType:    batch.FruitType,
		ProcessType:  batch.ProcessType,
		Status:       batch.Status,
		CurrentStage: batch.CurrentStage,
		Progress:     batch.Progress,
		Quantity:     batch.Quantity,
		Unit:         batch.Unit,
		StartDate:    batch.StartDate,
		ExpectedCompletionDate: batch.ExpectedCompletionDate,
		Temperature:    batch.Temperature,
		PH:             batch.PH,
		Brix:           batch.Brix,
		AlcoholContent: batch.AlcoholContent,
		Notes:          batch.Notes,
		CreatedAt:      batch.CreatedAt,
	}
}
