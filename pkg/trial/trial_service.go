package trial

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"Distillery-Tracker/domain"
	"Distillery-Tracker/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// BatchSource is the slice of the batch repository the trial service
	// needs; satisfied by batch.BatchRepository.
	BatchSource interface {
		GetBatchByID(ctx context.Context, id string) (*entities.Batch, error)
	}

	TrialService interface {
		CreateTrial(ctx context.Context, req domain.CreateTrialRequest) (domain.TrialResponse, error)
		GetTrial(ctx context.Context, id string) (domain.TrialResponse, error)
		GetTrialsByBatch(ctx context.Context, batchID string) ([]domain.TrialResponse, error)
		DeleteTrial(ctx context.Context, id string) error
		AddReading(ctx context.Context, trialID string, req domain.AddReadingRequest) (domain.TrialReadingResponse, error)
		SetPath(ctx context.Context, trialID string, req domain.SetPathRequest) (domain.TrialResponse, error)
	}

	trialService struct {
		trialRepository TrialRepository
		batches         BatchSource
	}
)

func NewTrialService(trialRepository TrialRepository, batches BatchSource) TrialService {
	return &trialService{
		trialRepository: trialRepository,
		batches:         batches,
	}
}

func (s *trialService) CreateTrial(ctx context.Context, req domain.CreateTrialRequest) (domain.TrialResponse, error) {
	// A flat gravity range leaves fermentation progress undefined, so
	// the trial is rejected as misconfigured up front.
	if req.InitialSG == req.TargetSG {
		return domain.TrialResponse{}, domain.ErrFlatGravityRange
	}

	batch, err := s.batches.GetBatchByID(ctx, req.BatchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TrialResponse{}, domain.ErrBatchNotFound
		}
		return domain.TrialResponse{}, err
	}

	seq, err := s.trialRepository.CountTrialsByBatch(ctx, req.BatchID)
	if err != nil {
		return domain.TrialResponse{}, err
	}

	trial := &entities.FermentationTrial{
		ID:           uuid.New(),
		TrialCode:    trialCode(batch.BatchCode, seq+1),
		BatchID:      batch.ID,
		JuiceVariant: req.JuiceVariant,
		YeastStrain:  req.YeastStrain,
		InitialSG:    req.InitialSG,
		CurrentSG:    req.InitialSG,
		TargetSG:     req.TargetSG,
		PH:           req.PH,
		Temperature:  req.Temperature,
		Status:       domain.TrialStatusFermenting,
	}
	if err := s.trialRepository.CreateTrial(ctx, trial); err != nil {
		return domain.TrialResponse{}, err
	}

	return s.toResponse(trial, nil), nil
}

func (s *trialService) GetTrial(ctx context.Context, id string) (domain.TrialResponse, error) {
	trial, err := s.trialRepository.GetTrialByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TrialResponse{}, domain.ErrTrialNotFound
		}
		return domain.TrialResponse{}, err
	}

	readings, err := s.trialRepository.GetReadingsByTrial(ctx, id)
	if err != nil {
		return domain.TrialResponse{}, err
	}

	return s.toResponse(trial, readings), nil
}

func (s *trialService) GetTrialsByBatch(ctx context.Context, batchID string) ([]domain.TrialResponse, error) {
	trials, err := s.trialRepository.GetTrialsByBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.TrialResponse, 0, len(trials))
	for _, t := range trials {
		result = append(result, s.toResponse(t, nil))
	}
	return result, nil
}

func (s *trialService) DeleteTrial(ctx context.Context, id string) error {
	if _, err := s.trialRepository.GetTrialByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTrialNotFound
		}
		return err
	}
	return s.trialRepository.DeleteTrial(ctx, id)
}

// AddReading appends a daily reading in arrival order. No monotonicity
// check is applied to SG or ABV; whatever the operator measured is
// stored. The trial's current measurements track the latest reading.
func (s *trialService) AddReading(ctx context.Context, trialID string, req domain.AddReadingRequest) (domain.TrialReadingResponse, error) {
	trial, err := s.trialRepository.GetTrialByID(ctx, trialID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TrialReadingResponse{}, domain.ErrTrialNotFound
		}
		return domain.TrialReadingResponse{}, err
	}
	if trial.PathTaken == domain.PathArchived {
		return domain.TrialReadingResponse{}, domain.ErrTrialArchived
	}

	readingDate := time.Now().UTC()
	if req.ReadingDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ReadingDate)
		if err != nil {
			parsed, err = time.Parse(time.RFC3339, req.ReadingDate)
		}
		if err != nil {
			return domain.TrialReadingResponse{}, domain.ErrInvalidDate
		}
		readingDate = parsed
	}

	reading := &entities.TrialReading{
		ID:          uuid.New(),
		TrialID:     trial.ID,
		ReadingDate: readingDate,
		SG:          req.SG,
		ABV:         req.ABV,
		Temperature: req.Temperature,
		PH:          req.PH,
		Notes:       req.Notes,
	}
	if err := s.trialRepository.AddReading(ctx, reading); err != nil {
		return domain.TrialReadingResponse{}, err
	}

	trial.CurrentSG = req.SG
	trial.CurrentABV = req.ABV
	if req.PH != nil {
		trial.PH = req.PH
	}
	if req.Temperature != nil {
		trial.Temperature = req.Temperature
	}
	if req.ABV > domain.BranchingABVThreshold && trial.PathTaken == "" {
		trial.Status = domain.TrialStatusBranching
	}
	if err := s.trialRepository.UpdateTrial(ctx, trial); err != nil {
		return domain.TrialReadingResponse{}, err
	}

	return domain.TrialReadingResponse{
		ID:          reading.ID.String(),
		ReadingDate: reading.ReadingDate,
		SG:          reading.SG,
		ABV:         reading.ABV,
		Temperature: reading.Temperature,
		PH:          reading.PH,
		Notes:       reading.Notes,
	}, nil
}

func (s *trialService) SetPath(ctx context.Context, trialID string, req domain.SetPathRequest) (domain.TrialResponse, error) {
	trial, err := s.trialRepository.GetTrialByID(ctx, trialID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TrialResponse{}, domain.ErrTrialNotFound
		}
		return domain.TrialResponse{}, err
	}
	if trial.PathTaken == domain.PathArchived {
		return domain.TrialResponse{}, domain.ErrTrialArchived
	}

	trial.PathTaken = req.Path
	switch req.Path {
	case domain.PathArchived:
		trial.Status = domain.TrialStatusArchived
	default:
		trial.Status = pathStatus(req.Path)
	}
	if err := s.trialRepository.UpdateTrial(ctx, trial); err != nil {
		return domain.TrialResponse{}, err
	}

	return s.toResponse(trial, nil), nil
}

func (s *trialService) toResponse(trial *entities.FermentationTrial, readings []entities.TrialReading) domain.TrialResponse {
	// CreateTrial rejects a flat gravity range, so Progress cannot fail
	// here for rows created through the service.
	progress, _ := Progress(trial.InitialSG, trial.CurrentSG, trial.TargetSG)

	resp := domain.TrialResponse{
		ID:           trial.ID.String(),
		TrialCode:    trial.TrialCode,
		BatchID:      trial.BatchID.String(),
		JuiceVariant: trial.JuiceVariant,
		YeastStrain:  trial.YeastStrain,
		InitialSG:    trial.InitialSG,
		CurrentSG:    trial.CurrentSG,
		TargetSG:     trial.TargetSG,
		CurrentABV:   trial.CurrentABV,
		PH:           trial.PH,
		Temperature:  trial.Temperature,
		PathTaken:    trial.PathTaken,
		Status:       trial.Status,
		Progress:     progress,
		CreatedAt:    trial.CreatedAt,
	}
	for _, r := range readings {
		resp.Readings = append(resp.Readings, domain.TrialReadingResponse{
			ID:          r.ID.String(),
			ReadingDate: r.ReadingDate,
			SG:          r.SG,
			ABV:         r.ABV,
			Temperature: r.Temperature,
			PH:          r.PH,
			Notes:       r.Notes,
		})
	}
	return resp
}

// pathStatus renders statuses like "Distillation Path".
func pathStatus(path string) string {
	return strings.ToUpper(path[:1]) + path[1:] + " Path"
}

// trialCode derives codes like T-001-03 from the batch code's trailing
// sequence (batch codes look like 240321-AP-FE-001).
func trialCode(batchCode string, seq int64) string {
	parts := strings.Split(batchCode, "-")
	suffix := parts[len(parts)-1]
	return fmt.Sprintf("T-%s-%02d", suffix, seq)
}
