package upscale

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"Distillery-Tracker/domain"
	"Distillery-Tracker/entities"
	"Distillery-Tracker/pkg/trial"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UpscaleService interface {
		StartNextUpscale(ctx context.Context, trialID string) (domain.UpscaleResponse, error)
		RecordResults(ctx context.Context, runID string, req domain.RecordUpscaleResultsRequest) (domain.UpscaleResponse, error)
		CompleteUpscale(ctx context.Context, runID string) (domain.UpscaleResponse, error)
		FailUpscale(ctx context.Context, runID string) (domain.UpscaleResponse, error)
		GetUpscalesByTrial(ctx context.Context, trialID string) (domain.UpscaleListResponse, error)
		CanStartNextUpscale(ctx context.Context, trialID string) (bool, error)
	}

	upscaleService struct {
		upscaleRepository UpscaleRepository
		trialRepository   trial.TrialRepository
		ladder            Ladder
	}
)

func NewUpscaleService(upscaleRepository UpscaleRepository, trialRepository trial.TrialRepository, ladder Ladder) UpscaleService {
	return &upscaleService{
		upscaleRepository: upscaleRepository,
		trialRepository:   trialRepository,
		ladder:            ladder,
	}
}

// StartNextUpscale creates a pending run on the next ladder rung. The
// trial must be on the distillation path, the previous run (if any)
// must have completed, and the ladder must not be exhausted.
func (s *upscaleService) StartNextUpscale(ctx context.Context, trialID string) (domain.UpscaleResponse, error) {
	t, err := s.trialRepository.GetTrialByID(ctx, trialID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UpscaleResponse{}, domain.ErrTrialNotFound
		}
		return domain.UpscaleResponse{}, err
	}
	if t.PathTaken != domain.PathDistillation {
		return domain.UpscaleResponse{}, domain.ErrNotDistillationPath
	}

	runs, err := s.upscaleRepository.GetUpscalesByTrial(ctx, trialID)
	if err != nil {
		return domain.UpscaleResponse{}, err
	}
	if len(runs) >= s.ladder.Len() {
		return domain.UpscaleResponse{}, domain.ErrLadderExhausted
	}
	if len(runs) > 0 {
		switch runs[len(runs)-1].Status {
		case domain.UpscaleStatusPending:
			return domain.UpscaleResponse{}, domain.ErrUpscaleActive
		case domain.UpscaleStatusFailed:
			return domain.UpscaleResponse{}, domain.ErrUpscaleBlocked
		}
	}

	index := s.ladder.NextIndex(runs)
	volume, err := s.ladder.VolumeAt(index)
	if err != nil {
		return domain.UpscaleResponse{}, err
	}
	label, err := s.ladder.StageLabel(index)
	if err != nil {
		return domain.UpscaleResponse{}, err
	}

	run := &entities.UpscaleRun{
		ID:           uuid.New(),
		UpscaleCode:  upscaleCode(t.TrialCode, label),
		TrialID:      t.ID,
		StageIndex:   index,
		Stage:        label,
		TargetVolume: volume,
		Status:       domain.UpscaleStatusPending,
	}
	if err := s.upscaleRepository.CreateUpscale(ctx, run); err != nil {
		return domain.UpscaleResponse{}, err
	}

	return toResponse(run), nil
}

// RecordResults stores measured yield and ABV on a pending run. The run
// stays pending; sign-off is a separate, explicit completion call.
func (s *upscaleService) RecordResults(ctx context.Context, runID string, req domain.RecordUpscaleResultsRequest) (domain.UpscaleResponse, error) {
	if req.YieldAmount <= 0 {
		return domain.UpscaleResponse{}, domain.ErrInvalidYield
	}
	if req.ABVResult <= 0 || req.ABVResult > 100 {
		return domain.UpscaleResponse{}, domain.ErrInvalidABVResult
	}

	run, err := s.upscaleRepository.GetUpscaleByID(ctx, runID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UpscaleResponse{}, domain.ErrUpscaleNotFound
		}
		return domain.UpscaleResponse{}, err
	}
	if run.Status != domain.UpscaleStatusPending {
		return domain.UpscaleResponse{}, domain.ErrUpscaleNotPending
	}

	yield := req.YieldAmount
	abv := req.ABVResult
	run.YieldAmount = &yield
	run.ABVResult = &abv
	run.CompoundSummary = req.CompoundSummary
	if err := s.upscaleRepository.UpdateUpscale(ctx, run); err != nil {
		return domain.UpscaleResponse{}, err
	}

	return toResponse(run), nil
}

// CompleteUpscale transitions pending → complete. Results must have
// been recorded first. When the final rung completes, the trial itself
// is marked complete.
func (s *upscaleService) CompleteUpscale(ctx context.Context, runID string) (domain.UpscaleResponse, error) {
	run, err := s.upscaleRepository.GetUpscaleByID(ctx, runID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UpscaleResponse{}, domain.ErrUpscaleNotFound
		}
		return domain.UpscaleResponse{}, err
	}
	if run.Status != domain.UpscaleStatusPending {
		return domain.UpscaleResponse{}, domain.ErrUpscaleNotPending
	}
	if run.YieldAmount == nil || run.ABVResult == nil {
		return domain.UpscaleResponse{}, domain.ErrResultsNotRecorded
	}

	run.Status = domain.UpscaleStatusComplete
	if err := s.upscaleRepository.UpdateUpscale(ctx, run); err != nil {
		return domain.UpscaleResponse{}, err
	}

	if run.StageIndex == s.ladder.Len()-1 {
		if t, err := s.trialRepository.GetTrialByID(ctx, run.TrialID.String()); err == nil {
			t.Status = domain.TrialStatusComplete
			if err := s.trialRepository.UpdateTrial(ctx, t); err != nil {
				return domain.UpscaleResponse{}, err
			}
		}
	}

	return toResponse(run), nil
}

// FailUpscale transitions pending → failed. Failed is terminal and
// blocks the ladder; there is no retry path.
func (s *upscaleService) FailUpscale(ctx context.Context, runID string) (domain.UpscaleResponse, error) {
	run, err := s.upscaleRepository.GetUpscaleByID(ctx, runID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UpscaleResponse{}, domain.ErrUpscaleNotFound
		}
		return domain.UpscaleResponse{}, err
	}
	if run.Status != domain.UpscaleStatusPending {
		return domain.UpscaleResponse{}, domain.ErrUpscaleNotPending
	}

	run.Status = domain.UpscaleStatusFailed
	if err := s.upscaleRepository.UpdateUpscale(ctx, run); err != nil {
		return domain.UpscaleResponse{}, err
	}

	return toResponse(run), nil
}

func (s *upscaleService) GetUpscalesByTrial(ctx context.Context, trialID string) (domain.UpscaleListResponse, error) {
	if _, err := s.trialRepository.GetTrialByID(ctx, trialID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UpscaleListResponse{}, domain.ErrTrialNotFound
		}
		return domain.UpscaleListResponse{}, err
	}

	runs, err := s.upscaleRepository.GetUpscalesByTrial(ctx, trialID)
	if err != nil {
		return domain.UpscaleListResponse{}, err
	}

	resp := domain.UpscaleListResponse{
		Upscales:     make([]domain.UpscaleResponse, 0, len(runs)),
		CanStartNext: s.ladder.CanStartNext(runs),
	}
	for i := range runs {
		resp.Upscales = append(resp.Upscales, toResponse(&runs[i]))
	}
	if resp.CanStartNext {
		if vol, err := s.ladder.VolumeAt(s.ladder.NextIndex(runs)); err == nil {
			resp.NextVolume = &vol
		}
	}
	return resp, nil
}

func (s *upscaleService) CanStartNextUpscale(ctx context.Context, trialID string) (bool, error) {
	runs, err := s.upscaleRepository.GetUpscalesByTrial(ctx, trialID)
	if err != nil {
		return false, err
	}
	return s.ladder.CanStartNext(runs), nil
}

func toResponse(run *entities.UpscaleRun) domain.UpscaleResponse {
	return domain.UpscaleResponse{
		ID:              run.ID.String(),
		UpscaleCode:     run.UpscaleCode,
		TrialID:         run.TrialID.String(),
		StageIndex:      run.StageIndex,
		Stage:           run.Stage,
		TargetVolume:    run.TargetVolume,
		YieldAmount:     run.YieldAmount,
		ABVResult:       run.ABVResult,
		CompoundSummary: run.CompoundSummary,
		Status:          run.Status,
		CreatedAt:       run.CreatedAt,
	}
}

// upscaleCode derives codes like U-001-03-5L from the trial code.
func upscaleCode(trialCode, stageLabel string) string {
	return fmt.Sprintf("U-%s-%s", strings.TrimPrefix(trialCode, "T-"), stageLabel)
}
