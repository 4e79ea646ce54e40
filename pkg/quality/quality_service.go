package quality

import (
	"context"
	"errors"
	"time"

	"Distillery-Tracker/domain"
	"Distillery-Tracker/entities"
	"Distillery-Tracker/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// BatchSource is the slice of the batch repository the quality
	// service needs; satisfied by batch.BatchRepository.
	BatchSource interface {
		GetBatchByID(ctx context.Context, id string) (*entities.Batch, error)
	}

	QualityService interface {
		CreateCheck(ctx context.Context, req domain.CreateQualityCheckRequest) (domain.QualityCheckResponse, error)
		GetCheck(ctx context.Context, id string) (domain.QualityCheckResponse, error)
		GetChecksByBatch(ctx context.Context, batchID string, page, limit int) ([]domain.QualityCheckResponse, int64, error)
		DeleteCheck(ctx context.Context, id string) error
		UploadEvidence(ctx context.Context, req domain.UploadEvidenceRequest) (domain.QualityCheckResponse, error)
	}

	qualityService struct {
		qualityRepository QualityRepository
		batches           BatchSource
		s3                storage.AwsS3
	}
)

func NewQualityService(qualityRepository QualityRepository, batches BatchSource, s3 storage.AwsS3) QualityService {
	return &qualityService{
		qualityRepository: qualityRepository,
		batches:           batches,
		s3:                s3,
	}
}

func (s *qualityService) CreateCheck(ctx context.Context, req domain.CreateQualityCheckRequest) (domain.QualityCheckResponse, error) {
	batch, err := s.batches.GetBatchByID(ctx, req.BatchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.QualityCheckResponse{}, domain.ErrBatchNotFound
		}
		return domain.QualityCheckResponse{}, err
	}

	checkedAt := time.Now().UTC()
	if req.CheckedAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.CheckedAt)
		if err != nil {
			return domain.QualityCheckResponse{}, domain.ErrInvalidDate
		}
		checkedAt = parsed
	}

	check := &entities.QualityCheck{
		ID:        uuid.New(),
		BatchID:   batch.ID,
		CheckType: req.CheckType,
		ActualValue:      req.ActualValue,
		ExpectedRangeMin: req.ExpectedRangeMin,
		ExpectedRangeMax: req.ExpectedRangeMax,
		UnitOfMeasure:    req.UnitOfMeasure,
		Result:      req.Result,
		PerformedBy: req.PerformedBy,
		Notes:       req.Notes,
		CheckedAt:   checkedAt,
	}
	if err := s.qualityRepository.CreateCheck(ctx, check); err != nil {
		return domain.QualityCheckResponse{}, err
	}

	return toResponse(check), nil
}

func (s *qualityService) GetCheck(ctx context.Context, id string) (domain.QualityCheckResponse, error) {
	check, err := s.qualityRepository.GetCheckByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.QualityCheckResponse{}, domain.ErrCheckNotFound
		}
		return domain.QualityCheckResponse{}, err
	}
	return toResponse(check), nil
}

func (s *qualityService) GetChecksByBatch(ctx context.Context, batchID string, page, limit int) ([]domain.QualityCheckResponse, int64, error) {
	checks, count, err := s.qualityRepository.GetChecksByBatch(ctx, batchID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.QualityCheckResponse, 0, len(checks))
	for i := range checks {
		result = append(result, toResponse(&checks[i]))
	}
	return result, count, nil
}

func (s *qualityService) DeleteCheck(ctx context.Context, id string) error {
	if _, err := s.qualityRepository.GetCheckByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCheckNotFound
		}
		return err
	}
	return s.qualityRepository.DeleteCheck(ctx, id)
}

func (s *qualityService) UploadEvidence(ctx context.Context, req domain.UploadEvidenceRequest) (domain.QualityCheckResponse, error) {
	check, err := s.qualityRepository.GetCheckByID(ctx, req.CheckID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.QualityCheckResponse{}, domain.ErrCheckNotFound
		}
		return domain.QualityCheckResponse{}, err
	}

	url, err := s.s3.UploadFile(ctx, "quality-evidence", req.Image)
	if err != nil {
		return domain.QualityCheckResponse{}, domain.ErrInvalidImageFormat
	}

	check.EvidenceURL = url
	if err := s.qualityRepository.UpdateCheck(ctx, check); err != nil {
		return domain.QualityCheckResponse{}, err
	}

	return toResponse(check), nil
}

func toResponse(check *entities.QualityCheck) domain.QualityCheckResponse {
	return domain.QualityCheckResponse{
		ID:        check.ID.String(),
		BatchID:   check.BatchID.String(),
		CheckType: check.CheckType,
		ActualValue:      check.ActualValue,
		ExpectedRangeMin: check.ExpectedRangeMin,
		ExpectedRangeMax: check.ExpectedRangeMax,
		UnitOfMeasure:    check.UnitOfMeasure,
		Result:      check.Result,
		PerformedBy: check.PerformedBy,
		Notes:       check.Notes,
		EvidenceURL: check.EvidenceURL,
		CheckedAt:   check.CheckedAt,
	}
}
