package supplier

import (
	"context"
	"errors"

	"Distillery-Tracker/domain"
	"Distillery-Tracker/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	SupplierService interface {
		CreateSupplier(ctx context.Context, req domain.CreateSupplierRequest) (domain.SupplierResponse, error)
		GetSuppliers(ctx context.Context, page, limit int) ([]domain.SupplierResponse, int64, error)
		GetSupplier(ctx context.Context, id string) (domain.SupplierResponse, error)
		UpdateSupplier(ctx context.Context, id string, req domain.UpdateSupplierRequest) (domain.SupplierResponse, error)
		DeleteSupplier(ctx context.Context, id string) error
	}

	supplierService struct {
		supplierRepository SupplierRepository
	}
)

func NewSupplierService(supplierRepository SupplierRepository) SupplierService {
	return &supplierService{supplierRepository: supplierRepository}
}

func (s *supplierService) CreateSupplier(ctx context.Context, req domain.CreateSupplierRequest) (domain.SupplierResponse, error) {
	if _, err := s.supplierRepository.GetSupplierByGrowerCode(ctx, req.GrowerCode); err == nil {
		return domain.SupplierResponse{}, domain.ErrGrowerCodeTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.SupplierResponse{}, err
	}

	supplier := &entities.Supplier{
		ID:         uuid.New(),
		GrowerCode: req.GrowerCode,
		Name:       req.Name,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Region:     req.Region,
		FruitTypes: req.FruitTypes,
		IsActive:   true,
	}
	if err := s.supplierRepository.CreateSupplier(ctx, supplier); err != nil {
		return domain.SupplierResponse{}, err
	}
	return toResponse(supplier), nil
}

func (s *supplierService) GetSuppliers(ctx context.Context, page, limit int) ([]domain.SupplierResponse, int64, error) {
	suppliers, count, err := s.supplierRepository.GetSuppliers(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		result = append(result, toResponse(&suppliers[i]))
	}
	return result, count, nil
}

func (s *supplierService) GetSupplier(ctx context.Context, id string) (domain.SupplierResponse, error) {
	supplier, err := s.supplierRepository.GetSupplierByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SupplierResponse{}, domain.ErrSupplierNotFound
		}
		return domain.SupplierResponse{}, err
	}
	return toResponse(supplier), nil
}

func (s *supplierService) UpdateSupplier(ctx context.Context, id string, req domain.UpdateSupplierRequest) (domain.SupplierResponse, error) {
	supplier, err := s.supplierRepository.GetSupplierByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SupplierResponse{}, domain.ErrSupplierNotFound
		}
		return domain.SupplierResponse{}, err
	}

	if req.Name != "" {
		supplier.Name = req.Name
	}
	if req.ContactName != "" {
		supplier.ContactName = req.ContactName
	}
	if req.ContactEmail != "" {
		supplier.ContactEmail = req.ContactEmail
	}
	if req.ContactPhone != "" {
		supplier.ContactPhone = req.ContactPhone
	}
	if req.Region != "" {
		supplier.Region = req.Region
	}
	if req.FruitTypes != "" {
		supplier.FruitTypes = req.FruitTypes
	}
	if req.IsActive != nil {
		supplier.IsActive = *req.IsActive
	}

	if err := s.supplierRepository.UpdateSupplier(ctx, supplier); err != nil {
		return domain.SupplierResponse{}, err
	}
	return toResponse(supplier), nil
}

func (s *supplierService) DeleteSupplier(ctx context.Context, id string) error {
	if _, err := s.supplierRepository.GetSupplierByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSupplierNotFound
		}
		return err
	}
	return s.supplierRepository.DeleteSupplier(ctx, id)
}

func toResponse(supplier *entities.Supplier) domain.SupplierResponse {
	return domain.SupplierResponse{
		ID:         supplier.ID.String(),
		GrowerCode: supplier.GrowerCode,
		Name:       supplier.Name,
		ContactName:  supplier.ContactName,
		ContactEmail: supplier.ContactEmail,
		ContactPhone: supplier.ContactPhone,
		Region:     supplier.Region,
		FruitTypes: supplier.FruitTypes,
		IsActive:   supplier.IsActive,
	}
}
