package supplier

import (
	"context"

	"Distillery-Tracker/entities"

	"gorm.io/gorm"
)

type (
	SupplierRepository interface {
		CreateSupplier(ctx context.Context, supplier *entities.Supplier) error
		GetSupplierByID(ctx context.Context, id string) (*entities.Supplier, error)
		GetSupplierByGrowerCode(ctx context.Context, growerCode string) (*entities.Supplier, error)
		UpdateSupplier(ctx context.Context, supplier *entities.Supplier) error
		DeleteSupplier(ctx context.Context, id string) error
		GetSuppliers(ctx context.Context, page, limit int) ([]entities.Supplier, int64, error)
	}

	supplierRepository struct {
		db *gorm.DB
	}
)

func NewSupplierRepository(db *gorm.DB) SupplierRepository {
	return &supplierRepository{db: db}
}

func (r *supplierRepository) CreateSupplier(ctx context.Context, supplier *entities.Supplier) error {
	return r.db.WithContext(ctx).Create(supplier).Error
}

func (r *supplierRepository) GetSupplierByID(ctx context.Context, id string) (*entities.Supplier, error) {
	var supplier entities.Supplier
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&supplier).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepository) GetSupplierByGrowerCode(ctx context.Context, growerCode string) (*entities.Supplier, error) {
	var supplier entities.Supplier
	if err := r.db.WithContext(ctx).Where("grower_code = ?", growerCode).First(&supplier).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepository) UpdateSupplier(ctx context.Context, supplier *entities.Supplier) error {
	return r.db.WithContext(ctx).Save(supplier).Error
}

func (r *supplierRepository) DeleteSupplier(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Supplier{}).Error
}

func (r *supplierRepository) GetSuppliers(ctx context.Context, page, limit int) ([]entities.Supplier, int64, error) {
	var suppliers []entities.Supplier
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Supplier{})
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&suppliers).Error; err != nil {
		return nil, 0, err
	}

	return suppliers, count, nil
}
