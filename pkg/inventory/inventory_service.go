package inventory

import (
	"context"
	"errors"

	"Distillery-Tracker/domain"
	"Distillery-Tracker/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	InventoryService interface {
		CreateItem(ctx context.Context, req domain.CreateInventoryItemRequest) (domain.InventoryItemResponse, error)
		GetItems(ctx context.Context, itemType string, page, limit int) ([]domain.InventoryItemResponse, int64, error)
		GetItem(ctx context.Context, id string) (domain.InventoryItemResponse, error)
		UpdateItem(ctx context.Context, id string, req domain.UpdateInventoryItemRequest) (domain.InventoryItemResponse, error)
		AdjustQuantity(ctx context.Context, id string, req domain.AdjustQuantityRequest) (domain.InventoryItemResponse, error)
		DeleteItem(ctx context.Context, id string) error
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
	}
)

func NewInventoryService(inventoryRepository InventoryRepository) InventoryService {
	return &inventoryService{inventoryRepository: inventoryRepository}
}

// StockStatus derives the item's stock status from its quantity and
// reorder threshold.
func StockStatus(quantity, reorderThreshold float64) string {
	switch {
	case quantity <= 0:
		return domain.StockStatusOutOfStock
	case quantity <= reorderThreshold:
		return domain.StockStatusLowStock
	default:
		return domain.StockStatusInStock
	}
}

func (s *inventoryService) CreateItem(ctx context.Context, req domain.CreateInventoryItemRequest) (domain.InventoryItemResponse, error) {
	item := &entities.InventoryItem{
		ID:   uuid.New(),
		Name: req.Name,
		Type: req.Type,
		Quantity:         req.Quantity,
		Unit:             req.Unit,
		ReorderThreshold: req.ReorderThreshold,
		Status:           StockStatus(req.Quantity, req.ReorderThreshold),
		Location:         req.Location,
		Notes:            req.Notes,
	}
	if req.SupplierID != "" {
		supplierID, err := uuid.Parse(req.SupplierID)
		if err != nil {
			return domain.InventoryItemResponse{}, domain.ErrParseUUID
		}
		item.SupplierID = &supplierID
	}

	if err := s.inventoryRepository.CreateItem(ctx, item); err != nil {
		return domain.InventoryItemResponse{}, err
	}
	return toResponse(item), nil
}

func (s *inventoryService) GetItems(ctx context.Context, itemType string, page, limit int) ([]domain.InventoryItemResponse, int64, error) {
	items, count, err := s.inventoryRepository.GetItems(ctx, itemType, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.InventoryItemResponse, 0, len(items))
	for i := range items {
		result = append(result, toResponse(&items[i]))
	}
	return result, count, nil
}

func (s *inventoryService) GetItem(ctx context.Context, id string) (domain.InventoryItemResponse, error) {
	item, err := s.inventoryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.InventoryItemResponse{}, domain.ErrItemNotFound
		}
		return domain.InventoryItemResponse{}, err
	}
	return toResponse(item), nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, id string, req domain.UpdateInventoryItemRequest) (domain.InventoryItemResponse, error) {
	item, err := s.inventoryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.InventoryItemResponse{}, domain.ErrItemNotFound
		}
		return domain.InventoryItemResponse{}, err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Unit != "" {
		item.Unit = req.Unit
	}
	if req.ReorderThreshold != nil {
		item.ReorderThreshold = *req.ReorderThreshold
	}
	if req.Location != "" {
		item.Location = req.Location
	}
	if req.Notes != "" {
		item.Notes = req.Notes
	}
	item.Status = StockStatus(item.Quantity, item.ReorderThreshold)

	if err := s.inventoryRepository.UpdateItem(ctx, item); err != nil {
		return domain.InventoryItemResponse{}, err
	}
	return toResponse(item), nil
}

func (s *inventoryService) AdjustQuantity(ctx context.Context, id string, req domain.AdjustQuantityRequest) (domain.InventoryItemResponse, error) {
	if req.Delta == 0 {
		return domain.InventoryItemResponse{}, domain.ErrInvalidAdjustment
	}

	item, err := s.inventoryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.InventoryItemResponse{}, domain.ErrItemNotFound
		}
		return domain.InventoryItemResponse{}, err
	}

	if item.Quantity+req.Delta < 0 {
		return domain.InventoryItemResponse{}, domain.ErrNegativeQuantity
	}
	item.Quantity += req.Delta
	item.Status = StockStatus(item.Quantity, item.ReorderThreshold)

	if err := s.inventoryRepository.UpdateItem(ctx, item); err != nil {
		return domain.InventoryItemResponse{}, err
	}
	return toResponse(item), nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, id string) error {
	if _, err := s.inventoryRepository.GetItemByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}
	return s.inventoryRepository.DeleteItem(ctx, id)
}

func toResponse(item *entities.InventoryItem) domain.InventoryItemResponse {
	return domain.InventoryItemResponse{
		ID:   item.ID.String(),
		Name: item.Name,
		Type: item.Type,
		Quantity:         item.Quantity,
		Unit:             item.Unit,
		ReorderThreshold: item.ReorderThreshold,
		Status:           item.Status,
		Location:         item.Location,
		Notes:            item.Notes,
	}
}
