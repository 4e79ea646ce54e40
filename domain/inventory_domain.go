package domain

import (
	"errors"
)

const (
	StockStatusInStock    = "in_stock"
	StockStatusLowStock   = "low_stock"
	StockStatusOutOfStock = "out_of_stock"
)

var (
	MessageSuccessCreateItem  = "inventory item created successfully"
	MessageSuccessUpdateItem  = "inventory item updated successfully"
	MessageSuccessDeleteItem  = "inventory item deleted successfully"
	MessageSuccessGetItems    = "inventory items retrieved successfully"
	MessageSuccessAdjustStock = "inventory quantity adjusted successfully"

	MessageFailedCreateItem  = "failed to create inventory item"
	MessageFailedUpdateItem  = "failed to update inventory item"
	MessageFailedDeleteItem  = "failed to delete inventory item"
	MessageFailedGetItems    = "failed to retrieve inventory items"
	MessageFailedAdjustStock = "failed to adjust inventory quantity"

	ErrItemNotFound       = errors.New("inventory item not found")
	ErrNegativeQuantity   = errors.New("quantity cannot go negative")
	ErrInvalidAdjustment  = errors.New("adjustment must be non-zero")
)

type (
	CreateInventoryItemRequest struct {
		Name string `json:"name" validate:"required"`
		Type string `json:"type" validate:"required,oneof=raw_material packaging finished_product supplies"`
		Quantity         float64 `json:"quantity" validate:"gte=0"`
		Unit             string  `json:"unit" validate:"required"`
		ReorderThreshold float64 `json:"reorder_threshold" validate:"gte=0"`
		SupplierID       string  `json:"supplier_id" validate:"omitempty,uuid"`
		Location         string  `json:"location" validate:"omitempty"`
		Notes            string  `json:"notes" validate:"omitempty"`
	}

	UpdateInventoryItemRequest struct {
		Name             string   `json:"name" validate:"omitempty"`
		Unit             string   `json:"unit" validate:"omitempty"`
		ReorderThreshold *float64 `json:"reorder_threshold" validate:"omitempty,gte=0"`
		Location         string   `json:"location" validate:"omitempty"`
		Notes            string   `json:"notes" validate:"omitempty"`
	}

	AdjustQuantityRequest struct {
		Delta float64 `json:"delta" validate:"required"`
	}

	InventoryItemResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Type string `json:"type"`
		Quantity         float64 `json:"quantity"`
		Unit             string  `json:"unit"`
		ReorderThreshold float64 `json:"reorder_threshold"`
		Status           string  `json:"status"`
		Location         string  `json:"location,omitempty"`
		Notes            string  `json:"notes,omitempty"`
	}
)
