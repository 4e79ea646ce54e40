package domain

import (
	"errors"
)

var (
	MessageSuccessCreateSupplier = "supplier created successfully"
	MessageSuccessUpdateSupplier = "supplier updated successfully"
	MessageSuccessDeleteSupplier = "supplier deleted successfully"
	MessageSuccessGetSuppliers   = "suppliers retrieved successfully"

	MessageFailedCreateSupplier = "failed to create supplier"
	MessageFailedUpdateSupplier = "failed to update supplier"
	MessageFailedDeleteSupplier = "failed to delete supplier"
	MessageFailedGetSuppliers   = "failed to retrieve suppliers"

	ErrSupplierNotFound    = errors.New("supplier not found")
	ErrGrowerCodeTaken     = errors.New("grower code already in use")
)

type (
	CreateSupplierRequest struct {
		GrowerCode   string `json:"grower_code" validate:"required"`
		Name         string `json:"name" validate:"required"`
		ContactName  string `json:"contact_name" validate:"omitempty"`
		ContactEmail string `json:"contact_email" validate:"omitempty,email"`
		ContactPhone string `json:"contact_phone" validate:"omitempty"`
		Region       string `json:"region" validate:"omitempty"`
		FruitTypes   string `json:"fruit_types" validate:"omitempty"`
	}

	UpdateSupplierRequest struct {
		Name         string `json:"name" validate:"omitempty"`
		ContactName  string `json:"contact_name" validate:"omitempty"`
		ContactEmail string `json:"contact_email" validate:"omitempty,email"`
		ContactPhone string `json:"contact_phone" validate:"omitempty"`
		Region       string `json:"region" validate:"omitempty"`
		FruitTypes   string `json:"fruit_types" validate:"omitempty"`
		IsActive     *bool  `json:"is_active" validate:"omitempty"`
	}

	SupplierResponse struct {
		ID           string `json:"id"`
		GrowerCode   string `json:"grower_code"`
		Name         string `json:"name"`
		ContactName  string `json:"contact_name,omitempty"`
		ContactEmail string `json:"contact_email,omitempty"`
		ContactPhone string `json:"contact_phone,omitempty"`
		Region       string `json:"region,omitempty"`
		FruitTypes   string `json:"fruit_types,omitempty"`
		IsActive     bool   `json:"is_active"`
	}
)
