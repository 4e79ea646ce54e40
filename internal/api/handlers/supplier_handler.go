package handlers

import (
	"strconv"

	"Distillery-Tracker/domain"
	"Distillery-Tracker/internal/api/presenters"
	"Distillery-Tracker/pkg/supplier"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SupplierHandler interface {
		CreateSupplier(c *fiber.Ctx) error
		GetSuppliers(c *fiber.Ctx) error
		GetSupplierDetails(c *fiber.Ctx) error
		UpdateSupplier(c *fiber.Ctx) error
		DeleteSupplier(c *fiber.Ctx) error
	}

	supplierHandler struct {
		supplierService supplier.SupplierService
		validator       *validator.Validate
	}
)

func NewSupplierHandler(supplierService supplier.SupplierService, validator *validator.Validate) SupplierHandler {
	return &supplierHandler{
		supplierService: supplierService,
		validator:       validator,
	}
}

func (h *supplierHandler) CreateSupplier(c *fiber.Ctx) error {
	req := new(domain.CreateSupplierRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateSupplier, err)
	}

	res, err := h.supplierService.CreateSupplier(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateSupplier, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateSupplier)
}

func (h *supplierHandler) GetSuppliers(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	suppliers, count, err := h.supplierService.GetSuppliers(c.Context(), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSuppliers, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"suppliers": suppliers,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetSuppliers)
}

func (h *supplierHandler) GetSupplierDetails(c *fiber.Ctx) error {
	supplierID := c.Params("id")

	res, err := h.supplierService.GetSupplier(c.Context(), supplierID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSuppliers, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSuppliers)
}

func (h *supplierHandler) UpdateSupplier(c *fiber.Ctx) error {
	supplierID := c.Params("id")
	req := new(domain.UpdateSupplierRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateSupplier, err)
	}

	res, err := h.supplierService.UpdateSupplier(c.Context(), supplierID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateSupplier, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateSupplier)
}

func (h *supplierHandler) DeleteSupplier(c *fiber.Ctx) error {
	supplierID := c.Params("id")

	if err := h.supplierService.DeleteSupplier(c.Context(), supplierID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteSupplier, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteSupplier)
}
