package handlers

import (
	"strconv"

	"Distillery-Tracker/domain"
	"Distillery-Tracker/internal/api/presenters"
	"Distillery-Tracker/pkg/equipment"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	EquipmentHandler interface {
		CreateEquipment(c *fiber.Ctx) error
		GetEquipment(c *fiber.Ctx) error
		GetEquipmentDetails(c *fiber.Ctx) error
		UpdateEquipment(c *fiber.Ctx) error
		DeleteEquipment(c *fiber.Ctx) error
		ScheduleMaintenance(c *fiber.Ctx) error
		CompleteMaintenance(c *fiber.Ctx) error
		GetMaintenanceByEquipment(c *fiber.Ctx) error
		NotifyOverdueMaintenance(c *fiber.Ctx) error
	}

	equipmentHandler struct {
		equipmentService equipment.EquipmentService
		validator        *validator.Validate
	}
)

func NewEquipmentHandler(equipmentService equipment.EquipmentService, validator *validator.Validate) EquipmentHandler {
	return &equipmentHandler{
		equipmentService: equipmentService,
		validator:        validator,
	}
}

func (h *equipmentHandler) CreateEquipment(c *fiber.Ctx) error {
	req := new(domain.CreateEquipmentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateEquipment, err)
	}

	res, err := h.equipmentService.CreateEquipment(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateEquipment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateEquipment)
}

func (h *equipmentHandler) GetEquipment(c *fiber.Ctx) error {
	status := c.Query("status", "all")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	items, count, err := h.equipmentService.GetEquipment(c.Context(), status, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEquipment, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"equipment": items,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetEquipment)
}

func (h *equipmentHandler) GetEquipmentDetails(c *fiber.Ctx) error {
	equipmentID := c.Params("id")

	res, err := h.equipmentService.GetEquipmentByID(c.Context(), equipmentID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEquipment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetEquipment)
}

func (h *equipmentHandler) UpdateEquipment(c *fiber.Ctx) error {
	equipmentID := c.Params("id")
	req := new(domain.UpdateEquipmentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateEquipment, err)
	}

	res, err := h.equipmentService.UpdateEquipment(c.Context(), equipmentID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateEquipment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateEquipment)
}

func (h *equipmentHandler) DeleteEquipment(c *fiber.Ctx) error {
	equipmentID := c.Params("id")

	if err := h.equipmentService.DeleteEquipment(c.Context(), equipmentID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteEquipment, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteEquipment)
}

func (h *equipmentHandler) ScheduleMaintenance(c *fiber.Ctx) error {
	req := new(domain.ScheduleMaintenanceRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScheduleMaintenance, err)
	}

	res, err := h.equipmentService.ScheduleMaintenance(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScheduleMaintenance, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessScheduleMaintenance)
}

func (h *equipmentHandler) CompleteMaintenance(c *fiber.Ctx) error {
	maintenanceID := c.Params("id")
	req := new(domain.CompleteMaintenanceRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCompleteMaintenance, err)
	}

	res, err := h.equipmentService.CompleteMaintenance(c.Context(), maintenanceID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCompleteMaintenance, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCompleteMaintenance)
}

func (h *equipmentHandler) GetMaintenanceByEquipment(c *fiber.Ctx) error {
	equipmentID := c.Params("id")

	records, err := h.equipmentService.GetMaintenanceByEquipment(c.Context(), equipmentID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMaintenance, err)
	}

	return presenters.SuccessResponse(c, records, fiber.StatusOK, domain.MessageSuccessGetMaintenance)
}

func (h *equipmentHandler) NotifyOverdueMaintenance(c *fiber.Ctx) error {
	notified, err := h.equipmentService.NotifyOverdueMaintenance(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMaintenance, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"notified": notified}, fiber.StatusOK, domain.MessageSuccessGetMaintenance)
}
