package handlers

import (
	"strconv"

	"Distillery-Tracker/domain"
	"Distillery-Tracker/internal/api/presenters"
	"Distillery-Tracker/pkg/batch"
	"Distillery-Tracker/pkg/journey"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	BatchHandler interface {
		CreateBatch(c *fiber.Ctx) error
		GetBatches(c *fiber.Ctx) error
		GetBatchDetails(c *fiber.Ctx) error
		UpdateBatch(c *fiber.Ctx) error
		UpdateStatus(c *fiber.Ctx) error
		AdvanceStage(c *fiber.Ctx) error
		DeleteBatch(c *fiber.Ctx) error
		GetDashboardStats(c *fiber.Ctx) error
		GetJourney(c *fiber.Ctx) error
		AddJourneyEvent(c *fiber.Ctx) error
	}

	batchHandler struct {
		batchService   batch.BatchService
		journeyService journey.JourneyService
		validator      *validator.Validate
	}
)

func NewBatchHandler(batchService batch.BatchService, journeyService journey.JourneyService, validator *validator.Validate) BatchHandler {
	return &batchHandler{
		batchService:   batchService,
		journeyService: journeyService,
		validator:      validator,
	}
}

func (h *batchHandler) CreateBatch(c *fiber.Ctx) error {
	req := new(domain.CreateBatchRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateBatch, err)
	}

	res, err := h.batchService.CreateBatch(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateBatch, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateBatch)
}

func (h *batchHandler) GetBatches(c *fiber.Ctx) error {
	status := c.Query("status", "all")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	batches, count, err := h.batchService.GetBatches(c.Context(), status, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBatches, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"batches": batches,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetBatches)
}

func (h *batchHandler) GetBatchDetails(c *fiber.Ctx) error {
	batchID := c.Params("id")

	res, err := h.batchService.GetBatch(c.Context(), batchID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBatch, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBatch)
}

func (h *batchHandler) UpdateBatch(c *fiber.Ctx) error {
	batchID := c.Params("id")
	req := new(domain.UpdateBatchRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateBatch, err)
	}

	res, err := h.batchService.UpdateBatch(c.Context(), batchID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateBatch, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateBatch)
}

func (h *batchHandler) UpdateStatus(c *fiber.Ctx) error {
	batchID := c.Params("id")
	req := new(domain.UpdateBatchStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateStatus, err)
	}

	res, err := h.batchService.UpdateStatus(c.Context(), batchID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateStatus, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateStatus)
}

func (h *batchHandler) AdvanceStage(c *fiber.Ctx) error {
	batchID := c.Params("id")

	res, err := h.batchService.AdvanceStage(c.Context(), batchID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAdvanceStage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAdvanceStage)
}

func (h *batchHandler) DeleteBatch(c *fiber.Ctx) error {
	batchID := c.Params("id")

	if err := h.batchService.DeleteBatch(c.Context(), batchID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteBatch, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteBatch)
}

func (h *batchHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.batchService.GetDashboardStats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDashboard, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}

func (h *batchHandler) GetJourney(c *fiber.Ctx) error {
	batchID := c.Params("id")

	res, err := h.journeyService.GetTimeline(c.Context(), batchID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTimeline, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTimeline)
}

func (h *batchHandler) AddJourneyEvent(c *fiber.Ctx) error {
	batchID := c.Params("id")
	req := new(domain.AppendEventRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddEvent, err)
	}

	res, err := h.journeyService.AppendEvent(c.Context(), batchID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddEvent, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddEvent)
}
