package handlers

import (
	"strconv"

	"Distillery-Tracker/domain"
	"Distillery-Tracker/internal/api/presenters"
	"Distillery-Tracker/pkg/quality"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	QualityHandler interface {
		CreateCheck(c *fiber.Ctx) error
		GetChecksByBatch(c *fiber.Ctx) error
		GetCheckDetails(c *fiber.Ctx) error
		DeleteCheck(c *fiber.Ctx) error
		UploadEvidence(c *fiber.Ctx) error
	}

	qualityHandler struct {
		qualityService quality.QualityService
		validator      *validator.Validate
	}
)

func NewQualityHandler(qualityService quality.QualityService, validator *validator.Validate) QualityHandler {
	return &qualityHandler{
		qualityService: qualityService,
		validator:      validator,
	}
}

func (h *qualityHandler) CreateCheck(c *fiber.Ctx) error {
	req := new(domain.CreateQualityCheckRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCheck, err)
	}

	res, err := h.qualityService.CreateCheck(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCheck, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCheck)
}

func (h *qualityHandler) GetChecksByBatch(c *fiber.Ctx) error {
	batchID := c.Query("batch_id")
	if batchID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetChecks, domain.ErrBatchNotFound)
	}

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	checks, count, err := h.qualityService.GetChecksByBatch(c.Context(), batchID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetChecks, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"checks": checks,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetChecks)
}

func (h *qualityHandler) GetCheckDetails(c *fiber.Ctx) error {
	checkID := c.Params("id")

	res, err := h.qualityService.GetCheck(c.Context(), checkID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetChecks, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetChecks)
}

func (h *qualityHandler) DeleteCheck(c *fiber.Ctx) error {
	checkID := c.Params("id")

	if err := h.qualityService.DeleteCheck(c.Context(), checkID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteCheck, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCheck)
}

func (h *qualityHandler) UploadEvidence(c *fiber.Ctx) error {
	req := new(domain.UploadEvidenceRequest)
	req.CheckID = c.Params("id")

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadEvidence, err)
	}

	res, err := h.qualityService.UploadEvidence(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadEvidence, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadEvidence)
}
