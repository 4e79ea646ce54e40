package handlers

import (
	"Distillery-Tracker/domain"
	"Distillery-Tracker/internal/api/presenters"
	"Distillery-Tracker/pkg/upscale"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UpscaleHandler interface {
		StartNextUpscale(c *fiber.Ctx) error
		GetUpscalesByTrial(c *fiber.Ctx) error
		RecordResults(c *fiber.Ctx) error
		CompleteUpscale(c *fiber.Ctx) error
		FailUpscale(c *fiber.Ctx) error
	}

	upscaleHandler struct {
		upscaleService upscale.UpscaleService
		validator      *validator.Validate
	}
)

func NewUpscaleHandler(upscaleService upscale.UpscaleService, validator *validator.Validate) UpscaleHandler {
	return &upscaleHandler{
		upscaleService: upscaleService,
		validator:      validator,
	}
}

func (h *upscaleHandler) StartNextUpscale(c *fiber.Ctx) error {
	trialID := c.Params("id")

	res, err := h.upscaleService.StartNextUpscale(c.Context(), trialID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedStartUpscale, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessStartUpscale)
}

func (h *upscaleHandler) GetUpscalesByTrial(c *fiber.Ctx) error {
	trialID := c.Params("id")

	res, err := h.upscaleService.GetUpscalesByTrial(c.Context(), trialID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetUpscales, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUpscales)
}

func (h *upscaleHandler) RecordResults(c *fiber.Ctx) error {
	runID := c.Params("id")
	req := new(domain.RecordUpscaleResultsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecordResults, err)
	}

	res, err := h.upscaleService.RecordResults(c.Context(), runID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecordResults, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRecordResults)
}

func (h *upscaleHandler) CompleteUpscale(c *fiber.Ctx) error {
	runID := c.Params("id")

	res, err := h.upscaleService.CompleteUpscale(c.Context(), runID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCompleteUpscale, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCompleteUpscale)
}

func (h *upscaleHandler) FailUpscale(c *fiber.Ctx) error {
	runID := c.Params("id")

	res, err := h.upscaleService.FailUpscale(c.Context(), runID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedFailUpscale, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessFailUpscale)
}
