package handlers

import (
	"Distillery-Tracker/domain"
	"Distillery-Tracker/internal/api/presenters"
	"Distillery-Tracker/pkg/trial"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	TrialHandler interface {
		CreateTrial(c *fiber.Ctx) error
		GetTrialsByBatch(c *fiber.Ctx) error
		GetTrialDetails(c *fiber.Ctx) error
		DeleteTrial(c *fiber.Ctx) error
		AddReading(c *fiber.Ctx) error
		SetPath(c *fiber.Ctx) error
	}

	trialHandler struct {
		trialService trial.TrialService
		validator    *validator.Validate
	}
)

func NewTrialHandler(trialService trial.TrialService, validator *validator.Validate) TrialHandler {
	return &trialHandler{
		trialService: trialService,
		validator:    validator,
	}
}

func (h *trialHandler) CreateTrial(c *fiber.Ctx) error {
	req := new(domain.CreateTrialRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateTrial, err)
	}

	res, err := h.trialService.CreateTrial(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateTrial, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateTrial)
}

func (h *trialHandler) GetTrialsByBatch(c *fiber.Ctx) error {
	batchID := c.Query("batch_id")
	if batchID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTrials, domain.ErrBatchNotFound)
	}

	trials, err := h.trialService.GetTrialsByBatch(c.Context(), batchID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTrials, err)
	}

	return presenters.SuccessResponse(c, trials, fiber.StatusOK, domain.MessageSuccessGetTrials)
}

func (h *trialHandler) GetTrialDetails(c *fiber.Ctx) error {
	trialID := c.Params("id")

	res, err := h.trialService.GetTrial(c.Context(), trialID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTrial, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTrial)
}

func (h *trialHandler) DeleteTrial(c *fiber.Ctx) error {
	trialID := c.Params("id")

	if err := h.trialService.DeleteTrial(c.Context(), trialID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteTrial, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteTrial)
}

func (h *trialHandler) AddReading(c *fiber.Ctx) error {
	trialID := c.Params("id")
	req := new(domain.AddReadingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddReading, err)
	}

	res, err := h.trialService.AddReading(c.Context(), trialID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddReading, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddReading)
}

func (h *trialHandler) SetPath(c *fiber.Ctx) error {
	trialID := c.Params("id")
	req := new(domain.SetPathRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetPath, err)
	}

	res, err := h.trialService.SetPath(c.Context(), trialID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetPath, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSetPath)
}
