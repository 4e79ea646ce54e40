package handlers

import (
	"Distillery-Tracker/domain"
	"Distillery-Tracker/pkg/tracking"

	"github.com/gofiber/fiber/v2"
)

type (
	TrackingHandler interface {
		GenerateTrackingID(c *fiber.Ctx) error
	}

	trackingHandler struct {
		trackingService tracking.TrackingService
	}
)

func NewTrackingHandler(trackingService tracking.TrackingService) TrackingHandler {
	return &trackingHandler{trackingService: trackingService}
}

// GenerateTrackingID answers the labelling webhook. External label
// printers consume the raw shape, so the usual response envelope is
// deliberately not used here.
func (h *trackingHandler) GenerateTrackingID(c *fiber.Ctx) error {
	req := new(domain.TrackingIDRequest)

	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": domain.MessageFailedBodyRequest})
	}

	res, err := h.trackingService.BuildTrackingID(*req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(res)
}
