package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"Distillery-Tracker/pkg/tracking"

	"github.com/gofiber/fiber/v2"
)

func newTrackingApp() *fiber.App {
	app := fiber.New()
	handler := NewTrackingHandler(tracking.NewTrackingService())
	app.Post("/webhook/tracking-id", handler.GenerateTrackingID)
	return app
}

func TestGenerateTrackingIDWebhook(t *testing.T) {
	app := newTrackingApp()

	body := `{
		"grower_id": "HV",
		"fruit_id": "AP",
		"varietal_id": "GD",
		"batch_id": "042",
		"process_stage": "FERM",
		"process_date": "2024-03-21"
	}`
	req := httptest.NewRequest("POST", "/webhook/tracking-id", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}

	var payload struct {
		TrackingID string `json:"tracking_id"`
		Status     string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if want := "HV.AP.GD.042.FERM.240321"; payload.TrackingID != want {
		t.Errorf("tracking_id = %q, want %q", payload.TrackingID, want)
	}
	if payload.Status != "success" {
		t.Errorf("status = %q, want %q", payload.Status, "success")
	}
}

func TestGenerateTrackingIDWebhookMissingField(t *testing.T) {
	app := newTrackingApp()

	body := `{
		"grower_id": "HV",
		"fruit_id": "AP",
		"varietal_id": "GD",
		"batch_id": "042",
		"process_stage": "FERM"
	}`
	req := httptest.NewRequest("POST", "/webhook/tracking-id", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Error == "" {
		t.Error("error field is empty, want a message")
	}
}

func TestGenerateTrackingIDWebhookBadDate(t *testing.T) {
	app := newTrackingApp()

	body := `{
		"grower_id": "HV",
		"fruit_id": "AP",
		"varietal_id": "GD",
		"batch_id": "042",
		"process_stage": "FERM",
		"process_date": "21/03/2024"
	}`
	req := httptest.NewRequest("POST", "/webhook/tracking-id", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
	}
}
