package routes

import (
	"Distillery-Tracker/internal/api/handlers"
	"Distillery-Tracker/internal/middleware"
	"Distillery-Tracker/internal/ws"
	"Distillery-Tracker/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	BatchHandler     handlers.BatchHandler
	TrialHandler     handlers.TrialHandler
	UpscaleHandler   handlers.UpscaleHandler
	QualityHandler   handlers.QualityHandler
	EquipmentHandler handlers.EquipmentHandler
	InventoryHandler handlers.InventoryHandler
	SupplierHandler  handlers.SupplierHandler
	TrackingHandler  handlers.TrackingHandler
	Hub              *ws.Hub
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Batches()
	c.Trials()
	c.Upscales()
	c.QualityChecks()
	c.Equipment()
	c.Inventory()
	c.Suppliers()
	c.GuestRoute()
	c.WebSocket()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Batches() {
	batches := c.App.Group("/api/v1/batches", c.Middleware.AuthMiddleware(c.JWTService))
	batches.Get("/dashboard", c.BatchHandler.GetDashboardStats)

	// Basic CRUD operations
	batches.Post("", c.BatchHandler.CreateBatch)
	batches.Get("", c.BatchHandler.GetBatches)
	batches.Get("/:id", c.BatchHandler.GetBatchDetails)
	batches.Put("/:id", c.BatchHandler.UpdateBatch)
	batches.Delete("/:id", c.BatchHandler.DeleteBatch)

	// Lifecycle operations
	batches.Patch("/:id/status", c.BatchHandler.UpdateStatus)
	batches.Post("/:id/advance", c.BatchHandler.AdvanceStage)

	// Journey timeline
	batches.Get("/:id/journey", c.BatchHandler.GetJourney)
	batches.Post("/:id/journey/events", c.BatchHandler.AddJourneyEvent)
}

func (c *Config) Trials() {
	trials := c.App.Group("/api/v1/trials", c.Middleware.AuthMiddleware(c.JWTService))

	trials.Post("", c.TrialHandler.CreateTrial)
	trials.Get("", c.TrialHandler.GetTrialsByBatch)
	trials.Get("/:id", c.TrialHandler.GetTrialDetails)
	trials.Delete("/:id", c.TrialHandler.DeleteTrial)

	trials.Post("/:id/readings", c.TrialHandler.AddReading)
	trials.Patch("/:id/path", c.TrialHandler.SetPath)

	// Upscale ladder hangs off the trial
	trials.Post("/:id/upscales", c.UpscaleHandler.StartNextUpscale)
	trials.Get("/:id/upscales", c.UpscaleHandler.GetUpscalesByTrial)
}

func (c *Config) Upscales() {
	upscales := c.App.Group("/api/v1/upscales", c.Middleware.AuthMiddleware(c.JWTService))

	upscales.Patch("/:id/results", c.UpscaleHandler.RecordResults)
	upscales.Post("/:id/complete", c.UpscaleHandler.CompleteUpscale)
	upscales.Post("/:id/fail", c.UpscaleHandler.FailUpscale)
}

func (c *Config) QualityChecks() {
	checks := c.App.Group("/api/v1/quality-checks", c.Middleware.AuthMiddleware(c.JWTService))

	checks.Post("", c.QualityHandler.CreateCheck)
	checks.Get("", c.QualityHandler.GetChecksByBatch)
	checks.Get("/:id", c.QualityHandler.GetCheckDetails)
	checks.Delete("/:id", c.QualityHandler.DeleteCheck)
	checks.Post("/:id/evidence", c.QualityHandler.UploadEvidence)
}

func (c *Config) Equipment() {
	equipment := c.App.Group("/api/v1/equipment", c.Middleware.AuthMiddleware(c.JWTService))

	equipment.Post("", c.EquipmentHandler.CreateEquipment)
	equipment.Get("", c.EquipmentHandler.GetEquipment)
	equipment.Get("/:id", c.EquipmentHandler.GetEquipmentDetails)
	equipment.Put("/:id", c.EquipmentHandler.UpdateEquipment)
	equipment.Delete("/:id", c.EquipmentHandler.DeleteEquipment)
	equipment.Get("/:id/maintenance", c.EquipmentHandler.GetMaintenanceByEquipment)

	maintenance := c.App.Group("/api/v1/maintenance", c.Middleware.AuthMiddleware(c.JWTService))
	maintenance.Post("", c.EquipmentHandler.ScheduleMaintenance)
	maintenance.Post("/:id/complete", c.EquipmentHandler.CompleteMaintenance)
	maintenance.Post("/notify-overdue", c.EquipmentHandler.NotifyOverdueMaintenance)
}

func (c *Config) Inventory() {
	inventory := c.App.Group("/api/v1/inventory", c.Middleware.AuthMiddleware(c.JWTService))

	inventory.Post("", c.InventoryHandler.CreateItem)
	inventory.Get("", c.InventoryHandler.GetItems)
	inventory.Get("/:id", c.InventoryHandler.GetItemDetails)
	inventory.Put("/:id", c.InventoryHandler.UpdateItem)
	inventory.Patch("/:id/quantity", c.InventoryHandler.AdjustQuantity)
	inventory.Delete("/:id", c.InventoryHandler.DeleteItem)
}

func (c *Config) Suppliers() {
	suppliers := c.App.Group("/api/v1/suppliers", c.Middleware.AuthMiddleware(c.JWTService))

	suppliers.Post("", c.SupplierHandler.CreateSupplier)
	suppliers.Get("", c.SupplierHandler.GetSuppliers)
	suppliers.Get("/:id", c.SupplierHandler.GetSupplierDetails)
	suppliers.Put("/:id", c.SupplierHandler.UpdateSupplier)
	suppliers.Delete("/:id", c.SupplierHandler.DeleteSupplier)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works. test"})
	})
	c.App.Post("/webhook/tracking-id", c.TrackingHandler.GenerateTrackingID)
}

func (c *Config) WebSocket() {
	c.App.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	c.App.Get("/ws/batches", websocket.New(c.Hub.Handler()))
}
