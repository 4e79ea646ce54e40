package config

import (
	"os"
	"time"

	"Distillery-Tracker/internal/api/handlers"
	"Distillery-Tracker/internal/api/routes"
	"Distillery-Tracker/internal/middleware"
	"Distillery-Tracker/internal/utils"
	"Distillery-Tracker/internal/utils/storage"
	"Distillery-Tracker/internal/ws"
	"Distillery-Tracker/pkg/batch"
	"Distillery-Tracker/pkg/equipment"
	"Distillery-Tracker/pkg/inventory"
	"Distillery-Tracker/pkg/journey"
	"Distillery-Tracker/pkg/jwt"
	"Distillery-Tracker/pkg/quality"
	"Distillery-Tracker/pkg/supplier"
	"Distillery-Tracker/pkg/tracking"
	"Distillery-Tracker/pkg/trial"
	"Distillery-Tracker/pkg/upscale"
	"Distillery-Tracker/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	hub := ws.NewHub()

	// Repository
	userRepository := user.NewUserRepository(db)
	supplierRepository := supplier.NewSupplierRepository(db)
	batchRepository := batch.NewBatchRepository(db)
	journeyRepository := journey.NewJourneyRepository(db)
	trialRepository := trial.NewTrialRepository(db)
	upscaleRepository := upscale.NewUpscaleRepository(db)
	qualityRepository := quality.NewQualityRepository(db)
	equipmentRepository := equipment.NewEquipmentRepository(db)
	inventoryRepository := inventory.NewInventoryRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	supplierService := supplier.NewSupplierService(supplierRepository)
	batchService := batch.NewBatchService(batchRepository, journeyRepository, hub)
	journeyService := journey.NewJourneyService(journeyRepository, batchRepository)
	trialService := trial.NewTrialService(trialRepository, batchRepository)
	upscaleService := upscale.NewUpscaleService(upscaleRepository, trialRepository, upscale.DefaultLadder())
	qualityService := quality.NewQualityService(qualityRepository, batchRepository, s3)
	equipmentService := equipment.NewEquipmentService(equipmentRepository)
	inventoryService := inventory.NewInventoryService(inventoryRepository)
	trackingService := tracking.NewTrackingService()
	hub.SetBatchLister(batchService)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	batchHandler := handlers.NewBatchHandler(batchService, journeyService, validator)
	trialHandler := handlers.NewTrialHandler(trialService, validator)
	upscaleHandler := handlers.NewUpscaleHandler(upscaleService, validator)
	qualityHandler := handlers.NewQualityHandler(qualityService, validator)
	equipmentHandler := handlers.NewEquipmentHandler(equipmentService, validator)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validator)
	supplierHandler := handlers.NewSupplierHandler(supplierService, validator)
	trackingHandler := handlers.NewTrackingHandler(trackingService)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		BatchHandler:     batchHandler,
		TrialHandler:     trialHandler,
		UpscaleHandler:   upscaleHandler,
		QualityHandler:   qualityHandler,
		EquipmentHandler: equipmentHandler,
		InventoryHandler: inventoryHandler,
		SupplierHandler:  supplierHandler,
		TrackingHandler:  trackingHandler,
		Hub:              hub,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
