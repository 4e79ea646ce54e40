package migration

import (
	"fmt"
	"time"

	"Distillery-Tracker/domain"
	"Distillery-Tracker/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeedDemo loads a small working dataset for demo mode. It is
// idempotent: a second call finds the demo batch and does nothing.
func SeedDemo(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.Batch{}).Where("batch_code = ?", "240315-AP-FR-001").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	supplier := entities.Supplier{
		ID:         uuid.New(),
		GrowerCode: "HV",
		Name:       "Hillside Valley Orchards",
		Region:     "Huon Valley",
		FruitTypes: "apple,pear",
		IsActive:   true,
	}
	if err := db.Create(&supplier).Error; err != nil {
		return err
	}

	start := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	batch := entities.Batch{
		ID:           uuid.New(),
		BatchCode:    "240315-AP-FR-001",
		Name:         "Autumn apple pressing",
		FruitType:    "apple",
		ProcessType:  "fresh",
		Status:       domain.BatchStatusActive,
		CurrentStage: "ferment",
		Progress:     75,
		Quantity:     1200,
		Unit:         "kg",
		StartDate:    start,
		SupplierID:   &supplier.ID,
	}
	if err := db.Create(&batch).Error; err != nil {
		return err
	}

	stages := []struct {
		stage   string
		message string
		offset  time.Duration
	}{
		{"arrival", "Batch 240315-AP-FR-001 received", 0},
		{"prep", "Chemistry adjusted, SO2 added", 24 * time.Hour},
		{"heat", "Pasteurisation cycle finished", 48 * time.Hour},
		{"ferment", "Pitched yeast, fermentation underway", 72 * time.Hour},
	}
	for _, s := range stages {
		event := entities.BatchEvent{
			ID:        uuid.New(),
			BatchID:   batch.ID,
			Stage:     s.stage,
			Message:   s.message,
			Timestamp: start.Add(s.offset),
		}
		if err := db.Create(&event).Error; err != nil {
			return err
		}
	}

	trial := entities.FermentationTrial{
		ID:           uuid.New(),
		TrialCode:    "T-001-01",
		BatchID:      batch.ID,
		JuiceVariant: "JP2",
		YeastStrain:  "EC-1118",
		InitialSG:    1.050,
		CurrentSG:    1.020,
		TargetSG:     0.998,
		CurrentABV:   4.1,
		Status:       domain.TrialStatusFermenting,
	}
	if err := db.Create(&trial).Error; err != nil {
		return err
	}

	equipment := entities.Equipment{
		ID:         uuid.New(),
		Name:       "Still 1",
		Type:       "still",
		Status:     domain.EquipmentStatusOperational,
		IsCritical: true,
	}
	if err := db.Create(&equipment).Error; err != nil {
		return err
	}

	item := entities.InventoryItem{
		ID:               uuid.New(),
		Name:             "EC-1118 yeast",
		Type:             "raw_material",
		Quantity:         40,
		Unit:             "packs",
		ReorderThreshold: 10,
		Status:           domain.StockStatusInStock,
		SupplierID:       &supplier.ID,
	}
	if err := db.Create(&item).Error; err != nil {
		return err
	}

	fmt.Println("Demo data seeded")
	return nil
}
