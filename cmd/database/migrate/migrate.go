package migration

import (
	"fmt"
	"log"

	"Distillery-Tracker/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// uuid_generate_v4 defaults on primary keys. A no-op on SQLite.
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Supplier{}); err != nil {
		log.Fatalf("Error migrating supplier database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Batch{}); err != nil {
		log.Fatalf("Error migrating batch database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.BatchEvent{}); err != nil {
		log.Fatalf("Error migrating batch event database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FermentationTrial{}); err != nil {
		log.Fatalf("Error migrating fermentation trial database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.TrialReading{}); err != nil {
		log.Fatalf("Error migrating trial reading database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.UpscaleRun{}); err != nil {
		log.Fatalf("Error migrating upscale run database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.QualityCheck{}); err != nil {
		log.Fatalf("Error migrating quality check database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Equipment{}); err != nil {
		log.Fatalf("Error migrating equipment database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MaintenanceRecord{}); err != nil {
		log.Fatalf("Error migrating maintenance record database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.InventoryItem{}); err != nil {
		log.Fatalf("Error migrating inventory item database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
