package migration

import (
	"fmt"
	"log"

	"macrolog/entities"

	"gorm.io/gorm"
)

// Migrate creates the diary schema if it is missing. It is additive only:
// safe to run on every start, never drops or resets existing rows.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Day{}); err != nil {
		log.Fatalf("Error migrating day database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Food{}); err != nil {
		log.Fatalf("Error migrating food database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Entry{}); err != nil {
		log.Fatalf("Error migrating entry database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Goal{}); err != nil {
		log.Fatalf("Error migrating goal database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
