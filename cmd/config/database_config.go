package config

import (
	"fmt"
	"log"

	"macrolog/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB opens the store selected by DB_DRIVER. The default is a local
// sqlite file with foreign keys enabled, which is the on-device production
// path; postgres stays available for hosted deployments.
func ConnectDB() (*gorm.DB, error) {
	if utils.GetConfig("DB_DRIVER") == "postgres" {
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			utils.GetConfig("DB_HOST"),
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASSWORD"),
			utils.GetConfig("DB_NAME"),
			utils.GetConfig("DB_PORT"),
		)

		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatalf("Database connection failed: %v", err)
			return nil, err
		}
		return db, nil
	}

	path := utils.GetConfig("DB_PATH")
	if path == "" {
		path = "app.db"
	}

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?_foreign_keys=on", path)), &gorm.Config{})
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
		return nil, err
	}
	return db, nil
}
