package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	gormModels "airfield-ops/towerlog/internal/models/gorm"
)

var PgDB *gorm.DB

func InitPostgresORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	PgDB = db
	return db, nil
}

// AutoMigrate creates or updates the four entity tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&gormModels.Airport{},
		&gormModels.Aircraft{},
		&gormModels.Pilot{},
		&gormModels.Flight{},
	)
}
