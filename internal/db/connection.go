package db

import (
	"fmt"

	"medequip_server/config"
	"medequip_server/internal/models"
	"medequip_server/pkg/colors"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Initialize establishes database connection and runs migrations
func Initialize() error {
	dbConfig := config.GetDatabaseConfig()
	dsn := dbConfig.GetDSN()

	var dialector gorm.Dialector
	if dbConfig.Driver == "sqlite" {
		dialector = sqlite.Open(dsn)
	} else {
		dialector = postgres.Open(dsn)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})

	if err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}

	colors.PrintSuccess("Database connection established successfully")

	if err := RunMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %v", err)
	}

	return nil
}

// RunMigrations runs all database migrations
func RunMigrations() error {
	colors.PrintSubHeader("Running Database Migrations")

	// Base tables first, then tables carrying foreign keys
	if err := DB.AutoMigrate(&models.User{}); err != nil {
		return fmt.Errorf("user table migration failed: %v", err)
	}
	colors.PrintSuccess("✓ Users table ready")

	if err := DB.AutoMigrate(&models.Equipment{}); err != nil {
		return fmt.Errorf("equipment table migration failed: %v", err)
	}
	colors.PrintSuccess("✓ Equipment table ready")

	if err := DB.AutoMigrate(&models.Maintenance{}); err != nil {
		return fmt.Errorf("maintenance table migration failed: %v", err)
	}
	colors.PrintSuccess("✓ Maintenance table ready")

	if err := DB.AutoMigrate(&models.Alert{}); err != nil {
		return fmt.Errorf("alerts table migration failed: %v", err)
	}
	colors.PrintSuccess("✓ Alerts table ready")

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// Close closes the database connection
func Close() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
