package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stockplan/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx and migrates the
// three domain tables. The schema is small and owned entirely by this
// service, so AutoMigrate is sufficient — no hand-written migration files.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return db, nil
}

// RunMigrations creates or updates the schema. Also used by integration tests.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Product{},
		&model.RawMaterial{},
		&model.BOMLine{},
	)
}
