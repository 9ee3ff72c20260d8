package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// registers the cgo-free "sqlite" database/sql driver
	_ "modernc.org/sqlite"

	"furnex/internal/domain"
)

// Connect opens the store for the given DSN. Postgres URLs go to the postgres
// driver; anything else (a file path or ":memory:") is treated as SQLite,
// which tests and local development rely on.
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite:", dsn)

	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
	if err != nil {
		return nil, err
	}

	// A pooled :memory: DSN would give every connection its own database.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// Migrate creates or updates the schema for every entity the API serves.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Client{},
		&domain.Category{},
		&domain.Room{},
		&domain.Color{},
		&domain.Material{},
		&domain.MaterialPhoto{},
		&domain.Pattern{},
		&domain.PatternPhoto{},
		&domain.PieceOfFurniture{},
		&domain.Part{},
		&domain.Photo{},
		&domain.CustomSizeForm{},
	)
}
