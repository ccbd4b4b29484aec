package database

import (
	"Packed/internal/config"
	"Packed/internal/models"
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func SetupDatabase(cfg *config.Configuration) (*gorm.DB, error) {
	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	// TranslateError turns dialect-specific duplicated-key errors into
	// gorm.ErrDuplicatedKey, which the repository layer depends on.
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	err = db.AutoMigrate(&models.List{}, &models.Item{}, &models.Container{}, &models.Placement{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

func openDialector(cfg *config.Configuration) (gorm.Dialector, error) {
	if cfg.Database.Driver == "sqlite" {
		path := cfg.Database.Path
		if path == "" {
			path = "packed.db"
		}
		return sqlite.Open(path), nil
	}

	var envVariables = [...]string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "DB_TZ"}
	for _, envVariable := range envVariables {
		if os.Getenv(envVariable) == "" && envVariable != "DB_SSLMODE" {
			return nil, fmt.Errorf("%s environment variable not set", envVariable)
		}
		if envVariable == "DB_SSLMODE" && os.Getenv(envVariable) == "" {
			err := os.Setenv("DB_SSLMODE", "disable")
			if err != nil {
				return nil, err
			}
		}
	}
	dsn := os.ExpandEnv("host=${DB_HOST} user=${DB_USER} password=${DB_PASSWORD} dbname=${DB_NAME} port=${DB_PORT} sslmode=${DB_SSLMODE} TimeZone=${DB_TZ}")
	return postgres.Open(dsn), nil
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Could not get DB instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}
