package config

import (
	"fmt"
	"log"
	"os"

	"second-brain-server/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// InitDB connects to Postgres and migrates the schema. TranslateError is on so
// the tags.title unique index surfaces as gorm.ErrDuplicatedKey, which the tag
// service relies on to resolve concurrent first-use of a title.
func InitDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getenv("DB_HOST", "localhost"),
		getenv("DB_PORT", "5432"),
		getenv("DB_USER", "postgres"),
		getenv("DB_PASSWORD", "postgres"),
		getenv("DB_NAME", "second_brain"),
		getenv("DB_SSLMODE", "disable"),
	)

	logLevel := logger.Warn
	if os.Getenv("DEBUG") != "" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to get SQL DB: ", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	if err := db.AutoMigrate(&models.User{}, &models.Tag{}, &models.Content{}); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	return db
}
