package database

import (
	"fmt"
	"log"

	"github.com/anjiri1684/trivia_api/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DefaultCategories are seeded, in id order, into an empty categories table.
var DefaultCategories = []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		DisableNestedTransaction:                 true,
	}
}

// ConnectDB opens a Postgres connection for dsn.
func ConnectDB(dsn string) (*gorm.DB, error) {
	return Open(postgres.Open(dsn))
}

// Open wraps gorm.Open with the settings used across the API.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, gormConfig())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Question{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// SeedCategories inserts DefaultCategories when no category exists yet.
func SeedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count categories: %w", err)
	}

	if count > 0 {
		log.Println("Categories already seeded.")
		return nil
	}

	categories := make([]models.Category, len(DefaultCategories))
	for i, name := range DefaultCategories {
		categories[i] = models.Category{Type: name}
	}

	if err := db.Create(&categories).Error; err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}

	log.Printf("✅ Seeded %d categories", len(categories))
	return nil
}
