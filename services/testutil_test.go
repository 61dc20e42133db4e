package services

import (
	"path/filepath"
	"testing"

	"annapurna-backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a fresh SQLite database for each test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Meal{}, &models.RecipePreference{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedMeal(t *testing.T, db *gorm.DB, userID uint, name, mealType, cuisine string) models.Meal {
	t.Helper()
	meal := models.Meal{
		Name:         name,
		Type:         mealType,
		Cuisine:      cuisine,
		Calories:     400,
		Protein:      20,
		Carbs:        50,
		Fat:          10,
		Ingredients:  []string{"rice", "lentils"},
		Instructions: "Cook everything together.",
		UserID:       userID,
	}
	if err := db.Create(&meal).Error; err != nil {
		t.Fatalf("seed meal %s: %v", name, err)
	}
	return meal
}

func fptr(v float64) *float64 { return &v }

func sptr(v string) *string { return &v }
