package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

// MealTypes lists every valid value for Meal.Type.
var MealTypes = []string{MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack}

const DefaultCuisine = "indian"

// Meal is a recipe in the shared catalog. Every meal belongs to exactly one
// user, but the surprise-me selector draws from all users' meals.
type Meal struct {
	gorm.Model
	Name         string    `gorm:"not null" json:"name"`
	Type         string    `gorm:"not null" json:"type"`
	Cuisine      string    `gorm:"not null;default:indian" json:"cuisine"`
	Calories     float64   `json:"calories"`
	Protein      float64   `json:"protein"`
	Carbs        float64   `json:"carbs"`
	Fat          float64   `json:"fat"`
	Ingredients  []string  `gorm:"serializer:json" json:"ingredients"`
	Instructions string    `gorm:"not null" json:"instructions"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	Date         time.Time `json:"date"`
	UserID       uint      `gorm:"index;not null" json:"user"` // FK → users.id, set once at creation
}
