package models

import "gorm.io/gorm"

const (
	SpiceLevelMild   = "mild"
	SpiceLevelMedium = "medium"
	SpiceLevelHot    = "hot"
)

// Fixed vocabularies for the preference tag sets.
var (
	SpiceLevels = []string{SpiceLevelMild, SpiceLevelMedium, SpiceLevelHot}

	DietaryRestrictions = []string{
		"vegetarian", "vegan", "gluten-free", "dairy-free", "nut-free", "halal", "kosher",
	}

	Cuisines = []string{
		"north-indian", "south-indian", "east-indian", "west-indian",
		"indian-chinese", "indo-italian", "indo-mexican",
	}
)

// CookingTime is a minutes range with Min <= Max.
type CookingTime struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// RecipePreference holds a user's dietary preferences for the surprise-me
// selector. At most one row per user; a user without a row is treated as
// having the defaults (see services.DefaultPreferences). Defaulting lives
// entirely in that merge function — column-level defaults would silently
// overwrite explicit zero values like seasonalPreferences=false on the
// first insert.
type RecipePreference struct {
	gorm.Model
	UserID              uint        `gorm:"uniqueIndex;not null" json:"user"`
	DietaryRestrictions []string    `gorm:"serializer:json" json:"dietaryRestrictions"`
	PreferredCuisines   []string    `gorm:"serializer:json" json:"preferredCuisines"`
	SpiceLevel          string      `json:"spiceLevel"`
	CookingTime         CookingTime `gorm:"embedded;embeddedPrefix:cooking_time_" json:"cookingTime"`
	MealTypes           []string    `gorm:"serializer:json" json:"mealTypes"`
	SeasonalPreferences bool        `json:"seasonalPreferences"`
}
