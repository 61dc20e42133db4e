package services

import (
	"testing"

	"annapurna-backend/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newRecipeService(db *gorm.DB) *RecipeService {
	return NewRecipeService(NewGormMealCatalog(db), NewGormPreferenceStore(db))
}

func savePreference(t *testing.T, db *gorm.DB, pref models.RecipePreference) {
	t.Helper()
	if err := db.Create(&pref).Error; err != nil {
		t.Fatalf("seed preference: %v", err)
	}
}

func TestSelectRandomEmptyCatalog(t *testing.T) {
	db := setupTestDB(t)
	svc := newRecipeService(db)

	_, err := svc.SelectRandom(1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSelectRandomWithoutPreferences(t *testing.T) {
	db := setupTestDB(t)
	svc := newRecipeService(db)
	seedMeal(t, db, 1, "Poha", models.MealTypeBreakfast, "north-indian")

	meal, err := svc.SelectRandom(2) // a different user, no preferences saved
	assert.NoError(t, err)
	assert.Equal(t, "Poha", meal.Name)
}

func TestSelectRandomHonorsMealTypeFilter(t *testing.T) {
	db := setupTestDB(t)
	svc := newRecipeService(db)
	seedMeal(t, db, 1, "Poha", models.MealTypeBreakfast, "north-indian")
	seedMeal(t, db, 1, "Idli", models.MealTypeBreakfast, "south-indian")
	seedMeal(t, db, 2, "Biryani", models.MealTypeDinner, "north-indian")
	savePreference(t, db, models.RecipePreference{
		UserID:    3,
		MealTypes: []string{models.MealTypeBreakfast},
	})

	for i := 0; i < 25; i++ {
		meal, err := svc.SelectRandom(3)
		assert.NoError(t, err)
		assert.Equal(t, models.MealTypeBreakfast, meal.Type)
	}
}

// One meal matches both the type and cuisine filters, so selection must be
// deterministic despite the randomness.
func TestSelectRandomSingleCandidate(t *testing.T) {
	db := setupTestDB(t)
	svc := newRecipeService(db)
	a := seedMeal(t, db, 1, "Dal Makhani", models.MealTypeDinner, "north-indian")
	seedMeal(t, db, 1, "Poha", models.MealTypeBreakfast, "north-indian")
	seedMeal(t, db, 2, "Pasta", models.MealTypeDinner, "indo-italian")
	savePreference(t, db, models.RecipePreference{
		UserID:            5,
		MealTypes:         []string{models.MealTypeDinner},
		PreferredCuisines: []string{"north-indian"},
	})

	for i := 0; i < 10; i++ {
		meal, err := svc.SelectRandom(5)
		assert.NoError(t, err)
		assert.Equal(t, a.ID, meal.ID)
	}
}

// Preferences that match nothing fall back to the whole catalog; every meal
// must stay reachable.
func TestSelectRandomFallsBackWhenNothingMatches(t *testing.T) {
	db := setupTestDB(t)
	svc := newRecipeService(db)
	a := seedMeal(t, db, 1, "Dal Makhani", models.MealTypeDinner, "north-indian")
	b := seedMeal(t, db, 1, "Poha", models.MealTypeBreakfast, "north-indian")
	c := seedMeal(t, db, 2, "Pasta", models.MealTypeDinner, "indo-italian")
	savePreference(t, db, models.RecipePreference{
		UserID:    7,
		MealTypes: []string{models.MealTypeSnack}, // no snacks exist
	})

	seen := map[uint]bool{}
	for i := 0; i < 200; i++ {
		meal, err := svc.SelectRandom(7)
		assert.NoError(t, err)
		seen[meal.ID] = true
	}
	assert.True(t, seen[a.ID], "fallback never returned meal A")
	assert.True(t, seen[b.ID], "fallback never returned meal B")
	assert.True(t, seen[c.ID], "fallback never returned meal C")
}

func TestSelectRandomMultipleReturnsAllWhenCatalogSmaller(t *testing.T) {
	db := setupTestDB(t)
	svc := newRecipeService(db)
	seedMeal(t, db, 1, "Poha", models.MealTypeBreakfast, "north-indian")
	seedMeal(t, db, 1, "Idli", models.MealTypeBreakfast, "south-indian")
	seedMeal(t, db, 2, "Biryani", models.MealTypeDinner, "north-indian")

	meals, err := svc.SelectRandomMultiple(1, 5)
	assert.NoError(t, err)
	assert.Len(t, meals, 3)

	distinct := map[uint]bool{}
	for _, m := range meals {
		distinct[m.ID] = true
	}
	assert.Len(t, distinct, 3, "sampled meals must be distinct")
}

func TestSelectRandomMultipleDefaultsCount(t *testing.T) {
	db := setupTestDB(t)
	svc := newRecipeService(db)
	for _, name := range []string{"Poha", "Idli", "Dosa", "Upma", "Paratha"} {
		seedMeal(t, db, 1, name, models.MealTypeBreakfast, "south-indian")
	}

	meals, err := svc.SelectRandomMultiple(1, 0)
	assert.NoError(t, err)
	assert.Len(t, meals, 3)
}

func TestSelectRandomMultipleFallsBack(t *testing.T) {
	db := setupTestDB(t)
	svc := newRecipeService(db)
	seedMeal(t, db, 1, "Biryani", models.MealTypeDinner, "north-indian")
	savePreference(t, db, models.RecipePreference{
		UserID:    4,
		MealTypes: []string{models.MealTypeSnack},
	})

	meals, err := svc.SelectRandomMultiple(4, 3)
	assert.NoError(t, err)
	assert.Len(t, meals, 1)
	assert.Equal(t, "Biryani", meals[0].Name)
}

func TestSelectRandomMultipleEmptyCatalog(t *testing.T) {
	db := setupTestDB(t)
	svc := newRecipeService(db)

	meals, err := svc.SelectRandomMultiple(1, 3)
	assert.NoError(t, err)
	assert.Empty(t, meals)
}
