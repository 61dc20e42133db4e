package services

import (
	"testing"
	"time"

	"annapurna-backend/models"

	"github.com/stretchr/testify/assert"
)

func validMealInput() MealInput {
	return MealInput{
		Name:         "Masala Dosa",
		Type:         models.MealTypeBreakfast,
		Calories:     fptr(350),
		Protein:      fptr(8),
		Carbs:        fptr(60),
		Fat:          fptr(9),
		Ingredients:  []string{"rice batter", "potato", "spices"},
		Instructions: "Spread the batter thin and fill with potato masala.",
	}
}

func TestCreateAndGetMeal(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMealService(db)

	created, err := svc.Create(1, validMealInput())
	assert.NoError(t, err)
	assert.Equal(t, "indian", created.Cuisine, "cuisine defaults when omitted")
	assert.EqualValues(t, 1, created.UserID)
	assert.False(t, created.Date.IsZero(), "date defaults to creation time")

	got, err := svc.Get(1, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Ingredients, got.Ingredients)
}

func TestCreateMealRejectsNegativeCalories(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMealService(db)

	input := validMealInput()
	input.Calories = fptr(-5)
	_, err := svc.Create(1, input)

	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "calories")

	var count int64
	db.Model(&models.Meal{}).Count(&count)
	assert.Zero(t, count, "rejected meal must not be persisted")
}

func TestCreateMealRequiredFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMealService(db)

	_, err := svc.Create(1, MealInput{})

	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
	for _, field := range []string{"name", "type", "calories", "protein", "carbs", "fat", "ingredients", "instructions"} {
		assert.Contains(t, ve.Fields, field)
	}
}

// The not-found and not-owned cases must be indistinguishable.
func TestGetMealOwnershipScoped(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMealService(db)

	created, err := svc.Create(1, validMealInput())
	assert.NoError(t, err)

	_, err = svc.Get(2, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Get(1, created.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListIsOwnerScopedAndBackfillsDate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMealService(db)

	_, err := svc.Create(1, validMealInput())
	assert.NoError(t, err)

	// A legacy row without a date gets its creation time at read time.
	legacy := seedMeal(t, db, 1, "Old Khichdi", models.MealTypeLunch, "north-indian")
	assert.True(t, legacy.Date.IsZero())

	seedMeal(t, db, 2, "Biryani", models.MealTypeDinner, "north-indian")

	meals, err := svc.List(1)
	assert.NoError(t, err)
	assert.Len(t, meals, 2)
	for _, m := range meals {
		assert.EqualValues(t, 1, m.UserID)
		assert.False(t, m.Date.IsZero())
	}

	// The backfill is display-only: the stored row still has no date.
	var stored models.Meal
	assert.NoError(t, db.First(&stored, legacy.ID).Error)
	assert.True(t, stored.Date.IsZero())
}

func TestUpdateMealPartial(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMealService(db)

	created, err := svc.Create(1, validMealInput())
	assert.NoError(t, err)

	updated, err := svc.Update(1, created.ID, MealUpdateInput{Calories: fptr(500)})
	assert.NoError(t, err)
	assert.EqualValues(t, 500, updated.Calories)
	assert.Equal(t, created.Name, updated.Name, "untouched fields survive")

	_, err = svc.Update(1, created.ID, MealUpdateInput{Type: sptr("brunch")})
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "type")

	_, err = svc.Update(2, created.ID, MealUpdateInput{Calories: fptr(100)})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMealOwnershipScoped(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMealService(db)

	created, err := svc.Create(1, validMealInput())
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(2, created.ID), ErrNotFound)
	_, err = svc.Get(1, created.ID)
	assert.NoError(t, err, "foreign delete must not remove the meal")

	assert.NoError(t, svc.Delete(1, created.ID))
	_, err = svc.Get(1, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateMealKeepsDateWhenSet(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMealService(db)

	input := validMealInput()
	date := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	input.Date = &date
	created, err := svc.Create(1, input)
	assert.NoError(t, err)
	assert.True(t, created.Date.Equal(date))

	updated, err := svc.Update(1, created.ID, MealUpdateInput{Name: sptr("Rava Dosa")})
	assert.NoError(t, err)
	assert.True(t, updated.Date.Equal(date))
}
