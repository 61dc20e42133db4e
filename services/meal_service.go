package services

import (
	"errors"
	"slices"
	"strings"
	"time"

	"annapurna-backend/models"

	"gorm.io/gorm"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// MealInput is the create payload. Macros are pointers so that a missing
// field can be told apart from an explicit zero.
type MealInput struct {
	Name         string     `json:"name"`
	Type         string     `json:"type"`
	Cuisine      string     `json:"cuisine"`
	Calories     *float64   `json:"calories"`
	Protein      *float64   `json:"protein"`
	Carbs        *float64   `json:"carbs"`
	Fat          *float64   `json:"fat"`
	Ingredients  []string   `json:"ingredients"`
	Instructions string     `json:"instructions"`
	ImageURL     string     `json:"imageUrl"`
	Date         *time.Time `json:"date"`
}

// MealUpdateInput is the partial update payload; nil fields are left
// unchanged.
type MealUpdateInput struct {
	Name         *string    `json:"name"`
	Type         *string    `json:"type"`
	Cuisine      *string    `json:"cuisine"`
	Calories     *float64   `json:"calories"`
	Protein      *float64   `json:"protein"`
	Carbs        *float64   `json:"carbs"`
	Fat          *float64   `json:"fat"`
	Ingredients  *[]string  `json:"ingredients"`
	Instructions *string    `json:"instructions"`
	ImageURL     *string    `json:"imageUrl"`
	Date         *time.Time `json:"date"`
}

// List returns the caller's own meals. Meals persisted without a date are
// shown with their creation timestamp; the backfill is display-only and
// never written back.
func (s *MealService) List(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.Where("user_id = ?", userID).Order("date DESC").Find(&meals).Error
	if err != nil {
		return nil, err
	}
	for i := range meals {
		if meals[i].Date.IsZero() {
			meals[i].Date = meals[i].CreatedAt
		}
	}
	return meals, nil
}

// Get looks a meal up by id and owner in a single query, so a meal that
// does not exist and a meal owned by someone else are indistinguishable to
// the caller.
func (s *MealService) Get(userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.Where("id = ? AND user_id = ?", mealID, userID).First(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if meal.Date.IsZero() {
		meal.Date = meal.CreatedAt
	}
	return &meal, nil
}

// Create validates the payload and stores the meal. Ownership always comes
// from the authenticated caller, never from the payload.
func (s *MealService) Create(userID uint, input MealInput) (*models.Meal, error) {
	if err := validateMealInput(input); err != nil {
		return nil, err
	}

	meal := models.Meal{
		Name:         strings.TrimSpace(input.Name),
		Type:         input.Type,
		Cuisine:      input.Cuisine,
		Calories:     *input.Calories,
		Protein:      *input.Protein,
		Carbs:        *input.Carbs,
		Fat:          *input.Fat,
		Ingredients:  input.Ingredients,
		Instructions: input.Instructions,
		ImageURL:     input.ImageURL,
		Date:         time.Now(),
		UserID:       userID,
	}
	if meal.Cuisine == "" {
		meal.Cuisine = models.DefaultCuisine
	}
	if input.Date != nil {
		meal.Date = *input.Date
	}

	if err := s.db.Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// Update applies a partial update to one of the caller's meals, with the
// same combined existence/ownership lookup as Get.
func (s *MealService) Update(userID, mealID uint, input MealUpdateInput) (*models.Meal, error) {
	meal, err := s.Get(userID, mealID)
	if err != nil {
		return nil, err
	}
	if err := validateMealUpdate(input); err != nil {
		return nil, err
	}

	if input.Name != nil {
		meal.Name = strings.TrimSpace(*input.Name)
	}
	if input.Type != nil {
		meal.Type = *input.Type
	}
	if input.Cuisine != nil {
		meal.Cuisine = *input.Cuisine
	}
	if input.Calories != nil {
		meal.Calories = *input.Calories
	}
	if input.Protein != nil {
		meal.Protein = *input.Protein
	}
	if input.Carbs != nil {
		meal.Carbs = *input.Carbs
	}
	if input.Fat != nil {
		meal.Fat = *input.Fat
	}
	if input.Ingredients != nil {
		meal.Ingredients = *input.Ingredients
	}
	if input.Instructions != nil {
		meal.Instructions = *input.Instructions
	}
	if input.ImageURL != nil {
		meal.ImageURL = *input.ImageURL
	}
	if input.Date != nil {
		meal.Date = *input.Date
	}

	if err := s.db.Save(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

// Delete removes one of the caller's meals; deleting a meal that does not
// exist or is not owned by the caller is the same ErrNotFound.
func (s *MealService) Delete(userID, mealID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", mealID, userID).Delete(&models.Meal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func validateMealInput(input MealInput) error {
	ve := newValidationError()

	if strings.TrimSpace(input.Name) == "" {
		ve.add("name", "meal name is required")
	}
	if input.Type == "" {
		ve.add("type", "meal type is required")
	} else if !slices.Contains(models.MealTypes, input.Type) {
		ve.add("type", "must be one of %s", strings.Join(models.MealTypes, ", "))
	}
	checkMacro(ve, "calories", input.Calories, true)
	checkMacro(ve, "protein", input.Protein, true)
	checkMacro(ve, "carbs", input.Carbs, true)
	checkMacro(ve, "fat", input.Fat, true)
	if len(input.Ingredients) == 0 {
		ve.add("ingredients", "at least one ingredient is required")
	}
	if strings.TrimSpace(input.Instructions) == "" {
		ve.add("instructions", "instructions are required")
	}

	return ve.orNil()
}

func validateMealUpdate(input MealUpdateInput) error {
	ve := newValidationError()

	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		ve.add("name", "meal name cannot be empty")
	}
	if input.Type != nil && !slices.Contains(models.MealTypes, *input.Type) {
		ve.add("type", "must be one of %s", strings.Join(models.MealTypes, ", "))
	}
	checkMacro(ve, "calories", input.Calories, false)
	checkMacro(ve, "protein", input.Protein, false)
	checkMacro(ve, "carbs", input.Carbs, false)
	checkMacro(ve, "fat", input.Fat, false)
	if input.Ingredients != nil && len(*input.Ingredients) == 0 {
		ve.add("ingredients", "at least one ingredient is required")
	}
	if input.Instructions != nil && strings.TrimSpace(*input.Instructions) == "" {
		ve.add("instructions", "instructions cannot be empty")
	}

	return ve.orNil()
}

func checkMacro(ve *ValidationError, field string, value *float64, required bool) {
	if value == nil {
		if required {
			ve.add(field, "%s value is required", field)
		}
		return
	}
	if *value < 0 {
		ve.add(field, "%s cannot be negative", field)
	}
}
