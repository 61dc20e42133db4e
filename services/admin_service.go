package services

import (
	"errors"

	"annapurna-backend/models"

	"gorm.io/gorm"
)

// AdminService operates catalog-wide, without ownership scoping.
type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

func (s *AdminService) ListUsers() ([]models.User, error) {
	var users []models.User
	err := s.db.Order("id").Find(&users).Error
	return users, err
}

func (s *AdminService) UpdateUser(id uint, name, email string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if name != "" {
		user.Name = name
	}
	if email != "" {
		user.Email = email
	}
	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes the user together with every meal and preference row
// they own, in one transaction.
func (s *AdminService) DeleteUser(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Meal{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.RecipePreference{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *AdminService) ListMeals() ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.Order("id").Find(&meals).Error
	return meals, err
}

func (s *AdminService) UpdateMeal(id uint, input MealUpdateInput) (*models.Meal, error) {
	var meal models.Meal
	if err := s.db.First(&meal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := validateMealUpdate(input); err != nil {
		return nil, err
	}

	if input.Name != nil {
		meal.Name = *input.Name
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

	if err := s.db.Save(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *AdminService) DeleteMeal(id uint) error {
	res := s.db.Delete(&models.Meal{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *AdminService) ListPreferences() ([]models.RecipePreference, error) {
	var prefs []models.RecipePreference
	err := s.db.Order("id").Find(&prefs).Error
	return prefs, err
}

func (s *AdminService) UpdatePreference(id uint, input PreferenceInput) (*models.RecipePreference, error) {
	var pref models.RecipePreference
	if err := s.db.First(&pref, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	// Reuse the user-facing upsert path so admin edits obey the same rules.
	return NewPreferenceService(s.db).Update(pref.UserID, input)
}

func (s *AdminService) DeletePreference(id uint) error {
	res := s.db.Delete(&models.RecipePreference{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats returns catalog-wide record counts.
func (s *AdminService) Stats() (map[string]int64, error) {
	stats := map[string]int64{}
	for name, model := range map[string]any{
		"users":       &models.User{},
		"meals":       &models.Meal{},
		"preferences": &models.RecipePreference{},
	} {
		var n int64
		if err := s.db.Model(model).Count(&n).Error; err != nil {
			return nil, err
		}
		stats[name] = n
	}
	return stats, nil
}
