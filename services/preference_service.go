package services

import (
	"errors"
	"slices"
	"strings"

	"annapurna-backend/models"

	"gorm.io/gorm"
)

type PreferenceService struct {
	db *gorm.DB
}

func NewPreferenceService(db *gorm.DB) *PreferenceService {
	return &PreferenceService{db: db}
}

// DefaultPreferences is the record a user effectively has before saving
// anything: no restrictions, no cuisine filter, medium spice, 15-60 minute
// range, all meal types, seasonal on. It is synthesized at read time and
// never persisted.
func DefaultPreferences(userID uint) models.RecipePreference {
	return models.RecipePreference{
		UserID:              userID,
		DietaryRestrictions: []string{},
		PreferredCuisines:   []string{},
		SpiceLevel:          models.SpiceLevelMedium,
		CookingTime:         models.CookingTime{Min: 15, Max: 60},
		MealTypes:           slices.Clone(models.MealTypes),
		SeasonalPreferences: true,
	}
}

// CookingTimeInput is a partial cooking-time range; nil bounds keep their
// current values.
type CookingTimeInput struct {
	Min *int `json:"min"`
	Max *int `json:"max"`
}

// PreferenceInput carries a partial preference update. Nil fields keep
// their current (or default) values.
type PreferenceInput struct {
	DietaryRestrictions *[]string         `json:"dietaryRestrictions"`
	PreferredCuisines   *[]string         `json:"preferredCuisines"`
	SpiceLevel          *string           `json:"spiceLevel"`
	CookingTime         *CookingTimeInput `json:"cookingTime"`
	MealTypes           *[]string         `json:"mealTypes"`
	SeasonalPreferences *bool             `json:"seasonalPreferences"`
}

// Get returns the stored record, or the synthesized defaults when the user
// has never saved one.
func (s *PreferenceService) Get(userID uint) (*models.RecipePreference, error) {
	var pref models.RecipePreference
	err := s.db.Where("user_id = ?", userID).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		def := DefaultPreferences(userID)
		return &def, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

// Update upserts the user's preferences: the first write creates the row
// (merging the input over the defaults), later writes merge over the stored
// state.
func (s *PreferenceService) Update(userID uint, input PreferenceInput) (*models.RecipePreference, error) {
	if err := validatePreferenceInput(input); err != nil {
		return nil, err
	}

	var pref models.RecipePreference
	err := s.db.Where("user_id = ?", userID).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		pref = DefaultPreferences(userID)
	} else if err != nil {
		return nil, err
	}

	if input.DietaryRestrictions != nil {
		pref.DietaryRestrictions = *input.DietaryRestrictions
	}
	if input.PreferredCuisines != nil {
		pref.PreferredCuisines = *input.PreferredCuisines
	}
	if input.SpiceLevel != nil {
		pref.SpiceLevel = *input.SpiceLevel
	}
	if input.CookingTime != nil {
		if input.CookingTime.Min != nil {
			pref.CookingTime.Min = *input.CookingTime.Min
		}
		if input.CookingTime.Max != nil {
			pref.CookingTime.Max = *input.CookingTime.Max
		}
	}
	if input.MealTypes != nil {
		pref.MealTypes = *input.MealTypes
	}
	if input.SeasonalPreferences != nil {
		pref.SeasonalPreferences = *input.SeasonalPreferences
	}

	// min <= max can only be checked after the merge: a partial update may
	// move either bound on its own.
	if pref.CookingTime.Min > pref.CookingTime.Max {
		ve := newValidationError()
		ve.add("cookingTime", "min (%d) must not exceed max (%d)", pref.CookingTime.Min, pref.CookingTime.Max)
		return nil, ve
	}

	if err := s.db.Save(&pref).Error; err != nil {
		return nil, err
	}
	return &pref, nil
}

func validatePreferenceInput(input PreferenceInput) error {
	ve := newValidationError()

	if input.DietaryRestrictions != nil {
		for _, r := range *input.DietaryRestrictions {
			if !slices.Contains(models.DietaryRestrictions, r) {
				ve.add("dietaryRestrictions", "%q is not a known restriction (valid: %s)",
					r, strings.Join(models.DietaryRestrictions, ", "))
				break
			}
		}
	}
	if input.PreferredCuisines != nil {
		for _, c := range *input.PreferredCuisines {
			if !slices.Contains(models.Cuisines, c) {
				ve.add("preferredCuisines", "%q is not a known cuisine (valid: %s)",
					c, strings.Join(models.Cuisines, ", "))
				break
			}
		}
	}
	if input.SpiceLevel != nil && !slices.Contains(models.SpiceLevels, *input.SpiceLevel) {
		ve.add("spiceLevel", "must be one of %s", strings.Join(models.SpiceLevels, ", "))
	}
	if input.MealTypes != nil {
		for _, t := range *input.MealTypes {
			if !slices.Contains(models.MealTypes, t) {
				ve.add("mealTypes", "%q is not a meal type (valid: %s)",
					t, strings.Join(models.MealTypes, ", "))
				break
			}
		}
	}
	if input.CookingTime != nil {
		if input.CookingTime.Min != nil && *input.CookingTime.Min < 0 {
			ve.add("cookingTime", "min cannot be negative")
		}
		if input.CookingTime.Max != nil && *input.CookingTime.Max < 0 {
			ve.add("cookingTime", "max cannot be negative")
		}
	}

	return ve.orNil()
}
