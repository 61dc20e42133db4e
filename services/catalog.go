package services

import (
	"errors"

	"annapurna-backend/models"

	"gorm.io/gorm"
)

// MealFilter narrows catalog queries to the given meal types and cuisines.
// An empty slice means no restriction on that axis.
type MealFilter struct {
	Types    []string
	Cuisines []string
}

func (f MealFilter) IsZero() bool {
	return len(f.Types) == 0 && len(f.Cuisines) == 0
}

// MealCatalog is the storage capability the recipe selector depends on.
// Count and FindAtOffset share a stable ordering so a counted offset stays
// meaningful for the follow-up fetch; SampleRandom draws n meals uniformly
// without replacement.
type MealCatalog interface {
	Count(filter MealFilter) (int64, error)
	FindAtOffset(filter MealFilter, offset int) (*models.Meal, error)
	SampleRandom(filter MealFilter, n int) ([]models.Meal, error)
}

// PreferenceStore loads a user's saved preferences. A nil record with a nil
// error means the user has never saved any.
type PreferenceStore interface {
	ForUser(userID uint) (*models.RecipePreference, error)
}

type GormMealCatalog struct {
	db *gorm.DB
}

func NewGormMealCatalog(db *gorm.DB) *GormMealCatalog {
	return &GormMealCatalog{db: db}
}

func (c *GormMealCatalog) scope(filter MealFilter) *gorm.DB {
	q := c.db.Model(&models.Meal{})
	if len(filter.Types) > 0 {
		q = q.Where("type IN ?", filter.Types)
	}
	if len(filter.Cuisines) > 0 {
		q = q.Where("cuisine IN ?", filter.Cuisines)
	}
	return q
}

func (c *GormMealCatalog) Count(filter MealFilter) (int64, error) {
	var n int64
	err := c.scope(filter).Count(&n).Error
	return n, err
}

func (c *GormMealCatalog) FindAtOffset(filter MealFilter, offset int) (*models.Meal, error) {
	var meal models.Meal
	err := c.scope(filter).Order("id").Offset(offset).First(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// SampleRandom relies on the database's RANDOM() ordering, which both
// Postgres and SQLite support.
func (c *GormMealCatalog) SampleRandom(filter MealFilter, n int) ([]models.Meal, error) {
	var meals []models.Meal
	err := c.scope(filter).Order("RANDOM()").Limit(n).Find(&meals).Error
	return meals, err
}

type GormPreferenceStore struct {
	db *gorm.DB
}

func NewGormPreferenceStore(db *gorm.DB) *GormPreferenceStore {
	return &GormPreferenceStore{db: db}
}

func (s *GormPreferenceStore) ForUser(userID uint) (*models.RecipePreference, error) {
	var pref models.RecipePreference
	err := s.db.Where("user_id = ?", userID).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}
