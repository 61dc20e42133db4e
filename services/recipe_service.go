package services

import (
	"math/rand"

	"annapurna-backend/models"
)

const (
	defaultSuggestionCount = 3
	maxSuggestionCount     = 20
)

// RecipeService picks random meals from the shared catalog, narrowed by the
// caller's saved preferences when any exist. It holds no mutable state, so
// concurrent requests do not interfere.
type RecipeService struct {
	catalog MealCatalog
	prefs   PreferenceStore
}

func NewRecipeService(catalog MealCatalog, prefs PreferenceStore) *RecipeService {
	return &RecipeService{catalog: catalog, prefs: prefs}
}

// filterFor builds the candidate filter from the user's saved preferences.
// Only meal types and preferred cuisines narrow the catalog; dietary
// restrictions, spice level and cooking time are stored but do not affect
// selection.
func (s *RecipeService) filterFor(userID uint) (MealFilter, error) {
	pref, err := s.prefs.ForUser(userID)
	if err != nil {
		return MealFilter{}, err
	}
	var filter MealFilter
	if pref != nil {
		filter.Types = pref.MealTypes
		filter.Cuisines = pref.PreferredCuisines
	}
	return filter, nil
}

// SelectRandom returns one uniformly random meal matching the user's
// preferences. When nothing matches it falls back to the whole catalog, and
// only an entirely empty catalog yields ErrNotFound.
//
// The count and the offset fetch are two separate reads with no snapshot
// between them; concurrent writes can shift the offset. That race is
// accepted, the result is still some valid meal or ErrNotFound.
func (s *RecipeService) SelectRandom(userID uint) (*models.Meal, error) {
	filter, err := s.filterFor(userID)
	if err != nil {
		return nil, err
	}

	count, err := s.catalog.Count(filter)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		filter = MealFilter{}
		count, err = s.catalog.Count(filter)
		if err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, ErrNotFound
		}
	}

	return s.catalog.FindAtOffset(filter, rand.Intn(int(count)))
}

// SelectRandomMultiple returns up to n distinct meals sampled without
// replacement, preferring preference matches and falling back to the whole
// catalog when none match. Fewer than n meals in total is not an error; an
// empty catalog yields an empty slice.
func (s *RecipeService) SelectRandomMultiple(userID uint, n int) ([]models.Meal, error) {
	if n <= 0 {
		n = defaultSuggestionCount
	}
	if n > maxSuggestionCount {
		n = maxSuggestionCount
	}

	filter, err := s.filterFor(userID)
	if err != nil {
		return nil, err
	}

	meals, err := s.catalog.SampleRandom(filter, n)
	if err != nil {
		return nil, err
	}
	if len(meals) == 0 && !filter.IsZero() {
		meals, err = s.catalog.SampleRandom(MealFilter{}, n)
		if err != nil {
			return nil, err
		}
	}
	return meals, nil
}
