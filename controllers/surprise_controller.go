package controllers

import (
	"net/http"
	"strconv"

	"annapurna-backend/services"

	"github.com/gin-gonic/gin"
)

// SurpriseController serves the "surprise me" feature: preference reads and
// upserts, plus preference-driven random recipe suggestions.
type SurpriseController struct {
	prefs   *services.PreferenceService
	recipes *services.RecipeService
}

func NewSurpriseController(prefs *services.PreferenceService, recipes *services.RecipeService) *SurpriseController {
	return &SurpriseController{prefs: prefs, recipes: recipes}
}

func (ctl *SurpriseController) GetPreferences(c *gin.Context) {
	pref, err := ctl.prefs.Get(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"preferences": pref})
}

func (ctl *SurpriseController) UpdatePreferences(c *gin.Context) {
	var input services.PreferenceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	pref, err := ctl.prefs.Update(currentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"preferences": pref})
}

func (ctl *SurpriseController) GetRandomRecipe(c *gin.Context) {
	recipe, err := ctl.recipes.SelectRandom(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"recipe": recipe})
}

func (ctl *SurpriseController) GetRandomRecipes(c *gin.Context) {
	count, err := suggestionCount(c.Query("count"))
	if err != nil {
		respondError(c, err)
		return
	}

	recipes, err := ctl.recipes.SelectRandomMultiple(currentUserID(c), count)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"recipes": recipes})
}

// suggestionCount coerces the ?count query parameter: absent means 3,
// non-numeric or non-positive is rejected.
func suggestionCount(raw string) (int, error) {
	if raw == "" {
		return 0, nil // service applies the default
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		ve := &services.ValidationError{Fields: map[string]string{
			"count": "must be a positive integer",
		}}
		return 0, ve
	}
	return n, nil
}
