package controllers

import (
	"net/http"

	"annapurna-backend/services"

	"github.com/gin-gonic/gin"
)

// AdminController exposes the catalog-wide maintenance routes. These
// operate without ownership scoping.
type AdminController struct {
	admin *services.AdminService
}

func NewAdminController(admin *services.AdminService) *AdminController {
	return &AdminController{admin: admin}
}

func (ctl *AdminController) ListUsers(c *gin.Context) {
	users, err := ctl.admin.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

type AdminUserInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (ctl *AdminController) UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input AdminUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	user, err := ctl.admin.UpdateUser(id, input.Name, input.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctl *AdminController) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctl.admin.DeleteUser(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func (ctl *AdminController) ListMeals(c *gin.Context) {
	meals, err := ctl.admin.ListMeals()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (ctl *AdminController) UpdateMeal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input services.MealUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	meal, err := ctl.admin.UpdateMeal(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (ctl *AdminController) DeleteMeal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctl.admin.DeleteMeal(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted successfully"})
}

func (ctl *AdminController) ListPreferences(c *gin.Context) {
	prefs, err := ctl.admin.ListPreferences()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

func (ctl *AdminController) UpdatePreference(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input services.PreferenceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	pref, err := ctl.admin.UpdatePreference(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pref)
}

func (ctl *AdminController) DeletePreference(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctl.admin.DeletePreference(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Preference deleted successfully"})
}

func (ctl *AdminController) GetStats(c *gin.Context) {
	stats, err := ctl.admin.Stats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
