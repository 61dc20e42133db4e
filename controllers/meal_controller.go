package controllers

import (
	"net/http"

	"annapurna-backend/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	meals *services.MealService
}

func NewMealController(meals *services.MealService) *MealController {
	return &MealController{meals: meals}
}

func (ctl *MealController) ListMeals(c *gin.Context) {
	meals, err := ctl.meals.List(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"meals": meals})
}

func (ctl *MealController) GetMeal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	meal, err := ctl.meals.Get(currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"meal": meal})
}

func (ctl *MealController) CreateMeal(c *gin.Context) {
	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	meal, err := ctl.meals.Create(currentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, gin.H{"meal": meal})
}

func (ctl *MealController) UpdateMeal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input services.MealUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	meal, err := ctl.meals.Update(currentUserID(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"meal": meal})
}

func (ctl *MealController) DeleteMeal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctl.meals.Delete(currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
