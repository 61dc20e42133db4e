package routes

import (
	"net/http"

	"annapurna-backend/controllers"
	"annapurna-backend/middlewares"
	"annapurna-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	authCtl := controllers.NewAuthController(services.NewAuthService(db))
	mealCtl := controllers.NewMealController(services.NewMealService(db))
	surpriseCtl := controllers.NewSurpriseController(
		services.NewPreferenceService(db),
		services.NewRecipeService(services.NewGormMealCatalog(db), services.NewGormPreferenceStore(db)),
	)
	adminCtl := controllers.NewAdminController(services.NewAdminService(db))

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.POST("/forgot-password", authCtl.ForgotPassword)
		auth.POST("/reset-password", authCtl.ResetPassword)
		auth.GET("/profile", middlewares.AuthMiddleware(), authCtl.GetProfile)
	}

	meals := r.Group("/meals")
	meals.Use(middlewares.AuthMiddleware())
	{
		meals.GET("", mealCtl.ListMeals)
		meals.POST("", mealCtl.CreateMeal)
		meals.POST("/upload-image", controllers.UploadMealImage)
		meals.GET("/:id", mealCtl.GetMeal)
		meals.PATCH("/:id", mealCtl.UpdateMeal)
		meals.DELETE("/:id", mealCtl.DeleteMeal)
	}

	surprise := r.Group("/surprise-me")
	surprise.Use(middlewares.AuthMiddleware())
	{
		surprise.GET("/preferences", surpriseCtl.GetPreferences)
		surprise.PATCH("/preferences", surpriseCtl.UpdatePreferences)
		surprise.GET("/random", surpriseCtl.GetRandomRecipe)
		surprise.GET("/random-multiple", surpriseCtl.GetRandomRecipes)
	}

	admin := r.Group("/admin")
	{
		admin.GET("/users", adminCtl.ListUsers)
		admin.PUT("/users/:id", adminCtl.UpdateUser)
		admin.DELETE("/users/:id", adminCtl.DeleteUser)
		admin.GET("/meals", adminCtl.ListMeals)
		admin.PUT("/meals/:id", adminCtl.UpdateMeal)
		admin.DELETE("/meals/:id", adminCtl.DeleteMeal)
		admin.GET("/preferences", adminCtl.ListPreferences)
		admin.PUT("/preferences/:id", adminCtl.UpdatePreference)
		admin.DELETE("/preferences/:id", adminCtl.DeletePreference)
		admin.GET("/stats", adminCtl.GetStats)
	}

	return r
}
