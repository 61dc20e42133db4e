package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"annapurna-backend/middlewares"
	"annapurna-backend/models"
	"annapurna-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestRouter wires the handlers against a fresh SQLite database, the
// same way routes.SetupRouter does against Postgres.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Meal{}, &models.RecipePreference{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	authCtl := NewAuthController(services.NewAuthService(db))
	mealCtl := NewMealController(services.NewMealService(db))
	surpriseCtl := NewSurpriseController(
		services.NewPreferenceService(db),
		services.NewRecipeService(services.NewGormMealCatalog(db), services.NewGormPreferenceStore(db)),
	)

	r := gin.New()
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.GET("/profile", middlewares.AuthMiddleware(), authCtl.GetProfile)
	}
	meals := r.Group("/meals")
	meals.Use(middlewares.AuthMiddleware())
	{
		meals.GET("", mealCtl.ListMeals)
		meals.POST("", mealCtl.CreateMeal)
		meals.POST("/upload-image", UploadMealImage)
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

	return r, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

// registerUser signs a user up and returns their token.
func registerUser(t *testing.T, router *gin.Engine, name, email string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/auth/register", "", gin.H{
		"name":     name,
		"email":    email,
		"password": "secret123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: got %d: %s", email, w.Code, w.Body.String())
	}
	token, _ := decodeBody(t, w)["token"].(string)
	if token == "" {
		t.Fatalf("register %s: no token in response", email)
	}
	return token
}

func validMealBody() gin.H {
	return gin.H{
		"name":         "Masala Dosa",
		"type":         "breakfast",
		"calories":     350,
		"protein":      8,
		"carbs":        60,
		"fat":          9,
		"ingredients":  []string{"rice batter", "potato", "spices"},
		"instructions": "Spread the batter thin and fill with potato masala.",
	}
}
