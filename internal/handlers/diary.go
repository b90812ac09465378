package handlers

import (
	"github.com/gin-gonic/gin"

	"nutrition-app-server/internal/middleware"
	"nutrition-app-server/internal/services"
	"nutrition-app-server/internal/utils"
)

// DiaryHandler handles the patient food diary.
type DiaryHandler struct {
	Diary   *services.DiaryService
	Catalog *services.CatalogService
}

// NewDiaryHandler creates a new DiaryHandler.
func NewDiaryHandler(diary *services.DiaryService, catalog *services.CatalogService) *DiaryHandler {
	return &DiaryHandler{Diary: diary, Catalog: catalog}
}

// Show renders the diary page with the patient's entries and the food
// dropdown for new ones.
func (h *DiaryHandler) Show(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	entries, err := h.Diary.Entries(identity.Patient.ID)
	if err != nil {
		utils.Fail(c, err, "/patient_dashboard")
		return
	}
	foods, err := h.Catalog.List()
	if err != nil {
		utils.Fail(c, err, "/patient_dashboard")
		return
	}

	utils.Render(c, "food_diary.html", gin.H{
		"entries":   entries,
		"foodItems": foods,
	})
}

// Add records a new diary entry.
func (h *DiaryHandler) Add(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	input := services.AddEntryInput{
		FoodItemID:    c.PostForm("food_item_id"),
		QuantityGrams: c.PostForm("quantity_grams"),
		MealType:      c.PostForm("meal_type"),
		Date:          c.PostForm("date"),
		Time:          c.PostForm("time"),
		Notes:         c.PostForm("notes"),
	}

	if _, err := h.Diary.Add(identity.Patient.ID, input); err != nil {
		utils.Fail(c, err, "/food_diary")
		return
	}

	utils.Succeed(c, "Diary entry recorded!", "/food_diary")
}
