package handlers

import (
	"github.com/gin-gonic/gin"

	"nutrition-app-server/internal/services"
	"nutrition-app-server/internal/utils"
)

// CatalogHandler handles the food-nutrient reference catalog pages.
type CatalogHandler struct {
	Catalog *services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog}
}

// List shows all reference food items.
func (h *CatalogHandler) List(c *gin.Context) {
	foods, err := h.Catalog.List()
	if err != nil {
		utils.Fail(c, err, "/")
		return
	}

	utils.Render(c, "food_items.html", gin.H{"foodItems": foods})
}

// AddForm renders the add-food page.
func (h *CatalogHandler) AddForm(c *gin.Context) {
	utils.Render(c, "add_food_item.html", nil)
}

// Add inserts a new catalog entry.
func (h *CatalogHandler) Add(c *gin.Context) {
	input := services.AddFoodInput{
		Name:          c.PostForm("name"),
		Calories:      c.PostForm("calories"),
		Protein:       c.PostForm("protein"),
		Carbohydrates: c.PostForm("carbohydrates"),
		Fats:          c.PostForm("fats"),
		Source:        c.PostForm("source"),
	}

	if _, err := h.Catalog.Add(input); err != nil {
		utils.Fail(c, err, "/add_food_item")
		return
	}

	utils.Succeed(c, "Food item added successfully!", "/food_items")
}
