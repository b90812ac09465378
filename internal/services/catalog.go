package services

import (
	"strconv"

	"gorm.io/gorm"

	"nutrition-app-server/internal/apperr"
	"nutrition-app-server/internal/models"
)

// CatalogService manages the food-nutrient reference catalog.
type CatalogService struct {
	DB *gorm.DB
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// seedFoods is inserted once when the catalog is empty at startup.
var seedFoods = []models.FoodItem{
	{Name: "Maçã", Calories: 52.0, Protein: 0.3, Carbohydrates: 14.0, Fats: 0.2, Source: "USDA"},
	{Name: "Frango Grelhado (100g)", Calories: 165.0, Protein: 31.0, Carbohydrates: 0.0, Fats: 3.6, Source: "USDA"},
	{Name: "Arroz Branco Cozido (100g)", Calories: 130.0, Protein: 2.7, Carbohydrates: 28.0, Fats: 0.3, Source: "TACO"},
	{Name: "Brócolis Cozido (100g)", Calories: 34.0, Protein: 2.8, Carbohydrates: 6.6, Fats: 0.4, Source: "USDA"},
	{Name: "Ovo Cozido (unidade)", Calories: 78.0, Protein: 6.0, Carbohydrates: 0.6, Fats: 5.3, Source: "USDA"},
}

// Seed inserts the reference foods iff the catalog is empty.
func (s *CatalogService) Seed() error {
	var count int64
	if err := s.DB.Model(&models.FoodItem{}).Count(&count).Error; err != nil {
		return apperr.Persistence("failed to count food items", err)
	}
	if count > 0 {
		return nil
	}

	foods := make([]models.FoodItem, len(seedFoods))
	copy(foods, seedFoods)
	if err := s.DB.Create(&foods).Error; err != nil {
		return apperr.Persistence("failed to seed food items", err)
	}
	return nil
}

// List returns every reference food item.
func (s *CatalogService) List() ([]models.FoodItem, error) {
	var foods []models.FoodItem
	if err := s.DB.Find(&foods).Error; err != nil {
		return nil, apperr.Persistence("failed to list food items", err)
	}
	return foods, nil
}

// AddFoodInput carries the add-food form fields, all as submitted strings.
type AddFoodInput struct {
	Name          string
	Calories      string
	Protein       string
	Carbohydrates string
	Fats          string
	Source        string
}

// Add validates and inserts a new catalog entry. Calories is required;
// the other nutrient fields default to 0.0 when blank.
func (s *CatalogService) Add(input AddFoodInput) (*models.FoodItem, error) {
	if input.Name == "" || input.Calories == "" {
		return nil, apperr.Validation("Name and calories are required.")
	}

	calories, err := strconv.ParseFloat(input.Calories, 64)
	if err != nil {
		return nil, apperr.Validation("Please enter valid numeric values for the nutrients.")
	}
	protein, err := parseOptionalFloat(input.Protein)
	if err != nil {
		return nil, err
	}
	carbohydrates, err := parseOptionalFloat(input.Carbohydrates)
	if err != nil {
		return nil, err
	}
	fats, err := parseOptionalFloat(input.Fats)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.DB.Model(&models.FoodItem{}).Where("name = ?", input.Name).Count(&count).Error; err != nil {
		return nil, apperr.Persistence("failed to check existing food items", err)
	}
	if count > 0 {
		return nil, apperr.Conflict("A food item with this name already exists.")
	}

	food := models.FoodItem{
		Name:          input.Name,
		Calories:      calories,
		Protein:       protein,
		Carbohydrates: carbohydrates,
		Fats:          fats,
		Source:        input.Source,
	}
	if err := s.DB.Create(&food).Error; err != nil {
		return nil, translateCreateError(err, "A food item with this name already exists.")
	}
	return &food, nil
}

func parseOptionalFloat(value string) (float64, error) {
	if value == "" {
		return 0.0, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, apperr.Validation("Please enter valid numeric values for the nutrients.")
	}
	return parsed, nil
}
