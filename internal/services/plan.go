package services

import (
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"

	"nutrition-app-server/internal/apperr"
	"nutrition-app-server/internal/models"
)

// PlanService manages meal plans and their meals and items.
type PlanService struct {
	DB    *gorm.DB
	Assoc *AssociationService
}

// NewPlanService creates a new PlanService.
func NewPlanService(db *gorm.DB, assoc *AssociationService) *PlanService {
	return &PlanService{DB: db, Assoc: assoc}
}

// PlansFor returns the patient's meal plans with their full hierarchy.
func (s *PlanService) PlansFor(patientID string) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := s.DB.Preload("Meals.MealItems.FoodItem").
		Where("patient_id = ?", patientID).
		Order("start_date desc").
		Find(&plans).Error
	if err != nil {
		return nil, apperr.Persistence("failed to list meal plans", err)
	}
	return plans, nil
}

// CreatePlanInput carries the meal plan form fields.
type CreatePlanInput struct {
	Name        string
	Description string
	StartDate   string
	EndDate     string
}

// Create creates a meal plan for a patient. Only a nutritionist associated
// with the patient may create one.
func (s *PlanService) Create(nutritionistID, patientID string, input CreatePlanInput) (*models.MealPlan, error) {
	if input.Name == "" || input.StartDate == "" || input.EndDate == "" {
		return nil, apperr.Validation("Please fill in all required fields.")
	}

	startDate, err := time.ParseInLocation(dateLayout, input.StartDate, time.Local)
	if err != nil {
		return nil, apperr.Validation("Invalid start date format.")
	}
	endDate, err := time.ParseInLocation(dateLayout, input.EndDate, time.Local)
	if err != nil {
		return nil, apperr.Validation("Invalid end date format.")
	}
	if endDate.Before(startDate) {
		return nil, apperr.Validation("End date must not be before the start date.")
	}

	linked, err := s.Assoc.Associated(nutritionistID, patientID)
	if err != nil {
		return nil, err
	}
	if !linked {
		return nil, apperr.Authorization("You can only create meal plans for your own patients.")
	}

	plan := models.MealPlan{
		PatientID:   patientID,
		Name:        input.Name,
		Description: input.Description,
		StartDate:   startDate,
		EndDate:     endDate,
	}
	if err := s.DB.Create(&plan).Error; err != nil {
		return nil, apperr.Persistence("failed to create meal plan", err)
	}
	return &plan, nil
}

// MealInput carries the add-meal form fields.
type MealInput struct {
	MealType string
	Time     string
	Notes    string
}

// AddMeal appends a meal slot to a plan owned by one of the nutritionist's
// patients.
func (s *PlanService) AddMeal(nutritionistID, planID string, input MealInput) (*models.Meal, error) {
	if input.MealType == "" {
		return nil, apperr.Validation("Meal type is required.")
	}

	plan, err := s.planForNutritionist(nutritionistID, planID)
	if err != nil {
		return nil, err
	}

	meal := models.Meal{MealPlanID: plan.ID, MealType: input.MealType, Notes: input.Notes}
	if input.Time != "" {
		mealTime, err := time.ParseInLocation(timeLayout, input.Time, time.Local)
		if err != nil {
			return nil, apperr.Validation("Invalid time format.")
		}
		meal.Time = &mealTime
	}

	if err := s.DB.Create(&meal).Error; err != nil {
		return nil, apperr.Persistence("failed to create meal", err)
	}
	return &meal, nil
}

// MealItemInput carries the add-meal-item form fields.
type MealItemInput struct {
	FoodItemID    string
	QuantityGrams string
	Notes         string
}

// AddMealItem appends a food item to a meal inside one of the nutritionist's
// plans.
func (s *PlanService) AddMealItem(nutritionistID, mealID string, input MealItemInput) (*models.MealItem, error) {
	if input.FoodItemID == "" || input.QuantityGrams == "" {
		return nil, apperr.Validation("Please fill in all required fields.")
	}
	quantity, err := strconv.ParseFloat(input.QuantityGrams, 64)
	if err != nil || quantity <= 0 {
		return nil, apperr.Validation("Quantity must be a positive number of grams.")
	}

	var meal models.Meal
	if err := s.DB.First(&meal, "id = ?", mealID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Meal not found.")
		}
		return nil, apperr.Persistence("failed to load meal", err)
	}
	if _, err := s.planForNutritionist(nutritionistID, meal.MealPlanID); err != nil {
		return nil, err
	}

	var food models.FoodItem
	if err := s.DB.First(&food, "id = ?", input.FoodItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validation("The selected food item does not exist.")
		}
		return nil, apperr.Persistence("failed to look up food item", err)
	}

	item := models.MealItem{
		MealID:        meal.ID,
		FoodItemID:    food.ID,
		QuantityGrams: quantity,
		Notes:         input.Notes,
	}
	if err := s.DB.Create(&item).Error; err != nil {
		return nil, apperr.Persistence("failed to create meal item", err)
	}
	return &item, nil
}

// planForNutritionist loads a plan and checks the nutritionist is associated
// with the plan's patient.
func (s *PlanService) planForNutritionist(nutritionistID, planID string) (*models.MealPlan, error) {
	var plan models.MealPlan
	if err := s.DB.First(&plan, "id = ?", planID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Meal plan not found.")
		}
		return nil, apperr.Persistence("failed to load meal plan", err)
	}

	linked, err := s.Assoc.Associated(nutritionistID, plan.PatientID)
	if err != nil {
		return nil, err
	}
	if !linked {
		return nil, apperr.Authorization("You can only manage meal plans for your own patients.")
	}
	return &plan, nil
}
