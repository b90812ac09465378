package models

import (
	"time"
)

// MealPlan is a nutritionist-authored plan for one patient.
type MealPlan struct {
	BaseModel
	PatientID   string    `gorm:"size:36;index;not null" json:"patientId"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	StartDate   time.Time `gorm:"not null" json:"startDate"`
	EndDate     time.Time `gorm:"not null" json:"endDate"`

	// Relations
	Patient Patient `gorm:"foreignKey:PatientID" json:"-"`
	Meals   []Meal  `gorm:"foreignKey:MealPlanID" json:"meals,omitempty"`
}

// Meal is one meal slot inside a plan (breakfast, lunch, ...).
type Meal struct {
	BaseModel
	MealPlanID string     `gorm:"size:36;index;not null" json:"mealPlanId"`
	MealType   string     `gorm:"size:50;not null" json:"mealType"`
	Time       *time.Time `json:"time,omitempty"`
	Notes      string     `gorm:"type:text" json:"notes,omitempty"`

	// Relations
	MealItems []MealItem `gorm:"foreignKey:MealID" json:"mealItems,omitempty"`
}

// MealItem is a food item with a quantity inside a meal.
type MealItem struct {
	BaseModel
	MealID        string  `gorm:"size:36;index;not null" json:"mealId"`
	FoodItemID    string  `gorm:"size:36;not null" json:"foodItemId"`
	QuantityGrams float64 `json:"quantityGrams"`
	Notes         string  `gorm:"size:200" json:"notes,omitempty"`

	// Relations
	FoodItem FoodItem `gorm:"foreignKey:FoodItemID" json:"foodItem"`
}
