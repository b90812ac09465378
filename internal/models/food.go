package models

import (
	"time"
)

// FoodItem is an immutable nutrient reference record, per 100g unless the
// name says otherwise.
type FoodItem struct {
	BaseModel
	Name          string  `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fats          float64 `json:"fats"`
	Source        string  `gorm:"size:50" json:"source,omitempty"`
}

// FoodDiaryEntry records what a patient actually ate.
type FoodDiaryEntry struct {
	BaseModel
	PatientID     string    `gorm:"size:36;index;not null" json:"patientId"`
	FoodItemID    string    `gorm:"size:36;not null" json:"foodItemId"`
	QuantityGrams float64   `gorm:"not null" json:"quantityGrams"`
	MealType      string    `gorm:"size:50;not null" json:"mealType"`
	Date          time.Time `gorm:"not null" json:"date"`
	Time          time.Time `gorm:"not null" json:"time"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`

	// Relations
	Patient  Patient  `gorm:"foreignKey:PatientID" json:"-"`
	FoodItem FoodItem `gorm:"foreignKey:FoodItemID" json:"foodItem"`
}
