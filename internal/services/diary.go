package services

import (
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"

	"nutrition-app-server/internal/apperr"
	"nutrition-app-server/internal/models"
)

// DiaryService manages a patient's food diary.
type DiaryService struct {
	DB *gorm.DB
}

// NewDiaryService creates a new DiaryService.
func NewDiaryService(db *gorm.DB) *DiaryService {
	return &DiaryService{DB: db}
}

// Entries returns the patient's diary, newest day first.
func (s *DiaryService) Entries(patientID string) ([]models.FoodDiaryEntry, error) {
	var entries []models.FoodDiaryEntry
	err := s.DB.Preload("FoodItem").
		Where("patient_id = ?", patientID).
		Order("date desc, time desc").
		Find(&entries).Error
	if err != nil {
		return nil, apperr.Persistence("failed to list diary entries", err)
	}
	return entries, nil
}

// AddEntryInput carries the diary form fields as submitted strings.
type AddEntryInput struct {
	FoodItemID    string
	QuantityGrams string
	MealType      string
	Date          string
	Time          string
	Notes         string
}

// Add records a diary entry. Date and time default to now when left blank.
func (s *DiaryService) Add(patientID string, input AddEntryInput) (*models.FoodDiaryEntry, error) {
	if input.FoodItemID == "" || input.MealType == "" || input.QuantityGrams == "" {
		return nil, apperr.Validation("Please fill in all required fields.")
	}

	quantity, err := strconv.ParseFloat(input.QuantityGrams, 64)
	if err != nil || quantity <= 0 {
		return nil, apperr.Validation("Quantity must be a positive number of grams.")
	}

	// Defaults are re-parsed through the form layouts so blank and submitted
	// values stay comparable under the date/time ordering.
	now := time.Now()
	dateValue := input.Date
	if dateValue == "" {
		dateValue = now.Format(dateLayout)
	}
	date, err := time.ParseInLocation(dateLayout, dateValue, time.Local)
	if err != nil {
		return nil, apperr.Validation("Invalid date format.")
	}
	timeValue := input.Time
	if timeValue == "" {
		timeValue = now.Format(timeLayout)
	}
	entryTime, err := time.ParseInLocation(timeLayout, timeValue, time.Local)
	if err != nil {
		return nil, apperr.Validation("Invalid time format.")
	}

	var food models.FoodItem
	if err := s.DB.First(&food, "id = ?", input.FoodItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validation("The selected food item does not exist.")
		}
		return nil, apperr.Persistence("failed to look up food item", err)
	}

	entry := models.FoodDiaryEntry{
		PatientID:     patientID,
		FoodItemID:    food.ID,
		QuantityGrams: quantity,
		MealType:      input.MealType,
		Date:          date,
		Time:          entryTime,
		Notes:         input.Notes,
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		return nil, apperr.Persistence("failed to create diary entry", err)
	}
	return &entry, nil
}
