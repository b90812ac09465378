package services

import (
	"time"

	"gorm.io/gorm"

	"nutrition-app-server/internal/apperr"
	"nutrition-app-server/internal/models"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ScheduleService handles appointment booking and listing.
type ScheduleService struct {
	DB *gorm.DB
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{DB: db}
}

// Schedule books a one-hour consultation starting at the given date and time.
// Overlapping bookings are not rejected.
func (s *ScheduleService) Schedule(patientID, nutritionistID, dateStr, timeStr string) (*models.Appointment, error) {
	if nutritionistID == "" || dateStr == "" || timeStr == "" {
		return nil, apperr.Validation("Please fill in all required fields.")
	}

	startTime, err := time.ParseInLocation(dateLayout+" "+timeLayout, dateStr+" "+timeStr, time.Local)
	if err != nil {
		return nil, apperr.Validation("Invalid date/time format.")
	}

	appointment := models.Appointment{
		PatientID:      patientID,
		NutritionistID: nutritionistID,
		StartTime:      startTime,
		EndTime:        startTime.Add(models.AppointmentDuration),
		Status:         models.StatusScheduled,
	}
	if err := s.DB.Create(&appointment).Error; err != nil {
		return nil, apperr.Persistence("failed to create appointment", err)
	}
	return &appointment, nil
}

// ForPatient returns the patient's appointments, earliest first.
func (s *ScheduleService) ForPatient(patientID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.DB.Preload("Nutritionist").
		Where("patient_id = ?", patientID).
		Order("start_time asc").
		Find(&appointments).Error
	if err != nil {
		return nil, apperr.Persistence("failed to list appointments", err)
	}
	return appointments, nil
}

// ForNutritionist returns the appointments where the nutritionist is the
// provider, earliest first.
func (s *ScheduleService) ForNutritionist(nutritionistID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.DB.Preload("Patient").
		Where("nutritionist_id = ?", nutritionistID).
		Order("start_time asc").
		Find(&appointments).Error
	if err != nil {
		return nil, apperr.Persistence("failed to list appointments", err)
	}
	return appointments, nil
}

// Nutritionists returns every nutritionist, for the booking form.
func (s *ScheduleService) Nutritionists() ([]models.Nutritionist, error) {
	var nutritionists []models.Nutritionist
	if err := s.DB.Find(&nutritionists).Error; err != nil {
		return nil, apperr.Persistence("failed to list nutritionists", err)
	}
	return nutritionists, nil
}
