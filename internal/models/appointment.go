package models

import (
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// AppointmentDuration is the fixed length of every consultation slot.
const AppointmentDuration = time.Hour

// Appointment represents a consultation between a patient and a nutritionist.
type Appointment struct {
	BaseModel
	PatientID      string            `gorm:"size:36;index" json:"patientId"`
	NutritionistID string            `gorm:"size:36;index" json:"nutritionistId"`
	StartTime      time.Time         `json:"startTime"`
	EndTime        time.Time         `json:"endTime"`
	Status         AppointmentStatus `gorm:"size:20;default:'scheduled'" json:"status"`
	Notes          string            `gorm:"type:text" json:"notes"`

	// Relations
	Patient      Patient      `gorm:"foreignKey:PatientID" json:"-"`
	Nutritionist Nutritionist `gorm:"foreignKey:NutritionistID" json:"-"`
}
