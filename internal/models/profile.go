package models

import (
	"time"
)

// Patient is the profile owned by a user with the patient role.
type Patient struct {
	BaseModel
	UserID      string     `gorm:"size:36;uniqueIndex;not null" json:"userId"`
	FullName    string     `gorm:"size:100;not null" json:"fullName"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`

	// Relations
	User             User             `gorm:"foreignKey:UserID" json:"-"`
	MealPlans        []MealPlan       `gorm:"foreignKey:PatientID" json:"-"`
	FoodDiaryEntries []FoodDiaryEntry `gorm:"foreignKey:PatientID" json:"-"`
	Appointments     []Appointment    `gorm:"foreignKey:PatientID" json:"-"`
}

// Nutritionist is the profile owned by a user with the nutritionist role.
type Nutritionist struct {
	BaseModel
	UserID    string `gorm:"size:36;uniqueIndex;not null" json:"userId"`
	FullName  string `gorm:"size:100;not null" json:"fullName"`
	CRMNutri  string `gorm:"column:crm_nutri;size:50;uniqueIndex;not null" json:"crmNutri"`
	Specialty string `gorm:"size:100" json:"specialty,omitempty"`
	Bio       string `gorm:"type:text" json:"bio,omitempty"`

	// Relations
	User         User          `gorm:"foreignKey:UserID" json:"-"`
	Courses      []Course      `gorm:"foreignKey:NutritionistID" json:"-"`
	Appointments []Appointment `gorm:"foreignKey:NutritionistID" json:"-"`
}

// NutritionistPatient is the association edge between a nutritionist and a
// patient. The composite primary key makes insertion a set union: linking
// the same pair twice cannot produce a duplicate row.
type NutritionistPatient struct {
	NutritionistID string `gorm:"primaryKey;size:36" json:"nutritionistId"`
	PatientID      string `gorm:"primaryKey;size:36" json:"patientId"`

	Nutritionist Nutritionist `gorm:"foreignKey:NutritionistID" json:"-"`
	Patient      Patient      `gorm:"foreignKey:PatientID" json:"-"`
}

// TableName keeps the join table name explicit.
func (NutritionistPatient) TableName() string {
	return "nutritionist_patient_association"
}
