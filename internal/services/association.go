package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nutrition-app-server/internal/apperr"
	"nutrition-app-server/internal/models"
)

// AssociationService manages the patient-nutritionist relationship and the
// invite links that establish it.
type AssociationService struct {
	DB     *gorm.DB
	AppURL string
}

// NewAssociationService creates a new AssociationService.
func NewAssociationService(db *gorm.DB, appURL string) *AssociationService {
	return &AssociationService{DB: db, AppURL: appURL}
}

// InviteLink builds the registration URL carrying the nutritionist's id.
func (s *AssociationService) InviteLink(nutritionistID string) string {
	return s.AppURL + "/register?nutri_id=" + nutritionistID
}

// ResolveInvite looks up the nutritionist behind an invite id. A missing or
// unknown id reports ok=false so callers can degrade to plain registration.
func (s *AssociationService) ResolveInvite(nutriID string) (*models.Nutritionist, bool) {
	if nutriID == "" {
		return nil, false
	}
	var nutritionist models.Nutritionist
	if err := s.DB.First(&nutritionist, "id = ?", nutriID).Error; err != nil {
		return nil, false
	}
	return &nutritionist, true
}

// Link associates a patient with a nutritionist. Linking an already linked
// pair is a no-op reported through alreadyLinked.
func (s *AssociationService) Link(nutritionistID, patientID string) (alreadyLinked bool, err error) {
	linked, err := linkPair(s.DB, nutritionistID, patientID)
	if err != nil {
		return false, err
	}
	return !linked, nil
}

// linkPair inserts the association edge as a set union. It reports whether a
// new edge was created.
func linkPair(db *gorm.DB, nutritionistID, patientID string) (created bool, err error) {
	edge := models.NutritionistPatient{
		NutritionistID: nutritionistID,
		PatientID:      patientID,
	}
	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&edge)
	if result.Error != nil {
		return false, apperr.Persistence("failed to link patient", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// PatientsOf returns the patients associated with a nutritionist.
func (s *AssociationService) PatientsOf(nutritionistID string) ([]models.Patient, error) {
	var patients []models.Patient
	err := s.DB.
		Joins("JOIN nutritionist_patient_association a ON a.patient_id = patients.id").
		Where("a.nutritionist_id = ?", nutritionistID).
		Find(&patients).Error
	if err != nil {
		return nil, apperr.Persistence("failed to list patients", err)
	}
	return patients, nil
}

// AddPatientInput carries the form fields for a nutritionist-created patient.
type AddPatientInput struct {
	Username string
	Email    string
	Password string
	FullName string
}

// AddPatient creates a patient account on behalf of a nutritionist and links
// it immediately. User, profile and association edge are written in one
// transaction.
func (s *AssociationService) AddPatient(nutritionistID string, input AddPatientInput) (*models.Patient, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" || input.FullName == "" {
		return nil, apperr.Validation("Please fill in all required fields.")
	}

	var count int64
	if err := s.DB.Model(&models.User{}).
		Where("username = ? OR email = ?", input.Username, input.Email).
		Count(&count).Error; err != nil {
		return nil, apperr.Persistence("failed to check existing users", err)
	}
	if count > 0 {
		return nil, apperr.Conflict("Username or email already registered.")
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Role:     models.RolePatient,
	}
	if err := user.SetPassword(input.Password); err != nil {
		return nil, apperr.Persistence("failed to hash password", err)
	}

	patient := models.Patient{FullName: input.FullName}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return translateCreateError(err, "Username or email already registered.")
		}
		patient.UserID = user.ID
		if err := tx.Create(&patient).Error; err != nil {
			return translateCreateError(err, "Patient profile already exists.")
		}
		if _, err := linkPair(tx, nutritionistID, patient.ID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// Associated reports whether the nutritionist-patient edge exists.
func (s *AssociationService) Associated(nutritionistID, patientID string) (bool, error) {
	var edge models.NutritionistPatient
	err := s.DB.First(&edge, "nutritionist_id = ? AND patient_id = ?", nutritionistID, patientID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, apperr.Persistence("failed to check association", err)
	}
	return true, nil
}
