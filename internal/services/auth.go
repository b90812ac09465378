package services

import (
	"errors"

	"gorm.io/gorm"

	"nutrition-app-server/internal/apperr"
	"nutrition-app-server/internal/models"
)

// Identity is the resolved session principal: the account plus the one
// profile its role owns.
type Identity struct {
	User         models.User
	Patient      *models.Patient
	Nutritionist *models.Nutritionist
}

// Role returns the role of the authenticated account.
func (i *Identity) Role() models.Role {
	return i.User.Role
}

// AuthService handles registration, credential checks and identity resolution.
type AuthService struct {
	DB *gorm.DB
}

// NewAuthService creates a new AuthService.
func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     models.Role
	FullName string
	CRMNutri string
	// InviteNutritionistID links the new patient to a nutritionist when the
	// registration came through an invite link. Unknown ids are ignored.
	InviteNutritionistID string
}

// Register creates the account and its role profile, and redeems the invite
// link when one is present. Everything happens in one transaction: a failure
// at any step leaves no partial user/profile split behind.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, apperr.Validation("Please fill in all required fields.")
	}

	role := input.Role
	if role == "" {
		role = models.RolePatient
	}
	if !role.Valid() {
		return nil, apperr.Validation("Unknown account role.")
	}
	if role == models.RoleNutritionist && input.CRMNutri == "" {
		return nil, apperr.Validation("Please provide the nutritionist's CRM.")
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

	fullName := input.FullName
	if fullName == "" {
		fullName = input.Username
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Role:     role,
	}
	if err := user.SetPassword(input.Password); err != nil {
		return nil, apperr.Persistence("failed to hash password", err)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return translateCreateError(err, "Username or email already registered.")
		}

		switch role {
		case models.RolePatient:
			patient := models.Patient{UserID: user.ID, FullName: fullName}
			if err := tx.Create(&patient).Error; err != nil {
				return translateCreateError(err, "Patient profile already exists.")
			}
			if input.InviteNutritionistID != "" {
				// An invalid invite id degrades gracefully: the account is
				// still created, just without the association.
				var nutritionist models.Nutritionist
				err := tx.First(&nutritionist, "id = ?", input.InviteNutritionistID).Error
				if err == nil {
					if _, err := linkPair(tx, nutritionist.ID, patient.ID); err != nil {
						return err
					}
				} else if !errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.Persistence("failed to resolve invite", err)
				}
			}
		case models.RoleNutritionist:
			nutritionist := models.Nutritionist{
				UserID:   user.ID,
				FullName: fullName,
				CRMNutri: input.CRMNutri,
			}
			if err := tx.Create(&nutritionist).Error; err != nil {
				return translateCreateError(err, "This CRM is already registered.")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Login verifies the credentials and returns the account.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, apperr.Auth("Invalid email or password. Please try again.")
	}

	var user models.User
	if err := s.DB.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Auth("Invalid email or password. Please try again.")
		}
		return nil, apperr.Persistence("failed to look up user", err)
	}

	if !user.CheckPassword(password) {
		return nil, apperr.Auth("Invalid email or password. Please try again.")
	}
	return &user, nil
}

// Resolve loads the account for a session user id together with its role
// profile.
func (s *AuthService) Resolve(userID string) (*Identity, error) {
	var user models.User
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Account not found.")
		}
		return nil, apperr.Persistence("failed to load user", err)
	}

	identity := &Identity{User: user}
	switch user.Role {
	case models.RolePatient:
		var patient models.Patient
		if err := s.DB.First(&patient, "user_id = ?", user.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("Patient profile not found.")
			}
			return nil, apperr.Persistence("failed to load patient profile", err)
		}
		identity.Patient = &patient
	case models.RoleNutritionist:
		var nutritionist models.Nutritionist
		if err := s.DB.First(&nutritionist, "user_id = ?", user.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("Nutritionist profile not found.")
			}
			return nil, apperr.Persistence("failed to load nutritionist profile", err)
		}
		identity.Nutritionist = &nutritionist
	}
	return identity, nil
}

// translateCreateError maps a failed insert to a conflict when it tripped a
// uniqueness constraint, and to a persistence error otherwise.
func translateCreateError(err error, conflictMessage string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflict(conflictMessage)
	}
	return apperr.Persistence("database error", err)
}
