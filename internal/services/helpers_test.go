package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"nutrition-app-server/internal/models"
)

const testAppURL = "http://localhost:3001"

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Every pooled connection to :memory: would get its own database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.Migrate(db))
	return db
}

// newServices wires the service graph the way routes.SetupRoutes does.
func newServices(t *testing.T) (*gorm.DB, *AuthService, *AssociationService) {
	t.Helper()
	db := newTestDB(t)
	assoc := NewAssociationService(db, testAppURL)
	auth := NewAuthService(db)
	return db, auth, assoc
}

// registerNutritionist registers a nutritionist account and returns its profile.
func registerNutritionist(t *testing.T, auth *AuthService, username, email, crm string) *models.Nutritionist {
	t.Helper()
	user, err := auth.Register(RegisterInput{
		Username: username,
		Email:    email,
		Password: "pw123",
		Role:     models.RoleNutritionist,
		CRMNutri: crm,
	})
	require.NoError(t, err)

	var nutritionist models.Nutritionist
	require.NoError(t, auth.DB.First(&nutritionist, "user_id = ?", user.ID).Error)
	return &nutritionist
}

// registerPatient registers a patient account and returns its profile.
func registerPatient(t *testing.T, auth *AuthService, username, email, inviteID string) *models.Patient {
	t.Helper()
	user, err := auth.Register(RegisterInput{
		Username:             username,
		Email:                email,
		Password:             "pw456",
		Role:                 models.RolePatient,
		InviteNutritionistID: inviteID,
	})
	require.NoError(t, err)

	var patient models.Patient
	require.NoError(t, auth.DB.First(&patient, "user_id = ?", user.ID).Error)
	return &patient
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}
