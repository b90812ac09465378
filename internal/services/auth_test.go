package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutrition-app-server/internal/apperr"
	"nutrition-app-server/internal/models"
)

func TestRegisterNutritionistCreatesProfile(t *testing.T) {
	_, auth, _ := newServices(t)

	nutritionist := registerNutritionist(t, auth, "drnina", "nina@x.com", "CRM123")
	assert.Equal(t, "CRM123", nutritionist.CRMNutri)
	assert.Equal(t, "drnina", nutritionist.FullName) // falls back to username
}

func TestRegisterRequiresAllFields(t *testing.T) {
	db, auth, _ := newServices(t)

	_, err := auth.Register(RegisterInput{Username: "joao", Email: "joao@x.com"})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.EqualValues(t, 0, countRows(t, db, &models.User{}))
}

func TestRegisterNutritionistRequiresCRM(t *testing.T) {
	db, auth, _ := newServices(t)

	_, err := auth.Register(RegisterInput{
		Username: "drnina",
		Email:    "nina@x.com",
		Password: "pw123",
		Role:     models.RoleNutritionist,
	})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.EqualValues(t, 0, countRows(t, db, &models.User{}), "no orphan user may persist")
}

func TestRegisterDuplicateUsernameOrEmailConflicts(t *testing.T) {
	db, auth, _ := newServices(t)
	registerPatient(t, auth, "joao", "joao@x.com", "")

	for _, input := range []RegisterInput{
		{Username: "joao", Email: "other@x.com", Password: "pw"},
		{Username: "other", Email: "joao@x.com", Password: "pw"},
	} {
		_, err := auth.Register(input)
		assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	}
	assert.EqualValues(t, 1, countRows(t, db, &models.User{}))
}

func TestRegisterDuplicateCRMRollsBackUser(t *testing.T) {
	db, auth, _ := newServices(t)
	registerNutritionist(t, auth, "drnina", "nina@x.com", "CRM123")

	_, err := auth.Register(RegisterInput{
		Username: "drpaulo",
		Email:    "paulo@x.com",
		Password: "pw123",
		Role:     models.RoleNutritionist,
		CRMNutri: "CRM123",
	})
	require.Error(t, err)

	// The failed profile insert must take the user row down with it.
	assert.EqualValues(t, 1, countRows(t, db, &models.User{}))
	assert.EqualValues(t, 1, countRows(t, db, &models.Nutritionist{}))
}

func TestRegisterWithInviteCreatesSingleEdge(t *testing.T) {
	db, auth, assoc := newServices(t)
	nutritionist := registerNutritionist(t, auth, "drnina", "nina@x.com", "CRM123")

	patient := registerPatient(t, auth, "joao", "joao@x.com", nutritionist.ID)
	assert.EqualValues(t, 1, countRows(t, db, &models.NutritionistPatient{}))

	// Re-linking the same pair must not duplicate the edge.
	alreadyLinked, err := assoc.Link(nutritionist.ID, patient.ID)
	require.NoError(t, err)
	assert.True(t, alreadyLinked)
	assert.EqualValues(t, 1, countRows(t, db, &models.NutritionistPatient{}))
}

func TestRegisterWithUnknownInviteDegrades(t *testing.T) {
	db, auth, _ := newServices(t)

	registerPatient(t, auth, "joao", "joao@x.com", "no-such-nutritionist")
	assert.EqualValues(t, 1, countRows(t, db, &models.User{}))
	assert.EqualValues(t, 0, countRows(t, db, &models.NutritionistPatient{}))
}

func TestLogin(t *testing.T) {
	_, auth, _ := newServices(t)
	registerPatient(t, auth, "joao", "joao@x.com", "")

	_, err := auth.Login("joao@x.com", "wrong")
	assert.True(t, apperr.IsKind(err, apperr.KindAuth))

	_, err = auth.Login("unknown@x.com", "pw456")
	assert.True(t, apperr.IsKind(err, apperr.KindAuth))

	user, err := auth.Login("joao@x.com", "pw456")
	require.NoError(t, err)
	assert.Equal(t, "joao", user.Username)
}

func TestResolveIdentity(t *testing.T) {
	_, auth, _ := newServices(t)
	patient := registerPatient(t, auth, "joao", "joao@x.com", "")

	user, err := auth.Login("joao@x.com", "pw456")
	require.NoError(t, err)

	identity, err := auth.Resolve(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RolePatient, identity.Role())
	require.NotNil(t, identity.Patient)
	assert.Equal(t, patient.ID, identity.Patient.ID)
	assert.Nil(t, identity.Nutritionist)

	_, err = auth.Resolve("missing-id")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
