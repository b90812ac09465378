package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutrition-app-server/internal/apperr"
	"nutrition-app-server/internal/models"
)

func TestInviteLink(t *testing.T) {
	_, _, assoc := newServices(t)
	assert.Equal(t, testAppURL+"/register?nutri_id=abc", assoc.InviteLink("abc"))
}

func TestResolveInvite(t *testing.T) {
	_, auth, assoc := newServices(t)
	nutritionist := registerNutritionist(t, auth, "drnina", "nina@x.com", "CRM123")

	resolved, ok := assoc.ResolveInvite(nutritionist.ID)
	require.True(t, ok)
	assert.Equal(t, nutritionist.ID, resolved.ID)

	_, ok = assoc.ResolveInvite("missing")
	assert.False(t, ok)
	_, ok = assoc.ResolveInvite("")
	assert.False(t, ok)
}

func TestLinkIsIdempotent(t *testing.T) {
	db, auth, assoc := newServices(t)
	nutritionist := registerNutritionist(t, auth, "drnina", "nina@x.com", "CRM123")
	patient := registerPatient(t, auth, "joao", "joao@x.com", "")

	alreadyLinked, err := assoc.Link(nutritionist.ID, patient.ID)
	require.NoError(t, err)
	assert.False(t, alreadyLinked)

	alreadyLinked, err = assoc.Link(nutritionist.ID, patient.ID)
	require.NoError(t, err)
	assert.True(t, alreadyLinked)

	assert.EqualValues(t, 1, countRows(t, db, &models.NutritionistPatient{}))
}

func TestPatientsOf(t *testing.T) {
	_, auth, assoc := newServices(t)
	nina := registerNutritionist(t, auth, "drnina", "nina@x.com", "CRM123")
	paulo := registerNutritionist(t, auth, "drpaulo", "paulo@x.com", "CRM456")
	patient := registerPatient(t, auth, "joao", "joao@x.com", nina.ID)

	patients, err := assoc.PatientsOf(nina.ID)
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, patient.ID, patients[0].ID)

	patients, err = assoc.PatientsOf(paulo.ID)
	require.NoError(t, err)
	assert.Empty(t, patients)
}

func TestAddPatientCreatesAndLinks(t *testing.T) {
	db, auth, assoc := newServices(t)
	nutritionist := registerNutritionist(t, auth, "drnina", "nina@x.com", "CRM123")

	patient, err := assoc.AddPatient(nutritionist.ID, AddPatientInput{
		Username: "maria",
		Email:    "maria@x.com",
		Password: "pw789",
		FullName: "Maria Silva",
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", patient.FullName)
	assert.EqualValues(t, 1, countRows(t, db, &models.NutritionistPatient{}))

	// The created account can log in like any self-registered patient.
	user, err := auth.Login("maria@x.com", "pw789")
	require.NoError(t, err)
	assert.Equal(t, models.RolePatient, user.Role)
}

func TestAddPatientValidatesAndConflicts(t *testing.T) {
	db, auth, assoc := newServices(t)
	nutritionist := registerNutritionist(t, auth, "drnina", "nina@x.com", "CRM123")
	registerPatient(t, auth, "joao", "joao@x.com", "")
	usersBefore := countRows(t, db, &models.User{})

	_, err := assoc.AddPatient(nutritionist.ID, AddPatientInput{Username: "x"})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = assoc.AddPatient(nutritionist.ID, AddPatientInput{
		Username: "joao2",
		Email:    "joao@x.com",
		Password: "pw",
		FullName: "João",
	})
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	assert.Equal(t, usersBefore, countRows(t, db, &models.User{}))
	assert.EqualValues(t, 0, countRows(t, db, &models.NutritionistPatient{}))
}
