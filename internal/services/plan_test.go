package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutrition-app-server/internal/apperr"
)

func TestCreatePlanRequiresAssociation(t *testing.T) {
	db, auth, assoc := newServices(t)
	plans := NewPlanService(db, assoc)
	nina := registerNutritionist(t, auth, "drnina", "nina@x.com", "CRM123")
	paulo := registerNutritionist(t, auth, "drpaulo", "paulo@x.com", "CRM456")
	patient := registerPatient(t, auth, "joao", "joao@x.com", nina.ID)

	input := CreatePlanInput{Name: "Cutting", StartDate: "2026-09-01", EndDate: "2026-09-30"}

	_, err := plans.Create(paulo.ID, patient.ID, input)
	assert.True(t, apperr.IsKind(err, apperr.KindAuthorization))

	plan, err := plans.Create(nina.ID, patient.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Cutting", plan.Name)
}

func TestCreatePlanValidatesDates(t *testing.T) {
	db, auth, assoc := newServices(t)
	plans := NewPlanService(db, assoc)
	nina := registerNutritionist(t, auth, "drnina", "nina@x.com", "CRM123")
	patient := registerPatient(t, auth, "joao", "joao@x.com", nina.ID)

	cases := []CreatePlanInput{
		{StartDate: "2026-09-01", EndDate: "2026-09-30"},                    // missing name
		{Name: "Plan", StartDate: "bad", EndDate: "2026-09-30"},             // bad start
		{Name: "Plan", StartDate: "2026-09-30", EndDate: "2026-09-01"},      // end before start
	}
	for _, input := range cases {
		_, err := plans.Create(nina.ID, patient.ID, input)
		assert.True(t, apperr.IsKind(err, apperr.KindValidation), "input %+v", input)
	}
}

func TestPlanHierarchy(t *testing.T) {
	db, auth, assoc := newServices(t)
	plans := NewPlanService(db, assoc)
	catalog := NewCatalogService(db)
	require.NoError(t, catalog.Seed())
	nina := registerNutritionist(t, auth, "drnina", "nina@x.com", "CRM123")
	paulo := registerNutritionist(t, auth, "drpaulo", "paulo@x.com", "CRM456")
	patient := registerPatient(t, auth, "joao", "joao@x.com", nina.ID)

	plan, err := plans.Create(nina.ID, patient.ID, CreatePlanInput{
		Name: "Bulking", StartDate: "2026-09-01", EndDate: "2026-09-30",
	})
	require.NoError(t, err)

	meal, err := plans.AddMeal(nina.ID, plan.ID, MealInput{MealType: "breakfast", Time: "08:00"})
	require.NoError(t, err)

	// Another nutritionist cannot touch the plan.
	_, err = plans.AddMeal(paulo.ID, plan.ID, MealInput{MealType: "dinner"})
	assert.True(t, apperr.IsKind(err, apperr.KindAuthorization))

	foods, err := catalog.List()
	require.NoError(t, err)
	_, err = plans.AddMealItem(nina.ID, meal.ID, MealItemInput{
		FoodItemID:    foods[0].ID,
		QuantityGrams: "120",
	})
	require.NoError(t, err)

	loaded, err := plans.PlansFor(patient.ID)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.Len(t, loaded[0].Meals, 1)
	require.Len(t, loaded[0].Meals[0].MealItems, 1)
	assert.Equal(t, foods[0].Name, loaded[0].Meals[0].MealItems[0].FoodItem.Name)
}
