package handlers

import (
	"github.com/gin-gonic/gin"

	"nutrition-app-server/internal/apperr"
	"nutrition-app-server/internal/middleware"
	"nutrition-app-server/internal/services"
	"nutrition-app-server/internal/utils"
)

// PlanHandler handles meal plan pages for both roles.
type PlanHandler struct {
	Plans   *services.PlanService
	Assoc   *services.AssociationService
	Catalog *services.CatalogService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(plans *services.PlanService, assoc *services.AssociationService, catalog *services.CatalogService) *PlanHandler {
	return &PlanHandler{Plans: plans, Assoc: assoc, Catalog: catalog}
}

// MyPlans shows the logged-in patient their meal plans.
func (h *PlanHandler) MyPlans(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	plans, err := h.Plans.PlansFor(identity.Patient.ID)
	if err != nil {
		utils.Fail(c, err, "/patient_dashboard")
		return
	}

	utils.Render(c, "meal_plans.html", gin.H{"plans": plans})
}

// PatientPlans shows a nutritionist the plans of one associated patient,
// together with the forms to extend them.
func (h *PlanHandler) PatientPlans(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)
	patientID := c.Param("id")

	linked, err := h.Assoc.Associated(identity.Nutritionist.ID, patientID)
	if err != nil {
		utils.Fail(c, err, "/patients")
		return
	}
	if !linked {
		utils.Fail(c, apperr.Authorization("You can only view meal plans of your own patients."), "/patients")
		return
	}

	plans, err := h.Plans.PlansFor(patientID)
	if err != nil {
		utils.Fail(c, err, "/patients")
		return
	}
	foods, err := h.Catalog.List()
	if err != nil {
		utils.Fail(c, err, "/patients")
		return
	}

	utils.Render(c, "patient_meal_plans.html", gin.H{
		"patientID": patientID,
		"plans":     plans,
		"foodItems": foods,
	})
}

// CreatePlan creates a meal plan for an associated patient.
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)
	patientID := c.Param("id")
	back := "/patients/" + patientID + "/meal_plans"

	input := services.CreatePlanInput{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		StartDate:   c.PostForm("start_date"),
		EndDate:     c.PostForm("end_date"),
	}

	if _, err := h.Plans.Create(identity.Nutritionist.ID, patientID, input); err != nil {
		utils.Fail(c, err, back)
		return
	}

	utils.Succeed(c, "Meal plan created!", back)
}

// AddMeal appends a meal slot to a plan.
func (h *PlanHandler) AddMeal(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)
	planID := c.Param("id")
	back := utils.BackOr(c, "/patients")

	input := services.MealInput{
		MealType: c.PostForm("meal_type"),
		Time:     c.PostForm("time"),
		Notes:    c.PostForm("notes"),
	}

	if _, err := h.Plans.AddMeal(identity.Nutritionist.ID, planID, input); err != nil {
		utils.Fail(c, err, back)
		return
	}

	utils.Succeed(c, "Meal added to plan!", back)
}

// AddMealItem appends a food item to a meal.
func (h *PlanHandler) AddMealItem(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)
	mealID := c.Param("id")
	back := utils.BackOr(c, "/patients")

	input := services.MealItemInput{
		FoodItemID:    c.PostForm("food_item_id"),
		QuantityGrams: c.PostForm("quantity_grams"),
		Notes:         c.PostForm("notes"),
	}

	if _, err := h.Plans.AddMealItem(identity.Nutritionist.ID, mealID, input); err != nil {
		utils.Fail(c, err, back)
		return
	}

	utils.Succeed(c, "Food item added to meal!", back)
}
