package handlers

import (
	"github.com/gin-gonic/gin"

	"nutrition-app-server/internal/middleware"
	"nutrition-app-server/internal/services"
	"nutrition-app-server/internal/utils"
)

// PatientHandler handles the nutritionist's patient roster.
type PatientHandler struct {
	Assoc *services.AssociationService
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(assoc *services.AssociationService) *PatientHandler {
	return &PatientHandler{Assoc: assoc}
}

// List shows the patients associated with the logged-in nutritionist.
func (h *PatientHandler) List(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	patients, err := h.Assoc.PatientsOf(identity.Nutritionist.ID)
	if err != nil {
		utils.Fail(c, err, "/nutritionist_dashboard")
		return
	}

	utils.Render(c, "patients.html", gin.H{
		"nutritionist": identity.Nutritionist,
		"patients":     patients,
	})
}

// AddForm renders the add-patient page.
func (h *PatientHandler) AddForm(c *gin.Context) {
	utils.Render(c, "add_patient.html", nil)
}

// addPatientRequest represents the add-patient form fields.
type addPatientRequest struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
	FullName string `form:"full_name" binding:"required"`
}

// Add creates a patient account on behalf of the nutritionist and links it.
func (h *PatientHandler) Add(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	var req addPatientRequest
	if err := utils.BindForm(c, &req); err != nil {
		utils.Fail(c, err, "/add_patient")
		return
	}

	patient, err := h.Assoc.AddPatient(identity.Nutritionist.ID, services.AddPatientInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		utils.Fail(c, err, "/add_patient")
		return
	}

	utils.Succeed(c, "Patient "+patient.FullName+" added and linked successfully!", "/patients")
}
