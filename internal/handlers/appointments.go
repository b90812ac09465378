package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nutrition-app-server/internal/middleware"
	"nutrition-app-server/internal/models"
	"nutrition-app-server/internal/services"
	"nutrition-app-server/internal/utils"
)

// AppointmentHandler handles appointment listing and booking.
type AppointmentHandler struct {
	Schedule *services.ScheduleService
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(schedule *services.ScheduleService) *AppointmentHandler {
	return &AppointmentHandler{Schedule: schedule}
}

// List shows the appointments for the logged-in user. Patients see their own
// bookings, nutritionists the ones where they are the provider.
func (h *AppointmentHandler) List(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	var appointments []models.Appointment
	var err error
	switch identity.Role() {
	case models.RolePatient:
		appointments, err = h.Schedule.ForPatient(identity.Patient.ID)
	case models.RoleNutritionist:
		appointments, err = h.Schedule.ForNutritionist(identity.Nutritionist.ID)
	default:
		utils.AddFlash(c, "danger", "Unauthorized access.")
		c.Redirect(http.StatusFound, "/")
		return
	}
	if err != nil {
		utils.Fail(c, err, "/")
		return
	}

	utils.Render(c, "appointments.html", gin.H{
		"role":         string(identity.Role()),
		"appointments": appointments,
	})
}

// ScheduleForm renders the booking page with the nutritionist dropdown.
func (h *AppointmentHandler) ScheduleForm(c *gin.Context) {
	nutritionists, err := h.Schedule.Nutritionists()
	if err != nil {
		utils.Fail(c, err, "/patient_dashboard")
		return
	}

	utils.Render(c, "schedule_appointment.html", gin.H{"nutritionists": nutritionists})
}

// scheduleRequest represents the booking form fields.
type scheduleRequest struct {
	NutritionistID string `form:"nutritionist_id" binding:"required"`
	Date           string `form:"appointment_date" binding:"required"`
	Time           string `form:"appointment_time" binding:"required"`
}

// Create books a one-hour appointment for the logged-in patient.
func (h *AppointmentHandler) Create(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	var req scheduleRequest
	if err := utils.BindForm(c, &req); err != nil {
		utils.Fail(c, err, "/schedule_appointment")
		return
	}

	if _, err := h.Schedule.Schedule(identity.Patient.ID, req.NutritionistID, req.Date, req.Time); err != nil {
		utils.Fail(c, err, "/schedule_appointment")
		return
	}

	utils.Succeed(c, "Appointment scheduled successfully!", "/appointments")
}
