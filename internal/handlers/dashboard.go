package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nutrition-app-server/internal/middleware"
	"nutrition-app-server/internal/services"
	"nutrition-app-server/internal/utils"
)

// DashboardHandler renders the role home pages.
type DashboardHandler struct {
	Assoc *services.AssociationService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(assoc *services.AssociationService) *DashboardHandler {
	return &DashboardHandler{Assoc: assoc}
}

// PatientDashboard renders the patient home page.
func (h *DashboardHandler) PatientDashboard(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok || identity.Patient == nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	utils.Render(c, "patient_dashboard.html", gin.H{
		"user":    identity.User,
		"patient": identity.Patient,
	})
}

// NutritionistDashboard renders the nutritionist home page, including the
// invite link patients use to self-register.
func (h *DashboardHandler) NutritionistDashboard(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok || identity.Nutritionist == nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	utils.Render(c, "nutritionist_dashboard.html", gin.H{
		"user":         identity.User,
		"nutritionist": identity.Nutritionist,
		"inviteLink":   h.Assoc.InviteLink(identity.Nutritionist.ID),
	})
}
