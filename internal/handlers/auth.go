package handlers

import (
	"net/http"

	"nutrition-app-server/internal/apperr"
	"nutrition-app-server/internal/config"
	"nutrition-app-server/internal/middleware"
	"nutrition-app-server/internal/models"
	"nutrition-app-server/internal/services"
	"nutrition-app-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	Auth  *services.AuthService
	Assoc *services.AssociationService
	Cfg   *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *services.AuthService, assoc *services.AssociationService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{Auth: auth, Assoc: assoc, Cfg: cfg}
}

// Index renders the landing page.
func (h *AuthHandler) Index(c *gin.Context) {
	utils.Render(c, "index.html", nil)
}

// RegisterForm renders the registration page. A nutri_id query parameter
// pre-selects the inviting nutritionist; an unknown id degrades to plain
// registration instead of failing the page.
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	nutriID := c.Query("nutri_id")
	nutritionist, ok := h.Assoc.ResolveInvite(nutriID)
	if nutriID != "" && !ok {
		utils.AddFlash(c, "danger", "Nutritionist not found for this invite link.")
		nutriID = ""
	}

	utils.Render(c, "register.html", gin.H{
		"nutriID":      nutriID,
		"nutritionist": nutritionist,
	})
}

// Register handles the registration form submission.
func (h *AuthHandler) Register(c *gin.Context) {
	input := services.RegisterInput{
		Username:             c.PostForm("username"),
		Email:                c.PostForm("email"),
		Password:             c.PostForm("password"),
		Role:                 models.Role(c.DefaultPostForm("role", string(models.RolePatient))),
		FullName:             c.PostForm("full_name"),
		CRMNutri:             c.PostForm("crm_nutri"),
		InviteNutritionistID: c.PostForm("nutri_id"),
	}

	if _, err := h.Auth.Register(input); err != nil {
		utils.Fail(c, err, registerPath(input.InviteNutritionistID))
		return
	}

	if nutritionist, ok := h.Assoc.ResolveInvite(input.InviteNutritionistID); ok {
		utils.AddFlash(c, "info", "You have been associated with nutritionist "+nutritionist.FullName+".")
	}
	utils.Succeed(c, "Registration successful! Please log in.", "/login")
}

// LoginForm renders the login page.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	utils.Render(c, "login.html", nil)
}

// Login handles the login form submission and establishes the session.
func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")
	remember := c.PostForm("remember") != ""

	user, err := h.Auth.Login(email, password)
	if err != nil {
		utils.Fail(c, err, "/login")
		return
	}

	if err := middleware.SignIn(c, user.ID, remember, h.Cfg.Session.RememberDays); err != nil {
		utils.Fail(c, apperr.Persistence("failed to establish session", err), "/login")
		return
	}

	utils.Succeed(c, "Welcome back, "+user.Username+"!", middleware.DashboardPath(user.Role))
}

// Logout ends the session.
func (h *AuthHandler) Logout(c *gin.Context) {
	_ = middleware.SignOut(c)
	utils.AddFlash(c, "info", "You have been logged out.")
	c.Redirect(http.StatusFound, "/")
}

func registerPath(nutriID string) string {
	if nutriID != "" {
		return "/register?nutri_id=" + nutriID
	}
	return "/register"
}
