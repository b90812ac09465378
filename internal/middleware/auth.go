package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"nutrition-app-server/internal/models"
	"nutrition-app-server/internal/services"
	"nutrition-app-server/internal/utils"
)

const (
	sessionUserKey = "user_id"
	identityKey    = "identity"
)

// SignIn stores the user id in the session. When remember is set the cookie
// survives the browser session for rememberDays days.
func SignIn(c *gin.Context, userID string, remember bool, rememberDays int) error {
	session := sessions.Default(c)
	session.Set(sessionUserKey, userID)
	if remember {
		utils.SetSessionMaxAge(session, rememberDays*24*60*60)
	}
	return utils.SaveSession(session)
}

// SignOut drops the authenticated user from the session. The session itself
// stays usable so a goodbye flash can still ride it.
func SignOut(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	return utils.SaveSession(session)
}

// sessionUserID reads the authenticated user id from the session, if any.
func sessionUserID(c *gin.Context) (string, bool) {
	raw := sessions.Default(c).Get(sessionUserKey)
	userID, ok := raw.(string)
	return userID, ok && userID != ""
}

// RequireLogin resolves the session to an Identity and stores it in the
// request context. Anonymous requests are redirected to the login page.
func RequireLogin(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUserID(c)
		if !ok {
			utils.AddFlash(c, "info", "Please log in to access this page.")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		identity, err := auth.Resolve(userID)
		if err != nil {
			// Stale session for a missing account. Drop it.
			_ = SignOut(c)
			utils.AddFlash(c, "info", "Please log in to access this page.")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireRole allows only the given roles past. It must run after
// RequireLogin.
func RequireRole(allowedRoles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		for _, role := range allowedRoles {
			if identity.Role() == role {
				c.Next()
				return
			}
		}

		utils.AddFlash(c, "danger", "Unauthorized access.")
		c.Redirect(http.StatusFound, "/")
		c.Abort()
	}
}

// RedirectIfAuthenticated sends logged-in users from the register/login pages
// to their dashboard.
func RedirectIfAuthenticated(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUserID(c)
		if !ok {
			c.Next()
			return
		}
		identity, err := auth.Resolve(userID)
		if err != nil {
			_ = SignOut(c)
			c.Next()
			return
		}

		c.Redirect(http.StatusFound, DashboardPath(identity.Role()))
		c.Abort()
	}
}

// DashboardPath returns the home page for a role.
func DashboardPath(role models.Role) string {
	switch role {
	case models.RolePatient:
		return "/patient_dashboard"
	case models.RoleNutritionist:
		return "/nutritionist_dashboard"
	default:
		return "/"
	}
}

// GetIdentity returns the Identity stored by RequireLogin.
func GetIdentity(c *gin.Context) (*services.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*services.Identity)
	return identity, ok
}
