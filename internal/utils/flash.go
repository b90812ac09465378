package utils

import (
	"encoding/gob"
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"nutrition-app-server/internal/apperr"
)

// Flash is a one-shot status message shown on the next rendered page.
type Flash struct {
	Level   string // success, info, danger
	Message string
}

func init() {
	// Flashes travel inside the gob-encoded session cookie.
	gob.Register(Flash{})
}

// AddFlash queues a status message on the current session.
func AddFlash(c *gin.Context, level, message string) {
	session := sessions.Default(c)
	session.AddFlash(Flash{Level: level, Message: message})
	_ = SaveSession(session)
}

// TakeFlashes drains and returns the queued status messages.
func TakeFlashes(c *gin.Context) []Flash {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) > 0 {
		_ = SaveSession(session) // Flashes() consumed them; persist the removal
	}
	flashes := make([]Flash, 0, len(raw))
	for _, entry := range raw {
		if flash, ok := entry.(Flash); ok {
			flashes = append(flashes, flash)
		}
	}
	return flashes
}

// Render renders an HTML page with any pending flash messages merged in.
func Render(c *gin.Context, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["flashes"] = TakeFlashes(c)
	c.HTML(http.StatusOK, name, data)
}

// Fail flashes a message for err and redirects back to the given location.
// Unexpected errors are reduced to a generic message, never a raw stack.
func Fail(c *gin.Context, err error, location string) {
	message := "An unexpected error occurred. Please try again."
	var appErr *apperr.Error
	if errors.As(err, &appErr) && appErr.Kind != apperr.KindPersistence {
		message = appErr.Message
	}
	AddFlash(c, "danger", message)
	c.Redirect(http.StatusFound, location)
}

// Succeed flashes a success message and redirects to the given location.
func Succeed(c *gin.Context, message, location string) {
	AddFlash(c, "success", message)
	c.Redirect(http.StatusFound, location)
}

// BackOr returns the referring page, or the fallback when the request
// carries no referer.
func BackOr(c *gin.Context, fallback string) string {
	if referer := c.Request.Referer(); referer != "" {
		return referer
	}
	return fallback
}
