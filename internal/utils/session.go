package utils

import (
	"github.com/gin-contrib/sessions"
)

const sessionMaxAgeKey = "max_age"

// SetSessionMaxAge records an extended cookie lifetime on the session. It
// takes effect on the next SaveSession.
func SetSessionMaxAge(session sessions.Session, seconds int) {
	session.Set(sessionMaxAgeKey, seconds)
}

// SaveSession writes the session with its cookie options restated. The store
// re-derives options from its defaults on every save, so a remembered expiry
// recorded at login must be re-applied before each write or the next save
// shrinks the cookie back to browser-session lifetime.
func SaveSession(session sessions.Session) error {
	options := sessions.Options{Path: "/", HttpOnly: true}
	if maxAge, ok := session.Get(sessionMaxAgeKey).(int); ok && maxAge > 0 {
		options.MaxAge = maxAge
	}
	session.Options(options)
	return session.Save()
}
