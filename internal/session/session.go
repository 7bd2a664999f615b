// Package session wraps Fiber's cookie session middleware with the
// request-scoped authentication state and one-shot flash messages the
// handlers rely on. Handlers never touch session keys directly.
package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
)

const (
	keySignedIn = "signed_in"
	keyUsername = "username"
	keyError    = "error"
	keySuccess  = "success"
)

// Manager owns the server-side session store. Sessions are keyed by an
// HTTP-only cookie; state is isolated per client by the middleware.
type Manager struct {
	store *fibersession.Store
}

// NewManager builds a Manager with an in-memory session store and a
// hardened session cookie.
func NewManager() *Manager {
	return &Manager{
		store: fibersession.New(fibersession.Config{
			KeyLookup:      "cookie:sid",
			Expiration:     24 * time.Hour,
			CookieHTTPOnly: true,
			CookieSameSite: "Lax",
		}),
	}
}

// SignIn marks the client's session as authenticated for username.
func (m *Manager) SignIn(c *fiber.Ctx, username string) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return err
	}
	sess.Set(keySignedIn, true)
	sess.Set(keyUsername, username)
	return sess.Save()
}

// SignOut clears the authenticated state but keeps the session itself, so
// a flash message set afterwards still reaches the next page.
func (m *Manager) SignOut(c *fiber.Ctx) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return err
	}
	sess.Delete(keySignedIn)
	sess.Delete(keyUsername)
	return sess.Save()
}

// SignedIn reports whether the client's session is authenticated.
func (m *Manager) SignedIn(c *fiber.Ctx) bool {
	sess, err := m.store.Get(c)
	if err != nil {
		return false
	}
	v, _ := sess.Get(keySignedIn).(bool)
	return v
}

// Username returns the signed-in username, or "" for anonymous sessions.
func (m *Manager) Username(c *fiber.Ctx) string {
	sess, err := m.store.Get(c)
	if err != nil {
		return ""
	}
	v, _ := sess.Get(keyUsername).(string)
	return v
}

// SetError stores a one-shot error message for the next rendered page.
func (m *Manager) SetError(c *fiber.Ctx, msg string) error {
	return m.setFlash(c, keyError, msg)
}

// SetSuccess stores a one-shot success message for the next rendered page.
func (m *Manager) SetSuccess(c *fiber.Ctx, msg string) error {
	return m.setFlash(c, keySuccess, msg)
}

func (m *Manager) setFlash(c *fiber.Ctx, key, msg string) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return err
	}
	sess.Set(key, msg)
	return sess.Save()
}

// Flash returns and clears the pending flash messages. Messages are shown
// on exactly one page; a second call returns empty strings.
func (m *Manager) Flash(c *fiber.Ctx) (errMsg, okMsg string) {
	sess, err := m.store.Get(c)
	if err != nil {
		return "", ""
	}
	errMsg, _ = sess.Get(keyError).(string)
	okMsg, _ = sess.Get(keySuccess).(string)
	if errMsg != "" || okMsg != "" {
		sess.Delete(keyError)
		sess.Delete(keySuccess)
		_ = sess.Save()
	}
	return errMsg, okMsg
}
