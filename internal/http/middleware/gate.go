package middleware

import (
	"github.com/gofiber/fiber/v2"

	"filecms/internal/session"
)

// RequireSignedIn gates mutating routes. Anonymous clients get a flash
// message and a redirect to the index; the rest of the handler chain does
// not run.
func RequireSignedIn(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sessions.SignedIn(c) {
			return c.Next()
		}
		if err := sessions.SetError(c, "You must be signed in to do that."); err != nil {
			return err
		}
		return c.Redirect("/", fiber.StatusFound)
	}
}
