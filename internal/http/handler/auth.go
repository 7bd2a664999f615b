package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"filecms/internal/render"
	"filecms/internal/service"
	"filecms/internal/session"
)

// SignInForm renders the sign-in page.
func SignInForm(docs service.DocumentService, sessions *session.Manager, views *render.Renderer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := pageData(c, docs, sessions, "Sign In")
		if err != nil {
			return err
		}
		return renderPage(c, views, fiber.StatusOK, "signin", data)
	}
}

// SignIn checks the submitted credentials and opens a session. A failed
// attempt re-renders the form with the submitted username filled in.
func SignIn(docs service.DocumentService, auth service.AuthService, sessions *session.Manager, views *render.Renderer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username := strings.TrimSpace(c.FormValue("username"))

		if err := auth.SignIn(c.UserContext(), username, c.FormValue("password")); err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				data, derr := pageData(c, docs, sessions, "Sign In")
				if derr != nil {
					return derr
				}
				data.Username = username
				data.Error = msgBadCredentials
				return renderPage(c, views, fiber.StatusConflict, "signin", data)
			}
			return err
		}

		if err := sessions.SignIn(c, username); err != nil {
			return err
		}
		if err := sessions.SetSuccess(c, msgWelcome); err != nil {
			return err
		}
		return c.Redirect("/", fiber.StatusFound)
	}
}

// SignOut closes the session. Safe to call while signed out.
func SignOut(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := sessions.SignOut(c); err != nil {
			return err
		}
		if err := sessions.SetSuccess(c, msgSignedOut); err != nil {
			return err
		}
		return c.Redirect("/", fiber.StatusFound)
	}
}

// RegisterForm renders the registration page.
func RegisterForm(docs service.DocumentService, sessions *session.Manager, views *render.Renderer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := pageData(c, docs, sessions, "Register")
		if err != nil {
			return err
		}
		return renderPage(c, views, fiber.StatusOK, "register", data)
	}
}

// Register creates a new account and signs it in.
func Register(docs service.DocumentService, auth service.AuthService, sessions *session.Manager, views *render.Renderer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username := strings.TrimSpace(c.FormValue("new_username"))

		err := auth.Register(c.UserContext(), username, c.FormValue("new_password"))
		if err != nil {
			status, msg := fiber.StatusUnprocessableEntity, ""
			switch {
			case errors.Is(err, service.ErrNameRequired):
				msg = msgBadRegister
			case errors.Is(err, service.ErrUserTaken):
				status, msg = fiber.StatusConflict, msgUserTaken
			default:
				return err
			}
			data, derr := pageData(c, docs, sessions, "Register")
			if derr != nil {
				return derr
			}
			data.Username = username
			data.Error = msg
			return renderPage(c, views, status, "register", data)
		}

		if err := sessions.SignIn(c, username); err != nil {
			return err
		}
		if err := sessions.SetSuccess(c, msgRegistered(username)); err != nil {
			return err
		}
		return c.Redirect("/", fiber.StatusFound)
	}
}
