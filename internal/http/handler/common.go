// Package handler contains the Fiber HTTP handlers for the CMS: the
// document listing, viewing and mutation routes, and the sign-in,
// sign-out and registration routes.
package handler

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"filecms/internal/render"
	"filecms/internal/service"
	"filecms/internal/session"
)

// pageData assembles the state every page needs: the document listing,
// the pending flash messages (consumed here, read-once) and the session's
// auth state.
func pageData(c *fiber.Ctx, docs service.DocumentService, sessions *session.Manager, title string) (render.PageData, error) {
	files, err := docs.List(c.UserContext())
	if err != nil {
		return render.PageData{}, err
	}
	errMsg, okMsg := sessions.Flash(c)
	return render.PageData{
		Title:    title,
		Files:    files,
		SignedIn: sessions.SignedIn(c),
		Username: sessions.Username(c),
		Error:    errMsg,
		Success:  okMsg,
	}, nil
}

// renderPage executes a page template and sends it with the given status.
func renderPage(c *fiber.Ctx, views *render.Renderer, status int, page string, data render.PageData) error {
	var buf bytes.Buffer
	if err := views.Page(&buf, page, data); err != nil {
		return err
	}
	c.Status(status).Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
