package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"filecms/internal/render"
)

// NewErrorHandler builds the app-wide fiber error handler. fiber errors
// keep their status; anything else is logged and served as a generic 500
// page so internal details never reach the client.
func NewErrorHandler(views *render.Renderer, log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		if status >= fiber.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}

		data := render.PageData{Title: "Something went wrong"}
		if rerr := renderPage(c, views, status, "error", data); rerr != nil {
			return c.Status(status).SendString("Something went wrong.")
		}
		return nil
	}
}
