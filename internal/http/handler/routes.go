package handler

import (
	"github.com/gofiber/fiber/v2"

	"filecms/internal/http/middleware"
	"filecms/internal/render"
	"filecms/internal/service"
	"filecms/internal/session"
)

// Deps carries everything the route table needs.
type Deps struct {
	Docs     service.DocumentService
	Auth     service.AuthService
	Sessions *session.Manager
	Views    *render.Renderer
	Metrics  fiber.Handler
}

// RegisterRoutes wires the full route table. Static paths are registered
// before the /:name wildcard so names like "new" or "upload" never
// shadow them.
func RegisterRoutes(app *fiber.App, d Deps) {
	gate := middleware.RequireSignedIn(d.Sessions)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	if d.Metrics != nil {
		app.Get("/metrics", d.Metrics)
	}

	app.Get("/", Index(d.Docs, d.Sessions, d.Views))
	app.Get("/new", gate, NewDocumentForm(d.Docs, d.Sessions, d.Views))
	app.Post("/create", gate, CreateDocument(d.Docs, d.Sessions, d.Views))
	app.Get("/upload", gate, UploadForm(d.Docs, d.Sessions, d.Views))
	app.Post("/upload", gate, UploadDocument(d.Docs, d.Sessions, d.Views))

	users := app.Group("/users")
	users.Get("/signin", SignInForm(d.Docs, d.Sessions, d.Views))
	users.Post("/signin", SignIn(d.Docs, d.Auth, d.Sessions, d.Views))
	users.Post("/signout", SignOut(d.Sessions))
	users.Get("/register", RegisterForm(d.Docs, d.Sessions, d.Views))
	users.Post("/register", Register(d.Docs, d.Auth, d.Sessions, d.Views))

	app.Get("/:name", ViewDocument(d.Docs, d.Sessions, d.Views))
	app.Post("/:name", gate, SaveDocument(d.Docs, d.Sessions))
	app.Get("/:name/edit", gate, EditDocumentForm(d.Docs, d.Sessions, d.Views))
	app.Get("/:name/rename", gate, RenameDocumentForm(d.Docs, d.Sessions, d.Views))
	app.Post("/:name/rename", gate, RenameDocument(d.Docs, d.Sessions, d.Views))
	app.Post("/:name/duplicate", gate, DuplicateDocument(d.Docs, d.Sessions, d.Views))
	app.Post("/:name/delete", gate, DeleteDocument(d.Docs, d.Sessions))
}
