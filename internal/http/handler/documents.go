package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"filecms/internal/docname"
	"filecms/internal/model"
	"filecms/internal/render"
	"filecms/internal/service"
	"filecms/internal/session"
	"filecms/internal/store"
)

// Index renders the document listing.
func Index(docs service.DocumentService, sessions *session.Manager, views *render.Renderer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := pageData(c, docs, sessions, "Documents")
		if err != nil {
			return err
		}
		return renderPage(c, views, fiber.StatusOK, "index", data)
	}
}

// ViewDocument serves a document: markdown is rendered to HTML inside the
// layout, other text is served as plain text, images and pdf as raw bytes.
// Missing documents and unrecognized extensions flash an error and
// redirect to the index.
func ViewDocument(docs service.DocumentService, sessions *session.Manager, views *render.Renderer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")

		doc, err := docs.View(c.UserContext(), name)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				if err := sessions.SetError(c, name+" does not exist."); err != nil {
					return err
				}
				return c.Redirect("/", fiber.StatusFound)
			}
			return err
		}

		if doc.Category == model.CategoryText && docname.IsMarkdown(doc.Name) {
			rendered, err := views.Markdown(doc.Body)
			if err != nil {
				return err
			}
			data, err := pageData(c, docs, sessions, doc.Name)
			if err != nil {
				return err
			}
			data.Doc = doc.Name
			data.Rendered = rendered
			return renderPage(c, views, fiber.StatusOK, "view", data)
		}

		c.Set(fiber.HeaderContentType, doc.ContentType)
		return c.Send(doc.Body)
	}
}

// NewDocumentForm renders the create form.
func NewDocumentForm(docs service.DocumentService, sessions *session.Manager, views *render.Renderer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := pageData(c, docs, sessions, "New Document")
		if err != nil {
			return err
		}
		return renderPage(c, views, fiber.StatusOK, "new", data)
	}
}

// CreateDocument creates an empty text document from the submitted name.
func CreateDocument(docs service.DocumentService, sessions *session.Manager, views *render.Renderer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name, err := docs.Create(c.UserContext(), c.FormValue("file_name"))
		if err != nil {
			status, msg := fiber.StatusUnprocessableEntity, ""
			switch {
			case errors.Is(err, service.ErrNameRequired):
				msg = msgNameRequired
			case errors.Is(err, service.ErrBadExtension):
				msg = msgBadTextExtension()
			case errors.Is(err, store.ErrAlreadyExists):
				status, msg = fiber.StatusConflict, msgAlreadyExists
			default:
				return err
			}
			data, derr := pageData(c, docs, sessions, "New Document")
			if derr != nil {
				return derr
			}
			data.Error = msg
			return renderPage(c, views, status, "new", data)
		}

		if err := sessions.SetSuccess(c, name+" was created."); err != nil {
			return err
		}
		return c.Redirect("/", fiber.StatusFound)
	}
}

// EditDocumentForm renders the edit form with the document's current
// content.
func EditDocumentForm(docs service.DocumentService, sessions *session.Manager, views *render.Renderer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")

		content, err := docs.Raw(c.UserContext(), name)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				if err := sessions.SetError(c, name+" does not exist."); err != nil {
					return err
				}
				return c.Redirect("/", fiber.StatusFound)
			}
			return err
		}

		data, err := pageData(c, docs, sessions, "Edit "+name)
		if err != nil {
			return err
		}
		data.Doc = name
		data.Content = string(content)
		return renderPage(c, views, fiber.StatusOK, "edit", data)
	}
}

// SaveDocument overwrites a document with the submitted content.
func SaveDocument(docs service.DocumentService, sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")

		if err := docs.Save(c.UserContext(), name, []byte(c.FormValue("content"))); err != nil {
			return err
		}
		if err := sessions.SetSuccess(c, name+" has been updated."); err != nil {
			return err
		}
		return c.Redirect("/", fiber.StatusFound)
	}
}

// RenameDocumentForm renders the rename form.
func RenameDocumentForm(docs service.DocumentService, sessions *session.Manager, views *render.Renderer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")
		data, err := pageData(c, docs, sessions, "Rename "+name)
		if err != nil {
			return err
		}
		data.Doc = name
		return renderPage(c, views, fiber.StatusOK, "rename", data)
	}
}

// RenameDocument moves a document to the submitted name. A bare base name
// inherits the old extension; the final extension must be a text one.
func RenameDocument(docs service.DocumentService, sessions *session.Manager, views *render.Renderer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")

		newName, err := docs.Rename(c.UserContext(), name, c.FormValue("rename"))
		if err != nil {
			status, msg := fiber.StatusUnprocessableEntity, ""
			switch {
			case errors.Is(err, service.ErrNameRequired):
				msg = msgNameRequired
			case errors.Is(err, service.ErrBadExtension):
				msg = msgBadTextExtension()
			case errors.Is(err, store.ErrAlreadyExists):
				status, msg = fiber.StatusConflict, msgAlreadyExists
			case errors.Is(err, store.ErrNotFound):
				if err := sessions.SetError(c, name+" does not exist."); err != nil {
					return err
				}
				return c.Redirect("/", fiber.StatusFound)
			default:
				return err
			}
			data, derr := pageData(c, docs, sessions, "Rename "+name)
			if derr != nil {
				return derr
			}
			data.Doc = name
			data.Error = msg
			return renderPage(c, views, status, "rename", data)
		}

		if err := sessions.SetSuccess(c, name+" was renamed to "+newName+"."); err != nil {
			return err
		}
		return c.Redirect("/", fiber.StatusFound)
	}
}

// DuplicateDocument copies a document under a "_copy" name.
func DuplicateDocument(docs service.DocumentService, sessions *session.Manager, views *render.Renderer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")

		copyName, err := docs.Duplicate(c.UserContext(), name)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrAlreadyExists):
				data, derr := pageData(c, docs, sessions, "Documents")
				if derr != nil {
					return derr
				}
				data.Error = msgAlreadyExists
				return renderPage(c, views, fiber.StatusConflict, "index", data)
			case errors.Is(err, store.ErrNotFound):
				if err := sessions.SetError(c, name+" does not exist."); err != nil {
					return err
				}
				return c.Redirect("/", fiber.StatusFound)
			default:
				return err
			}
		}

		if err := sessions.SetSuccess(c, "Duplication successful: "+copyName+" created."); err != nil {
			return err
		}
		return c.Redirect("/", fiber.StatusFound)
	}
}

// DeleteDocument removes a document. XHR clients get a bodyless 204;
// browsers get a flash message and a redirect.
func DeleteDocument(docs service.DocumentService, sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")

		if err := docs.Delete(c.UserContext(), name); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				if err := sessions.SetError(c, name+" does not exist."); err != nil {
					return err
				}
				return c.Redirect("/", fiber.StatusFound)
			}
			return err
		}

		if c.Get("X-Requested-With") == "XMLHttpRequest" {
			return c.SendStatus(fiber.StatusNoContent)
		}

		if err := sessions.SetSuccess(c, name+" has been deleted."); err != nil {
			return err
		}
		return c.Redirect("/", fiber.StatusFound)
	}
}

// UploadForm renders the upload form.
func UploadForm(docs service.DocumentService, sessions *session.Manager, views *render.Renderer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := pageData(c, docs, sessions, "Upload")
		if err != nil {
			return err
		}
		return renderPage(c, views, fiber.StatusOK, "upload", data)
	}
}

// UploadDocument stores an uploaded file. The size check runs before
// anything is written, so an oversized upload leaves the store untouched.
func UploadDocument(docs service.DocumentService, sessions *session.Manager, views *render.Renderer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fail := func(status int, msg string) error {
			data, err := pageData(c, docs, sessions, "Upload")
			if err != nil {
				return err
			}
			data.Error = msg
			return renderPage(c, views, status, "upload", data)
		}

		fh, err := c.FormFile("fileupload")
		if err != nil {
			return fail(fiber.StatusUnprocessableEntity, msgNoFile)
		}
		f, err := fh.Open()
		if err != nil {
			return fail(fiber.StatusUnprocessableEntity, msgNoFile)
		}
		defer f.Close()

		name, err := docs.Upload(c.UserContext(), f, fh.Filename, fh.Size)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNoFile):
				return fail(fiber.StatusUnprocessableEntity, msgNoFile)
			case errors.Is(err, service.ErrBadExtension):
				return fail(fiber.StatusUnprocessableEntity, msgBadUploadExtension())
			case errors.Is(err, service.ErrTooLarge):
				return fail(fiber.StatusUnprocessableEntity, msgTooLarge)
			case errors.Is(err, store.ErrAlreadyExists):
				return fail(fiber.StatusConflict, msgAlreadyExists)
			default:
				return err
			}
		}

		if err := sessions.SetSuccess(c, name+" was uploaded."); err != nil {
			return err
		}
		return c.Redirect("/", fiber.StatusFound)
	}
}
