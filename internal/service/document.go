// Package service contains the business rules sitting between the HTTP
// handlers and the persistence layers: name validation, extension policy,
// collision handling, and credential checks.
package service

import (
	"context"
	"io"

	"filecms/internal/docname"
	"filecms/internal/model"
	"filecms/internal/store"
)

// DocumentContent is the service-level DTO for a viewable document.
type DocumentContent struct {
	model.Document
	Body []byte
}

// DocumentService defines the use cases for handling documents.
type DocumentService interface {
	// List returns every stored document in sorted order, classified by
	// extension. Unknown-category files appear in the listing too; the
	// listing mirrors disk.
	List(ctx context.Context) ([]model.Document, error)

	// View returns a document's content for serving. Missing documents and
	// documents with an unrecognized extension return store.ErrNotFound.
	View(ctx context.Context, name string) (*DocumentContent, error)

	// Raw returns a document's bytes without category checks, for the edit
	// form.
	Raw(ctx context.Context, name string) ([]byte, error)

	// Create validates and sanitizes rawName, creates an empty document,
	// and returns the stored name. Only text extensions are accepted.
	Create(ctx context.Context, rawName string) (string, error)

	// Save overwrites a document's content (the edit path).
	Save(ctx context.Context, name string, content []byte) error

	// Rename moves name to the sanitized form of rawNewName and returns the
	// stored name. A new name without an extension inherits the old one;
	// the final extension must be in the text set.
	Rename(ctx context.Context, name, rawNewName string) (string, error)

	// Duplicate copies a document to "<base>_copy.<ext>" and returns the
	// new name. A second duplicate collides with store.ErrAlreadyExists.
	Duplicate(ctx context.Context, name string) (string, error)

	// Delete removes a document permanently.
	Delete(ctx context.Context, name string) error

	// Upload stores uploaded content under the sanitized filename. The size
	// limit is checked before anything is written.
	Upload(ctx context.Context, r io.Reader, filename string, size int64) (string, error)
}

// documentService is a concrete implementation of DocumentService.
type documentService struct {
	store    store.Store
	maxBytes int64
}

// NewDocumentService constructs a DocumentService over the given store.
// maxUploadBytes is the upload size limit; uploads of that size or more
// are rejected.
func NewDocumentService(s store.Store, maxUploadBytes int64) DocumentService {
	return &documentService{store: s, maxBytes: maxUploadBytes}
}

func (s *documentService) List(ctx context.Context) ([]model.Document, error) {
	names, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	docs := make([]model.Document, 0, len(names))
	for _, name := range names {
		docs = append(docs, model.Document{
			Name:        name,
			Category:    docname.Classify(name),
			ContentType: docname.ContentType(name),
		})
	}
	return docs, nil
}

func (s *documentService) View(ctx context.Context, name string) (*DocumentContent, error) {
	category := docname.Classify(name)
	if category == model.CategoryUnknown {
		return nil, store.ErrNotFound
	}
	body, err := s.store.Read(ctx, name)
	if err != nil {
		return nil, err
	}
	return &DocumentContent{
		Document: model.Document{
			Name:        name,
			Category:    category,
			ContentType: docname.ContentType(name),
		},
		Body: body,
	}, nil
}

func (s *documentService) Raw(ctx context.Context, name string) ([]byte, error) {
	return s.store.Read(ctx, name)
}

func (s *documentService) Create(ctx context.Context, rawName string) (string, error) {
	name := docname.Sanitize(rawName)
	if base, _ := docname.SplitExt(name); base == "" {
		return "", ErrNameRequired
	}
	if !docname.AllowedText(name) {
		return "", ErrBadExtension
	}
	if err := s.store.Create(ctx, name, nil); err != nil {
		return "", err
	}
	return name, nil
}

func (s *documentService) Save(ctx context.Context, name string, content []byte) error {
	return s.store.Write(ctx, name, content)
}

func (s *documentService) Rename(ctx context.Context, name, rawNewName string) (string, error) {
	newName := docname.Sanitize(rawNewName)
	base, ext := docname.SplitExt(newName)
	if base == "" {
		return "", ErrNameRequired
	}
	if ext == "" {
		// Bare base names inherit the current extension.
		_, ext = docname.SplitExt(docname.Sanitize(name))
		newName = base + ext
	}
	if !docname.AllowedText(newName) {
		return "", ErrBadExtension
	}
	if err := s.store.Rename(ctx, name, newName); err != nil {
		return "", err
	}
	return newName, nil
}

func (s *documentService) Duplicate(ctx context.Context, name string) (string, error) {
	content, err := s.store.Read(ctx, name)
	if err != nil {
		return "", err
	}
	copyName := docname.CopyName(name)
	if err := s.store.Create(ctx, copyName, content); err != nil {
		return "", err
	}
	return copyName, nil
}

func (s *documentService) Delete(ctx context.Context, name string) error {
	return s.store.Delete(ctx, name)
}

func (s *documentService) Upload(ctx context.Context, r io.Reader, filename string, size int64) (string, error) {
	if r == nil || filename == "" {
		return "", ErrNoFile
	}
	if !docname.AllowedUpload(filename) {
		return "", ErrBadExtension
	}
	if size >= s.maxBytes {
		return "", ErrTooLarge
	}
	name := docname.Sanitize(filename)
	if err := s.store.SaveUpload(ctx, name, r); err != nil {
		return "", err
	}
	return name, nil
}
