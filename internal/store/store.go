// Package store contains the document persistence layer: a filesystem
// implementation rooted at the configured data directory, and an optional
// invalidate-on-write listing cache decorator.
package store

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrNotFound is returned when a name does not resolve to a regular file.
	ErrNotFound = errors.New("document not found")
	// ErrAlreadyExists is returned when a create or rename collides with an
	// existing document.
	ErrAlreadyExists = errors.New("document already exists")
	// ErrInvalidName is returned for names that would escape the data
	// directory or are empty.
	ErrInvalidName = errors.New("invalid document name")
)

// Store defines persistence operations for documents. No business rules
// here; name validation and collision policy live in the service layer,
// except for the path-safety checks every implementation must enforce.
type Store interface {
	// List enumerates the stored document names in sorted order. Every call
	// performs a fresh scan so the result always reflects current disk state.
	List(ctx context.Context) ([]string, error)

	// Read returns a document's raw bytes.
	Read(ctx context.Context, name string) ([]byte, error)

	// Create writes a new document. Fails with ErrAlreadyExists on collision.
	Create(ctx context.Context, name string, content []byte) error

	// Write overwrites a document's content unconditionally (upsert).
	Write(ctx context.Context, name string, content []byte) error

	// Rename moves a document. Fails with ErrNotFound if the old name is
	// missing and ErrAlreadyExists if the new name collides.
	Rename(ctx context.Context, oldName, newName string) error

	// Delete removes a document permanently.
	Delete(ctx context.Context, name string) error

	// SaveUpload streams uploaded content into a new document. Fails with
	// ErrAlreadyExists on collision; on failure nothing is written, so the
	// caller's temporary upload is left untouched.
	SaveUpload(ctx context.Context, name string, r io.Reader) error
}
