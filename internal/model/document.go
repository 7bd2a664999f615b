package model

// Document represents a stored file in the data directory.
// This is a pure domain model with no storage-specific dependencies;
// it can be used across layers (HTTP, service, store) without coupling
// to the filesystem.
type Document struct {
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	ContentType string   `json:"content_type"`
}
