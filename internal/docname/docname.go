// Package docname implements the naming rules for stored documents:
// canonicalization of user-supplied file names and classification of
// file extensions into content categories.
package docname

import (
	"strings"

	"filecms/internal/model"
)

var textExtensions = map[string]bool{
	".md":  true,
	".txt": true,
	".doc": true,
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".png":  true,
}

var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".png":  "image/png",
}

// TextExtensions returns the recognized text extensions in a stable order,
// for use in user-facing validation messages.
func TextExtensions() []string {
	return []string{".md", ".txt", ".doc"}
}

// UploadExtensions returns every extension accepted by the upload path
// (text, image and pdf) in a stable order.
func UploadExtensions() []string {
	return []string{".md", ".txt", ".doc", ".jpg", ".jpeg", ".gif", ".png", ".pdf"}
}

// SplitExt splits a file name on its last dot. The extension includes the
// dot; a name with no dot yields an empty extension. A leading dot with no
// base (".gitignore" style) is treated as extension-only.
func SplitExt(name string) (base, ext string) {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return name, ""
	}
	return name[:i], name[i:]
}

// Sanitize normalizes a user-supplied file name into its canonical stored
// form: outer whitespace trimmed, internal whitespace and quote characters
// removed from the base, and the extension lower-cased. The base's own
// casing is preserved. An empty base is not rejected here; callers validate
// emptiness.
func Sanitize(raw string) string {
	base, ext := SplitExt(strings.TrimSpace(raw))
	base = strings.Join(strings.Fields(base), "")
	base = strings.NewReplacer(`'`, "", `"`, "").Replace(base)
	return base + strings.ToLower(ext)
}

// Classify maps a file name to its content category based on the extension.
// Matching is case-insensitive.
func Classify(name string) model.Category {
	_, ext := SplitExt(name)
	ext = strings.ToLower(ext)
	switch {
	case textExtensions[ext]:
		return model.CategoryText
	case imageExtensions[ext]:
		return model.CategoryImage
	case ext == ".pdf":
		return model.CategoryPDF
	default:
		return model.CategoryUnknown
	}
}

// ContentType returns the HTTP content type a document is served with.
// Markdown is served as rendered HTML. Unknown extensions return "".
func ContentType(name string) string {
	_, ext := SplitExt(name)
	ext = strings.ToLower(ext)
	switch {
	case ext == ".md":
		return "text/html; charset=utf-8"
	case textExtensions[ext]:
		return "text/plain; charset=utf-8"
	case imageExtensions[ext]:
		return imageContentTypes[ext]
	case ext == ".pdf":
		return "application/pdf"
	default:
		return ""
	}
}

// IsMarkdown reports whether the document is rendered as markdown.
func IsMarkdown(name string) bool {
	_, ext := SplitExt(name)
	return strings.ToLower(ext) == ".md"
}

// AllowedText reports whether the name carries a recognized text extension.
// Creation and rename accept only these.
func AllowedText(name string) bool {
	return Classify(name) == model.CategoryText
}

// AllowedUpload reports whether the name carries any recognized extension.
// Upload accepts the full union of text, image and pdf.
func AllowedUpload(name string) bool {
	return Classify(name) != model.CategoryUnknown
}

// CopyName derives the name a duplicate is stored under by inserting
// "_copy" before the final extension.
func CopyName(name string) string {
	base, ext := SplitExt(name)
	return base + "_copy" + ext
}
