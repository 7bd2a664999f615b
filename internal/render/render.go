// Package render produces the HTML pages: markdown conversion through
// goldmark and server-side page rendering through embedded templates.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"filecms/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageNames lists every page parsed alongside the layout.
var pageNames = []string{
	"index", "view", "new", "edit", "rename", "upload",
	"signin", "register", "error",
}

// PageData carries everything the layout and pages need. Files is the
// listing sidebar shown on every page.
type PageData struct {
	Title    string
	Files    []model.Document
	SignedIn bool
	Username string
	Error    string
	Success  string

	// Doc is the document a page operates on (view/edit/rename).
	Doc string
	// Content is the raw text shown in the edit form.
	Content string
	// Rendered is pre-rendered markdown; already escaped by goldmark.
	Rendered template.HTML
}

// Renderer holds the parsed page templates and the markdown converter.
type Renderer struct {
	pages map[string]*template.Template
	md    goldmark.Markdown
}

// New parses the embedded templates and configures the markdown converter
// with GFM and syntax highlighting. Raw HTML in documents is passed
// through; documents are trusted content authored by signed-in users.
func New() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithUnsafe(),
		),
	)

	return &Renderer{pages: pages, md: md}, nil
}

// Page renders the named page into w.
func (r *Renderer) Page(w io.Writer, name string, data PageData) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// Markdown converts markdown source to HTML.
func (r *Renderer) Markdown(src []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
