package model

// Category classifies a document by its file extension.
type Category string

const (
	// CategoryText covers plain-text and markdown documents (.md, .txt, .doc).
	CategoryText Category = "text"
	// CategoryImage covers raster images (.jpg, .jpeg, .gif, .png).
	CategoryImage Category = "image"
	// CategoryPDF covers .pdf documents.
	CategoryPDF Category = "pdf"
	// CategoryUnknown marks documents with an unrecognized extension.
	// They are listed but cannot be viewed or created.
	CategoryUnknown Category = "unknown"
)
