package extract

import (
	"github.com/planclip/planclip/internal/geom"
	"github.com/planclip/planclip/internal/pdf"
)

// Document is one openable plan document: an identifier plus rectangle
// extraction on its first page.
type Document interface {
	Stem() string
	ExtractRect(geom.Rect) string
	Close() error
}

// Source opens documents by path. The production source wraps the PDF
// engine; tests substitute canned documents.
type Source interface {
	Open(path string) (Document, error)
}

type pdfSource struct{}

func (pdfSource) Open(path string) (Document, error) {
	return pdf.Open(path)
}

// NewPDFSource returns the production Source backed by the PDF engine.
func NewPDFSource() Source {
	return pdfSource{}
}
