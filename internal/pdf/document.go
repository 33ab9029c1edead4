// Package pdf opens single-page plan documents and exposes their first page
// as positioned text runs. Extraction never reads the file twice: runs are
// loaded once and every rectangle is clipped against the in-memory slice.
package pdf

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/planclip/planclip/internal/common"
	"github.com/planclip/planclip/internal/geom"
)

// Document is an opened PDF with its first page fully read. All coordinates
// are page points with the origin at the top-left corner, y increasing
// downward.
type Document struct {
	path          string
	width, height float64
	runs          []TextRun
}

// Open reads the first page of the PDF at path. The file is gated through
// pdfcpu first so corrupt or non-PDF input fails with a clean error instead
// of surfacing from deep inside the text parser.
func Open(path string) (*Document, error) {
	pages, err := api.PageCountFile(path)
	if err != nil {
		return nil, common.NewAppError(common.ErrCodeDocument, fmt.Sprintf("open %s", path), err)
	}
	if pages < 1 {
		return nil, common.NewAppError(common.ErrCodeDocument, fmt.Sprintf("%s has no pages", path), nil)
	}

	dims, err := api.PageDimsFile(path)
	if err != nil || len(dims) == 0 {
		return nil, common.NewAppError(common.ErrCodeDocument, fmt.Sprintf("page dimensions of %s", path), err)
	}
	width, height := dims[0].Width, dims[0].Height

	runs, err := firstPageRuns(path, height)
	if err != nil {
		return nil, common.NewAppError(common.ErrCodeDocument, fmt.Sprintf("read %s", path), err)
	}

	return &Document{path: path, width: width, height: height, runs: runs}, nil
}

// firstPageRuns extracts the positioned text of page 1 and flips it into
// top-left orientation. The underlying parser panics on some malformed
// files; the recover turns that into an error at the per-document boundary.
func firstPageRuns(path string, pageHeight float64) (runs []TextRun, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("pdf parse: %v", p)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if r.NumPage() < 1 {
		return nil, fmt.Errorf("no pages")
	}
	page := r.Page(1)
	if page.V.IsNull() {
		return nil, fmt.Errorf("first page is null")
	}

	for _, t := range page.Content().Text {
		if t.S == "" {
			continue
		}
		runs = append(runs, TextRun{
			Text:     t.S,
			X:        t.X,
			Y:        pageHeight - t.Y, // PDF user space is bottom-up
			W:        t.W,
			FontSize: t.FontSize,
		})
	}
	return runs, nil
}

// Stem returns the document identifier: base name, extension stripped.
func (d *Document) Stem() string {
	return Stem(d.path)
}

// Stem derives a document identifier from any file path.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// PageSize returns the first page's width and height in points.
func (d *Document) PageSize() (w, h float64) {
	return d.width, d.height
}

// Runs returns the positioned text runs of the first page.
func (d *Document) Runs() []TextRun {
	return d.runs
}

// ExtractRect returns the whitespace-normalized text inside r, in page
// points. An empty result is not an error.
func (d *Document) ExtractRect(r geom.Rect) string {
	return ExtractRuns(d.runs, r)
}

// Close releases the document. Runs are fully materialized at Open, so this
// only exists to satisfy the batch extractor's Document contract.
func (d *Document) Close() error {
	return nil
}
