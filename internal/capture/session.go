// Package capture runs the interactive template-capture phase as an
// explicit event loop: rectangles drawn in preview-pixel space are
// converted to page points at the preview's scale, previewed against the
// reference document, labeled, and accumulated last-write-wins until the
// operator closes the view and decides whether to persist.
package capture

import (
	"image"
	"log/slog"

	"github.com/planclip/planclip/internal/geom"
	"github.com/planclip/planclip/internal/template"
)

// Extractor yields the text inside a page-point rectangle of the reference
// document, so each capture shows the operator what the template will pull.
type Extractor interface {
	ExtractRect(geom.Rect) string
}

// Canvas is the rendered page the operator reads coordinates from.
// *preview.Preview implements it.
type Canvas interface {
	Scale() geom.Scale
	Size() image.Point
	MarkRect(geom.Rect)
	Save(path string) error
}

// Row is one confirmed capture: the label, the text it extracted from the
// reference document, and the rectangle in page points.
type Row struct {
	Label string
	Text  string
	Rect  geom.Rect
}

// Session accumulates labeled rectangles for one reference document.
type Session struct {
	ex     Extractor
	canvas Canvas
	view   View
	logger *slog.Logger
}

func NewSession(ex Extractor, canvas Canvas, view View, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{ex: ex, canvas: canvas, view: view, logger: logger}
}

// Run drives the capture loop until the view closes, then asks whether to
// persist. It returns the accumulated template, the per-capture rows, and
// whether the operator confirmed the save. An empty session never reaches
// the save prompt.
func (s *Session) Run(previewPath string) (*template.Template, []Row, bool, error) {
	if previewPath != "" {
		if err := s.canvas.Save(previewPath); err != nil {
			return nil, nil, false, err
		}
	}
	if err := s.view.ShowPreview(previewPath, s.canvas.Size()); err != nil {
		return nil, nil, false, err
	}

	tpl := template.New()
	var rows []Row

	for {
		pixRect, ok, err := s.view.NextRect()
		if err != nil {
			return nil, nil, false, err
		}
		if !ok {
			break
		}

		pixRect = pixRect.Canon()
		if !pixRect.Valid() {
			s.logger.Warn("capture.rect.degenerate", "rect", pixRect.String())
			continue
		}

		pageRect := s.canvas.Scale().ToPoints(pixRect)
		text := s.ex.ExtractRect(pageRect)

		label, err := s.view.AskLabel(text)
		if err != nil {
			return nil, nil, false, err
		}
		if label == "" {
			s.logger.Debug("capture.rect.discarded", "rect", pageRect.String())
			continue
		}

		if err := tpl.Put(label, pageRect); err != nil {
			s.logger.Warn("capture.rect.rejected", "label", label, "error", err)
			continue
		}
		rows = upsertRow(rows, Row{Label: label, Text: text, Rect: pageRect})

		s.canvas.MarkRect(pixRect)
		if previewPath != "" {
			if err := s.canvas.Save(previewPath); err != nil {
				s.logger.Warn("capture.preview.save", "error", err)
			}
		}
		s.logger.Info("capture.rect.ok", "label", label, "rect", pageRect.String(), "text", text)
	}

	if tpl.Len() == 0 {
		s.logger.Info("capture.empty", "msg", "no rectangles captured, nothing to save")
		return tpl, nil, false, nil
	}

	save, err := s.view.ConfirmSave(tpl.Len())
	if err != nil {
		return nil, nil, false, err
	}
	return tpl, rows, save, nil
}

// upsertRow mirrors the template's last-write-wins rule: redrawing a label
// replaces its row in place.
func upsertRow(rows []Row, row Row) []Row {
	for i := range rows {
		if rows[i].Label == row.Label {
			rows[i] = row
			return rows
		}
	}
	return append(rows, row)
}
