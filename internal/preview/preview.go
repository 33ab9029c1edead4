// Package preview renders the first page of a document into a PNG the
// operator reads pixel coordinates from during capture. The render places
// every text run at its scaled baseline position, so what the operator
// measures on screen is exactly what the extractor will clip.
package preview

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/planclip/planclip/internal/common"
	"github.com/planclip/planclip/internal/geom"
	"github.com/planclip/planclip/internal/pdf"
)

// Preview is a rendered page plus the scale it was rendered at. The scale
// returned by Scale is authoritative: when the requested DPI would exceed
// maxWidth the render is done at a reduced scale instead of resampling the
// bitmap afterwards, keeping the pixel->point mapping exact.
type Preview struct {
	dc    *gg.Context
	scale geom.Scale
}

// Render draws the page text onto a white canvas at scale pixels per point.
// maxWidth caps the canvas width in pixels; 0 disables the cap.
func Render(runs []pdf.TextRun, pageW, pageH float64, scale geom.Scale, maxWidth int) *Preview {
	if maxWidth > 0 && pageW*float64(scale) > float64(maxWidth) {
		scale = geom.Scale(float64(maxWidth) / pageW)
	}
	f := float64(scale)

	w := int(pageW*f + 0.5)
	h := int(pageH*f + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB(0.6, 0.6, 0.6)
	dc.SetLineWidth(1)
	dc.DrawRectangle(0, 0, float64(w)-1, float64(h)-1)
	dc.Stroke()

	dc.SetRGB(0, 0, 0)
	for _, t := range runs {
		dc.DrawString(t.Text, t.X*f, t.Y*f)
	}

	return &Preview{dc: dc, scale: scale}
}

// Scale returns the pixels-per-point factor the page was actually rendered
// at. Pixel rectangles read off the preview must be converted with this
// value, not with the requested DPI.
func (p *Preview) Scale() geom.Scale {
	return p.scale
}

// Size returns the canvas dimensions in pixels.
func (p *Preview) Size() image.Point {
	return image.Point{X: p.dc.Width(), Y: p.dc.Height()}
}

// MarkRect outlines a confirmed capture rectangle (pixel space) in red, the
// running record of what has been captured so far.
func (p *Preview) MarkRect(r geom.Rect) {
	r = r.Canon()
	p.dc.SetRGB(0.85, 0.1, 0.1)
	p.dc.SetLineWidth(2)
	p.dc.DrawRectangle(r.X0, r.Y0, r.Width(), r.Height())
	p.dc.Stroke()
}

// Save writes the preview to path; the format follows the extension.
func (p *Preview) Save(path string) error {
	if err := imaging.Save(p.dc.Image(), path); err != nil {
		return common.WrapError(err, "save preview")
	}
	return nil
}
