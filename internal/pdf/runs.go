package pdf

import (
	"sort"
	"strings"

	"github.com/planclip/planclip/internal/geom"
)

// TextRun is one positioned piece of page text. X, Y is the baseline origin
// in page points, top-left orientation; W is the advance width.
type TextRun struct {
	Text     string
	X, Y     float64
	W        float64
	FontSize float64
}

// inRect reports whether the run belongs to the clip rectangle: its
// horizontal span must overlap the rect and its baseline must fall in the
// vertical band.
func (t TextRun) inRect(r geom.Rect) bool {
	x1 := t.X + t.W
	if t.W <= 0 {
		x1 = t.X
	}
	if x1 < r.X0 || t.X > r.X1 {
		return false
	}
	return t.Y >= r.Y0 && t.Y <= r.Y1
}

// ExtractRuns clips runs to r and assembles them into a single line of text:
// top-to-bottom, left-to-right, tokens joined by single spaces with all
// interior whitespace collapsed.
func ExtractRuns(runs []TextRun, r geom.Rect) string {
	var hits []TextRun
	for _, t := range runs {
		if t.inRect(r) {
			hits = append(hits, t)
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Y != hits[j].Y {
			return hits[i].Y < hits[j].Y
		}
		return hits[i].X < hits[j].X
	})

	var b strings.Builder
	for _, t := range hits {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.Text)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
