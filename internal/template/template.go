// Package template stores the label -> rectangle mapping captured from a
// reference document and replayed by the batch extractor. Templates are
// immutable once saved; a changed page layout means capturing a new one.
package template

import (
	"fmt"
	"math"
	"strings"

	"github.com/planclip/planclip/internal/common"
	"github.com/planclip/planclip/internal/geom"
)

// Template is an ordered collection of labeled rectangles in page points.
// Labels are unique; re-putting a label replaces its rectangle in place
// (last write wins) without changing label order.
type Template struct {
	labels []string
	rects  map[string]geom.Rect
}

func New() *Template {
	return &Template{rects: make(map[string]geom.Rect)}
}

// Put adds or replaces the rectangle for label. The rectangle is
// canonicalized first; an empty label or a degenerate rectangle is rejected.
func (t *Template) Put(label string, r geom.Rect) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return common.NewAppError(common.ErrCodeTemplate, "label must not be empty", nil)
	}
	r = r.Canon()
	if !r.Valid() {
		return common.NewAppError(common.ErrCodeTemplate,
			fmt.Sprintf("degenerate rectangle %v for label %q", r, label), nil)
	}
	if _, ok := t.rects[label]; !ok {
		t.labels = append(t.labels, label)
	}
	t.rects[label] = r
	return nil
}

// Labels returns the labels in first-capture order.
func (t *Template) Labels() []string {
	out := make([]string, len(t.labels))
	copy(out, t.labels)
	return out
}

// Get returns the rectangle for label.
func (t *Template) Get(label string) (geom.Rect, bool) {
	r, ok := t.rects[label]
	return r, ok
}

func (t *Template) Len() int {
	return len(t.labels)
}

// round2 matches the two-decimal precision of the persisted form, so a
// saved-then-loaded template compares equal to the in-memory one.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
