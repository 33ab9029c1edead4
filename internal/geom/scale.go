package geom

// Scale is the render resolution in pixels per page point. It is the single
// place where preview pixels and page coordinates are reconciled, and it is
// always passed explicitly, never read from ambient state.
type Scale float64

// FromDPI converts a render DPI to pixels per point (72 points per inch).
func FromDPI(dpi int) Scale {
	return Scale(float64(dpi) / 72.0)
}

// ToPixels maps a page-point rectangle to preview-pixel space.
func (s Scale) ToPixels(r Rect) Rect {
	f := float64(s)
	return Rect{X0: r.X0 * f, Y0: r.Y0 * f, X1: r.X1 * f, Y1: r.Y1 * f}
}

// ToPoints maps a preview-pixel rectangle back to page points. Inverse of
// ToPixels for any non-zero scale.
func (s Scale) ToPoints(r Rect) Rect {
	f := float64(s)
	return Rect{X0: r.X0 / f, Y0: r.Y0 / f, X1: r.X1 / f, Y1: r.Y1 / f}
}
