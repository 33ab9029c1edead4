// Package geom holds the page geometry shared by capture and extraction:
// axis-aligned rectangles in page points (origin top-left, y down, 1/72 inch
// per unit) and the explicit pixels-per-point scale that ties a rendered
// preview back to page coordinates.
package geom

import "fmt"

// Rect is an axis-aligned region. Valid rectangles satisfy X0 < X1, Y0 < Y1.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Valid reports whether the rectangle has positive width and height.
func (r Rect) Valid() bool {
	return r.X0 < r.X1 && r.Y0 < r.Y1
}

// Canon returns the rectangle with corners sorted so that (X0,Y0) is the
// top-left and (X1,Y1) the bottom-right, regardless of drag direction.
func (r Rect) Canon() Rect {
	if r.X0 > r.X1 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y0 > r.Y1 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}

// Intersects reports whether the two rectangles overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X0 < o.X1 && r.X1 > o.X0 && r.Y0 < o.Y1 && r.Y1 > o.Y0
}

func (r Rect) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f, %.2f)", r.X0, r.Y0, r.X1, r.Y1)
}
