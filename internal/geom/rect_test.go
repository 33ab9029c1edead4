package geom

import (
	"math"
	"testing"
)

func TestRectCanon(t *testing.T) {
	tests := []struct {
		name string
		in   Rect
		want Rect
	}{
		{"already canonical", Rect{10, 10, 100, 40}, Rect{10, 10, 100, 40}},
		{"dragged right-to-left", Rect{100, 10, 10, 40}, Rect{10, 10, 100, 40}},
		{"dragged bottom-to-top", Rect{10, 40, 100, 10}, Rect{10, 10, 100, 40}},
		{"both reversed", Rect{100, 40, 10, 10}, Rect{10, 10, 100, 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Canon()
			if got != tt.want {
				t.Fatalf("Canon() = %v, want %v", got, tt.want)
			}
			if !got.Valid() {
				t.Fatalf("Canon() produced invalid rect %v", got)
			}
		})
	}
}

func TestRectValid(t *testing.T) {
	if (Rect{10, 10, 10, 40}).Valid() {
		t.Error("zero-width rect reported valid")
	}
	if (Rect{10, 40, 100, 10}).Valid() {
		t.Error("inverted rect reported valid")
	}
	if !(Rect{10, 10, 100, 40}).Valid() {
		t.Error("proper rect reported invalid")
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{10, 10, 100, 40}
	if !a.Intersects(Rect{50, 20, 150, 60}) {
		t.Error("overlapping rects reported disjoint")
	}
	if a.Intersects(Rect{10, 50, 100, 80}) {
		t.Error("disjoint rects reported overlapping")
	}
	// touching edges do not overlap
	if a.Intersects(Rect{100, 10, 200, 40}) {
		t.Error("edge-touching rects reported overlapping")
	}
}

func TestScaleRoundTrip(t *testing.T) {
	rects := []Rect{
		{10, 10, 100, 40},
		{0.5, 0.25, 612, 792},
		{33.33, 47.19, 201.02, 514.77},
	}
	for _, dpi := range []int{72, 150, 300} {
		s := FromDPI(dpi)
		for _, r := range rects {
			got := s.ToPoints(s.ToPixels(r))
			for i, pair := range [][2]float64{
				{got.X0, r.X0}, {got.Y0, r.Y0}, {got.X1, r.X1}, {got.Y1, r.Y1},
			} {
				if math.Abs(pair[0]-pair[1]) > 1e-9 {
					t.Fatalf("dpi=%d rect=%v coord %d: got %v want %v", dpi, r, i, pair[0], pair[1])
				}
			}
		}
	}
}

func TestFromDPI(t *testing.T) {
	if s := FromDPI(72); s != 1 {
		t.Fatalf("FromDPI(72) = %v, want 1", s)
	}
	if s := FromDPI(144); s != 2 {
		t.Fatalf("FromDPI(144) = %v, want 2", s)
	}
}
