package ggcv

import (
	"image"
	"testing"
)

// painted returns the set of non-black pixels.
func painted(f *Frame) map[image.Point]bool {
	m := make(map[image.Point]bool)
	for y := range f.Height() {
		for x := range f.Width() {
			if f.Pixel(x, y) != Black {
				m[image.Pt(x, y)] = true
			}
		}
	}
	return m
}

// boxPoints returns the points of the inclusive box [x0,x1]x[y0,y1].
func boxPoints(x0, y0, x1, y1 int) map[image.Point]bool {
	m := make(map[image.Point]bool)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			m[image.Pt(x, y)] = true
		}
	}
	return m
}

func equalSets(a, b map[image.Point]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for p := range a {
		if !b[p] {
			return false
		}
	}
	return true
}

func TestRectangle_Filled(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 image.Point
	}{
		{"normal", image.Pt(2, 2), image.Pt(5, 4)},
		{"inverted", image.Pt(5, 4), image.Pt(2, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFrame(10, 10)
			Rectangle(f, tt.p1, tt.p2, White, Filled)
			if got, want := painted(f), boxPoints(2, 2, 5, 4); !equalSets(got, want) {
				t.Errorf("painted %d pixels, want the 12 of box (2,2)-(5,4)", len(got))
			}
		})
	}
}

func TestRectangle_Outline(t *testing.T) {
	tests := []struct {
		name      string
		thickness int
		want      map[image.Point]bool
	}{
		{"zero is one", 0, outline(2, 2, 6, 5, 0, 0)},
		{"one", 1, outline(2, 2, 6, 5, 0, 0)},
		{"two", 2, outline(2, 2, 6, 5, -1, 0)},
		{"three", 3, outline(2, 2, 6, 5, -1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFrame(12, 12)
			Rectangle(f, image.Pt(2, 2), image.Pt(6, 5), White, tt.thickness)
			if got := painted(f); !equalSets(got, tt.want) {
				t.Errorf("painted %d pixels, want %d", len(got), len(tt.want))
			}
		})
	}
}

// outline returns the four edge bands of rectangle (x1,y1)-(x2,y2) covering
// offsets [lo, hi] around each edge line.
func outline(x1, y1, x2, y2, lo, hi int) map[image.Point]bool {
	m := make(map[image.Point]bool)
	for _, b := range []map[image.Point]bool{
		boxPoints(x1+lo, y1+lo, x2+hi, y1+hi),
		boxPoints(x1+lo, y2+lo, x2+hi, y2+hi),
		boxPoints(x1+lo, y1+lo, x1+hi, y2+hi),
		boxPoints(x2+lo, y1+lo, x2+hi, y2+hi),
	} {
		for p := range b {
			m[p] = true
		}
	}
	return m
}

func TestRectangle_Clipped(t *testing.T) {
	f := NewFrame(5, 5)
	Rectangle(f, image.Pt(-10, -10), image.Pt(2, 2), White, Filled)
	if got, want := painted(f), boxPoints(0, 0, 2, 2); !equalSets(got, want) {
		t.Errorf("painted %d pixels, want 9", len(got))
	}
	Rectangle(f, image.Pt(50, 50), image.Pt(60, 60), White, 3)
	if got := len(painted(f)); got != 9 {
		t.Errorf("off-frame rectangle painted pixels: %d", got-9)
	}
}

func TestFillConvexPoly(t *testing.T) {
	f := NewFrame(30, 30)
	FillConvexPoly(f, []image.Point{{0, 0}, {20, 0}, {0, 20}}, White)

	for _, p := range []image.Point{{2, 2}, {5, 5}, {15, 2}, {2, 15}} {
		if f.Pixel(p.X, p.Y) != White {
			t.Errorf("inside pixel %v not filled", p)
		}
	}
	for _, p := range []image.Point{{15, 15}, {25, 25}, {21, 1}} {
		if f.Pixel(p.X, p.Y) != Black {
			t.Errorf("outside pixel %v filled", p)
		}
	}
}

func TestFillConvexPoly_Canvas(t *testing.T) {
	f := NewFrame(800, 600)
	FillConvexPoly(f, []image.Point{{100, 100}, {200, 100}, {100, 200}}, White)

	// Half of a 100x100 box, give or take the diagonal.
	if n := len(painted(f)); n < 4800 || n > 5300 {
		t.Errorf("painted %d pixels, want about 5000", n)
	}
	if f.Pixel(120, 120) != White {
		t.Error("pixel (120, 120) not filled")
	}
	if f.Pixel(180, 180) != Black || f.Pixel(99, 150) != Black {
		t.Error("pixel outside the triangle filled")
	}
}

func TestFillConvexPoly_FirstPointNotCorner(t *testing.T) {
	f := NewFrame(100, 100)
	FillConvexPoly(f, []image.Point{{50, 10}, {90, 50}, {50, 90}, {10, 50}}, White)

	for _, p := range []image.Point{{50, 50}, {50, 12}, {88, 50}, {50, 88}, {12, 50}} {
		if f.Pixel(p.X, p.Y) != White {
			t.Errorf("inside pixel %v not filled", p)
		}
	}
	for _, p := range []image.Point{{15, 15}, {85, 85}, {85, 15}, {15, 85}} {
		if f.Pixel(p.X, p.Y) != Black {
			t.Errorf("outside pixel %v filled", p)
		}
	}
}

func TestFillConvexPoly_Degenerate(t *testing.T) {
	f := NewFrame(10, 10)
	FillConvexPoly(f, []image.Point{{0, 0}, {9, 9}}, White)
	FillConvexPoly(f, nil, White)
	if n := len(painted(f)); n != 0 {
		t.Errorf("degenerate polygon painted %d pixels", n)
	}
}

func TestFillEllipse(t *testing.T) {
	f := NewFrame(30, 30)
	FillEllipse(f, image.Pt(10, 10), image.Pt(10, 6), White)

	for _, p := range []image.Point{{10, 10}, {14, 10}, {6, 10}, {10, 12}, {10, 8}} {
		if f.Pixel(p.X, p.Y) != White {
			t.Errorf("inside pixel %v not filled", p)
		}
	}
	for _, p := range []image.Point{{16, 10}, {4, 10}, {10, 14}, {10, 6}, {14, 13}} {
		if f.Pixel(p.X, p.Y) != Black {
			t.Errorf("outside pixel %v filled", p)
		}
	}
}

func TestFillEllipse_Empty(t *testing.T) {
	f := NewFrame(10, 10)
	FillEllipse(f, image.Pt(5, 5), image.Pt(0, 4), White)
	FillEllipse(f, image.Pt(5, 5), image.Pt(-3, 4), White)
	if n := len(painted(f)); n != 0 {
		t.Errorf("empty ellipse painted %d pixels", n)
	}
}

func TestFillEllipse_PartlyOffFrame(t *testing.T) {
	f := NewFrame(10, 10)
	FillEllipse(f, image.Pt(0, 0), image.Pt(8, 8), White)
	if f.Pixel(0, 0) != White || f.Pixel(2, 1) != White {
		t.Error("visible quarter not filled")
	}
	if f.Pixel(6, 6) != Black {
		t.Error("pixel outside the ellipse filled")
	}
}
