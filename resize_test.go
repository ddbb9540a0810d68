package ggcv

import "testing"

func TestResize(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		fx, fy float64
		wantW  int
		wantH  int
	}{
		{"half", 8, 4, 0.5, 0.5, 4, 2},
		{"double", 3, 2, 2, 2, 6, 4},
		{"uneven", 10, 10, 0.25, 0.5, 3, 5},
		{"zero factor", 4, 4, 0, 1, 0, 0},
		{"negative factor", 4, 4, -1, 1, 0, 0},
		{"empty source", 0, 0, 2, 2, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewFrame(tt.w, tt.h)
			src.SetTo(BGR(10, 100, 200))
			dst := NewFrame(1, 1)
			Resize(dst, src, tt.fx, tt.fy)
			if dst.Width() != tt.wantW || dst.Height() != tt.wantH {
				t.Fatalf("Resize() = %dx%d, want %dx%d", dst.Width(), dst.Height(), tt.wantW, tt.wantH)
			}
			for y := range dst.Height() {
				for x := range dst.Width() {
					if got := dst.Pixel(x, y); got != BGR(10, 100, 200) {
						t.Fatalf("Pixel(%d, %d) = %v, want the uniform source color", x, y, got)
					}
				}
			}
		})
	}
}
