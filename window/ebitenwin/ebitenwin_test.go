package ebitenwin

import (
	"image"
	"testing"
	"time"

	"github.com/gogpu/ggcv"
	"github.com/gogpu/ggcv/window"
)

func TestWheelDelta(t *testing.T) {
	tests := []struct {
		off  float64
		want int
	}{
		{1, 120},
		{-1, -120},
		{2.5, 300},
		{0.001, 1},
		{-0.001, -1},
	}
	for _, tt := range tests {
		if got := wheelDelta(tt.off); got != tt.want {
			t.Errorf("wheelDelta(%v) = %d, want %d", tt.off, got, tt.want)
		}
	}
}

func TestIsDoubleClick(t *testing.T) {
	start := time.Unix(1000, 0)
	tests := []struct {
		name  string
		after time.Duration
		pos   image.Point
		want  bool
	}{
		{"fast and close", 200 * time.Millisecond, image.Pt(12, 11), true},
		{"at slop", 100 * time.Millisecond, image.Pt(14, 6), true},
		{"too slow", 500 * time.Millisecond, image.Pt(10, 10), false},
		{"too far", 100 * time.Millisecond, image.Pt(15, 10), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New("t", 10, 10)
			w.lastClick, w.lastClickPos = start, image.Pt(10, 10)
			if got := w.isDoubleClick(start.Add(tt.after), tt.pos); got != tt.want {
				t.Errorf("isDoubleClick() = %v, want %v", got, tt.want)
			}
		})
	}

	w := New("t", 10, 10)
	if w.isDoubleClick(start, image.Pt(0, 0)) {
		t.Error("first click reported as double click")
	}
}

func TestWaitKeyAndClose(t *testing.T) {
	w := New("t", 10, 10)
	if got := w.WaitKey(0); got != window.NoKey {
		t.Errorf("WaitKey(0) = %d, want NoKey", got)
	}
	w.keys <- KeyEscape
	if got := w.WaitKey(time.Second); got != KeyEscape {
		t.Errorf("WaitKey() = %d, want Escape", got)
	}
	if !w.Visible() {
		t.Fatal("new window not visible")
	}
	if err := w.Close(); err != nil || w.Visible() {
		t.Errorf("Close() = %v, Visible() = %v", err, w.Visible())
	}
}

func TestShowConvertsPixels(t *testing.T) {
	w := New("t", 2, 1)
	f := ggcv.NewFrame(2, 1)
	f.SetPixel(1, 0, ggcv.BGR(1, 2, 3))
	w.Show(f)

	want := []byte{0, 0, 0, 0xff, 3, 2, 1, 0xff}
	if string(w.pix) != string(want) || !w.dirty {
		t.Errorf("pix = %v dirty=%v, want %v", w.pix, w.dirty, want)
	}
}

func TestRegistered(t *testing.T) {
	if !window.IsRegistered(DriverName) {
		t.Fatal("driver not registered")
	}
	if _, err := window.Open(DriverName, "t", 0, 10); err == nil {
		t.Error("Open() with zero width succeeded")
	}
}
