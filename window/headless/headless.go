// Package headless provides an in-memory window driver.
//
// The window never touches a display: shown frames are kept in memory,
// keys and mouse events are injected by the caller, and closing is a
// method call. It backs tests and unattended runs.
//
// Importing the package registers the "headless" driver.
package headless

import (
	"sync"
	"time"

	"github.com/gogpu/ggcv"
	"github.com/gogpu/ggcv/input"
	"github.com/gogpu/ggcv/window"
)

// DriverName is the registry name of this driver.
const DriverName = "headless"

func init() {
	window.Register(DriverName, func(title string, width, height int) (window.Window, error) {
		return New(title, width, height), nil
	})
}

// keyBuffer is the number of keys that can be queued before PressKey drops.
const keyBuffer = 256

// Window is an in-memory window. It is safe for concurrent use.
type Window struct {
	title  string
	width  int
	height int
	keys   chan int

	mu       sync.Mutex
	cb       window.MouseCallback
	visible  bool
	frames   int
	last     *ggcv.Frame
	snapshot string
}

// Option configures a Window.
type Option func(*Window)

// WithSnapshot makes Close write the last shown frame to path as PNG.
func WithSnapshot(path string) Option {
	return func(w *Window) {
		w.snapshot = path
	}
}

// New creates a visible headless window.
func New(title string, width, height int, opts ...Option) *Window {
	w := &Window{
		title:   title,
		width:   width,
		height:  height,
		keys:    make(chan int, keyBuffer),
		visible: true,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Title returns the window title.
func (w *Window) Title() string {
	return w.title
}

// SetMouseCallback implements window.Window.
func (w *Window) SetMouseCallback(cb window.MouseCallback) {
	w.mu.Lock()
	w.cb = cb
	w.mu.Unlock()
}

// WaitKey implements window.Window. A non-positive timeout polls without
// blocking.
func (w *Window) WaitKey(timeout time.Duration) int {
	if timeout <= 0 {
		select {
		case k := <-w.keys:
			return k
		default:
			return window.NoKey
		}
	}
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case k := <-w.keys:
		return k
	case <-t.C:
		return window.NoKey
	}
}

// Visible implements window.Window.
func (w *Window) Visible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible
}

// Show implements window.Window. The frame is copied.
func (w *Window) Show(f *ggcv.Frame) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.last = f.Clone()
	w.frames++
}

// Run implements window.Window by calling loop on the current goroutine.
func (w *Window) Run(loop func() error) error {
	return loop()
}

// Close implements window.Window.
func (w *Window) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.visible = false
	if w.snapshot != "" && w.last != nil {
		return w.last.SavePNG(w.snapshot)
	}
	return nil
}

// PressKey queues a key for WaitKey. Keys beyond the buffer are dropped.
func (w *Window) PressKey(key int) {
	select {
	case w.keys <- key:
	default:
	}
}

// Mouse delivers ev to the registered callback synchronously.
func (w *Window) Mouse(ev input.MouseEvent) {
	w.mu.Lock()
	cb := w.cb
	w.mu.Unlock()
	if cb != nil {
		cb(ev)
	}
}

// CloseWindow simulates the user closing the window.
func (w *Window) CloseWindow() {
	w.mu.Lock()
	w.visible = false
	w.mu.Unlock()
}

// Frames returns the number of frames shown.
func (w *Window) Frames() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.frames
}

// Last returns a copy of the last shown frame, or nil.
func (w *Window) Last() *ggcv.Frame {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.last == nil {
		return nil
	}
	return w.last.Clone()
}
