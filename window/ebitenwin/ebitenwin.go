// Package ebitenwin is a desktop window driver built on Ebitengine.
//
// Ebitengine owns the main goroutine, so Run starts the event loop on a
// separate goroutine and runs the game loop on the caller's. Mouse input
// is polled on every tick and reported through the mouse callback using
// the input package event codes; keys are handed to WaitKey over a
// buffered channel.
//
// Importing the package registers the "ebiten" driver.
package ebitenwin

import (
	"errors"
	"fmt"
	"image"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/ggcv"
	"github.com/gogpu/ggcv/input"
	"github.com/gogpu/ggcv/window"
)

// DriverName is the registry name of this driver.
const DriverName = "ebiten"

const (
	// doubleClickInterval and doubleClickSlop bound two left presses that
	// count as a double click.
	doubleClickInterval = 400 * time.Millisecond
	doubleClickSlop     = 4

	// wheelNotch is the wheel delta reported per notch.
	wheelNotch = 120

	keyBuffer = 64
	ticksPerS = 60
)

// Key codes for non-printable keys.
const (
	KeyBackspace = 8
	KeyTab       = 9
	KeyEnter     = 13
	KeyEscape    = 27
)

func init() {
	window.Register(DriverName, func(title string, width, height int) (window.Window, error) {
		if width <= 0 || height <= 0 {
			return nil, fmt.Errorf("ebitenwin: invalid size %dx%d", width, height)
		}
		return New(title, width, height), nil
	})
}

// Window is an Ebitengine-backed window.
type Window struct {
	title  string
	width  int
	height int
	keys   chan int
	closed atomic.Bool
	done   chan struct{}

	mu    sync.Mutex
	cb    window.MouseCallback
	pix   []byte
	size  image.Point
	dirty bool
	img   *ebiten.Image

	// Owned by the Ebitengine update goroutine.
	cursor       image.Point
	lastClick    time.Time
	lastClickPos image.Point
}

// New creates a window. Nothing is displayed until Run.
func New(title string, width, height int) *Window {
	return &Window{
		title:  title,
		width:  width,
		height: height,
		keys:   make(chan int, keyBuffer),
		done:   make(chan struct{}),
		cursor: image.Pt(-1, -1),
	}
}

// SetMouseCallback implements window.Window.
func (w *Window) SetMouseCallback(cb window.MouseCallback) {
	w.mu.Lock()
	w.cb = cb
	w.mu.Unlock()
}

// WaitKey implements window.Window.
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
	return !w.closed.Load()
}

// Show implements window.Window. The pixels are converted and copied; the
// next Draw uploads them.
func (w *Window) Show(f *ggcv.Frame) {
	w.mu.Lock()
	defer w.mu.Unlock()
	size := image.Pt(f.Width(), f.Height())
	if n := size.X * size.Y * 4; len(w.pix) != n {
		w.pix = make([]byte, n)
	}
	f.WriteRGBA(w.pix)
	w.size = size
	w.dirty = true
}

// Run implements window.Window. It must be called from the main goroutine.
func (w *Window) Run(loop func() error) error {
	errc := make(chan error, 1)
	go func() {
		errc <- loop()
		close(w.done)
	}()

	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(ticksPerS)
	ggcv.Logger().Info("ebitenwin: window opened", "title", w.title, "width", w.width, "height", w.height)

	err := ebiten.RunGame(&game{w: w})
	w.closed.Store(true)
	loopErr := <-errc
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebitenwin: %w", err)
	}
	return loopErr
}

// Close implements window.Window.
func (w *Window) Close() error {
	w.closed.Store(true)
	return nil
}

// game adapts Window to ebiten.Game.
type game struct {
	w *Window
}

func (g *game) Update() error {
	w := g.w
	if ebiten.IsWindowBeingClosed() {
		w.closed.Store(true)
	}
	if w.closed.Load() {
		return ebiten.Termination
	}
	select {
	case <-w.done:
		return ebiten.Termination
	default:
	}
	w.pollMouse(time.Now())
	w.pollKeys()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	w := g.w
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pix == nil {
		return
	}
	if w.img == nil || w.img.Bounds().Size() != w.size {
		if w.img != nil {
			w.img.Deallocate()
		}
		w.img = ebiten.NewImage(w.size.X, w.size.Y)
		w.dirty = true
	}
	if w.dirty {
		w.img.WritePixels(w.pix)
		w.dirty = false
	}
	screen.DrawImage(w.img, nil)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.w.width, g.w.height
}

// modifierFlags reports the held buttons and modifier keys.
func modifierFlags() input.Flags {
	var f input.Flags
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		f |= input.FlagLeftButton
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		f |= input.FlagRightButton
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		f |= input.FlagMiddleButton
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		f |= input.FlagCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		f |= input.FlagShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		f |= input.FlagAlt
	}
	return f
}

// pollMouse reports this tick's pointer activity, in the order move,
// presses, releases, wheel.
func (w *Window) pollMouse(now time.Time) {
	w.mu.Lock()
	cb := w.cb
	w.mu.Unlock()
	if cb == nil {
		return
	}

	x, y := ebiten.CursorPosition()
	pos := image.Pt(x, y)
	flags := modifierFlags()
	emit := func(kind input.EventKind, f input.Flags) {
		cb(input.MouseEvent{Kind: kind, X: x, Y: y, Flags: f})
	}

	if pos != w.cursor {
		w.cursor = pos
		emit(input.EventMove, flags)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		emit(input.EventLeftDown, flags)
		if w.isDoubleClick(now, pos) {
			emit(input.EventLeftDoubleClick, flags)
			w.lastClick = time.Time{}
		} else {
			w.lastClick, w.lastClickPos = now, pos
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		emit(input.EventRightDown, flags)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		emit(input.EventMiddleDown, flags)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		emit(input.EventLeftUp, flags)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		emit(input.EventRightUp, flags)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonMiddle) {
		emit(input.EventMiddleUp, flags)
	}

	dx, dy := ebiten.Wheel()
	if dy != 0 {
		emit(input.EventWheel, input.WithWheelDelta(flags, wheelDelta(dy)))
	}
	if dx != 0 {
		emit(input.EventHorizontalWheel, input.WithWheelDelta(flags, wheelDelta(dx)))
	}
}

func (w *Window) isDoubleClick(now time.Time, pos image.Point) bool {
	if w.lastClick.IsZero() || now.Sub(w.lastClick) > doubleClickInterval {
		return false
	}
	d := pos.Sub(w.lastClickPos)
	return abs(d.X) <= doubleClickSlop && abs(d.Y) <= doubleClickSlop
}

// wheelDelta scales a wheel offset to notch units, keeping its sign for
// offsets smaller than one unit.
func wheelDelta(off float64) int {
	d := int(off * wheelNotch)
	if d == 0 {
		if off > 0 {
			return 1
		}
		return -1
	}
	return d
}

// pollKeys queues typed characters and the non-printable keys the loop
// understands.
func (w *Window) pollKeys() {
	send := func(k int) {
		select {
		case w.keys <- k:
		default:
		}
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		send(int(r))
	}
	special := []struct {
		key  ebiten.Key
		code int
	}{
		{ebiten.KeyBackspace, KeyBackspace},
		{ebiten.KeyTab, KeyTab},
		{ebiten.KeyEnter, KeyEnter},
		{ebiten.KeyEscape, KeyEscape},
	}
	for _, s := range special {
		if inpututil.IsKeyJustPressed(s.key) {
			send(s.code)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
