// Package demo runs the two-panel GUI demo: the event loop, the "Demo"
// widget panel and the "Preview" video panel.
package demo

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/ggcv"
	"github.com/gogpu/ggcv/capture"
	"github.com/gogpu/ggcv/gui"
	"github.com/gogpu/ggcv/input"
	"github.com/gogpu/ggcv/internal/config"
	"github.com/gogpu/ggcv/render"
	"github.com/gogpu/ggcv/window"
)

// State is the loop state.
type State int

const (
	StateRunning State = iota
	StateClosing
	StateTerminated
)

var stateNames = [...]string{
	StateRunning:    "Running",
	StateClosing:    "Closing",
	StateTerminated: "Terminated",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Printable key codes are injected as characters.
const (
	firstPrintable = 0x20
	lastPrintable  = 0x7e
)

// fontHeight is the GUI line height.
const fontHeight = 8

// App owns the frame buffer, GUI context and font for the lifetime of the
// loop. It is driven from a single goroutine.
type App struct {
	cfg      config.Config
	win      window.Window
	src      capture.Source
	log      *slog.Logger
	ctx      *gui.Context
	font     *ggcv.FontDescriptor
	bridge   *input.Bridge
	renderer *render.Renderer
	frame    *ggcv.Frame
	bg       ggcv.Scalar

	state  State
	frames int

	preview preview
	widgets widgets
}

// widgets is the state of the Demo panel.
type widgets struct {
	op       int
	property int
	checkbox bool
	typed    string
	presses  int
}

const (
	opEasy = iota
	opHard
)

// New wires an App to win and src and registers the mouse callback.
func New(cfg config.Config, win window.Window, src capture.Source) *App {
	font := &ggcv.FontDescriptor{Face: ggcv.FaceRegular, Thickness: 1}
	a := &App{
		cfg:      cfg,
		win:      win,
		src:      src,
		log:      ggcv.Logger().With("component", "demo"),
		ctx:      gui.NewContext(gui.UserFont{Height: fontHeight, Handle: font}),
		font:     font,
		bridge:   input.NewBridge(nil),
		renderer: render.New(),
		frame:    ggcv.NewFrame(cfg.Window.Width, cfg.Window.Height),
		bg:       ggcv.Scalar(cfg.Style.Background),
		widgets:  widgets{op: opEasy, property: 20, checkbox: true},
		preview:  newPreview(src, cfg.Capture.OnFailure),
	}
	win.SetMouseCallback(a.bridge.Callback())
	return a
}

// State returns the loop state.
func (a *App) State() State {
	return a.state
}

// Frames returns the number of frames displayed.
func (a *App) Frames() int {
	return a.frames
}

// Frame returns the frame buffer. It is overwritten every Step.
func (a *App) Frame() *ggcv.Frame {
	return a.frame
}

// Run steps until the loop terminates.
func (a *App) Run() error {
	for a.state != StateTerminated {
		a.Step()
	}
	return nil
}

// Step runs one loop iteration. A Closing loop releases its resources and
// terminates; a Terminated loop does nothing.
func (a *App) Step() {
	switch a.state {
	case StateClosing:
		a.shutdown()
		return
	case StateTerminated:
		return
	}

	a.ctx.InputBegin()
	a.handleKey(a.win.WaitKey(time.Duration(a.cfg.Window.KeyWait)))
	if !a.win.Visible() {
		a.ctx.InputEnd()
		a.state = StateClosing
		return
	}
	a.bridge.Inject(a.ctx)
	a.ctx.InputEnd()

	a.layout()

	a.frame.SetTo(a.bg)
	a.renderer.RenderAll(a.frame, a.ctx.Commands())
	a.win.Show(a.frame)
	a.ctx.Clear()

	a.frames++
	if limit := a.cfg.Window.MaxFrames; limit > 0 && a.frames >= limit {
		a.state = StateClosing
	}
}

func (a *App) handleKey(key int) {
	switch {
	case key == window.NoKey:
	case key >= firstPrintable && key <= lastPrintable:
		a.ctx.InputChar(rune(key))
	default:
		a.log.Warn("unhandled key event", "key", fmt.Sprintf("%x", key))
	}
}

func (a *App) shutdown() {
	a.ctx.Free()
	if err := a.src.Close(); err != nil {
		a.log.Warn("capture close failed", "err", err)
	}
	a.state = StateTerminated
	stats := ggcv.TextCacheStats()
	a.log.Info("loop terminated", "frames", a.frames,
		"text_cache_len", stats.Len, "text_cache_hit_rate", stats.HitRate())
}

func (a *App) layout() {
	const panelFlags = gui.PanelBorder | gui.PanelMovable | gui.PanelScalable |
		gui.PanelClosable | gui.PanelMinimizable | gui.PanelTitle

	if a.ctx.Begin("Demo", gui.Rect{X: 50, Y: 50, W: 200, H: 200}, panelFlags) {
		a.demoPanel()
	}
	a.ctx.End()

	if a.ctx.Begin("Preview", gui.Rect{X: 270, Y: 50, W: 400, H: 400}, panelFlags) {
		a.preview.layout(a.ctx)
	}
	a.ctx.End()
}

func (a *App) demoPanel() {
	w := &a.widgets
	ctx := a.ctx

	ctx.LayoutRowDynamic(30, 1)
	if ctx.Button("button") {
		w.presses++
		a.log.Info("button pressed", "count", w.presses)
	}
	ctx.LayoutRowDynamic(30, 2)
	if ctx.Option("easy", w.op == opEasy) {
		w.op = opEasy
	}
	if ctx.Option("hard", w.op == opHard) {
		w.op = opHard
	}
	ctx.LayoutRowDynamic(25, 1)
	ctx.PropertyInt("Compression:", 0, &w.property, 100, 10, 1)
	ctx.LayoutRowDynamic(25, 1)
	ctx.Checkbox("blablabla", &w.checkbox)
	ctx.LayoutRowDynamic(25, 1)
	ctx.EditLine(&w.typed, 64)
}
