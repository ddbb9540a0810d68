package gui

import (
	"iter"

	"github.com/gogpu/ggcv/command"
)

// Button identifies a mouse button.
type Button int

// Mouse buttons. ButtonDouble is a logical button that is pressed by a
// double click; it is released automatically at the next InputBegin.
const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
	ButtonDouble

	buttonCount
)

// UserFont is the font the context lays text out with.
type UserFont struct {
	// Height is the line height used for layout.
	Height float64
	// Handle measures text and is attached to every Text command.
	Handle command.Font
}

func (f UserFont) width(s string) float64 {
	if f.Handle == nil {
		return 0
	}
	return f.Handle.TextWidth(f.Height, s)
}

type mouseButton struct {
	down      bool
	clicked   int
	clickedAt Vec2
	pressedAt Vec2
}

type inputState struct {
	pos     Vec2
	prev    Vec2
	delta   Vec2
	buttons [buttonCount]mouseButton
	scroll  Vec2
	text    []rune
}

// Context is the toolkit state: input, persistent panels, and the command
// list of the current frame. A Context is not safe for concurrent use.
type Context struct {
	font   UserFont
	style  Style
	in     inputState
	buf    command.Buffer
	panels map[string]*panel
	cur    *panel

	// active is the widget currently dragged; focus owns text input.
	active string
	focus  string
	drag   map[string]float64
}

// Option configures a Context.
type Option func(*Context)

// WithStyle replaces the default style.
func WithStyle(s Style) Option {
	return func(c *Context) {
		c.style = s
	}
}

// NewContext creates a context that lays out text with font.
func NewContext(font UserFont, opts ...Option) *Context {
	c := &Context{
		font:   font,
		style:  DefaultStyle(),
		panels: make(map[string]*panel),
		drag:   make(map[string]float64),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Free releases all state. The context must not be used afterwards.
func (c *Context) Free() {
	c.buf.Clear()
	c.panels = nil
	c.drag = nil
	c.cur = nil
}

// Style returns the active style.
func (c *Context) Style() Style {
	return c.style
}

// InputBegin opens the input transaction for a frame. Click counts,
// scroll and typed text from the previous frame are dropped.
func (c *Context) InputBegin() {
	in := &c.in
	for i := range in.buttons {
		in.buttons[i].clicked = 0
	}
	in.buttons[ButtonDouble].down = false
	in.scroll = Vec2{}
	in.text = in.text[:0]
	in.prev = in.pos
}

// InputMotion moves the mouse to (x, y).
func (c *Context) InputMotion(x, y int) {
	c.in.pos = Vec2{X: float64(x), Y: float64(y)}
}

// InputButton sets the state of button b at (x, y). Repeating the current
// state is ignored. The mouse position follows the button event.
func (c *Context) InputButton(b Button, x, y int, down bool) {
	if b < 0 || b >= buttonCount {
		return
	}
	p := Vec2{X: float64(x), Y: float64(y)}
	c.in.pos = p
	btn := &c.in.buttons[b]
	if btn.down == down {
		return
	}
	btn.down = down
	btn.clicked++
	btn.clickedAt = p
	if down {
		btn.pressedAt = p
	}
}

// InputScroll adds a scroll delta in lines.
func (c *Context) InputScroll(v Vec2) {
	c.in.scroll = c.in.scroll.Add(v)
}

// InputChar adds a typed character.
func (c *Context) InputChar(r rune) {
	c.in.text = append(c.in.text, r)
}

// InputEnd closes the input transaction.
func (c *Context) InputEnd() {
	c.in.delta = c.in.pos.Sub(c.in.prev)
	if !c.in.buttons[ButtonLeft].down {
		c.active = ""
	}
}

// Commands returns the commands emitted since the last Clear.
func (c *Context) Commands() iter.Seq[command.Command] {
	return c.buf.All()
}

// Clear drops the emitted commands. Call it after rendering each frame.
func (c *Context) Clear() {
	c.buf.Clear()
}

func (c *Context) push(cmd command.Command) {
	c.buf.Push(cmd)
}

func (in *inputState) hovering(r Rect) bool {
	return r.Contains(in.pos)
}

func (in *inputState) isDown(b Button) bool {
	return in.buttons[b].down
}

// pressed reports whether b went down inside r this frame.
func (in *inputState) pressed(b Button, r Rect) bool {
	btn := in.buttons[b]
	return btn.clicked > 0 && btn.down && r.Contains(btn.clickedAt)
}

// released reports whether b completed a click inside r this frame: it was
// pressed inside r and released inside r.
func (in *inputState) released(b Button, r Rect) bool {
	btn := in.buttons[b]
	return btn.clicked > 0 && !btn.down && r.Contains(btn.clickedAt) && r.Contains(btn.pressedAt)
}
