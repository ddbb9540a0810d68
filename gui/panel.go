package gui

import "github.com/gogpu/ggcv/command"

// PanelFlags select panel decorations and behaviors.
type PanelFlags uint32

const (
	// PanelBorder draws a border around the panel.
	PanelBorder PanelFlags = 1 << iota
	// PanelMovable lets the header be dragged.
	PanelMovable
	// PanelScalable adds a resize grip in the bottom-right corner.
	PanelScalable
	// PanelClosable adds a close button to the header.
	PanelClosable
	// PanelMinimizable adds a collapse toggle to the header.
	PanelMinimizable
	// PanelTitle shows the title in the header.
	PanelTitle
)

const headerFlags = PanelTitle | PanelClosable | PanelMinimizable

type panel struct {
	title     string
	bounds    Rect
	flags     PanelFlags
	closed    bool
	minimized bool
	dragging  bool
	scaling   bool

	scrollY float64
	// used is the content height laid out in the previous frame.
	used float64

	content Rect
	rowY    float64
	rowH    float64
	cols    int
	index   int
	nextY   float64
}

// Begin starts the panel named title. bounds is only used the first time
// the panel is seen; afterwards the panel keeps its own position and size.
// It returns false when the panel is closed or collapsed, in which case no
// widgets should be emitted. End must be called either way.
func (c *Context) Begin(title string, bounds Rect, flags PanelFlags) bool {
	if c.cur != nil {
		panic("gui: Begin called before End of panel " + c.cur.title)
	}
	p, ok := c.panels[title]
	if !ok {
		p = &panel{title: title, bounds: bounds}
		c.panels[title] = p
	}
	c.cur = p
	p.flags = flags
	if p.closed {
		return false
	}

	s := &c.style
	c.panelInput(p, c.headerRects(p))
	if p.closed {
		return false
	}
	hr := c.headerRects(p)
	header, closeRect, minRect := hr.header, hr.close, hr.min
	headerH := header.H

	c.push(command.Scissor{X: int(p.bounds.X), Y: int(p.bounds.Y), W: int(p.bounds.W), H: int(p.bounds.H)})
	if headerH > 0 {
		c.push(command.RectFilled{
			X: int(header.X), Y: int(header.Y), W: int(header.W), H: int(header.H),
			Rounding: s.Rounding, Color: s.Header,
		})
		if flags&PanelTitle != 0 {
			c.text(Rect{X: header.X + s.HeaderPad, Y: header.Y, W: header.W, H: header.H}, p.title, s.Header, alignLeft)
		}
		if flags&PanelClosable != 0 {
			c.text(closeRect, "x", s.Header, alignCenter)
		}
		if flags&PanelMinimizable != 0 {
			c.push(symbolTriangle(minRect, p.minimized, s.Text))
		}
	}
	if p.minimized {
		if flags&PanelBorder != 0 {
			c.push(command.Rect{
				X: int(header.X), Y: int(header.Y), W: int(header.W), H: int(header.H),
				Thickness: 1, Color: s.Border,
			})
		}
		return false
	}

	body := Rect{X: p.bounds.X, Y: p.bounds.Y + headerH, W: p.bounds.W, H: p.bounds.H - headerH}
	c.push(command.RectFilled{
		X: int(body.X), Y: int(body.Y), W: int(body.W), H: int(body.H),
		Rounding: s.Rounding, Color: s.Window,
	})

	p.content = body.Inset(s.Padding)
	maxScroll := max(p.used-p.content.H, 0)
	p.scrollY = min(max(p.scrollY, 0), maxScroll)
	p.nextY = p.content.Y - p.scrollY
	p.rowY, p.rowH, p.cols, p.index = p.nextY, 0, 0, 0

	c.push(command.Scissor{X: int(p.content.X), Y: int(p.content.Y), W: int(p.content.W), H: int(p.content.H)})
	return true
}

type headerRects struct {
	header, close, min Rect
}

// headerRects computes the header and its buttons for the current bounds.
func (c *Context) headerRects(p *panel) headerRects {
	s := &c.style
	headerH := 0.0
	if p.flags&headerFlags != 0 {
		headerH = c.font.Height + 2*s.HeaderPad
	}
	header := Rect{X: p.bounds.X, Y: p.bounds.Y, W: p.bounds.W, H: headerH}
	button := max(headerH-2*s.HeaderPad, 0)
	closeRect := Rect{X: header.X + header.W - s.HeaderPad - button, Y: header.Y + s.HeaderPad, W: button, H: button}
	minRect := closeRect
	if p.flags&PanelClosable != 0 {
		minRect.X -= button + s.HeaderPad
	}
	return headerRects{header: header, close: closeRect, min: minRect}
}

// panelInput applies dragging, resizing, closing, collapsing and
// scrolling to p.
func (c *Context) panelInput(p *panel, hr headerRects) {
	in := &c.in
	s := &c.style
	header, closeRect, minRect := hr.header, hr.close, hr.min
	scaler := Rect{
		X: p.bounds.X + p.bounds.W - s.ScalerSize, Y: p.bounds.Y + p.bounds.H - s.ScalerSize,
		W: s.ScalerSize, H: s.ScalerSize,
	}
	onButtons := (p.flags&PanelClosable != 0 && closeRect.Contains(in.pos)) ||
		(p.flags&PanelMinimizable != 0 && minRect.Contains(in.pos))

	if p.flags&PanelClosable != 0 && in.released(ButtonLeft, closeRect) {
		p.closed = true
		return
	}
	if p.flags&PanelMinimizable != 0 {
		if in.released(ButtonLeft, minRect) || (in.isDown(ButtonDouble) && in.hovering(header) && !onButtons) {
			p.minimized = !p.minimized
		}
	}

	// Motion applies from the frame after the press; the press frame's
	// delta is the jump to the press position.
	if !in.isDown(ButtonLeft) {
		p.dragging, p.scaling = false, false
	}
	if p.dragging {
		p.bounds.X += in.delta.X
		p.bounds.Y += in.delta.Y
	}
	if p.scaling {
		p.bounds.W = max(p.bounds.W+in.delta.X, s.MinSize.X)
		p.bounds.H = max(p.bounds.H+in.delta.Y, s.MinSize.Y)
	}
	if p.flags&PanelMovable != 0 && in.pressed(ButtonLeft, header) && !onButtons {
		p.dragging = true
	}
	if p.flags&PanelScalable != 0 && !p.minimized && in.pressed(ButtonLeft, scaler) {
		p.scaling = true
	}
	if in.scroll.Y != 0 && in.hovering(p.bounds) {
		p.scrollY -= in.scroll.Y * s.ScrollSpeed
	}
}

// End finishes the current panel.
func (c *Context) End() {
	p := c.cur
	if p == nil {
		panic("gui: End called without Begin")
	}
	c.cur = nil
	if p.closed || p.minimized {
		return
	}
	s := &c.style
	p.used = p.nextY + p.scrollY - p.content.Y
	c.push(command.Scissor{X: int(p.bounds.X), Y: int(p.bounds.Y), W: int(p.bounds.W), H: int(p.bounds.H)})
	if p.flags&PanelScalable != 0 {
		x := p.bounds.X + p.bounds.W
		y := p.bounds.Y + p.bounds.H
		c.push(command.TriangleFilled{
			A:     command.Point{X: int(x), Y: int(y - s.ScalerSize)},
			B:     command.Point{X: int(x), Y: int(y)},
			C:     command.Point{X: int(x - s.ScalerSize), Y: int(y)},
			Color: s.Scaler,
		})
	}
	if p.flags&PanelBorder != 0 {
		c.push(command.Rect{
			X: int(p.bounds.X), Y: int(p.bounds.Y), W: int(p.bounds.W), H: int(p.bounds.H),
			Thickness: 1, Color: s.Border,
		})
	}
}

// Content returns the content area of the current panel: the region rows
// are laid out in.
func (c *Context) Content() Rect {
	if c.cur == nil {
		return Rect{}
	}
	return c.cur.content
}

// LayoutRowDynamic starts a row of cols equally wide widgets of the given
// height. Widgets beyond cols wrap onto new rows of the same shape.
func (c *Context) LayoutRowDynamic(height float64, cols int) {
	p := c.cur
	if p == nil {
		return
	}
	p.rowH = height
	p.cols = max(cols, 1)
	p.index = 0
	p.rowY = p.nextY
	p.nextY = p.rowY + height + c.style.Spacing.Y
}

// widget allocates the next slot of the current row. The second result is
// false when the slot is outside the visible content area.
func (c *Context) widget() (Rect, bool) {
	p := c.cur
	if p == nil || p.closed || p.minimized {
		return Rect{}, false
	}
	if p.cols == 0 {
		c.LayoutRowDynamic(c.font.Height+2*c.style.Padding.Y, 1)
	}
	col := p.index % p.cols
	if p.index > 0 && col == 0 {
		p.rowY = p.nextY
		p.nextY = p.rowY + p.rowH + c.style.Spacing.Y
	}
	p.index++

	sp := c.style.Spacing.X
	w := (p.content.W - sp*float64(p.cols-1)) / float64(p.cols)
	r := Rect{X: p.content.X + float64(col)*(w+sp), Y: p.rowY, W: w, H: p.rowH}
	return r, r.Intersects(p.content)
}

// symbolTriangle returns the collapse toggle: pointing right when
// collapsed, down otherwise.
func symbolTriangle(r Rect, collapsed bool, col command.Color) command.TriangleFilled {
	x0, y0 := int(r.X), int(r.Y)
	x1, y1 := int(r.X+r.W), int(r.Y+r.H)
	xm, ym := int(r.X+r.W/2), int(r.Y+r.H/2)
	if collapsed {
		return command.TriangleFilled{
			A: command.Point{X: x0, Y: y0}, B: command.Point{X: x1, Y: ym}, C: command.Point{X: x0, Y: y1},
			Color: col,
		}
	}
	return command.TriangleFilled{
		A: command.Point{X: x0, Y: y0}, B: command.Point{X: x1, Y: y0}, C: command.Point{X: xm, Y: y1},
		Color: col,
	}
}
