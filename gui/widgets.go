package gui

import (
	"strconv"

	"github.com/gogpu/ggcv/command"
)

type textAlign int

const (
	alignLeft textAlign = iota
	alignCenter
	alignRight
)

// text emits s vertically centred in r. The command box is one font line
// high, so renderers can place the baseline from its midpoint.
func (c *Context) text(r Rect, s string, bg command.Color, align textAlign) {
	if s == "" {
		return
	}
	w := c.font.width(s)
	x := r.X
	switch align {
	case alignCenter:
		x = r.X + (r.W-w)/2
	case alignRight:
		x = r.X + r.W - w
	}
	h := c.font.Height
	c.push(command.Text{
		X: int(x), Y: int(r.Y + r.H/2 - h/2), W: int(w), H: int(h),
		Font: c.font.Handle, Height: h,
		Background: bg, Foreground: c.style.Text,
		String: s,
	})
}

func (c *Context) id(name string) string {
	if c.cur == nil {
		return name
	}
	return c.cur.title + "/" + name
}

// Label draws left-aligned text.
func (c *Context) Label(s string) {
	r, ok := c.widget()
	if !ok {
		return
	}
	c.text(r, s, c.style.Window, alignLeft)
}

// Button draws a push button and reports whether it was clicked this frame.
func (c *Context) Button(label string) bool {
	r, ok := c.widget()
	if !ok {
		return false
	}
	s := &c.style
	bg := s.Button
	if c.in.hovering(r) {
		bg = s.ButtonHover
		if c.in.isDown(ButtonLeft) {
			bg = s.ButtonActive
		}
	}
	c.push(command.RectFilled{X: int(r.X), Y: int(r.Y), W: int(r.W), H: int(r.H), Rounding: s.Rounding, Color: bg})
	c.push(command.Rect{X: int(r.X), Y: int(r.Y), W: int(r.W), H: int(r.H), Rounding: s.Rounding, Thickness: 1, Color: s.Border})
	c.text(r, label, bg, alignCenter)
	return c.in.released(ButtonLeft, r)
}

// toggleBox returns the square selector area at the left of r.
func (c *Context) toggleBox(r Rect) Rect {
	size := min(c.font.Height+2, r.H)
	return Rect{X: r.X, Y: r.Y + (r.H-size)/2, W: size, H: size}
}

// Option draws a radio button. It returns true when the option is active
// after this frame's input: either it was active or it was just clicked.
func (c *Context) Option(label string, active bool) bool {
	r, ok := c.widget()
	if !ok {
		return active
	}
	s := &c.style
	if c.in.released(ButtonLeft, r) {
		active = true
	}
	box := c.toggleBox(r)
	bg := s.Toggle
	if c.in.hovering(r) {
		bg = s.ToggleHover
	}
	c.push(command.CircleFilled{X: int(box.X), Y: int(box.Y), W: int(box.W), H: int(box.H), Color: bg})
	if active {
		in := box.Inset(Vec2{X: 2, Y: 2})
		c.push(command.CircleFilled{X: int(in.X), Y: int(in.Y), W: int(in.W), H: int(in.H), Color: s.ToggleCursor})
	}
	c.text(Rect{X: box.X + box.W + s.Padding.X, Y: r.Y, W: r.W - box.W - s.Padding.X, H: r.H}, label, s.Window, alignLeft)
	return active
}

// Checkbox draws a check box bound to *active and reports whether it was
// toggled this frame.
func (c *Context) Checkbox(label string, active *bool) bool {
	r, ok := c.widget()
	if !ok {
		return false
	}
	s := &c.style
	changed := false
	if c.in.released(ButtonLeft, r) {
		*active = !*active
		changed = true
	}
	box := c.toggleBox(r)
	bg := s.Toggle
	if c.in.hovering(r) {
		bg = s.ToggleHover
	}
	c.push(command.RectFilled{X: int(box.X), Y: int(box.Y), W: int(box.W), H: int(box.H), Color: bg})
	if *active {
		in := box.Inset(Vec2{X: 2, Y: 2})
		c.push(command.RectFilled{X: int(in.X), Y: int(in.Y), W: int(in.W), H: int(in.H), Color: s.ToggleCursor})
	}
	c.text(Rect{X: box.X + box.W + s.Padding.X, Y: r.Y, W: r.W - box.W - s.Padding.X, H: r.H}, label, s.Window, alignLeft)
	return changed
}

// PropertyInt draws an integer property bound to *val. The arrows step the
// value by step; dragging the middle changes it by incPerPixel per pixel.
// The value is clamped to [minVal, maxVal].
func (c *Context) PropertyInt(name string, minVal int, val *int, maxVal, step int, incPerPixel float64) {
	r, ok := c.widget()
	if !ok {
		return
	}
	s := &c.style
	id := c.id(name)
	arrow := min(c.font.Height, r.H)
	left := Rect{X: r.X + s.Padding.X, Y: r.Y + (r.H-arrow)/2, W: arrow, H: arrow}
	right := Rect{X: r.X + r.W - s.Padding.X - arrow, Y: left.Y, W: arrow, H: arrow}
	middle := Rect{X: left.X + left.W, Y: r.Y, W: right.X - left.X - left.W, H: r.H}

	if c.active == id && c.in.isDown(ButtonLeft) {
		c.drag[id] += c.in.delta.X * incPerPixel
		*val = int(c.drag[id])
	}
	switch {
	case c.in.released(ButtonLeft, left):
		*val -= step
	case c.in.released(ButtonLeft, right):
		*val += step
	case c.in.pressed(ButtonLeft, middle):
		c.active = id
		c.drag[id] = float64(*val)
	}
	*val = min(max(*val, minVal), maxVal)

	c.push(command.RectFilled{X: int(r.X), Y: int(r.Y), W: int(r.W), H: int(r.H), Rounding: s.Rounding, Color: s.Property})
	c.push(command.Rect{X: int(r.X), Y: int(r.Y), W: int(r.W), H: int(r.H), Rounding: s.Rounding, Thickness: 1, Color: s.Border})
	c.push(command.TriangleFilled{
		A:     command.Point{X: int(left.X + left.W), Y: int(left.Y)},
		B:     command.Point{X: int(left.X + left.W), Y: int(left.Y + left.H)},
		C:     command.Point{X: int(left.X), Y: int(left.Y + left.H/2)},
		Color: s.PropertyArrow,
	})
	c.push(command.TriangleFilled{
		A:     command.Point{X: int(right.X), Y: int(right.Y)},
		B:     command.Point{X: int(right.X + right.W), Y: int(right.Y + right.H/2)},
		C:     command.Point{X: int(right.X), Y: int(right.Y + right.H)},
		Color: s.PropertyArrow,
	})
	inner := middle.Inset(Vec2{X: s.Padding.X, Y: 0})
	c.text(inner, name, s.Property, alignLeft)
	c.text(inner, strconv.Itoa(*val), s.Property, alignRight)
}

// EditLine draws a single-line text field bound to *buf. Clicking the
// field focuses it; while focused, typed characters are appended until
// the field holds maxLen runes. It reports whether *buf changed.
func (c *Context) EditLine(buf *string, maxLen int) bool {
	r, ok := c.widget()
	if !ok {
		return false
	}
	s := &c.style
	id := c.id("edit")
	btn := c.in.buttons[ButtonLeft]
	if btn.clicked > 0 && btn.down {
		if r.Contains(btn.clickedAt) {
			c.focus = id
		} else if c.focus == id {
			c.focus = ""
		}
	}

	changed := false
	if c.focus == id && len(c.in.text) > 0 {
		runes := []rune(*buf)
		for _, ch := range c.in.text {
			if len(runes) >= maxLen {
				break
			}
			runes = append(runes, ch)
			changed = true
		}
		*buf = string(runes)
	}

	bg := s.Edit
	if c.focus == id {
		bg = s.EditActive
	}
	c.push(command.RectFilled{X: int(r.X), Y: int(r.Y), W: int(r.W), H: int(r.H), Rounding: s.Rounding, Color: bg})
	c.push(command.Rect{X: int(r.X), Y: int(r.Y), W: int(r.W), H: int(r.H), Rounding: s.Rounding, Thickness: 1, Color: s.Border})
	c.text(r.Inset(Vec2{X: s.Padding.X, Y: 0}), *buf, bg, alignLeft)
	return changed
}

// Image draws img into the next widget slot. The command carries the slot
// bounds; renderers decide how much of the image fits. Nil and empty
// handles take the slot but emit nothing.
func (c *Context) Image(img command.ImageHandle) {
	r, ok := c.widget()
	if !ok || img == nil {
		return
	}
	if w, h := img.Size(); w <= 0 || h <= 0 {
		return
	}
	c.push(command.Image{
		X: int(r.X), Y: int(r.Y), W: int(r.W), H: int(r.H),
		Image: img, Color: command.RGB(255, 255, 255),
	})
}
