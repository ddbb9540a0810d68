package gui

import (
	"slices"
	"strconv"
	"testing"

	"github.com/gogpu/ggcv"
	"github.com/gogpu/ggcv/command"
)

func TestButtonClick(t *testing.T) {
	c := newTestContext()
	var clicked []bool
	body := func(c *Context) {
		c.LayoutRowDynamic(30, 1)
		clicked = append(clicked, c.Button("button"))
	}
	frame(c, press(100, 80), body)
	frame(c, release(100, 80), body)
	frame(c, nil, body)

	if want := []bool{false, true, false}; !slices.Equal(clicked, want) {
		t.Errorf("Button() = %v, want %v", clicked, want)
	}
}

func TestButtonReleaseOutside(t *testing.T) {
	c := newTestContext()
	var got bool
	body := func(c *Context) {
		c.LayoutRowDynamic(30, 1)
		got = c.Button("button")
	}
	frame(c, press(100, 200), body)
	frame(c, release(100, 80), body)
	if got {
		t.Error("Button() = true for a press that started outside")
	}
}

func TestButtonCommands(t *testing.T) {
	c := newTestContext()
	cmds, _ := frame(c, nil, func(c *Context) {
		c.LayoutRowDynamic(30, 1)
		c.Button("button")
	})
	var box command.RectFilled
	for _, cmd := range ofKind(cmds, command.KindRectFilled) {
		if r := cmd.(command.RectFilled); r.Y == 70 {
			box = r
		}
	}
	if box.X != 54 || box.W != 192 || box.H != 30 {
		t.Errorf("button box = %+v, want 54,70 192x30", box)
	}
	if !slices.Contains(texts(cmds), "button") {
		t.Errorf("texts = %q, want button label", texts(cmds))
	}
}

func TestOption(t *testing.T) {
	c := newTestContext()
	op := 0
	body := func(c *Context) {
		c.LayoutRowDynamic(30, 2)
		if c.Option("easy", op == 0) {
			op = 0
		}
		if c.Option("hard", op == 1) {
			op = 1
		}
	}
	frame(c, press(160, 80), body)
	frame(c, release(160, 80), body)
	if op != 1 {
		t.Errorf("op = %d after clicking hard, want 1", op)
	}
	frame(c, press(60, 80), body)
	frame(c, release(60, 80), body)
	if op != 0 {
		t.Errorf("op = %d after clicking easy, want 0", op)
	}
}

func TestCheckbox(t *testing.T) {
	c := newTestContext()
	checked := true
	var changed bool
	body := func(c *Context) {
		c.LayoutRowDynamic(25, 1)
		changed = c.Checkbox("blablabla", &checked)
	}
	cmds, _ := frame(c, nil, body)
	if changed {
		t.Error("Checkbox() changed without input")
	}
	filledBefore := len(ofKind(cmds, command.KindRectFilled))

	frame(c, press(100, 80), body)
	cmds, _ = frame(c, release(100, 80), body)
	if !changed || checked {
		t.Errorf("after click: changed=%v checked=%v, want true false", changed, checked)
	}
	if got := len(ofKind(cmds, command.KindRectFilled)); got != filledBefore-1 {
		t.Errorf("unchecked box emitted %d filled rects, want %d", got, filledBefore-1)
	}
}

func TestPropertyInt(t *testing.T) {
	tests := []struct {
		name   string
		start  int
		inject []func(*Context)
		want   int
	}{
		{"decrement", 20, []func(*Context){press(60, 80), release(60, 80)}, 10},
		{"increment", 20, []func(*Context){press(238, 80), release(238, 80)}, 30},
		{"clamp max", 95, []func(*Context){press(238, 80), release(238, 80)}, 100},
		{"clamp min", 5, []func(*Context){press(60, 80), release(60, 80)}, 0},
		{"drag", 20, []func(*Context){
			press(150, 80),
			func(c *Context) { c.InputMotion(160, 80) },
			func(c *Context) { c.InputMotion(157, 80) },
			release(157, 80),
		}, 27},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext()
			val := tt.start
			var cmds []command.Command
			body := func(c *Context) {
				c.LayoutRowDynamic(25, 1)
				c.PropertyInt("Compression:", 0, &val, 100, 10, 1)
			}
			for _, in := range tt.inject {
				cmds, _ = frame(c, in, body)
			}
			if val != tt.want {
				t.Errorf("val = %d, want %d", val, tt.want)
			}
			got := texts(cmds)
			if !slices.Contains(got, "Compression:") || !slices.Contains(got, strconv.Itoa(tt.want)) {
				t.Errorf("texts = %q", got)
			}
		})
	}
}

func TestEditLine(t *testing.T) {
	c := newTestContext()
	buf := "ab"
	var changed bool
	body := func(c *Context) {
		c.LayoutRowDynamic(25, 1)
		changed = c.EditLine(&buf, 4)
	}
	typeText := func(s string) func(*Context) {
		return func(c *Context) {
			for _, r := range s {
				c.InputChar(r)
			}
		}
	}

	frame(c, typeText("zz"), body)
	if changed || buf != "ab" {
		t.Fatalf("unfocused field changed to %q", buf)
	}

	frame(c, press(100, 80), body)
	frame(c, release(100, 80), body)
	frame(c, typeText("cde"), body)
	if !changed || buf != "abcd" {
		t.Errorf("buf = %q changed=%v, want \"abcd\" true", buf, changed)
	}

	frame(c, press(100, 200), body)
	frame(c, typeText("q"), body)
	if buf != "abcd" {
		t.Errorf("buf = %q after losing focus", buf)
	}
}

type imageStub struct{ w, h int }

func (s imageStub) Size() (int, int) { return s.w, s.h }

func TestImage(t *testing.T) {
	c := newTestContext()
	img := imageStub{w: 320, h: 240}
	cmds, _ := frame(c, nil, func(c *Context) {
		c.LayoutRowDynamic(100, 1)
		c.Image(img)
	})
	imgs := ofKind(cmds, command.KindImage)
	if len(imgs) != 1 {
		t.Fatalf("got %d image commands, want 1", len(imgs))
	}
	got := imgs[0].(command.Image)
	if got.X != 54 || got.Y != 70 || got.W != 192 || got.H != 100 {
		t.Errorf("image bounds = %d,%d %dx%d, want 54,70 192x100", got.X, got.Y, got.W, got.H)
	}
	if got.Image != img {
		t.Errorf("image handle = %v, want %v", got.Image, img)
	}
}

func TestImageEmptyHandles(t *testing.T) {
	c := newTestContext()
	cmds, _ := frame(c, nil, func(c *Context) {
		c.LayoutRowDynamic(100, 1)
		c.Image((*ggcv.Frame)(nil))
		c.LayoutRowDynamic(100, 1)
		c.Image(ggcv.NewFrame(0, 0))
		c.LayoutRowDynamic(100, 1)
		c.Image(nil)
	})
	if imgs := ofKind(cmds, command.KindImage); len(imgs) != 0 {
		t.Errorf("got %d image commands, want none", len(imgs))
	}
}

func TestWidgetsOutsideContentAreSkipped(t *testing.T) {
	c := newTestContext()
	cmds, _ := frame(c, nil, func(c *Context) {
		for range 10 {
			c.LayoutRowDynamic(30, 1)
			c.Button("btn")
		}
	})
	n := 0
	for _, s := range texts(cmds) {
		if s == "btn" {
			n++
		}
	}
	if n != 6 {
		t.Errorf("got %d visible buttons, want 6", n)
	}
}
