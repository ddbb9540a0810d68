package input

import (
	"testing"

	"github.com/gogpu/ggcv/gui"
)

var _ Injector = (*gui.Context)(nil)

type call struct {
	op     string
	button gui.Button
	x, y   int
	down   bool
	scroll gui.Vec2
}

// recorder records injection calls.
type recorder struct {
	calls []call
}

func (r *recorder) InputMotion(x, y int) {
	r.calls = append(r.calls, call{op: "motion", x: x, y: y})
}

func (r *recorder) InputButton(b gui.Button, x, y int, down bool) {
	r.calls = append(r.calls, call{op: "button", button: b, x: x, y: y, down: down})
}

func (r *recorder) InputScroll(v gui.Vec2) {
	r.calls = append(r.calls, call{op: "scroll", scroll: v})
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		ev   MouseEvent
		want []call
	}{
		{"move", MouseEvent{Kind: EventMove, X: 5, Y: 6},
			[]call{{op: "motion", x: 5, y: 6}}},
		{"left down", MouseEvent{Kind: EventLeftDown, X: 10, Y: 20},
			[]call{{op: "button", button: gui.ButtonLeft, x: 10, y: 20, down: true}}},
		{"left up", MouseEvent{Kind: EventLeftUp, X: 10, Y: 20},
			[]call{{op: "button", button: gui.ButtonLeft, x: 10, y: 20}}},
		{"right down", MouseEvent{Kind: EventRightDown, X: 1, Y: 2},
			[]call{{op: "button", button: gui.ButtonRight, x: 1, y: 2, down: true}}},
		{"right up", MouseEvent{Kind: EventRightUp, X: 1, Y: 2},
			[]call{{op: "button", button: gui.ButtonRight, x: 1, y: 2}}},
		{"double click press only", MouseEvent{Kind: EventLeftDoubleClick, X: 3, Y: 4},
			[]call{{op: "button", button: gui.ButtonDouble, x: 3, y: 4, down: true}}},
		{"wheel up", MouseEvent{Kind: EventWheel, Flags: WithWheelDelta(0, 120)},
			[]call{{op: "scroll", scroll: gui.Vec2{Y: ScrollStep}}}},
		{"wheel down", MouseEvent{Kind: EventWheel, Flags: WithWheelDelta(0, -120)},
			[]call{{op: "scroll", scroll: gui.Vec2{Y: -ScrollStep}}}},
		{"wheel large delta same step", MouseEvent{Kind: EventWheel, Flags: WithWheelDelta(0, 960)},
			[]call{{op: "scroll", scroll: gui.Vec2{Y: ScrollStep}}}},
		{"hwheel right", MouseEvent{Kind: EventHorizontalWheel, Flags: WithWheelDelta(0, 120)},
			[]call{{op: "scroll", scroll: gui.Vec2{X: ScrollStep}}}},
		{"hwheel left", MouseEvent{Kind: EventHorizontalWheel, Flags: WithWheelDelta(0, -120)},
			[]call{{op: "scroll", scroll: gui.Vec2{X: -ScrollStep}}}},
		{"none", None, nil},
		{"middle down ignored", MouseEvent{Kind: EventMiddleDown}, nil},
		{"right double click ignored", MouseEvent{Kind: EventRightDoubleClick}, nil},
		{"unknown ignored", MouseEvent{Kind: EventKind(99)}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			Translate(r, tt.ev)
			if len(r.calls) != len(tt.want) {
				t.Fatalf("calls = %+v, want %+v", r.calls, tt.want)
			}
			for i := range tt.want {
				if r.calls[i] != tt.want[i] {
					t.Errorf("call[%d] = %+v, want %+v", i, r.calls[i], tt.want[i])
				}
			}
		})
	}
}

func TestBridgeInjectConsumes(t *testing.T) {
	b := NewBridge(nil)
	cb := b.Callback()
	cb(MouseEvent{Kind: EventMove, X: 1, Y: 1})
	cb(MouseEvent{Kind: EventLeftDown, X: 7, Y: 8})

	r := &recorder{}
	b.Inject(r)
	if len(r.calls) != 1 || r.calls[0].op != "button" || r.calls[0].x != 7 {
		t.Fatalf("first Inject calls = %+v, want one left press at 7,8", r.calls)
	}

	r.calls = nil
	b.Inject(r)
	if len(r.calls) != 0 {
		t.Errorf("second Inject calls = %+v, want none", r.calls)
	}
}

func TestBridgeSharedMailbox(t *testing.T) {
	box := NewMailbox()
	b := NewBridge(box)
	if b.Mailbox() != box {
		t.Fatal("Mailbox() did not return the supplied mailbox")
	}
	b.Record(MouseEvent{Kind: EventRightUp})
	if got := box.Peek().Kind; got != EventRightUp {
		t.Errorf("mailbox kind = %v, want RightUp", got)
	}
}
