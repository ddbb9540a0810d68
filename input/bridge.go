package input

import (
	"github.com/gogpu/ggcv"
	"github.com/gogpu/ggcv/gui"
)

// ScrollStep is the scroll delta injected per wheel event, regardless of
// how far the wheel moved.
const ScrollStep = 0.1

// Injector receives translated input. *gui.Context implements it.
type Injector interface {
	InputMotion(x, y int)
	InputButton(b gui.Button, x, y int, down bool)
	InputScroll(v gui.Vec2)
}

// Bridge connects a window's mouse callback to the GUI through a Mailbox.
type Bridge struct {
	box *Mailbox
}

// NewBridge returns a bridge over box. A nil box gets a fresh mailbox.
func NewBridge(box *Mailbox) *Bridge {
	if box == nil {
		box = NewMailbox()
	}
	return &Bridge{box: box}
}

// Mailbox returns the bridge's mailbox.
func (b *Bridge) Mailbox() *Mailbox {
	return b.box
}

// Record stores ev as the pending event, replacing any earlier one.
// It never fails and does not validate ev.
func (b *Bridge) Record(ev MouseEvent) {
	b.box.Put(ev)
}

// Callback returns Record as a function value for window registration.
func (b *Bridge) Callback() func(MouseEvent) {
	return b.Record
}

// Inject takes the pending event and translates it into inj. Call it
// between the toolkit's InputBegin and InputEnd.
func (b *Bridge) Inject(inj Injector) {
	Translate(inj, b.box.Take())
}

// Translate injects the GUI input corresponding to ev.
//
// Double clicks inject a press of the logical double button and never a
// release. Wheel events inject a fixed ScrollStep whose sign follows the
// wheel delta. Events the GUI has no use for inject nothing.
func Translate(inj Injector, ev MouseEvent) {
	switch ev.Kind {
	case EventMove:
		inj.InputMotion(ev.X, ev.Y)
	case EventLeftDown:
		inj.InputButton(gui.ButtonLeft, ev.X, ev.Y, true)
	case EventLeftUp:
		inj.InputButton(gui.ButtonLeft, ev.X, ev.Y, false)
	case EventRightDown:
		inj.InputButton(gui.ButtonRight, ev.X, ev.Y, true)
	case EventRightUp:
		inj.InputButton(gui.ButtonRight, ev.X, ev.Y, false)
	case EventLeftDoubleClick:
		inj.InputButton(gui.ButtonDouble, ev.X, ev.Y, true)
	case EventWheel:
		inj.InputScroll(gui.Vec2{Y: wheelStep(ev.Flags)})
	case EventHorizontalWheel:
		inj.InputScroll(gui.Vec2{X: wheelStep(ev.Flags)})
	case EventNone:
	default:
		ggcv.Logger().Debug("input: event ignored", "kind", ev.Kind, "x", ev.X, "y", ev.Y)
	}
}

func wheelStep(flags Flags) float64 {
	if WheelDelta(flags) > 0 {
		return ScrollStep
	}
	return -ScrollStep
}
