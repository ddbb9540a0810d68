// Package input bridges pointer events from a windowing system into the
// GUI toolkit.
//
// A window driver reports events through a callback that writes them into a
// single-slot [Mailbox]; only the latest event survives. Once per frame the
// event loop takes that event and [Translate]s it into toolkit injection
// calls inside the toolkit's input transaction.
package input

import "fmt"

// EventKind is a pointer event code. The numeric values are the codes
// window drivers report.
type EventKind int

const (
	// EventNone marks an empty mailbox.
	EventNone EventKind = -1

	EventMove              EventKind = 0
	EventLeftDown          EventKind = 1
	EventRightDown         EventKind = 2
	EventMiddleDown        EventKind = 3
	EventLeftUp            EventKind = 4
	EventRightUp           EventKind = 5
	EventMiddleUp          EventKind = 6
	EventLeftDoubleClick   EventKind = 7
	EventRightDoubleClick  EventKind = 8
	EventMiddleDoubleClick EventKind = 9
	EventWheel             EventKind = 10
	EventHorizontalWheel   EventKind = 11
)

var eventKindNames = map[EventKind]string{
	EventNone:              "None",
	EventMove:              "Move",
	EventLeftDown:          "LeftDown",
	EventRightDown:         "RightDown",
	EventMiddleDown:        "MiddleDown",
	EventLeftUp:            "LeftUp",
	EventRightUp:           "RightUp",
	EventMiddleUp:          "MiddleUp",
	EventLeftDoubleClick:   "LeftDoubleClick",
	EventRightDoubleClick:  "RightDoubleClick",
	EventMiddleDoubleClick: "MiddleDoubleClick",
	EventWheel:             "Wheel",
	EventHorizontalWheel:   "HorizontalWheel",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Flags carries button and modifier state. The high 16 bits hold the
// signed wheel delta of wheel events.
type Flags int

const (
	FlagLeftButton   Flags = 1
	FlagRightButton  Flags = 2
	FlagMiddleButton Flags = 4
	FlagCtrl         Flags = 8
	FlagShift        Flags = 16
	FlagAlt          Flags = 32
)

// WheelDelta decodes the signed wheel delta stored in the high 16 bits of
// flags. Drivers report 120 per wheel notch.
func WheelDelta(flags Flags) int {
	return int(int16(uint32(flags) >> 16)) //nolint:gosec // the high half is a signed 16-bit field
}

// WithWheelDelta returns flags with the wheel delta field set to delta,
// truncated to 16 bits.
func WithWheelDelta(flags Flags, delta int) Flags {
	low := uint32(flags) & 0xffff
	return Flags(int32(uint32(uint16(int16(delta)))<<16 | low)) //nolint:gosec // packing a 16-bit field
}

// MouseEvent is one pointer event.
type MouseEvent struct {
	Kind  EventKind
	X, Y  int
	Flags Flags
}

// None is the empty event.
var None = MouseEvent{Kind: EventNone}
