// Package command defines the draw commands an immediate-mode GUI emits
// during its layout pass.
//
// Commands are immutable values of a closed set of variants. Every variant
// implements [Command]; consumers dispatch with [Command.Accept] and a
// [Visitor], which has one method per variant. Adding a variant adds a
// Visitor method, so every consumer stops compiling until it decides what
// to do with it.
//
// Commands are produced into a [Buffer], consumed once per frame, and then
// the buffer is cleared.
package command

import "fmt"

// Kind identifies the variant of a command.
type Kind uint8

const (
	KindNop Kind = iota
	KindScissor
	KindLine
	KindCurve
	KindRect
	KindRectFilled
	KindRectMultiColor
	KindCircle
	KindCircleFilled
	KindArc
	KindArcFilled
	KindTriangle
	KindTriangleFilled
	KindPolygon
	KindPolygonFilled
	KindPolyline
	KindText
	KindImage
	KindCustom
)

// kindNames maps Kind values to their string representation.
var kindNames = [...]string{
	KindNop:            "Nop",
	KindScissor:        "Scissor",
	KindLine:           "Line",
	KindCurve:          "Curve",
	KindRect:           "Rect",
	KindRectFilled:     "RectFilled",
	KindRectMultiColor: "RectMultiColor",
	KindCircle:         "Circle",
	KindCircleFilled:   "CircleFilled",
	KindArc:            "Arc",
	KindArcFilled:      "ArcFilled",
	KindTriangle:       "Triangle",
	KindTriangleFilled: "TriangleFilled",
	KindPolygon:        "Polygon",
	KindPolygonFilled:  "PolygonFilled",
	KindPolyline:       "Polyline",
	KindText:           "Text",
	KindImage:          "Image",
	KindCustom:         "Custom",
}

// String returns the string representation of a Kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Command is implemented by every draw command variant.
// The interface is sealed: only this package defines variants.
type Command interface {
	// Kind returns the variant tag.
	Kind() Kind
	// Accept calls the Visitor method for the variant.
	Accept(v Visitor)

	sealed()
}

// Visitor handles every command variant.
type Visitor interface {
	VisitNop(Nop)
	VisitScissor(Scissor)
	VisitLine(Line)
	VisitCurve(Curve)
	VisitRect(Rect)
	VisitRectFilled(RectFilled)
	VisitRectMultiColor(RectMultiColor)
	VisitCircle(Circle)
	VisitCircleFilled(CircleFilled)
	VisitArc(Arc)
	VisitArcFilled(ArcFilled)
	VisitTriangle(Triangle)
	VisitTriangleFilled(TriangleFilled)
	VisitPolygon(Polygon)
	VisitPolygonFilled(PolygonFilled)
	VisitPolyline(Polyline)
	VisitText(Text)
	VisitImage(Image)
	VisitCustom(Custom)
}

// Color is a GUI color in red, green, blue, alpha order.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Point is an integer position.
type Point struct {
	X, Y int
}

// Nop is an empty command.
type Nop struct{}

// Scissor sets the clip rectangle for the commands that follow.
type Scissor struct {
	X, Y, W, H int
}

// Line is a straight stroked segment.
type Line struct {
	Begin, End Point
	Thickness  int
	Color      Color
}

// Curve is a stroked cubic Bezier.
type Curve struct {
	Begin, End Point
	Ctrl       [2]Point
	Thickness  int
	Color      Color
}

// Rect is a stroked rectangle.
type Rect struct {
	X, Y, W, H int
	Rounding   int
	Thickness  int
	Color      Color
}

// RectFilled is a filled rectangle.
type RectFilled struct {
	X, Y, W, H int
	Rounding   int
	Color      Color
}

// RectMultiColor is a rectangle with a color per corner.
type RectMultiColor struct {
	X, Y, W, H               int
	Left, Top, Bottom, Right Color
}

// Circle is a stroked ellipse inscribed in its box.
type Circle struct {
	X, Y, W, H int
	Thickness  int
	Color      Color
}

// CircleFilled is a filled ellipse inscribed in its box.
type CircleFilled struct {
	X, Y, W, H int
	Color      Color
}

// Arc is a stroked circular arc; angles are in radians.
type Arc struct {
	Center     Point
	Radius     int
	Thickness  int
	Start, End float64
	Color      Color
}

// ArcFilled is a filled circular sector; angles are in radians.
type ArcFilled struct {
	Center     Point
	Radius     int
	Start, End float64
	Color      Color
}

// Triangle is a stroked triangle.
type Triangle struct {
	A, B, C   Point
	Thickness int
	Color     Color
}

// TriangleFilled is a filled triangle.
type TriangleFilled struct {
	A, B, C Point
	Color   Color
}

// Polygon is a stroked closed polygon.
type Polygon struct {
	Points    []Point
	Thickness int
	Color     Color
}

// PolygonFilled is a filled polygon.
type PolygonFilled struct {
	Points []Point
	Color  Color
}

// Polyline is a stroked open path.
type Polyline struct {
	Points    []Point
	Thickness int
	Color     Color
}

// Text is a string drawn inside a box with a font handle.
type Text struct {
	X, Y, W, H int
	Font       Font
	Height     float64
	Background Color
	Foreground Color
	String     string
}

// Image draws an image handle into a box.
type Image struct {
	X, Y, W, H int
	Image      ImageHandle
	Color      Color
}

// Custom is an application-defined callback command.
type Custom struct {
	X, Y, W, H int
	Callback   func()
}

func (Nop) Kind() Kind            { return KindNop }
func (Scissor) Kind() Kind        { return KindScissor }
func (Line) Kind() Kind           { return KindLine }
func (Curve) Kind() Kind          { return KindCurve }
func (Rect) Kind() Kind           { return KindRect }
func (RectFilled) Kind() Kind     { return KindRectFilled }
func (RectMultiColor) Kind() Kind { return KindRectMultiColor }
func (Circle) Kind() Kind         { return KindCircle }
func (CircleFilled) Kind() Kind   { return KindCircleFilled }
func (Arc) Kind() Kind            { return KindArc }
func (ArcFilled) Kind() Kind      { return KindArcFilled }
func (Triangle) Kind() Kind       { return KindTriangle }
func (TriangleFilled) Kind() Kind { return KindTriangleFilled }
func (Polygon) Kind() Kind        { return KindPolygon }
func (PolygonFilled) Kind() Kind  { return KindPolygonFilled }
func (Polyline) Kind() Kind       { return KindPolyline }
func (Text) Kind() Kind           { return KindText }
func (Image) Kind() Kind          { return KindImage }
func (Custom) Kind() Kind         { return KindCustom }

func (c Nop) Accept(v Visitor)            { v.VisitNop(c) }
func (c Scissor) Accept(v Visitor)        { v.VisitScissor(c) }
func (c Line) Accept(v Visitor)           { v.VisitLine(c) }
func (c Curve) Accept(v Visitor)          { v.VisitCurve(c) }
func (c Rect) Accept(v Visitor)           { v.VisitRect(c) }
func (c RectFilled) Accept(v Visitor)     { v.VisitRectFilled(c) }
func (c RectMultiColor) Accept(v Visitor) { v.VisitRectMultiColor(c) }
func (c Circle) Accept(v Visitor)         { v.VisitCircle(c) }
func (c CircleFilled) Accept(v Visitor)   { v.VisitCircleFilled(c) }
func (c Arc) Accept(v Visitor)            { v.VisitArc(c) }
func (c ArcFilled) Accept(v Visitor)      { v.VisitArcFilled(c) }
func (c Triangle) Accept(v Visitor)       { v.VisitTriangle(c) }
func (c TriangleFilled) Accept(v Visitor) { v.VisitTriangleFilled(c) }
func (c Polygon) Accept(v Visitor)        { v.VisitPolygon(c) }
func (c PolygonFilled) Accept(v Visitor)  { v.VisitPolygonFilled(c) }
func (c Polyline) Accept(v Visitor)       { v.VisitPolyline(c) }
func (c Text) Accept(v Visitor)           { v.VisitText(c) }
func (c Image) Accept(v Visitor)          { v.VisitImage(c) }
func (c Custom) Accept(v Visitor)         { v.VisitCustom(c) }

func (Nop) sealed()            {}
func (Scissor) sealed()        {}
func (Line) sealed()           {}
func (Curve) sealed()          {}
func (Rect) sealed()           {}
func (RectFilled) sealed()     {}
func (RectMultiColor) sealed() {}
func (Circle) sealed()         {}
func (CircleFilled) sealed()   {}
func (Arc) sealed()            {}
func (ArcFilled) sealed()      {}
func (Triangle) sealed()       {}
func (TriangleFilled) sealed() {}
func (Polygon) sealed()        {}
func (PolygonFilled) sealed()  {}
func (Polyline) sealed()       {}
func (Text) sealed()           {}
func (Image) sealed()          {}
func (Custom) sealed()         {}
