// Package render replays GUI draw commands onto a ggcv.Frame.
//
// Each supported command maps onto one ggcv primitive. GUI colors are
// red-green-blue while frames store blue-green-red, so every color goes
// through [Reorder]. A few variants carry fixed cosmetic offsets that
// compensate for the GUI's padding (see [Renderer.Render]).
//
// Unsupported variants are logged and skipped; no command aborts a frame.
package render

import (
	"image"
	"iter"
	"log/slog"

	"github.com/gogpu/ggcv"
	"github.com/gogpu/ggcv/command"
)

// Renderer draws commands onto frames. It holds no per-frame state and
// may be reused for every frame.
type Renderer struct {
	log *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger for diagnostics. By default the renderer logs
// through ggcv.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		r.log = l
	}
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) logger() *slog.Logger {
	if r.log != nil {
		return r.log
	}
	return ggcv.Logger()
}

// Reorder converts a GUI color to a frame scalar: (r, g, b) becomes
// (b, g, r). Alpha is dropped.
func Reorder(c command.Color) ggcv.Scalar {
	return ggcv.Scalar{c.B, c.G, c.R}
}

// Render draws one command onto dst:
//
//   - Rect: outline from (x, y) to (x+w, y+h), width max(thickness, 1).
//   - RectFilled: box from (x-1, y-3) to (x+w+1, y+h).
//   - Text: white, baseline at y + h/2 + baseline + 1, at ggcv.TextScale.
//   - TriangleFilled: convex fill through the three vertices.
//   - CircleFilled: ellipse centred in the box, axes (w+3, h+3).
//   - Image: copy of a *ggcv.Frame at (x, y), full source width and
//     min(source height, h) rows, no scaling.
//   - Scissor, Nop: nothing.
//
// Every other variant is logged and leaves dst untouched.
func (r *Renderer) Render(dst *ggcv.Frame, cmd command.Command) {
	cmd.Accept(&frameVisitor{r: r, dst: dst})
}

// RenderAll draws cmds in order; later commands draw over earlier ones.
func (r *Renderer) RenderAll(dst *ggcv.Frame, cmds iter.Seq[command.Command]) {
	v := &frameVisitor{r: r, dst: dst}
	for cmd := range cmds {
		cmd.Accept(v)
	}
}

var _ command.Visitor = (*frameVisitor)(nil)

// frameVisitor implements command.Visitor against one destination frame.
type frameVisitor struct {
	r   *Renderer
	dst *ggcv.Frame
}

func (v *frameVisitor) unhandled(k command.Kind) {
	v.r.logger().Warn("render: unhandled command", "kind", k)
}

func (v *frameVisitor) VisitNop(command.Nop) {}

// VisitScissor ignores clipping; commands are drawn unclipped.
func (v *frameVisitor) VisitScissor(command.Scissor) {}

func (v *frameVisitor) VisitRect(c command.Rect) {
	ggcv.Rectangle(v.dst,
		image.Pt(c.X, c.Y), image.Pt(c.X+c.W, c.Y+c.H),
		Reorder(c.Color), max(c.Thickness, 1))
}

func (v *frameVisitor) VisitRectFilled(c command.RectFilled) {
	ggcv.Rectangle(v.dst,
		image.Pt(c.X-1, c.Y-3), image.Pt(c.X+c.W+1, c.Y+c.H),
		Reorder(c.Color), ggcv.Filled)
}

func (v *frameVisitor) VisitText(c command.Text) {
	font, ok := c.Font.(*ggcv.FontDescriptor)
	if !ok || font == nil {
		v.r.logger().Warn("render: text font handle not supported", "font", c.Font)
		return
	}
	_, baseline := ggcv.GetTextSize(c.String, font.Face, ggcv.TextScale, font.Thickness)
	org := image.Pt(c.X, c.Y+c.H/2+baseline+1)
	ggcv.PutText(v.dst, c.String, org, font.Face, ggcv.TextScale, ggcv.White, font.Thickness)
}

func (v *frameVisitor) VisitTriangleFilled(c command.TriangleFilled) {
	ggcv.FillConvexPoly(v.dst, []image.Point{
		image.Pt(c.A.X, c.A.Y),
		image.Pt(c.B.X, c.B.Y),
		image.Pt(c.C.X, c.C.Y),
	}, Reorder(c.Color))
}

func (v *frameVisitor) VisitCircleFilled(c command.CircleFilled) {
	center := image.Pt(c.X+c.W/2, c.Y+c.H/2)
	ggcv.FillEllipse(v.dst, center, image.Pt(c.W+3, c.H+3), Reorder(c.Color))
}

// VisitImage copies the source at (x, y). Callers keep the region inside
// the frame; anything past the frame edge is dropped.
func (v *frameVisitor) VisitImage(c command.Image) {
	src, ok := c.Image.(*ggcv.Frame)
	if !ok || src == nil {
		v.r.logger().Warn("render: image handle not supported", "image", c.Image)
		return
	}
	src.CopyTo(v.dst, image.Pt(c.X, c.Y), min(src.Height(), c.H))
}

func (v *frameVisitor) VisitLine(c command.Line)                     { v.unhandled(c.Kind()) }
func (v *frameVisitor) VisitCurve(c command.Curve)                   { v.unhandled(c.Kind()) }
func (v *frameVisitor) VisitRectMultiColor(c command.RectMultiColor) { v.unhandled(c.Kind()) }
func (v *frameVisitor) VisitCircle(c command.Circle)                 { v.unhandled(c.Kind()) }
func (v *frameVisitor) VisitArc(c command.Arc)                       { v.unhandled(c.Kind()) }
func (v *frameVisitor) VisitArcFilled(c command.ArcFilled)           { v.unhandled(c.Kind()) }
func (v *frameVisitor) VisitTriangle(c command.Triangle)             { v.unhandled(c.Kind()) }
func (v *frameVisitor) VisitPolygon(c command.Polygon)               { v.unhandled(c.Kind()) }
func (v *frameVisitor) VisitPolygonFilled(c command.PolygonFilled)   { v.unhandled(c.Kind()) }
func (v *frameVisitor) VisitPolyline(c command.Polyline)             { v.unhandled(c.Kind()) }
func (v *frameVisitor) VisitCustom(c command.Custom)                 { v.unhandled(c.Kind()) }
