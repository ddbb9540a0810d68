// Package ggcv provides a small BGR frame-buffer drawing library and the
// glue that lets an immediate-mode GUI render onto it.
//
// # Overview
//
// The root package is the "image library" half: a 3-channel [Frame],
// aliased drawing primitives ([Rectangle], [FillConvexPoly], [FillEllipse]),
// text measurement and drawing ([GetTextSize], [PutText]) and [Resize].
// Coordinates are integer pixels, origin top-left, and colors are
// [Scalar] values in frame byte order (blue, green, red).
//
// The sub-packages carry the rest of the adapter:
//   - command: the sealed draw-command variants emitted by the GUI
//   - gui: a compact immediate-mode toolkit (panels, widgets, input)
//   - render: replays a command list onto a Frame
//   - input: single-slot mouse mailbox and input translation
//   - window: windowing drivers (ebitenwin, headless)
//   - capture: frame sources (test pattern, image directory, camera)
//
// # Quick Start
//
//	f := ggcv.NewFrame(800, 600)
//	f.SetTo(ggcv.BGR(49, 52, 49))
//	ggcv.Rectangle(f, image.Pt(10, 10), image.Pt(60, 30), ggcv.BGR(0, 0, 255), 2)
//	font := &ggcv.FontDescriptor{Face: ggcv.FaceRegular, Thickness: 1}
//	ggcv.PutText(f, "hello", image.Pt(20, 80), font.Face, 0.5, ggcv.White, font.Thickness)
//
// # Rasterization
//
// Every primitive is aliased: a pixel is either written with the full
// color or left alone. This keeps rendering deterministic, so drawing the
// same command twice on equal frames yields equal pixels.
package ggcv
