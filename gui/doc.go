// Package gui is a compact immediate-mode GUI toolkit.
//
// Each frame the application opens an input transaction, injects the
// input gathered since the previous frame, runs its layout code, then
// drains the emitted draw commands:
//
//	ctx.InputBegin()
//	ctx.InputMotion(x, y)
//	ctx.InputEnd()
//
//	if ctx.Begin("Demo", gui.Rect{X: 50, Y: 50, W: 200, H: 200}, gui.PanelBorder|gui.PanelTitle) {
//	    ctx.LayoutRowDynamic(30, 1)
//	    if ctx.Button("button") {
//	        // clicked
//	    }
//	}
//	ctx.End()
//
//	for cmd := range ctx.Commands() {
//	    // draw cmd
//	}
//	ctx.Clear()
//
// Panels keep their position, size and collapsed state between frames,
// keyed by title. Widgets keep no state besides what the caller passes in.
package gui
