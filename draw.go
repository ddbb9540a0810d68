package ggcv

import (
	"image"

	"golang.org/x/image/vector"
)

// Filled is the thickness value that makes Rectangle fill its box.
const Filled = -1

// coverageThreshold is the mask alpha at or above which a pixel is painted.
const coverageThreshold = 0x80

// kappa is the cubic Bezier control distance for a quarter ellipse.
const kappa = 0.5522847498307936

// Rectangle draws the axis-aligned rectangle spanned by the corners p1 and
// p2. The corners are normalized, so inverted rectangles are drawn as if
// their corners were swapped.
//
// If thickness is negative the inclusive box is filled. Otherwise each edge
// is drawn as a band of max(thickness, 1) pixels covering offsets
// [-(t/2), t-1-(t/2)] around the edge line. Everything is clipped to f.
func Rectangle(f *Frame, p1, p2 image.Point, s Scalar, thickness int) {
	x1, x2 := min(p1.X, p2.X), max(p1.X, p2.X)
	y1, y2 := min(p1.Y, p2.Y), max(p1.Y, p2.Y)

	if thickness < 0 {
		fillBox(f, x1, y1, x2, y2, s)
		return
	}

	t := max(thickness, 1)
	lo := -(t / 2)
	hi := t - 1 + lo

	fillBox(f, x1+lo, y1+lo, x2+hi, y1+hi, s) // top
	fillBox(f, x1+lo, y2+lo, x2+hi, y2+hi, s) // bottom
	fillBox(f, x1+lo, y1+lo, x1+hi, y2+hi, s) // left
	fillBox(f, x2+lo, y1+lo, x2+hi, y2+hi, s) // right
}

// fillBox fills the inclusive box [x0,x1]x[y0,y1] clipped to f.
func fillBox(f *Frame, x0, y0, x1, y1 int, s Scalar) {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, f.width-1), min(y1, f.height-1)
	if x0 > x1 || y0 > y1 {
		return
	}
	for y := y0; y <= y1; y++ {
		f.fillSpan(y, x0, x1, s)
	}
}

// FillConvexPoly fills the convex polygon through pts.
// Fewer than three points draw nothing.
func FillConvexPoly(f *Frame, pts []image.Point, s Scalar) {
	if len(pts) < 3 {
		return
	}
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	bounds := image.Rect(lo.X, lo.Y, hi.X+1, hi.Y+1)

	fillMask(f, bounds, s, func(z *vector.Rasterizer, dx, dy float32) {
		z.MoveTo(float32(pts[0].X)+dx, float32(pts[0].Y)+dy)
		for _, p := range pts[1:] {
			z.LineTo(float32(p.X)+dx, float32(p.Y)+dy)
		}
		z.ClosePath()
	})
}

// FillEllipse fills the axis-aligned ellipse centred at center whose full
// axes are size.X and size.Y. Non-positive sizes draw nothing.
func FillEllipse(f *Frame, center, size image.Point, s Scalar) {
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	a := float32(size.X) / 2
	b := float32(size.Y) / 2
	bounds := image.Rect(
		center.X-size.X/2-1, center.Y-size.Y/2-1,
		center.X+size.X/2+2, center.Y+size.Y/2+2,
	)

	fillMask(f, bounds, s, func(z *vector.Rasterizer, dx, dy float32) {
		cx := float32(center.X) + dx
		cy := float32(center.Y) + dy
		ka, kb := a*kappa, b*kappa
		z.MoveTo(cx+a, cy)
		z.CubeTo(cx+a, cy+kb, cx+ka, cy+b, cx, cy+b)
		z.CubeTo(cx-ka, cy+b, cx-a, cy+kb, cx-a, cy)
		z.CubeTo(cx-a, cy-kb, cx-ka, cy-b, cx, cy-b)
		z.CubeTo(cx+ka, cy-b, cx+a, cy-kb, cx+a, cy)
		z.ClosePath()
	})
}

// fillMask rasterizes a path over bounds (clipped to f) and paints every
// pixel whose coverage reaches coverageThreshold. The build callback
// receives the translation from frame coordinates to mask coordinates,
// already shifted by half a pixel so integer points hit pixel centres.
func fillMask(f *Frame, bounds image.Rectangle, s Scalar, build func(z *vector.Rasterizer, dx, dy float32)) {
	r := bounds.Intersect(f.Bounds())
	if r.Empty() {
		return
	}
	z := vector.NewRasterizer(r.Dx(), r.Dy())
	build(z, 0.5-float32(r.Min.X), 0.5-float32(r.Min.Y))

	mask := image.NewAlpha(image.Rect(0, 0, r.Dx(), r.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	paintMask(f, mask, r.Min, s)
}

// paintMask writes s wherever mask alpha reaches coverageThreshold.
func paintMask(f *Frame, mask *image.Alpha, at image.Point, s Scalar) {
	b := mask.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := mask.Pix[(y-b.Min.Y)*mask.Stride:]
		for x := b.Min.X; x < b.Max.X; x++ {
			if row[x-b.Min.X] >= coverageThreshold {
				f.SetPixel(at.X+x-b.Min.X, at.Y+y-b.Min.Y, s)
			}
		}
	}
}
