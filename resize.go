package ggcv

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Resize scales src by (fx, fy) into dst using bilinear interpolation.
// dst is reallocated to round(src.Width*fx) x round(src.Height*fy).
// Non-positive factors or an empty source leave dst empty.
func Resize(dst, src *Frame, fx, fy float64) {
	w := int(math.Round(float64(src.width) * fx))
	h := int(math.Round(float64(src.height) * fy))
	if src.Empty() || w <= 0 || h <= 0 {
		dst.Create(0, 0)
		return
	}

	in := src.ToRGBA()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(out, out.Bounds(), in, in.Bounds(), draw.Src, nil)
	dst.Load(out)
}
