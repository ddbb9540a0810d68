package ggcv

import "image/color"

// Scalar is a pixel value in frame byte order: blue, green, red.
type Scalar [3]uint8

// Common colors.
var (
	Black = Scalar{0, 0, 0}
	White = Scalar{255, 255, 255}
)

// BGR creates a Scalar from its channels in frame order.
func BGR(b, g, r uint8) Scalar {
	return Scalar{b, g, r}
}

// B returns the blue channel.
func (s Scalar) B() uint8 { return s[0] }

// G returns the green channel.
func (s Scalar) G() uint8 { return s[1] }

// R returns the red channel.
func (s Scalar) R() uint8 { return s[2] }

// RGBA implements color.Color. Frames are always opaque.
func (s Scalar) RGBA() (r, g, b, a uint32) {
	r = uint32(s[2]) * 0x101
	g = uint32(s[1]) * 0x101
	b = uint32(s[0]) * 0x101
	return r, g, b, 0xffff
}

// FromColor converts a standard color.Color to a Scalar, dropping alpha
// after un-premultiplying.
func FromColor(c color.Color) Scalar {
	if s, ok := c.(Scalar); ok {
		return s
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Scalar{n.B, n.G, n.R}
}

// ScalarModel converts colors to Scalar.
var ScalarModel = color.ModelFunc(func(c color.Color) color.Color {
	return FromColor(c)
})
