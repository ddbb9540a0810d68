package ggcv

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
)

// channels is the number of bytes per pixel.
const channels = 3

// Frame is a 3-channel 8-bit pixel buffer stored row-major in B,G,R order.
//
// Frame implements image.Image and draw.Image so it can be used as the
// destination of golang.org/x/image operations.
type Frame struct {
	width  int
	height int
	data   []uint8
}

// NewFrame creates a new black frame with the given dimensions.
// Negative dimensions are treated as zero.
func NewFrame(width, height int) *Frame {
	width, height = max(width, 0), max(height, 0)
	return &Frame{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*channels),
	}
}

// Width returns the number of columns.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the number of rows.
func (f *Frame) Height() int {
	return f.height
}

// Size returns the frame dimensions. It lets a Frame serve as an image
// handle in draw commands. A nil frame has size 0x0.
func (f *Frame) Size() (width, height int) {
	if f == nil {
		return 0, 0
	}
	return f.width, f.height
}

// Empty reports whether the frame has no pixels. A nil frame is empty.
func (f *Frame) Empty() bool {
	return f == nil || f.width == 0 || f.height == 0
}

// Data returns the raw pixel data (B,G,R, 3 bytes per pixel).
func (f *Frame) Data() []uint8 {
	return f.data
}

// Create reallocates the frame to the given dimensions if they differ from
// the current ones. The contents are undefined after a reallocation.
func (f *Frame) Create(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if f.width == width && f.height == height {
		return
	}
	f.width, f.height = width, height
	n := width * height * channels
	if cap(f.data) >= n {
		f.data = f.data[:n]
		return
	}
	f.data = make([]uint8, n)
}

// Pixel returns the value at (x, y). Out-of-bounds reads return Black.
func (f *Frame) Pixel(x, y int) Scalar {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Black
	}
	i := (y*f.width + x) * channels
	return Scalar{f.data[i], f.data[i+1], f.data[i+2]}
}

// SetPixel writes s at (x, y). Out-of-bounds writes are ignored.
func (f *Frame) SetPixel(x, y int, s Scalar) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	i := (y*f.width + x) * channels
	f.data[i+0] = s[0]
	f.data[i+1] = s[1]
	f.data[i+2] = s[2]
}

// SetTo fills the entire frame with s.
func (f *Frame) SetTo(s Scalar) {
	for i := 0; i < len(f.data); i += channels {
		f.data[i+0] = s[0]
		f.data[i+1] = s[1]
		f.data[i+2] = s[2]
	}
}

// fillSpan writes s over pixels [x0, x1] of row y. Callers clip first.
func (f *Frame) fillSpan(y, x0, x1 int, s Scalar) {
	row := f.data[y*f.width*channels:]
	for x := x0; x <= x1; x++ {
		i := x * channels
		row[i+0] = s[0]
		row[i+1] = s[1]
		row[i+2] = s[2]
	}
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	c := &Frame{width: f.width, height: f.height, data: make([]uint8, len(f.data))}
	copy(c.data, f.data)
	return c
}

// Equal reports whether both frames have the same dimensions and pixels.
func (f *Frame) Equal(o *Frame) bool {
	return f.width == o.width && f.height == o.height && bytes.Equal(f.data, o.data)
}

// CopyTo copies the frame into dst with its top-left corner at origin.
// All columns are copied; at most rows rows are copied (all rows when rows
// exceeds the frame height). No scaling is performed. Pixels that would
// land outside dst are dropped.
func (f *Frame) CopyTo(dst *Frame, origin image.Point, rows int) {
	rows = min(rows, f.height)
	for sy := 0; sy < rows; sy++ {
		dy := origin.Y + sy
		if dy < 0 || dy >= dst.height {
			continue
		}
		sx0, dx0 := 0, origin.X
		if dx0 < 0 {
			sx0, dx0 = -dx0, 0
		}
		n := min(f.width-sx0, dst.width-dx0)
		if n <= 0 {
			continue
		}
		src := f.data[(sy*f.width+sx0)*channels:]
		d := dst.data[(dy*dst.width+dx0)*channels:]
		copy(d[:n*channels], src[:n*channels])
	}
}

// Load replaces the frame contents with img, resizing the frame to the
// image bounds.
func (f *Frame) Load(img image.Image) {
	b := img.Bounds()
	f.Create(b.Dx(), b.Dy())
	if rgba, ok := img.(*image.RGBA); ok {
		for y := 0; y < f.height; y++ {
			src := rgba.Pix[(y+b.Min.Y-rgba.Rect.Min.Y)*rgba.Stride+(b.Min.X-rgba.Rect.Min.X)*4:]
			dst := f.data[y*f.width*channels:]
			for x := 0; x < f.width; x++ {
				dst[x*channels+0] = src[x*4+2]
				dst[x*channels+1] = src[x*4+1]
				dst[x*channels+2] = src[x*4+0]
			}
		}
		return
	}
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			f.SetPixel(x, y, FromColor(img.At(b.Min.X+x, b.Min.Y+y)))
		}
	}
}

// FromImage creates a frame from an image.
func FromImage(img image.Image) *Frame {
	f := NewFrame(0, 0)
	f.Load(img)
	return f
}

// ToRGBA converts the frame to an opaque image.RGBA.
func (f *Frame) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	f.WriteRGBA(img.Pix)
	return img
}

// WriteRGBA writes the frame as tightly packed RGBA bytes into pix, which
// must hold at least Width*Height*4 bytes.
func (f *Frame) WriteRGBA(pix []uint8) {
	for i, j := 0, 0; i < len(f.data); i, j = i+channels, j+4 {
		pix[j+0] = f.data[i+2]
		pix[j+1] = f.data[i+1]
		pix[j+2] = f.data[i+0]
		pix[j+3] = 0xff
	}
}

// SavePNG saves the frame to a PNG file.
func (f *Frame) SavePNG(path string) error {
	out, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()
	return png.Encode(out, f.ToRGBA())
}

// At implements the image.Image interface.
func (f *Frame) At(x, y int) color.Color {
	return f.Pixel(x, y)
}

// Set implements the draw.Image interface.
func (f *Frame) Set(x, y int, c color.Color) {
	f.SetPixel(x, y, FromColor(c))
}

// Bounds implements the image.Image interface.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// ColorModel implements the image.Image interface.
func (f *Frame) ColorModel() color.Model {
	return ScalarModel
}
