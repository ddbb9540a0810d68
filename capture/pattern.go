package capture

import "github.com/gogpu/ggcv"

const (
	defaultPatternWidth  = 640
	defaultPatternHeight = 480
)

// bars are the test card colors, left to right.
var bars = [...]ggcv.Scalar{
	ggcv.BGR(192, 192, 192),
	ggcv.BGR(0, 192, 192),
	ggcv.BGR(192, 192, 0),
	ggcv.BGR(0, 192, 0),
	ggcv.BGR(192, 0, 192),
	ggcv.BGR(0, 0, 192),
	ggcv.BGR(192, 0, 0),
}

// Pattern is an animated test card: vertical color bars with a white
// marker sweeping across the lower band. Reads never fail.
type Pattern struct {
	width  int
	height int
	tick   int
}

// NewPattern creates a test card source.
func NewPattern(width, height int) *Pattern {
	return &Pattern{width: width, height: height}
}

// Read implements Source.
func (p *Pattern) Read(dst *ggcv.Frame) bool {
	dst.Create(p.width, p.height)
	band := p.height * 3 / 4
	for x := 0; x < p.width; x++ {
		c := bars[x*len(bars)/p.width]
		for y := 0; y < band; y++ {
			dst.SetPixel(x, y, c)
		}
		g := uint8(x * 255 / max(p.width-1, 1))
		for y := band; y < p.height; y++ {
			dst.SetPixel(x, y, ggcv.BGR(g, g, g))
		}
	}
	marker := p.tick % max(p.width, 1)
	for y := band; y < p.height; y++ {
		for x := marker; x < min(marker+8, p.width); x++ {
			dst.SetPixel(x, y, ggcv.White)
		}
	}
	p.tick += 4
	return true
}

// Close implements Source.
func (p *Pattern) Close() error {
	return nil
}
