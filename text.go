package ggcv

import (
	"bytes"
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/ggcv/internal/textcache"
)

// TextScale is the scale at which GUI text is measured and drawn.
const TextScale = 0.5

// basePixelSize is the em size in pixels of a face drawn at scale 1.
const basePixelSize = 30

// FontFace identifies one of the built-in font faces.
type FontFace int

// Built-in font faces, all from the Go font family.
const (
	FaceRegular FontFace = iota
	FaceBold
	FaceItalic
	FaceMono

	numFaces
)

var fontFaceNames = [...]string{
	FaceRegular: "Regular",
	FaceBold:    "Bold",
	FaceItalic:  "Italic",
	FaceMono:    "Mono",
}

// String returns the face name.
func (f FontFace) String() string {
	if f >= 0 && f < numFaces {
		return fontFaceNames[f]
	}
	return fmt.Sprintf("FontFace(%d)", int(f))
}

var fontData = [numFaces][]byte{
	FaceRegular: goregular.TTF,
	FaceBold:    gobold.TTF,
	FaceItalic:  goitalic.TTF,
	FaceMono:    gomono.TTF,
}

// FontDescriptor selects a face and stroke thickness for GUI text.
// It is immutable after construction and serves as the GUI font handle.
type FontDescriptor struct {
	Face      FontFace
	Thickness int
}

// TextWidth returns the rendered width of s at TextScale. The requested
// height is ignored: GUI text always renders at the same scale.
func (d *FontDescriptor) TextWidth(_ float64, s string) float64 {
	size, _ := GetTextSize(s, d.Face, TextScale, d.Thickness)
	return float64(size.X)
}

// loadedFont pairs the outline source with the shaping font for one face.
type loadedFont struct {
	outlines *sfnt.Font
	shaping  *gtfont.Font
}

var (
	fontsOnce [numFaces]sync.Once
	fonts     [numFaces]*loadedFont
	fontErrs  [numFaces]error

	textSizes = textcache.New(textcache.DefaultCapacity)

	shaperPool = sync.Pool{
		New: func() any { return &shaping.HarfbuzzShaper{} },
	}
)

// loadFont parses a built-in face once.
func loadFont(face FontFace) (*loadedFont, error) {
	if face < 0 || face >= numFaces {
		return nil, fmt.Errorf("ggcv: unknown font face %d", int(face))
	}
	fontsOnce[face].Do(func() {
		data := fontData[face]
		outlines, err := sfnt.Parse(data)
		if err != nil {
			fontErrs[face] = fmt.Errorf("ggcv: parse %s outlines: %w", face, err)
			return
		}
		parsed, err := gtfont.ParseTTF(bytes.NewReader(data))
		if err != nil {
			fontErrs[face] = fmt.Errorf("ggcv: parse %s for shaping: %w", face, err)
			return
		}
		fonts[face] = &loadedFont{outlines: outlines, shaping: parsed.Font}
	})
	return fonts[face], fontErrs[face]
}

// placedGlyph is a shaped glyph with its pen offset from the text origin.
type placedGlyph struct {
	id sfnt.GlyphIndex
	x  float64
}

// shape runs HarfBuzz shaping over s and returns the glyphs and the total
// horizontal advance in pixels.
func (lf *loadedFont) shape(s string, ppem float64) ([]placedGlyph, float64) {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil, 0
	}
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gtfont.NewFace(lf.shaping),
		Size:      fixed.Int26_6(ppem * 64),
		Script:    language.LookupScript(runes[0]),
		Language:  language.NewLanguage("en"),
	}
	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	shaperPool.Put(hb)

	glyphs := make([]placedGlyph, 0, len(out.Glyphs))
	var x float64
	for _, g := range out.Glyphs {
		glyphs = append(glyphs, placedGlyph{
			id: sfnt.GlyphIndex(g.GlyphID), //nolint:gosec // Go fonts have fewer than 65536 glyphs
			x:  x + float64(g.XOffset)/64,
		})
		x += float64(g.Advance) / 64
	}
	return glyphs, x
}

// metrics returns the face metrics at ppem.
func (lf *loadedFont) metrics(ppem float64) font.Metrics {
	var buf sfnt.Buffer
	m, err := lf.outlines.Metrics(&buf, fixed.Int26_6(ppem*64), font.HintingNone)
	if err != nil {
		return font.Metrics{}
	}
	return m
}

// GetTextSize measures text drawn with face at scale and thickness.
// It returns the bounding size (width, cap height) and the baseline: the
// distance from the baseline to the lowest point of descenders, including
// half the stroke thickness. Measurements are cached.
func GetTextSize(text string, face FontFace, scale float64, thickness int) (image.Point, int) {
	t := max(thickness, 1)
	key := textcache.Key{Text: text, Face: int(face), Scale: scale, Thickness: t}
	m, err := textSizes.GetOrCompute(key, func() (textcache.Metrics, error) {
		return measure(text, face, scale, t)
	})
	if err != nil {
		Logger().Warn("ggcv: text size unavailable", "face", face, "err", err)
		return image.Point{}, 0
	}
	return m.Size, m.Baseline
}

// TextCacheStats reports the text measurement cache usage.
func TextCacheStats() textcache.Stats {
	return textSizes.Stats()
}

func measure(text string, face FontFace, scale float64, t int) (textcache.Metrics, error) {
	lf, err := loadFont(face)
	if err != nil {
		return textcache.Metrics{}, err
	}
	ppem := basePixelSize * scale
	m := lf.metrics(ppem)

	_, advance := lf.shape(norm.NFC.String(text), ppem)
	height := m.CapHeight
	if height <= 0 {
		height = m.Ascent
	}

	size := image.Point{Y: height.Round()}
	if advance > 0 {
		size.X = int(math.Round(advance)) + t - 1
	}
	return textcache.Metrics{Size: size, Baseline: m.Descent.Round() + t/2}, nil
}

// PutText draws text with its baseline starting at org (the bottom-left
// corner of the first glyph, ignoring descenders). Thickness above one
// widens every stroke.
func PutText(f *Frame, text string, org image.Point, face FontFace, scale float64, s Scalar, thickness int) {
	lf, err := loadFont(face)
	if err != nil {
		Logger().Warn("ggcv: text not drawn", "face", face, "err", err)
		return
	}
	t := max(thickness, 1)
	ppem := basePixelSize * scale
	glyphs, advance := lf.shape(norm.NFC.String(text), ppem)
	if len(glyphs) == 0 {
		return
	}
	m := lf.metrics(ppem)

	pad := t + 1
	bounds := image.Rect(
		org.X-pad, org.Y-m.Ascent.Ceil()-pad,
		org.X+int(math.Ceil(advance))+pad, org.Y+m.Descent.Ceil()+pad,
	)
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	ox := float32(org.X - bounds.Min.X)
	oy := float32(org.Y - bounds.Min.Y)

	var buf sfnt.Buffer
	ppemFixed := fixed.Int26_6(ppem * 64)
	for _, g := range glyphs {
		segs, err := lf.outlines.LoadGlyph(&buf, g.id, ppemFixed, nil)
		if err != nil {
			continue
		}
		appendOutline(z, segs, ox+float32(g.x), oy)
	}

	mask := image.NewAlpha(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	if t > 1 {
		mask = dilate(mask, t)
	}
	paintMask(f, mask, bounds.Min, s)
}

// appendOutline adds one glyph outline, offset by (dx, dy), to z.
func appendOutline(z *vector.Rasterizer, segs sfnt.Segments, dx, dy float32) {
	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X)/64 + dx, float32(p.Y)/64 + dy
	}
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				z.ClosePath()
			}
			x, y := pt(seg.Args[0])
			z.MoveTo(x, y)
			open = true
		case sfnt.SegmentOpLineTo:
			x, y := pt(seg.Args[0])
			z.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			z.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			ex, ey := pt(seg.Args[2])
			z.CubeTo(bx, by, cx, cy, ex, ey)
		}
	}
	if open {
		z.ClosePath()
	}
}

// dilate grows every covered pixel of mask into a t x t square.
func dilate(mask *image.Alpha, t int) *image.Alpha {
	b := mask.Bounds()
	out := image.NewAlpha(b)
	lo := -(t / 2)
	hi := t - 1 + lo
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if mask.AlphaAt(x, y).A < coverageThreshold {
				continue
			}
			for dy := lo; dy <= hi; dy++ {
				for dx := lo; dx <= hi; dx++ {
					out.SetAlpha(x+dx, y+dy, mask.AlphaAt(x, y))
				}
			}
		}
	}
	return out
}
