package command

// Font is a font handle carried by Text commands. The GUI uses it to
// measure strings during layout; renderers resolve it to their own font
// type with a type switch.
type Font interface {
	// TextWidth returns the width of s when drawn at the given height.
	TextWidth(height float64, s string) float64
}

// ImageHandle is an image carried by Image commands. Renderers resolve it
// to their own pixel buffer type with a type switch and treat it as
// read-only.
type ImageHandle interface {
	// Size returns the image dimensions in pixels.
	Size() (width, height int)
}
