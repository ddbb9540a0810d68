package capture

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP

	"github.com/gogpu/ggcv"
)

var imageExts = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// Dir plays the images of a directory in name order, looping forever.
// A file that fails to decode fails that Read; the next Read moves on.
type Dir struct {
	files []string
	next  int
}

// OpenDir lists the image files in path.
func OpenDir(path string) (*Dir, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("capture: open dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if slices.Contains(imageExts, strings.ToLower(filepath.Ext(e.Name()))) {
			files = append(files, filepath.Join(path, e.Name()))
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDir, path)
	}
	slices.Sort(files)
	return &Dir{files: files}, nil
}

// Len returns the number of images in the sequence.
func (d *Dir) Len() int {
	return len(d.files)
}

// Read implements Source.
func (d *Dir) Read(dst *ggcv.Frame) bool {
	name := d.files[d.next]
	d.next = (d.next + 1) % len(d.files)

	img, err := decodeFile(name)
	if err != nil {
		ggcv.Logger().Debug("capture: frame not decoded", "file", name, "err", err)
		return false
	}
	dst.Load(img)
	return true
}

// Close implements Source.
func (d *Dir) Close() error {
	return nil
}

func decodeFile(name string) (image.Image, error) {
	f, err := os.Open(name) //nolint:gosec // names come from the listed directory
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	img, _, err := image.Decode(f)
	return img, err
}
