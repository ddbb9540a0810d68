// Package capture provides frame sources for the preview panel.
//
// A [Source] fills a frame on every Read. Sources are opened by URI:
//
//	pattern:          animated test card
//	pattern:WxH       test card of the given size
//	dir:<path>        image files in path, in name order, looping
//	device:<n>        camera n (requires building with the gocv tag)
package capture

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/ggcv"
)

// Sentinel errors for the capture package.
var (
	// ErrUnknownSource is returned for a URI with an unknown scheme.
	ErrUnknownSource = errors.New("capture: unknown source")

	// ErrNoDevice is returned when camera capture is unavailable.
	ErrNoDevice = errors.New("capture: no capture device")

	// ErrEmptyDir is returned when a directory holds no decodable images.
	ErrEmptyDir = errors.New("capture: no images in directory")
)

// Source produces frames.
type Source interface {
	// Read blocks until the next frame is available and stores it in dst,
	// reallocating dst as needed. It reports false when no frame could be
	// read; dst is then left unchanged.
	Read(dst *ggcv.Frame) bool

	// Close releases the source.
	Close() error
}

// Open opens the source named by uri.
func Open(uri string) (Source, error) {
	scheme, arg, _ := strings.Cut(uri, ":")
	switch scheme {
	case "pattern":
		w, h := defaultPatternWidth, defaultPatternHeight
		if arg != "" {
			var err error
			if w, h, err = parseSize(arg); err != nil {
				return nil, fmt.Errorf("capture: pattern %q: %w", arg, err)
			}
		}
		return NewPattern(w, h), nil
	case "dir":
		return OpenDir(arg)
	case "device":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("capture: device %q: %w", arg, err)
		}
		return openDevice(n)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, uri)
	}
}

func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, errors.New("size must be WxH")
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, err
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, err
	}
	if w <= 0 || h <= 0 {
		return 0, 0, errors.New("size must be positive")
	}
	return w, h, nil
}
