// Package config loads the demo configuration from TOML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is the file Load reads when it exists.
const DefaultPath = "ggcv.toml"

// FailurePolicy selects what the preview does when a frame read fails.
type FailurePolicy string

const (
	// FailureReuse shows the last good frame.
	FailureReuse FailurePolicy = "reuse"
	// FailureSkip shows nothing for that frame.
	FailureSkip FailurePolicy = "skip"
)

// Config is the demo configuration.
type Config struct {
	Window  Window  `toml:"window"`
	Capture Capture `toml:"capture"`
	Log     Log     `toml:"log"`
	Style   Style   `toml:"style"`
}

// Window configures the display.
type Window struct {
	Driver  string   `toml:"driver"`
	Width   int      `toml:"width"`
	Height  int      `toml:"height"`
	KeyWait Duration `toml:"key_wait"`
	// MaxFrames stops the loop after this many frames; zero runs until
	// the window closes.
	MaxFrames int `toml:"max_frames"`
}

// Capture configures the preview source.
type Capture struct {
	Source    string        `toml:"source"`
	OnFailure FailurePolicy `toml:"on_failure"`
}

// Log configures diagnostics.
type Log struct {
	Level string `toml:"level"`
}

// Style configures colors.
type Style struct {
	// Background is the frame clear color as [blue, green, red].
	Background [3]uint8 `toml:"background"`
}

// Duration is a time.Duration that decodes from strings like "10ms".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{
			Driver:  "ebiten",
			Width:   800,
			Height:  600,
			KeyWait: Duration(10 * time.Millisecond),
		},
		Capture: Capture{
			Source:    "pattern:",
			OnFailure: FailureReuse,
		},
		Log:   Log{Level: "info"},
		Style: Style{Background: [3]uint8{49, 52, 49}},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Decode decodes TOML data over cfg and validates the result.
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("config: decode: %w", err)
	}
	return cfg.Validate()
}

// Validate checks the configuration for values the demo cannot use.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.Driver == "" {
		return errors.New("config: window driver is empty")
	}
	if c.Window.MaxFrames < 0 {
		return errors.New("config: max_frames must not be negative")
	}
	switch c.Capture.OnFailure {
	case FailureReuse, FailureSkip:
	default:
		return fmt.Errorf("config: unknown on_failure policy %q", c.Capture.OnFailure)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses the configured level.
func (l Log) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(l.Level))); err != nil {
		return 0, fmt.Errorf("config: log level %q: %w", l.Level, err)
	}
	return lvl, nil
}
