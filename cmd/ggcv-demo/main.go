// Command ggcv-demo opens a window with a widget panel and a live video
// preview rendered through the frame renderer.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/ggcv"
	"github.com/gogpu/ggcv/capture"
	"github.com/gogpu/ggcv/internal/config"
	"github.com/gogpu/ggcv/internal/demo"
	"github.com/gogpu/ggcv/window"

	_ "github.com/gogpu/ggcv/window/ebitenwin"
	_ "github.com/gogpu/ggcv/window/headless"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "ggcv-demo:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		cfgPath = flag.String("config", config.DefaultPath, "configuration file")
		driver  = flag.String("driver", "", "window driver (overrides config)")
		source  = flag.String("source", "", "capture source (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *driver != "" {
		cfg.Window.Driver = *driver
	}
	if *source != "" {
		cfg.Capture.Source = *source
	}

	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return err
	}
	ggcv.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	win, err := window.Open(cfg.Window.Driver, os.Args[0], cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return err
	}
	defer win.Close()

	src, err := capture.Open(cfg.Capture.Source)
	if err != nil {
		return err
	}

	app := demo.New(cfg, win, src)
	return win.Run(app.Run)
}
