// Package window defines the windowing surface the event loop runs
// against and a registry of drivers that implement it.
//
// Drivers register themselves in init(), following the database/sql
// driver pattern:
//
//	import _ "github.com/gogpu/ggcv/window/ebitenwin"
//
//	w, err := window.Open("ebiten", os.Args[0], 800, 600)
package window

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/gogpu/ggcv"
	"github.com/gogpu/ggcv/input"
)

// NoKey is returned by WaitKey when no key arrived before the timeout.
const NoKey = -1

// MouseCallback receives pointer events. Drivers may call it from a
// goroutine other than the event loop's.
type MouseCallback func(ev input.MouseEvent)

// Window is a display surface with keyboard and mouse input.
type Window interface {
	// SetMouseCallback registers cb for pointer events, replacing any
	// previous callback. A nil cb disables delivery.
	SetMouseCallback(cb MouseCallback)

	// WaitKey blocks until a key is pressed or timeout elapses and returns
	// the key code, or NoKey on timeout.
	WaitKey(timeout time.Duration) int

	// Visible reports whether the window is still open. It turns false
	// once the user closes the window.
	Visible() bool

	// Show displays f. The window copies the pixels; f may be reused.
	Show(f *ggcv.Frame)

	// Run executes loop, servicing the window while loop runs. It returns
	// loop's error. Some drivers must be run from the main goroutine.
	Run(loop func() error) error

	// Close releases the window.
	Close() error
}

// Factory opens a window with the given title and client size.
type Factory func(title string, width, height int) (Window, error)

var (
	registryMu sync.RWMutex
	drivers    = make(map[string]Factory)
)

// Register makes a driver available by name.
// Register panics if factory is nil or name is already registered.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("window: Register factory is nil")
	}
	if _, dup := drivers[name]; dup {
		panic("window: Register called twice for " + name)
	}
	drivers[name] = factory
}

// Unregister removes a driver. It is primarily useful in tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(drivers, name)
}

// Open opens a window with the named driver.
func Open(driver, title string, width, height int) (Window, error) {
	registryMu.RLock()
	factory, ok := drivers[driver]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("window: unknown driver %q (forgotten import?)", driver)
	}
	w, err := factory(title, width, height)
	if err != nil {
		return nil, fmt.Errorf("window: open %s: %w", driver, err)
	}
	return w, nil
}

// Drivers returns the sorted names of registered drivers.
func Drivers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a driver with the given name exists.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := drivers[name]
	return ok
}
