// Package app runs keynav's interactive trace session: a tab list and a
// toggle group in an in-memory focus tree, driven by terminal key events
// and user keymaps.
package app

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/dshills/keynav/internal/config"
	"github.com/dshills/keynav/internal/focus"
	"github.com/dshills/keynav/internal/input/key"
	"github.com/dshills/keynav/internal/input/keymap"
	"github.com/dshills/keynav/internal/input/macro"
	"github.com/dshills/keynav/internal/logging"
	"github.com/dshills/keynav/internal/script"
	"github.com/dshills/keynav/internal/widget/tablist"
	"github.com/dshills/keynav/internal/widget/togglegroup"
)

// Backend is the terminal the session reads keys from and draws to.
type Backend interface {
	Init() error
	Shutdown()
	ReadKey() (*key.Event, bool)
	DrawLines(lines []string)
	Beep()
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// LogLevel overrides the configured log level when set.
	LogLevel string

	// LogOutput receives log lines. Defaults to io.Discard since the
	// screen is in use.
	LogOutput io.Writer

	// Keymaps replaces the configured keymap files when non-empty.
	Keymaps []string

	// Orientation overrides the configured orientation when set.
	Orientation string

	// Watch reloads keymaps when the config or keymap files change.
	Watch bool
}

// Application owns the widgets and routes key events to them. All widget
// state is touched only from the goroutine calling HandleKey or Run.
type Application struct {
	opts   Options
	cfg    *config.Config
	logger *logging.Logger

	metrics    *keymap.Metrics
	dispatcher *keymap.Dispatcher
	runner     *script.Runner

	tree    *focus.Tree
	tabs    *tablist.TabList
	toggles *togglegroup.Group

	bindings keymap.KeyMap
	sources  []string

	recorder  *macro.Recorder
	replaying bool
	macroKey  bool

	lastCombo string
	handledBy string
	status    string

	backend  Backend
	running  atomic.Bool
	done     chan struct{}
	stopOnce sync.Once
	reload   chan []string
}

// New creates an application and loads its config and keymaps.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:     opts,
		done:     make(chan struct{}),
		reload:   make(chan []string, 1),
		recorder: macro.NewRecorder(),
	}
	if err := app.bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// SetBackend sets the terminal backend. Must be called before Run.
func (app *Application) SetBackend(b Backend) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Config returns the effective configuration.
func (app *Application) Config() *config.Config {
	return app.cfg
}

// Metrics returns dispatch statistics for the global keymap.
func (app *Application) Metrics() keymap.Snapshot {
	return app.metrics.Snapshot()
}

// Tree returns the focus tree.
func (app *Application) Tree() *focus.Tree {
	return app.tree
}

// Tabs returns the tab list.
func (app *Application) Tabs() *tablist.TabList {
	return app.tabs
}

// Toggles returns the toggle group.
func (app *Application) Toggles() *togglegroup.Group {
	return app.toggles
}

// Status returns the last status message.
func (app *Application) Status() string {
	return app.status
}

// Close releases the Lua runner.
func (app *Application) Close() {
	if app.runner != nil {
		app.runner.Close()
	}
}
