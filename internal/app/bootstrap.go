package app

import (
	"fmt"
	"io"

	"github.com/dshills/keynav/internal/config"
	"github.com/dshills/keynav/internal/focus"
	"github.com/dshills/keynav/internal/input/keymap"
	"github.com/dshills/keynav/internal/input/keymap/loader"
	"github.com/dshills/keynav/internal/logging"
	"github.com/dshills/keynav/internal/script"
	"github.com/dshills/keynav/internal/widget/tablist"
	"github.com/dshills/keynav/internal/widget/togglegroup"
)

// Element ids of the demo widgets.
const (
	TabsRootID    = "tabs"
	TogglesRootID = "format"
)

var demoTabs = []tablist.Tab{
	{ID: "general", Label: "General"},
	{ID: "keys", Label: "Keys"},
	{ID: "about", Label: "About"},
}

var demoToggles = []string{"bold", "italic", "underline"}

// defaultBindings apply when no keymap file is configured.
var defaultBindings = []loader.Binding{
	{Keys: "Control+Q", Action: ActionQuit, Description: "Quit"},
	{Keys: "Tab", Action: ActionFocusNext, Description: "Move focus to the next widget"},
	{Keys: "Shift+Tab", Action: ActionFocusNext, Description: "Move focus to the next widget"},
	{Keys: "Control+O", Action: ActionToggleOrientation, Description: "Switch navigation axis"},
	{Keys: "Control+R", Action: ActionReload, Description: "Reload keymaps"},
	{Keys: "F2", Action: ActionMacroRecord, Description: "Start or stop recording keys"},
	{Keys: "F3", Action: ActionMacroPlay, Description: "Replay the last recording"},
}

// bootstrap initializes components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config
	cfg, err := config.Load(app.configPath())
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	if app.opts.LogLevel != "" {
		cfg.Log.Level = app.opts.LogLevel
	}
	if app.opts.Orientation != "" {
		cfg.Navigation.Orientation = app.opts.Orientation
	}
	if len(app.opts.Keymaps) > 0 {
		cfg.Keymaps = app.opts.Keymaps
	}
	if err := cfg.Validate(); err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.cfg = cfg

	// 2. Logging
	out := app.opts.LogOutput
	if out == nil {
		out = io.Discard
	}
	app.logger = logging.New(logging.Config{Level: cfg.LogLevel(), Output: out, Prefix: "keynav"})

	// 3. Dispatch and scripting
	app.metrics = keymap.NewMetrics()
	app.dispatcher = keymap.NewDispatcher(
		keymap.WithLogger(app.logger),
		keymap.WithMetrics(app.metrics),
	)
	app.runner = script.NewRunner(
		script.WithTimeout(cfg.ScriptTimeout()),
		script.WithLogger(app.logger),
	)

	// 4. Widgets
	if err := app.buildWidgets(); err != nil {
		return &InitError{Component: "widgets", Err: err}
	}

	// 5. Keymaps
	if err := app.loadBindings(); err != nil {
		return &InitError{Component: "keymap", Err: err}
	}
	return nil
}

func (app *Application) configPath() string {
	if app.opts.ConfigPath != "" {
		return app.opts.ConfigPath
	}
	return config.DefaultFileName
}

func (app *Application) buildWidgets() error {
	app.tree = focus.NewTree()

	tabs, err := tablist.New(app.tree,
		tablist.WithRootID(TabsRootID),
		tablist.WithOrientation(app.cfg.Orientation()),
		tablist.WithLogger(app.logger),
		tablist.WithOnChange(func(from, to string) {
			app.logger.Info("tab %s -> %s", from, to)
		}),
	)
	if err != nil {
		return err
	}
	for _, tab := range demoTabs {
		if _, err := tabs.AddTab(tab); err != nil {
			return err
		}
	}

	toggles, err := togglegroup.New(app.tree,
		togglegroup.WithRootID(TogglesRootID),
		togglegroup.WithType(togglegroup.Multiple),
		togglegroup.WithOrientation(app.cfg.Orientation()),
		togglegroup.WithLogger(app.logger),
	)
	if err != nil {
		return err
	}
	for _, id := range demoToggles {
		if _, err := toggles.AddItem(id); err != nil {
			return err
		}
	}

	app.tabs = tabs
	app.toggles = toggles
	if id, ok := tabs.ActiveID(); ok {
		app.tree.Focus(id)
	}
	return nil
}

// loadBindings reads the configured keymaps and binds them. On error the
// current bindings are kept.
func (app *Application) loadBindings() error {
	actions := app.actions()
	lua := loader.WithResolver("lua:", app.runner.Handler)

	paths := app.cfg.KeymapPaths()
	if len(paths) == 0 {
		km := &loader.Keymap{Name: "default", Bindings: defaultBindings}
		bound, err := km.Bind(actions, lua)
		if err != nil {
			return err
		}
		app.bindings = bound
		app.sources = nil
		return nil
	}

	bound := make(keymap.KeyMap)
	for _, path := range paths {
		km, err := loader.Load(path)
		if err != nil {
			return &ReloadError{Path: path, Err: err}
		}
		if err := km.Validate(); err != nil {
			return &ReloadError{Path: path, Err: err}
		}
		for _, s := range km.Shadowed() {
			app.logger.Warn("%s: %v all bind %s; the last one wins", path, s.Declared, s.Combo)
		}
		m, err := km.Bind(actions, lua)
		if err != nil {
			return &ReloadError{Path: path, Err: err}
		}
		for declared, h := range m {
			bound[declared] = h
		}
	}

	app.bindings = bound
	app.sources = paths
	app.logger.Info("loaded %d bindings from %d keymap(s)", len(keymap.Combos(bound)), len(paths))
	return nil
}

// reloadBindings re-reads config and keymaps, keeping the old state when
// anything fails.
func (app *Application) reloadBindings() error {
	cfg, err := config.Load(app.configPath())
	if err != nil {
		return &ReloadError{Path: app.configPath(), Err: err}
	}
	if len(app.opts.Keymaps) > 0 {
		cfg.Keymaps = app.opts.Keymaps
	}

	prev := app.cfg
	app.cfg = cfg
	if err := app.loadBindings(); err != nil {
		app.cfg = prev
		return err
	}
	app.status = fmt.Sprintf("reloaded %d binding(s)", len(app.bindings))
	return nil
}

// watchPaths lists the files whose edits trigger a reload.
func (app *Application) watchPaths() []string {
	paths := []string{app.configPath()}
	return append(paths, app.cfg.KeymapPaths()...)
}
