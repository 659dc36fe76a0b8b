package app

import (
	"context"
	"errors"

	"github.com/dshills/keynav/internal/config"
	"github.com/dshills/keynav/internal/input/key"
)

// HandleKey routes one key event: the global keymap first, then the
// widget that holds focus. It returns ErrQuit when the session should
// end and any error a bound action returned.
func (app *Application) HandleKey(ev *key.Event) error {
	app.macroKey = false
	err := app.routeKey(ev)
	if !app.macroKey && !app.replaying {
		app.recorder.Record(ev)
	}
	return err
}

func (app *Application) routeKey(ev *key.Event) error {
	app.lastCombo = ev.Combo().String()
	app.handledBy = ""

	handled, err := app.dispatcher.Dispatch(ev, app.bindings)
	if handled {
		app.handledBy = "keymap"
		return err
	}

	el, ok := app.tree.Active()
	if !ok {
		return nil
	}
	switch {
	case app.toggles.Contains(el.ID):
		handled, err = app.toggles.HandleKeyDown(ev)
		if handled {
			app.handledBy = "togglegroup"
		}
	case app.tabs.Contains(el.ID):
		handled, err = app.tabs.HandleKeyDown(ev)
		if handled {
			app.handledBy = "tablist"
		}
	}
	return err
}

// Run draws the session and processes input until quit, Shutdown or ctx
// cancellation.
func (app *Application) Run(ctx context.Context) error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := make(chan *key.Event)
	go app.readKeys(ctx, keys)

	if app.opts.Watch {
		app.startWatcher(ctx)
	}

	app.draw()
	for {
		select {
		case <-ctx.Done():
			return nil

		case <-app.done:
			return nil

		case paths := <-app.reload:
			app.logger.Info("changed: %v", paths)
			if err := app.reloadBindings(); err != nil {
				app.logger.Warn("%v", err)
				app.status = err.Error()
			}
			app.draw()

		case ev, ok := <-keys:
			if !ok {
				return nil
			}
			err := app.HandleKey(ev)
			if errors.Is(err, ErrQuit) {
				return nil
			}
			if err != nil {
				app.status = err.Error()
				app.backend.Beep()
			}
			app.draw()
		}
	}
}

func (app *Application) readKeys(ctx context.Context, out chan<- *key.Event) {
	defer close(out)
	for {
		ev, ok := app.backend.ReadKey()
		if !ok {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func (app *Application) startWatcher(ctx context.Context) {
	w, err := config.NewWatcher(app.watchPaths(), config.WithWatchLogger(app.logger))
	if err != nil {
		app.logger.Warn("watch disabled: %v", err)
		app.status = "watch disabled: " + err.Error()
		return
	}
	go func() {
		defer w.Close()
		err := w.Run(ctx, func(paths []string) {
			select {
			case app.reload <- paths:
			default:
			}
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			app.logger.Warn("watcher stopped: %v", err)
		}
	}()
}

// Shutdown stops a running session.
func (app *Application) Shutdown() {
	app.stopOnce.Do(func() { close(app.done) })
}

func (app *Application) draw() {
	app.backend.DrawLines(app.Lines())
}
