package app

import (
	"fmt"

	"github.com/dshills/keynav/internal/input/key"
	"github.com/dshills/keynav/internal/input/keymap"
	"github.com/dshills/keynav/internal/input/macro"
	"github.com/dshills/keynav/internal/roving"
)

// Built-in action names available to keymap files.
const (
	ActionQuit              = "app.quit"
	ActionFocusNext         = "focus.next"
	ActionToggleOrientation = "navigation.orientation"
	ActionReload            = "keymap.reload"
	ActionEcho              = "app.echo"
	ActionMacroRecord       = "macro.record"
	ActionMacroPlay         = "macro.play"
)

func (app *Application) actions() map[string]keymap.Handler {
	return map[string]keymap.Handler{
		ActionQuit: func(*key.Event) error {
			return ErrQuit
		},
		ActionFocusNext: func(*key.Event) error {
			app.focusNextWidget()
			return nil
		},
		ActionToggleOrientation: func(*key.Event) error {
			next := roving.Vertical
			if app.tabs.Orientation() == roving.Vertical {
				next = roving.Horizontal
			}
			app.tabs.SetOrientation(next)
			app.toggles.SetOrientation(next)
			app.status = "orientation " + next.String()
			return nil
		},
		ActionReload: func(*key.Event) error {
			if err := app.reloadBindings(); err != nil {
				app.logger.Warn("%v", err)
				app.status = err.Error()
			}
			return nil
		},
		ActionEcho: func(ev *key.Event) error {
			app.status = "echo " + ev.Combo().String()
			return nil
		},
		ActionMacroRecord: func(*key.Event) error {
			app.macroKey = true
			if app.recorder.Recording() {
				app.status = fmt.Sprintf("recorded %d key(s)", len(app.recorder.Stop()))
				return nil
			}
			if err := app.recorder.Start(); err != nil {
				return err
			}
			app.status = "recording"
			return nil
		},
		ActionMacroPlay: func(*key.Event) error {
			if app.replaying {
				app.macroKey = true
				return nil
			}
			events := app.recorder.Last()
			app.replaying = true
			err := macro.Play(events, 1, app.HandleKey)
			app.replaying = false
			app.macroKey = true
			if err != nil {
				return err
			}
			app.status = fmt.Sprintf("replayed %d key(s)", len(events))
			return nil
		},
	}
}

// focusNextWidget moves focus to the active item of the other widget.
// Focus inside a tab panel counts as the tab list.
func (app *Application) focusNextWidget() {
	target, ok := app.tabs.ActiveID()
	if app.focusInTabs() {
		target, ok = app.toggles.ActiveID()
	}
	if ok {
		app.tree.Focus(target)
	}
}

func (app *Application) focusInTabs() bool {
	el, ok := app.tree.Active()
	if !ok {
		return false
	}
	if app.tabs.Contains(el.ID) {
		return true
	}
	for _, tab := range app.tabs.Tabs() {
		if tab.PanelID == el.ID {
			return true
		}
	}
	return false
}
