// Package keymap dispatches keyboard events to handlers declared by
// combination string.
//
// A KeyMap is declared the way authors write shortcuts, in any modifier
// order and with any alias understood by key.Alias:
//
//	km := keymap.KeyMap{
//	    "Shift+Control+K": deleteLine,
//	    "Esc":             closeDialog,
//	    "shift+/":         showHelp,
//	}
//
// HandleKeyPress canonicalizes both the event and the map and invokes at
// most one handler. When a handler runs, the event's default action has
// already been suppressed. Handler errors and panics reach the caller
// untouched.
//
// Nothing happens at all when the event has no key, the map is empty, an
// input method is composing, or no declaration matches.
package keymap
