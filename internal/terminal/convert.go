package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keynav/internal/input/key"
)

// namedKeys maps tcell special keys to UI Events key and code names.
var namedKeys = map[tcell.Key][2]string{
	tcell.KeyUp:         {"ArrowUp", "ArrowUp"},
	tcell.KeyDown:       {"ArrowDown", "ArrowDown"},
	tcell.KeyLeft:       {"ArrowLeft", "ArrowLeft"},
	tcell.KeyRight:      {"ArrowRight", "ArrowRight"},
	tcell.KeyHome:       {"Home", "Home"},
	tcell.KeyEnd:        {"End", "End"},
	tcell.KeyPgUp:       {"PageUp", "PageUp"},
	tcell.KeyPgDn:       {"PageDown", "PageDown"},
	tcell.KeyInsert:     {"Insert", "Insert"},
	tcell.KeyDelete:     {"Delete", "Delete"},
	tcell.KeyEnter:      {"Enter", "Enter"},
	tcell.KeyTab:        {"Tab", "Tab"},
	tcell.KeyBacktab:    {"Tab", "Tab"},
	tcell.KeyEscape:     {"Escape", "Escape"},
	tcell.KeyBackspace:  {"Backspace", "Backspace"},
	tcell.KeyBackspace2: {"Backspace", "Backspace"},
	tcell.KeyF1:         {"F1", "F1"},
	tcell.KeyF2:         {"F2", "F2"},
	tcell.KeyF3:         {"F3", "F3"},
	tcell.KeyF4:         {"F4", "F4"},
	tcell.KeyF5:         {"F5", "F5"},
	tcell.KeyF6:         {"F6", "F6"},
	tcell.KeyF7:         {"F7", "F7"},
	tcell.KeyF8:         {"F8", "F8"},
	tcell.KeyF9:         {"F9", "F9"},
	tcell.KeyF10:        {"F10", "F10"},
	tcell.KeyF11:        {"F11", "F11"},
	tcell.KeyF12:        {"F12", "F12"},
}

// ConvertKey converts a tcell key event into a key.Event.
//
// Terminals report characters, not key positions, so the physical code of
// a rune is inferred from the US layout. A rune that needs Shift on that
// layout gets the Shift flag, which terminals never report for runes.
// Returns nil for events that carry no key.
func ConvertKey(ev *tcell.EventKey) *key.Event {
	if ev == nil {
		return nil
	}
	out := &key.Event{Timestamp: ev.When()}
	applyMods(out, ev.Modifiers())

	k := ev.Key()
	if k == tcell.KeyRune {
		r := ev.Rune()
		out.Key = string(r)
		code, shift := key.CodeForRune(r)
		out.Code = code
		if shift {
			out.Shift = true
		}
		return out
	}
	if names, ok := namedKeys[k]; ok {
		out.Key, out.Code = names[0], names[1]
		if k == tcell.KeyBacktab {
			out.Shift = true
		}
		return out
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := rune('a' + (k - tcell.KeyCtrlA))
		code, _ := key.CodeForRune(r)
		out.Key, out.Code, out.Ctrl = string(r), code, true
		return out
	}
	if k == tcell.KeyCtrlSpace {
		out.Key, out.Code, out.Ctrl = " ", "Space", true
		return out
	}
	return nil
}

func applyMods(out *key.Event, mods tcell.ModMask) {
	out.Ctrl = mods&tcell.ModCtrl != 0
	out.Meta = mods&tcell.ModMeta != 0
	out.Shift = mods&tcell.ModShift != 0
	out.Alt = mods&tcell.ModAlt != 0
}
