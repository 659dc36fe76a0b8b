package key

import (
	"fmt"
	"time"
)

// KeyProcess is the logical key hosts report while an input method is
// composing a character.
const KeyProcess = "Process"

// Event is a raw keyboard event as reported by the host input system.
type Event struct {
	// Key is the logical key ("a", "?", "Enter", "ArrowLeft"). It may be
	// empty or the KeyProcess sentinel.
	Key string

	// Code identifies the physical key ("KeyA", "Slash", "Numpad1").
	Code string

	// Modifier flags.
	Ctrl  bool
	Meta  bool
	Shift bool
	Alt   bool

	// Composing is set while an input method composition is in progress.
	Composing bool

	// Timestamp is when the event occurred.
	Timestamp time.Time

	defaultPrevented bool
}

// NewEvent creates a key event with the current timestamp.
func NewEvent(key, code string, mods Modifier) *Event {
	return &Event{
		Key:       key,
		Code:      code,
		Ctrl:      mods.HasCtrl(),
		Meta:      mods.HasMeta(),
		Shift:     mods.HasShift(),
		Alt:       mods.HasAlt(),
		Timestamp: time.Now(),
	}
}

// Modifiers returns the active modifiers as a set.
func (e *Event) Modifiers() Modifier {
	return Modifiers(e.Ctrl, e.Meta, e.Shift, e.Alt)
}

// HasKeySignal reports whether the event carries a usable key.
func (e *Event) HasKeySignal() bool {
	return e != nil && (e.Key != "" || e.Code != "")
}

// IsComposing reports whether an input method composition is in progress.
func (e *Event) IsComposing() bool {
	return e.Composing || e.Key == KeyProcess
}

// PreventDefault marks the event so the host skips its default action.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Combo returns the canonical combination for the event.
func (e *Event) Combo() Combo {
	return Canonicalize(e.Key, e.Code, e.Modifiers())
}

// String returns the canonical combo string.
func (e *Event) String() string {
	return e.Combo().String()
}

// GoString implements fmt.GoStringer for debugging.
func (e *Event) GoString() string {
	return fmt.Sprintf("Event{Key: %q, Code: %q, Modifiers: %q, Composing: %v}",
		e.Key, e.Code, e.Modifiers().String(), e.Composing)
}
