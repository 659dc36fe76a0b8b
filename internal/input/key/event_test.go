package key

import (
	"testing"
)

func TestNewEvent(t *testing.T) {
	e := NewEvent("k", "KeyK", ModCtrl|ModAlt)
	if !e.Ctrl || !e.Alt || e.Shift || e.Meta {
		t.Errorf("NewEvent flags = %#v", e)
	}
	if e.Modifiers() != ModCtrl|ModAlt {
		t.Errorf("Modifiers() = %v, want control+alt", e.Modifiers())
	}
	if e.Timestamp.IsZero() {
		t.Error("NewEvent should set a timestamp")
	}
}

func TestEventHasKeySignal(t *testing.T) {
	tests := []struct {
		event *Event
		want  bool
	}{
		{nil, false},
		{&Event{}, false},
		{&Event{Ctrl: true}, false},
		{&Event{Key: "a"}, true},
		{&Event{Code: "KeyA"}, true},
	}

	for _, tt := range tests {
		if got := tt.event.HasKeySignal(); got != tt.want {
			t.Errorf("HasKeySignal(%#v) = %v, want %v", tt.event, got, tt.want)
		}
	}
}

func TestEventIsComposing(t *testing.T) {
	if (&Event{Key: "a"}).IsComposing() {
		t.Error("plain key should not be composing")
	}
	if !(&Event{Key: "a", Composing: true}).IsComposing() {
		t.Error("Composing flag should be honored")
	}
	if !(&Event{Key: KeyProcess}).IsComposing() {
		t.Error("Process sentinel should count as composing")
	}
}

func TestEventPreventDefault(t *testing.T) {
	e := NewEvent("Enter", "Enter", ModNone)
	if e.DefaultPrevented() {
		t.Error("new event should not be prevented")
	}
	e.PreventDefault()
	if !e.DefaultPrevented() {
		t.Error("PreventDefault should mark the event")
	}
}

func TestEventCombo(t *testing.T) {
	e := &Event{Key: "?", Code: "Slash", Shift: true}
	if got := e.String(); got != "shift+/" {
		t.Errorf("String() = %q, want shift+/", got)
	}
	c := e.Combo()
	if c.Mods != ModShift || c.Base != "/" {
		t.Errorf("Combo() = %+v", c)
	}
}
