package keymap

import (
	"errors"
	"testing"

	"github.com/dshills/keynav/internal/input/key"
)

func recorder(hits *[]string, name string) Handler {
	return func(*key.Event) error {
		*hits = append(*hits, name)
		return nil
	}
}

func TestHandleKeyPressDeclarationOrderIndependent(t *testing.T) {
	var hits []string
	km := KeyMap{"Shift+Control+K": recorder(&hits, "delete-line")}

	ev := &key.Event{Key: "K", Code: "KeyK", Ctrl: true, Shift: true}
	handled, err := HandleKeyPress(ev, km)
	if err != nil {
		t.Fatalf("HandleKeyPress error = %v", err)
	}
	if !handled || len(hits) != 1 || hits[0] != "delete-line" {
		t.Errorf("handled = %v, hits = %v", handled, hits)
	}
	if !ev.DefaultPrevented() {
		t.Error("matched event should have its default prevented")
	}
}

func TestHandleKeyPressShiftedSymbol(t *testing.T) {
	var hits []string
	km := KeyMap{
		"shift+/": recorder(&hits, "slash"),
		"?":       recorder(&hits, "question"),
	}

	ev := &key.Event{Key: "?", Code: "Slash", Shift: true}
	if _, err := HandleKeyPress(ev, km); err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 || hits[0] != "slash" {
		t.Errorf("hits = %v, want [slash]", hits)
	}
}

func TestHandleKeyPressNumpad(t *testing.T) {
	var hits []string
	km := KeyMap{"1": recorder(&hits, "one"), "shift+1": recorder(&hits, "shift-one")}

	_, _ = HandleKeyPress(&key.Event{Key: "1", Code: "Numpad1"}, km)
	_, _ = HandleKeyPress(&key.Event{Key: "End", Code: "Numpad1", Shift: true}, km)

	if len(hits) != 2 || hits[0] != "one" || hits[1] != "shift-one" {
		t.Errorf("hits = %v", hits)
	}
}

func TestHandleKeyPressNoOps(t *testing.T) {
	var hits []string
	km := KeyMap{"a": recorder(&hits, "a"), "enter": recorder(&hits, "enter")}

	tests := []struct {
		name string
		ev   *key.Event
		km   KeyMap
	}{
		{"nil event", nil, km},
		{"no key signal", &key.Event{Ctrl: true}, km},
		{"empty map", &key.Event{Key: "a", Code: "KeyA"}, KeyMap{}},
		{"nil map", &key.Event{Key: "a", Code: "KeyA"}, nil},
		{"composing flag", &key.Event{Key: "a", Code: "KeyA", Composing: true}, km},
		{"process sentinel", &key.Event{Key: key.KeyProcess, Code: "Enter"}, km},
		{"unmapped", &key.Event{Key: "b", Code: "KeyB"}, km},
		{"unmapped modifier", &key.Event{Key: "a", Code: "KeyA", Alt: true}, km},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handled, err := HandleKeyPress(tt.ev, tt.km)
			if handled || err != nil {
				t.Errorf("HandleKeyPress = (%v, %v), want (false, nil)", handled, err)
			}
			if tt.ev != nil && tt.ev.DefaultPrevented() {
				t.Error("no-op dispatch must not prevent default")
			}
		})
	}
	if len(hits) != 0 {
		t.Errorf("handlers ran: %v", hits)
	}
}

func TestHandleKeyPressErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	var sawPrevented bool
	km := KeyMap{"x": func(ev *key.Event) error {
		sawPrevented = ev.DefaultPrevented()
		return boom
	}}

	ev := &key.Event{Key: "x", Code: "KeyX"}
	handled, err := HandleKeyPress(ev, km)
	if !handled {
		t.Error("handled = false, want true")
	}
	if err != boom {
		t.Errorf("err = %v, want the handler's error unchanged", err)
	}
	if !sawPrevented {
		t.Error("default must be prevented before the handler runs")
	}
}

func TestHandleKeyPressPanicPropagates(t *testing.T) {
	km := KeyMap{"x": func(*key.Event) error { panic("handler bug") }}
	ev := &key.Event{Key: "x", Code: "KeyX"}

	defer func() {
		if r := recover(); r != "handler bug" {
			t.Errorf("recover() = %v, want handler bug", r)
		}
		if !ev.DefaultPrevented() {
			t.Error("default must be prevented before the handler runs")
		}
	}()
	_, _ = HandleKeyPress(ev, km)
	t.Error("panic was swallowed")
}

func TestHandleKeyPressReceivesOriginalEvent(t *testing.T) {
	ev := &key.Event{Key: "Esc", Code: "Escape"}
	var got *key.Event
	km := KeyMap{"escape": func(e *key.Event) error { got = e; return nil }}

	_, _ = HandleKeyPress(ev, km)
	if got != ev {
		t.Error("handler should receive the original event")
	}
	if got.Key != "Esc" {
		t.Errorf("event was modified: Key = %q", got.Key)
	}
}

func TestDispatcherMetrics(t *testing.T) {
	m := NewMetrics()
	d := NewDispatcher(WithMetrics(m))
	km := KeyMap{
		"a": func(*key.Event) error { return nil },
		"b": func(*key.Event) error { return errors.New("fail") },
	}

	_, _ = d.Dispatch(&key.Event{Key: "a"}, km)
	_, _ = d.Dispatch(&key.Event{Key: "b"}, km)
	_, _ = d.Dispatch(&key.Event{Key: "c"}, km)
	_, _ = d.Dispatch(&key.Event{Key: "a", Composing: true}, km)

	snap := m.Snapshot()
	if snap.Dispatched != 2 || snap.HandlerErrors != 1 || snap.Unmapped != 1 || snap.Ignored != 1 {
		t.Errorf("snapshot = %+v", snap)
	}

	m.Reset()
	if m.Snapshot().Dispatched != 0 {
		t.Error("Reset should clear counters")
	}

	m.SetEnabled(false)
	_, _ = d.Dispatch(&key.Event{Key: "a"}, km)
	if m.Snapshot().Dispatched != 0 {
		t.Error("disabled metrics should not record")
	}
}
