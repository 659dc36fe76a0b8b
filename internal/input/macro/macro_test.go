package macro

import (
	"errors"
	"testing"

	"github.com/dshills/keynav/internal/input/key"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	r.Record(key.NewEvent("a", "KeyA", 0))
	if r.Len() != 0 {
		t.Fatal("Record should be ignored while idle")
	}

	if err := r.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := r.Start(); !errors.Is(err, ErrAlreadyRecording) {
		t.Errorf("second Start() error = %v, want ErrAlreadyRecording", err)
	}

	ev := key.NewEvent("ArrowRight", "ArrowRight", 0)
	ev.PreventDefault()
	r.Record(ev)
	r.Record(&key.Event{Key: key.KeyProcess, Code: "KeyA"})
	r.Record(key.NewEvent("k", "KeyK", key.ModCtrl))
	r.Record(nil)

	got := r.Stop()
	if len(got) != 2 {
		t.Fatalf("Stop() returned %d events, want 2", len(got))
	}
	if got[0].DefaultPrevented() {
		t.Error("recorded events should not carry dispatch state")
	}
	if r.Recording() {
		t.Error("Recording() = true after Stop")
	}
	if len(r.Last()) != 2 {
		t.Errorf("Last() = %d events, want 2", len(r.Last()))
	}

	// An empty recording keeps the previous one.
	_ = r.Start()
	if got := r.Stop(); len(got) != 0 {
		t.Errorf("empty Stop() = %v", got)
	}
	if len(r.Last()) != 2 {
		t.Error("empty recording replaced Last()")
	}
	if r.Stop() != nil {
		t.Error("Stop() while idle should return nil")
	}
}

func TestPlay(t *testing.T) {
	events := []key.Event{
		*key.NewEvent("ArrowRight", "ArrowRight", 0),
		*key.NewEvent("k", "KeyK", key.ModCtrl|key.ModShift),
	}

	var combos []string
	var seen []*key.Event
	err := Play(events, 2, func(ev *key.Event) error {
		combos = append(combos, ev.Combo().String())
		ev.PreventDefault()
		seen = append(seen, ev)
		return nil
	})
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	want := []string{"arrowright", "control+shift+k", "arrowright", "control+shift+k"}
	if len(combos) != len(want) {
		t.Fatalf("Play() dispatched %v, want %v", combos, want)
	}
	for i := range want {
		if combos[i] != want[i] {
			t.Errorf("combo[%d] = %q, want %q", i, combos[i], want[i])
		}
	}
	if seen[0] == seen[2] {
		t.Error("each replay should use a fresh event")
	}
	if events[0].DefaultPrevented() {
		t.Error("Play modified the recording")
	}
}

func TestPlayStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := Play([]key.Event{*key.NewEvent("a", "KeyA", 0), *key.NewEvent("b", "KeyB", 0)}, 1, func(*key.Event) error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("Play() error = %v, want boom", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}

	if err := Play(nil, MaxRepeat+1, func(*key.Event) error { return nil }); err == nil {
		t.Error("Play() should reject huge repeat counts")
	}
}
