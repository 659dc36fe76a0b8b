package macro

import (
	"errors"
	"sync"

	"github.com/dshills/keynav/internal/input/key"
)

// ErrAlreadyRecording is returned by Start while a recording is active.
var ErrAlreadyRecording = errors.New("already recording")

// Recorder records key sequences for playback.
type Recorder struct {
	mu        sync.Mutex
	recording bool
	events    []key.Event
	last      []key.Event
}

// NewRecorder creates an idle recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Start begins a new recording.
func (r *Recorder) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recording {
		return ErrAlreadyRecording
	}
	r.recording = true
	r.events = nil
	return nil
}

// Stop ends the recording and returns it. An empty recording does not
// replace the previous one.
func (r *Recorder) Stop() []key.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.recording {
		return nil
	}
	r.recording = false
	if len(r.events) > 0 {
		r.last = r.events
	}
	out := make([]key.Event, len(r.events))
	copy(out, r.events)
	r.events = nil
	return out
}

// Recording reports whether a recording is active.
func (r *Recorder) Recording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recording
}

// Record appends ev when recording. Composition events are skipped.
func (r *Recorder) Record(ev *key.Event) {
	if ev == nil || ev.IsComposing() || !ev.HasKeySignal() {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.recording {
		r.events = append(r.events, snapshot(ev))
	}
}

// Last returns the most recent non-empty recording.
func (r *Recorder) Last() []key.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]key.Event, len(r.last))
	copy(out, r.last)
	return out
}

// Len returns the number of events in the active recording.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// snapshot copies the press fields of ev without its dispatch state.
func snapshot(ev *key.Event) key.Event {
	return key.Event{
		Key:       ev.Key,
		Code:      ev.Code,
		Ctrl:      ev.Ctrl,
		Meta:      ev.Meta,
		Shift:     ev.Shift,
		Alt:       ev.Alt,
		Timestamp: ev.Timestamp,
	}
}
