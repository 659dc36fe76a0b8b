package keymap

import (
	"time"

	"github.com/dshills/keynav/internal/input/key"
	"github.com/dshills/keynav/internal/logging"
)

// Dispatcher turns key events into at most one handler invocation.
// A Dispatcher holds no per-event state; one may serve any number of
// widgets.
type Dispatcher struct {
	logger  *logging.Logger
	metrics *Metrics
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for dispatch tracing.
func WithLogger(l *logging.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l.WithComponent("keymap")
		}
	}
}

// WithMetrics records dispatch outcomes into m.
func WithMetrics(m *Metrics) Option {
	return func(d *Dispatcher) {
		d.metrics = m
	}
}

// NewDispatcher creates a dispatcher.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{logger: logging.Nop()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

var defaultDispatcher = NewDispatcher()

// HandleKeyPress dispatches ev against km using a dispatcher with no
// logging or metrics. See Dispatcher.Dispatch.
func HandleKeyPress(ev *key.Event, km KeyMap) (bool, error) {
	return defaultDispatcher.Dispatch(ev, km)
}

// Dispatch looks up the canonical combo of ev in km.
//
// It does nothing and returns false when ev carries no key, km is empty,
// an input method is composing, or no declaration matches. On a match it
// calls ev.PreventDefault and then the handler with ev, returning true and
// the handler's error unchanged. Handler panics are not recovered.
func (d *Dispatcher) Dispatch(ev *key.Event, km KeyMap) (bool, error) {
	if !ev.HasKeySignal() || len(km) == 0 {
		d.metrics.recordIgnored()
		return false, nil
	}
	if ev.IsComposing() {
		d.metrics.recordIgnored()
		d.logger.Debug("composition in progress, key %q ignored", ev.Key)
		return false, nil
	}

	combo := ev.Combo()
	if combo.IsZero() {
		d.metrics.recordIgnored()
		return false, nil
	}

	canonical := combo.String()
	handler, ok := NormalizeKeyMap(km)[canonical]
	if !ok || handler == nil {
		d.metrics.recordUnmapped()
		return false, nil
	}

	start := time.Now()
	ev.PreventDefault()
	d.logger.Debug("dispatching %s", canonical)
	err := handler(ev)
	d.metrics.recordDispatch(time.Since(start), err)
	return true, err
}
