package keymap

import (
	"sync/atomic"
	"time"
)

// Metrics counts dispatch outcomes. A nil *Metrics records nothing.
type Metrics struct {
	dispatched    atomic.Uint64
	unmapped      atomic.Uint64
	ignored       atomic.Uint64
	handlerErrors atomic.Uint64

	totalLatency atomic.Int64
	peakLatency  atomic.Int64

	startTime time.Time
	enabled   atomic.Bool
}

// NewMetrics creates an enabled metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{startTime: time.Now()}
	m.enabled.Store(true)
	return m
}

// SetEnabled enables or disables collection.
func (m *Metrics) SetEnabled(enabled bool) {
	m.enabled.Store(enabled)
}

func (m *Metrics) active() bool {
	return m != nil && m.enabled.Load()
}

func (m *Metrics) recordIgnored() {
	if !m.active() {
		return
	}
	m.ignored.Add(1)
}

func (m *Metrics) recordUnmapped() {
	if !m.active() {
		return
	}
	m.unmapped.Add(1)
}

func (m *Metrics) recordDispatch(latency time.Duration, err error) {
	if !m.active() {
		return
	}
	m.dispatched.Add(1)
	if err != nil {
		m.handlerErrors.Add(1)
	}

	ns := latency.Nanoseconds()
	m.totalLatency.Add(ns)
	for {
		current := m.peakLatency.Load()
		if ns <= current {
			break
		}
		if m.peakLatency.CompareAndSwap(current, ns) {
			break
		}
	}
}

// Snapshot holds a point-in-time view of metrics.
type Snapshot struct {
	Dispatched    uint64
	Unmapped      uint64
	Ignored       uint64
	HandlerErrors uint64

	AvgLatency  time.Duration
	PeakLatency time.Duration

	Uptime time.Duration
}

// Snapshot returns the current counters.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	snap := Snapshot{
		Dispatched:    m.dispatched.Load(),
		Unmapped:      m.unmapped.Load(),
		Ignored:       m.ignored.Load(),
		HandlerErrors: m.handlerErrors.Load(),
		PeakLatency:   time.Duration(m.peakLatency.Load()),
		Uptime:        time.Since(m.startTime),
	}
	if snap.Dispatched > 0 {
		snap.AvgLatency = time.Duration(m.totalLatency.Load() / int64(snap.Dispatched))
	}
	return snap
}

// Reset clears all counters.
func (m *Metrics) Reset() {
	m.dispatched.Store(0)
	m.unmapped.Store(0)
	m.ignored.Store(0)
	m.handlerErrors.Store(0)
	m.totalLatency.Store(0)
	m.peakLatency.Store(0)
	m.startTime = time.Now()
}
