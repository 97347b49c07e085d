// Package status provides a thread-safe counter tracker for the clock
// daemon. It feeds the periodic heartbeat log line and is independent of the
// device core.
package status

import (
	"sync"
	"time"
)

// EventCounts tracks the number of each event since startup.
type EventCounts struct {
	Rings    int
	Snoozes  int
	Silences int
	Presses  int
}

// Snapshot is a point-in-time view of daemon state.
// It is a value type, safe to use after the lock is released.
type Snapshot struct {
	StartTime time.Time
	Now       time.Time
	Counts    EventCounts
}

// Uptime returns the duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker holds mutable counters behind an RWMutex.
type Tracker struct {
	mu            sync.RWMutex
	startTime     time.Time
	counts        EventCounts
	lastHeartbeat time.Time
}

// NewTracker creates a Tracker with the given start time.
func NewTracker(startTime time.Time) *Tracker {
	return &Tracker{
		startTime:     startTime,
		lastHeartbeat: startTime,
	}
}

// CountRing records an alarm trigger.
func (t *Tracker) CountRing() {
	t.mu.Lock()
	t.counts.Rings++
	t.mu.Unlock()
}

// CountSnooze records a snooze press.
func (t *Tracker) CountSnooze() {
	t.mu.Lock()
	t.counts.Snoozes++
	t.mu.Unlock()
}

// CountSilence records a stop press or switch-off silencing.
func (t *Tracker) CountSilence() {
	t.mu.Lock()
	t.counts.Silences++
	t.mu.Unlock()
}

// CountPress records any short press.
func (t *Tracker) CountPress() {
	t.mu.Lock()
	t.counts.Presses++
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the counters.
func (t *Tracker) Snapshot(now time.Time) Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return Snapshot{
		StartTime: t.startTime,
		Now:       now,
		Counts:    t.counts,
	}
}

// CheckHeartbeat returns a snapshot if the interval has elapsed since the
// last heartbeat (or startup). Returns nil if the interval has not elapsed
// or if interval is <= 0 (disabled).
func (t *Tracker) CheckHeartbeat(now time.Time, interval time.Duration) *Snapshot {
	if interval <= 0 {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if now.Sub(t.lastHeartbeat) < interval {
		return nil
	}
	t.lastHeartbeat = now

	return &Snapshot{
		StartTime: t.startTime,
		Now:       now,
		Counts:    t.counts,
	}
}
