// Package stats counts navigation events per kind for the stats endpoint.
package stats

import (
	"sync"
	"sync/atomic"
)

// Tracker tracks event counters per event kind.
type Tracker struct {
	mu    sync.RWMutex
	stats map[string]*EventStats
}

// EventStats holds counters for one event kind.
// Fields are accessed atomically.
type EventStats struct {
	Received   int64
	Applied    int64
	Suppressed int64
	Dropped    int64
}

// New creates a new Tracker.
func New() *Tracker {
	return &Tracker{
		stats: make(map[string]*EventStats),
	}
}

// getStats returns the stats object for an event kind, creating it if needed.
func (t *Tracker) getStats(kind string) *EventStats {
	t.mu.RLock()
	s, ok := t.stats[kind]
	t.mu.RUnlock()
	if ok {
		return s
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	// Double check
	if s, ok = t.stats[kind]; ok {
		return s
	}
	s = &EventStats{}
	t.stats[kind] = s
	return s
}

// TrackReceived counts an event arriving at the session.
func (t *Tracker) TrackReceived(kind string) {
	atomic.AddInt64(&t.getStats(kind).Received, 1)
}

// TrackApplied counts an event that changed externally visible state.
func (t *Tracker) TrackApplied(kind string) {
	atomic.AddInt64(&t.getStats(kind).Applied, 1)
}

// TrackSuppressed counts a move refused by dirty links, cooldown or a dead end.
func (t *Tracker) TrackSuppressed(kind string) {
	atomic.AddInt64(&t.getStats(kind).Suppressed, 1)
}

// TrackDropped counts an event discarded by the active gate or a parse failure.
func (t *Tracker) TrackDropped(kind string) {
	atomic.AddInt64(&t.getStats(kind).Dropped, 1)
}

// Snapshot returns a copy of the current stats.
func (t *Tracker) Snapshot() map[string]EventStats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make(map[string]EventStats)
	for k, v := range t.stats {
		result[k] = EventStats{
			Received:   atomic.LoadInt64(&v.Received),
			Applied:    atomic.LoadInt64(&v.Applied),
			Suppressed: atomic.LoadInt64(&v.Suppressed),
			Dropped:    atomic.LoadInt64(&v.Dropped),
		}
	}
	return result
}
