// Package session owns the authoritative navigation state for one viewer
// session and turns decoded input events into state changes and broadcasts.
package session

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"panomaster/pkg/input"
	"panomaster/pkg/logging"
	"panomaster/pkg/scene"
	"panomaster/pkg/stats"
	"panomaster/pkg/streetview"
)

// Broadcaster receives externally visible state changes for fan-out to
// connected viewers.
type Broadcaster interface {
	PanoChanged(streetview.Pano)
	PovChanged(streetview.Pov)
}

// Master is the single owner of a session's model, translator and axis latch.
// All event handling is serialized behind one mutex: the momentum counters and
// the pano/dirty pair are read-then-written as a unit and must never be
// touched concurrently.
//
// Link, pov, pano, refresh and scene events are always processed; button and
// axis events only while the session is active.
type Master struct {
	mu         sync.Mutex
	model      *streetview.Model
	translator *input.Translator
	axes       *input.AxisState
	broadcast  Broadcaster
	tracker    *stats.Tracker
	active     bool

	now func() time.Time
}

// NewMaster creates an inactive master with a fresh model.
func NewMaster(b Broadcaster, tr *stats.Tracker, settings input.Settings) *Master {
	now := time.Now
	return &Master{
		model:      streetview.NewModel(),
		translator: input.NewTranslator(settings, now()),
		axes:       input.NewAxisState(),
		broadcast:  b,
		tracker:    tr,
		now:        now,
	}
}

// Activate enables button and axis handling. Movement state is reinitialized
// so momentum from a previous activation cannot leak in.
func (m *Master) Activate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = true
	m.translator.Reset(m.now())
	slog.Info("Session activated")
}

// Deactivate disables button and axis handling.
func (m *Master) Deactivate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = false
	slog.Info("Session deactivated")
}

// Active reports whether input events are being handled.
func (m *Master) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// Handle processes one event to completion. The only error case is a
// malformed scene selection; everything else is absorbed as state changes,
// broadcasts or defined no-ops.
func (m *Master) Handle(ev Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tracker.TrackReceived(ev.Kind())

	switch ev := ev.(type) {
	case LinksUpdate:
		m.model.SetLinks(ev.Links)
		m.tracker.TrackApplied(ev.Kind())

	case PovUpdate:
		// The producer already knows the new orientation; no broadcast.
		m.model.SetPov(ev.Pov)
		m.tracker.TrackApplied(ev.Kind())

	case PanoUpdate:
		if m.model.SetPano(ev.Pano) {
			// Momentum never survives a pano transition.
			m.translator.Reset(m.now())
			m.tracker.TrackApplied(ev.Kind())
			logging.LogEvent("pano", "id", ev.Pano.ID, "source", "external")
		}

	case Refresh:
		if pano, ok := m.model.Pano(); ok {
			m.broadcastPano(pano)
		}
		m.broadcast.PovChanged(m.model.Pov())
		m.tracker.TrackApplied(ev.Kind())

	case Button:
		if !m.active {
			m.tracker.TrackDropped(ev.Kind())
			return nil
		}
		m.handleButton(ev)

	case Axis:
		if !m.active {
			m.tracker.TrackDropped(ev.Kind())
			return nil
		}
		m.handleAxis(ev)

	case SceneSelect:
		sel, err := scene.Parse(ev.Field)
		if err != nil {
			m.tracker.TrackDropped(ev.Kind())
			return fmt.Errorf("invalid scene selection: %w", err)
		}
		m.applyScene(sel)
		m.tracker.TrackApplied(ev.Kind())
	}

	return nil
}

// handleButton maps a pressed button straight to a move, with no momentum or
// cooldown gating.
func (m *Master) handleButton(ev Button) {
	decision := m.translator.Button(ev.Code, ev.Value)
	if decision == input.DecisionNone {
		return
	}
	m.applyMove(decision, ev.Kind())
}

// handleAxis latches the sample and evaluates both yaw panning and movement
// momentum against the latched axis values, matching the one-sample-at-a-time
// arrival of controller state.
func (m *Master) handleAxis(ev Axis) {
	m.axes.Set(ev.Code, ev.Value)
	logging.TraceDefault("Axis sample", "code", int(ev.Code), "value", ev.Value)

	if delta, ok := m.translator.Yaw(m.axes.Value(input.AxisYaw)); ok {
		pov := m.model.Pov().Translate(delta, 0)
		m.model.SetPov(pov)
		m.broadcast.PovChanged(pov)
		m.tracker.TrackApplied(ev.Kind())
	}

	decision := m.translator.Momentum(
		m.axes.Value(input.AxisForward),
		m.axes.Value(input.AxisTilt),
		m.now(),
	)
	if decision == input.DecisionNone {
		return
	}
	m.applyMove(decision, ev.Kind())
}

// applyMove executes a move decision against the model and broadcasts on
// success. A refused move (dirty links, dead end) is a defined no-op.
func (m *Master) applyMove(decision input.Decision, kind string) {
	var moved bool
	switch decision {
	case input.DecisionForward:
		moved = m.model.MoveForward()
	case input.DecisionBackward:
		moved = m.model.MoveBackward()
	}

	if !moved {
		m.tracker.TrackSuppressed(kind)
		return
	}

	pano, _ := m.model.Pano()
	logging.LogEvent("move", "direction", decision.String(), "id", pano.ID)
	m.broadcastPano(pano)
	m.tracker.TrackApplied(kind)
}

// applyScene jumps to the selected panorama and merges the optional
// orientation components over the current pov. Always re-broadcasts, so
// re-selecting the current scene resyncs every viewer.
func (m *Master) applyScene(sel scene.Selection) {
	m.model.SetPano(streetview.Pano{ID: sel.PanoID})
	pano, _ := m.model.Pano()
	logging.LogEvent("scene", "id", pano.ID)
	m.broadcastPano(pano)

	pov := m.model.Pov()
	if sel.Heading != nil {
		pov.Heading = *sel.Heading
	}
	if sel.Pitch != nil {
		pov.Pitch = *sel.Pitch
	}
	m.model.SetPov(pov)
	m.broadcast.PovChanged(pov)
}

// broadcastPano emits the current panorama and reinitializes movement state.
func (m *Master) broadcastPano(p streetview.Pano) {
	m.broadcast.PanoChanged(p)
	m.translator.Reset(m.now())
}

// Snapshot is a copy of the externally visible session state.
type Snapshot struct {
	Pano       *streetview.Pano `json:"pano,omitempty"`
	Pov        streetview.Pov   `json:"pov"`
	Links      streetview.Links `json:"links,omitempty"`
	LinksDirty bool             `json:"links_dirty"`
	Active     bool             `json:"active"`
}

// Snapshot returns the current state for the HTTP surface.
func (m *Master) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		Pov:        m.model.Pov(),
		LinksDirty: m.model.LinksDirty(),
		Active:     m.active,
	}
	if pano, ok := m.model.Pano(); ok {
		snap.Pano = &pano
	}
	if links, ok := m.model.Links(); ok {
		snap.Links = links
	}
	return snap
}
