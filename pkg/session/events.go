package session

import (
	"panomaster/pkg/input"
	"panomaster/pkg/streetview"
)

// Event is one decoded navigation input. The set of kinds is closed; the
// master dispatches through a single type switch rather than a runtime
// registry.
type Event interface {
	// Kind returns a stable label for logging and stats.
	Kind() string

	isEvent()
}

// LinksUpdate carries the link set computed for the current panorama.
type LinksUpdate struct {
	Links streetview.Links
}

// PovUpdate carries an absolute orientation set by an external producer.
type PovUpdate struct {
	Pov streetview.Pov
}

// PanoUpdate carries a panorama change driven by an external producer.
type PanoUpdate struct {
	Pano streetview.Pano
}

// Refresh asks the master to re-emit its current state without mutating it.
type Refresh struct{}

// Button is a discrete controller button transition.
type Button struct {
	Code  input.ButtonCode
	Value int
}

// Axis is one continuous controller axis sample.
type Axis struct {
	Code  input.AxisCode
	Value float64
}

// SceneSelect jumps directly to a panorama described by a scene field,
// bypassing link navigation.
type SceneSelect struct {
	Field string
}

func (LinksUpdate) Kind() string { return "links" }
func (PovUpdate) Kind() string   { return "pov" }
func (PanoUpdate) Kind() string  { return "pano" }
func (Refresh) Kind() string     { return "refresh" }
func (Button) Kind() string      { return "button" }
func (Axis) Kind() string        { return "axis" }
func (SceneSelect) Kind() string { return "scene" }

func (LinksUpdate) isEvent() {}
func (PovUpdate) isEvent()   {}
func (PanoUpdate) isEvent()  {}
func (Refresh) isEvent()     {}
func (Button) isEvent()      {}
func (Axis) isEvent()        {}
func (SceneSelect) isEvent() {}
