package streetview

// Model holds the authoritative Street View navigation state: the current
// panorama, the current point of view and the links reachable from here.
//
// The model keeps track of whether its links are up-to-date. Any pano change
// marks the links dirty and they stay dirty until SetLinks is called, which
// prevents navigating along stale links from a previous panorama.
//
// The mutators return whether externally visible state actually changed, so
// callers can decide when to broadcast. The model itself is not safe for
// concurrent use; the owning session serializes access.
type Model struct {
	pano       *Pano
	pov        Pov
	links      Links
	hasLinks   bool
	linksDirty bool
}

// NewModel creates a model with no panorama, dirty links and a level,
// north-facing point of view.
func NewModel() *Model {
	return &Model{linksDirty: true}
}

// Pano returns the current panorama, if one has been set.
func (m *Model) Pano() (Pano, bool) {
	if m.pano == nil {
		return Pano{}, false
	}
	return *m.pano, true
}

// Pov returns the current point of view.
func (m *Model) Pov() Pov {
	return m.pov
}

// Links returns the current link set, if one has been applied.
func (m *Model) Links() (Links, bool) {
	if !m.hasLinks {
		return nil, false
	}
	return m.links, true
}

// LinksDirty reports whether the held links are known to correspond to the
// current panorama.
func (m *Model) LinksDirty() bool {
	return m.linksDirty
}

// SetPano replaces the current panorama and marks the links dirty. Setting the
// identical panorama is a no-op. Returns true if the pano changed.
func (m *Model) SetPano(p Pano) bool {
	if m.pano == nil || m.pano.ID != p.ID {
		m.pano = &p
		m.linksDirty = true
		return true
	}

	return false
}

// SetPov replaces the point of view unconditionally.
func (m *Model) SetPov(p Pov) {
	m.pov = p
}

// SetLinks replaces the link set and clears the dirty flag. The caller is
// trusted to supply links belonging to the current panorama.
func (m *Model) SetLinks(l Links) {
	m.links = l
	m.hasLinks = true
	m.linksDirty = false
}

// MoveToward navigates to the neighboring panorama nearest the given heading.
// Returns true if the pano changed. While the links are dirty or absent this
// is a defined no-op, not an error.
func (m *Model) MoveToward(heading float64) bool {
	if m.linksDirty || !m.hasLinks {
		return false
	}

	nearest, ok := m.links.Nearest(heading)
	if !ok {
		return false
	}

	return m.SetPano(Pano{ID: nearest.Pano})
}

// MoveForward navigates to the neighbor nearest the current heading.
func (m *Model) MoveForward() bool {
	return m.MoveToward(m.pov.Heading)
}

// MoveBackward navigates to the neighbor farthest from the current heading.
func (m *Model) MoveBackward() bool {
	return m.MoveToward(m.pov.Heading - 180)
}
