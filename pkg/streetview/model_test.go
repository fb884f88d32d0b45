package streetview

import (
	"testing"
)

func TestModelInitialState(t *testing.T) {
	m := NewModel()

	if _, ok := m.Pano(); ok {
		t.Error("new model should have no pano")
	}
	if _, ok := m.Links(); ok {
		t.Error("new model should have no links")
	}
	if !m.LinksDirty() {
		t.Error("new model should start with dirty links")
	}
	if pov := m.Pov(); pov.Heading != 0 || pov.Pitch != 0 {
		t.Errorf("new model pov = %+v, want level north", pov)
	}
}

func TestModelSetPano(t *testing.T) {
	m := NewModel()

	if !m.SetPano(Pano{ID: "abc"}) {
		t.Error("first SetPano should report a change")
	}
	if !m.LinksDirty() {
		t.Error("SetPano should mark links dirty")
	}

	m.SetLinks(Links{{Pano: "def", Heading: 10}})
	if m.LinksDirty() {
		t.Error("SetLinks should clear the dirty flag")
	}

	// Identical pano: no change, links stay valid.
	if m.SetPano(Pano{ID: "abc"}) {
		t.Error("identical SetPano should be a no-op")
	}
	if m.LinksDirty() {
		t.Error("identical SetPano must not dirty the links")
	}

	// Different pano: change reported, links dirty again.
	if !m.SetPano(Pano{ID: "xyz"}) {
		t.Error("SetPano with a new id should report a change")
	}
	if !m.LinksDirty() {
		t.Error("pano change must dirty the links")
	}
}

func TestModelMoveRefusesDirtyLinks(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Model)
	}{
		{
			name:  "NoLinksEver",
			setup: func(m *Model) { m.SetPano(Pano{ID: "abc"}) },
		},
		{
			name: "LinksStaleAfterPanoChange",
			setup: func(m *Model) {
				m.SetPano(Pano{ID: "abc"})
				m.SetLinks(Links{{Pano: "def", Heading: 0}})
				m.SetPano(Pano{ID: "other"})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel()
			tt.setup(m)

			before, _ := m.Pano()
			if m.MoveForward() {
				t.Error("MoveForward should refuse to act on dirty links")
			}
			if m.MoveBackward() {
				t.Error("MoveBackward should refuse to act on dirty links")
			}
			after, _ := m.Pano()
			if before != after {
				t.Errorf("refused move mutated pano: %v -> %v", before, after)
			}
			if !m.LinksDirty() {
				t.Error("refused move must leave the dirty flag set")
			}
		})
	}
}

func TestModelMoveSelectsNearestLink(t *testing.T) {
	m := NewModel()
	m.SetPano(Pano{ID: "abc"})
	m.SetLinks(Links{
		{Pano: "def", Heading: 10},
		{Pano: "ghi", Heading: 190},
	})

	// Heading 0: "def" at 10 degrees beats "ghi" at 170.
	if !m.MoveForward() {
		t.Fatal("MoveForward should succeed with fresh links")
	}
	pano, _ := m.Pano()
	if pano.ID != "def" {
		t.Errorf("MoveForward went to %q, want def", pano.ID)
	}
	if !m.LinksDirty() {
		t.Error("arriving at a new pano must dirty the links")
	}
}

func TestModelMoveBackward(t *testing.T) {
	m := NewModel()
	m.SetPano(Pano{ID: "abc"})
	m.SetLinks(Links{
		{Pano: "def", Heading: 10},
		{Pano: "ghi", Heading: 190},
	})

	// Desired heading 0-180 = -180, equivalent to 180: "ghi" wins.
	if !m.MoveBackward() {
		t.Fatal("MoveBackward should succeed with fresh links")
	}
	pano, _ := m.Pano()
	if pano.ID != "ghi" {
		t.Errorf("MoveBackward went to %q, want ghi", pano.ID)
	}
}

func TestModelMoveDeadEnd(t *testing.T) {
	m := NewModel()
	m.SetPano(Pano{ID: "abc"})
	m.SetLinks(Links{})

	if m.MoveForward() {
		t.Error("MoveForward at a dead end should be a no-op")
	}
	pano, _ := m.Pano()
	if pano.ID != "abc" {
		t.Errorf("dead-end move mutated pano to %q", pano.ID)
	}
}

func TestModelMoveToSelfIsNoChange(t *testing.T) {
	// A link pointing back at the current pano selects, but SetPano reports
	// no change.
	m := NewModel()
	m.SetPano(Pano{ID: "abc"})
	m.SetLinks(Links{{Pano: "abc", Heading: 0}})

	if m.MoveForward() {
		t.Error("moving along a self-link should report no change")
	}
	if m.LinksDirty() {
		t.Error("no-change move must not dirty the links")
	}
}

func TestModelSetPovDoesNotTouchLinks(t *testing.T) {
	m := NewModel()
	m.SetPano(Pano{ID: "abc"})
	m.SetLinks(Links{{Pano: "def", Heading: 0}})

	m.SetPov(Pov{Heading: 45, Pitch: 10})
	if m.LinksDirty() {
		t.Error("SetPov must not affect the dirty flag")
	}
	if pov := m.Pov(); pov.Heading != 45 || pov.Pitch != 10 {
		t.Errorf("pov = %+v, want heading 45 pitch 10", pov)
	}
}
