// Package scene handles scene selection: jumping the viewer straight to a
// panorama, optionally with an orientation, bypassing link navigation.
package scene

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FieldSeparator joins the panoid and pov components of a scene field.
const FieldSeparator = ","

// ErrEmptyPano is returned when a scene field carries no panorama id.
var ErrEmptyPano = errors.New("scene field has no panoid")

// Selection is a fully parsed scene field. Heading and Pitch are nil when the
// field omits them, in which case the current pov component is kept.
type Selection struct {
	PanoID  string
	Heading *float64
	Pitch   *float64
}

// Parse decodes a "panoid[,heading[,pitch]]" field. It either returns a
// complete Selection or an error; a field with a malformed component never
// yields a partial result.
func Parse(field string) (Selection, error) {
	parts := strings.SplitN(field, FieldSeparator, 3)

	sel := Selection{PanoID: strings.TrimSpace(parts[0])}
	if sel.PanoID == "" {
		return Selection{}, ErrEmptyPano
	}

	if len(parts) > 1 {
		heading, err := parseComponent("heading", parts[1])
		if err != nil {
			return Selection{}, err
		}
		sel.Heading = heading
	}

	if len(parts) > 2 {
		pitch, err := parseComponent("pitch", parts[2])
		if err != nil {
			return Selection{}, err
		}
		sel.Pitch = pitch
	}

	return sel, nil
}

func parseComponent(name, raw string) (*float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil, fmt.Errorf("scene field has invalid %s %q", name, strings.TrimSpace(raw))
	}
	return &v, nil
}

// Preset is a named, stored scene selection.
type Preset struct {
	Name      string    `json:"name"`
	PanoID    string    `json:"panoid"`
	Heading   *float64  `json:"heading,omitempty"`
	Pitch     *float64  `json:"pitch,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Field renders the preset back into scene field form.
func (p *Preset) Field() string {
	parts := []string{p.PanoID}
	if p.Heading != nil {
		parts = append(parts, strconv.FormatFloat(*p.Heading, 'f', -1, 64))
		if p.Pitch != nil {
			parts = append(parts, strconv.FormatFloat(*p.Pitch, 'f', -1, 64))
		}
	}
	return strings.Join(parts, FieldSeparator)
}
