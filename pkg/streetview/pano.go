package streetview

import "math"

// Pano identifies a single panorama by its opaque id.
type Pano struct {
	ID string `json:"panoid"`
}

// Pov is a viewing orientation: compass heading and vertical pitch, in degrees.
// Heading is conceptually modulo 360; clamping pitch to a displayable range is
// left to the presentation layer.
type Pov struct {
	Heading float64 `json:"heading"`
	Pitch   float64 `json:"pitch"`
}

// Translate returns the orientation shifted by the given deltas.
func (p Pov) Translate(dHeading, dPitch float64) Pov {
	return Pov{
		Heading: p.Heading + dHeading,
		Pitch:   p.Pitch + dPitch,
	}
}

// Link is a navigable edge to a neighboring panorama, labeled with the
// heading at which it departs from the current one.
type Link struct {
	Pano    string  `json:"pano"`
	Heading float64 `json:"heading"`
}

// Links is the ordered set of links available from one panorama. An empty set
// is a legitimate dead end; "no valid links" is tracked by the model's dirty
// flag, not by emptiness.
type Links []Link

// Nearest returns the link whose departure heading is closest to the desired
// heading, measured as minimal separation on the 360 degree circle. Ties go to
// the earliest link in slice order. Returns false for an empty set.
func (l Links) Nearest(heading float64) (Link, bool) {
	var best Link
	bestDist := math.Inf(1)
	found := false

	for _, link := range l {
		d := angularDistance(link.Heading, heading)
		if d < bestDist {
			best = link
			bestDist = d
			found = true
		}
	}

	return best, found
}

// angularDistance returns the minimal absolute separation of two headings,
// in the range [0, 180].
func angularDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}
