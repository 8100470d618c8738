package orientation

import (
	"iter"

	"github.com/chrissnell/panelorient/pkg/solar"
)

// Azimuth search windows, clockwise from north.
const (
	northernAzimuthMin = 120.0
	northernAzimuthMax = 240.0
	southernEastMax    = 60.0
	southernWestMin    = 300.0
)

// Candidate is one orientation in the search.
type Candidate struct {
	// PanelTilt is the tilt relative to the ground.
	PanelTilt float64
	// EffectiveTilt is the plane's tilt relative to horizontal.
	EffectiveTilt float64
	Azimuth       float64
}

// Plane is the orientation handed to the irradiance model.
func (c Candidate) Plane() solar.Orientation {
	return solar.Orientation{Tilt: c.EffectiveTilt, Azimuth: c.Azimuth}
}

// Candidates is a finite, restartable sequence of orientations in a fixed scan
// order: tilt ascending, then azimuth in window order. The order defines the
// tie-break, so it never changes between iterations.
type Candidates struct {
	items []Candidate
}

// NewCandidates enumerates the panel tilts against the azimuth window of the
// hemisphere.
func NewCandidates(tilts []float64, slope float64, h Hemisphere, azimuthStep float64) *Candidates {
	azimuths := AzimuthWindow(h, azimuthStep)

	items := make([]Candidate, 0, len(tilts)*len(azimuths))
	for _, t := range tilts {
		for _, az := range azimuths {
			items = append(items, Candidate{
				PanelTilt:     t,
				EffectiveTilt: planeTilt(t, slope),
				Azimuth:       az,
			})
		}
	}
	return &Candidates{items: items}
}

// AzimuthWindow returns the azimuths searched in a hemisphere, in scan order.
// Northern: [120, 240] around south. Southern: [0, 60] then [300, 360) around
// north.
func AzimuthWindow(h Hemisphere, step float64) []float64 {
	if h == Southern {
		east := steps(0, southernEastMax, step, true)
		west := steps(southernWestMin, 360, step, false)
		return append(east, west...)
	}
	return steps(northernAzimuthMin, northernAzimuthMax, step, true)
}

// Len is the number of candidates.
func (c *Candidates) Len() int { return len(c.items) }

// At returns the i'th candidate in scan order.
func (c *Candidates) At(i int) Candidate { return c.items[i] }

// All yields every candidate with its scan index.
func (c *Candidates) All() iter.Seq2[int, Candidate] {
	return func(yield func(int, Candidate) bool) {
		for i, cand := range c.items {
			if !yield(i, cand) {
				return
			}
		}
	}
}
