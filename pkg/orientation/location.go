package orientation

import (
	"fmt"

	"github.com/chrissnell/panelorient/pkg/solar"
)

// Location is the engine's input record. GroundSlope is the terrain angle in
// degrees; positive means the ground rises toward the panel's facing direction.
type Location struct {
	Latitude    float64 `json:"latitude" yaml:"latitude"`
	Longitude   float64 `json:"longitude" yaml:"longitude"`
	GroundSlope float64 `json:"ground_slope" yaml:"ground_slope"`
}

// Validate reports the first out-of-range field, wrapped in ErrInvalidInput.
func (l Location) Validate() error {
	switch {
	case !inRange(l.Latitude, -90, 90):
		return fmt.Errorf("%w: latitude %v outside [-90, 90]", ErrInvalidInput, l.Latitude)
	case !inRange(l.Longitude, -180, 180):
		return fmt.Errorf("%w: longitude %v outside [-180, 180]", ErrInvalidInput, l.Longitude)
	case !inRange(l.GroundSlope, -90, 90):
		return fmt.Errorf("%w: ground slope %v outside [-90, 90]", ErrInvalidInput, l.GroundSlope)
	}
	return nil
}

// Point drops the slope, leaving the geographic position.
func (l Location) Point() solar.Location {
	return solar.Location{Latitude: l.Latitude, Longitude: l.Longitude}
}

// Hemisphere determines which half of the compass the optimizer searches.
type Hemisphere int

const (
	Northern Hemisphere = iota
	Southern
)

// HemisphereOf treats the equator as northern.
func HemisphereOf(latitude float64) Hemisphere {
	if latitude < 0 {
		return Southern
	}
	return Northern
}

func (h Hemisphere) String() string {
	switch h {
	case Northern:
		return "northern"
	case Southern:
		return "southern"
	}
	return fmt.Sprintf("Hemisphere(%d)", int(h))
}
