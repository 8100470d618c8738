// Package orientation searches panel tilts and azimuths for the one that
// collects the most clear-sky energy over a year at a given location.
package orientation

import (
	"fmt"
	"math"
	"time"

	"github.com/chrissnell/panelorient/pkg/solar"
)

// MinStep bounds the search resolution. Cost grows with
// tilt steps × azimuth steps × time samples.
const MinStep = 0.5

// Config holds every physical constant and search parameter the engine uses.
type Config struct {
	ClearSky          solar.ClearSkyModel
	Albedo            float64
	Efficiency        float64 // system efficiency η, 0 < η <= 1
	PanelArea         float64 // m²
	UseEquationOfTime bool

	Grid        TimeGrid
	TiltStep    float64 // degrees
	AzimuthStep float64 // degrees

	// Workers limits concurrent candidate evaluations; 0 means GOMAXPROCS.
	Workers int
	// Timeout bounds a single search; 0 means no limit beyond the caller's context.
	Timeout time.Duration
}

// DefaultConfig returns the configuration used when nothing is overridden.
// Efficiency and area of 1 make the energy figure kWh/m² of plane-of-array
// irradiation.
func DefaultConfig() Config {
	return Config{
		ClearSky:          solar.DefaultClearSky(),
		Albedo:            solar.DefaultAlbedo,
		Efficiency:        1.0,
		PanelArea:         1.0,
		UseEquationOfTime: true,
		Grid:              DefaultTimeGrid(),
		TiltStep:          5,
		AzimuthStep:       5,
	}
}

// Validate checks the configuration and returns an error wrapping
// ErrInvalidConfig describing the first problem found.
func (c Config) Validate() error {
	if err := c.ClearSky.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	switch {
	case !inRange(c.Albedo, 0, 1):
		return fmt.Errorf("%w: albedo %v outside [0, 1]", ErrInvalidConfig, c.Albedo)
	case !inRange(c.Efficiency, 0, 1) || c.Efficiency == 0:
		return fmt.Errorf("%w: efficiency %v outside (0, 1]", ErrInvalidConfig, c.Efficiency)
	case !(c.PanelArea > 0) || math.IsInf(c.PanelArea, 0):
		return fmt.Errorf("%w: panel area %v must be positive", ErrInvalidConfig, c.PanelArea)
	case !inRange(c.TiltStep, MinStep, 90):
		return fmt.Errorf("%w: tilt step %v outside [%v, 90]", ErrInvalidConfig, c.TiltStep, MinStep)
	case !inRange(c.AzimuthStep, MinStep, 60):
		return fmt.Errorf("%w: azimuth step %v outside [%v, 60]", ErrInvalidConfig, c.AzimuthStep, MinStep)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d is negative", ErrInvalidConfig, c.Workers)
	case c.Timeout < 0:
		return fmt.Errorf("%w: timeout %v is negative", ErrInvalidConfig, c.Timeout)
	}

	if err := c.Grid.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) energyParams() EnergyParams {
	return EnergyParams{
		Albedo:     c.Albedo,
		Efficiency: c.Efficiency,
		PanelArea:  c.PanelArea,
	}
}

func (c Config) solarOptions() solar.Options {
	return solar.Options{UseEquationOfTime: c.UseEquationOfTime}
}

// inRange is false for NaN.
func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}
