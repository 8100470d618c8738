package config

import (
	"fmt"
	"time"

	"github.com/chrissnell/panelorient/pkg/orientation"
	"github.com/chrissnell/panelorient/pkg/solar"
)

// EngineConfig overlays the configured values on orientation.DefaultConfig and
// validates the result.
func (c *ConfigData) EngineConfig() (orientation.Config, error) {
	cfg := orientation.DefaultConfig()

	if cs := c.Model.ClearSky; cs != nil {
		cfg.ClearSky = solar.ClearSkyModel{A: cs.A, B: cs.B, C1: cs.C1, C2: cs.C2, C3: cs.C3}
	}
	if c.Model.Albedo != nil {
		cfg.Albedo = *c.Model.Albedo
	}
	if c.Model.Efficiency != nil {
		cfg.Efficiency = *c.Model.Efficiency
	}
	if c.Model.PanelArea != nil {
		cfg.PanelArea = *c.Model.PanelArea
	}
	if c.Model.EquationOfTime != nil {
		cfg.UseEquationOfTime = *c.Model.EquationOfTime
	}

	if c.Search.TiltStep != 0 {
		cfg.TiltStep = c.Search.TiltStep
	}
	if c.Search.AzimuthStep != 0 {
		cfg.AzimuthStep = c.Search.AzimuthStep
	}
	cfg.Workers = c.Search.Workers
	if c.Search.Timeout != "" {
		d, err := time.ParseDuration(c.Search.Timeout)
		if err != nil {
			return cfg, fmt.Errorf("%w: search timeout: %v", orientation.ErrInvalidConfig, err)
		}
		cfg.Timeout = d
	}

	if c.Grid.DayStep != 0 {
		cfg.Grid.DayStep = c.Grid.DayStep
	}
	if c.Grid.HourStep != 0 {
		cfg.Grid.HourStep = c.Grid.HourStep
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Location converts a site into the engine's input record.
func (s SiteData) Location() orientation.Location {
	return orientation.Location{
		Latitude:    s.Latitude,
		Longitude:   s.Longitude,
		GroundSlope: s.GroundSlope,
	}
}
