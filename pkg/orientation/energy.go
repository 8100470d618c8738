package orientation

import (
	"errors"
	"fmt"

	"github.com/chrissnell/panelorient/pkg/solar"
	"gonum.org/v1/gonum/floats"
)

const daysPerYear = 365

// TimeGrid describes the annual sampling. Days 1, 1+DayStep, … are sampled at
// clock hours 0, HourStep, … below 24. Each sample stands for
// (365 / sampled days) × HourStep hours, so a coarse grid still integrates to a
// full year.
type TimeGrid struct {
	DayStep  int
	HourStep int
}

// WeightedSample is a TimeSample and the hours it represents.
type WeightedSample struct {
	solar.TimeSample
	Weight float64
}

// DefaultTimeGrid samples every hour of every day.
func DefaultTimeGrid() TimeGrid {
	return TimeGrid{DayStep: 1, HourStep: 1}
}

// Validate checks the step sizes.
func (g TimeGrid) Validate() error {
	if g.DayStep < 1 || g.DayStep > daysPerYear {
		return fmt.Errorf("day step %d outside [1, %d]", g.DayStep, daysPerYear)
	}
	if g.HourStep < 1 || g.HourStep > 24 {
		return fmt.Errorf("hour step %d outside [1, 24]", g.HourStep)
	}
	return nil
}

// Days returns the sampled days of the year.
func (g TimeGrid) Days() []int {
	var days []int
	for d := 1; d <= daysPerYear; d += g.DayStep {
		days = append(days, d)
	}
	return days
}

// Samples expands the grid into weighted time samples in day, hour order.
func (g TimeGrid) Samples() []WeightedSample {
	days := g.Days()
	weight := float64(daysPerYear) / float64(len(days)) * float64(g.HourStep)

	samples := make([]WeightedSample, 0, len(days)*(24/g.HourStep+1))
	for _, d := range days {
		samples = append(samples, daySamples(d, g.HourStep, weight)...)
	}
	return samples
}

// DaySamples returns the clock hours of a single day, each weighted by hourStep.
func DaySamples(day, hourStep int) []WeightedSample {
	return daySamples(day, hourStep, float64(hourStep))
}

func daySamples(day, hourStep int, weight float64) []WeightedSample {
	var samples []WeightedSample
	for h := 0; h < 24; h += hourStep {
		samples = append(samples, WeightedSample{
			TimeSample: solar.TimeSample{Day: day, Hour: float64(h)},
			Weight:     weight,
		})
	}
	return samples
}

// Sky is the sun's position and clear-sky irradiance for every daylight sample
// of a grid at one location. None of it depends on the panel orientation, so
// one Sky is built per location and read concurrently by every candidate.
// Night samples are counted but not stored; they contribute no energy.
type Sky struct {
	positions  []solar.Position
	irradiance []solar.Irradiance
	weights    []float64
	total      int
}

// BuildSky evaluates the position and clear-sky chain for each sample.
func BuildSky(loc solar.Location, samples []WeightedSample, model solar.ClearSkyModel, opts solar.Options) (*Sky, error) {
	sky := &Sky{total: len(samples)}
	for _, s := range samples {
		pos, err := solar.Calculate(loc, s.TimeSample, opts)
		if err != nil {
			return nil, err
		}
		if pos.BelowHorizon() {
			continue
		}
		sky.positions = append(sky.positions, pos)
		sky.irradiance = append(sky.irradiance, model.Irradiance(pos.Zenith))
		sky.weights = append(sky.weights, s.Weight)
	}
	return sky, nil
}

// Samples is the number of time samples the sky was built from.
func (s *Sky) Samples() int { return s.total }

// Daylight is the number of samples with the sun above the horizon.
func (s *Sky) Daylight() int { return len(s.positions) }

// EnergyParams converts plane-of-array irradiance into delivered energy.
type EnergyParams struct {
	Albedo     float64
	Efficiency float64
	PanelArea  float64
}

// Energy integrates Gt × η × A × Δt over the sky's samples and returns kWh.
func Energy(sky *Sky, o solar.Orientation, p EnergyParams) float64 {
	if sky.Daylight() == 0 {
		return 0
	}

	totals := make([]float64, len(sky.positions))
	for i, pos := range sky.positions {
		totals[i] = solar.PlaneOfArray(pos, sky.irradiance[i], o, p.Albedo).Total
	}

	wh := floats.Dot(totals, sky.weights) * p.Efficiency * p.PanelArea
	return wh / 1000.0
}

// AnnualEnergy estimates the yearly energy for a single orientation at loc
// using the configured grid. Optimizer.Optimize builds the sky once and
// reuses it; this is the one-off form.
func AnnualEnergy(loc Location, o solar.Orientation, cfg Config) (float64, error) {
	if err := loc.Validate(); err != nil {
		return 0, err
	}
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	if o.Tilt < 0 || o.Tilt > 90 {
		return 0, fmt.Errorf("%w: tilt %v outside [0, 90]", ErrInvalidInput, o.Tilt)
	}

	sky, err := BuildSky(loc.Point(), cfg.Grid.Samples(), cfg.ClearSky, cfg.solarOptions())
	if err != nil {
		if errors.Is(err, solar.ErrInvalidLatitude) {
			return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return 0, err
	}
	return Energy(sky, o, cfg.energyParams()), nil
}
