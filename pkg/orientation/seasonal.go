package orientation

import (
	"fmt"
	"time"

	"github.com/chrissnell/panelorient/pkg/solar"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/solstice"
	"gonum.org/v1/gonum/floats"
)

// KeyDate is an equinox or solstice.
type KeyDate struct {
	Name      string
	Date      time.Time
	DayOfYear int
}

// KeyDates returns the March equinox, June solstice, September equinox and
// December solstice of a year.
func KeyDates(year int) []KeyDate {
	events := []struct {
		name string
		jde  func(int) float64
	}{
		{"march_equinox", solstice.March},
		{"june_solstice", solstice.June},
		{"september_equinox", solstice.September},
		{"december_solstice", solstice.December},
	}

	dates := make([]KeyDate, 0, len(events))
	for _, e := range events {
		y, m, d := julian.JDToCalendar(e.jde(year))
		day := int(d)
		dates = append(dates, KeyDate{
			Name:      e.name,
			Date:      time.Date(y, time.Month(m), day, 0, 0, 0, 0, time.UTC),
			DayOfYear: julian.DayOfYearGregorian(y, m, day),
		})
	}
	return dates
}

// DayAnalysis is one key date evaluated for a chosen orientation.
type DayAnalysis struct {
	Name        string  `json:"name" yaml:"name"`
	Date        string  `json:"date" yaml:"date"`
	DayOfYear   int     `json:"day_of_year" yaml:"day_of_year"`
	DailyEnergy float64 `json:"daily_energy_kwh" yaml:"daily_energy_kwh"`
	MinZenith   float64 `json:"min_zenith" yaml:"min_zenith"`
	MaxZenith   float64 `json:"max_zenith" yaml:"max_zenith"`
	// First and last clock hours with the sun above the horizon; nil during
	// polar night.
	FirstDaylightHour *int   `json:"first_daylight_hour" yaml:"first_daylight_hour"`
	LastDaylightHour  *int   `json:"last_daylight_hour" yaml:"last_daylight_hour"`
	Sunrise           string `json:"sunrise,omitempty" yaml:"sunrise,omitempty"`
	Sunset            string `json:"sunset,omitempty" yaml:"sunset,omitempty"`
}

// Seasonal evaluates the result's orientation at loc on the key dates of year,
// hour by hour.
func (o *Optimizer) Seasonal(loc Location, result *Result, year int) ([]DayAnalysis, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}
	if result == nil {
		return nil, fmt.Errorf("%w: no result to analyze", ErrInvalidInput)
	}

	plane := solar.Orientation{
		Tilt:    planeTilt(result.OptimalTilt, loc.GroundSlope),
		Azimuth: result.OptimalAzimuth,
	}
	opts := o.cfg.solarOptions()
	point := loc.Point()

	var analysis []DayAnalysis
	for _, kd := range KeyDates(year) {
		day := clampDay(kd.DayOfYear)
		samples := DaySamples(day, 1)

		zeniths := make([]float64, len(samples))
		var first, last *int
		for i, s := range samples {
			pos, err := solar.Calculate(point, s.TimeSample, opts)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			zeniths[i] = pos.Zenith
			if !pos.BelowHorizon() {
				h := int(s.Hour)
				if first == nil {
					first = &h
				}
				last = &h
			}
		}

		sky, err := BuildSky(point, samples, o.cfg.ClearSky, opts)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		da := DayAnalysis{
			Name:              kd.Name,
			Date:              kd.Date.Format("2006-01-02"),
			DayOfYear:         day,
			DailyEnergy:       Energy(sky, plane, o.cfg.energyParams()),
			MinZenith:         floats.Min(zeniths),
			MaxZenith:         floats.Max(zeniths),
			FirstDaylightHour: first,
			LastDaylightHour:  last,
		}
		if rise, set, ok := solar.SunriseSunset(day, point, opts); ok {
			da.Sunrise = solar.FormatClockHour(rise)
			da.Sunset = solar.FormatClockHour(set)
		}
		analysis = append(analysis, da)
	}

	o.logger.Debugw("seasonal analysis complete", "year", year, "dates", len(analysis))
	return analysis, nil
}

// The model's year has 365 days; a leap year's Dec 31 folds onto day 365.
func clampDay(day int) int {
	if day > daysPerYear {
		return daysPerYear
	}
	return day
}
