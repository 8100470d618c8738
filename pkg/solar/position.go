// Package solar models the sun's apparent position and the clear-sky irradiance
// that reaches a horizontal or tilted surface. Angles are in degrees unless a
// name says otherwise. Azimuths are measured clockwise from true north.
package solar

import (
	"errors"
	"fmt"
	"math"

	"github.com/soniakeys/unit"
)

// ErrInvalidLatitude is returned when a latitude lies outside [-90, 90].
var ErrInvalidLatitude = errors.New("invalid latitude")

// Below this sin(zenith) the azimuth formula divides by (nearly) zero.
const zenithSingularity = 1e-9

// Location is a point on the earth's surface.
type Location struct {
	Latitude  float64
	Longitude float64
}

// TimeSample is a single instant on the annual grid: a day of the year and a
// local clock hour in the estimated timezone.
type TimeSample struct {
	Day  int
	Hour float64
}

// Options controls how clock time is converted to solar time.
type Options struct {
	// UseEquationOfTime adds the equation-of-time correction to solar time.
	UseEquationOfTime bool
}

// Position holds the sun's position for one TimeSample.
type Position struct {
	Declination float64
	HourAngle   float64
	Zenith      float64
	Azimuth     float64
	SolarTime   float64
}

// BelowHorizon reports whether the sun is at or below the horizon.
func (p Position) BelowHorizon() bool {
	return p.Zenith >= 90.0
}

// Elevation returns the sun's altitude above the horizon.
func (p Position) Elevation() float64 {
	return 90.0 - p.Zenith
}

// Declination returns the solar declination for a day of the year (Cooper's
// equation).
func Declination(day int) float64 {
	return 23.45 * unit.AngleFromDeg(360.0*float64(284+day)/365.0).Sin()
}

// HourAngle converts solar time in hours to the hour angle. Negative before
// solar noon, positive after. The result is normalized into (-180, 180] so the
// sign stays meaningful when solar time wraps past midnight.
func HourAngle(solarTime float64) float64 {
	return normalizeHourAngle(15.0 * (solarTime - 12.0))
}

func normalizeHourAngle(h float64) float64 {
	h = math.Mod(h, 360.0)
	switch {
	case h > 180.0:
		h -= 360.0
	case h <= -180.0:
		h += 360.0
	}
	return h
}

// Zenith returns the solar zenith angle for a latitude, declination and hour
// angle. The cosine is clamped into [-1, 1] before arccos so rounding can
// never produce NaN.
func Zenith(latitude, declination, hourAngle float64) float64 {
	sinLat, cosLat := unit.AngleFromDeg(latitude).Sincos()
	sinDec, cosDec := unit.AngleFromDeg(declination).Sincos()
	cosZ := sinLat*sinDec + cosLat*cosDec*unit.AngleFromDeg(hourAngle).Cos()
	return unit.Angle(math.Acos(clamp(cosZ, -1, 1))).Deg()
}

// Azimuth returns the solar azimuth, clockwise from north in [0, 360).
//
// The arccos form only covers [0, 180]; afternoon samples (hourAngle > 0) are
// mirrored to 360 - az. When the sun is at the zenith or nadir the azimuth is
// undefined and 180 is returned.
func Azimuth(latitude, declination, hourAngle, zenith float64) float64 {
	sinZ := unit.AngleFromDeg(zenith).Sin()
	if math.Abs(sinZ) < zenithSingularity {
		return 180.0
	}

	sinLat, cosLat := unit.AngleFromDeg(latitude).Sincos()
	sinDec, cosDec := unit.AngleFromDeg(declination).Sincos()
	cosAz := (sinDec*cosLat - cosDec*sinLat*unit.AngleFromDeg(hourAngle).Cos()) / sinZ
	az := unit.Angle(math.Acos(clamp(cosAz, -1, 1))).Deg()

	if hourAngle > 0 {
		az = 360.0 - az
	}
	if az >= 360.0 {
		az -= 360.0
	}
	return az
}

// Calculate computes the sun's position at loc for the given sample. A sun
// below the horizon is a normal result, not an error; check BelowHorizon.
func Calculate(loc Location, sample TimeSample, opts Options) (Position, error) {
	if math.IsNaN(loc.Latitude) || math.Abs(loc.Latitude) > 90.0 {
		return Position{}, fmt.Errorf("%w: %v outside [-90, 90]", ErrInvalidLatitude, loc.Latitude)
	}

	st := SolarTime(sample.Hour, sample.Day, loc.Longitude, opts.UseEquationOfTime)
	dec := Declination(sample.Day)
	ha := HourAngle(st)
	zen := Zenith(loc.Latitude, dec, ha)

	return Position{
		Declination: dec,
		HourAngle:   ha,
		Zenith:      zen,
		Azimuth:     Azimuth(loc.Latitude, dec, ha, zen),
		SolarTime:   st,
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
