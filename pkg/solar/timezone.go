package solar

import (
	"math"

	"github.com/soniakeys/unit"
)

// TimezoneOffset estimates the local standard-time offset from UTC, in hours,
// from the longitude alone. The earth turns 15 degrees per hour; the result is
// truncated toward zero, the same whole-hour zone an Etc/GMT±N lookup gives.
// Politics play no part, so this is often an hour off the civil zone.
func TimezoneOffset(longitude float64) float64 {
	return math.Trunc(longitude / 15.0)
}

// EquationOfTime returns the difference, in minutes, between apparent and mean
// solar time for a day of the year.
func EquationOfTime(day int) float64 {
	b := unit.AngleFromDeg((360.0 / 365.0) * (float64(day) - 81.0))
	return 9.87*b.Mul(2).Sin() - 7.53*b.Cos() - 1.5*b.Sin()
}

// SolarTime converts a clock hour in the estimated timezone to local solar
// time. The longitude's offset from the zone meridian contributes 4 minutes
// per degree; the equation of time is added when useEoT is set.
func SolarTime(clockHour float64, day int, longitude float64, useEoT bool) float64 {
	meridian := 15.0 * TimezoneOffset(longitude)
	t := clockHour + (longitude-meridian)/15.0
	if useEoT {
		t += EquationOfTime(day) / 60.0
	}
	return t
}
