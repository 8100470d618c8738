package solar

import (
	"fmt"
	"math"

	"github.com/soniakeys/unit"
)

// SunriseSunset returns sunrise and sunset as clock hours from midnight in the
// timezone estimated from the location's longitude. ok is false for polar day
// (sun never sets) and polar night (sun never rises).
func SunriseSunset(day int, loc Location, opts Options) (sunrise, sunset float64, ok bool) {
	dec := unit.AngleFromDeg(Declination(day))
	lat := unit.AngleFromDeg(loc.Latitude)

	// At sunrise and sunset the zenith is 90°: cos(H) = -tan(lat) * tan(dec)
	cosH := -lat.Tan() * dec.Tan()
	if math.IsNaN(cosH) || cosH < -1.0 || cosH > 1.0 {
		return 0, 0, false
	}

	halfDay := unit.Angle(math.Acos(cosH)).Deg() / 15.0

	// Shift from solar time back to clock time; this inverts SolarTime.
	shift := SolarTime(0, day, loc.Longitude, opts.UseEquationOfTime)

	sunrise = wrapHours(12.0 - halfDay - shift)
	sunset = wrapHours(12.0 + halfDay - shift)
	return sunrise, sunset, true
}

// DayLength returns the hours between sunrise and sunset. Polar day is 24 and
// polar night is 0.
func DayLength(day int, latitude float64) float64 {
	dec := unit.AngleFromDeg(Declination(day))
	cosH := -unit.AngleFromDeg(latitude).Tan() * dec.Tan()
	switch {
	case math.IsNaN(cosH):
		return 12.0
	case cosH <= -1.0:
		return 24.0
	case cosH >= 1.0:
		return 0.0
	}
	return 2 * unit.Angle(math.Acos(cosH)).Deg() / 15.0
}

// FormatClockHour renders hours from midnight as "3:04 PM". Negative or
// non-finite hours render as an empty string.
func FormatClockHour(h float64) string {
	if h < 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return ""
	}

	minutes := int(math.Round(wrapHours(h)*60)) % 1440
	hours := minutes / 60
	minutes %= 60

	suffix := "AM"
	if hours >= 12 {
		suffix = "PM"
	}
	display := hours % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minutes, suffix)
}

func wrapHours(h float64) float64 {
	return math.Mod(math.Mod(h, 24.0)+24.0, 24.0)
}
