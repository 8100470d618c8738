package solar

import (
	"math"
	"testing"
)

func TestTimezoneOffset(t *testing.T) {
	tests := []struct {
		longitude float64
		expected  float64
	}{
		{0, 0},
		{-74, -4},
		{-75, -5},
		{-122.5, -8},
		{151, 10},
		{7.4, 0},
		{180, 12},
		{-180, -12},
	}

	for _, tt := range tests {
		if got := TimezoneOffset(tt.longitude); got != tt.expected {
			t.Errorf("TimezoneOffset(%v) = %v, expected %v", tt.longitude, got, tt.expected)
		}
	}
}

func TestEquationOfTime(t *testing.T) {
	tests := []struct {
		name      string
		day       int
		expected  float64
		tolerance float64
	}{
		{"early January", 1, -3.7, 0.5},
		{"mid February minimum", 44, -14.6, 0.5},
		{"early November maximum", 307, 16.4, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EquationOfTime(tt.day); math.Abs(got-tt.expected) > tt.tolerance {
				t.Errorf("EquationOfTime(%d) = %.2f, expected ~%.2f", tt.day, got, tt.expected)
			}
		})
	}
}

func TestSolarTime(t *testing.T) {
	// On a zone meridian without the equation of time, clock and solar time agree.
	if got := SolarTime(10, 100, -75, false); got != 10 {
		t.Errorf("SolarTime on meridian = %v, expected 10", got)
	}

	// New York sits 14° west of the -60° meridian of its estimated zone, so
	// solar time lags the clock by 56 minutes.
	if got := SolarTime(12, 100, -74, false); math.Abs(got-(12-14.0/15.0)) > 1e-12 {
		t.Errorf("SolarTime(12, -74) = %v, expected %v", got, 12-14.0/15.0)
	}

	withEoT := SolarTime(12, 307, 0, true)
	if math.Abs(withEoT-(12+EquationOfTime(307)/60)) > 1e-12 {
		t.Errorf("SolarTime with EoT = %v, expected %v", withEoT, 12+EquationOfTime(307)/60)
	}
}
