package solar

import (
	"errors"
	"math"

	"github.com/soniakeys/unit"
)

// ClearSkyModel estimates cloudless-sky irradiance from the zenith angle alone.
//
// DNI = A * exp(-B / cos z)
// DHI = DNI * (C1 + C2*cos z + C3*cos² z)
// GHI = DNI * cos z + DHI
type ClearSkyModel struct {
	A  float64 `json:"a" yaml:"a"`   // apparent extraterrestrial irradiance, W/m²
	B  float64 `json:"b" yaml:"b"`   // atmospheric optical depth
	C1 float64 `json:"c1" yaml:"c1"` // diffuse ratio coefficients
	C2 float64 `json:"c2" yaml:"c2"`
	C3 float64 `json:"c3" yaml:"c3"`
}

// Irradiance is the clear-sky irradiance on a horizontal plane, in W/m².
type Irradiance struct {
	DNI float64 `json:"dni"`
	GHI float64 `json:"ghi"`
	DHI float64 `json:"dhi"`
}

// DefaultClearSky returns annual-mean ASHRAE-style constants. The diffuse
// ratio runs from 0.092 with the sun overhead to 0.136 at the horizon.
func DefaultClearSky() ClearSkyModel {
	return ClearSkyModel{
		A:  1160.0,
		B:  0.174,
		C1: 0.136,
		C2: -0.057,
		C3: 0.013,
	}
}

// Validate rejects constants that would produce negative or non-finite
// irradiance.
func (m ClearSkyModel) Validate() error {
	for _, v := range []float64{m.A, m.B, m.C1, m.C2, m.C3} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("clear-sky constants must be finite")
		}
	}
	if m.A < 0 || m.B < 0 {
		return errors.New("clear-sky constants A and B must be non-negative")
	}
	return nil
}

// Irradiance returns DNI, GHI and DHI for a zenith angle. At or past 90° the
// sun is down and everything is zero; exp(-B/cos z) already tends to zero as
// z approaches 90°, so there is no discontinuity at the horizon.
func (m ClearSkyModel) Irradiance(zenith float64) Irradiance {
	if zenith >= 90.0 || math.IsNaN(zenith) {
		return Irradiance{}
	}

	cosZ := unit.AngleFromDeg(zenith).Cos()
	if cosZ <= 0 {
		return Irradiance{}
	}

	dni := math.Max(0, m.A*math.Exp(-m.B/cosZ))
	dhi := math.Max(0, dni*(m.C1+m.C2*cosZ+m.C3*cosZ*cosZ))

	return Irradiance{
		DNI: dni,
		GHI: dni*cosZ + dhi,
		DHI: dhi,
	}
}
