package solar

import (
	"math"

	"github.com/soniakeys/unit"
)

// DefaultAlbedo is the ground reflectance of grass.
const DefaultAlbedo = 0.2

// Orientation is a panel plane: tilt from horizontal and azimuth clockwise
// from north.
type Orientation struct {
	Tilt    float64 `json:"tilt"`
	Azimuth float64 `json:"azimuth"`
}

// SurfaceIrradiance is the irradiance on a tilted plane, in W/m².
type SurfaceIrradiance struct {
	Beam      float64 `json:"beam"`
	Diffuse   float64 `json:"diffuse"`
	Reflected float64 `json:"reflected"`
	Total     float64 `json:"total"`
}

// IncidenceCosine returns the cosine of the angle between the sun's rays and
// the plane normal. Negative values mean the sun is behind the plane.
func IncidenceCosine(pos Position, o Orientation) float64 {
	sinZ, cosZ := unit.AngleFromDeg(pos.Zenith).Sincos()
	sinT, cosT := unit.AngleFromDeg(o.Tilt).Sincos()
	return cosZ*cosT + sinZ*sinT*unit.AngleFromDeg(pos.Azimuth-o.Azimuth).Cos()
}

// PlaneOfArray transposes clear-sky irradiance onto a tilted plane with the
// Liu & Jordan isotropic sky model:
//
//	Gb = DNI * cos θ              (zero when the sun is behind the plane)
//	Gd = DHI * (1 + cos β) / 2
//	Gr = (DNI cos z + DHI) * ρ * (1 - cos β) / 2
func PlaneOfArray(pos Position, sky Irradiance, o Orientation, albedo float64) SurfaceIrradiance {
	if pos.BelowHorizon() {
		return SurfaceIrradiance{}
	}

	cosT := unit.AngleFromDeg(o.Tilt).Cos()

	beam := math.Max(0, sky.DNI*IncidenceCosine(pos, o))
	diffuse := math.Max(0, sky.DHI*(1+cosT)/2)

	horizontal := sky.DNI*unit.AngleFromDeg(pos.Zenith).Cos() + sky.DHI
	reflected := math.Max(0, horizontal*albedo*(1-cosT)/2)

	return SurfaceIrradiance{
		Beam:      beam,
		Diffuse:   diffuse,
		Reflected: reflected,
		Total:     beam + diffuse + reflected,
	}
}
