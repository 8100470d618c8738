package solar

import (
	"math"
	"testing"
)

func TestPlaneOfArrayHorizontalEqualsGHI(t *testing.T) {
	m := DefaultClearSky()
	for _, z := range []float64{0, 15, 45, 75, 89} {
		pos := Position{Zenith: z, Azimuth: 135}
		sky := m.Irradiance(z)
		got := PlaneOfArray(pos, sky, Orientation{Tilt: 0, Azimuth: 180}, DefaultAlbedo)

		if math.Abs(got.Total-sky.GHI) > 1e-9 {
			t.Errorf("zenith %v: flat plane total = %v, expected GHI %v", z, got.Total, sky.GHI)
		}
		if got.Reflected != 0 {
			t.Errorf("zenith %v: flat plane sees ground reflection %v", z, got.Reflected)
		}
	}
}

func TestPlaneOfArray(t *testing.T) {
	sky := Irradiance{DNI: 800, GHI: 665.685, DHI: 100}

	tests := []struct {
		name        string
		pos         Position
		orientation Orientation
		albedo      float64
		expected    SurfaceIrradiance
	}{
		{
			name:        "facing the sun",
			pos:         Position{Zenith: 45, Azimuth: 180},
			orientation: Orientation{Tilt: 45, Azimuth: 180},
			albedo:      0.2,
			expected: SurfaceIrradiance{
				Beam:      800,
				Diffuse:   100 * (1 + math.Sqrt2/2) / 2,
				Reflected: (800*math.Sqrt2/2 + 100) * 0.2 * (1 - math.Sqrt2/2) / 2,
			},
		},
		{
			name:        "vertical plane facing away has no beam",
			pos:         Position{Zenith: 45, Azimuth: 180},
			orientation: Orientation{Tilt: 90, Azimuth: 0},
			albedo:      0.2,
			expected: SurfaceIrradiance{
				Beam:      0,
				Diffuse:   50,
				Reflected: (800*math.Sqrt2/2 + 100) * 0.2 / 2,
			},
		},
		{
			name:        "zero albedo",
			pos:         Position{Zenith: 45, Azimuth: 180},
			orientation: Orientation{Tilt: 90, Azimuth: 180},
			albedo:      0,
			expected: SurfaceIrradiance{
				Beam:    800 * math.Sqrt2 / 2,
				Diffuse: 50,
			},
		},
		{
			name:        "sun below the horizon",
			pos:         Position{Zenith: 95, Azimuth: 300},
			orientation: Orientation{Tilt: 30, Azimuth: 300},
			albedo:      0.2,
			expected:    SurfaceIrradiance{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlaneOfArray(tt.pos, sky, tt.orientation, tt.albedo)
			tt.expected.Total = tt.expected.Beam + tt.expected.Diffuse + tt.expected.Reflected

			for _, c := range []struct {
				field     string
				got, want float64
			}{
				{"Beam", got.Beam, tt.expected.Beam},
				{"Diffuse", got.Diffuse, tt.expected.Diffuse},
				{"Reflected", got.Reflected, tt.expected.Reflected},
				{"Total", got.Total, tt.expected.Total},
			} {
				if math.Abs(c.got-c.want) > 1e-6 {
					t.Errorf("%s = %.6f, expected %.6f", c.field, c.got, c.want)
				}
			}
		})
	}
}

func TestPlaneOfArrayNeverNegative(t *testing.T) {
	m := DefaultClearSky()
	loc := Location{Latitude: 40, Longitude: -74}

	for day := 1; day <= 365; day += 5 {
		for h := 0.0; h < 24; h++ {
			pos, err := Calculate(loc, TimeSample{Day: day, Hour: h}, Options{UseEquationOfTime: true})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			sky := m.Irradiance(pos.Zenith)
			for tilt := 0.0; tilt <= 90; tilt += 15 {
				for az := 0.0; az < 360; az += 30 {
					got := PlaneOfArray(pos, sky, Orientation{Tilt: tilt, Azimuth: az}, DefaultAlbedo)
					if got.Beam < 0 || got.Diffuse < 0 || got.Reflected < 0 || got.Total < 0 {
						t.Fatalf("day %d hour %v tilt %v az %v: negative irradiance %+v", day, h, tilt, az, got)
					}
				}
			}
		}
	}
}

func TestIncidenceCosine(t *testing.T) {
	pos := Position{Zenith: 30, Azimuth: 200}

	if got := IncidenceCosine(pos, Orientation{Tilt: 30, Azimuth: 200}); math.Abs(got-1) > 1e-12 {
		t.Errorf("plane normal on the sun: cos = %v, expected 1", got)
	}
	if got := IncidenceCosine(pos, Orientation{Tilt: 0, Azimuth: 0}); math.Abs(got-math.Sqrt(3)/2) > 1e-12 {
		t.Errorf("flat plane: cos = %v, expected cos(zenith)", got)
	}
}
