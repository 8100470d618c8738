package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/chrissnell/panelorient/pkg/solar"
)

func main() {
	var (
		lat     = flag.Float64("lat", 0, "Latitude in degrees, north positive")
		lon     = flag.Float64("lon", 0, "Longitude in degrees, east positive")
		day     = flag.Int("day", time.Now().UTC().YearDay(), "Day of year, 1-365")
		hour    = flag.Float64("hour", 12, "Clock hour in the estimated time zone, 0-24")
		tilt    = flag.Float64("tilt", -1, "Panel tilt in degrees; with -azimuth also prints plane-of-array irradiance")
		azimuth = flag.Float64("azimuth", 180, "Panel azimuth in degrees clockwise from north")
		albedo  = flag.Float64("albedo", solar.DefaultAlbedo, "Ground reflectance")
		noEoT   = flag.Bool("no-eot", false, "Ignore the equation of time")
	)
	flag.Parse()

	if *day < 1 || *day > 365 {
		fmt.Fprintf(os.Stderr, "Error: day %d outside 1-365\n", *day)
		os.Exit(1)
	}

	loc := solar.Location{Latitude: *lat, Longitude: *lon}
	opts := solar.Options{UseEquationOfTime: !*noEoT}

	pos, err := solar.Calculate(loc, solar.TimeSample{Day: *day, Hour: *hour}, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	sky := solar.DefaultClearSky().Irradiance(pos.Zenith)

	fmt.Printf("Solar position for day %d, %s (UTC%+g)\n", *day, solar.FormatClockHour(*hour), solar.TimezoneOffset(*lon))
	fmt.Printf("  Solar time:   %.3f h\n", pos.SolarTime)
	fmt.Printf("  Declination:  %.2f°\n", pos.Declination)
	fmt.Printf("  Hour angle:   %.2f°\n", pos.HourAngle)
	fmt.Printf("  Zenith:       %.2f°\n", pos.Zenith)
	fmt.Printf("  Elevation:    %.2f°\n", pos.Elevation())
	fmt.Printf("  Azimuth:      %.2f°\n", pos.Azimuth)
	if rise, set, ok := solar.SunriseSunset(*day, loc, opts); ok {
		fmt.Printf("  Sunrise:      %s\n", solar.FormatClockHour(rise))
		fmt.Printf("  Sunset:       %s\n", solar.FormatClockHour(set))
	} else if pos.BelowHorizon() {
		fmt.Printf("  Polar night\n")
	} else {
		fmt.Printf("  Midnight sun\n")
	}
	fmt.Printf("  Day length:   %.2f h\n", solar.DayLength(*day, *lat))

	fmt.Printf("Clear-sky irradiance\n")
	fmt.Printf("  DNI:          %.1f W/m²\n", sky.DNI)
	fmt.Printf("  GHI:          %.1f W/m²\n", sky.GHI)
	fmt.Printf("  DHI:          %.1f W/m²\n", sky.DHI)

	if *tilt >= 0 {
		poa := solar.PlaneOfArray(pos, sky, solar.Orientation{Tilt: *tilt, Azimuth: *azimuth}, *albedo)
		fmt.Printf("Plane of array (tilt %.1f°, azimuth %.1f°)\n", *tilt, *azimuth)
		fmt.Printf("  Beam:         %.1f W/m²\n", poa.Beam)
		fmt.Printf("  Diffuse:      %.1f W/m²\n", poa.Diffuse)
		fmt.Printf("  Reflected:    %.1f W/m²\n", poa.Reflected)
		fmt.Printf("  Total:        %.1f W/m²\n", poa.Total)
	}
}
