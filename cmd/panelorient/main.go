package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"

	"github.com/chrissnell/panelorient/internal/app"
	"github.com/chrissnell/panelorient/internal/log"
	"github.com/chrissnell/panelorient/pkg/config"
	"github.com/chrissnell/panelorient/pkg/responseformat"
	"github.com/google/uuid"
)

const version = "1.0-" + runtime.GOOS + "/" + runtime.GOARCH

func main() {
	cfgFile := flag.String("config", "", "Path to YAML configuration file (model, search, grid and sites)")
	lat := flag.Float64("lat", math.NaN(), "Latitude in degrees, north positive. With -lon, replaces the configured sites")
	lon := flag.Float64("lon", math.NaN(), "Longitude in degrees, east positive")
	slope := flag.Float64("slope", 0, "Ground slope in degrees for the -lat/-lon site")
	name := flag.String("name", "cli", "Site name for the -lat/-lon site")
	format := flag.String("format", "json", "Output format: json, yaml or msgpack")
	seasonal := flag.Bool("seasonal", false, "Add equinox and solstice analysis for each site")
	year := flag.Int("year", 0, "Year of the equinoxes and solstices (default: last year)")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("panelorient %s\n", version)
		os.Exit(0)
	}

	// Set up logging
	if err := log.Init(*debug); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	outFormat, err := responseformat.ParseFormat(*format)
	if err != nil {
		log.Fatalf("%v", err)
	}

	provider, err := configProvider(*cfgFile, *name, *lat, *lon, *slope)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer provider.Close()

	runID := uuid.NewString()
	logger := log.With("run_id", runID)

	application := app.New(provider, logger, app.Options{
		Format:   outFormat,
		Seasonal: *seasonal,
		Year:     *year,
		RunID:    runID,
	})
	if err := application.Run(context.Background(), os.Stdout); err != nil {
		if errors.Is(err, app.ErrSiteFailed) {
			log.Warnw("run finished with failed sites", "run_id", runID, "error", err)
			log.Sync()
			os.Exit(2)
		}
		log.Errorf("Application error: %v", err)
		log.Sync()
		os.Exit(1)
	}
}

func configProvider(cfgFile, name string, lat, lon, slope float64) (config.ConfigProvider, error) {
	var provider config.ConfigProvider
	if cfgFile != "" {
		filename, err := filepath.Abs(cfgFile)
		if err != nil {
			return nil, err
		}
		provider = config.NewYAMLProvider(filename)
	}

	adhoc := !math.IsNaN(lat) || !math.IsNaN(lon)
	switch {
	case adhoc && (math.IsNaN(lat) || math.IsNaN(lon)):
		return nil, errors.New("-lat and -lon must be given together")
	case adhoc:
		site := config.SiteData{Name: name, Latitude: lat, Longitude: lon, GroundSlope: slope}
		return config.NewSiteOverlayProvider(provider, site), nil
	case provider == nil:
		return nil, errors.New("nothing to do: pass -config or -lat and -lon. Run with -h for help")
	}
	return provider, nil
}
