package log

import (
	"time"

	"go.uber.org/zap"
)

// SearchEntry summarizes one orientation search.
type SearchEntry struct {
	Site        string
	Latitude    float64
	Longitude   float64
	GroundSlope float64
	Duration    time.Duration
	Tilt        float64
	Azimuth     float64
	Energy      float64
	Candidates  int
	Err         error
}

// LogSearch writes e to logger at info, or at error when the search failed.
func LogSearch(logger *zap.SugaredLogger, e SearchEntry) {
	fields := []any{
		"site", e.Site,
		"latitude", e.Latitude,
		"longitude", e.Longitude,
		"ground_slope", e.GroundSlope,
		"duration_ms", e.Duration.Milliseconds(),
	}

	if e.Err != nil {
		fields = append(fields, "error", e.Err.Error())
		logger.Errorw("orientation search failed", fields...)
		return
	}

	fields = append(fields,
		"optimal_tilt", e.Tilt,
		"optimal_azimuth", e.Azimuth,
		"annual_energy_kwh", e.Energy,
		"candidates", e.Candidates,
	)
	logger.Infow("orientation search finished", fields...)
}
