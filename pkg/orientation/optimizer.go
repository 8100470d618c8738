package orientation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/chrissnell/panelorient/pkg/solar"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Candidates within this relative margin of the best are ties; the earlier
// one in scan order is kept.
const tieTolerance = 1e-9

// Result is the optimal orientation for one location.
type Result struct {
	OptimalTilt    float64      `json:"optimal_tilt" yaml:"optimal_tilt"`
	OptimalAzimuth float64      `json:"optimal_azimuth" yaml:"optimal_azimuth"`
	EffectiveTilt  float64      `json:"effective_tilt" yaml:"effective_tilt"`
	GroundSlope    float64      `json:"ground_slope_offset" yaml:"ground_slope_offset"`
	AnnualEnergy   float64      `json:"annual_energy_kwh" yaml:"annual_energy_kwh"`
	Diagnostics    *Diagnostics `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// Diagnostics describes how a result was reached.
type Diagnostics struct {
	Hemisphere      string  `json:"hemisphere" yaml:"hemisphere"`
	TimezoneOffset  float64 `json:"timezone_offset_hours" yaml:"timezone_offset_hours"`
	Candidates      int     `json:"candidates" yaml:"candidates"`
	NonFinite       int     `json:"non_finite" yaml:"non_finite"`
	TimeSamples     int     `json:"time_samples" yaml:"time_samples"`
	DaylightSamples int     `json:"daylight_samples" yaml:"daylight_samples"`
}

// Optimizer finds the orientation with the highest annual energy. It holds
// only immutable configuration and is safe for concurrent use.
type Optimizer struct {
	cfg    Config
	logger *zap.SugaredLogger
}

// NewOptimizer validates cfg and returns an Optimizer. A nil logger discards
// output.
func NewOptimizer(cfg Config, logger *zap.SugaredLogger) (*Optimizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Optimizer{cfg: cfg, logger: logger}, nil
}

// Config returns the optimizer's configuration.
func (o *Optimizer) Config() Config { return o.cfg }

// Optimize searches the feasible tilts and the hemisphere's azimuth window for
// loc and returns the orientation with the most annual energy.
func (o *Optimizer) Optimize(ctx context.Context, loc Location) (*Result, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}

	if o.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.cfg.Timeout)
		defer cancel()
	}

	sky, err := BuildSky(loc.Point(), o.cfg.Grid.Samples(), o.cfg.ClearSky, o.cfg.solarOptions())
	if err != nil {
		if errors.Is(err, solar.ErrInvalidLatitude) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, err
	}

	hemisphere := HemisphereOf(loc.Latitude)
	candidates := NewCandidates(FeasibleTilts(o.cfg.TiltStep, loc.GroundSlope), loc.GroundSlope, hemisphere, o.cfg.AzimuthStep)

	o.logger.Debugw("starting orientation search",
		"latitude", loc.Latitude,
		"longitude", loc.Longitude,
		"ground_slope", loc.GroundSlope,
		"hemisphere", hemisphere.String(),
		"candidates", candidates.Len(),
		"daylight_samples", sky.Daylight(),
	)

	energies, err := o.evaluate(ctx, sky, candidates)
	if err != nil {
		return nil, fmt.Errorf("orientation search interrupted: %w", err)
	}

	best, nonFinite := argMax(energies)
	if nonFinite > 0 {
		o.logger.Warnw("skipped candidates with non-finite energy", "count", nonFinite)
	}
	if best < 0 {
		return nil, fmt.Errorf("%w: all %d candidates produced non-finite energy", ErrComputation, candidates.Len())
	}

	winner := candidates.At(best)
	result := &Result{
		OptimalTilt:    winner.PanelTilt,
		OptimalAzimuth: winner.Azimuth,
		EffectiveTilt:  EffectiveTilt(winner.PanelTilt, loc.GroundSlope),
		GroundSlope:    loc.GroundSlope,
		AnnualEnergy:   energies[best],
		Diagnostics: &Diagnostics{
			Hemisphere:      hemisphere.String(),
			TimezoneOffset:  solar.TimezoneOffset(loc.Longitude),
			Candidates:      candidates.Len(),
			NonFinite:       nonFinite,
			TimeSamples:     sky.Samples(),
			DaylightSamples: sky.Daylight(),
		},
	}

	o.logger.Infow("orientation search complete",
		"latitude", loc.Latitude,
		"longitude", loc.Longitude,
		"optimal_tilt", result.OptimalTilt,
		"optimal_azimuth", result.OptimalAzimuth,
		"annual_energy_kwh", result.AnnualEnergy,
	)
	return result, nil
}

// evaluate computes every candidate's energy on a bounded pool of workers.
// Each worker writes only its own index, so the slice needs no locking.
func (o *Optimizer) evaluate(ctx context.Context, sky *Sky, candidates *Candidates) ([]float64, error) {
	workers := o.cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	energies := make([]float64, candidates.Len())
	params := o.cfg.energyParams()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, cand := range candidates.All() {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			energies[i] = Energy(sky, cand.Plane(), params)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return energies, nil
}

// argMax scans energies in candidate order and returns the index of the
// first maximum, ignoring non-finite values. A later value replaces the best
// only if it is larger by more than tieTolerance relative to the best.
// best is -1 when no value is finite.
func argMax(energies []float64) (best, nonFinite int) {
	best = -1
	for i, e := range energies {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			nonFinite++
			continue
		}
		if best < 0 || e > energies[best]+tieTolerance*math.Max(1, math.Abs(energies[best])) {
			best = i
		}
	}
	return best, nonFinite
}
