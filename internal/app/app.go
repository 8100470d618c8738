package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chrissnell/panelorient/internal/log"
	"github.com/chrissnell/panelorient/pkg/config"
	"github.com/chrissnell/panelorient/pkg/orientation"
	"github.com/chrissnell/panelorient/pkg/responseformat"
	"go.uber.org/zap"
)

// ErrSiteFailed is returned by Run, after the report is written, when at least
// one site could not be optimized.
var ErrSiteFailed = errors.New("one or more sites failed")

// Options controls what a run produces.
type Options struct {
	Format   responseformat.Format
	Seasonal bool
	// Year of the key dates for seasonal analysis; 0 means last calendar year.
	Year  int
	RunID string
}

// Report is the document written by a run.
type Report struct {
	RunID string       `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Sites []SiteReport `json:"sites" yaml:"sites"`
}

// SiteReport is one site's outcome. Exactly one of Result and Error is set.
type SiteReport struct {
	Site     string                    `json:"site" yaml:"site"`
	Location orientation.Location      `json:"location" yaml:"location"`
	Result   *orientation.Result       `json:"result,omitempty" yaml:"result,omitempty"`
	Seasonal []orientation.DayAnalysis `json:"seasonal,omitempty" yaml:"seasonal,omitempty"`
	Error    string                    `json:"error,omitempty" yaml:"error,omitempty"`
}

// App represents the main application
type App struct {
	configProvider config.ConfigProvider
	logger         *zap.SugaredLogger
	opts           Options
}

// New creates a new application instance
func New(configProvider config.ConfigProvider, logger *zap.SugaredLogger, opts Options) *App {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &App{
		configProvider: configProvider,
		logger:         logger,
		opts:           opts,
	}
}

// Run optimizes every configured site in order and writes a single report to
// w. SIGINT and SIGTERM cancel the search in progress.
func (a *App) Run(ctx context.Context, w io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case <-sigs:
			a.logger.Info("shutdown signal received, cancelling search")
			cancel()
		case <-ctx.Done():
		}
	}()

	cfgData, err := a.configProvider.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}
	if len(cfgData.Sites) == 0 {
		return errors.New("no sites configured: add sites to the config file or pass -lat and -lon")
	}

	engineCfg, err := cfgData.EngineConfig()
	if err != nil {
		return err
	}

	optimizer, err := orientation.NewOptimizer(engineCfg, a.logger)
	if err != nil {
		return err
	}

	year := a.opts.Year
	if year == 0 {
		year = time.Now().Year() - 1
	}

	report := Report{RunID: a.opts.RunID}
	failed := 0

	for _, site := range cfgData.Sites {
		sr, err := a.runSite(ctx, optimizer, site, year)
		if err != nil {
			return err
		}
		if sr.Error != "" {
			failed++
		}
		report.Sites = append(report.Sites, sr)
	}

	if err := responseformat.NewFormatter(true).Write(w, a.opts.Format, report); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrSiteFailed, failed, len(cfgData.Sites))
	}
	return nil
}

// runSite returns an error only when the run as a whole must stop. Invalid or
// degenerate sites are recorded in the SiteReport.
func (a *App) runSite(ctx context.Context, optimizer *orientation.Optimizer, site config.SiteData, year int) (SiteReport, error) {
	loc := site.Location()
	sr := SiteReport{Site: site.Name, Location: loc}

	start := time.Now()
	result, err := optimizer.Optimize(ctx, loc)

	entry := log.SearchEntry{
		Site:        site.Name,
		Latitude:    loc.Latitude,
		Longitude:   loc.Longitude,
		GroundSlope: loc.GroundSlope,
		Duration:    time.Since(start),
		Err:         err,
	}
	if result != nil {
		entry.Tilt = result.OptimalTilt
		entry.Azimuth = result.OptimalAzimuth
		entry.Energy = result.AnnualEnergy
		entry.Candidates = result.Diagnostics.Candidates
	}
	log.LogSearch(a.logger, entry)

	switch {
	case err == nil:
	case errors.Is(err, orientation.ErrInvalidInput), errors.Is(err, orientation.ErrComputation):
		sr.Error = err.Error()
		return sr, nil
	default:
		return sr, fmt.Errorf("site %s: %w", site.Name, err)
	}
	sr.Result = result

	if a.opts.Seasonal {
		seasonal, err := optimizer.Seasonal(loc, result, year)
		if err != nil {
			return sr, fmt.Errorf("site %s seasonal analysis: %w", site.Name, err)
		}
		sr.Seasonal = seasonal
	}
	return sr, nil
}
