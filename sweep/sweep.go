package sweep

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/percolation/invasion"
	"github.com/katalvlaran/percolation/metrics"
	"github.com/katalvlaran/percolation/rng"
)

// ErrInvalidConfig indicates a Config that cannot be run.
var ErrInvalidConfig = errors.New("sweep: invalid config")

// Config describes a batch of trials on one grid size.
type Config struct {
	Size    int   // odd side length
	Spread  int   // resistances in [1, Spread]
	Trials  int   // number of independent runs
	Workers int   // concurrent runs
	Seed    int64 // parent seed; 0 ⇒ rng.DefaultSeed
}

// DefaultConfig returns a 101×101, spread-1000, 100-trial batch using one
// worker per CPU.
func DefaultConfig() Config {
	return Config{
		Size:    101,
		Spread:  1000,
		Trials:  100,
		Workers: runtime.NumCPU(),
		Seed:    rng.DefaultSeed,
	}
}

// Validate checks the batch parameters. Size and spread failures also match
// invasion.ErrInvalidParameter.
func (c Config) Validate() error {
	if c.Size < 1 || c.Size%2 == 0 {
		return fmt.Errorf("%w: size %d: %w", ErrInvalidConfig, c.Size, invasion.ErrInvalidParameter)
	}
	if c.Spread < 1 {
		return fmt.Errorf("%w: spread %d: %w", ErrInvalidConfig, c.Spread, invasion.ErrInvalidParameter)
	}
	if c.Trials < 1 {
		return fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidConfig, c.Trials)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// Trial is the outcome of one run.
type Trial struct {
	Index    int
	Density  float64
	Invaded  int
	Steps    int
	MaxValue int     // largest resistance accepted
	Radius   float64 // radius of gyration of the cluster
}

// Summary aggregates one scalar over all trials.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64 // sample standard deviation; 0 for N < 2
	StdErr float64
	Min    float64
	Max    float64
}

// Report is the outcome of a batch. Trials are ordered by index.
type Report struct {
	Config  Config
	Trials  []Trial
	Density Summary
	// Threshold summarizes MaxValue/Spread, the per-run estimate of the
	// invasion threshold.
	Threshold Summary
}

// Run executes cfg.Trials independent runs with at most cfg.Workers in flight.
// The first failure cancels outstanding trials and is returned.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	trials := make([]Trial, cfg.Trials)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := 0; i < cfg.Trials; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			src := rng.Derive(cfg.Seed, uint64(i))
			res, err := invasion.Run(cfg.Size, cfg.Spread, src, invasion.WithContext(gctx))
			if err != nil {
				return fmt.Errorf("sweep: trial %d: %w", i, err)
			}
			trials[i] = Trial{
				Index:    i,
				Density:  res.Density,
				Invaded:  res.Invaded,
				Steps:    res.Steps,
				MaxValue: res.MaxValue,
				Radius:   metrics.RadiusOfGyration(res.Grid),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	densities := make([]float64, len(trials))
	thresholds := make([]float64, len(trials))
	for i, tr := range trials {
		densities[i] = tr.Density
		thresholds[i] = float64(tr.MaxValue) / float64(cfg.Spread)
	}

	return &Report{
		Config:    cfg,
		Trials:    trials,
		Density:   Summarize(densities),
		Threshold: Summarize(thresholds),
	}, nil
}

// Summarize computes mean, spread and range of xs. An empty input yields the
// zero Summary.
func Summarize(xs []float64) Summary {
	n := len(xs)
	if n == 0 {
		return Summary{}
	}
	s := Summary{
		N:   n,
		Min: floats.Min(xs),
		Max: floats.Max(xs),
	}
	if n < 2 {
		s.Mean = xs[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(xs, nil)
	s.StdErr = stat.StdErr(s.StdDev, float64(n))
	return s
}

// String formats the summary on one line.
func (s Summary) String() string {
	return fmt.Sprintf("n=%d mean=%.6f sd=%.6f se=%.6f min=%.6f max=%.6f",
		s.N, s.Mean, s.StdDev, s.StdErr, s.Min, s.Max)
}
