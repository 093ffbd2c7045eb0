// Command invperc runs batches of invasion percolation trials and reports
// density statistics per grid size.
//
//	invperc -size 11,51,101 -spread 1000 -trials 200 -seed 7
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/katalvlaran/percolation/grid"
	"github.com/katalvlaran/percolation/invasion"
	"github.com/katalvlaran/percolation/rng"
	"github.com/katalvlaran/percolation/sweep"
)

func main() {
	cfg := NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("invperc: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, cfg *Config, out io.Writer) error {
	fmt.Fprintf(out, "%6s %8s %12s %10s %12s\n", "size", "trials", "density", "stderr", "threshold")
	for _, size := range cfg.Sizes {
		rep, err := sweep.Run(ctx, sweep.Config{
			Size:    size,
			Spread:  cfg.Spread,
			Trials:  cfg.Trials,
			Workers: cfg.Workers,
			Seed:    cfg.Seed,
		})
		if err != nil {
			return fmt.Errorf("size %d: %w", size, err)
		}
		if cfg.Verbose {
			for _, tr := range rep.Trials {
				log.Printf("size=%d trial=%d density=%.6f invaded=%d steps=%d max=%d rg=%.3f",
					size, tr.Index, tr.Density, tr.Invaded, tr.Steps, tr.MaxValue, tr.Radius)
			}
		}
		fmt.Fprintf(out, "%6d %8d %12.6f %10.6f %12.6f\n",
			size, rep.Density.N, rep.Density.Mean, rep.Density.StdErr, rep.Threshold.Mean)

		if cfg.Render || cfg.Values {
			if err := render(cfg, size, out); err != nil {
				return fmt.Errorf("size %d: render: %w", size, err)
			}
		}
	}
	return nil
}

// render replays trial 0 on its own stream, which reproduces the sweep's
// first cluster exactly.
func render(cfg *Config, size int, out io.Writer) error {
	res, err := invasion.Run(size, cfg.Spread, rng.Derive(cfg.Seed, 0))
	if err != nil {
		return err
	}
	var opts []grid.RenderOption
	if cfg.Values {
		opts = append(opts, grid.WithValues())
	}
	return res.Grid.Render(out, opts...)
}
