package main

import (
	"flag"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/katalvlaran/percolation/rng"
)

// sizeList is a comma-separated list of grid sizes.
type sizeList []int

func (s *sizeList) String() string {
	parts := make([]string, len(*s))
	for i, v := range *s {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (s *sizeList) Set(v string) error {
	var out []int
	for _, p := range strings.Split(v, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return fmt.Errorf("bad size %q: %w", p, err)
		}
		out = append(out, n)
	}
	*s = out
	return nil
}

// Config represents the command-line parameters.
type Config struct {
	Sizes   sizeList
	Spread  int
	Trials  int
	Workers int
	Seed    int64
	Render  bool
	Values  bool
	Verbose bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sizes:   sizeList{51},
		Spread:  1000,
		Trials:  20,
		Workers: runtime.NumCPU(),
		Seed:    rng.DefaultSeed,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Var(&c.Sizes, "size", "comma-separated odd grid sizes")
	fs.IntVar(&c.Spread, "spread", c.Spread, "resistances are drawn from [1, spread]")
	fs.IntVar(&c.Trials, "trials", c.Trials, "independent runs per size")
	fs.IntVar(&c.Workers, "workers", c.Workers, "concurrent runs")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "parent seed for all trials")
	fs.BoolVar(&c.Render, "render", c.Render, "print the cluster of trial 0 for each size")
	fs.BoolVar(&c.Values, "values", c.Values, "render resistances instead of glyphs (implies -render)")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log per-trial results")
}
