package invasion

import (
	"fmt"

	"github.com/katalvlaran/percolation/frontier"
	"github.com/katalvlaran/percolation/grid"
	"github.com/katalvlaran/percolation/metrics"
	"github.com/katalvlaran/percolation/rng"
)

// Engine grows one invasion cluster on a grid it owns for the run's lifetime.
type Engine struct {
	g     *grid.Grid
	f     *frontier.Frontier
	opts  Options
	state State
	last  grid.Coord
	steps int
	order []grid.Coord
	err   error // fatal error that forced Terminated, if any
}

// New prepares an Engine in the Seeding state. src drives the frontier
// tie-break. Returns ErrGridNotFresh if g already contains invaded cells.
func New(g *grid.Grid, src rng.Source, opts ...Option) (*Engine, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newEngine(g, src, cfg)
}

func newEngine(g *grid.Grid, src rng.Source, cfg Options) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if src == nil {
		return nil, ErrNilSource
	}
	if n := g.InvadedCount(); n != 0 {
		return nil, fmt.Errorf("%w: %d cells", ErrGridNotFresh, n)
	}
	f, err := frontier.New(g, src)
	if err != nil {
		return nil, fmt.Errorf("invasion: %w", err)
	}

	e := &Engine{g: g, f: f, opts: cfg, state: Seeding}
	if cfg.RecordOrder {
		e.order = make([]grid.Coord, 0, g.Size())
	}
	return e, nil
}

// State returns the current phase.
func (e *Engine) State() State { return e.state }

// Grid returns the grid being invaded.
func (e *Engine) Grid() *grid.Grid { return e.g }

// FrontierLen returns the number of cells currently eligible for invasion.
func (e *Engine) FrontierLen() int { return e.f.Len() }

// Err returns the fatal error that terminated the run, if any.
func (e *Engine) Err() error { return e.err }

// Seed invades the centre cell and exposes its neighbours.
// On a 1×1 grid the centre is a boundary cell and the run terminates at once.
func (e *Engine) Seed() error {
	_, err := e.seed()
	return err
}

func (e *Engine) seed() (Step, error) {
	if e.state != Seeding {
		return Step{}, ErrAlreadySeeded
	}
	c := e.g.Center()
	v, err := e.g.Value(c)
	if err != nil {
		return Step{}, e.fatal(0, err)
	}
	return e.invade(0, c, v)
}

// Step performs one invasion and reports it. In the Seeding state it seeds.
// Returns ErrTerminated once the cluster has reached the boundary.
func (e *Engine) Step() (Step, error) {
	switch e.state {
	case Terminated:
		return Step{}, ErrTerminated
	case Seeding:
		return e.seed()
	}

	idx := e.steps + 1
	c, v, err := e.f.RemoveAndFetchMinimum()
	if err != nil {
		return Step{}, e.fatal(idx, err)
	}
	e.steps = idx

	return e.invade(idx, c, v)
}

// invade marks c, exposes its neighbours and updates the state.
func (e *Engine) invade(idx int, c grid.Coord, value int) (Step, error) {
	if gv, err := e.g.Value(c); err != nil {
		return Step{}, e.fatal(idx, err)
	} else if gv != value {
		return Step{}, e.fatal(idx, fmt.Errorf("%w: %v tracked at %d, grid holds %d",
			frontier.ErrInvariantViolation, c, value, gv))
	}
	if err := e.g.MarkInvaded(c); err != nil {
		return Step{}, e.fatal(idx, err)
	}
	for _, n := range e.g.Neighbors(c) {
		if e.g.IsInvaded(n) {
			continue
		}
		nv, err := e.g.Value(n)
		if err != nil {
			return Step{}, e.fatal(idx, err)
		}
		if err := e.f.Insert(n, nv); err != nil {
			return Step{}, e.fatal(idx, err)
		}
	}

	e.last = c
	if e.order != nil {
		e.order = append(e.order, c)
	}
	boundary := e.g.IsOnBoundary(c)
	if boundary {
		e.state = Terminated
	} else {
		e.state = Growing
	}

	st := Step{
		Index:    idx,
		Cell:     c,
		Value:    value,
		Invaded:  e.g.InvadedCount(),
		Frontier: e.f.Len(),
		Boundary: boundary,
	}
	e.opts.OnInvade(st)

	return st, nil
}

// fatal terminates the run and records err with step context.
func (e *Engine) fatal(idx int, err error) error {
	e.state = Terminated
	e.err = fmt.Errorf("invasion: step %d: %w", idx, err)
	return e.err
}

// Run drives the engine from its current state to termination and returns
// the result. The context from WithContext is checked before every step;
// a cancelled run stays resumable in its current state.
func (e *Engine) Run() (*Result, error) {
	if e.err != nil {
		return nil, e.err
	}
	if e.state == Seeding {
		if _, err := e.seed(); err != nil {
			return nil, err
		}
	}
	for e.state == Growing {
		if err := e.opts.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("invasion: stopped after step %d: %w", e.steps, err)
		}
		if _, err := e.Step(); err != nil {
			return nil, err
		}
	}

	return e.Result(), nil
}

// Result snapshots the run. Density and MaxValue reflect the current grid,
// so a Result taken mid-run describes the partial cluster.
func (e *Engine) Result() *Result {
	res := &Result{
		Grid:     e.g,
		Density:  metrics.Density(e.g),
		Invaded:  e.g.InvadedCount(),
		Steps:    e.steps,
		Last:     e.last,
		MaxValue: metrics.MaxInvadedValue(e.g),
	}
	if e.order != nil {
		res.Order = append([]grid.Coord(nil), e.order...)
	}
	return res
}

// Run performs a complete invasion percolation run on a fresh size×size grid
// filled uniformly from [1, spread] by src (or by WithValueFunc).
// Returns ErrInvalidParameter for malformed size or spread before any work,
// including the source check.
func Run(size, spread int, src rng.Source, opts ...Option) (*Result, error) {
	if err := grid.Validate(size, spread); err != nil {
		return nil, err
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if src == nil {
		return nil, ErrNilSource
	}
	fill := cfg.Fill
	if fill == nil {
		fill = grid.UniformValues(src, spread)
	}
	g, err := grid.New(size, spread, fill)
	if err != nil {
		return nil, err
	}
	e, err := newEngine(g, src, cfg)
	if err != nil {
		return nil, err
	}

	return e.Run()
}
