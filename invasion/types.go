package invasion

import (
	"context"
	"errors"

	"github.com/katalvlaran/percolation/grid"
)

// Sentinel errors returned by the engine.
var (
	// ErrInvalidParameter indicates a malformed size or spread.
	ErrInvalidParameter = grid.ErrInvalidParameter

	// ErrNilGrid indicates New was called without a grid.
	ErrNilGrid = errors.New("invasion: grid is nil")

	// ErrNilSource indicates a missing random source.
	ErrNilSource = errors.New("invasion: random source is nil")

	// ErrTerminated indicates Step was called after the run ended.
	ErrTerminated = errors.New("invasion: run already terminated")

	// ErrGridNotFresh indicates New was given a grid that already has invaded
	// cells; the frontier could not account for them.
	ErrGridNotFresh = errors.New("invasion: grid already has invaded cells")

	// ErrAlreadySeeded indicates Seed was called outside the Seeding state.
	ErrAlreadySeeded = errors.New("invasion: engine already seeded")
)

// State is the phase of an Engine.
type State int

const (
	// Seeding: nothing invaded yet.
	Seeding State = iota
	// Growing: the cluster has not reached the boundary.
	Growing
	// Terminated: the last invaded cell lies on the boundary, or a fatal error occurred.
	Terminated
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Seeding:
		return "seeding"
	case Growing:
		return "growing"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Step describes one invasion. Index 0 is the seed.
type Step struct {
	Index    int        // 0 for the seed, then 1, 2, …
	Cell     grid.Coord // newly invaded cell
	Value    int        // its resistance
	Invaded  int        // cluster size after this step
	Frontier int        // tracked frontier cells after neighbours were added
	Boundary bool       // true on the final step
}

// Result holds the outcome of a completed run.
type Result struct {
	// Grid is the final grid, kept for density and shape inspection.
	Grid *grid.Grid
	// Density is Invaded / Grid.Cells(), in (0, 1].
	Density float64
	// Invaded is the number of invaded cells, seed included.
	Invaded int
	// Steps is the number of invasions after seeding.
	Steps int
	// Last is the cell whose invasion ended the run.
	Last grid.Coord
	// MaxValue is the largest resistance accepted into the cluster.
	MaxValue int
	// Order lists invaded cells in invasion order; nil unless WithRecordOrder.
	Order []grid.Coord
}

// Options configures an Engine or a Run.
type Options struct {
	// Ctx is checked between steps.
	Ctx context.Context
	// OnInvade is called after each invasion, including the seed.
	OnInvade func(Step)
	// RecordOrder keeps the invasion order in Result.Order.
	RecordOrder bool
	// Fill overrides the grid fill used by Run; nil means uniform from the source.
	Fill grid.ValueFunc
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// DefaultOptions returns Options with a background context, a no-op hook,
// no order recording and the uniform fill.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnInvade: func(Step) {},
	}
}

// WithContext sets the context checked between steps. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("invasion: WithContext(nil)")
	}
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithOnInvade registers a hook run after every invasion. Panics on nil.
func WithOnInvade(fn func(Step)) Option {
	if fn == nil {
		panic("invasion: WithOnInvade(nil)")
	}
	return func(o *Options) {
		o.OnInvade = fn
	}
}

// WithRecordOrder keeps the invasion order in Result.Order.
func WithRecordOrder() Option {
	return func(o *Options) {
		o.RecordOrder = true
	}
}

// WithValueFunc fills the grid built by Run from fn. Panics on nil.
// Values outside [1, spread] make Run fail with grid.ErrValueOutOfRange.
func WithValueFunc(fn grid.ValueFunc) Option {
	if fn == nil {
		panic("invasion: WithValueFunc(nil)")
	}
	return func(o *Options) {
		o.Fill = fn
	}
}
