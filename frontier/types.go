package frontier

import (
	"errors"

	"github.com/katalvlaran/percolation/grid"
)

// Sentinel errors returned by the Frontier.
var (
	// ErrNilChecker indicates New was called without an InvasionChecker.
	ErrNilChecker = errors.New("frontier: invasion checker is nil")

	// ErrNilSource indicates New was called without a random source.
	ErrNilSource = errors.New("frontier: random source is nil")

	// ErrInvariantViolation indicates an attempt to track an invaded cell.
	ErrInvariantViolation = errors.New("frontier: invariant violation")

	// ErrInvalidValue indicates a resistance below 1.
	ErrInvalidValue = errors.New("frontier: resistance must be positive")

	// ErrEmpty indicates a fetch from a frontier with no tracked cells.
	ErrEmpty = errors.New("frontier: empty")
)

// InvasionChecker reports whether a cell is already part of the cluster.
// *grid.Grid satisfies it.
type InvasionChecker interface {
	IsInvaded(c grid.Coord) bool
}

// Level summarizes one non-empty bucket.
type Level struct {
	Value int // resistance shared by the bucket
	Count int // number of tracked cells at Value
}
