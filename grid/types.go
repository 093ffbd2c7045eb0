package grid

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/percolation/rng"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidParameter indicates a malformed size, spread or fill function.
	ErrInvalidParameter = errors.New("grid: invalid parameter")
	// ErrValueOutOfRange indicates a fill value outside [1, spread].
	ErrValueOutOfRange = errors.New("grid: cell value out of range")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrAlreadyInvaded indicates a second invasion of the same cell.
	ErrAlreadyInvaded = errors.New("grid: cell already invaded")
)

// Coord addresses a single cell. Row grows downwards, Col grows rightwards.
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// ValueFunc yields the resistance of the next cell in row-major fill order.
type ValueFunc func() int

// UniformValues returns a ValueFunc drawing independently and uniformly
// from [1, spread] using src.
func UniformValues(src rng.Source, spread int) ValueFunc {
	return func() int {
		return rng.UniformInt(src, 1, spread)
	}
}

// neighborOffsets lists 4-connected (dRow, dCol) steps: up, left, down, right.
var neighborOffsets = [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}

// Grid is a size×size lattice of resistances with a per-cell invaded flag.
// Values never change after construction; invaded flags only go false→true.
type Grid struct {
	size     int
	spread   int
	values   []int  // row-major resistances
	invaded  []bool // row-major invaded flags
	nInvaded int
}
