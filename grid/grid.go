package grid

import (
	"fmt"
)

// New builds a size×size grid filled in row-major order from fill.
// Returns ErrInvalidParameter if size is not a positive odd integer, spread < 1
// or fill is nil, and ErrValueOutOfRange if fill yields a value outside [1, spread].
// Complexity: O(size²) time and memory.
func New(size, spread int, fill ValueFunc) (*Grid, error) {
	if err := Validate(size, spread); err != nil {
		return nil, err
	}
	if fill == nil {
		return nil, fmt.Errorf("%w: fill function is nil", ErrInvalidParameter)
	}

	g := newEmpty(size, spread)
	for i := range g.values {
		v := fill()
		if v < 1 || v > spread {
			return nil, fmt.Errorf("%w: %d at %v, want [1,%d]", ErrValueOutOfRange, v, g.Coordinate(i), spread)
		}
		g.values[i] = v
	}

	return g, nil
}

// Validate reports ErrInvalidParameter unless size is a positive odd integer
// and spread >= 1.
func Validate(size, spread int) error {
	if size < 1 || size%2 == 0 {
		return fmt.Errorf("%w: size must be a positive odd integer, got %d", ErrInvalidParameter, size)
	}
	if spread < 1 {
		return fmt.Errorf("%w: spread must be a positive integer, got %d", ErrInvalidParameter, spread)
	}
	return nil
}

// FromValues builds a grid from an explicit square matrix of resistances.
// The spread is the largest value present. The input is deep-copied.
// Returns ErrInvalidParameter for empty, non-square or even-sized input and
// ErrValueOutOfRange for values below 1.
func FromValues(values [][]int) (*Grid, error) {
	size := len(values)
	if size == 0 || size%2 == 0 {
		return nil, fmt.Errorf("%w: size must be a positive odd integer, got %d", ErrInvalidParameter, size)
	}
	spread := 1
	for r, row := range values {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrInvalidParameter, r, len(row), size)
		}
		for c, v := range row {
			if v < 1 {
				return nil, fmt.Errorf("%w: %d at %v, want >= 1", ErrValueOutOfRange, v, Coord{Row: r, Col: c})
			}
			if v > spread {
				spread = v
			}
		}
	}

	g := newEmpty(size, spread)
	for r, row := range values {
		copy(g.values[r*size:(r+1)*size], row)
	}

	return g, nil
}

func newEmpty(size, spread int) *Grid {
	return &Grid{
		size:    size,
		spread:  spread,
		values:  make([]int, size*size),
		invaded: make([]bool, size*size),
	}
}

// Size returns the side length.
func (g *Grid) Size() int { return g.size }

// Spread returns the upper bound of the resistance range.
func (g *Grid) Spread() int { return g.spread }

// Cells returns the total number of cells, size².
func (g *Grid) Cells() int { return g.size * g.size }

// InvadedCount returns the number of invaded cells.
func (g *Grid) InvadedCount() int { return g.nInvaded }

// Center returns the unique centre cell (size/2, size/2).
func (g *Grid) Center() Coord {
	return Coord{Row: g.size / 2, Col: g.size / 2}
}

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// index maps c to a row-major index: Row*size + Col.
func (g *Grid) index(c Coord) int {
	return c.Row*g.size + c.Col
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.size, Col: idx % g.size}
}

// Value returns the resistance at c, or ErrOutOfBounds.
func (g *Grid) Value(c Coord) (int, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.size, g.size)
	}
	return g.values[g.index(c)], nil
}

// Values returns a deep copy of the resistance matrix.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.size)
	for r := range out {
		out[r] = make([]int, g.size)
		copy(out[r], g.values[r*g.size:(r+1)*g.size])
	}
	return out
}

// IsInvaded reports whether c is invaded. Out-of-bounds cells are never invaded.
func (g *Grid) IsInvaded(c Coord) bool {
	return g.InBounds(c) && g.invaded[g.index(c)]
}

// MarkInvaded flips c to invaded.
// Returns ErrOutOfBounds for cells outside the grid and ErrAlreadyInvaded if c
// was invaded before; the grid is left unchanged in both cases.
func (g *Grid) MarkInvaded(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.size, g.size)
	}
	i := g.index(c)
	if g.invaded[i] {
		return fmt.Errorf("%w: %v", ErrAlreadyInvaded, c)
	}
	g.invaded[i] = true
	g.nInvaded++

	return nil
}

// IsOnBoundary reports whether c sits on the outer ring: row or column equal
// to 0 or size-1.
func (g *Grid) IsOnBoundary(c Coord) bool {
	last := g.size - 1
	return c.Row == 0 || c.Col == 0 || c.Row == last || c.Col == last
}

// Neighbors returns the in-bounds 4-connected neighbours of c in the order
// up, left, down, right.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// IsAdjacentToInvaded reports whether c is not invaded but touches an invaded
// cell, i.e. whether c belongs to the invasion frontier.
func (g *Grid) IsAdjacentToInvaded(c Coord) bool {
	if !g.InBounds(c) || g.IsInvaded(c) {
		return false
	}
	for _, n := range g.Neighbors(c) {
		if g.invaded[g.index(n)] {
			return true
		}
	}
	return false
}
