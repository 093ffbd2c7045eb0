// Package metrics computes scalar summaries of a finished (or partial)
// invasion cluster. All functions are pure reads of the lattice.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/percolation/grid"
)

// Lattice is the read-only view the metrics need. *grid.Grid satisfies it.
type Lattice interface {
	Size() int
	IsInvaded(c grid.Coord) bool
}

// ValuedLattice additionally exposes resistances.
type ValuedLattice interface {
	Lattice
	Value(c grid.Coord) (int, error)
}

// Box is an inclusive bounding box.
type Box struct {
	Min, Max grid.Coord
}

// Height returns the number of rows covered.
func (b Box) Height() int { return b.Max.Row - b.Min.Row + 1 }

// Width returns the number of columns covered.
func (b Box) Width() int { return b.Max.Col - b.Min.Col + 1 }

// each calls fn for every invaded cell in row-major order.
func each(l Lattice, fn func(c grid.Coord)) {
	n := l.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if cc := (grid.Coord{Row: r, Col: c}); l.IsInvaded(cc) {
				fn(cc)
			}
		}
	}
}

// InvadedCount counts invaded cells by scanning the lattice.
// Complexity: O(N²).
func InvadedCount(l Lattice) int {
	count := 0
	each(l, func(grid.Coord) { count++ })
	return count
}

// Density returns invaded cells / size². For a lattice produced by a run the
// result lies in (0, 1]; an empty lattice yields 0.
// Complexity: O(N²).
func Density(l Lattice) float64 {
	n := l.Size()
	if n == 0 {
		return 0
	}
	return float64(InvadedCount(l)) / float64(n*n)
}

// MaxInvadedValue returns the largest resistance among invaded cells, or 0 if
// none are invaded. Over many runs its distribution concentrates near the
// percolation threshold times the spread.
func MaxInvadedValue(l ValuedLattice) int {
	best := 0
	each(l, func(c grid.Coord) {
		if v, err := l.Value(c); err == nil && v > best {
			best = v
		}
	})
	return best
}

// Extent returns the bounding box of the invaded cells; ok is false when
// nothing is invaded.
func Extent(l Lattice) (box Box, ok bool) {
	each(l, func(c grid.Coord) {
		if !ok {
			box, ok = Box{Min: c, Max: c}, true
			return
		}
		box.Min.Row = min(box.Min.Row, c.Row)
		box.Min.Col = min(box.Min.Col, c.Col)
		box.Max.Row = max(box.Max.Row, c.Row)
		box.Max.Col = max(box.Max.Col, c.Col)
	})
	return box, ok
}

// RadiusOfGyration returns the root-mean-square distance of invaded cells
// from their centroid, in cell units. Zero for fewer than two cells.
func RadiusOfGyration(l Lattice) float64 {
	var rows, cols []float64
	each(l, func(c grid.Coord) {
		rows = append(rows, float64(c.Row))
		cols = append(cols, float64(c.Col))
	})
	if len(rows) < 2 {
		return 0
	}
	return math.Sqrt(stat.PopVariance(rows, nil) + stat.PopVariance(cols, nil))
}
