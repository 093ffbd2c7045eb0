package metrics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/grid"
	"github.com/katalvlaran/percolation/metrics"
)

// build returns a 3×3 grid with 1..9 and the given cells invaded.
func build(t *testing.T, invaded ...grid.Coord) *grid.Grid {
	t.Helper()
	g, err := grid.FromValues([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, err)
	for _, c := range invaded {
		require.NoError(t, g.MarkInvaded(c))
	}
	return g
}

// TestDensity_TwoOfNine reproduces the 2/9 density scenario.
func TestDensity_TwoOfNine(t *testing.T) {
	g := build(t, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 1, Col: 0})
	assert.InDelta(t, 2.0/9.0, metrics.Density(g), 1e-12)
	assert.InDelta(t, 0.2222, metrics.Density(g), 1e-4)
	assert.Equal(t, 2, metrics.InvadedCount(g))
}

func TestDensity_Bounds(t *testing.T) {
	assert.Zero(t, metrics.Density(build(t)))

	full := build(t)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			require.NoError(t, full.MarkInvaded(grid.Coord{Row: r, Col: c}))
		}
	}
	assert.Equal(t, 1.0, metrics.Density(full))
}

func TestMaxInvadedValue(t *testing.T) {
	assert.Zero(t, metrics.MaxInvadedValue(build(t)))
	g := build(t, grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: 2, Col: 1}, grid.Coord{Row: 0, Col: 1})
	assert.Equal(t, 8, metrics.MaxInvadedValue(g))
}

func TestExtent(t *testing.T) {
	_, ok := metrics.Extent(build(t))
	assert.False(t, ok)

	g := build(t, grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: 1, Col: 2}, grid.Coord{Row: 2, Col: 2})
	box, ok := metrics.Extent(g)
	require.True(t, ok)
	assert.Equal(t, metrics.Box{Min: grid.Coord{Row: 1, Col: 1}, Max: grid.Coord{Row: 2, Col: 2}}, box)
	assert.Equal(t, 2, box.Width())
	assert.Equal(t, 2, box.Height())
}

func TestRadiusOfGyration(t *testing.T) {
	assert.Zero(t, metrics.RadiusOfGyration(build(t, grid.Coord{Row: 1, Col: 1})))

	// plus shape: centroid (1,1), four arms at distance 1, centre at 0 ⇒ Rg² = 4/5
	plus := build(t,
		grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: 0, Col: 1}, grid.Coord{Row: 2, Col: 1},
		grid.Coord{Row: 1, Col: 0}, grid.Coord{Row: 1, Col: 2},
	)
	assert.InDelta(t, math.Sqrt(0.8), metrics.RadiusOfGyration(plus), 1e-12)
}
