package frontier_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/frontier"
	"github.com/katalvlaran/percolation/grid"
	"github.com/katalvlaran/percolation/rng"
)

// TestTieBreak_Uniform checks that each of k cells tied at the minimum is
// selected with frequency ≈ 1/k. Higher levels must never be picked first.
func TestTieBreak_Uniform(t *testing.T) {
	const trials = 20000
	tied := []grid.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}, {Row: 2, Col: 1}}
	src := rng.FromSeed(2024)
	counts := make(map[grid.Coord]int, len(tied))

	for i := 0; i < trials; i++ {
		f, err := frontier.New(invadedSet{}, src)
		require.NoError(t, err)
		require.NoError(t, f.Insert(grid.Coord{Row: 5, Col: 5}, 4))
		for _, c := range tied {
			require.NoError(t, f.Insert(c, 2))
		}
		require.NoError(t, f.Insert(grid.Coord{Row: 6, Col: 6}, 3))

		c, v, err := f.RemoveAndFetchMinimum()
		require.NoError(t, err)
		require.Equal(t, 2, v)
		counts[c]++
	}

	want := float64(trials) / float64(len(tied))
	// σ = sqrt(n·p·(1-p)) ≈ 61; allow ~5σ
	tol := 5 * math.Sqrt(float64(trials)*0.25*0.75)
	for _, c := range tied {
		assert.InDelta(t, want, float64(counts[c]), tol, "cell %v picked %d times", c, counts[c])
	}
}

// TestTieBreak_Deterministic checks the pick sequence is reproducible under a seed.
func TestTieBreak_Deterministic(t *testing.T) {
	run := func() []grid.Coord {
		f, err := frontier.New(invadedSet{}, rng.FromSeed(77))
		require.NoError(t, err)
		for r := 0; r < 5; r++ {
			for c := 0; c < 5; c++ {
				require.NoError(t, f.Insert(grid.Coord{Row: r, Col: c}, 1+(r+c)%2))
			}
		}
		var out []grid.Coord
		for f.Len() > 0 {
			c, _, err := f.RemoveAndFetchMinimum()
			require.NoError(t, err)
			out = append(out, c)
		}
		return out
	}
	assert.Equal(t, run(), run())
}
