package grid_test

import (
	"testing"

	"github.com/katalvlaran/percolation/grid"
	"github.com/katalvlaran/percolation/rng"
)

// BenchmarkNew measures filling a 1001×1001 grid from a seeded source.
// Complexity: O(N²)
func BenchmarkNew(b *testing.B) {
	const n, spread = 1001, 100
	src := rng.FromSeed(42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := grid.New(n, spread, grid.UniformValues(src, spread)); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkInvadedComponents measures component discovery on a half-invaded grid.
// Complexity: O(N²)
func BenchmarkInvadedComponents(b *testing.B) {
	const n = 501
	g, err := grid.New(n, 2, grid.UniformValues(rng.FromSeed(42), 2))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if v, _ := g.Value(grid.Coord{Row: r, Col: c}); v == 1 {
				_ = g.MarkInvaded(grid.Coord{Row: r, Col: c})
			}
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.InvadedComponents()
	}
}
