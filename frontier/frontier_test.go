package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/percolation/frontier"
	"github.com/katalvlaran/percolation/grid"
	"github.com/katalvlaran/percolation/rng"
)

// invadedSet is a map-backed InvasionChecker for isolated frontier tests.
type invadedSet map[grid.Coord]bool

func (s invadedSet) IsInvaded(c grid.Coord) bool { return s[c] }

// FrontierSuite exercises the Frontier bookkeeping and selection rule.
type FrontierSuite struct {
	suite.Suite
	invaded invadedSet
	f       *frontier.Frontier
}

func (s *FrontierSuite) SetupTest() {
	s.invaded = invadedSet{}
	f, err := frontier.New(s.invaded, rng.FromSeed(1))
	require.NoError(s.T(), err)
	s.f = f
}

// TestNew_NilCollaborators verifies construction guards.
func (s *FrontierSuite) TestNew_NilCollaborators() {
	_, err := frontier.New(nil, rng.FromSeed(1))
	require.ErrorIs(s.T(), err, frontier.ErrNilChecker)
	_, err = frontier.New(invadedSet{}, nil)
	require.ErrorIs(s.T(), err, frontier.ErrNilSource)
}

// TestEmpty verifies that fetching from an empty frontier fails.
func (s *FrontierSuite) TestEmpty() {
	_, _, err := s.f.RemoveAndFetchMinimum()
	require.ErrorIs(s.T(), err, frontier.ErrEmpty)
	_, _, ok := s.f.Min()
	require.False(s.T(), ok)
	require.Zero(s.T(), s.f.Len())
}

// TestInsert_Idempotent checks that re-inserting a tracked cell changes nothing.
func (s *FrontierSuite) TestInsert_Idempotent() {
	c := grid.Coord{Row: 2, Col: 3}
	require.NoError(s.T(), s.f.Insert(c, 4))
	require.NoError(s.T(), s.f.Insert(c, 4))
	require.NoError(s.T(), s.f.Insert(c, 1), "a different level is ignored for a tracked cell")

	require.Equal(s.T(), 1, s.f.Len())
	v, ok := s.f.Tracked(c)
	require.True(s.T(), ok)
	require.Equal(s.T(), 4, v)
	require.Equal(s.T(), []frontier.Level{{Value: 4, Count: 1}}, s.f.Levels())
}

// TestInsert_Invaded rejects cells that already belong to the cluster.
func (s *FrontierSuite) TestInsert_Invaded() {
	c := grid.Coord{Row: 1, Col: 1}
	s.invaded[c] = true
	err := s.f.Insert(c, 3)
	require.ErrorIs(s.T(), err, frontier.ErrInvariantViolation)
	require.Contains(s.T(), err.Error(), "(1,1)")
	require.False(s.T(), s.f.Contains(c))
}

// TestInsert_InvalidValue rejects non-positive resistances.
func (s *FrontierSuite) TestInsert_InvalidValue() {
	require.ErrorIs(s.T(), s.f.Insert(grid.Coord{}, 0), frontier.ErrInvalidValue)
	require.Zero(s.T(), s.f.Len())
}

// TestUniqueMinimum reproduces the selection scenario: (0,1) holds the only 1.
func (s *FrontierSuite) TestUniqueMinimum() {
	require.NoError(s.T(), s.f.Insert(grid.Coord{Row: 1, Col: 0}, 5))
	require.NoError(s.T(), s.f.Insert(grid.Coord{Row: 0, Col: 1}, 1))
	require.NoError(s.T(), s.f.Insert(grid.Coord{Row: 2, Col: 1}, 3))
	require.NoError(s.T(), s.f.Insert(grid.Coord{Row: 1, Col: 2}, 3))

	v, n, ok := s.f.Min()
	require.True(s.T(), ok)
	require.Equal(s.T(), 1, v)
	require.Equal(s.T(), 1, n)

	c, got, err := s.f.RemoveAndFetchMinimum()
	require.NoError(s.T(), err)
	require.Equal(s.T(), grid.Coord{Row: 0, Col: 1}, c)
	require.Equal(s.T(), 1, got)
	require.False(s.T(), s.f.Contains(c))
	require.Equal(s.T(), 3, s.f.Len())
}

// TestDrainOrder checks levels come out non-decreasing and buckets are dropped.
func (s *FrontierSuite) TestDrainOrder() {
	vals := []int{7, 2, 9, 2, 5, 7, 1, 9, 2}
	for i, v := range vals {
		require.NoError(s.T(), s.f.Insert(grid.Coord{Row: i, Col: 0}, v))
	}
	require.Equal(s.T(), []frontier.Level{
		{Value: 1, Count: 1}, {Value: 2, Count: 3}, {Value: 5, Count: 1},
		{Value: 7, Count: 2}, {Value: 9, Count: 2},
	}, s.f.Levels())

	prev := 0
	seen := make(map[grid.Coord]bool)
	for s.f.Len() > 0 {
		c, v, err := s.f.RemoveAndFetchMinimum()
		require.NoError(s.T(), err)
		require.GreaterOrEqual(s.T(), v, prev)
		require.False(s.T(), seen[c], "cell %v returned twice", c)
		seen[c] = true
		prev = v
	}
	require.Len(s.T(), seen, len(vals))
	require.Empty(s.T(), s.f.Levels())
}

// TestMatchesNaiveScan interleaves inserts and removals and compares the
// returned level with a brute-force minimum over the tracked set.
func (s *FrontierSuite) TestMatchesNaiveScan() {
	src := rng.FromSeed(99)
	naive := make(map[grid.Coord]int)
	for step := 0; step < 3000; step++ {
		if src.Intn(3) > 0 || len(naive) == 0 {
			c := grid.Coord{Row: src.Intn(40), Col: src.Intn(40)}
			v := 1 + src.Intn(12)
			if _, ok := naive[c]; !ok {
				naive[c] = v
			}
			require.NoError(s.T(), s.f.Insert(c, v))
			continue
		}
		want := -1
		for _, v := range naive {
			if want < 0 || v < want {
				want = v
			}
		}
		c, v, err := s.f.RemoveAndFetchMinimum()
		require.NoError(s.T(), err)
		require.Equal(s.T(), want, v)
		require.Equal(s.T(), naive[c], v)
		delete(naive, c)
		require.Equal(s.T(), len(naive), s.f.Len())
	}
}

func TestFrontierSuite(t *testing.T) {
	suite.Run(t, new(FrontierSuite))
}
