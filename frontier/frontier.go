package frontier

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/katalvlaran/percolation/grid"
	"github.com/katalvlaran/percolation/rng"
)

// Frontier tracks the cells currently eligible for invasion.
type Frontier struct {
	checker InvasionChecker
	src     rng.Source
	buckets map[int][]grid.Coord // level → cells at that level
	levels  levelHeap            // non-empty levels; levels[0] is the minimum
	index   map[grid.Coord]int   // cell → tracked level
}

// New returns an empty Frontier. checker guards against tracking invaded
// cells; src drives the uniform tie-break.
func New(checker InvasionChecker, src rng.Source) (*Frontier, error) {
	if checker == nil {
		return nil, ErrNilChecker
	}
	if src == nil {
		return nil, ErrNilSource
	}

	return &Frontier{
		checker: checker,
		src:     src,
		buckets: make(map[int][]grid.Coord),
		index:   make(map[grid.Coord]int),
	}, nil
}

// Len returns the number of tracked cells.
func (f *Frontier) Len() int { return len(f.index) }

// Contains reports whether c is tracked.
func (f *Frontier) Contains(c grid.Coord) bool {
	_, ok := f.index[c]
	return ok
}

// Tracked returns the level recorded for c.
func (f *Frontier) Tracked(c grid.Coord) (int, bool) {
	v, ok := f.index[c]
	return v, ok
}

// Min returns the smallest tracked level and how many cells share it.
// ok is false when the frontier is empty.
func (f *Frontier) Min() (value, count int, ok bool) {
	if len(f.levels) == 0 {
		return 0, 0, false
	}
	value = f.levels[0]
	return value, len(f.buckets[value]), true
}

// Levels returns every non-empty level in ascending order.
// Complexity: O(L log L).
func (f *Frontier) Levels() []Level {
	out := make([]Level, 0, len(f.levels))
	for _, v := range f.levels {
		out = append(out, Level{Value: v, Count: len(f.buckets[v])})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}

// Insert starts tracking c at the given level.
// It is a no-op when c is already tracked; the recorded level never changes.
// Returns ErrInvariantViolation if c is invaded and ErrInvalidValue if value < 1.
func (f *Frontier) Insert(c grid.Coord, value int) error {
	if f.checker.IsInvaded(c) {
		return fmt.Errorf("%w: cannot track invaded cell %v", ErrInvariantViolation, c)
	}
	if _, ok := f.index[c]; ok {
		return nil
	}
	if value < 1 {
		return fmt.Errorf("%w: %d at %v", ErrInvalidValue, value, c)
	}

	bucket, ok := f.buckets[value]
	if !ok {
		heap.Push(&f.levels, value)
	}
	f.buckets[value] = append(bucket, c)
	f.index[c] = value

	return nil
}

// RemoveAndFetchMinimum removes and returns one cell chosen uniformly at random
// among all cells tied at the minimum level, together with that level.
// Returns ErrEmpty when nothing is tracked.
func (f *Frontier) RemoveAndFetchMinimum() (grid.Coord, int, error) {
	if len(f.levels) == 0 {
		return grid.Coord{}, 0, ErrEmpty
	}

	value := f.levels[0]
	bucket := f.buckets[value]
	k := len(bucket)
	i := 0
	if k > 1 {
		i = f.src.Intn(k)
	}
	c := bucket[i]

	// swap-remove keeps the draw O(1); order inside a bucket carries no meaning
	bucket[i] = bucket[k-1]
	bucket = bucket[:k-1]
	delete(f.index, c)

	if len(bucket) == 0 {
		delete(f.buckets, value)
		heap.Pop(&f.levels)
	} else {
		f.buckets[value] = bucket
	}

	return c, value, nil
}
