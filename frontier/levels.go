package frontier

// levelHeap is a min-heap of distinct resistance levels with non-empty buckets.
// A level is pushed when its bucket is created and popped when the bucket
// drains, so the heap never holds stale or duplicate levels.
type levelHeap []int

// Len returns the number of levels in the heap.
func (h levelHeap) Len() int { return len(h) }

// Less orders levels ascending: the smallest resistance is on top.
func (h levelHeap) Less(i, j int) bool { return h[i] < h[j] }

// Swap swaps two levels in the heap.
func (h levelHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a level. Called by heap.Push; x must be an int.
func (h *levelHeap) Push(x interface{}) { *h = append(*h, x.(int)) }

// Pop removes and returns the last level. Called by heap.Pop.
func (h *levelHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]

	return v
}
