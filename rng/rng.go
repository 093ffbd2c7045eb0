// Package rng supplies the random sources of a simulation run.
//
// Three consumers draw from a Source: the grid fill, the frontier tie-break
// and the multi-trial driver. None of them reaches for the process-global
// math/rand state, so a seed fully determines a run.
//
// A *rand.Rand is not safe for concurrent use. Parallel trials each get their
// own stream from Derive; NewLocked covers the rare caller that must share one.
package rng

import (
	"math/rand"
	"sync"
)

// DefaultSeed replaces a zero seed in FromSeed and Derive.
const DefaultSeed int64 = 1

// Source is the uniform integer generator consumed by the simulation.
// Intn returns a value uniformly distributed in [0, n) and may assume n > 0.
// *math/rand.Rand satisfies Source.
type Source interface {
	Intn(n int) int
}

// FromSeed returns a *rand.Rand seeded with seed, or with DefaultSeed when
// seed is 0.
func FromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// golden is the SplitMix64 state increment.
const golden = 0x9e3779b97f4a7c15

// DeriveSeed returns the seed of stream number stream under parent. It is the
// stream-th output of a SplitMix64 generator started at parent, so nearby
// stream ids give unrelated seeds.
func DeriveSeed(parent int64, stream uint64) int64 {
	return int64(mix64(uint64(parent) + (stream+1)*golden))
}

func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Derive returns the generator for one stream of parent. The same pair always
// yields the same sequence, whatever order the streams are created in.
func Derive(parent int64, stream uint64) *rand.Rand {
	if parent == 0 {
		parent = DefaultSeed
	}
	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}

// UniformInt draws from the closed range [lo, hi]; lo must not exceed hi.
func UniformInt(src Source, lo, hi int) int {
	return lo + src.Intn(hi-lo+1)
}

// Locked serializes access to an underlying Source.
// It lets independent runs share one generator at the cost of contention;
// prefer Derive for parallel workloads.
type Locked struct {
	mu  sync.Mutex
	src Source
}

// NewLocked wraps src with a mutex.
func NewLocked(src Source) *Locked {
	return &Locked{src: src}
}

// Intn implements Source.
func (l *Locked) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.src.Intn(n)
}
