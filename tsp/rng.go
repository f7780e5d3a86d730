// Package tsp - RNG utilities shared by the randomized engines.
//
// This file centralizes random generation for ACO, Scatter Search and the
// nearest-neighbour start choice.
//
// Goals:
//   - Injectable: every engine takes a *rand.Rand; nothing reads a global source.
//   - Reproducible on demand: any non-zero seed ⇒ identical runs across platforms.
//   - Non-deterministic by default: seed==0 ⇒ a freshly seeded stream.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use DeriveRNG to create independent streams for parallel runs.
package tsp

import "math/rand"

// NewRNG returns a *rand.Rand for one run.
// Policy: seed==0 ⇒ seeded from the runtime-randomized global source;
// otherwise the provided seed is used verbatim.
//
// Complexity: O(1).
func NewRNG(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = rand.Int63()
	}
	return rand.New(rand.NewSource(s))
}

// resolveRNG returns rng, or a fresh non-deterministic generator when nil.
func resolveRNG(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return NewRNG(0)
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// Notes:
//   - Constants are the canonical SplitMix64 multipliers/finalizer. Small changes
//     in inputs produce large, well-distributed output changes.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveRNG creates an independent RNG stream from a base seed and a stream
// identifier (e.g. a job index). Equal (seed, stream) pairs give equal streams;
// seed==0 ⇒ the parent itself is drawn non-deterministically.
//
// Usage:
//   - Call during setup (not in hot loops) to create per-worker/per-run RNGs.
//
// Complexity: O(1).
func DeriveRNG(seed int64, stream uint64) *rand.Rand {
	var parent int64
	parent = seed
	if parent == 0 {
		parent = rand.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	var n int
	n = len(a)
	if n <= 1 {
		return
	}

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// identityOrder returns [0, 1, ..., n-1].
func identityOrder(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// permRange returns a uniformly random permutation of 0..n-1 drawn from rng.
//
// Complexity: O(n) time, O(n) space.
func permRange(n int, rng *rand.Rand) []int {
	p := identityOrder(n)
	shuffleIntsInPlace(p, rng)
	return p
}
