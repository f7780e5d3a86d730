// Package tsp - tour utilities shared by the engines.
//
// Provided helpers:
//   - ReverseSegment: copy-on-write 2-opt reversal of [i..k].
//   - ValidateTour: enforce the permutation invariant against the problem points.
//   - SameCycle: equality of closed tours under rotation and reflection.
//   - CopyTour: independent copy of a tour slice.
//   - reverseInPlace / canonicalize: position-order helpers for the engines.
//   - DebugString: compact printable representation for tests/debug.
//
// Design:
//   - No logging, no panics on user input; only sentinel errors from types.go.
//   - Public helpers never mutate their inputs; the in-place helpers are
//     applied only to an engine's own working copy.
package tsp

import (
	"fmt"
	"strings"
)

// ReverseSegment returns a fresh copy of tour whose closed sub-range [i..k]
// is reversed; every other position is unchanged. The input is not modified.
// Applying the same reversal twice restores the original order.
//
// Contract: 0 ≤ i < k < len(tour), otherwise ErrSegmentOutOfRange.
//
// Complexity: O(n) time, O(n) space.
func ReverseSegment[T any](tour []T, i, k int) ([]T, error) {
	if i < 0 || i >= k || k >= len(tour) {
		return nil, ErrSegmentOutOfRange
	}
	out := make([]T, len(tour))
	copy(out, tour)
	reverseInPlace(out, i, k)

	return out, nil
}

// reverseInPlace reverses s[i..k] in place. Caller guarantees 0 ≤ i ≤ k < len(s).
//
// Complexity: O(k-i) time, O(1) space.
func reverseInPlace[T any](s []T, i, k int) {
	for i < k {
		s[i], s[k] = s[k], s[i]
		i++
		k--
	}
}

// ValidateTour checks that tour is a permutation of points by ID:
// same length, no duplicate IDs, every point ID present exactly once.
//
// Complexity: O(n) time and space.
func ValidateTour(tour, points []Point) error {
	if len(tour) != len(points) {
		return fmt.Errorf("%w: len %d, want %d", ErrNotPermutation, len(tour), len(points))
	}
	idx, err := indexPoints(points)
	if err != nil {
		return err
	}
	seen := make([]bool, len(points))

	var (
		i, p int
		ok   bool
	)
	for i = range tour {
		p, ok = idx[tour[i].ID]
		if !ok {
			return fmt.Errorf("%w: unknown id %d", ErrNotPermutation, tour[i].ID)
		}
		if seen[p] {
			return fmt.Errorf("%w: repeated id %d", ErrNotPermutation, tour[i].ID)
		}
		seen[p] = true
	}

	return nil
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []Point) []Point {
	if tour == nil {
		return nil
	}
	out := make([]Point, len(tour))
	copy(out, tour)
	return out
}

// SameCycle reports whether a and b visit the same IDs in the same cyclic
// order, allowing any rotation and either direction.
//
// Complexity: O(n) time.
func SameCycle(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	var n = len(a)
	if n == 0 {
		return true
	}

	var (
		j int
		p = -1
	)
	for j = 0; j < n; j++ {
		if b[j].ID == a[0].ID {
			p = j
			break
		}
	}
	if p == -1 {
		return false
	}

	var (
		i       int
		forward = true
		back    = true
	)
	for i = 0; i < n && (forward || back); i++ {
		if a[i].ID != b[(p+i)%n].ID {
			forward = false
		}
		if a[i].ID != b[(p-i+n)%n].ID {
			back = false
		}
	}

	return forward || back
}

// toTour maps a position order onto the problem points.
func toTour(pts []Point, order []int) []Point {
	out := make([]Point, len(order))
	for i, p := range order {
		out[i] = pts[p]
	}
	return out
}

// canonicalize returns a copy of order rotated so position 0 comes first and
// oriented so that its right neighbour is not larger than its left one.
// Two orders describe the same cycle iff their canonical forms are equal.
//
// Complexity: O(n) time, O(n) space.
func canonicalize(order []int) []int {
	var n = len(order)
	out := make([]int, n)
	if n == 0 {
		return out
	}

	var pivot, i int
	for i = 0; i < n; i++ {
		if order[i] == 0 {
			pivot = i
			break
		}
	}
	for i = 0; i < n; i++ {
		out[i] = order[(pivot+i)%n]
	}
	if n > 2 && out[1] > out[n-1] {
		reverseInPlace(out, 1, n-1)
	}

	return out
}

// DebugString returns a compact printable representation of the tour IDs,
// e.g. "[1 4 2 3 | 1]" where the vertical bar marks the closure.
//
// Complexity: O(n) time, O(n) space.
func DebugString(tour []Point) string {
	if len(tour) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range tour {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", p.ID)
	}
	fmt.Fprintf(&b, " | %d]", tour[0].ID)
	return b.String()
}
