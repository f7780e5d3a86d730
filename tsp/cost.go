// Package tsp - distance and cost utilities shared by every engine.
//
// This file provides the Euclidean metric, closed-tour length over points,
// and the precomputed symmetric distance matrix the engines score against.
//
// Design:
//   - The matrix is a gonum *mat.SymDense built once per run (d_ii = 0, d_ij = d_ji).
//   - Engines address points by position 0..n-1; costs over positions read
//     the matrix, costs over []Point recompute Distance directly.
//   - 2-opt deltas are O(1): only the two replaced edges are rescored.
//
// Complexity:
//   - Matrix build: O(n²) time and O(n²/2) space.
//   - Tour length: O(n).
package tsp

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Distance returns the Euclidean distance between a and b.
//
// Complexity: O(1).
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// TourLength returns the length of the closed tour: the sum of consecutive
// distances plus the closing edge tour[n-1]→tour[0]. Empty and single-point
// tours have length 0.
//
// Complexity: O(n).
func TourLength(tour []Point) float64 {
	var n = len(tour)
	if n < 2 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += Distance(tour[i], tour[i+1])
	}
	sum += Distance(tour[n-1], tour[0])

	return sum
}

// distMatrix is the per-run symmetric distance matrix over point positions.
type distMatrix struct {
	n   int
	sym *mat.SymDense
}

// newDistMatrix precomputes all pairwise distances. pts must be non-empty.
//
// Complexity: O(n²).
func newDistMatrix(pts []Point) *distMatrix {
	var n = len(pts)
	sym := mat.NewSymDense(n, nil)

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			sym.SetSym(i, j, Distance(pts[i], pts[j]))
		}
	}

	return &distMatrix{n: n, sym: sym}
}

func (d *distMatrix) at(i, j int) float64 { return d.sym.At(i, j) }

// orderLength returns the closed-tour length of a position order.
//
// Complexity: O(n).
func (d *distMatrix) orderLength(order []int) float64 {
	var n = len(order)
	if n < 2 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += d.at(order[i], order[i+1])
	}
	sum += d.at(order[n-1], order[0])

	return sum
}

// twoOptDelta scores reversing order[i..k] without applying it.
//
//	a=order[i−1], b=order[i], c=order[k], e=order[(k+1) mod n]
//	Δ = d(a,c) + d(b,e) − d(a,b) − d(c,e)
//
// Contract: 1 ≤ i < k ≤ n−1.
//
// Complexity: O(1).
func (d *distMatrix) twoOptDelta(order []int, i, k int) float64 {
	var (
		n = len(order)
		a = order[i-1]
		b = order[i]
		c = order[k]
		e = order[(k+1)%n]
	)

	return (d.at(a, c) + d.at(b, e)) - (d.at(a, b) + d.at(c, e))
}
