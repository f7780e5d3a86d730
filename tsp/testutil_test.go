// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspmeta/tsp"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsTiny is the absolute tolerance for comparing tour lengths.
	epsTiny = 1e-9

	// seedDet is a fixed seed for reproducible engine runs.
	seedDet = int64(42)
)

// unitSquare returns the corners of the unit square in a crossing order:
// (0,0) → (1,1) → (0,1) → (1,0). Its length is 2 + 2√2; the optimum is 4.
func unitSquare() []tsp.Point {
	return []tsp.Point{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 1, Y: 1},
		{ID: 3, X: 0, Y: 1},
		{ID: 4, X: 1, Y: 0},
	}
}

// rippledCircle places n points on a slightly perturbed circle and returns
// them in a scrambled (deterministic) order, so that input order is poor.
func rippledCircle(n int) []tsp.Point {
	pts := make([]tsp.Point, n)
	var (
		i     int
		th, r float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		r = 10 + 0.25*float64(i%3)
		pts[i] = tsp.Point{ID: i + 1, X: r * math.Cos(th), Y: r * math.Sin(th)}
	}
	// Deterministic scramble: stride through the circle with a step coprime to n.
	out := make([]tsp.Point, 0, n)
	step := 7
	for gcd(step, n) != 1 {
		step++
	}
	for i = 0; i < n; i++ {
		out = append(out, pts[(i*step)%n])
	}
	return out
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// requireValidResult asserts the invariants shared by every engine result.
func requireValidResult(t *testing.T, res tsp.Result, pts []tsp.Point) {
	t.Helper()
	require.NoError(t, tsp.ValidateTour(res.Tour, pts))
	require.InDelta(t, tsp.TourLength(res.Tour), res.Distance, epsTiny, "Distance must match the tour")
	require.LessOrEqual(t, res.Distance, res.InitialDistance+epsTiny, "engine returned a worse tour than its start")
	require.GreaterOrEqual(t, res.Elapsed.Nanoseconds(), int64(0))
}

// Repeat runs fn n times to lock in deterministic behaviour.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}
