// Package tsp - exhaustive 2-opt local search.
//
// twoOptInPlace performs first-improvement 2-opt sweeps on a closed tour given
// as a position order, until a full sweep finds no improving reversal.
//   - Move: reverse segment [i..k], 1 ≤ i < k ≤ n−1 (position 0 stays the anchor).
//   - Δ = d(a,c) + d(b,e) − d(a,b) − d(c,e), a=T[i−1], b=T[i], c=T[k], e=T[(k+1) mod n].
//   - Accept iff Δ < −improveEps; the sweep continues after an accepted move.
//
// Every pair of non-adjacent tour edges is covered by some (i,k), so the
// anchor does not shrink the neighbourhood.
//
// Complexity:
//   - One sweep: O(n²) O(1) checks plus O(n) per accepted reversal.
//   - Sweeps repeat until a local optimum; each accepted move strictly shortens the tour.
package tsp

// twoOptInPlace improves order in place and returns its new length.
// cost must be the current length of order.
func twoOptInPlace(d *distMatrix, order []int, cost float64) float64 {
	var n = len(order)
	if n < 4 {
		// Every closed tour over ≤3 points has the same length.
		return cost
	}

	var (
		i, k     int
		delta    float64
		improved = true
	)
	for improved {
		improved = false
		for i = 1; i <= n-2; i++ {
			for k = i + 1; k <= n-1; k++ {
				delta = d.twoOptDelta(order, i, k)
				if delta < -improveEps {
					reverseInPlace(order, i, k)
					cost += delta
					improved = true
				}
			}
		}
	}

	return cost
}

// TwoOpt runs exhaustive 2-opt on a copy of tour and returns the 2-opt-optimal
// tour with its length. The first point keeps its position; the input is not
// modified.
//
// Complexity: O(n²) to build distances plus O(n²) per sweep.
func TwoOpt(tour []Point) ([]Point, float64) {
	if len(tour) == 0 {
		return []Point{}, 0
	}
	d := newDistMatrix(tour)
	order := identityOrder(len(tour))
	twoOptInPlace(d, order, d.orderLength(order))

	out := toTour(tour, order)
	return out, TourLength(out)
}
