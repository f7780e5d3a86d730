// Package tsp - Tabu Search engine.
//
// State machine: INITIALIZE → SEARCH (MaxIterations steps) → TERMINATE.
//   - INITIALIZE: current = best = input order.
//   - SEARCH: evaluate every reversal [i..k], 1 ≤ i < k < n, scored in O(1).
//     A move is admissible if its key is not tabu, or if it beats the
//     best-ever distance (aspiration). The admissible move with the smallest
//     resulting distance is applied, even when it worsens the current tour;
//     its key enters the FIFO tabu list. No admissible move ⇒ skip the step.
//   - TERMINATE: after exactly MaxIterations steps, no stagnation detection.
//
// The move key is the unordered pair of point IDs at the reversal boundaries.
package tsp

import (
	"math"
	"time"
)

// moveKey identifies a 2-opt move by its boundary point IDs, lo ≤ hi.
type moveKey struct{ lo, hi int }

func newMoveKey(a, b int) moveKey {
	if a > b {
		a, b = b, a
	}
	return moveKey{lo: a, hi: b}
}

// tabuList is a fixed-capacity FIFO of move keys backed by a ring buffer.
// A key pushed twice is tabu until both copies are evicted.
type tabuList struct {
	ring   []moveKey
	head   int // index of the oldest entry
	size   int
	active map[moveKey]int
}

func newTabuList(capacity int) *tabuList {
	return &tabuList{
		ring:   make([]moveKey, capacity),
		active: make(map[moveKey]int, capacity),
	}
}

// push appends k, evicting the oldest entry when the list is full.
func (t *tabuList) push(k moveKey) {
	var capacity = len(t.ring)
	if t.size == capacity {
		old := t.ring[t.head]
		if t.active[old]--; t.active[old] == 0 {
			delete(t.active, old)
		}
		t.head = (t.head + 1) % capacity
		t.size--
	}
	t.ring[(t.head+t.size)%capacity] = k
	t.size++
	t.active[k]++
}

func (t *tabuList) contains(k moveKey) bool { return t.active[k] > 0 }

func (t *tabuList) len() int { return t.size }

// tabuSearch is the state of one Tabu Search run.
type tabuSearch struct {
	d    *distMatrix
	ids  []int // point ID per position
	tabu *tabuList

	current     []int
	currentDist float64
	best        []int
	bestDist    float64
}

func newTabuSearch(pts []Point, tenure int) *tabuSearch {
	d := newDistMatrix(pts)
	ids := make([]int, len(pts))
	for i := range pts {
		ids[i] = pts[i].ID
	}
	cur := identityOrder(len(pts))
	dist := d.orderLength(cur)

	return &tabuSearch{
		d:           d,
		ids:         ids,
		tabu:        newTabuList(tenure),
		current:     cur,
		currentDist: dist,
		best:        append([]int(nil), cur...),
		bestDist:    dist,
	}
}

// step performs one iteration and reports whether a move was applied.
func (s *tabuSearch) step() bool {
	var (
		n            = len(s.current)
		i, k         int
		bi, bk       = -1, -1
		candDist     float64
		bestCandDist = math.Inf(1)
		key, bestKey moveKey
	)
	for i = 1; i < n-1; i++ {
		for k = i + 1; k < n; k++ {
			candDist = s.currentDist + s.d.twoOptDelta(s.current, i, k)
			if candDist >= bestCandDist {
				continue
			}
			key = newMoveKey(s.ids[s.current[i]], s.ids[s.current[k]])
			if s.tabu.contains(key) && !(candDist < s.bestDist-improveEps) {
				continue
			}
			bi, bk, bestCandDist, bestKey = i, k, candDist, key
		}
	}
	if bi < 0 {
		return false
	}

	reverseInPlace(s.current, bi, bk)
	s.currentDist = bestCandDist
	s.tabu.push(bestKey)
	if s.currentDist < s.bestDist-improveEps {
		copy(s.best, s.current)
		s.bestDist = s.currentDist
	}

	return true
}

// TabuSearch runs Tabu Search starting from the input order of points.
//
// Contracts:
//   - opts.MaxIterations ≥ 0 (0 ⇒ the input order is returned unchanged).
//   - opts.Tenure ≥ 1.
//   - Point IDs must be unique (ErrDuplicateID).
//
// Complexity: O(MaxIterations · n²) time, O(n² + Tenure) space.
func TabuSearch(points []Point, opts TabuOptions) (Result, error) {
	if err := validateTabuOptions(opts); err != nil {
		return Result{}, err
	}
	if _, err := indexPoints(points); err != nil {
		return Result{}, err
	}
	if len(points) == 0 {
		return Result{Tour: []Point{}}, nil
	}

	started := time.Now()
	s := newTabuSearch(points, opts.Tenure)
	initial := s.bestDist

	var it int
	for it = 0; it < opts.MaxIterations; it++ {
		s.step()
	}

	return finalize(points, s.d, s.best, initial, identityOrder(len(points)), started), nil
}

// ScaledTenure returns max(5, ⌊√n⌋), a tenure that grows with instance size.
func ScaledTenure(n int) int {
	var t = int(math.Sqrt(float64(n)))
	if t < 5 {
		return 5
	}
	return t
}

// finalize recomputes the exact length of best and builds the Result.
// If rounding drift made best longer than the starting solution, the
// starting order is returned instead.
func finalize(pts []Point, d *distMatrix, best []int, initial float64, start []int, started time.Time) Result {
	dist := d.orderLength(best)
	if dist > initial {
		best, dist = start, initial
	}

	return Result{
		Tour:            toTour(pts, best),
		Distance:        dist,
		InitialDistance: initial,
		Elapsed:         time.Since(started),
	}
}
