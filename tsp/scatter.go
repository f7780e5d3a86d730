// Package tsp - Scatter Search engine.
//
// One run:
//  1. Diversification: PopulationSize random permutations, each 2-opt optimal.
//  2. Reference set: the RefSetSize shortest distinct tours (distinct up to
//     rotation and reflection). The shortest one gives InitialDistance.
//  3. Per iteration: every unordered pair (r_i, r_j), i < j, is recombined by
//     segment crossover and the child is 2-opt improved.
//  4. Update: children are pooled with the reference set, duplicates dropped,
//     the pool sorted by length and truncated to RefSetSize. The run stops
//     early as soon as an iteration does not shorten the best tour.
//
// Segment crossover copies parent A's [start..end] in place, then fills the
// free slots left to right with parent B's remaining points in B's order.
// "Already used" is a position-indexed table, O(1) per lookup.
package tsp

import (
	"math/rand"
	"slices"
	"time"
)

// candidate is one tour of the population or reference set.
type candidate struct {
	order  []int
	canon  []int // canonicalize(order), for duplicate detection
	length float64
}

// scatter is the state of one Scatter Search run.
type scatter struct {
	d    *distMatrix
	opts ScatterOptions
	rng  *rand.Rand
	ref  []candidate
}

func newCandidate(d *distMatrix, order []int) candidate {
	length := twoOptInPlace(d, order, d.orderLength(order))
	return candidate{order: order, canon: canonicalize(order), length: length}
}

// diversify builds the initial population.
func (s *scatter) diversify() []candidate {
	pop := make([]candidate, 0, s.opts.PopulationSize)
	for i := 0; i < s.opts.PopulationSize; i++ {
		pop = append(pop, newCandidate(s.d, permRange(s.d.n, s.rng)))
	}
	return pop
}

// crossover recombines parents a and b into a fresh child.
func (s *scatter) crossover(a, b []int) []int {
	var (
		n     = len(a)
		start = s.rng.Intn(n)
		end   = s.rng.Intn(n)
	)
	if start > end {
		start, end = end, start
	}

	child := make([]int, n)
	used := make([]bool, n)
	filled := make([]bool, n)

	var i int
	for i = start; i <= end; i++ {
		child[i] = a[i]
		used[a[i]] = true
		filled[i] = true
	}

	var pos int
	for _, p := range b {
		if used[p] {
			continue
		}
		for filled[pos] {
			pos++
		}
		child[pos] = p
		filled[pos] = true
		pos++
	}

	return child
}

// combine produces one improved child per unordered reference pair.
func (s *scatter) combine() []candidate {
	var (
		r        = len(s.ref)
		i, j     int
		children = make([]candidate, 0, r*(r-1)/2)
	)
	for i = 0; i < r; i++ {
		for j = i + 1; j < r; j++ {
			children = append(children, newCandidate(s.d, s.crossover(s.ref[i].order, s.ref[j].order)))
		}
	}
	return children
}

// refresh pools ref with fresh candidates and keeps the best distinct ones.
func (s *scatter) refresh(fresh []candidate) {
	pool := make([]candidate, 0, len(s.ref)+len(fresh))
	pool = append(pool, s.ref...)
	pool = append(pool, fresh...)
	s.ref = eliteDistinct(pool, s.opts.RefSetSize)
}

// eliteDistinct sorts pool by length (stable) and returns up to limit
// candidates with pairwise distinct cycles.
func eliteDistinct(pool []candidate, limit int) []candidate {
	slices.SortStableFunc(pool, func(x, y candidate) int {
		switch {
		case x.length < y.length:
			return -1
		case x.length > y.length:
			return 1
		default:
			return 0
		}
	})

	out := make([]candidate, 0, limit)
	for _, c := range pool {
		if len(out) == limit {
			break
		}
		if slices.ContainsFunc(out, func(o candidate) bool { return slices.Equal(o.canon, c.canon) }) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// ScatterSearch runs Scatter Search on points.
//
// Contracts:
//   - opts validated per validateScatterOptions (ErrInvalidConfig).
//   - Point IDs must be unique (ErrDuplicateID).
//   - A reference set of one member has no pairs; the run then ends after
//     the first iteration.
//
// Complexity: O(PopulationSize·2-opt + MaxIterations·r²·(n + 2-opt)) time,
// O(n² + (PopulationSize + r²)·n) space, r = RefSetSize.
func ScatterSearch(points []Point, opts ScatterOptions) (Result, error) {
	if err := validateScatterOptions(opts); err != nil {
		return Result{}, err
	}
	if _, err := indexPoints(points); err != nil {
		return Result{}, err
	}
	if len(points) == 0 {
		return Result{Tour: []Point{}}, nil
	}

	started := time.Now()
	s := &scatter{
		d:    newDistMatrix(points),
		opts: opts,
		rng:  resolveRNG(opts.RNG),
	}
	s.ref = eliteDistinct(s.diversify(), opts.RefSetSize)
	initialOrder := append([]int(nil), s.ref[0].order...)
	initial := s.d.orderLength(initialOrder)

	var (
		it       int
		prevBest float64
	)
	for it = 0; it < opts.MaxIterations; it++ {
		prevBest = s.ref[0].length
		s.refresh(s.combine())
		if !(s.ref[0].length < prevBest-improveEps) {
			break
		}
	}

	return finalize(points, s.d, s.ref[0].order, initial, initialOrder, started), nil
}
