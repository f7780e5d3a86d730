// Package tsp - Ant Colony Optimization engine.
//
// One run:
//  1. Precompute distances; incumbent = nearest-neighbour tour from a random start.
//  2. Pheromone τ = 1 on every pair.
//  3. Per generation, each ant builds a tour from a random start, choosing the
//     next unvisited j with probability ∝ τ(i,j)^α · (1/d(i,j))^β.
//     - Candidates at distance 0 are skipped.
//     - A zero (or NaN) weight sum falls back to the first unvisited point.
//  4. After all ants: evaporate τ ← (1−ρ)·τ, run 2-opt on the global best only,
//     then deposit Q/L_best on both directions of every edge of the global best.
//
// Pheromone and distances are gonum symmetric matrices; τ(i,j) and τ(j,i)
// share storage, so every update is symmetric by construction.
package tsp

import (
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/mat"
)

// colony is the state of one ACO run.
type colony struct {
	d    *distMatrix
	opts ACOOptions
	rng  *rand.Rand
	pher *mat.SymDense

	best     []int
	bestDist float64

	// scratch buffers reused across ants
	weights []float64
	visited []bool
}

func newColony(d *distMatrix, opts ACOOptions, rng *rand.Rand) *colony {
	var n = d.n
	pher := mat.NewSymDense(n, nil)

	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			pher.SetSym(i, j, initialPheromone)
		}
	}

	return &colony{
		d:       d,
		opts:    opts,
		rng:     rng,
		pher:    pher,
		weights: make([]float64, n),
		visited: make([]bool, n),
	}
}

// constructTour lets one ant build a full tour from start.
func (c *colony) constructTour(start int) []int {
	var n = c.d.n
	tour := make([]int, 0, n)
	for i := range c.visited {
		c.visited[i] = false
	}

	var cur = start
	tour = append(tour, cur)
	c.visited[cur] = true
	for len(tour) < n {
		cur = c.selectNext(cur)
		tour = append(tour, cur)
		c.visited[cur] = true
	}

	return tour
}

// selectNext draws the next point from the unvisited set by roulette wheel.
func (c *colony) selectNext(cur int) int {
	var (
		n            = c.d.n
		j            int
		dij, w, sum  float64
		firstUnvisit = -1
		firstInf     = -1
	)
	for j = 0; j < n; j++ {
		c.weights[j] = 0
		if c.visited[j] {
			continue
		}
		if firstUnvisit == -1 {
			firstUnvisit = j
		}
		dij = c.d.at(cur, j)
		if dij == 0 {
			continue
		}
		w = math.Pow(c.pher.At(cur, j), c.opts.Alpha) * math.Pow(1/dij, c.opts.Beta)
		if math.IsInf(w, 1) && firstInf == -1 {
			firstInf = j
		}
		c.weights[j] = w
		sum += w
	}

	if firstInf != -1 {
		return firstInf
	}
	if !(sum > 0) || math.IsInf(sum, 1) {
		return firstUnvisit
	}

	var (
		r    = c.rng.Float64() * sum
		acc  float64
		last = firstUnvisit
	)
	for j = 0; j < n; j++ {
		if c.weights[j] <= 0 {
			continue
		}
		acc += c.weights[j]
		last = j
		if acc >= r {
			return j
		}
	}

	// Float rounding left r just above the running sum.
	return last
}

// evaporate applies τ ← (1−ρ)·τ to every pair.
func (c *colony) evaporate() {
	c.pher.ScaleSym(1-c.opts.Evaporation, c.pher)
}

// deposit adds Q/L on every edge of tour, closing edge included.
func (c *colony) deposit(tour []int, length float64) {
	if length <= 0 {
		return
	}
	var (
		amount = c.opts.Q / length
		n      = len(tour)
		i      int
		u, v   int
	)
	for i = 0; i < n; i++ {
		u = tour[i]
		v = tour[(i+1)%n]
		c.pher.SetSym(u, v, c.pher.At(u, v)+amount)
	}
}

// generation runs all ants once, then evaporation, 2-opt and deposit.
func (c *colony) generation() {
	var (
		a      int
		tour   []int
		length float64
	)
	for a = 0; a < c.opts.Ants; a++ {
		tour = c.constructTour(c.rng.Intn(c.d.n))
		length = c.d.orderLength(tour)
		if length < c.bestDist-improveEps {
			c.best, c.bestDist = tour, length
		}
	}

	c.evaporate()

	polished := append([]int(nil), c.best...)
	if pl := twoOptInPlace(c.d, polished, c.bestDist); pl < c.bestDist-improveEps {
		c.best, c.bestDist = polished, pl
	}

	c.deposit(c.best, c.bestDist)
}

// AntColony runs Ant Colony Optimization on points.
//
// Contracts:
//   - opts validated per validateACOOptions (ErrInvalidConfig).
//   - Point IDs must be unique (ErrDuplicateID).
//   - n ≤ 2 short-circuits with the nearest-neighbour tour.
//
// Complexity: O(Iterations · (Ants·n² + 2-opt)) time, O(n²) space.
func AntColony(points []Point, opts ACOOptions) (Result, error) {
	if err := validateACOOptions(opts); err != nil {
		return Result{}, err
	}
	if _, err := indexPoints(points); err != nil {
		return Result{}, err
	}
	if len(points) == 0 {
		return Result{Tour: []Point{}}, nil
	}

	started := time.Now()
	rng := resolveRNG(opts.RNG)
	d := newDistMatrix(points)
	initialOrder := nearestNeighborOrder(d, rng.Intn(d.n))
	initial := d.orderLength(initialOrder)
	if d.n <= 2 {
		return finalize(points, d, initialOrder, initial, initialOrder, started), nil
	}

	c := newColony(d, opts, rng)
	c.best = append([]int(nil), initialOrder...)
	c.bestDist = initial

	var g int
	for g = 0; g < opts.Iterations; g++ {
		c.generation()
	}

	return finalize(points, d, c.best, initial, initialOrder, started), nil
}
