package tsp

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func circlePoints(n int) []Point {
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		th := 2 * math.Pi * float64((i*7)%n) / float64(n)
		pts[i] = Point{ID: 100 + i, X: math.Cos(th), Y: math.Sin(th)}
	}
	return pts
}

func TestTabuList_FIFOEviction(t *testing.T) {
	tl := newTabuList(3)
	a, b, c, d := newMoveKey(1, 2), newMoveKey(4, 3), newMoveKey(5, 6), newMoveKey(7, 8)

	tl.push(a)
	tl.push(b)
	tl.push(c)
	require.Equal(t, 3, tl.len())
	assert.True(t, tl.contains(newMoveKey(2, 1)), "keys are unordered pairs")
	assert.True(t, tl.contains(newMoveKey(3, 4)))

	tl.push(d)
	assert.Equal(t, 3, tl.len())
	assert.False(t, tl.contains(a), "oldest entry must be evicted")
	assert.True(t, tl.contains(b))
	assert.True(t, tl.contains(d))
}

func TestTabuList_RepeatedKey(t *testing.T) {
	tl := newTabuList(2)
	k := newMoveKey(1, 2)
	tl.push(k)
	tl.push(k)
	tl.push(newMoveKey(3, 4))
	assert.True(t, tl.contains(k), "one copy of k is still in the window")
	tl.push(newMoveKey(5, 6))
	assert.False(t, tl.contains(k))
}

func TestTabuSearch_TenureBoundHoldsEveryStep(t *testing.T) {
	const tenure = 4
	s := newTabuSearch(circlePoints(25), tenure)

	var it int
	for it = 0; it < 60; it++ {
		s.step()
		require.LessOrEqual(t, s.tabu.len(), tenure, "iteration %d", it)
		require.LessOrEqual(t, s.bestDist, s.currentDist+improveEps)
		require.InDelta(t, s.d.orderLength(s.current), s.currentDist, 1e-6)
	}
}

func TestColony_PheromoneStaysNonNegative(t *testing.T) {
	pts := circlePoints(15)
	d := newDistMatrix(pts)
	opts := DefaultACOOptions()
	opts.Evaporation = 0.95
	c := newColony(d, opts, rand.New(rand.NewSource(1)))
	c.best = nearestNeighborOrder(d, 0)
	c.bestDist = d.orderLength(c.best)

	var g, i, j int
	for g = 0; g < 40; g++ {
		c.generation()
		for i = 0; i < d.n; i++ {
			for j = 0; j < d.n; j++ {
				require.GreaterOrEqual(t, c.pher.At(i, j), 0.0)
				require.Equal(t, c.pher.At(i, j), c.pher.At(j, i), "pheromone must be symmetric")
			}
		}
	}
}

func TestColony_DepositFollowsBestTour(t *testing.T) {
	pts := circlePoints(6)
	d := newDistMatrix(pts)
	opts := DefaultACOOptions()
	c := newColony(d, opts, rand.New(rand.NewSource(1)))

	tour := []int{0, 1, 2, 3, 4, 5}
	c.evaporate()
	c.deposit(tour, 50)

	assert.InDelta(t, 0.5+opts.Q/50, c.pher.At(0, 1), 1e-12)
	assert.InDelta(t, 0.5+opts.Q/50, c.pher.At(5, 0), 1e-12, "closing edge")
	assert.InDelta(t, 0.5, c.pher.At(0, 2), 1e-12, "non-tour edge only evaporates")
}

func TestColony_ConstructTourIsPermutation(t *testing.T) {
	pts := circlePoints(20)
	d := newDistMatrix(pts)
	c := newColony(d, DefaultACOOptions(), rand.New(rand.NewSource(8)))

	var s int
	for s = 0; s < d.n; s++ {
		tour := c.constructTour(s)
		require.Len(t, tour, d.n)
		require.Equal(t, s, tour[0])
		sorted := slices.Clone(tour)
		slices.Sort(sorted)
		require.Equal(t, identityOrder(d.n), sorted)
	}
}

func TestScatter_CrossoverKeepsSegmentAndPermutation(t *testing.T) {
	s := &scatter{rng: rand.New(rand.NewSource(4))}
	a := []int{0, 1, 2, 3, 4, 5, 6, 7}
	b := []int{7, 6, 5, 4, 3, 2, 1, 0}

	var r int
	for r = 0; r < 50; r++ {
		child := s.crossover(a, b)
		sorted := slices.Clone(child)
		slices.Sort(sorted)
		require.Equal(t, a, sorted, "child must be a permutation")
	}
}

func TestScatter_CrossoverFillOrder(t *testing.T) {
	// Find a seed whose cut is [2..4] to pin the fill rule.
	a := []int{0, 1, 2, 3, 4, 5}
	b := []int{5, 3, 1, 0, 4, 2}

	var seed int64
	for seed = 0; seed < 10000; seed++ {
		r := rand.New(rand.NewSource(seed))
		x, y := r.Intn(6), r.Intn(6)
		if min(x, y) == 2 && max(x, y) == 4 {
			break
		}
	}
	s := &scatter{rng: rand.New(rand.NewSource(seed))}
	child := s.crossover(a, b)

	// Segment [2,3,4] from a; 5,1,0 from b fill slots 0,1,5 in b's order.
	assert.Equal(t, []int{5, 1, 2, 3, 4, 0}, child)
}

func TestEliteDistinct_DropsRotationsAndReflections(t *testing.T) {
	d := newDistMatrix(circlePoints(5))
	mk := func(order ...int) candidate {
		return candidate{order: order, canon: canonicalize(order), length: d.orderLength(order)}
	}
	pool := []candidate{
		mk(0, 1, 2, 3, 4),
		mk(2, 3, 4, 0, 1), // rotation
		mk(0, 4, 3, 2, 1), // reflection
		mk(0, 2, 1, 3, 4),
	}
	elite := eliteDistinct(pool, 5)
	assert.Len(t, elite, 2)
	assert.LessOrEqual(t, elite[0].length, elite[1].length)
}

func TestCanonicalize(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, canonicalize([]int{2, 3, 0, 1}))
	assert.Equal(t, []int{0, 1, 2, 3}, canonicalize([]int{3, 2, 1, 0}))
	assert.Equal(t, []int{}, canonicalize([]int{}))
}

// tabuAll marks every reversal of the current order as tabu.
func tabuAll(s *tabuSearch) {
	n := len(s.current)
	for i := 1; i < n-1; i++ {
		for k := i + 1; k < n; k++ {
			s.tabu.push(newMoveKey(s.ids[s.current[i]], s.ids[s.current[k]]))
		}
	}
}

func TestTabuSearch_AspirationAndSkip(t *testing.T) {
	crossing := []Point{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 1, Y: 1},
		{ID: 3, X: 0, Y: 1},
		{ID: 4, X: 1, Y: 0},
	}
	s := newTabuSearch(crossing, 10)
	start := s.bestDist
	tabuAll(s)

	// The untangling move is tabu but beats the best-ever distance.
	require.True(t, s.step())
	assert.Less(t, s.bestDist, start-improveEps)
	assert.InDelta(t, 4.0, s.bestDist, 1e-9)

	// At the optimum no tabu move can beat the best, so the step is skipped.
	tabuAll(s)
	before := slices.Clone(s.current)
	beforeDist := s.currentDist
	assert.False(t, s.step())
	assert.Equal(t, before, s.current)
	assert.Equal(t, beforeDist, s.currentDist)
}
