package tsp

import "math/rand"

// NearestNeighbor builds a tour greedily: from a start point, repeatedly
// append the closest unvisited point until all points are used.
//
// The start is drawn uniformly from rng; rng == nil fixes the start at
// points[0]. Ties go to the first candidate in input order. An empty input
// yields an empty tour.
//
// Complexity: O(n²) time, O(n) space.
func NearestNeighbor(points []Point, rng *rand.Rand) []Point {
	if len(points) == 0 {
		return []Point{}
	}
	var start int
	if rng != nil {
		start = rng.Intn(len(points))
	}
	d := newDistMatrix(points)
	return toTour(points, nearestNeighborOrder(d, start))
}

// nearestNeighborOrder is NearestNeighbor over positions of d.
func nearestNeighborOrder(d *distMatrix, start int) []int {
	var n = d.n
	order := make([]int, 0, n)
	visited := make([]bool, n)

	var (
		cur      = start
		j, next  int
		dj, best float64
	)
	order = append(order, cur)
	visited[cur] = true
	for len(order) < n {
		next = -1
		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			dj = d.at(cur, j)
			if next == -1 || dj < best {
				next, best = j, dj
			}
		}
		order = append(order, next)
		visited[next] = true
		cur = next
	}

	return order
}
