// Package tsp provides metaheuristic Travelling Salesman Problem solvers
// for points in the Euclidean plane.
//
// It includes three engines over an ordered []Point:
//
//   - TabuSearch: iterated best-neighbour 2-opt search with a FIFO tabu list
//     of recently applied moves and an aspiration-by-improvement rule.
//     O(n²) candidate moves per iteration, each scored in O(1).
//   - AntColony: pheromone-guided probabilistic construction by a colony of
//     ants, with evaporation, a 2-opt pass on the incumbent and best-tour
//     deposit. O(ants·n²) per generation plus the 2-opt sweeps.
//   - ScatterSearch: diversified 2-opt-optimal population, elite reference
//     set, pairwise segment crossover and reference-set refresh.
//     O(r²) recombinations of O(n) per iteration plus their 2-opt passes.
//
// Shared primitives: Distance, TourLength, ReverseSegment, TwoOpt and
// NearestNeighbor. Solve dispatches to an engine by Options.Algo.
//
// Every engine returns a Result whose Tour is a permutation of the input
// points (see ValidateTour) and whose Distance never exceeds InitialDistance.
// An empty point list yields a zero Result. Randomness is injected through a
// *rand.Rand; see NewRNG for the seeding policy.
//
// The package performs no I/O and no logging.
package tsp
