// Package tsp - unified dispatcher for the engines.
//
// Solve is the canonical entry point when the algorithm is chosen at run time
// (batch runners, CLIs). It resolves the run RNG once and routes to the engine:
//
//   - TabuSearchAlgo    → TabuSearch(points, opts.Tabu)
//   - AntColonyAlgo     → AntColony(points, opts.ACO)
//   - ScatterSearchAlgo → ScatterSearch(points, opts.Scatter)
//
// RNG precedence: opts.RNG, then the engine options' RNG, then NewRNG(opts.Seed).
package tsp

import "math/rand"

// Solve validates opts for the selected engine and runs it on points.
//
// Errors: ErrUnsupportedAlgorithm, ErrInvalidConfig (wrapped), ErrDuplicateID.
func Solve(points []Point, opts Options) (Result, error) {
	switch opts.Algo {
	case TabuSearchAlgo:
		return TabuSearch(points, opts.Tabu)

	case AntColonyAlgo:
		aco := opts.ACO
		aco.RNG = pickRNG(opts.RNG, aco.RNG, opts.Seed)
		return AntColony(points, aco)

	case ScatterSearchAlgo:
		sc := opts.Scatter
		sc.RNG = pickRNG(opts.RNG, sc.RNG, opts.Seed)
		return ScatterSearch(points, sc)

	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
}

func pickRNG(override, engine *rand.Rand, seed int64) *rand.Rand {
	if override != nil {
		return override
	}
	if engine != nil {
		return engine
	}
	return NewRNG(seed)
}
