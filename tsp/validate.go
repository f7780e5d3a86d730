// Package tsp - validation utilities shared by the engines.
//
// This file contains small helpers that:
//  1. Validate engine options (iteration counts, sizes, numeric knobs).
//  2. Validate the input points (unique IDs) and build the ID→index table.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinels from types.go,
//     wrapped with the offending field for ErrInvalidConfig.
package tsp

import (
	"fmt"
	"math"
)

// validateTabuOptions checks MaxIterations ≥ 0 and Tenure ≥ 1.
//
// Complexity: O(1).
func validateTabuOptions(opts TabuOptions) error {
	if opts.MaxIterations < 0 {
		return fmt.Errorf("%w: tabu MaxIterations=%d must be ≥ 0", ErrInvalidConfig, opts.MaxIterations)
	}
	if opts.Tenure < 1 {
		return fmt.Errorf("%w: tabu Tenure=%d must be ≥ 1", ErrInvalidConfig, opts.Tenure)
	}

	return nil
}

// validateACOOptions checks counts and the numeric knobs.
// Evaporation must lie in [0,1) so pheromone values stay non-negative.
//
// Complexity: O(1).
func validateACOOptions(opts ACOOptions) error {
	if opts.Iterations < 0 {
		return fmt.Errorf("%w: aco Iterations=%d must be ≥ 0", ErrInvalidConfig, opts.Iterations)
	}
	if opts.Ants < 1 {
		return fmt.Errorf("%w: aco Ants=%d must be ≥ 1", ErrInvalidConfig, opts.Ants)
	}
	if !nonNegativeFinite(opts.Alpha) {
		return fmt.Errorf("%w: aco Alpha=%v must be finite and ≥ 0", ErrInvalidConfig, opts.Alpha)
	}
	if !nonNegativeFinite(opts.Beta) {
		return fmt.Errorf("%w: aco Beta=%v must be finite and ≥ 0", ErrInvalidConfig, opts.Beta)
	}
	if !nonNegativeFinite(opts.Q) {
		return fmt.Errorf("%w: aco Q=%v must be finite and ≥ 0", ErrInvalidConfig, opts.Q)
	}
	if math.IsNaN(opts.Evaporation) || opts.Evaporation < 0 || opts.Evaporation >= 1 {
		return fmt.Errorf("%w: aco Evaporation=%v must lie in [0,1)", ErrInvalidConfig, opts.Evaporation)
	}

	return nil
}

// validateScatterOptions checks MaxIterations ≥ 0 and both sizes ≥ 1.
//
// Complexity: O(1).
func validateScatterOptions(opts ScatterOptions) error {
	if opts.MaxIterations < 0 {
		return fmt.Errorf("%w: scatter MaxIterations=%d must be ≥ 0", ErrInvalidConfig, opts.MaxIterations)
	}
	if opts.RefSetSize < 1 {
		return fmt.Errorf("%w: scatter RefSetSize=%d must be ≥ 1", ErrInvalidConfig, opts.RefSetSize)
	}
	if opts.PopulationSize < 1 {
		return fmt.Errorf("%w: scatter PopulationSize=%d must be ≥ 1", ErrInvalidConfig, opts.PopulationSize)
	}

	return nil
}

// Validate checks every engine's options, not only the selected one, so a
// batch configuration fails before any run starts.
func (o Options) Validate() error {
	if !o.Algo.valid() {
		return ErrUnsupportedAlgorithm
	}
	if err := validateTabuOptions(o.Tabu); err != nil {
		return err
	}
	if err := validateACOOptions(o.ACO); err != nil {
		return err
	}

	return validateScatterOptions(o.Scatter)
}

// indexPoints builds the ID→position table for pts and rejects duplicate IDs.
//
// Complexity: O(n) time and space.
func indexPoints(pts []Point) (map[int]int, error) {
	idx := make(map[int]int, len(pts))

	var (
		i  int
		ok bool
	)
	for i = range pts {
		if _, ok = idx[pts[i].ID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, pts[i].ID)
		}
		idx[pts[i].ID] = i
	}

	return idx, nil
}

func nonNegativeFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x >= 0
}
