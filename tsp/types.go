package tsp

import (
	"errors"
	"math/rand"
	"time"
)

// Sentinel errors returned by the solvers. Validation helpers wrap
// ErrInvalidConfig with the offending field; test with errors.Is.
var (
	// ErrInvalidConfig is returned when engine options are out of range.
	ErrInvalidConfig = errors.New("tsp: invalid configuration")

	// ErrDuplicateID is returned when two input points share an ID.
	ErrDuplicateID = errors.New("tsp: duplicate point id")

	// ErrUnsupportedAlgorithm is returned by Solve/ParseAlgo for an unknown Algo.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrSegmentOutOfRange is returned by ReverseSegment when !(0 ≤ i < k < n).
	ErrSegmentOutOfRange = errors.New("tsp: segment out of range")

	// ErrNotPermutation is returned by ValidateTour when a tour is not a
	// permutation of the problem points.
	ErrNotPermutation = errors.New("tsp: tour is not a permutation of the points")
)

// Point is a node of the problem: a unique integer ID and planar coordinates.
// Points are values; a tour refers to a point by its ID.
type Point struct {
	ID int
	X  float64
	Y  float64
}

// Result holds the outcome of an engine run.
type Result struct {
	// Tour is the best closed tour found, a permutation of the input points.
	// The closing edge Tour[len-1]→Tour[0] is implicit.
	Tour []Point

	// Distance is the length of Tour.
	Distance float64

	// InitialDistance is the length of the engine's starting solution:
	// input order (Tabu), nearest neighbour (ACO) or best initial
	// reference member (Scatter). Distance ≤ InitialDistance always.
	InitialDistance float64

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// Algo selects the engine used by Solve.
type Algo int

const (
	// TabuSearchAlgo selects TabuSearch.
	TabuSearchAlgo Algo = iota
	// AntColonyAlgo selects AntColony.
	AntColonyAlgo
	// ScatterSearchAlgo selects ScatterSearch.
	ScatterSearchAlgo
)

// String returns the short stable name of the algorithm.
func (a Algo) String() string {
	switch a {
	case TabuSearchAlgo:
		return "tabu"
	case AntColonyAlgo:
		return "aco"
	case ScatterSearchAlgo:
		return "scatter"
	default:
		return "unknown"
	}
}

func (a Algo) valid() bool {
	return a >= TabuSearchAlgo && a <= ScatterSearchAlgo
}

// ParseAlgo is the inverse of Algo.String.
func ParseAlgo(s string) (Algo, error) {
	switch s {
	case "tabu":
		return TabuSearchAlgo, nil
	case "aco":
		return AntColonyAlgo, nil
	case "scatter":
		return ScatterSearchAlgo, nil
	default:
		return 0, ErrUnsupportedAlgorithm
	}
}

// Algos lists every engine in a stable order.
func Algos() []Algo {
	return []Algo{TabuSearchAlgo, AntColonyAlgo, ScatterSearchAlgo}
}

// Default knobs. The Tabu and Scatter values match the smaller variants
// observed in practice; the ACO values are the classic Ant System setting.
const (
	DefaultTabuIterations = 100
	DefaultTabuTenure     = 20

	DefaultACOIterations  = 100
	DefaultACOAnts        = 20
	DefaultACOAlpha       = 1.0
	DefaultACOBeta        = 5.0
	DefaultACOEvaporation = 0.5
	DefaultACOQ           = 100.0

	DefaultScatterIterations = 50
	DefaultScatterRefSetSize = 5
	DefaultScatterPopulation = 30

	// initialPheromone is the uniform starting trail on every pair.
	initialPheromone = 1.0

	// improveEps is the minimum decrease accepted as an improvement.
	improveEps = 1e-9
)

// TabuOptions configures TabuSearch.
type TabuOptions struct {
	// MaxIterations is the exact number of iterations run; 0 is a no-op run.
	MaxIterations int

	// Tenure is the capacity of the FIFO tabu list (≥1). See ScaledTenure.
	Tenure int
}

// DefaultTabuOptions returns MaxIterations=100, Tenure=20.
func DefaultTabuOptions() TabuOptions {
	return TabuOptions{
		MaxIterations: DefaultTabuIterations,
		Tenure:        DefaultTabuTenure,
	}
}

// ACOOptions configures AntColony.
type ACOOptions struct {
	Iterations  int     // generations (≥0)
	Ants        int     // agents per generation (≥1)
	Alpha       float64 // pheromone influence (≥0)
	Beta        float64 // heuristic 1/d influence (≥0)
	Evaporation float64 // ρ in [0,1)
	Q           float64 // deposit scale (≥0)

	// RNG drives start points and next-node selection.
	// nil ⇒ a freshly seeded generator (see NewRNG).
	RNG *rand.Rand
}

// DefaultACOOptions returns the documented ACO defaults with a nil RNG.
func DefaultACOOptions() ACOOptions {
	return ACOOptions{
		Iterations:  DefaultACOIterations,
		Ants:        DefaultACOAnts,
		Alpha:       DefaultACOAlpha,
		Beta:        DefaultACOBeta,
		Evaporation: DefaultACOEvaporation,
		Q:           DefaultACOQ,
	}
}

// ScatterOptions configures ScatterSearch.
type ScatterOptions struct {
	MaxIterations  int // recombination rounds (≥0)
	RefSetSize     int // elite reference-set size (≥1)
	PopulationSize int // initial diversified candidates (≥1)

	// RNG drives shuffles and crossover cut points.
	// nil ⇒ a freshly seeded generator (see NewRNG).
	RNG *rand.Rand
}

// DefaultScatterOptions returns MaxIterations=50, RefSetSize=5,
// PopulationSize=30 with a nil RNG.
func DefaultScatterOptions() ScatterOptions {
	return ScatterOptions{
		MaxIterations:  DefaultScatterIterations,
		RefSetSize:     DefaultScatterRefSetSize,
		PopulationSize: DefaultScatterPopulation,
	}
}

// Options configures the Solve dispatcher.
type Options struct {
	// Algo selects the engine.
	Algo Algo

	// Seed seeds the run RNG when RNG is nil. 0 ⇒ non-deterministic.
	Seed int64

	// RNG, when set, overrides Seed and any RNG inside the engine options.
	RNG *rand.Rand

	Tabu    TabuOptions
	ACO     ACOOptions
	Scatter ScatterOptions
}

// DefaultOptions returns Tabu Search with every engine at its defaults.
func DefaultOptions() Options {
	return Options{
		Algo:    TabuSearchAlgo,
		Tabu:    DefaultTabuOptions(),
		ACO:     DefaultACOOptions(),
		Scatter: DefaultScatterOptions(),
	}
}
