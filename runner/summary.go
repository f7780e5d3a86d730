package runner

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/tspmeta/tsp"
)

// Summary aggregates the outcomes of one (instance, algorithm) pair.
type Summary struct {
	Instance string
	Points   int
	Algo     tsp.Algo
	Runs     int

	Best   float64
	Worst  float64
	Mean   float64
	StdDev float64 // sample deviation; 0 for a single run

	// Optimum is 0 when unknown; MeanDeviation is then NaN.
	Optimum       float64
	MeanDeviation float64

	MeanElapsed time.Duration

	// BestTour is the tour with distance Best.
	BestTour []tsp.Point
}

// Summarize groups outcomes by (instance, algorithm) in order of first
// appearance.
//
// Complexity: O(len(outcomes)).
func Summarize(outcomes []Outcome) []Summary {
	type key struct {
		instance string
		algo     tsp.Algo
	}

	var (
		order  []key
		groups = make(map[key][]Outcome)
	)
	for _, o := range outcomes {
		k := key{o.Instance, o.Algo}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], o)
	}

	out := make([]Summary, 0, len(order))
	for _, k := range order {
		out = append(out, summarize(groups[k]))
	}

	return out
}

func summarize(group []Outcome) Summary {
	var (
		dists   = make([]float64, len(group))
		devs    = make([]float64, 0, len(group))
		elapsed time.Duration
	)
	for i, o := range group {
		dists[i] = o.Result.Distance
		elapsed += o.Result.Elapsed
		if d, ok := o.Deviation(); ok {
			devs = append(devs, d)
		}
	}

	best := floats.MinIdx(dists)
	s := Summary{
		Instance:      group[0].Instance,
		Points:        group[0].Points,
		Algo:          group[0].Algo,
		Runs:          len(group),
		Best:          dists[best],
		Worst:         floats.Max(dists),
		Optimum:       group[0].Optimum,
		MeanDeviation: math.NaN(),
		MeanElapsed:   elapsed / time.Duration(len(group)),
		BestTour:      group[best].Result.Tour,
	}
	if len(group) > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(dists, nil)
	} else {
		s.Mean = dists[0]
	}
	if len(devs) > 0 {
		s.MeanDeviation = stat.Mean(devs, nil)
	}

	return s
}
