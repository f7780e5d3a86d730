// Package tsp_test - benchmarks for the engines and the 2-opt primitive.
//
// Policy:
//   - Deterministic geometry (scrambled rippled circles) and fixed seeds.
//   - Pre-build all inputs outside the timer; measure only the algorithm.
//   - Instances sized to be fast on CI.
package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tspmeta/tsp"
)

func BenchmarkTwoOpt_n100(b *testing.B) {
	pts := rippledCircle(100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tsp.TwoOpt(pts)
	}
}

func BenchmarkTabuSearch_n60(b *testing.B) {
	pts := rippledCircle(60)
	opts := tsp.TabuOptions{MaxIterations: 100, Tenure: tsp.ScaledTenure(len(pts))}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.TabuSearch(pts, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAntColony_n40(b *testing.B) {
	pts := rippledCircle(40)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		opts := tsp.DefaultACOOptions()
		opts.Iterations = 20
		opts.RNG = rand.New(rand.NewSource(seedDet))
		if _, err := tsp.AntColony(pts, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScatterSearch_n40(b *testing.B) {
	pts := rippledCircle(40)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		opts := tsp.DefaultScatterOptions()
		opts.RNG = rand.New(rand.NewSource(seedDet))
		if _, err := tsp.ScatterSearch(pts, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNearestNeighbor_n500(b *testing.B) {
	pts := rippledCircle(500)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tsp.NearestNeighbor(pts, nil)
	}
}
