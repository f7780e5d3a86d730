package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspmeta/tsp"
)

func TestSolve_AllEnginesSolveUnitSquare(t *testing.T) {
	for _, algo := range tsp.Algos() {
		t.Run(algo.String(), func(t *testing.T) {
			pts := unitSquare()
			opts := tsp.DefaultOptions()
			opts.Algo = algo
			opts.Seed = seedDet

			res, err := tsp.Solve(pts, opts)
			require.NoError(t, err)
			requireValidResult(t, res, pts)
			assert.InDelta(t, 4.0, res.Distance, epsTiny)
		})
	}
}

func TestSolve_SinglePointIsZeroForEveryEngine(t *testing.T) {
	pts := []tsp.Point{{ID: 1, X: 9, Y: 9}}
	for _, algo := range tsp.Algos() {
		opts := tsp.DefaultOptions()
		opts.Algo = algo
		res, err := tsp.Solve(pts, opts)
		require.NoError(t, err, algo.String())
		assert.Zero(t, res.Distance, algo.String())
		assert.Equal(t, pts, res.Tour, algo.String())
	}
}

func TestSolve_SeedReproducible(t *testing.T) {
	pts := rippledCircle(16)
	for _, algo := range []tsp.Algo{tsp.AntColonyAlgo, tsp.ScatterSearchAlgo} {
		t.Run(algo.String(), func(t *testing.T) {
			opts := tsp.DefaultOptions()
			opts.Algo = algo
			opts.Seed = 1234
			opts.ACO.Iterations = 10
			opts.Scatter.MaxIterations = 5

			a, err := tsp.Solve(pts, opts)
			require.NoError(t, err)
			b, err := tsp.Solve(pts, opts)
			require.NoError(t, err)
			assert.Equal(t, a.Tour, b.Tour)
		})
	}
}

func TestSolve_RNGOverridesSeed(t *testing.T) {
	pts := rippledCircle(14)
	opts := tsp.DefaultOptions()
	opts.Algo = tsp.AntColonyAlgo
	opts.ACO.Iterations = 5

	opts.RNG = rand.New(rand.NewSource(77))
	a, err := tsp.Solve(pts, opts)
	require.NoError(t, err)

	opts.RNG = rand.New(rand.NewSource(77))
	opts.Seed = 5 // ignored when RNG is set
	b, err := tsp.Solve(pts, opts)
	require.NoError(t, err)

	assert.Equal(t, a.Tour, b.Tour)
}

func TestSolve_UnsupportedAlgorithm(t *testing.T) {
	opts := tsp.DefaultOptions()
	opts.Algo = tsp.Algo(42)
	_, err := tsp.Solve(unitSquare(), opts)
	assert.ErrorIs(t, err, tsp.ErrUnsupportedAlgorithm)
	assert.Equal(t, "unknown", opts.Algo.String())
}

func TestParseAlgo_RoundTrip(t *testing.T) {
	for _, algo := range tsp.Algos() {
		got, err := tsp.ParseAlgo(algo.String())
		require.NoError(t, err)
		assert.Equal(t, algo, got)
	}
	_, err := tsp.ParseAlgo("genetic")
	assert.ErrorIs(t, err, tsp.ErrUnsupportedAlgorithm)
}

func TestDeriveRNG_StreamsAreReproducibleAndDistinct(t *testing.T) {
	a := tsp.DeriveRNG(seedDet, 0).Int63()
	b := tsp.DeriveRNG(seedDet, 0).Int63()
	c := tsp.DeriveRNG(seedDet, 1).Int63()

	assert.Equal(t, a, b, "same (seed, stream) ⇒ same stream")
	assert.NotEqual(t, a, c, "different streams must decorrelate")
}

func TestNewRNG_FixedSeed(t *testing.T) {
	assert.Equal(t, tsp.NewRNG(3).Int63(), tsp.NewRNG(3).Int63())
}

func TestOptions_ValidateChecksEveryEngine(t *testing.T) {
	require.NoError(t, tsp.DefaultOptions().Validate())

	opts := tsp.DefaultOptions()
	opts.ACO.Evaporation = 1
	assert.ErrorIs(t, opts.Validate(), tsp.ErrInvalidConfig, "ACO checked while Tabu is selected")

	opts = tsp.DefaultOptions()
	opts.Scatter.RefSetSize = 0
	assert.ErrorIs(t, opts.Validate(), tsp.ErrInvalidConfig)

	opts = tsp.DefaultOptions()
	opts.Algo = tsp.Algo(-1)
	assert.ErrorIs(t, opts.Validate(), tsp.ErrUnsupportedAlgorithm)

	opts.Algo = tsp.ScatterSearchAlgo + 1
	assert.ErrorIs(t, opts.Validate(), tsp.ErrUnsupportedAlgorithm)

	for _, algo := range tsp.Algos() {
		opts = tsp.DefaultOptions()
		opts.Algo = algo
		assert.NoError(t, opts.Validate(), algo.String())
	}
}
