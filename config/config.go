// Package config - YAML description of a benchmark batch.
//
// A Config names the problem files, the engines to run on each of them, the
// engine parameters and the output locations. Load starts from Default, so a
// file only needs to list what it changes:
//
//	algorithms: [tabu, scatter]
//	repeats: 5
//	seed: 42
//	problems:
//	  - path: testdata/berlin52.tsp
//	    optimum: 7542
//	tabu:
//	  iterations: 200
//	  scaled_tenure: true
//	output:
//	  csv: summary.csv
//
// Unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tspmeta/tsp"
)

// ErrInvalid is returned (wrapped) for configurations that cannot be run.
var ErrInvalid = errors.New("config: invalid")

// Config is the root of the YAML document.
type Config struct {
	Algorithms []string  `yaml:"algorithms"`
	Repeats    int       `yaml:"repeats"`
	Workers    int       `yaml:"workers"`
	Seed       int64     `yaml:"seed"`
	Problems   []Problem `yaml:"problems"`

	Tabu    Tabu    `yaml:"tabu"`
	ACO     ACO     `yaml:"aco"`
	Scatter Scatter `yaml:"scatter"`

	Output Output `yaml:"output"`
}

// Problem is one instance file and, when known, its optimal tour length.
type Problem struct {
	Path    string  `yaml:"path"`
	Optimum float64 `yaml:"optimum,omitempty"`
}

// Tabu mirrors tsp.TabuOptions. ScaledTenure replaces Tenure with
// tsp.ScaledTenure(n) for each instance.
type Tabu struct {
	Iterations   int  `yaml:"iterations"`
	Tenure       int  `yaml:"tenure"`
	ScaledTenure bool `yaml:"scaled_tenure"`
}

// ACO mirrors tsp.ACOOptions.
type ACO struct {
	Iterations  int     `yaml:"iterations"`
	Ants        int     `yaml:"ants"`
	Alpha       float64 `yaml:"alpha"`
	Beta        float64 `yaml:"beta"`
	Evaporation float64 `yaml:"evaporation"`
	Q           float64 `yaml:"q"`
}

// Scatter mirrors tsp.ScatterOptions.
type Scatter struct {
	Iterations int `yaml:"iterations"`
	RefSetSize int `yaml:"refset_size"`
	Population int `yaml:"population"`
}

// Output lists the optional artefacts; empty paths are skipped.
type Output struct {
	CSV         string `yaml:"csv"`
	RunsCSV     string `yaml:"runs_csv"`
	PlotDir     string `yaml:"plot_dir"`
	MetricsFile string `yaml:"metrics_file"`
}

// Default returns every engine at its library defaults, one repeat, and
// Workers=0 (one worker per CPU).
func Default() Config {
	t := tsp.DefaultTabuOptions()
	a := tsp.DefaultACOOptions()
	s := tsp.DefaultScatterOptions()

	return Config{
		Algorithms: []string{tsp.TabuSearchAlgo.String()},
		Repeats:    1,
		Tabu:       Tabu{Iterations: t.MaxIterations, Tenure: t.Tenure},
		ACO: ACO{
			Iterations:  a.Iterations,
			Ants:        a.Ants,
			Alpha:       a.Alpha,
			Beta:        a.Beta,
			Evaporation: a.Evaporation,
			Q:           a.Q,
		},
		Scatter: Scatter{Iterations: s.MaxIterations, RefSetSize: s.RefSetSize, Population: s.PopulationSize},
	}
}

// Load reads and decodes the file at path over Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Decode reads YAML from r over Default. An empty document yields Default.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}

	return cfg, nil
}

// Algos parses the algorithm names.
func (c Config) Algos() ([]tsp.Algo, error) {
	if len(c.Algorithms) == 0 {
		return nil, fmt.Errorf("%w: no algorithms", ErrInvalid)
	}
	out := make([]tsp.Algo, 0, len(c.Algorithms))
	seen := make(map[tsp.Algo]bool, len(c.Algorithms))
	for _, name := range c.Algorithms {
		a, err := tsp.ParseAlgo(name)
		if err != nil {
			return nil, fmt.Errorf("%w: algorithm %q: %w", ErrInvalid, name, err)
		}
		if !seen[a] {
			seen[a] = true
			out = append(out, a)
		}
	}

	return out, nil
}

// Options builds the engine options for an instance of n points. Seed and
// RNG are left to the caller.
func (c Config) Options(algo tsp.Algo, n int) tsp.Options {
	opts := tsp.DefaultOptions()
	opts.Algo = algo

	opts.Tabu.MaxIterations = c.Tabu.Iterations
	opts.Tabu.Tenure = c.Tabu.Tenure
	if c.Tabu.ScaledTenure {
		opts.Tabu.Tenure = tsp.ScaledTenure(n)
	}

	opts.ACO.Iterations = c.ACO.Iterations
	opts.ACO.Ants = c.ACO.Ants
	opts.ACO.Alpha = c.ACO.Alpha
	opts.ACO.Beta = c.ACO.Beta
	opts.ACO.Evaporation = c.ACO.Evaporation
	opts.ACO.Q = c.ACO.Q

	opts.Scatter.MaxIterations = c.Scatter.Iterations
	opts.Scatter.RefSetSize = c.Scatter.RefSetSize
	opts.Scatter.PopulationSize = c.Scatter.Population

	return opts
}

// Validate reports the first problem that would make the batch fail.
// Engine parameters are checked through tsp.Options.Validate, so the
// errors also match tsp.ErrInvalidConfig.
func (c Config) Validate() error {
	algos, err := c.Algos()
	if err != nil {
		return err
	}
	if c.Repeats < 1 {
		return fmt.Errorf("%w: repeats=%d must be ≥ 1", ErrInvalid, c.Repeats)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers=%d must be ≥ 0", ErrInvalid, c.Workers)
	}
	for i, p := range c.Problems {
		if p.Path == "" {
			return fmt.Errorf("%w: problems[%d] has no path", ErrInvalid, i)
		}
		if p.Optimum < 0 {
			return fmt.Errorf("%w: problems[%d] optimum=%v must be ≥ 0", ErrInvalid, i, p.Optimum)
		}
	}
	// n only matters for ScaledTenure, which is always ≥ 1.
	if err = c.Options(algos[0], 0).Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}
