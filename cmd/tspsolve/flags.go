package main

import (
	goflag "flag"
	"io"

	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/tspmeta/config"
)

type flags struct {
	fs *pflag.FlagSet

	config      string
	algos       []string
	repeats     int
	workers     int
	seed        int64
	csv         string
	runsCSV     string
	plotDir     string
	metricsFile string

	tabuIterations int
	tabuTenure     int
	tabuScaled     bool

	acoIterations  int
	acoAnts        int
	acoAlpha       float64
	acoBeta        float64
	acoEvaporation float64
	acoQ           float64

	scatterIterations int
	scatterRefSet     int
	scatterPopulation int
}

// newFlags registers every option on a fresh set, including klog's -v and
// friends. Defaults shown in --help are the library defaults; only flags
// given on the command line override the config file.
func newFlags(output io.Writer) *flags {
	d := config.Default()
	f := &flags{fs: pflag.NewFlagSet("tspsolve", pflag.ContinueOnError)}
	fs := f.fs
	fs.SetOutput(output)
	fs.SortFlags = false

	fs.StringVarP(&f.config, "config", "c", "", "YAML batch file")
	fs.StringSliceVarP(&f.algos, "algo", "a", d.Algorithms, "engines to run: tabu, aco, scatter (repeatable)")
	fs.IntVarP(&f.repeats, "repeats", "r", d.Repeats, "runs per instance and engine")
	fs.IntVarP(&f.workers, "workers", "w", d.Workers, "concurrent runs (0 = one per CPU)")
	fs.Int64Var(&f.seed, "seed", d.Seed, "base RNG seed (0 = non-deterministic)")
	fs.StringVar(&f.csv, "csv", "", "write the summary table as CSV")
	fs.StringVar(&f.runsCSV, "runs-csv", "", "write one CSV row per run")
	fs.StringVar(&f.plotDir, "plot-dir", "", "write an HTML plot of each best tour into this directory")
	fs.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics in textfile format")

	fs.IntVar(&f.tabuIterations, "tabu-iterations", d.Tabu.Iterations, "tabu search iterations")
	fs.IntVar(&f.tabuTenure, "tabu-tenure", d.Tabu.Tenure, "tabu list capacity")
	fs.BoolVar(&f.tabuScaled, "tabu-scaled-tenure", d.Tabu.ScaledTenure, "use max(5, sqrt(n)) as tabu tenure")

	fs.IntVar(&f.acoIterations, "aco-iterations", d.ACO.Iterations, "ant colony generations")
	fs.IntVar(&f.acoAnts, "aco-ants", d.ACO.Ants, "ants per generation")
	fs.Float64Var(&f.acoAlpha, "aco-alpha", d.ACO.Alpha, "pheromone influence")
	fs.Float64Var(&f.acoBeta, "aco-beta", d.ACO.Beta, "distance influence")
	fs.Float64Var(&f.acoEvaporation, "aco-evaporation", d.ACO.Evaporation, "evaporation rate in [0,1)")
	fs.Float64Var(&f.acoQ, "aco-q", d.ACO.Q, "pheromone deposit scale")

	fs.IntVar(&f.scatterIterations, "scatter-iterations", d.Scatter.Iterations, "scatter search rounds")
	fs.IntVar(&f.scatterRefSet, "scatter-refset", d.Scatter.RefSetSize, "reference set size")
	fs.IntVar(&f.scatterPopulation, "scatter-population", d.Scatter.Population, "initial population size")

	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	fs.AddGoFlagSet(klogFlags)

	return f
}

// apply copies the flags given on the command line into cfg.
func (f *flags) apply(cfg *config.Config) {
	set := func(name string, fn func()) {
		if f.fs.Changed(name) {
			fn()
		}
	}

	set("algo", func() { cfg.Algorithms = f.algos })
	set("repeats", func() { cfg.Repeats = f.repeats })
	set("workers", func() { cfg.Workers = f.workers })
	set("seed", func() { cfg.Seed = f.seed })
	set("csv", func() { cfg.Output.CSV = f.csv })
	set("runs-csv", func() { cfg.Output.RunsCSV = f.runsCSV })
	set("plot-dir", func() { cfg.Output.PlotDir = f.plotDir })
	set("metrics-file", func() { cfg.Output.MetricsFile = f.metricsFile })

	set("tabu-iterations", func() { cfg.Tabu.Iterations = f.tabuIterations })
	set("tabu-tenure", func() { cfg.Tabu.Tenure = f.tabuTenure })
	set("tabu-scaled-tenure", func() { cfg.Tabu.ScaledTenure = f.tabuScaled })

	set("aco-iterations", func() { cfg.ACO.Iterations = f.acoIterations })
	set("aco-ants", func() { cfg.ACO.Ants = f.acoAnts })
	set("aco-alpha", func() { cfg.ACO.Alpha = f.acoAlpha })
	set("aco-beta", func() { cfg.ACO.Beta = f.acoBeta })
	set("aco-evaporation", func() { cfg.ACO.Evaporation = f.acoEvaporation })
	set("aco-q", func() { cfg.ACO.Q = f.acoQ })

	set("scatter-iterations", func() { cfg.Scatter.Iterations = f.scatterIterations })
	set("scatter-refset", func() { cfg.Scatter.RefSetSize = f.scatterRefSet })
	set("scatter-population", func() { cfg.Scatter.Population = f.scatterPopulation })

	for _, path := range f.fs.Args() {
		cfg.Problems = append(cfg.Problems, config.Problem{Path: path})
	}
}
