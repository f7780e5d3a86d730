// Package tspmeta solves planar Travelling Salesman instances with three
// metaheuristics and benchmarks them over TSPLIB files.
//
// Layout:
//
//	tsp/           engines (Tabu Search, Ant Colony, Scatter Search), 2-opt,
//	               nearest neighbour, tour utilities and the Solve dispatcher
//	tsplib/        TSPLIB coordinate file reader
//	config/        YAML batch description
//	runner/        parallel batches, per-run outcomes and summaries
//	report/        CSV tables, HTML tour plots, Prometheus textfile metrics
//	cmd/tspsolve/  command-line front end
//	examples/      runnable demo
//
// Quick start:
//
//	opts := tsp.DefaultOptions()
//	opts.Algo = tsp.ScatterSearchAlgo
//	opts.Seed = 42
//	res, err := tsp.Solve(points, opts)
//
// From the shell:
//
//	tspsolve --algo tabu,aco,scatter --repeats 10 --csv summary.csv berlin52.tsp
package tspmeta
