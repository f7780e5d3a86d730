// Package runner - parallel benchmark batches over the tsp engines.
//
// A batch is the cross product problems × algorithms × repeats, expanded by
// Plan into Jobs. Run executes the jobs on a bounded worker pool and returns
// one Outcome per job, in job order. Summarize folds the outcomes into one
// Summary per (instance, algorithm).
//
// Determinism: job i runs with tsp.DeriveRNG(Seed, i), so a fixed Seed gives
// the same tours for any Workers value.
//
// Cancellation is checked between jobs; a running engine is never interrupted.
package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/tspmeta/tsp"
	"github.com/katalvlaran/tspmeta/tsplib"
)

var (
	// ErrNoInstance is returned when a job carries no instance.
	ErrNoInstance = errors.New("runner: job has no instance")

	// ErrDuplicateInstance is returned when two different instances share a
	// name. Summaries, plots and metrics are keyed by instance name.
	ErrDuplicateInstance = errors.New("runner: duplicate instance name")
)

// Problem is a loaded instance plus its known optimum (0 if unknown).
type Problem struct {
	Instance *tsplib.Instance
	Optimum  float64
}

// Job is a single engine run.
type Job struct {
	Problem Problem
	Algo    tsp.Algo
	Options tsp.Options
	Repeat  int
}

// Outcome is the record of a finished job.
type Outcome struct {
	RunID    uuid.UUID
	Instance string
	Points   int
	Algo     tsp.Algo
	Repeat   int
	Optimum  float64
	Result   tsp.Result
}

// Deviation returns the gap to the known optimum in percent.
// ok is false when no optimum is known.
func (o Outcome) Deviation() (pct float64, ok bool) {
	if o.Optimum <= 0 {
		return 0, false
	}
	return (o.Result.Distance - o.Optimum) / o.Optimum * 100, true
}

// Recorder receives every finished run, successful or not.
type Recorder interface {
	ObserveRun(instance string, algo tsp.Algo, res tsp.Result, err error)
}

// Options configures Run.
type Options struct {
	// Workers bounds concurrent jobs; ≤0 ⇒ GOMAXPROCS.
	Workers int

	// Seed is the base of every job's RNG stream; 0 ⇒ non-deterministic.
	Seed int64

	// Recorder is optional.
	Recorder Recorder
}

// Plan expands problems × algos × repeats into jobs. options builds the
// engine options for an algorithm and an instance size.
func Plan(problems []Problem, algos []tsp.Algo, repeats int, options func(tsp.Algo, int) tsp.Options) []Job {
	jobs := make([]Job, 0, len(problems)*len(algos)*max(repeats, 0))

	var n, r int
	for _, p := range problems {
		n = 0
		if p.Instance != nil {
			n = len(p.Instance.Points)
		}
		for _, a := range algos {
			for r = 0; r < repeats; r++ {
				jobs = append(jobs, Job{
					Problem: p,
					Algo:    a,
					Options: options(a, n),
					Repeat:  r,
				})
			}
		}
	}

	return jobs
}

// Run executes jobs and returns their outcomes in job order. The first
// failing job cancels the rest and its error is returned. Jobs naming two
// distinct instances with the same name fail with ErrDuplicateInstance
// before any run starts.
//
// The logger is taken from ctx (klog.FromContext).
func Run(ctx context.Context, jobs []Job, opts Options) ([]Outcome, error) {
	logger := klog.FromContext(ctx).WithName("runner")
	if err := checkInstanceNames(jobs); err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	logger.Info("batch started", "jobs", len(jobs), "workers", workers)

	var (
		out     = make([]Outcome, len(jobs))
		g, gctx = errgroup.WithContext(ctx)
		started = time.Now()
	)
	g.SetLimit(workers)

	for i := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			o, err := runJob(logger, jobs[i], uint64(i), opts)
			if err != nil {
				return err
			}
			out[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Info("batch finished", "jobs", len(jobs), "elapsed", time.Since(started).Round(time.Millisecond).String())
	return out, nil
}

func checkInstanceNames(jobs []Job) error {
	seen := make(map[string]*tsplib.Instance)
	for _, job := range jobs {
		inst := job.Problem.Instance
		if inst == nil {
			continue
		}
		if prev, ok := seen[inst.Name]; ok && prev != inst {
			return fmt.Errorf("%w: %q", ErrDuplicateInstance, inst.Name)
		}
		seen[inst.Name] = inst
	}

	return nil
}

func runJob(logger logr.Logger, job Job, stream uint64, opts Options) (Outcome, error) {
	inst := job.Problem.Instance
	if inst == nil {
		return Outcome{}, ErrNoInstance
	}

	o := Outcome{
		RunID:    uuid.New(),
		Instance: inst.Name,
		Points:   len(inst.Points),
		Algo:     job.Algo,
		Repeat:   job.Repeat,
		Optimum:  job.Problem.Optimum,
	}
	log := logger.WithValues("run", o.RunID.String(), "instance", o.Instance, "algorithm", o.Algo.String(), "repeat", o.Repeat)
	log.V(2).Info("run started", "points", humanize.Comma(int64(o.Points)))

	eo := job.Options
	eo.Algo = job.Algo
	eo.RNG = tsp.DeriveRNG(opts.Seed, stream)

	res, err := tsp.Solve(inst.Points, eo)
	if opts.Recorder != nil {
		opts.Recorder.ObserveRun(o.Instance, o.Algo, res, err)
	}
	if err != nil {
		log.Error(err, "run failed")
		return Outcome{}, fmt.Errorf("%s/%s#%d: %w", o.Instance, o.Algo, o.Repeat, err)
	}
	o.Result = res

	kv := []any{
		"distance", humanize.CommafWithDigits(res.Distance, 2),
		"initial", humanize.CommafWithDigits(res.InitialDistance, 2),
		"elapsed", res.Elapsed.String(),
	}
	if dev, ok := o.Deviation(); ok {
		kv = append(kv, "deviation", humanize.FtoaWithDigits(dev, 2)+"%")
	}
	log.V(1).Info("run finished", kv...)

	return o, nil
}
