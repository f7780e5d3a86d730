// Command tspsolve runs the TSP metaheuristics over TSPLIB coordinate files
// and reports tour lengths per instance and engine.
//
//	tspsolve [flags] file.tsp...
//	tspsolve --config batch.yaml --algo tabu,scatter --repeats 10 --csv out.csv
//
// Flags override the config file. SIGINT stops the batch after the runs in
// progress; the exit code is 1 on any error.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/tspmeta/config"
	"github.com/katalvlaran/tspmeta/report"
	"github.com/katalvlaran/tspmeta/runner"
	"github.com/katalvlaran/tspmeta/tsplib"
)

var errNoProblems = errors.New("no problem files: pass .tsp paths or list them in --config")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	logger := klog.Background().WithName("tspsolve")
	ctx = klog.NewContext(ctx, logger)

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		logger.Error(err, "batch failed")
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	f := newFlags(stderr)
	if err := f.fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg := config.Default()
	if f.config != "" {
		var err error
		if cfg, err = config.Load(f.config); err != nil {
			return err
		}
	}
	f.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if len(cfg.Problems) == 0 {
		return errNoProblems
	}

	problems, err := loadProblems(ctx, cfg.Problems)
	if err != nil {
		return err
	}
	algos, err := cfg.Algos()
	if err != nil {
		return err
	}

	metrics := report.NewMetrics()
	jobs := runner.Plan(problems, algos, cfg.Repeats, cfg.Options)
	outcomes, runErr := runner.Run(ctx, jobs, runner.Options{
		Workers:  cfg.Workers,
		Seed:     cfg.Seed,
		Recorder: metrics,
	})
	if cfg.Output.MetricsFile != "" {
		if err = metrics.WriteTextfile(cfg.Output.MetricsFile); err != nil {
			return errors.Join(runErr, err)
		}
	}
	if runErr != nil {
		return runErr
	}

	summaries := runner.Summarize(outcomes)
	if err = printSummaries(stdout, summaries); err != nil {
		return err
	}

	return writeOutputs(ctx, cfg.Output, summaries, outcomes)
}

func loadProblems(ctx context.Context, specs []config.Problem) ([]runner.Problem, error) {
	logger := klog.FromContext(ctx)
	out := make([]runner.Problem, 0, len(specs))
	for _, p := range specs {
		inst, err := tsplib.Load(p.Path)
		if err != nil {
			return nil, err
		}
		logger.V(1).Info("instance loaded", "name", inst.Name, "points", humanize.Comma(int64(len(inst.Points))), "path", p.Path)
		out = append(out, runner.Problem{Instance: inst, Optimum: p.Optimum})
	}

	return out, nil
}

func printSummaries(w io.Writer, summaries []runner.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "INSTANCE\tN\tALGO\tRUNS\tBEST\tMEAN\tSTDDEV\tGAP%\tTIME\t")
	for _, s := range summaries {
		gap := "-"
		if s.Optimum > 0 {
			gap = humanize.FtoaWithDigits(s.MeanDeviation, 2)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\t\n",
			s.Instance,
			humanize.Comma(int64(s.Points)),
			s.Algo,
			s.Runs,
			humanize.CommafWithDigits(s.Best, 2),
			humanize.CommafWithDigits(s.Mean, 2),
			humanize.CommafWithDigits(s.StdDev, 2),
			gap,
			s.MeanElapsed.Round(time.Microsecond),
		)
	}

	return tw.Flush()
}

func writeOutputs(ctx context.Context, out config.Output, summaries []runner.Summary, outcomes []runner.Outcome) error {
	logger := klog.FromContext(ctx)

	if out.CSV != "" {
		if err := writeFile(out.CSV, func(w io.Writer) error { return report.WriteCSV(w, summaries) }); err != nil {
			return err
		}
		logger.Info("summary written", "path", out.CSV)
	}
	if out.RunsCSV != "" {
		if err := writeFile(out.RunsCSV, func(w io.Writer) error { return report.WriteRunsCSV(w, outcomes) }); err != nil {
			return err
		}
		logger.Info("runs written", "path", out.RunsCSV)
	}
	if out.PlotDir != "" {
		paths, err := report.PlotSummaries(out.PlotDir, summaries)
		if err != nil {
			return err
		}
		logger.Info("plots written", "dir", out.PlotDir, "count", len(paths))
	}

	return nil
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = fn(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
