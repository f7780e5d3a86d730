// Package report - exports of benchmark batches.
//
// Three artefacts are produced from runner results:
//   - CSV tables (one row per summary, or one row per run);
//   - an HTML plot of a tour (go-echarts);
//   - Prometheus metrics, dumped in node-exporter textfile format.
//
// Nothing here touches the engines; callers pass finished results.
package report

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/tspmeta/runner"
)

// SummaryHeader is the first row written by WriteCSV.
var SummaryHeader = []string{
	"instance", "points", "algorithm", "runs",
	"best", "mean", "stddev", "worst",
	"optimum", "mean_deviation_pct", "mean_elapsed_s",
}

// RunsHeader is the first row written by WriteRunsCSV.
var RunsHeader = []string{
	"run_id", "instance", "points", "algorithm", "repeat",
	"initial", "distance", "optimum", "deviation_pct", "elapsed_s",
}

// WriteCSV writes one row per summary. Unknown optima and deviations are
// left empty.
func WriteCSV(w io.Writer, summaries []runner.Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(SummaryHeader); err != nil {
		return err
	}
	for _, s := range summaries {
		row := []string{
			s.Instance,
			strconv.Itoa(s.Points),
			s.Algo.String(),
			strconv.Itoa(s.Runs),
			ftoa(s.Best),
			ftoa(s.Mean),
			ftoa(s.StdDev),
			ftoa(s.Worst),
			optional(s.Optimum, s.Optimum > 0),
			optional(s.MeanDeviation, !math.IsNaN(s.MeanDeviation)),
			ftoa(s.MeanElapsed.Seconds()),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteRunsCSV writes one row per outcome.
func WriteRunsCSV(w io.Writer, outcomes []runner.Outcome) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(RunsHeader); err != nil {
		return err
	}
	for _, o := range outcomes {
		dev, ok := o.Deviation()
		row := []string{
			o.RunID.String(),
			o.Instance,
			strconv.Itoa(o.Points),
			o.Algo.String(),
			strconv.Itoa(o.Repeat),
			ftoa(o.Result.InitialDistance),
			ftoa(o.Result.Distance),
			optional(o.Optimum, ok),
			optional(dev, ok),
			ftoa(o.Result.Elapsed.Seconds()),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func ftoa(x float64) string {
	return strconv.FormatFloat(x, 'f', 4, 64)
}

func optional(x float64, ok bool) string {
	if !ok {
		return ""
	}
	return ftoa(x)
}
