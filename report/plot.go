package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/katalvlaran/tspmeta/runner"
	"github.com/katalvlaran/tspmeta/tsp"
)

// ErrEmptyTour is returned when there is nothing to plot.
var ErrEmptyTour = errors.New("report: empty tour")

// PlotTour renders tour as a closed polyline in a standalone HTML page.
func PlotTour(w io.Writer, title string, tour []tsp.Point) error {
	if len(tour) == 0 {
		return ErrEmptyTour
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Theme:     types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d points, length %.4f", len(tour), tsp.TourLength(tour)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "x",
			Type:      "value",
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "y",
			Type:      "value",
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
	)

	data := make([]opts.LineData, 0, len(tour)+1)
	for _, p := range tour {
		data = append(data, opts.LineData{Name: fmt.Sprint(p.ID), Value: []float64{p.X, p.Y}})
	}
	data = append(data, opts.LineData{Name: fmt.Sprint(tour[0].ID), Value: []float64{tour[0].X, tour[0].Y}})

	line.AddSeries("tour", data).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}),
		)

	return line.Render(w)
}

// PlotSummaries writes one HTML file per summary into dir, named
// "<instance>_<algorithm>.html", and returns the paths written.
func PlotSummaries(dir string, summaries []runner.Summary) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(summaries))
	for _, s := range summaries {
		if len(s.BestTour) == 0 {
			continue
		}
		path := filepath.Join(dir, plotFileName(s.Instance, s.Algo))
		if err := plotFile(path, fmt.Sprintf("%s: %s", s.Instance, s.Algo), s.BestTour); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// plotFileName keeps instance names with path separators inside dir.
func plotFileName(instance string, algo tsp.Algo) string {
	safe := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == filepath.Separator {
			return '_'
		}
		return r
	}, instance)

	return fmt.Sprintf("%s_%s.html", safe, algo)
}

func plotFile(path, title string, tour []tsp.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = PlotTour(f, title, tour); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
