package report

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/tspmeta/runner"
	"github.com/katalvlaran/tspmeta/tsp"
)

var _ runner.Recorder = (*Metrics)(nil)

const (
	statusOK    = "ok"
	statusError = "error"
)

// Metrics holds the batch collectors on a private registry. It implements
// runner.Recorder and is safe for concurrent use.
type Metrics struct {
	Registry *prometheus.Registry

	// Runs counts runs by algorithm and status ("ok" or "error").
	Runs *prometheus.CounterVec
	// Duration records engine wall time in seconds.
	Duration *prometheus.HistogramVec
	// BestDistance is the shortest tour seen per instance and algorithm.
	BestDistance *prometheus.GaugeVec
	// Improvement records 1 - Distance/InitialDistance per run.
	Improvement *prometheus.HistogramVec

	mu   sync.Mutex
	best map[[2]string]float64
}

// NewMetrics creates and registers the collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		best:     make(map[[2]string]float64),
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "tsp_runs_total", Help: "Engine runs by algorithm and status."},
			[]string{"algorithm", "status"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Name: "tsp_run_duration_seconds", Help: "Engine run duration in seconds.", Buckets: prometheus.ExponentialBuckets(0.001, 4, 10)},
			[]string{"algorithm"},
		),
		BestDistance: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: "tsp_best_distance", Help: "Shortest tour length found."},
			[]string{"instance", "algorithm"},
		),
		Improvement: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Name: "tsp_improvement_ratio", Help: "Relative improvement over the starting tour.", Buckets: prometheus.LinearBuckets(0, 0.05, 20)},
			[]string{"algorithm"},
		),
	}
	m.Registry.MustRegister(m.Runs, m.Duration, m.BestDistance, m.Improvement)

	return m
}

// ObserveRun records one finished run.
func (m *Metrics) ObserveRun(instance string, algo tsp.Algo, res tsp.Result, err error) {
	name := algo.String()
	if err != nil {
		m.Runs.WithLabelValues(name, statusError).Inc()
		return
	}
	m.Runs.WithLabelValues(name, statusOK).Inc()
	m.Duration.WithLabelValues(name).Observe(res.Elapsed.Seconds())
	if res.InitialDistance > 0 {
		m.Improvement.WithLabelValues(name).Observe(1 - res.Distance/res.InitialDistance)
	}
	m.lowerBest(instance, name, res.Distance)
}

// WriteTextfile writes every collector to path in the text exposition
// format read by the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}

func (m *Metrics) lowerBest(instance, algo string, dist float64) {
	k := [2]string{instance, algo}

	m.mu.Lock()
	defer m.mu.Unlock()
	if prev, ok := m.best[k]; ok && prev <= dist {
		return
	}
	m.best[k] = dist
	m.BestDistance.WithLabelValues(instance, algo).Set(dist)
}
