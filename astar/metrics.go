package astar

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors a Pathfinder reports into.
// Every Outcome has its own label on the searches counter.
type Metrics struct {
	searches   *prometheus.CounterVec
	iterations prometheus.Histogram
	pathCost   prometheus.Histogram
	duration   prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hexpath_astar_searches_total",
			Help: "Total path searches by outcome",
		}, []string{"outcome"}),
		iterations: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "hexpath_astar_iterations",
			Help:    "Open-set pops per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8), // 1 .. 16384
		}),
		pathCost: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "hexpath_astar_path_cost",
			Help:    "Total move cost of found paths",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "hexpath_astar_search_duration_seconds",
			Help:    "Search wall time in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs .. ~2.6s
		}),
	}
}

// observe records one finished search. Safe on a nil receiver.
func (m *Metrics) observe(res Result, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.searches.WithLabelValues(res.Outcome.String()).Inc()
	if res.Outcome == OutcomeRejected {
		return
	}
	m.iterations.Observe(float64(res.Iterations))
	m.duration.Observe(elapsed.Seconds())
	if res.Outcome == OutcomeFound {
		m.pathCost.Observe(float64(res.Cost))
	}
}
