package server

import (
	"github.com/prometheus/client_golang/prometheus"

	"rift/searcher"
)

// searchMetrics tracks search activity on a private registry so tests can
// spin up servers independently.
type searchMetrics struct {
	registry *prometheus.Registry

	searches      prometheus.Counter
	iterations    prometheus.Counter
	rolloutSteps  prometheus.Counter
	rolloutDeaths prometheus.Counter
	duration      prometheus.Histogram
}

func newSearchMetrics() *searchMetrics {
	m := &searchMetrics{
		registry: prometheus.NewRegistry(),
		searches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rift_searches_total",
			Help: "Completed searches",
		}),
		iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rift_search_iterations_total",
			Help: "Tree iterations across all searches",
		}),
		rolloutSteps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rift_rollout_steps_total",
			Help: "Simulated rollout steps across all searches",
		}),
		rolloutDeaths: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rift_rollout_deaths_total",
			Help: "Rollouts terminated by a death",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rift_search_duration_seconds",
			Help:    "Wall time per search",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
	}
	m.registry.MustRegister(m.searches, m.iterations, m.rolloutSteps, m.rolloutDeaths, m.duration)
	return m
}

func (m *searchMetrics) observe(sm searcher.SearchMetrics) {
	m.searches.Inc()
	m.iterations.Add(float64(sm.Iterations))
	m.rolloutSteps.Add(float64(sm.RolloutSteps))
	m.rolloutDeaths.Add(float64(sm.RolloutDeaths))
	m.duration.Observe(sm.Duration.Seconds())
}
