package network

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values.
const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
	signPositive   = "positive"
	signNegative   = "negative"
)

// Metrics groups the Prometheus collectors a Network updates while training.
type Metrics struct {
	// Trials counts finished trials by outcome (success/failure).
	Trials *prometheus.CounterVec

	// Stops counts walks by terminal state (limit/dead_end/goal/no_choice).
	Stops *prometheus.CounterVec

	// PathLength observes the number of edges per walk.
	PathLength prometheus.Histogram

	// Reinforcements counts edge updates by sign (positive/negative).
	Reinforcements *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered. Registering twice on the same
// registry panics, as with any promauto collector.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Trials: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walknet_trials_total",
				Help: "Total number of training trials by outcome",
			},
			[]string{"outcome"},
		),
		Stops: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walknet_walk_stops_total",
				Help: "Total number of walks by terminal state",
			},
			[]string{"reason"},
		),
		PathLength: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "walknet_path_length_edges",
				Help:    "Number of edges traversed per walk",
				Buckets: prometheus.LinearBuckets(0, 1, 16),
			},
		),
		Reinforcements: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walknet_edge_reinforcements_total",
				Help: "Total number of edge weight updates by sign",
			},
			[]string{"sign"},
		),
	}
}

func (m *Metrics) observeTrial(t Trial, reached bool) {
	outcome := outcomeFailure
	if reached {
		outcome = outcomeSuccess
	}
	m.Trials.WithLabelValues(outcome).Inc()
	m.Stops.WithLabelValues(t.Stop.String()).Inc()
	m.PathLength.Observe(float64(len(t.Path)))
}

func (m *Metrics) observeReinforcement(reached bool, edges int) {
	sign := signNegative
	if reached {
		sign = signPositive
	}
	m.Reinforcements.WithLabelValues(sign).Add(float64(edges))
}
