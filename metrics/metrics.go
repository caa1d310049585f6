// Package metrics exposes Prometheus collectors for evaluations.
//
// Collectors live on their own registry so the process does not export
// anything it did not register here.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Evaluation outcomes.
const (
	OutcomeSigned       = "promising"
	OutcomePassed       = "not_promising"
	OutcomeLookupFailed = "lookup_failed"
	OutcomeFailed       = "pipeline_failed"
)

type Metrics struct {
	Registry *prometheus.Registry

	// Evaluations counts evaluations by outcome.
	Evaluations *prometheus.CounterVec
	// Scores tracks the distribution of predicted popularity.
	Scores prometheus.Histogram
	// GenreFallbacks counts evaluations that ran without artist genres
	// because the artist lookup failed.
	GenreFallbacks prometheus.Counter
}

func ProvideMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "talentfinder_evaluations_total",
				Help: "Total number of track evaluations by outcome",
			},
			[]string{"outcome"},
		),
		Scores: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "talentfinder_popularity_score",
				Help:    "Predicted popularity scores",
				Buckets: prometheus.LinearBuckets(0, 10, 11),
			},
		),
		GenreFallbacks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "talentfinder_genre_fallbacks_total",
				Help: "Evaluations that continued without artist genres",
			},
		),
	}
	m.Registry.MustRegister(m.Evaluations, m.Scores, m.GenreFallbacks)
	return m
}

// Observe records a finished evaluation.
func (m *Metrics) Observe(score float64, promising bool) {
	m.Scores.Observe(score)
	if promising {
		m.Evaluations.WithLabelValues(OutcomeSigned).Inc()
		return
	}
	m.Evaluations.WithLabelValues(OutcomePassed).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

var Options = ProvideMetrics
