// Package metrics holds the Prometheus collectors of the roadmap service.
// Collectors register with the default registry, which /metrics exposes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values
const (
	ResultSuccess  = "success"
	ResultRejected = "rejected"
	ResultFailure  = "failure"
)

var (
	PhaseActivations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roadmap_phase_activations_total",
		Help: "Phase activation attempts by result",
	}, []string{"result"})

	PhaseRegenerations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roadmap_phase_regenerations_total",
		Help: "Phase regeneration attempts by result",
	}, []string{"result"})

	PhaseSkips = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roadmap_phase_skips_total",
		Help: "Phase skip attempts by result",
	}, []string{"result"})

	Recomputes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roadmap_phase_recomputes_total",
		Help: "Number of phases whose derived progress was recomputed",
	})

	ProgressWarnings = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roadmap_progress_warnings_total",
		Help: "Data inconsistencies reported while computing phase progress",
	}, []string{"code"})

	GeneratorDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "roadmap_generator_request_duration_seconds",
		Help:    "Duration of content generator calls",
		Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"operation", "result"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "roadmap_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// Outcome maps an error to a result label
func Outcome(err error, rejected func(error) bool) string {
	switch {
	case err == nil:
		return ResultSuccess
	case rejected != nil && rejected(err):
		return ResultRejected
	default:
		return ResultFailure
	}
}
