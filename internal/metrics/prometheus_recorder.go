package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	generateDuration prom.Histogram
	documentOutcomes *prom.CounterVec
	injectionResults *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics on reg.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		generateDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "scaffgen",
			Name:      "generate_duration_seconds",
			Help:      "Duration of full generation runs",
			Buckets:   prom.DefBuckets,
		}),
		documentOutcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "scaffgen",
			Name:      "document_outcomes_total",
			Help:      "Document outcomes by final status",
		}, []string{"outcome"}),
		injectionResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "scaffgen",
			Name:      "injection_results_total",
			Help:      "Injection directive results by category",
		}, []string{"result"}),
	}
	reg.MustRegister(pr.generateDuration, pr.documentOutcomes, pr.injectionResults)
	return pr
}

func (pr *PrometheusRecorder) ObserveGenerateDuration(d time.Duration) {
	pr.generateDuration.Observe(d.Seconds())
}

func (pr *PrometheusRecorder) IncDocumentOutcome(outcome OutcomeLabel) {
	pr.documentOutcomes.WithLabelValues(string(outcome)).Inc()
}

func (pr *PrometheusRecorder) IncInjectionResult(result ResultLabel) {
	pr.injectionResults.WithLabelValues(string(result)).Inc()
}

// HTTPHandler returns an http.Handler that serves Prometheus metrics for the provided registry.
func HTTPHandler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
