// Package metrics provides observability hooks for generation runs.
//
// The generator records through the Recorder interface; one-shot CLI runs
// use the NoopRecorder, while watch mode can expose a PrometheusRecorder
// over HTTP.
package metrics

import "time"

// ResultLabel enumerates directive result categories for counters.
type ResultLabel string

const (
	ResultInjected ResultLabel = "injected"
	ResultSkipped  ResultLabel = "skipped"
	ResultNoMatch  ResultLabel = "no_match"
)

// OutcomeLabel enumerates document outcome categories for counters.
type OutcomeLabel string

const (
	OutcomeCreated     OutcomeLabel = "created"
	OutcomeOverwritten OutcomeLabel = "overwritten"
	OutcomeSkipped     OutcomeLabel = "skipped"
	OutcomeFailed      OutcomeLabel = "failed"
)

// Recorder defines observability hooks for generation metrics. Implementations
// may forward to Prometheus, OpenTelemetry, etc.
type Recorder interface {
	ObserveGenerateDuration(d time.Duration)
	IncDocumentOutcome(outcome OutcomeLabel)
	IncInjectionResult(result ResultLabel)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveGenerateDuration(time.Duration) {}
func (NoopRecorder) IncDocumentOutcome(OutcomeLabel)       {}
func (NoopRecorder) IncInjectionResult(ResultLabel)        {}
