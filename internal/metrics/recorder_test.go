package metrics

import (
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestNoopRecorder_AllMethodsAreSafe(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveGenerateDuration(time.Second)
	r.IncDocumentOutcome(OutcomeCreated)
	r.IncInjectionResult(ResultInjected)
}

func TestPrometheusRecorder_RegistersAndCounts(t *testing.T) {
	reg := prom.NewRegistry()
	r := NewPrometheusRecorder(reg)

	r.ObserveGenerateDuration(50 * time.Millisecond)
	r.IncDocumentOutcome(OutcomeCreated)
	r.IncDocumentOutcome(OutcomeCreated)
	r.IncInjectionResult(ResultNoMatch)

	families, err := reg.Gather()
	require.NoError(t, err)

	byName := map[string]bool{}
	for _, mf := range families {
		byName[mf.GetName()] = true
	}
	require.True(t, byName["scaffgen_generate_duration_seconds"])
	require.True(t, byName["scaffgen_document_outcomes_total"])
	require.True(t, byName["scaffgen_injection_results_total"])
}
