package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"smart-todo/pkg/metrics"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(metrics.TodoGenerationCount.WithLabelValues("success"))
	metrics.IncrementTodoGeneration("success")
	after := testutil.ToFloat64(metrics.TodoGenerationCount.WithLabelValues("success"))
	if after-before != 1 {
		t.Errorf("expected counter to grow by 1, got %v", after-before)
	}

	before = testutil.ToFloat64(metrics.TodoAnalysisCount.WithLabelValues("week", "canned"))
	metrics.IncrementTodoAnalysis("week", "canned")
	after = testutil.ToFloat64(metrics.TodoAnalysisCount.WithLabelValues("week", "canned"))
	if after-before != 1 {
		t.Errorf("expected counter to grow by 1, got %v", after-before)
	}
}

func TestHistograms(t *testing.T) {
	metrics.RecordHTTPRequestDuration("POST", "/api/ai/generate-todo", "200", 120*time.Millisecond)
	metrics.RecordLLMCallLatency("generate_todo", "success", 900*time.Millisecond)

	if n := testutil.CollectAndCount(metrics.HTTPRequestDuration); n == 0 {
		t.Error("expected HTTP duration series to be collected")
	}
	if n := testutil.CollectAndCount(metrics.LLMCallLatency); n == 0 {
		t.Error("expected LLM latency series to be collected")
	}
}
