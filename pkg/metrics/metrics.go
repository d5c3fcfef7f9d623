package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency (seconds)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 15), // 1ms to ~16s
		},
		[]string{"method", "path", "status"},
	)

	// Generative model call latency (milliseconds)
	LLMCallLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_call_latency_ms",
			Help:    "Generative model call latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(100, 2, 10), // 100ms to ~100s
		},
		[]string{"operation", "outcome"},
	)

	// Todo generation requests by outcome
	TodoGenerationCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "todo_generation_count",
			Help: "Total number of todo generation requests",
		},
		[]string{"outcome"},
	)

	// Todo analysis requests by period and source (model or canned)
	TodoAnalysisCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "todo_analysis_count",
			Help: "Total number of todo analysis requests",
		},
		[]string{"period", "source"},
	)
)

// RecordHTTPRequestDuration records the latency of a finished HTTP request.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordLLMCallLatency records the latency of a single generative model call.
func RecordLLMCallLatency(operation, outcome string, duration time.Duration) {
	LLMCallLatency.WithLabelValues(operation, outcome).Observe(float64(duration.Milliseconds()))
}

// IncrementTodoGeneration counts a todo generation request.
func IncrementTodoGeneration(outcome string) {
	TodoGenerationCount.WithLabelValues(outcome).Inc()
}

// IncrementTodoAnalysis counts a todo analysis request.
func IncrementTodoAnalysis(period, source string) {
	TodoAnalysisCount.WithLabelValues(period, source).Inc()
}
