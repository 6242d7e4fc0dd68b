// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// FilterDecisionsTotal tracks relevance filter outcomes.
	FilterDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filter_decisions_total",
			Help: "Relevance filter decisions by outcome",
		},
		[]string{"result"},
	)

	// ModelSelectionsTotal tracks router decisions.
	ModelSelectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "model_selections_total",
			Help: "Model router selections by backend and rule",
		},
		[]string{"backend", "reason"},
	)

	// BackendDuration tracks LLM completion duration.
	BackendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "backend_completion_duration_seconds",
			Help:    "LLM backend completion duration",
			Buckets: []float64{.5, 1, 2, 5, 10, 20, 30, 45, 60},
		},
		[]string{"backend", "status"},
	)

	// BackendTokensTotal tracks tokens processed per backend.
	BackendTokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backend_tokens_total",
			Help: "Total LLM tokens processed",
		},
		[]string{"backend", "direction"},
	)

	// VideoSearchesTotal tracks video search calls.
	VideoSearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "video_searches_total",
			Help: "Video search provider calls by status",
		},
		[]string{"status"},
	)

	// StoreAppendsTotal tracks conversation store writes.
	StoreAppendsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_appends_total",
			Help: "Conversation store appends by status",
		},
		[]string{"status"},
	)

	// WorkerPoolBusy tracks workers currently executing a task.
	WorkerPoolBusy = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_pool_busy",
			Help: "Number of pool workers executing a task",
		},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordBackendCall records metrics for one LLM completion.
func RecordBackendCall(backend, status string, duration float64, tokensIn, tokensOut int) {
	BackendDuration.WithLabelValues(backend, status).Observe(duration)
	BackendTokensTotal.WithLabelValues(backend, "in").Add(float64(tokensIn))
	BackendTokensTotal.WithLabelValues(backend, "out").Add(float64(tokensOut))
}
