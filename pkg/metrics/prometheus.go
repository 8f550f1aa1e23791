// Package metrics provides Prometheus metrics for the golbot QA pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager holds all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Pipeline metrics
	questionsTotal  prometheus.Counter
	answersByStage  *prometheus.CounterVec
	stageLatency    *prometheus.HistogramVec
	stageErrors     *prometheus.CounterVec
	retrievalChunks prometheus.Histogram
	malformedRows   prometheus.Counter

	// Collaborator metrics
	storeErrors prometheus.Counter
	embedErrors prometheus.Counter

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance backed by a custom registry so the
// default Go runtime collectors do not leak into scrapes.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "golbot",
		subsystem:        "pipeline",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.questionsTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "questions_total",
		Help:      "Total number of questions answered",
	})

	m.answersByStage = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "answers_total",
		Help:      "Answers produced, labeled by resolving stage",
	}, []string{"stage"})

	m.stageLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "stage_latency_ms",
		Help:      "Per-stage resolution latency in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"stage"})

	m.stageErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "stage_errors_total",
		Help:      "Stage failures degraded to no-match, labeled by stage",
	}, []string{"stage"})

	m.retrievalChunks = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "retrieval_chunks",
		Help:      "Number of chunks returned per retrieval pass",
		Buckets:   []float64{0, 1, 2, 3, 4, 5},
	})

	m.malformedRows = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "malformed_embedding_rows_total",
		Help:      "Corpus rows skipped because their vector was missing or mis-sized",
	})

	m.storeErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_errors_total",
		Help:      "Errors returned by the data store",
	})

	m.embedErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "embedder_errors_total",
		Help:      "Errors returned by the embedding model",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by endpoint, method and status code",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_ms",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})
}

// GetRegistry returns the registry scraped by the health endpoint.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers operating on the global manager.

// RecordQuestion counts an incoming question.
func RecordQuestion() {
	if globalManager.enabled {
		globalManager.questionsTotal.Inc()
	}
}

// RecordAnswer counts an answer attributed to a pipeline stage.
func RecordAnswer(stage string) {
	if globalManager.enabled {
		globalManager.answersByStage.WithLabelValues(stage).Inc()
	}
}

// RecordStageLatency records how long a stage took, in milliseconds.
func RecordStageLatency(stage string, ms float64) {
	if globalManager.enabled {
		globalManager.stageLatency.WithLabelValues(stage).Observe(ms)
	}
}

// RecordStageError counts a stage failure that degraded to no-match.
func RecordStageError(stage string) {
	if globalManager.enabled {
		globalManager.stageErrors.WithLabelValues(stage).Inc()
	}
}

// RecordRetrievalChunks records the size of a retrieval result.
func RecordRetrievalChunks(n int) {
	if globalManager.enabled {
		globalManager.retrievalChunks.Observe(float64(n))
	}
}

// RecordMalformedRow counts a corpus row skipped as malformed.
func RecordMalformedRow() {
	if globalManager.enabled {
		globalManager.malformedRows.Inc()
	}
}

// RecordStoreError counts a data store failure.
func RecordStoreError() {
	if globalManager.enabled {
		globalManager.storeErrors.Inc()
	}
}

// RecordEmbedderError counts an embedding model failure.
func RecordEmbedderError() {
	if globalManager.enabled {
		globalManager.embedErrors.Inc()
	}
}

// RecordHTTPRequest counts an HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
	}
}

// RecordHTTPRequestDuration records an HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, status string, ms float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(ms)
	}
}
