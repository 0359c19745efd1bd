package infrastructure

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the service.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	datasetUploads  *prometheus.CounterVec
	datasetRows     *prometheus.GaugeVec
	computations    prometheus.Counter
	computeErrors   prometheus.Counter
	computeDuration prometheus.Histogram
}

// NewMetrics creates a metrics set on its own registry so the /metrics
// endpoint exposes only service metrics plus the standard Go collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector())

	auto := promauto.With(registry)

	m := &Metrics{
		registry: registry,
	}

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salespulse",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route, method and status code",
		},
		[]string{"route", "method", "status"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "salespulse",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	m.datasetUploads = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salespulse",
			Name:      "dataset_uploads_total",
			Help:      "Total number of dataset uploads by kind",
		},
		[]string{"kind"},
	)

	m.datasetRows = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "salespulse",
			Name:      "dataset_rows",
			Help:      "Number of rows in the currently loaded dataset by kind",
		},
		[]string{"kind"},
	)

	m.computations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: "salespulse",
		Name:      "report_computations_total",
		Help:      "Total number of report computations started",
	})

	m.computeErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: "salespulse",
		Name:      "report_computation_errors_total",
		Help:      "Total number of report computations that were refused or failed",
	})

	m.computeDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "salespulse",
		Name:      "report_computation_duration_seconds",
		Help:      "Report computation duration in seconds",
		Buckets:   prometheus.DefBuckets,
	})

	return m
}

// Handler returns the HTTP handler serving the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest records a completed HTTP request.
func (m *Metrics) RecordHTTPRequest(route, method string, status int, seconds float64) {
	m.httpRequests.WithLabelValues(route, method, statusLabel(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(seconds)
}

// RecordDatasetUpload records a dataset replacement and its new row count.
func (m *Metrics) RecordDatasetUpload(kind string, rows int) {
	m.datasetUploads.WithLabelValues(kind).Inc()
	m.datasetRows.WithLabelValues(kind).Set(float64(rows))
}

// RecordComputation records a report computation and its outcome.
func (m *Metrics) RecordComputation(seconds float64, err error) {
	m.computations.Inc()
	if err != nil {
		m.computeErrors.Inc()
		return
	}
	m.computeDuration.Observe(seconds)
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
