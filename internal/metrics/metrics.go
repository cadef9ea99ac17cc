package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "compound_"

	resultSuccess = "success"
	resultError   = "error"
)

var (
	registerOnce sync.Once

	projectionTotal   *prometheus.CounterVec
	projectionLatency *prometheus.HistogramVec
	projectionPeriods prometheus.Histogram
	validationErrors  *prometheus.CounterVec

	evaluationTotal *prometheus.CounterVec

	exportTotal   *prometheus.CounterVec
	exportLatency *prometheus.HistogramVec

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec
)

// Init registers the calculator metrics with the default registry.
func Init() {
	registerOnce.Do(func() {
		projectionTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "projections_total",
				Help: "Total projections by result",
			},
			[]string{"result"},
		)
		projectionLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "projection_latency_seconds",
				Help:    "Projection latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)
		projectionPeriods = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    metricPrefix + "projection_periods",
			Help:    "Requested projection length in periods",
			Buckets: []float64{1, 5, 10, 20, 30, 50, 100, 250, 500, 1000},
		})
		validationErrors = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "validation_errors_total",
				Help: "Total rejected projection inputs by field",
			},
			[]string{"field"},
		)

		evaluationTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "evaluations_total",
				Help: "Total calculator expression evaluations by result",
			},
			[]string{"result"},
		)

		exportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "report_export_total",
				Help: "Total report exports by format and result",
			},
			[]string{"format", "result"},
		)
		exportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "report_export_latency_seconds",
				Help:    "Report export latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format", "result"},
		)

		httpRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Total HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		)
		httpLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		)

		prometheus.MustRegister(
			projectionTotal,
			projectionLatency,
			projectionPeriods,
			validationErrors,
			evaluationTotal,
			exportTotal,
			exportLatency,
			httpRequests,
			httpLatency,
		)
	})
}

// ObserveProjection records projection latency, length and result.
func ObserveProjection(result string, periods int, duration time.Duration) {
	if result == "" {
		result = resultSuccess
	}
	if projectionTotal != nil {
		projectionTotal.WithLabelValues(result).Inc()
	}
	if projectionLatency != nil {
		projectionLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
	if projectionPeriods != nil && periods > 0 {
		projectionPeriods.Observe(float64(periods))
	}
}

// IncValidationError counts an input rejected on field.
func IncValidationError(field string) {
	if field == "" {
		field = "unknown"
	}
	if validationErrors != nil {
		validationErrors.WithLabelValues(field).Inc()
	}
}

// IncEvaluation counts a calculator evaluation.
func IncEvaluation(result string) {
	if result == "" {
		result = resultSuccess
	}
	if evaluationTotal != nil {
		evaluationTotal.WithLabelValues(result).Inc()
	}
}

// ObserveExport records report export latency and result.
func ObserveExport(format, result string, duration time.Duration) {
	if format == "" {
		format = "unknown"
	}
	if result == "" {
		result = resultSuccess
	}
	if exportTotal != nil {
		exportTotal.WithLabelValues(format, result).Inc()
	}
	if exportLatency != nil {
		exportLatency.WithLabelValues(format, result).Observe(duration.Seconds())
	}
}

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	if httpRequests != nil {
		httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	}
	if httpLatency != nil {
		httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
	}
}

// Exported constants for callers.
const (
	ResultSuccess = resultSuccess
	ResultError   = resultError
)
