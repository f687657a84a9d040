// Package metrics provides Prometheus metrics collection for the translate service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Translation outcome labels.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// TranslationsTotal tracks gateway translations by direction and outcome.
	TranslationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "translations_total",
			Help: "Total number of translation requests handled by the gateway",
		},
		[]string{"direction", "status"},
	)

	// TranslationDuration tracks upstream provider call duration.
	TranslationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "translation_duration_seconds",
			Help:    "Upstream translation provider call duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"provider"},
	)

	// CircuitBreakerState reports breaker state per name (0 closed, 1 open, 2 half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)

	// ValidationFailuresTotal tracks requests rejected before reaching the gateway.
	ValidationFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "translation_validation_failures_total",
			Help: "Total number of translation requests rejected by body validation",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordTranslation records the outcome and provider latency of one gateway call.
func RecordTranslation(provider, direction, status string, duration time.Duration) {
	TranslationDuration.WithLabelValues(provider).Observe(duration.Seconds())
	TranslationsTotal.WithLabelValues(direction, status).Inc()
}

// RecordValidationFailure counts a request rejected before translation.
func RecordValidationFailure() {
	ValidationFailuresTotal.Inc()
}

// SetCircuitState publishes the state of the named circuit breaker.
func SetCircuitState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
