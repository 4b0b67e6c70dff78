package middlewares

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/langneg/internal"
	"github.com/dmitrymomot/langneg/pkg/negotiate"
)

// DefaultMetricsNamespace prefixes every metric registered by NewMetrics.
const DefaultMetricsNamespace = "langneg"

// Metrics holds the Prometheus collectors for HTTP traffic and language negotiation.
type Metrics struct {
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	negotiations *prometheus.CounterVec
	failures     *prometheus.CounterVec
}

// MetricsOption configures NewMetrics.
type MetricsOption func(*metricsConfig)

type metricsConfig struct {
	namespace string
	buckets   []float64
}

// WithMetricsNamespace overrides DefaultMetricsNamespace.
func WithMetricsNamespace(ns string) MetricsOption {
	return func(cfg *metricsConfig) {
		cfg.namespace = ns
	}
}

// WithMetricsBuckets sets the request duration histogram buckets.
func WithMetricsBuckets(buckets ...float64) MetricsOption {
	return func(cfg *metricsConfig) {
		cfg.buckets = buckets
	}
}

// NewMetrics registers the collectors with reg.
// Pass prometheus.DefaultRegisterer to expose them on the default /metrics handler.
// Registering twice with the same registerer panics.
func NewMetrics(reg prometheus.Registerer, opts ...MetricsOption) *Metrics {
	cfg := &metricsConfig{
		namespace: DefaultMetricsNamespace,
		buckets:   prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	factory := promauto.With(reg)

	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   cfg.buckets,
		}, []string{"method", "route"}),
		negotiations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.namespace,
			Name:      "negotiations_total",
			Help:      "Successful language negotiations by resolution step and language.",
		}, []string{"source", "language"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.namespace,
			Name:      "negotiation_failures_total",
			Help:      "Failed language negotiations by error kind.",
		}, []string{"kind"}),
	}
}

// Middleware records request count and duration labelled by chi route pattern,
// plus the negotiation outcome when the request negotiated a language.
func (m *Metrics) Middleware() internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			start := time.Now()
			err := next(c)

			route := "unmatched"
			if rctx := chi.RouteContext(c.Request().Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			status := c.ResponseWriter().Status()
			if err != nil && !c.Written() {
				status = errorStatus(err)
			}

			m.requests.WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).Inc()
			m.duration.WithLabelValues(c.Request().Method, route).Observe(time.Since(start).Seconds())

			if res, ran, nerr := internal.PeekLanguageResult(c); ran {
				m.ObserveNegotiation(res, nerr)
			}

			return err
		}
	}
}

// ObserveNegotiation records a single negotiation outcome.
func (m *Metrics) ObserveNegotiation(res negotiate.Result, err error) {
	if err != nil {
		kind := "internal"
		if k, ok := negotiate.AsError(err); ok {
			switch k {
			case negotiate.ErrBadRequest:
				kind = "bad_request"
			case negotiate.ErrNotAcceptable:
				kind = "not_acceptable"
			case negotiate.ErrNotFound:
				kind = "not_found"
			}
		}
		m.failures.WithLabelValues(kind).Inc()
		return
	}
	m.negotiations.WithLabelValues(res.Source.String(), res.Lang.String()).Inc()
}

// errorStatus is the status the error handler is expected to write for err.
func errorStatus(err error) int {
	if httpErr := internal.AsHTTPError(err); httpErr != nil && httpErr.Code > 0 {
		return httpErr.Code
	}
	if IsTimeoutError(err) {
		return http.StatusGatewayTimeout
	}
	return internal.LanguageStatus(err)
}
