// Package monitoring exposes Prometheus metrics for the website service.
package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CMS call outcomes recorded on the request counter.
const (
	OutcomeSuccess       = "success"
	OutcomeNotFound      = "not_found"
	OutcomeRemoteError   = "remote_error"
	OutcomeInvalidSchema = "invalid_schema"
	OutcomeTransport     = "transport_error"
)

// Metrics tracks remote CMS call counts and durations.
type Metrics struct {
	registry    *prometheus.Registry
	cmsRequests *prometheus.CounterVec
	cmsDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers the service metrics on a private registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	cmsRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "website_cms_requests_total",
		Help: "Remote CMS requests by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})

	cmsDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "website_cms_request_duration_seconds",
		Help:    "Remote CMS request duration by endpoint.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	registry.MustRegister(cmsRequests, cmsDuration)

	return &Metrics{
		registry:    registry,
		cmsRequests: cmsRequests,
		cmsDuration: cmsDuration,
	}
}

// ObserveCMSRequest records one remote call.
func (m *Metrics) ObserveCMSRequest(endpoint, outcome string, duration time.Duration) {
	m.cmsRequests.WithLabelValues(endpoint, outcome).Inc()
	m.cmsDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// Handler returns the /metrics HTTP handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
