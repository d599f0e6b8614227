package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors for the service.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	RedirectsTotal         *prometheus.CounterVec
	LinksCreatedTotal      prometheus.Counter
	LinksDeletedTotal      prometheus.Counter
	ClickIncrementFailures prometheus.Counter
}

var (
	instance *Metrics
	once     sync.Once
)

// Get returns the process-wide metrics registry, creating it on first use.
func Get() *Metrics {
	once.Do(func() {
		instance = &Metrics{
			HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "linktrack_http_requests_total",
				Help: "Total HTTP requests by method, route and status.",
			}, []string{"method", "route", "status"}),
			HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
				Name:    "linktrack_http_request_duration_seconds",
				Help:    "HTTP request latency by method and route.",
				Buckets: prometheus.DefBuckets,
			}, []string{"method", "route"}),
			RedirectsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "linktrack_redirects_total",
				Help: "Redirect resolutions by outcome (ok, not_found, invalid).",
			}, []string{"outcome"}),
			LinksCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "linktrack_links_created_total",
				Help: "Tracking links created.",
			}),
			LinksDeletedTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "linktrack_links_deleted_total",
				Help: "Tracking links deleted.",
			}),
			ClickIncrementFailures: promauto.NewCounter(prometheus.CounterOpts{
				Name: "linktrack_click_increment_failures_total",
				Help: "Click counter increments that failed after the redirect was served.",
			}),
		}
	})
	return instance
}
