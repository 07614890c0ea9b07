// Package metrics exposes Prometheus instrumentation for the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result labels for the per-article ingest counter.
const (
	ResultNew       = "new"
	ResultDuplicate = "duplicate"
	ResultError     = "error"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	ingestRuns       *prometheus.CounterVec
	articlesIngested *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// New creates the collectors on a private registry so tests can create
// multiple instances without duplicate-registration panics.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		ingestRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sixer_ingest_runs_total",
			Help: "Total ingestion runs by outcome.",
		}, []string{"outcome"}),
		articlesIngested: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sixer_articles_ingested_total",
			Help: "Articles processed by ingestion, by per-article result.",
		}, []string{"result"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sixer_http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sixer_http_request_duration_seconds",
			Help:    "HTTP request duration by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// ObserveIngestRun records the outcome of one ingestion run.
func (m *Metrics) ObserveIngestRun(outcome string) {
	m.ingestRuns.WithLabelValues(outcome).Inc()
}

// ObserveArticle records a single per-article ingestion result.
func (m *Metrics) ObserveArticle(result string) {
	m.articlesIngested.WithLabelValues(result).Inc()
}

// Handler returns the /metrics endpoint handler.
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}

// Middleware instruments HTTP requests. The route label uses the gin route
// template, not the raw path, to keep cardinality bounded.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		m.httpRequests.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		m.httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}
