// Package metrics exposes Prometheus collectors for HTTP traffic, degraded reads and scraper runs.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/wrestling-analytics-service/internal/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "wrestling_analytics"

// Metrics owns a private registry so tests can build as many instances as they like.
type Metrics struct {
	reg *prometheus.Registry

	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	degradedReads   *prometheus.CounterVec
	scraperLaunches *prometheus.CounterVec
	scraperRuns     *prometheus.CounterVec
	scraperDuration prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		degradedReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "degraded_reads_total",
			Help:      "Store reads that failed and were served as empty results.",
		}, []string{"op", "reason"}),
		scraperLaunches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scraper_launches_total",
			Help:      "Scraper processes started, by trigger.",
		}, []string{"trigger"}),
		scraperRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scraper_runs_total",
			Help:      "Scraper processes that exited, by outcome.",
		}, []string{"status"}),
		scraperDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scraper_run_duration_seconds",
			Help:      "Wall time of finished scraper processes.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}
	m.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests, m.httpDuration, m.degradedReads,
		m.scraperLaunches, m.scraperRuns, m.scraperDuration,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// Middleware counts requests per matched route template; unmatched paths share one label.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		m.httpRequests.WithLabelValues(route, method, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}

// Degraded matches service.Settings.Degraded.
func (m *Metrics) Degraded(op string, err error) {
	m.degradedReads.WithLabelValues(op, reason(err)).Inc()
}

func reason(err error) string {
	switch {
	case errors.Is(err, repository.ErrNotConfigured):
		return "not_configured"
	case errors.Is(err, repository.ErrNotFound):
		return "not_found"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}

func (m *Metrics) ScraperLaunched(trigger string) {
	m.scraperLaunches.WithLabelValues(trigger).Inc()
}

func (m *Metrics) ScraperFinished(status string, took time.Duration) {
	m.scraperRuns.WithLabelValues(status).Inc()
	m.scraperDuration.Observe(took.Seconds())
}
