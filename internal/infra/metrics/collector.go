package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yanqian/support-qa/internal/domain/faq"
)

const namespace = "supportqa"

// Collector holds the Prometheus metrics for matching, reloads and HTTP traffic.
type Collector struct {
	registry *prometheus.Registry

	matchesTotal    *prometheus.CounterVec
	matchScore      *prometheus.HistogramVec
	reloadsTotal    *prometheus.CounterVec
	kbEntries       prometheus.Gauge
	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
}

// NewCollector builds the collectors and registers them on a private registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		matchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "faq_matches_total",
				Help:      "Answered questions by language and outcome",
			},
			[]string{"language", "outcome"}, // "matched" / "fallback"
		),
		matchScore: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "faq_match_score",
				Help:      "Best candidate score per question",
				Buckets:   []float64{0, 0.1, 0.25, 0.5, 1, 2, 5, 10, 20},
			},
			[]string{"language"},
		),
		reloadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "kb_reloads_total",
				Help:      "Knowledge base reloads by source and status",
			},
			[]string{"source", "status"},
		),
		kbEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "kb_entries",
			Help:      "Entries in the knowledge base currently served",
		}),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"method", "path", "status"},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
	}
	c.registry.MustRegister(
		c.matchesTotal,
		c.matchScore,
		c.reloadsTotal,
		c.kbEntries,
		c.requestDuration,
		c.requestsTotal,
	)
	return c
}

// ObserveMatch implements faq.Recorder.
func (c *Collector) ObserveMatch(lang faq.Language, matched bool, score float64) {
	outcome := "fallback"
	if matched {
		outcome = "matched"
	}
	c.matchesTotal.WithLabelValues(string(lang), outcome).Inc()
	c.matchScore.WithLabelValues(string(lang)).Observe(score)
}

// ObserveReload implements faq.Recorder.
func (c *Collector) ObserveReload(source string, entries int, err error) {
	if source == "" {
		source = "unknown"
	}
	if err != nil {
		c.reloadsTotal.WithLabelValues(source, "error").Inc()
		return
	}
	c.reloadsTotal.WithLabelValues(source, "ok").Inc()
	c.kbEntries.Set(float64(entries))
}

// ObserveRequest records one HTTP request. path should be the route template.
func (c *Collector) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	if path == "" {
		path = "unknown"
	}
	code := strconv.Itoa(status)
	c.requestDuration.WithLabelValues(method, path, code).Observe(elapsed.Seconds())
	c.requestsTotal.WithLabelValues(method, path, code).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

var _ faq.Recorder = (*Collector)(nil)
