package observability

import (
	"time"

	"github.com/boddenberg/desking-go/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Metrics holds all Prometheus metrics for the desking service.
type Metrics struct {
	// Registry is the Prometheus registry that owns these metrics.
	// Exposed so the /metrics endpoint can use it.
	Registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	quotesTotal     *prometheus.CounterVec
	documentsTotal  *prometheus.CounterVec
	cacheHits       *prometheus.CounterVec
	cacheMisses     *prometheus.CounterVec
}

// NewMetrics creates a dedicated Prometheus registry and registers all
// application metrics in it. Using a private registry avoids "duplicate
// collector" panics when NewMetrics is called more than once (e.g. in tests).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "desk_request_duration_seconds",
				Help:    "Duration of requests by operation.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		quotesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "desk_quotes_total",
				Help: "Total quotes desked.",
			},
			[]string{"status"},
		),
		documentsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "desk_documents_total",
				Help: "Total documents generated by kind.",
			},
			[]string{"kind", "status"},
		),
		cacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "desk_cache_hits_total",
				Help: "Total cache hits.",
			},
			[]string{"cache"},
		),
		cacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "desk_cache_misses_total",
				Help: "Total cache misses.",
			},
			[]string{"cache"},
		),
	}
}

// RecordRequestDuration records the duration of an operation.
func (m *Metrics) RecordRequestDuration(operation string, d time.Duration) {
	m.requestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// IncrQuote increments the quote counter with a status label.
func (m *Metrics) IncrQuote(status string) {
	m.quotesTotal.WithLabelValues(status).Inc()
}

// IncrDocument increments the document counter for a kind and status.
func (m *Metrics) IncrDocument(kind, status string) {
	m.documentsTotal.WithLabelValues(kind, status).Inc()
}

// IncrCacheHit increments the cache hit counter.
func (m *Metrics) IncrCacheHit(cache string) {
	m.cacheHits.WithLabelValues(cache).Inc()
}

// IncrCacheMiss increments the cache miss counter.
func (m *Metrics) IncrCacheMiss(cache string) {
	m.cacheMisses.WithLabelValues(cache).Inc()
}

// GetDeskSnapshot returns a snapshot of desk metrics suitable for the
// GET /v1/metrics/desk endpoint.
func (m *Metrics) GetDeskSnapshot() *domain.DeskMetrics {
	// Prometheus counters expose cumulative values; rates are derived here.
	quoteOK := getCounterValue(m.quotesTotal, "success")
	quoteErr := getCounterValue(m.quotesTotal, "error")
	cacheHits := getCounterValue(m.cacheHits, "template")
	cacheMisses := getCounterValue(m.cacheMisses, "template")

	var docOK, docErr float64
	for _, kind := range domain.DocumentKinds() {
		docOK += getCounterValue(m.documentsTotal, string(kind), "success")
		docErr += getCounterValue(m.documentsTotal, string(kind), "error")
	}

	quoteErrorRate := float64(0)
	if quoteOK+quoteErr > 0 {
		quoteErrorRate = quoteErr / (quoteOK + quoteErr)
	}
	docErrorRate := float64(0)
	if docOK+docErr > 0 {
		docErrorRate = docErr / (docOK + docErr)
	}
	cacheHitRate := float64(0)
	if cacheHits+cacheMisses > 0 {
		cacheHitRate = cacheHits / (cacheHits + cacheMisses)
	}

	return &domain.DeskMetrics{
		TotalQuotes:          int64(quoteOK + quoteErr),
		QuoteErrorRate:       quoteErrorRate,
		TotalDocuments:       int64(docOK + docErr),
		DocumentErrorRate:    docErrorRate,
		TemplateCacheHitRate: cacheHitRate,
		Period:               "all_time",
	}
}

// getCounterValue extracts the current float64 value from a CounterVec for the given labels.
func getCounterValue(cv *prometheus.CounterVec, labels ...string) float64 {
	counter := cv.WithLabelValues(labels...)
	m := &dto.Metric{}
	if err := counter.(prometheus.Metric).Write(m); err != nil {
		return 0
	}
	if m.Counter != nil && m.Counter.Value != nil {
		return *m.Counter.Value
	}
	return 0
}
