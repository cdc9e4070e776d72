package providers

import (
	"time"

	"cpd/internal/structures"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(method, endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObservePersistenceDuration(bucket string, duration time.Duration)
	SetRecordsTotal(bucket string, count int)
	IncStoreCorruption(bucket string)
	IncPublished(outcome string)
	IncViews(outcome string)
	IncNotificationDropped(stream string)
}

const (
	OutcomeOK       = "ok"
	OutcomeInvalid  = "invalid"
	OutcomeFailed   = "failed"
	OutcomePartial  = "partial"
	OutcomeNotFound = "not_found"
)

type MetricsProvider struct {
	requestsTotal        *prometheus.CounterVec
	requestDuration      *prometheus.HistogramVec
	cacheHits            prometheus.Counter
	cacheMisses          prometheus.Counter
	persistenceDuration  *prometheus.HistogramVec
	recordsTotal         *prometheus.GaugeVec
	storeCorruptions     *prometheus.CounterVec
	publishedTotal       *prometheus.CounterVec
	viewsTotal           *prometheus.CounterVec
	notificationsDropped *prometheus.CounterVec
}

func (m *MetricsProvider) IncRequestsTotal(method, endpoint string, status int) {
	m.requestsTotal.WithLabelValues(method, endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(bucket string, duration time.Duration) {
	m.persistenceDuration.WithLabelValues(bucket).Observe(duration.Seconds())
}

func (m *MetricsProvider) SetRecordsTotal(bucket string, count int) {
	m.recordsTotal.WithLabelValues(bucket).Set(float64(count))
}

func (m *MetricsProvider) IncStoreCorruption(bucket string) {
	m.storeCorruptions.WithLabelValues(bucket).Inc()
}

func (m *MetricsProvider) IncPublished(outcome string) {
	m.publishedTotal.WithLabelValues(outcome).Inc()
}

func (m *MetricsProvider) IncViews(outcome string) {
	m.viewsTotal.WithLabelValues(outcome).Inc()
}

func (m *MetricsProvider) IncNotificationDropped(stream string) {
	m.notificationsDropped.WithLabelValues(stream).Inc()
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cpd_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cpd_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cpd_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cpd_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		persistenceDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cpd_persistence_duration_seconds",
			Help:    "Duration of bucket writes in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"bucket"}),

		recordsTotal: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "cpd_records_total",
			Help: "Number of records held in each bucket after the last write",
		}, []string{"bucket"}),

		storeCorruptions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cpd_store_corruptions_total",
			Help: "Bucket reads that failed to decode and were treated as empty",
		}, []string{"bucket"}),

		publishedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cpd_published_total",
			Help: "Publish calls by outcome",
		}, []string{"outcome"}),

		viewsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cpd_views_total",
			Help: "View calls by outcome",
		}, []string{"outcome"}),

		notificationsDropped: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cpd_notifications_dropped_total",
			Help: "Best-effort notification writes that failed",
		}, []string{"stream"}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_, _ string, _ int)                  {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration)     {}
func (n *noopMetrics) IncCacheHits()                                        {}
func (n *noopMetrics) IncCacheMisses()                                      {}
func (n *noopMetrics) ObservePersistenceDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) SetRecordsTotal(_ string, _ int)                      {}
func (n *noopMetrics) IncStoreCorruption(_ string)                          {}
func (n *noopMetrics) IncPublished(_ string)                                {}
func (n *noopMetrics) IncViews(_ string)                                    {}
func (n *noopMetrics) IncNotificationDropped(_ string)                      {}
