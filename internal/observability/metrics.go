package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "worldtrotter"

// Metrics holds the Prometheus counters, histograms, and gauges for the service.
type Metrics struct {
	SessionsCreated prometheus.Counter
	SessionsEvicted prometheus.Counter

	// Screen interaction metrics.
	Edits              *prometheus.CounterVec // labels: outcome={accepted,rejected,invalid_range}
	AnnotationsCycled  prometheus.Counter
	TrackingToggles    *prometheus.CounterVec // labels: outcome={follow,none,unauthorized}
	BookLoads          *prometheus.CounterVec // labels: outcome={success,error}
	BookLoadDuration   prometheus.Histogram
	MapSnapshotsServed prometheus.Counter

	// Geocoding metrics.
	GeocodeRequests    *prometheus.CounterVec // labels: outcome={success,error,empty}
	GeocodeCache       *prometheus.CounterVec // labels: result={hit,miss}
	GeocodeAPIDuration prometheus.Histogram
	GeocodeEnabled     prometheus.Gauge

	// Event publishing metrics.
	EventsPublished  prometheus.Counter
	EventsDropped    prometheus.Counter
	PublishErrors    prometheus.Counter
	PublisherRunning prometheus.Gauge
	BatchSize        prometheus.Histogram
}

// NewMetrics creates and registers all service metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.collectors()...)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

// NewDetachedMetrics creates Metrics that are never registered. One-shot
// command-line tools pass it to adapters that expect metrics.
func NewDetachedMetrics() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		SessionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_created_total",
			Help:      "Total sessions created.",
		}),
		SessionsEvicted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_evicted_total",
			Help:      "Sessions dropped from the store to make room for new ones.",
		}),
		Edits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversion_edits_total",
			Help:      "Conversion text edits by outcome.",
		}, []string{"outcome"}),
		AnnotationsCycled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "annotations_cycled_total",
			Help:      "Times the map was recentered on the next annotation.",
		}),
		TrackingToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tracking_toggles_total",
			Help:      "Location button taps by resulting state.",
		}, []string{"outcome"}),
		BookLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "book_loads_total",
			Help:      "Book web page loads by outcome.",
		}, []string{"outcome"}),
		BookLoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "book_load_duration_seconds",
			Help:      "Duration of book web page loads.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		MapSnapshotsServed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "map_snapshots_total",
			Help:      "Map snapshots rendered.",
		}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_requests_total",
			Help:      "Reverse geocoding API requests by outcome.",
		}, []string{"outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_cache_total",
			Help:      "Geocoding cache lookups by result.",
		}, []string{"result"}),
		GeocodeAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "geocode_api_duration_seconds",
			Help:      "Mapbox API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		GeocodeEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "geocode_enabled",
			Help:      "1 when geocoding enrichment is enabled, 0 otherwise.",
		}),
		EventsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Conversion events written to Kafka.",
		}),
		EventsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_dropped_total",
			Help:      "Conversion events dropped because the publish buffer was full.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "publish_errors_total",
			Help:      "Failed batch writes to Kafka.",
		}),
		PublisherRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "publisher_running",
			Help:      "1 when the event publisher is active, 0 when shut down.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "publish_batch_size",
			Help:      "Number of events per batch written to Kafka.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.SessionsCreated,
		m.SessionsEvicted,
		m.Edits,
		m.AnnotationsCycled,
		m.TrackingToggles,
		m.BookLoads,
		m.BookLoadDuration,
		m.MapSnapshotsServed,
		m.GeocodeRequests,
		m.GeocodeCache,
		m.GeocodeAPIDuration,
		m.GeocodeEnabled,
		m.EventsPublished,
		m.EventsDropped,
		m.PublishErrors,
		m.PublisherRunning,
		m.BatchSize,
	}
}
