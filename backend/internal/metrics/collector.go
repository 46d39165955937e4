package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds all Prometheus metrics for the service. Each collector owns
// its registry, so tests can build as many as they like.
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Graph metrics
	Persons     prometheus.Gauge
	Groups      prometheus.Gauge
	Posts       prometheus.Gauge
	Friendships prometheus.Counter
	Operations  *prometheus.CounterVec

	// Export metrics
	ExportDuration *prometheus.HistogramVec
}

// NewCollector creates a collector with the given namespace
func NewCollector(namespace string) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		Persons: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "persons",
			Help:      "Number of registered persons",
		}),
		Groups: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "groups",
			Help:      "Number of groups",
		}),
		Posts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "posts",
			Help:      "Number of posts across all persons",
		}),
		Friendships: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "friendships_created_total",
			Help:      "Total number of friendship edges created",
		}),
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "graph_operations_total",
				Help:      "Total number of graph mutations by outcome",
			},
			[]string{"operation", "status"},
		),
		ExportDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "export_duration_seconds",
				Help:      "Neo4j snapshot export duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"status"},
		),
	}

	c.registry.MustRegister(
		c.HTTPRequests,
		c.HTTPDuration,
		c.Persons,
		c.Groups,
		c.Posts,
		c.Friendships,
		c.Operations,
		c.ExportDuration,
	)
	return c
}

// Registry exposes the underlying registry
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ObserveOperation counts a graph mutation by outcome
func (c *Collector) ObserveOperation(op string, err error) {
	c.Operations.WithLabelValues(op, status(err)).Inc()
}

// ObserveSize records the current registry sizes
func (c *Collector) ObserveSize(persons, groups, posts int) {
	c.Persons.Set(float64(persons))
	c.Groups.Set(float64(groups))
	c.Posts.Set(float64(posts))
}

// ObserveFriendship counts a new friendship edge
func (c *Collector) ObserveFriendship() {
	c.Friendships.Inc()
}

// ObserveHTTP records one served request
func (c *Collector) ObserveHTTP(method, route string, statusCode int, elapsed time.Duration) {
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveExport records one Neo4j export attempt
func (c *Collector) ObserveExport(elapsed time.Duration, err error) {
	c.ExportDuration.WithLabelValues(status(err)).Observe(elapsed.Seconds())
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
