// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the metrics surface used by the catalog, services and
// middleware.
type Recorder interface {
	RecordCatalogLoad(origin string, success bool, duration time.Duration)
	RecordClassification(rating string)
	RecordSearch(kind string, results int)
	RecordHTTPStatus(statusCode int)
	RecordRequestLatency(duration time.Duration)
}

// Collector is the Prometheus implementation of Recorder.
type Collector struct {
	catalogLoads    *prometheus.CounterVec
	catalogLatency  prometheus.Histogram
	classifications *prometheus.CounterVec
	searches        *prometheus.CounterVec
	searchResults   *prometheus.HistogramVec
	httpStatus      *prometheus.CounterVec
	requestLatency  prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		catalogLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "glucoguide_catalog_loads_total",
			Help: "Catalog load attempts by origin and outcome.",
		}, []string{"origin", "result"}),
		catalogLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "glucoguide_catalog_load_seconds",
			Help:    "Latency of catalog loads in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "glucoguide_classifications_total",
			Help: "Foods classified, by traffic-light rating.",
		}, []string{"rating"}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "glucoguide_searches_total",
			Help: "Filter evaluations by collection.",
		}, []string{"kind"}),
		searchResults: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "glucoguide_search_results",
			Help:    "Number of results returned per filter evaluation.",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
		}, []string{"kind"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "glucoguide_http_status_total",
			Help: "HTTP responses by status code.",
		}, []string{"status_code"}),
		requestLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "glucoguide_http_request_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.catalogLoads,
		c.catalogLatency,
		c.classifications,
		c.searches,
		c.searchResults,
		c.httpStatus,
		c.requestLatency,
	)

	return c
}

// RecordCatalogLoad records a catalog load. Zero durations are fallbacks
// that did not hit a loader and are left out of the latency histogram.
func (c *Collector) RecordCatalogLoad(origin string, success bool, duration time.Duration) {
	result := "success"
	if !success {
		result = "failure"
	}
	c.catalogLoads.WithLabelValues(origin, result).Inc()
	if duration > 0 {
		c.catalogLatency.Observe(duration.Seconds())
	}
}

func (c *Collector) RecordClassification(rating string) {
	c.classifications.WithLabelValues(rating).Inc()
}

func (c *Collector) RecordSearch(kind string, results int) {
	c.searches.WithLabelValues(kind).Inc()
	c.searchResults.WithLabelValues(kind).Observe(float64(results))
}

func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

func (c *Collector) RecordRequestLatency(duration time.Duration) {
	c.requestLatency.Observe(duration.Seconds())
}

// Nop is a Recorder that discards everything.
type Nop struct{}

func (Nop) RecordCatalogLoad(string, bool, time.Duration) {}
func (Nop) RecordClassification(string) {}
func (Nop) RecordSearch(string, int) {}
func (Nop) RecordHTTPStatus(int) {}
func (Nop) RecordRequestLatency(time.Duration) {}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
