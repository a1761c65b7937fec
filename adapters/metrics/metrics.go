// Package metrics provides Prometheus metrics collection for Omniweb.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds all Prometheus metrics for Omniweb. Each collector owns
// its registry so tests can build collectors without global state.
type Collector struct {
	registry *prometheus.Registry

	// Request metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Module metrics
	ModulesLoaded    prometheus.Gauge
	ModuleLoadErrors prometheus.Gauge
	SlowModuleLoads  prometheus.Counter

	// Routing table metrics
	TableRebuilds prometheus.Counter
	RoutingRules  prometheus.Gauge
}

// New creates a metrics collector backed by a fresh registry.
func New() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "omniweb",
				Name:      "requests_total",
				Help:      "Total number of requests processed",
			},
			[]string{"method", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "omniweb",
				Name:      "request_duration_seconds",
				Help:      "Request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "status"},
		),
		ModulesLoaded: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "omniweb",
				Name:      "modules_loaded",
				Help:      "Number of modules loaded during the last discovery pass",
			},
		),
		ModuleLoadErrors: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "omniweb",
				Name:      "module_load_errors",
				Help:      "Number of contract violations during the last discovery pass",
			},
		),
		SlowModuleLoads: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "omniweb",
				Name:      "slow_module_loads_total",
				Help:      "Total number of module loads exceeding the latency threshold",
			},
		),
		TableRebuilds: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "omniweb",
				Name:      "table_rebuilds_total",
				Help:      "Total number of routing table rebuilds",
			},
		),
		RoutingRules: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "omniweb",
				Name:      "routing_rules",
				Help:      "Number of rules in the active routing table",
			},
		),
	}
}

// Handler exposes the collector's registry in Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Middleware records request count and duration per method and status.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		status := strconv.Itoa(rec.status)
		c.RequestsTotal.WithLabelValues(r.Method, status).Inc()
		c.RequestDuration.WithLabelValues(r.Method, status).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
