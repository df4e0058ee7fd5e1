package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/bignum/numerr"
)

const namespace = "bigcalc"

// Collector owns a Prometheus registry with the bigcalc metrics. Each
// Collector has its own registry, so several can coexist in one process.
type Collector struct {
	registry *prometheus.Registry

	evaluations    *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	resultBits     prometheus.Histogram
	activeRequests prometheus.Gauge
	totalRequests  *prometheus.CounterVec
}

// NewCollector creates a Collector. withRuntime adds the Go runtime and
// process collectors.
func NewCollector(withRuntime bool) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Evaluated expressions by mode and outcome.",
		}, []string{"mode", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "evaluation_duration_seconds",
			Help:      "Wall-clock duration of evaluations.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 12),
		}, []string{"mode"}),
		resultBits: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "result_bits",
			Help:      "Bit length of integer results.",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 10),
		}),
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_requests",
			Help:      "Current number of HTTP requests in flight.",
		}),
		totalRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "HTTP requests received by path.",
		}, []string{"path"}),
	}
	c.registry.MustRegister(c.evaluations, c.duration, c.resultBits, c.activeRequests, c.totalRequests)
	if withRuntime {
		c.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return c
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ObserveEvaluation records one evaluation. bits is the bit length of an
// integer result, or negative when the result was not an integer.
func (c *Collector) ObserveEvaluation(mode string, d time.Duration, bits int, err error) {
	c.evaluations.WithLabelValues(mode, Status(err)).Inc()
	c.duration.WithLabelValues(mode).Observe(d.Seconds())
	if err == nil && bits >= 0 {
		c.resultBits.Observe(float64(bits))
	}
}

// RequestStarted counts an HTTP request and marks it in flight. The
// returned function marks it finished.
func (c *Collector) RequestStarted(path string) func() {
	c.totalRequests.WithLabelValues(path).Inc()
	c.activeRequests.Inc()
	return c.activeRequests.Dec
}

// Status classifies an evaluation outcome for the status label.
func Status(err error) string {
	var parseErr *numerr.ParseError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &parseErr):
		return "parse_error"
	case errors.Is(err, numerr.ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	}
	return "error"
}
