// Package prom exports flog line metrics through prometheus counters.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/trickstertwo/flog"
)

// Collector implements flog.MetricsCollector on top of prometheus
// counters, labeled by level token.
type Collector struct {
	lines  *prometheus.CounterVec
	bytes  *prometheus.CounterVec
	errors *prometheus.CounterVec
}

// NewCollector builds a Collector and registers its counters with the
// given registerer. Pass prometheus.DefaultRegisterer for the usual
// process-wide registry.
func NewCollector(namespace string, reg prometheus.Registerer) *Collector {
	c := &Collector{
		lines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "log_lines_total",
			Help:      "Total log lines flushed, by level.",
		}, []string{"level"}),
		bytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "log_bytes_total",
			Help:      "Total bytes written to the log sinks, by level.",
		}, []string{"level"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "log_write_errors_total",
			Help:      "Total sink write errors, by level.",
		}, []string{"level"}),
	}
	reg.MustRegister(c.lines, c.bytes, c.errors)
	return c
}

// LoggedLine records one flushed line. Runs inside the log call, so it
// does label lookups only.
func (c *Collector) LoggedLine(level flog.Level, size int, err error) {
	lv := level.String()
	c.lines.WithLabelValues(lv).Inc()
	c.bytes.WithLabelValues(lv).Add(float64(size))
	if err != nil {
		c.errors.WithLabelValues(lv).Inc()
	}
}
