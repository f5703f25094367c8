// Package observability records batch counters for the textfile collector.
package observability

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lucasjlepore/ftracker"
)

// Metrics is a per-run registry of tracker counters.
type Metrics struct {
	registry *prometheus.Registry

	processed      *prometheus.CounterVec
	dispatchErrors *prometheus.CounterVec
	lastRun        prometheus.Gauge
}

// NewMetrics builds and registers the tracker collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		processed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ftracker",
			Name:      "packages_processed_total",
			Help:      "Number of sensor packages summarized, by activity code.",
		}, []string{"code"}),
		dispatchErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ftracker",
			Name:      "dispatch_errors_total",
			Help:      "Number of sensor packages rejected, by error kind.",
		}, []string{"kind"}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ftracker",
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix timestamp of the most recent completed batch.",
		}),
	}
	m.registry.MustRegister(m.processed, m.dispatchErrors, m.lastRun)
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordProcessed counts one summarized package.
func (m *Metrics) RecordProcessed(code string) {
	m.processed.WithLabelValues(code).Inc()
}

// RecordDispatchError counts one rejected package.
func (m *Metrics) RecordDispatchError(err error) {
	m.dispatchErrors.WithLabelValues(ErrorKind(err)).Inc()
}

// RecordRun updates the last run watermark.
func (m *Metrics) RecordRun(ts time.Time) {
	if ts.IsZero() {
		return
	}
	m.lastRun.Set(float64(ts.Unix()))
}

// WriteTextfile writes the registry in text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// ErrorKind maps a dispatch error to its metric label.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ftracker.ErrUnknownActivity):
		return "unknown_activity"
	case errors.Is(err, ftracker.ErrArgumentCount):
		return "argument_count"
	default:
		return "other"
	}
}
