package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HandoffMetrics covers one bootstrap session. It owns its registry so a
// session can be flushed to a textfile without the default collectors.
type HandoffMetrics struct {
	registry *prometheus.Registry
	started  time.Time

	commands   *prometheus.CounterVec
	args       prometheus.Gauge
	properties prometheus.Gauge
	bootstrap  prometheus.Histogram
	handoff    *prometheus.GaugeVec
}

func NewHandoffMetrics() *HandoffMetrics {
	m := &HandoffMetrics{
		registry: prometheus.NewRegistry(),
		started:  time.Now(),
		commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "launchwrap",
				Subsystem: "handoff",
				Name:      "commands_total",
				Help:      "Protocol commands decoded before handoff.",
			},
			[]string{"kind"},
		),
		args: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "launchwrap",
			Subsystem: "handoff",
			Name:      "arguments",
			Help:      "Arguments passed to the entry point.",
		}),
		properties: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "launchwrap",
			Subsystem: "handoff",
			Name:      "properties",
			Help:      "Properties set before handoff.",
		}),
		bootstrap: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "launchwrap",
			Subsystem: "handoff",
			Name:      "bootstrap_duration_seconds",
			Help:      "Time from process start of the reader to handoff.",
			Buckets:   prometheus.DefBuckets,
		}),
		handoff: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "launchwrap",
				Subsystem: "handoff",
				Name:      "timestamp_seconds",
				Help:      "Unix time of the handoff, labeled by entry point.",
			},
			[]string{"entry_point"},
		),
	}
	m.registry.MustRegister(m.commands, m.args, m.properties, m.bootstrap, m.handoff)
	return m
}

func (m *HandoffMetrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *HandoffMetrics) RecordCommand(kind string) {
	m.commands.WithLabelValues(kind).Inc()
}

func (m *HandoffMetrics) RecordHandoff(entryPoint string, args, properties int, at time.Time) {
	m.args.Set(float64(args))
	m.properties.Set(float64(properties))
	m.bootstrap.Observe(at.Sub(m.started).Seconds())
	m.handoff.WithLabelValues(entryPoint).Set(float64(at.Unix()))
}

// WriteTextfile writes the registry in the node_exporter textfile format.
// The write is atomic (temp file + rename).
func (m *HandoffMetrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
