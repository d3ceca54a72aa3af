// Package metrics owns the prometheus collectors for one offcode process and
// dumps them in the node-exporter textfile format on exit.
package metrics

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics groups the collectors. Each instance has its own registry so tests
// never share state.
type Metrics struct {
	registry *prometheus.Registry

	toolCalls    *prometheus.CounterVec
	toolDuration *prometheus.HistogramVec
	skipped      *prometheus.CounterVec
	iterations   prometheus.Counter
	generations  *prometheus.CounterVec
	genDuration  prometheus.Histogram
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		toolCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "offcode_tool_calls_total",
				Help: "Tool calls executed, by tool and outcome kind.",
			},
			[]string{"tool", "kind"}, // kind is "ok" on success
		),
		toolDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "offcode_tool_duration_seconds",
				Help:    "Tool call duration in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"tool"},
		),
		skipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "offcode_tool_calls_skipped_total",
				Help: "Tool calls declined at confirmation.",
			},
			[]string{"tool"},
		),
		iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "offcode_loop_iterations_total",
			Help: "Autonomous loop iterations.",
		}),
		generations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "offcode_generations_total",
				Help: "Completion requests, by status.",
			},
			[]string{"status"}, // ok | error
		),
		genDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "offcode_generation_duration_seconds",
			Help:    "Completion request duration in seconds.",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		}),
	}
	m.registry.MustRegister(m.toolCalls, m.toolDuration, m.skipped, m.iterations, m.generations, m.genDuration)
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveToolCall(tool, kind string, d time.Duration) {
	if kind == "" {
		kind = "ok"
	}
	m.toolCalls.WithLabelValues(tool, kind).Inc()
	m.toolDuration.WithLabelValues(tool).Observe(d.Seconds())
}

func (m *Metrics) ObserveSkipped(tool string) {
	m.skipped.WithLabelValues(tool).Inc()
}

func (m *Metrics) ObserveIteration() {
	m.iterations.Inc()
}

func (m *Metrics) ObserveGeneration(d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.generations.WithLabelValues(status).Inc()
	m.genDuration.Observe(d.Seconds())
}

// Write encodes every metric family in the Prometheus text format.
func (m *Metrics) Write(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}

// WriteTextfile writes the metrics to path through a temporary file and a
// rename, so a collector never sees a partial file.
func (m *Metrics) WriteTextfile(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".offcode-metrics-*")
	if err != nil {
		return fmt.Errorf("create metrics file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := m.Write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("encode metrics: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close metrics file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod metrics file: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}
