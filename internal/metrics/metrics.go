package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics represents the collection of benchmark Prometheus metrics. Each
// instance owns its registry so repeated construction never collides.
type Metrics struct {
	Registry *prometheus.Registry

	ElapsedSeconds  *prometheus.GaugeVec
	NsPerOp         *prometheus.GaugeVec
	RunsTotal       *prometheus.CounterVec
	IterationsTotal *prometheus.CounterVec
}

// NewMetrics creates and registers all benchmark metrics
func NewMetrics() *Metrics {
	m := &Metrics{Registry: prometheus.NewRegistry()}

	m.ElapsedSeconds = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "polybench_elapsed_seconds",
			Help: "Wall-clock time of the last measurement of a pair",
		},
		[]string{"category", "workload"},
	)

	m.NsPerOp = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "polybench_ns_per_op",
			Help: "Mean cost of one call in the last measurement of a pair",
		},
		[]string{"category", "workload"},
	)

	m.RunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "polybench_measurements_total",
			Help: "Number of measurements taken",
		},
		[]string{"category", "workload"},
	)

	m.IterationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "polybench_iterations_total",
			Help: "Number of timed calls",
		},
		[]string{"category", "workload"},
	)

	m.Registry.MustRegister(
		m.ElapsedSeconds,
		m.NsPerOp,
		m.RunsTotal,
		m.IterationsTotal,
	)

	return m
}

// Observe records one measurement.
func (m *Metrics) Observe(category, workload string, iterations uint64, elapsed time.Duration) {
	m.ElapsedSeconds.WithLabelValues(category, workload).Set(elapsed.Seconds())
	if iterations > 0 {
		m.NsPerOp.WithLabelValues(category, workload).Set(float64(elapsed.Nanoseconds()) / float64(iterations))
	}
	m.RunsTotal.WithLabelValues(category, workload).Inc()
	m.IterationsTotal.WithLabelValues(category, workload).Add(float64(iterations))
}

// WriteTextfile writes the metrics in the node-exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
