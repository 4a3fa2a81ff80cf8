package progress

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors shared by all algorithm trackers.
type Metrics struct {
	units    *prometheus.CounterVec
	phases   *prometheus.CounterVec
	ratio    *prometheus.GaugeVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg registers on prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		units: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "graphalgo_progress_units_total",
			Help: "Units of work (nodes or relationships) processed",
		}, []string{"algorithm"}),
		phases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "graphalgo_phase_messages_total",
			Help: "Phase boundary messages emitted",
		}, []string{"algorithm"}),
		ratio: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "graphalgo_progress_ratio",
			Help: "Completed fraction of the current progress window (0.0-1.0)",
		}, []string{"algorithm"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "graphalgo_run_duration_seconds",
			Help:    "Wall-clock duration of algorithm runs",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30, 120, 600},
		}, []string{"algorithm", "status"}),
	}
	reg.MustRegister(m.units, m.phases, m.ratio, m.duration)

	return m
}

// ObserveRun records the duration of one run; status is "ok" or "error".
func (m *Metrics) ObserveRun(algorithm, status string, seconds float64) {
	m.duration.WithLabelValues(algorithm, status).Observe(seconds)
}

// Tracker returns a Tracker that feeds the collectors for algorithm.
func (m *Metrics) Tracker(algorithm string) *MetricsTracker {
	return &MetricsTracker{
		units:  m.units.WithLabelValues(algorithm),
		phases: m.phases.WithLabelValues(algorithm),
		ratio:  m.ratio.WithLabelValues(algorithm),
	}
}

// MetricsTracker is the Prometheus-backed Tracker of one algorithm.
type MetricsTracker struct {
	units  prometheus.Counter
	phases prometheus.Counter
	ratio  prometheus.Gauge

	total atomic.Int64
	done  atomic.Int64
}

// Units returns the processed-units counter.
func (t *MetricsTracker) Units() prometheus.Counter { return t.units }

// Phases returns the phase-message counter.
func (t *MetricsTracker) Phases() prometheus.Counter { return t.phases }

// Ratio returns the completed-fraction gauge.
func (t *MetricsTracker) Ratio() prometheus.Gauge { return t.ratio }

// LogMessage counts a phase boundary.
func (t *MetricsTracker) LogMessage(string) {
	t.phases.Inc()
}

// Reset opens a new window and zeroes the ratio gauge.
func (t *MetricsTracker) Reset(total int64) {
	t.total.Store(total)
	t.done.Store(0)
	t.ratio.Set(0)
}

// LogProgress adds delta units to the counter and updates the ratio gauge.
func (t *MetricsTracker) LogProgress(delta int64) {
	t.units.Add(float64(delta))
	done := t.done.Add(delta)
	if total := t.total.Load(); total > 0 {
		t.ratio.Set(float64(done) / float64(total))
	}
}
