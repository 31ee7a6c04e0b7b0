package metrics

import (
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"
)

const namespace = "wordcalc"

// Metrics holds the Prometheus collectors of one run. Each instance owns its
// registry so tests and concurrent runs do not share state.
type Metrics struct {
	registry *prometheus.Registry

	operations *prometheus.CounterVec
	overflows  *prometheus.CounterVec
	suiteRuns  *prometheus.CounterVec
	checks     *prometheus.CounterVec
	suiteTime  *prometheus.HistogramVec
	threshold  prometheus.Gauge
}

// NewMetrics creates and registers the collectors, including the Go runtime
// collector.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Evaluated operations by type and operation.",
		}, []string{"type", "op"}),
		overflows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "overflows_total",
			Help:      "Operations whose result was flagged.",
		}, []string{"type", "op"}),
		suiteRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verify_suites_total",
			Help:      "Verification suite runs by outcome.",
		}, []string{"suite", "outcome"}),
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verify_checks_total",
			Help:      "Individual checks performed by verification suites.",
		}, []string{"suite"}),
		suiteTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "verify_suite_duration_seconds",
			Help:      "Verification suite run time.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"suite"}),
		threshold: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "karatsuba_threshold_digits",
			Help:      "Karatsuba threshold in effect.",
		}),
	}
	m.registry.MustRegister(
		m.operations, m.overflows, m.suiteRuns, m.checks, m.suiteTime, m.threshold,
		collectors.NewGoCollector(),
	)
	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// RecordOperation counts one evaluated operation.
func (m *Metrics) RecordOperation(typ, op string, overflow bool) {
	m.operations.WithLabelValues(typ, op).Inc()
	if overflow {
		m.overflows.WithLabelValues(typ, op).Inc()
	}
}

// RecordSuite records the outcome of one verification suite.
func (m *Metrics) RecordSuite(suite string, checks int, d time.Duration, err error) {
	outcome := "pass"
	if err != nil {
		outcome = "fail"
	}
	m.suiteRuns.WithLabelValues(suite, outcome).Inc()
	m.checks.WithLabelValues(suite).Add(float64(checks))
	m.suiteTime.WithLabelValues(suite).Observe(d.Seconds())
}

// SetKaratsubaThreshold publishes the threshold in effect.
func (m *Metrics) SetKaratsubaThreshold(digits int) {
	m.threshold.Set(float64(digits))
}

// WritePrometheus serves the registry in the exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}).ServeHTTP(w, r)
}

// Dump writes the metric families whose name starts with the wordcalc
// namespace in the text exposition format.
func (m *Metrics) Dump(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if len(mf.GetName()) < len(namespace) || mf.GetName()[:len(namespace)] != namespace {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
