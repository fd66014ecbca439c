package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// StoreMetrics instruments the vendor record store.
type StoreMetrics struct {
	// Operations counts store calls by operation and outcome.
	Operations *prometheus.CounterVec
	// InjectedFailures counts simulated failures by operation.
	InjectedFailures *prometheus.CounterVec
	// PersistDuration tracks full-file rewrites.
	PersistDuration prometheus.Histogram
	// Vendors is the number of records currently held.
	Vendors prometheus.Gauge
}

// NewStoreMetrics registers the store metrics with reg.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	f := promauto.With(reg)
	return &StoreMetrics{
		Operations: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vendor_store_operations_total",
				Help: "Vendor store operations by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		InjectedFailures: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vendor_store_injected_failures_total",
				Help: "Simulated failures returned by the mock API",
			},
			[]string{"operation"},
		),
		PersistDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "vendor_store_persist_duration_seconds",
				Help:    "Time spent rewriting the backing file",
				Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
			},
		),
		Vendors: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "vendor_store_vendors",
				Help: "Vendors currently in the store",
			},
		),
	}
}

// ObserveOperation records one store call. A nil receiver is a no-op.
func (m *StoreMetrics) ObserveOperation(operation string, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	m.Operations.WithLabelValues(operation, outcome).Inc()
}

// ObserveInjectedFailure records a simulated failure.
func (m *StoreMetrics) ObserveInjectedFailure(operation string) {
	if m == nil {
		return
	}
	m.InjectedFailures.WithLabelValues(operation).Inc()
}

// ObservePersist records a rewrite that started at start and sets the
// record gauge.
func (m *StoreMetrics) ObservePersist(start time.Time, vendors int) {
	if m == nil {
		return
	}
	m.PersistDuration.Observe(time.Since(start).Seconds())
	m.Vendors.Set(float64(vendors))
}
