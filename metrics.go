package sparseset

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    inserts prometheus.Counter
//	    grows   *prometheus.CounterVec
//	}
//
//	func (p *PrometheusCollector) RecordGrow(buffer string, oldCap, newCap int, err error) {
//	    p.grows.WithLabelValues(buffer).Inc()
//	}
type MetricsCollector interface {
	// RecordInsert is called after each insert operation.
	// err is nil if successful.
	RecordInsert(err error)

	// RecordRemove is called after each remove operation.
	RecordRemove()

	// RecordGrow is called after each attempt to grow a buffer.
	// buffer is "sparse" or "dense", err is nil if successful.
	RecordGrow(buffer string, oldCap, newCap int, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(error)                 {}
func (NoopMetricsCollector) RecordRemove()                      {}
func (NoopMetricsCollector) RecordGrow(string, int, int, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount       atomic.Int64
	InsertErrors      atomic.Int64
	RemoveCount       atomic.Int64
	SparseGrowCount   atomic.Int64
	DenseGrowCount    atomic.Int64
	GrowErrors        atomic.Int64
	GrowSlotsAllotted atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(err error) {
	b.InsertCount.Add(1)
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove() {
	b.RemoveCount.Add(1)
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(buffer string, oldCap, newCap int, err error) {
	if err != nil {
		b.GrowErrors.Add(1)
		return
	}
	switch buffer {
	case bufferSparse:
		b.SparseGrowCount.Add(1)
	case bufferDense:
		b.DenseGrowCount.Add(1)
	}
	b.GrowSlotsAllotted.Add(int64(newCap - oldCap))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:       b.InsertCount.Load(),
		InsertErrors:      b.InsertErrors.Load(),
		RemoveCount:       b.RemoveCount.Load(),
		SparseGrowCount:   b.SparseGrowCount.Load(),
		DenseGrowCount:    b.DenseGrowCount.Load(),
		GrowErrors:        b.GrowErrors.Load(),
		GrowSlotsAllotted: b.GrowSlotsAllotted.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount       int64
	InsertErrors      int64
	RemoveCount       int64
	SparseGrowCount   int64
	DenseGrowCount    int64
	GrowErrors        int64
	GrowSlotsAllotted int64
}
