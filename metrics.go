package simterms

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting lookup metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    descriptionCounter prometheus.Counter
//	    missCounter        prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordDescription(duration time.Duration, miss bool) {
//	    p.descriptionCounter.Inc()
//	    if miss {
//	        p.missCounter.Inc()
//	    }
//	}
type MetricsCollector interface {
	// RecordDescription is called after each VectorDescription call.
	// miss reports whether the vector name had no terminology entry.
	RecordDescription(duration time.Duration, miss bool)

	// RecordUnitReformat is called after each ReformatUnit call.
	// substituted reports whether a friendly unit replaced the raw one.
	RecordUnitReformat(duration time.Duration, substituted bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordDescription(time.Duration, bool)  {}
func (NoopMetricsCollector) RecordUnitReformat(time.Duration, bool) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	DescriptionCount      atomic.Int64
	DescriptionMisses     atomic.Int64
	DescriptionTotalNanos atomic.Int64
	ReformatCount         atomic.Int64
	ReformatSubstituted   atomic.Int64
}

// RecordDescription implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDescription(duration time.Duration, miss bool) {
	b.DescriptionCount.Add(1)
	b.DescriptionTotalNanos.Add(duration.Nanoseconds())
	if miss {
		b.DescriptionMisses.Add(1)
	}
}

// RecordUnitReformat implements MetricsCollector.
func (b *BasicMetricsCollector) RecordUnitReformat(duration time.Duration, substituted bool) {
	b.ReformatCount.Add(1)
	if substituted {
		b.ReformatSubstituted.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		DescriptionCount:    b.DescriptionCount.Load(),
		DescriptionMisses:   b.DescriptionMisses.Load(),
		DescriptionAvgNanos: b.getAvgDescriptionNanos(),
		ReformatCount:       b.ReformatCount.Load(),
		ReformatSubstituted: b.ReformatSubstituted.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgDescriptionNanos() int64 {
	count := b.DescriptionCount.Load()
	if count == 0 {
		return 0
	}
	return b.DescriptionTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	DescriptionCount    int64
	DescriptionMisses   int64
	DescriptionAvgNanos int64
	ReformatCount       int64
	ReformatSubstituted int64
}
