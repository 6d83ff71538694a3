package verify

import (
	"sync/atomic"
	"time"
)

// MetricsCollector receives per-blob and per-run measurements. Implement it
// to export verification metrics to a monitoring system.
type MetricsCollector interface {
	// RecordSum is called after each blob is checksummed. bytes is the
	// number of bytes checksummed before any failure.
	RecordSum(bytes int64, duration time.Duration, err error)

	// RecordCheck is called after each Check run.
	RecordCheck(ok, mismatched, missing int, duration time.Duration)
}

// NoopMetricsCollector discards all metrics.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSum(int64, time.Duration, error)    {}
func (NoopMetricsCollector) RecordCheck(int, int, int, time.Duration) {}

// BasicMetricsCollector keeps in-memory counters.
type BasicMetricsCollector struct {
	SumCount      atomic.Int64
	SumErrors     atomic.Int64
	SumBytes      atomic.Int64
	SumTotalNanos atomic.Int64
	CheckCount    atomic.Int64
	CheckOK       atomic.Int64
	CheckFailed   atomic.Int64
}

// RecordSum implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSum(bytes int64, duration time.Duration, err error) {
	b.SumCount.Add(1)
	b.SumBytes.Add(bytes)
	b.SumTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SumErrors.Add(1)
	}
}

// RecordCheck implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCheck(ok, mismatched, missing int, _ time.Duration) {
	b.CheckCount.Add(1)
	b.CheckOK.Add(int64(ok))
	b.CheckFailed.Add(int64(mismatched + missing))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	s := BasicMetricsStats{
		SumCount:    b.SumCount.Load(),
		SumErrors:   b.SumErrors.Load(),
		SumBytes:    b.SumBytes.Load(),
		CheckCount:  b.CheckCount.Load(),
		CheckOK:     b.CheckOK.Load(),
		CheckFailed: b.CheckFailed.Load(),
	}
	if nanos := b.SumTotalNanos.Load(); nanos > 0 {
		s.BytesPerSecond = float64(s.SumBytes) / (float64(nanos) / float64(time.Second))
	}
	return s
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SumCount       int64
	SumErrors      int64
	SumBytes       int64
	BytesPerSecond float64
	CheckCount     int64
	CheckOK        int64
	CheckFailed    int64
}
