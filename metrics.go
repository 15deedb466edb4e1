package vectormap

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// A collector may be shared by several maps, so implementations should be
// safe for concurrent use even though a single map is not.
type MetricsCollector interface {
	// RecordResize is called after every buffer reallocation attempt.
	// err is nil if the new buffer was adopted.
	RecordResize(oldCapacity, newCapacity int, err error)

	// RecordInsert is called after each insert call with the number of
	// entries the call tried to add.
	RecordInsert(count int, err error)

	// RecordErase is called after entries were removed.
	RecordErase(count int)

	// RecordLookup is called after each key lookup with the number of
	// entries the scan inspected.
	RecordLookup(scanned int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordResize(int, int, error) {}
func (NoopMetricsCollector) RecordInsert(int, error)      {}
func (NoopMetricsCollector) RecordErase(int)              {}
func (NoopMetricsCollector) RecordLookup(int)             {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GrowCount     atomic.Int64
	ShrinkCount   atomic.Int64
	ResizeErrors  atomic.Int64
	InsertCount   atomic.Int64
	InsertItems   atomic.Int64
	InsertErrors  atomic.Int64
	EraseCount    atomic.Int64
	EraseItems    atomic.Int64
	LookupCount   atomic.Int64
	LookupScanned atomic.Int64
	PeakCapacity  atomic.Int64
}

// RecordResize implements MetricsCollector.
func (b *BasicMetricsCollector) RecordResize(oldCapacity, newCapacity int, err error) {
	if err != nil {
		b.ResizeErrors.Add(1)
		return
	}
	switch {
	case newCapacity > oldCapacity:
		b.GrowCount.Add(1)
	case newCapacity < oldCapacity:
		b.ShrinkCount.Add(1)
	}
	for {
		p := b.PeakCapacity.Load()
		if int64(newCapacity) <= p || b.PeakCapacity.CompareAndSwap(p, int64(newCapacity)) {
			return
		}
	}
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(count int, err error) {
	b.InsertCount.Add(1)
	if err != nil {
		b.InsertErrors.Add(1)
		return
	}
	b.InsertItems.Add(int64(count))
}

// RecordErase implements MetricsCollector.
func (b *BasicMetricsCollector) RecordErase(count int) {
	b.EraseCount.Add(1)
	b.EraseItems.Add(int64(count))
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(scanned int) {
	b.LookupCount.Add(1)
	b.LookupScanned.Add(int64(scanned))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GrowCount:        b.GrowCount.Load(),
		ShrinkCount:      b.ShrinkCount.Load(),
		ResizeErrors:     b.ResizeErrors.Load(),
		InsertCount:      b.InsertCount.Load(),
		InsertItems:      b.InsertItems.Load(),
		InsertErrors:     b.InsertErrors.Load(),
		EraseCount:       b.EraseCount.Load(),
		EraseItems:       b.EraseItems.Load(),
		LookupCount:      b.LookupCount.Load(),
		LookupAvgScanned: b.getAvgScanned(),
		PeakCapacity:     b.PeakCapacity.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgScanned() int64 {
	count := b.LookupCount.Load()
	if count == 0 {
		return 0
	}
	return b.LookupScanned.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GrowCount        int64
	ShrinkCount      int64
	ResizeErrors     int64
	InsertCount      int64
	InsertItems      int64
	InsertErrors     int64
	EraseCount       int64
	EraseItems       int64
	LookupCount      int64
	LookupAvgScanned int64
	PeakCapacity     int64
}
