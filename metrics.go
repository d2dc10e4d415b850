package cugraph

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordTraversal is called after each BFS/SSSP run.
	// algorithm is "bfs" or "sssp", duration is the total time taken,
	// err is nil if successful.
	RecordTraversal(algorithm string, duration time.Duration, err error)

	// RecordExtractPaths is called after each path extraction.
	// destinations is the number of requested destinations,
	// maxPathLength is 0 on failure.
	RecordExtractPaths(destinations, maxPathLength int, duration time.Duration, err error)

	// RecordSnapshot is called after each snapshot save or load.
	// op is "save" or "load", bytes is the blob size (0 on failure).
	RecordSnapshot(op string, bytes int64, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordTraversal(string, time.Duration, error)       {}
func (NoopMetricsCollector) RecordExtractPaths(int, int, time.Duration, error)  {}
func (NoopMetricsCollector) RecordSnapshot(string, int64, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	TraversalCount      atomic.Int64
	TraversalErrors     atomic.Int64
	TraversalTotalNanos atomic.Int64
	ExtractCount        atomic.Int64
	ExtractErrors       atomic.Int64
	ExtractDestinations atomic.Int64
	ExtractTotalNanos   atomic.Int64
	SnapshotCount       atomic.Int64
	SnapshotErrors      atomic.Int64
	SnapshotBytes       atomic.Int64
}

// RecordTraversal implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTraversal(_ string, duration time.Duration, err error) {
	b.TraversalCount.Add(1)
	b.TraversalTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.TraversalErrors.Add(1)
	}
}

// RecordExtractPaths implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExtractPaths(destinations, _ int, duration time.Duration, err error) {
	b.ExtractCount.Add(1)
	b.ExtractDestinations.Add(int64(destinations))
	b.ExtractTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ExtractErrors.Add(1)
	}
}

// RecordSnapshot implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSnapshot(_ string, bytes int64, duration time.Duration, err error) {
	b.SnapshotCount.Add(1)
	b.SnapshotBytes.Add(bytes)
	if err != nil {
		b.SnapshotErrors.Add(1)
	}
}
