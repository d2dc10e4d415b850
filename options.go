package cugraph

import (
	"github.com/chirayuG-nvidia/cugraph/resource"
)

type options struct {
	logger          *Logger
	metrics         MetricsCollector
	rc              *resource.Controller
	workers         int
	partitions      int
	storeTransposed bool
}

func defaultOptions() options {
	return options{
		logger:     NopLogger(),
		metrics:    NoopMetricsCollector{},
		partitions: 1,
	}
}

// Option configures graph construction and per-graph operation
// behavior.
type Option func(*options)

// WithLogger configures structured logging for the graph's
// operations. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

// WithResourceController attaches a resource controller bounding
// concurrent extractions, result-buffer memory, and snapshot IO
// throughput. A nil controller means no limits.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.rc = rc
	}
}

// WithWorkers sets the number of parallel workers used by the path
// reconstruction passes. Defaults to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithPartitions splits the graph's internal vertex range across n
// compute domains. Results are identical to the single-domain case;
// partitioning affects ID ownership bookkeeping and error
// attribution. n < 2 keeps the graph single-domain.
func WithPartitions(n int) Option {
	return func(o *options) {
		o.partitions = n
	}
}

// WithStoreTransposed stores adjacency in transposed orientation
// (edges on the destination's row). Traversals require natural
// orientation, so a transposed graph is re-transposed on first use.
func WithStoreTransposed(transposed bool) Option {
	return func(o *options) {
		o.storeTransposed = transposed
	}
}
