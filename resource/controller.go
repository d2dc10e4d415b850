package resource

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits.
type Config struct {
	// MemoryLimitBytes is the hard limit for path-buffer memory.
	// If 0, no hard limit is enforced (only tracking).
	MemoryLimitBytes int64

	// MaxConcurrentExtractions is the maximum number of extractions
	// and traversals running at once. If 0, defaults to 1.
	MaxConcurrentExtractions int64

	// IOLimitBytesPerSec is the maximum IO throughput for snapshot
	// save/load. If 0, unlimited.
	IOLimitBytesPerSec int64
}

// Controller manages global resources (memory, concurrency, IO) for a
// graph handle. All methods tolerate a nil receiver, which means
// "no limits".
type Controller struct {
	cfg Config

	// Memory
	memSem  *semaphore.Weighted // nil if unlimited
	memUsed atomic.Int64

	// Concurrency
	opSem *semaphore.Weighted

	// IO
	ioLimiter *rate.Limiter
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxConcurrentExtractions <= 0 {
		cfg.MaxConcurrentExtractions = 1
	}

	c := &Controller{
		cfg:   cfg,
		opSem: semaphore.NewWeighted(cfg.MaxConcurrentExtractions),
	}

	if cfg.MemoryLimitBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}

	if cfg.IOLimitBytesPerSec > 0 {
		c.ioLimiter = rate.NewLimiter(rate.Limit(cfg.IOLimitBytesPerSec), int(cfg.IOLimitBytesPerSec))
	}

	return c
}

// AcquireMemory attempts to reserve memory for a result buffer.
// If a hard limit is configured and usage would exceed it, this
// blocks until memory is available or ctx is canceled.
func (c *Controller) AcquireMemory(ctx context.Context, bytes int64) error {
	if c == nil || bytes <= 0 {
		return nil
	}

	if c.memSem != nil {
		if err := c.memSem.Acquire(ctx, bytes); err != nil {
			return err
		}
	}

	c.memUsed.Add(bytes)
	return nil
}

// ReleaseMemory releases reserved memory.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}

	if c.memSem != nil {
		c.memSem.Release(bytes)
	}
	c.memUsed.Add(-bytes)
}

// MemoryUsage returns the current tracked memory usage in bytes.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}

// AcquireOp reserves an extraction/traversal slot, blocking while all
// slots are busy.
func (c *Controller) AcquireOp(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.opSem.Acquire(ctx, 1)
}

// ReleaseOp releases an extraction/traversal slot.
func (c *Controller) ReleaseOp() {
	if c == nil {
		return
	}
	c.opSem.Release(1)
}

// AcquireIO waits until the IO limit allows the specified number of
// bytes. Requests larger than the limiter's burst are acquired in
// burst-sized pieces, so a single large blob throttles instead of
// exceeding the bucket.
func (c *Controller) AcquireIO(ctx context.Context, bytes int) error {
	if c == nil || c.ioLimiter == nil || bytes <= 0 {
		return nil
	}

	burst := c.ioLimiter.Burst()
	for bytes > 0 {
		n := bytes
		if n > burst {
			n = burst
		}
		if err := c.ioLimiter.WaitN(ctx, n); err != nil {
			return err
		}
		bytes -= n
	}
	return nil
}
