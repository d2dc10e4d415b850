package resource

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilControllerIsUnlimited(t *testing.T) {
	var c *Controller
	ctx := context.Background()

	assert.NoError(t, c.AcquireMemory(ctx, 1<<40))
	c.ReleaseMemory(1 << 40)
	assert.Equal(t, int64(0), c.MemoryUsage())

	assert.NoError(t, c.AcquireOp(ctx))
	c.ReleaseOp()

	assert.NoError(t, c.AcquireIO(ctx, 1<<30))
}

func TestMemoryAccounting(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 100})
	ctx := context.Background()

	require.NoError(t, c.AcquireMemory(ctx, 60))
	assert.Equal(t, int64(60), c.MemoryUsage())

	require.NoError(t, c.AcquireMemory(ctx, 40))
	assert.Equal(t, int64(100), c.MemoryUsage())

	// The limit is saturated; further acquisition blocks until release
	// or cancellation.
	blocked, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.AcquireMemory(blocked, 1), context.DeadlineExceeded)

	c.ReleaseMemory(100)
	assert.Equal(t, int64(0), c.MemoryUsage())
	assert.NoError(t, c.AcquireMemory(ctx, 100))
}

func TestMemoryTrackingWithoutLimit(t *testing.T) {
	c := NewController(Config{})
	ctx := context.Background()

	require.NoError(t, c.AcquireMemory(ctx, 1<<30))
	assert.Equal(t, int64(1<<30), c.MemoryUsage())
	c.ReleaseMemory(1 << 30)
}

func TestOpConcurrencyLimit(t *testing.T) {
	c := NewController(Config{MaxConcurrentExtractions: 1})
	ctx := context.Background()

	require.NoError(t, c.AcquireOp(ctx))

	blocked, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.AcquireOp(blocked), context.DeadlineExceeded)

	c.ReleaseOp()
	assert.NoError(t, c.AcquireOp(ctx))
	c.ReleaseOp()
}

func TestAcquireIOUnlimited(t *testing.T) {
	c := NewController(Config{})
	assert.NoError(t, c.AcquireIO(context.Background(), 1<<20))
}

func TestAcquireIOLargerThanBurst(t *testing.T) {
	// A single acquisition bigger than one second's budget must
	// throttle, not fail. The initial bucket covers the first burst,
	// so only the remainder waits.
	c := NewController(Config{IOLimitBytesPerSec: 1 << 16})
	ctx := context.Background()

	assert.NoError(t, c.AcquireIO(ctx, 1<<16+1))

	// Cancellation still interrupts the wait mid-acquisition.
	blocked, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	assert.Error(t, c.AcquireIO(blocked, 10<<16))
}

func TestRateLimitedWriter(t *testing.T) {
	// The limiter burst covers the full write, so this completes
	// without throttling delays.
	c := NewController(Config{IOLimitBytesPerSec: 1 << 20})

	var sink bytes.Buffer
	w := NewRateLimitedWriter(context.Background(), &sink, c)

	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", sink.String())
}

func TestRateLimitedReader(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 1 << 20})

	r := NewRateLimitedReader(context.Background(), bytes.NewReader([]byte("payload")), c)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(got))
}

func TestRateLimitedIOCancellation(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := NewRateLimitedWriter(ctx, io.Discard, c)
	_, err := w.Write(make([]byte, 1))
	assert.Error(t, err)
}
