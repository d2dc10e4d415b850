package resource

import (
	"context"
	"io"
)

// RateLimitedWriter wraps an io.Writer with the controller's IO
// limit. Blob stores wrap their write path with it when a transfer
// rate limit is configured.
type RateLimitedWriter struct {
	w   io.Writer
	rc  *Controller
	ctx context.Context
}

// NewRateLimitedWriter creates a new RateLimitedWriter.
func NewRateLimitedWriter(ctx context.Context, w io.Writer, rc *Controller) *RateLimitedWriter {
	return &RateLimitedWriter{
		w:   w,
		rc:  rc,
		ctx: ctx,
	}
}

func (w *RateLimitedWriter) Write(p []byte) (int, error) {
	if err := w.rc.AcquireIO(w.ctx, len(p)); err != nil {
		return 0, err
	}
	return w.w.Write(p)
}

// RateLimitedReader wraps an io.Reader with the controller's IO
// limit. The wait is sized by the bytes each Read actually returns,
// so large read buffers do not inflate the charge.
type RateLimitedReader struct {
	r   io.Reader
	rc  *Controller
	ctx context.Context
}

// NewRateLimitedReader creates a new RateLimitedReader.
func NewRateLimitedReader(ctx context.Context, r io.Reader, rc *Controller) *RateLimitedReader {
	return &RateLimitedReader{
		r:   r,
		rc:  rc,
		ctx: ctx,
	}
}

func (r *RateLimitedReader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if n > 0 {
		if werr := r.rc.AcquireIO(r.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}
