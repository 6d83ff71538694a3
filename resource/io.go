package resource

import (
	"context"
	"io"
)

// RateLimitedReader wraps an io.Reader with rate limiting.
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

// Read waits for len(p) tokens, capped at one second of budget so a huge
// buffer does not stall a single call.
func (r *RateLimitedReader) Read(p []byte) (int, error) {
	if r.rc != nil && r.rc.ioLimiter != nil {
		if burst := r.rc.ioLimiter.Burst(); len(p) > burst {
			p = p[:burst]
		}
	}
	if err := r.rc.AcquireIO(r.ctx, len(p)); err != nil {
		return 0, err
	}
	return r.r.Read(p)
}
