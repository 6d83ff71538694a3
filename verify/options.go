package verify

import (
	"github.com/hupe1980/crcfold"
	"github.com/hupe1980/crcfold/codec"
	"github.com/hupe1980/crcfold/resource"
)

// DefaultChunkSize is the size of the pieces an uncompressed blob is split
// into for parallel checksumming.
const DefaultChunkSize = 4 << 20

type options struct {
	engine    *crcfold.Engine
	chunkSize int64
	rc        *resource.Controller
	logger    *crcfold.Logger
	format    codec.Format
	metrics   MetricsCollector
}

// Option configures a Verifier.
type Option func(*options)

// WithEngine sets the CRC engine. Defaults to the process-wide binding.
func WithEngine(e *crcfold.Engine) Option {
	return func(o *options) {
		o.engine = e
	}
}

// WithChunkSize sets the chunk size for parallel checksumming. Values
// below 1 are ignored.
func WithChunkSize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.chunkSize = n
		}
	}
}

// WithController bounds workers, buffer memory and read bandwidth.
// Defaults to GOMAXPROCS workers with no memory or IO limit.
func WithController(rc *resource.Controller) Option {
	return func(o *options) {
		o.rc = rc
	}
}

// WithLogger sets the logger.
func WithLogger(l *crcfold.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = crcfold.NoopLogger()
		}
		o.logger = l
	}
}

// WithFormat decodes blobs before checksumming. codec.Auto sniffs each
// blob.
func WithFormat(f codec.Format) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}
