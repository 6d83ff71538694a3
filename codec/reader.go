package codec

import (
	"bufio"
	"fmt"
	"io"
	"sync"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"
	"github.com/pierrec/lz4/v4"
)

type options struct {
	concurrency int
}

// Option configures NewReader.
type Option func(*options)

// WithConcurrency decodes with n goroutines where the format supports it
// (gzip via pgzip, zstd). n <= 1 decodes on the calling goroutine.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// pgzip read-ahead block size.
const pgzipBlockSize = 1 << 20

// Single-threaded decoders are pooled; they hold no goroutines while idle.
var (
	gzipPool   sync.Pool
	zstdPool   sync.Pool
	lz4Pool    = sync.Pool{New: func() any { return lz4.NewReader(nil) }}
	snappyPool = sync.Pool{New: func() any { return snappy.NewReader(nil) }}
)

func getZstdDecoder(r io.Reader) (*zstd.Decoder, error) {
	if v := zstdPool.Get(); v != nil {
		dec := v.(*zstd.Decoder)
		if err := dec.Reset(r); err != nil {
			zstdPool.Put(dec)
			return nil, err
		}
		return dec, nil
	}
	return zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
}

func putZstdDecoder(dec *zstd.Decoder) {
	// Release the source reader before pooling.
	_ = dec.Reset(nil)
	zstdPool.Put(dec)
}

func getGzipReader(r io.Reader) (*gzip.Reader, error) {
	if v := gzipPool.Get(); v != nil {
		zr := v.(*gzip.Reader)
		if err := zr.Reset(r); err != nil {
			gzipPool.Put(zr)
			return nil, err
		}
		return zr, nil
	}
	return gzip.NewReader(r)
}

// NewReader returns a reader of the decoded contents of r. Closing it
// releases decoder resources but does not close r.
func NewReader(f Format, r io.Reader, optFns ...Option) (io.ReadCloser, error) {
	opts := options{concurrency: 1}
	for _, fn := range optFns {
		fn(&opts)
	}

	if f == Auto {
		br := bufio.NewReader(r)
		// A short stream simply yields a short header.
		header, _ := br.Peek(HeaderSize)
		f = Detect(header)
		r = br
	}

	switch f {
	case None:
		return io.NopCloser(r), nil

	case Gzip:
		if opts.concurrency > 1 {
			zr, err := pgzip.NewReaderN(r, pgzipBlockSize, opts.concurrency)
			if err != nil {
				return nil, fmt.Errorf("gzip: %w", err)
			}
			return zr, nil
		}
		zr, err := getGzipReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return &closerFunc{Reader: zr, onClose: func() error {
			err := zr.Close()
			gzipPool.Put(zr)
			return err
		}}, nil

	case Zstd:
		if opts.concurrency > 1 {
			dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(opts.concurrency))
			if err != nil {
				return nil, fmt.Errorf("zstd: %w", err)
			}
			return dec.IOReadCloser(), nil
		}
		dec, err := getZstdDecoder(r)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return &closerFunc{Reader: dec, onClose: func() error {
			putZstdDecoder(dec)
			return nil
		}}, nil

	case LZ4:
		zr := lz4Pool.Get().(*lz4.Reader)
		zr.Reset(r)
		return &closerFunc{Reader: zr, onClose: func() error {
			zr.Reset(nil)
			lz4Pool.Put(zr)
			return nil
		}}, nil

	case Snappy:
		sr := snappyPool.Get().(*snappy.Reader)
		sr.Reset(r)
		return &closerFunc{Reader: sr, onClose: func() error {
			sr.Reset(nil) // Release references to the buffer.
			snappyPool.Put(sr)
			return nil
		}}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
}

type closerFunc struct {
	io.Reader
	onClose func() error
	closed  bool
}

func (c *closerFunc) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.onClose()
}
