package blobstore

import (
	"context"
	"errors"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// ErrInvalidName is returned for names that would escape a store's root.
var ErrInvalidName = errors.New("invalid blob name")

// BlobStore gives read access to named, immutable blobs.
// Implementations must be safe for concurrent use.
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
	// List returns the names of all blobs starting with prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Blob is a read-only handle to a data blob.
type Blob interface {
	// ReadAt follows io.ReaderAt semantics: a short read returns a non-nil
	// error, io.EOF at the end of the blob.
	ReadAt(ctx context.Context, p []byte, off int64) (int, error)
	// ReadRange streams length bytes starting at off, fewer at the end of
	// the blob. off beyond the size fails with io.EOF.
	ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error)
	// Size returns the size of the blob in bytes.
	Size() int64
	io.Closer
}

// Mappable is an optional interface for Blobs whose contents are already
// in memory.
type Mappable interface {
	// Bytes returns the underlying byte slice.
	// The slice is valid until the Blob is closed.
	// This is a zero-copy operation if supported.
	Bytes() ([]byte, error)
}

// ClampRange validates a ReadRange request against size and returns the
// end offset (exclusive).
func ClampRange(size, off, length int64) (int64, error) {
	if off < 0 || off > size {
		return 0, io.EOF
	}
	end := off + max(length, 0)
	if end > size || end < off {
		end = size
	}
	return end, nil
}

// NewSequentialReader reads blob front to back through ReadAt, so callers
// that need an io.Reader do not hold one ranged request open.
func NewSequentialReader(ctx context.Context, b Blob) io.Reader {
	return &sequentialReader{ctx: ctx, b: b}
}

type sequentialReader struct {
	ctx context.Context
	b   Blob
	off int64
}

func (r *sequentialReader) Read(p []byte) (int, error) {
	if r.off >= r.b.Size() {
		return 0, io.EOF
	}
	n, err := r.b.ReadAt(r.ctx, p, r.off)
	r.off += int64(n)
	if errors.Is(err, io.EOF) && n > 0 {
		err = nil
	}
	return n, err
}
