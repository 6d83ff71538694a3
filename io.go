package crcfold

import (
	"io"

	"github.com/hupe1980/crcfold/internal/crc"
)

// Reader checksums everything read through it. The source reads straight
// into the caller's slice and the returned bytes are checksummed in place.
type Reader struct {
	r   io.Reader
	k   crc.Kernel
	crc uint32
	n   int64
}

// NewReader returns a Reader over r using the process-wide binding.
func NewReader(r io.Reader) *Reader {
	return newReader(active(), r)
}

func newReader(k crc.Kernel, r io.Reader) *Reader {
	return &Reader{r: r, k: k}
}

func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if n > 0 {
		r.crc = r.k.Update(r.crc, p[:n])
		r.n += int64(n)
	}
	return n, err
}

// Sum32 returns the checksum of the bytes read so far.
func (r *Reader) Sum32() uint32 { return r.crc }

// Count returns the number of bytes read so far.
func (r *Reader) Count() int64 { return r.n }

// Verify compares the checksum so far with expected and returns a
// *MismatchError when they differ.
func (r *Reader) Verify(expected uint32) error {
	if r.crc != expected {
		return &MismatchError{Expected: expected, Actual: r.crc}
	}
	return nil
}

// Writer checksums everything successfully written through it.
type Writer struct {
	w   io.Writer
	k   crc.Kernel
	crc uint32
	n   int64
}

// NewWriter returns a Writer over w using the process-wide binding.
func NewWriter(w io.Writer) *Writer {
	return newWriter(active(), w)
}

func newWriter(k crc.Kernel, w io.Writer) *Writer {
	return &Writer{w: w, k: k}
}

func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	if n > 0 {
		w.crc = w.k.Update(w.crc, p[:n])
		w.n += int64(n)
	}
	return n, err
}

// Sum32 returns the checksum of the bytes written so far.
func (w *Writer) Sum32() uint32 { return w.crc }

// Count returns the number of bytes written so far.
func (w *Writer) Count() int64 { return w.n }
