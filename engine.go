package crcfold

import (
	"context"
	"hash"
	"io"

	"github.com/hupe1980/crcfold/internal/crc"
)

// Engine is a CRC-32 implementation bound to one tier. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	table  *crc.Table
	forced bool
	logger *Logger
}

// New binds an engine. Without options it uses the process-wide binding,
// including a CRCFOLD_IMPL override.
func New(optFns ...Option) (*Engine, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	f := opts.features
	if opts.detect {
		f = crc.Detected()
	}

	impl := opts.impl
	switch {
	case opts.forced:
	case opts.detect:
		impl = crc.ActiveImpl()
	default:
		impl = crc.Bind(f)
	}

	table, ok := crc.NewTableFor(f, impl)
	if !ok {
		return nil, &ErrUnsupportedImpl{Impl: impl, Features: f}
	}

	e := &Engine{
		table:  table,
		forced: opts.forced,
		logger: opts.logger.WithImpl(impl),
	}
	e.logger.LogBind(context.Background(), f, opts.forced)
	return e, nil
}

// MustNew is like New but panics on error.
func MustNew(optFns ...Option) *Engine {
	e, err := New(optFns...)
	if err != nil {
		panic(err)
	}
	return e
}

// Impl returns the bound tier.
func (e *Engine) Impl() Impl { return e.table.Impl() }

// Features returns the features the engine was bound from.
func (e *Engine) Features() Features { return e.table.Features() }

// Forced reports whether the tier was chosen with WithImpl.
func (e *Engine) Forced() bool { return e.forced }

// Logger returns the engine's logger.
func (e *Engine) Logger() *Logger { return e.logger }

func (e *Engine) kernel() crc.Kernel { return e.table.Kernel() }

// Update returns the CRC-32 of p appended to data whose checksum is crc.
func (e *Engine) Update(crc uint32, p []byte) uint32 {
	return e.kernel().Update(crc, p)
}

// UpdateCopy copies src into dst and returns the checksum of src continued
// from crc. It panics if dst is shorter than src.
func (e *Engine) UpdateCopy(crc uint32, dst, src []byte) uint32 {
	return e.kernel().UpdateCopy(crc, dst, src)
}

// Checksum returns the CRC-32 of p.
func (e *Engine) Checksum(p []byte) uint32 {
	return e.kernel().Update(0, p)
}

// FoldReset prepares s for a new session.
func (e *Engine) FoldReset(s *FoldState) { e.kernel().FoldReset(s) }

// Fold adds p to the session; see the package-level Fold.
func (e *Engine) Fold(s *FoldState, p []byte, initCRC uint32) {
	e.kernel().Fold(s, p, initCRC)
}

// FoldCopy copies src into dst and adds it to the session.
func (e *Engine) FoldCopy(s *FoldState, dst, src []byte) {
	e.kernel().FoldCopy(s, dst, src)
}

// FoldFinal returns the checksum of everything folded into s.
func (e *Engine) FoldFinal(s *FoldState) uint32 {
	return e.kernel().FoldFinal(s)
}

// NewHash returns a hash.Hash32 computed by this engine, starting from seed.
func (e *Engine) NewHash(seed uint32) hash.Hash32 {
	return newDigest(e.kernel(), seed)
}

// NewReader returns a Reader over r that checksums with this engine.
func (e *Engine) NewReader(r io.Reader) *Reader {
	return newReader(e.kernel(), r)
}

// NewWriter returns a Writer over w that checksums with this engine.
func (e *Engine) NewWriter(w io.Writer) *Writer {
	return newWriter(e.kernel(), w)
}
