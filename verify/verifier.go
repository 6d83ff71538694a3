package verify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/crcfold"
	"github.com/hupe1980/crcfold/blobstore"
	"github.com/hupe1980/crcfold/codec"
	"github.com/hupe1980/crcfold/internal/conv"
	"github.com/hupe1980/crcfold/internal/mem"
	"github.com/hupe1980/crcfold/resource"
)

// Verifier checksums blobs of a store. It is safe for concurrent use.
type Verifier struct {
	store     blobstore.BlobStore
	engine    *crcfold.Engine
	chunkSize int64
	rc        *resource.Controller
	logger    *crcfold.Logger
	format    codec.Format
	metrics   MetricsCollector
}

// New returns a Verifier reading from store.
func New(store blobstore.BlobStore, optFns ...Option) *Verifier {
	opts := options{
		chunkSize: DefaultChunkSize,
		logger:    crcfold.NoopLogger(),
		format:    codec.None,
		metrics:   NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.engine == nil {
		opts.engine = crcfold.MustNew(crcfold.WithLogger(opts.logger))
	}
	if opts.rc == nil {
		opts.rc = resource.NewController(resource.Config{
			MaxWorkers: int64(runtime.GOMAXPROCS(0)),
		})
	}

	return &Verifier{
		store:     store,
		engine:    opts.engine,
		chunkSize: opts.chunkSize,
		rc:        opts.rc,
		logger:    opts.logger,
		format:    opts.format,
		metrics:   opts.metrics,
	}
}

// Engine returns the CRC engine in use.
func (v *Verifier) Engine() *crcfold.Engine { return v.engine }

// Sum checksums one blob.
func (v *Verifier) Sum(ctx context.Context, name string) (Entry, error) {
	start := time.Now()
	e, err := v.sum(ctx, name)
	v.metrics.RecordSum(e.Size, time.Since(start), err)
	v.logger.LogSum(ctx, name, e.Size, e.CRC, err)
	return e, err
}

func (v *Verifier) sum(ctx context.Context, name string) (Entry, error) {
	e := Entry{Name: name}

	b, err := v.store.Open(ctx, name)
	if err != nil {
		return e, fmt.Errorf("open %s: %w", name, err)
	}
	defer b.Close()

	if v.format != codec.None {
		e.CRC, e.Size, err = v.sumStream(ctx, b)
		if err != nil {
			return e, fmt.Errorf("sum %s: %w", name, err)
		}
		return e, nil
	}

	e.Size = b.Size()
	e.CRC, err = v.sumChunks(ctx, b)
	if err != nil {
		return Entry{Name: name}, fmt.Errorf("sum %s: %w", name, err)
	}
	return e, nil
}

// sumStream decodes b and checksums the decoded bytes as they are read.
func (v *Verifier) sumStream(ctx context.Context, b blobstore.Blob) (uint32, int64, error) {
	var src io.Reader = blobstore.NewSequentialReader(ctx, b)
	src = resource.NewRateLimitedReader(ctx, src, v.rc)

	var codecOpts []codec.Option
	if w := v.rc.MaxWorkers(); w > 1 {
		codecOpts = append(codecOpts, codec.WithConcurrency(w))
	}
	dec, err := codec.NewReader(v.format, src, codecOpts...)
	if err != nil {
		return 0, 0, err
	}
	defer dec.Close()

	r := v.engine.NewReader(dec)
	if _, err := io.Copy(io.Discard, r); err != nil {
		return 0, r.Count(), err
	}
	return r.Sum32(), r.Count(), nil
}

// sumChunks checksums fixed-size chunks of b in parallel and merges them in
// order.
func (v *Verifier) sumChunks(ctx context.Context, b blobstore.Blob) (uint32, error) {
	size := b.Size()
	if size == 0 {
		return 0, nil
	}

	var mapped []byte
	if m, ok := b.(blobstore.Mappable); ok {
		if data, err := m.Bytes(); err == nil && int64(len(data)) == size {
			mapped = data
		}
	}

	chunks := int((size + v.chunkSize - 1) / v.chunkSize)
	crcs := make([]uint32, chunks)

	g, gctx := errgroup.WithContext(ctx)
	for i := range chunks {
		off := int64(i) * v.chunkSize
		n := min(v.chunkSize, size-off)

		if err := v.rc.AcquireWorker(gctx); err != nil {
			break
		}
		g.Go(func() error {
			defer v.rc.ReleaseWorker()

			if mapped != nil {
				chunk := mapped[off : off+n]
				if err := v.rc.AcquireIO(gctx, len(chunk)); err != nil {
					return err
				}
				crcs[i] = v.engine.Checksum(chunk)
				return nil
			}
			crc, err := v.readChunk(gctx, b, off, n)
			if err != nil {
				return err
			}
			crcs[i] = crc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	// AcquireWorker only fails once the group or the parent is done.
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	crc := crcs[0]
	for i := 1; i < chunks; i++ {
		off := int64(i) * v.chunkSize
		crc = crcfold.Combine(crc, crcs[i], min(v.chunkSize, size-off))
	}
	return crc, nil
}

func (v *Verifier) readChunk(ctx context.Context, b blobstore.Blob, off, n int64) (uint32, error) {
	size, err := conv.Int64ToInt(n)
	if err != nil {
		return 0, err
	}

	if err := v.rc.AcquireMemory(ctx, n); err != nil {
		return 0, err
	}
	defer v.rc.ReleaseMemory(n)

	if err := v.rc.AcquireIO(ctx, size); err != nil {
		return 0, err
	}

	buf := mem.Get(size)
	defer mem.Put(buf)

	read, err := b.ReadAt(ctx, buf, off)
	if err != nil && !(errors.Is(err, io.EOF) && int64(read) == n) {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return 0, fmt.Errorf("read chunk at %d: %w", off, err)
	}
	return v.engine.Checksum(buf), nil
}

// SumAll checksums names concurrently and returns the entries in the order
// of names. It stops at the first error.
func (v *Verifier) SumAll(ctx context.Context, names []string) ([]Entry, error) {
	entries := make([]Entry, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.rc.MaxWorkers())
	for i, name := range names {
		g.Go(func() error {
			e, err := v.Sum(gctx, name)
			if err != nil {
				return err
			}
			entries[i] = e
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Report is the outcome of Check. Names keep the order of the checked
// entries.
type Report struct {
	OK         []string
	Mismatched []string
	Missing    []string
}

// Failed reports whether any entry mismatched or was missing.
func (r Report) Failed() bool {
	return len(r.Mismatched) > 0 || len(r.Missing) > 0
}

type outcome uint8

const (
	outcomeOK outcome = iota
	outcomeMismatched
	outcomeMissing
)

// Check recomputes the checksum of every entry. Missing blobs and
// mismatches are collected in the report; any other error aborts the run.
func (v *Verifier) Check(ctx context.Context, entries []Entry) (Report, error) {
	start := time.Now()
	outcomes := make([]outcome, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.rc.MaxWorkers())
	for i, want := range entries {
		g.Go(func() error {
			got, err := v.Sum(gctx, want.Name)
			switch {
			case errors.Is(err, blobstore.ErrNotFound):
				outcomes[i] = outcomeMissing
			case err != nil:
				return err
			case got.CRC != want.CRC:
				outcomes[i] = outcomeMismatched
				v.logger.WithBlob(want.Name).WarnContext(gctx, "checksum mismatch",
					"error", &crcfold.MismatchError{Expected: want.CRC, Actual: got.CRC})
			default:
				outcomes[i] = outcomeOK
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	var r Report
	for i, o := range outcomes {
		name := entries[i].Name
		switch o {
		case outcomeOK:
			r.OK = append(r.OK, name)
		case outcomeMismatched:
			r.Mismatched = append(r.Mismatched, name)
		case outcomeMissing:
			r.Missing = append(r.Missing, name)
		}
	}

	v.metrics.RecordCheck(len(r.OK), len(r.Mismatched), len(r.Missing), time.Since(start))
	v.logger.LogCheck(ctx, len(r.OK), len(r.Mismatched), len(r.Missing))
	return r, nil
}
