// Command crc32sum computes and checks CRC-32 (IEEE) manifests for files
// and object-store blobs.
//
//	crc32sum sum --store=s3://bucket/logs --prefix=2024/ > logs.crc
//	crc32sum check --store=s3://bucket/logs logs.crc
//	crc32sum cpu --self-test
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/alecthomas/kingpin/v2"

	"github.com/hupe1980/crcfold"
	"github.com/hupe1980/crcfold/blobstore"
	"github.com/hupe1980/crcfold/codec"
	"github.com/hupe1980/crcfold/resource"
	"github.com/hupe1980/crcfold/verify"
)

// errCheckFailed signals mismatched or missing blobs; it maps to exit
// status 1 without an error message.
var errCheckFailed = errors.New("check failed")

// usageError marks an invalid invocation; it maps to exit status 2.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// globals are the flags shared by all commands.
type globals struct {
	store      string
	impl       string
	decompress string
	workers    int
	rate       byteSize
	memory     byteSize
	chunkSize  byteSize
	logLevel   string
	logJSON    bool
	stderr     io.Writer
}

func (g *globals) register(app *kingpin.Application) {
	app.Flag("store", "Blob store: a directory, file://dir, s3://bucket/prefix, minio://host/bucket/prefix or minio+http://...").
		Envar("CRC32SUM_STORE").StringVar(&g.store)
	app.Flag("impl", "Force a CRC implementation (generic, crc32, pclmul, vpclmul).").
		Envar("CRC32SUM_IMPL").StringVar(&g.impl)
	app.Flag("decompress", "Decode blobs before checksumming (none, auto, gzip, zstd, lz4, snappy).").
		Envar("CRC32SUM_DECOMPRESS").Default("none").StringVar(&g.decompress)
	app.Flag("workers", "Maximum concurrent chunk reads.").
		Envar("CRC32SUM_WORKERS").Default(fmt.Sprint(runtime.GOMAXPROCS(0))).IntVar(&g.workers)
	app.Flag("rate", "Read bandwidth limit, e.g. 64MiB (0 = unlimited).").
		Envar("CRC32SUM_RATE").Default("0").SetValue(&g.rate)
	app.Flag("memory-limit", "Limit on buffered chunk memory, e.g. 1GiB (0 = unlimited).").
		Envar("CRC32SUM_MEMORY_LIMIT").Default("0").SetValue(&g.memory)
	app.Flag("chunk-size", "Chunk size for parallel checksumming.").
		Envar("CRC32SUM_CHUNK_SIZE").Default("4MiB").SetValue(&g.chunkSize)
	app.Flag("log-level", "Log level.").
		Envar("CRC32SUM_LOG_LEVEL").Default("warn").EnumVar(&g.logLevel, "debug", "info", "warn", "error")
	app.Flag("log-json", "Log as JSON.").
		Envar("CRC32SUM_LOG_JSON").BoolVar(&g.logJSON)
}

func (g *globals) logger() (*crcfold.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.logLevel)); err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if g.logJSON {
		return crcfold.NewLogger(slog.NewJSONHandler(g.stderr, opts)), nil
	}
	return crcfold.NewLogger(slog.NewTextHandler(g.stderr, opts)), nil
}

func (g *globals) engine(logger *crcfold.Logger) (*crcfold.Engine, error) {
	opts := []crcfold.Option{crcfold.WithLogger(logger)}
	if g.impl != "" {
		impl, err := crcfold.ParseImpl(g.impl)
		if err != nil {
			return nil, &usageError{err: err}
		}
		opts = append(opts, crcfold.WithImpl(impl))
	}
	return crcfold.New(opts...)
}

// verifier builds a Verifier from the global flags.
func (g *globals) verifier(ctx context.Context) (*verify.Verifier, blobstore.BlobStore, error) {
	logger, err := g.logger()
	if err != nil {
		return nil, nil, err
	}
	engine, err := g.engine(logger)
	if err != nil {
		return nil, nil, err
	}
	format, err := codec.ParseFormat(g.decompress)
	if err != nil {
		return nil, nil, &usageError{err: err}
	}
	store, err := openStore(ctx, g.store)
	if err != nil {
		return nil, nil, err
	}

	rc := resource.NewController(resource.Config{
		MaxWorkers:         int64(max(g.workers, 1)),
		MemoryLimitBytes:   int64(g.memory),
		IOLimitBytesPerSec: int64(g.rate),
	})

	v := verify.New(store,
		verify.WithEngine(engine),
		verify.WithLogger(logger),
		verify.WithController(rc),
		verify.WithChunkSize(int64(g.chunkSize)),
		verify.WithFormat(format),
	)
	return v, store, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := kingpin.New("crc32sum", "Compute and check CRC-32 (IEEE) checksums of files and object-store blobs.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	app.HelpFlag.Short('h')

	g := &globals{stderr: stderr}
	g.register(app)

	sum := addSumCommand(app, g, stdout)
	check := addCheckCommand(app, g, stdout)
	cpu := addCPUCommand(app, stdout)

	selected, err := app.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "crc32sum: %v\n", err)
		return 2
	}

	switch selected {
	case sum.name:
		err = sum.run(ctx)
	case check.name:
		err = check.run(ctx)
	case cpu.name:
		err = cpu.run()
	}

	var usage *usageError
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errCheckFailed):
		return 1
	case errors.As(err, &usage):
		fmt.Fprintf(stderr, "crc32sum: %v\n", err)
		app.Usage([]string{selected})
		return 2
	default:
		fmt.Fprintf(stderr, "crc32sum: %v\n", err)
		return 1
	}
}
