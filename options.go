package crcfold

import "log/slog"

type options struct {
	impl     Impl
	forced   bool
	features Features
	detect   bool
	logger   *Logger
}

// Option configures an Engine.
type Option func(*options)

// WithImpl forces a tier. New fails with *ErrUnsupportedImpl if the
// engine's features cannot run it.
func WithImpl(impl Impl) Option {
	return func(o *options) {
		o.impl = impl
		o.forced = true
	}
}

// WithFeatures binds the engine as if the CPU had exactly the features f.
//
// Example:
//
//	// Force the portable path regardless of hardware.
//	e, _ := crcfold.New(crcfold.WithFeatures(crcfold.Features{}))
func WithFeatures(f Features) Option {
	return func(o *options) {
		o.features = f
		o.detect = false
	}
}

// WithLogger configures structured logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func defaultOptions() options {
	return options{
		detect: true,
		logger: NoopLogger(),
	}
}
