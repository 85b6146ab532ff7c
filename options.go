package chroma

import "log/slog"

// Option configures an Engine during creation.
//
// Example:
//
//	e := chroma.NewEngine(chroma.WithWorkers(4), chroma.WithPoolSize(8))
//	defer e.Close()
type Option func(*options)

// options holds optional configuration for Engine creation.
type options struct {
	workers  int
	logger   *slog.Logger
	poolSize int
}

// defaultOptions returns the default engine options.
func defaultOptions() options {
	return options{
		workers:  0, // GOMAXPROCS
		logger:   nil,
		poolSize: 4,
	}
}

// WithWorkers sets the number of worker goroutines. Zero or a negative
// value uses GOMAXPROCS; 1 runs everything on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger sets the engine's logger. Without it the engine logs through
// the package logger (see SetLogger).
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithPoolSize sets how many released frames of each size the engine keeps
// for reuse. Zero disables the limit.
func WithPoolSize(n int) Option {
	return func(o *options) {
		o.poolSize = max(n, 0)
	}
}
