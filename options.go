package defectgo

type options struct {
	logger            *Logger
	metrics           MetricsCollector
	colors            bool
	parallelism       int
	sequentialSurface bool
}

// Option configures classifier behavior.
type Option func(*options)

// WithLogger configures the structured logger used by the classifier.
//
// If nil is passed, logging is disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetrics configures the metrics collector invoked after each pass.
//
// If nil is passed, metrics collection is disabled.
func WithMetrics(collector MetricsCollector) Option {
	return func(o *options) {
		if collector == nil {
			collector = NoopMetricsCollector{}
		}
		o.metrics = collector
	}
}

// WithColors enables the derived display-color output. The result then
// carries an index-aligned color slice computed from the fixed
// label-to-RGB table.
func WithColors() Option {
	return func(o *options) {
		o.colors = true
	}
}

// WithParallelism sets the number of worker goroutines used by the
// default two-pass evaluation. Values below 1 select runtime.GOMAXPROCS(0).
// Ignored in sequential-surface mode.
//
// The classification result is independent of the parallelism value.
func WithParallelism(workers int) Option {
	return func(o *options) {
		o.parallelism = workers
	}
}

// WithSequentialSurface selects the strict ascending single-threaded pass
// in which the surface rule reads the labels already written for
// lower-index atoms. Results then depend on atom ordering; the default
// two-pass evaluation is deterministic and parallelizable and is
// recommended for new code.
func WithSequentialSurface() Option {
	return func(o *options) {
		o.sequentialSurface = true
	}
}
