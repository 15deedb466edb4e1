package vectormap

// DefaultDelta is the growth delta used when WithDelta is not given.
const DefaultDelta = 100

type options struct {
	delta            int
	logger           *Logger
	metricsCollector MetricsCollector
	acquirer         MemoryAcquirer
}

func defaultOptions() options {
	return options{
		delta:            DefaultDelta,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures a VectorMap at construction time.
//
// Options are carried over by Clone and Take.
type Option func(*options)

// WithDelta sets the growth delta D. Every capacity chosen by Reserve is a
// multiple of D. Non-positive values make the constructor fail with
// ErrInvalidDelta.
func WithDelta(delta int) Option {
	return func(o *options) {
		o.delta = delta
	}
}

// WithLogger configures structured logging of buffer reallocations.
//
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures metrics collection.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithMemoryAcquirer makes every buffer allocation acquire its size in bytes
// from a first. A refused acquisition fails the operation with
// ErrAllocationFailed and leaves the map unchanged.
func WithMemoryAcquirer(a MemoryAcquirer) Option {
	return func(o *options) {
		o.acquirer = a
	}
}

// WithMemoryLimit is shorthand for WithMemoryAcquirer(NewMemoryBudget(limitBytes))
// with a budget private to the map.
func WithMemoryLimit(limitBytes int64) Option {
	return func(o *options) {
		o.acquirer = NewMemoryBudget(limitBytes)
	}
}
