package partknn

import (
	"log/slog"

	"github.com/hupe1980/partknn/internal/selection"
	"github.com/hupe1980/partknn/resource"
)

const (
	// DefaultK is the default number of voting neighbors.
	DefaultK = 3
	// DefaultPartitions is the default partition count P.
	DefaultPartitions = 4
	// DefaultCutoff is the default per-partition prefix length M.
	DefaultCutoff = 5
)

// Strategy names a per-partition top-M selection algorithm.
// All strategies return identical results; they differ only in cost.
type Strategy = selection.Strategy

const (
	// StrategyHeap keeps a bounded heap of M candidates. Default.
	StrategyHeap = selection.StrategyHeap
	// StrategyPartial runs selection sort over the first M slots.
	StrategyPartial = selection.StrategyPartial
	// StrategySort fully sorts each partition.
	StrategySort = selection.StrategySort
)

type options struct {
	k                int
	partitions       int
	cutoff           int
	workers          int
	strategy         Strategy
	metricsCollector MetricsCollector
	logger           *Logger
	resources        *resource.Controller
}

// Option configures a Classifier.
type Option func(*options)

// WithK sets the number of nearest neighbors that vote.
func WithK(k int) Option {
	return func(o *options) {
		o.k = k
	}
}

// WithPartitions sets the number of contiguous partitions P the dataset is
// split into. P must not exceed the row count of the classified dataset.
func WithPartitions(p int) Option {
	return func(o *options) {
		o.partitions = p
	}
}

// WithCutoff sets M, the number of candidates each partition contributes to
// the merge. K must not exceed P*M; with M >= K the result is exact.
func WithCutoff(m int) Option {
	return func(o *options) {
		o.cutoff = m
	}
}

// WithWorkers bounds the number of partition tasks running at once.
// 0 means runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithSelector picks the per-partition selection strategy.
func WithSelector(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
//	metrics := &partknn.BasicMetricsCollector{}
//	clf, _ := partknn.New(partknn.WithMetricsCollector(metrics))
//	// ... classify ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
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

// WithResourceController shares memory and worker budgets across
// classifiers. The candidate buffer of every run is reserved against it.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resources = rc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		k:                DefaultK,
		partitions:       DefaultPartitions,
		cutoff:           DefaultCutoff,
		strategy:         StrategyHeap,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
