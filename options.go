package sparseset

import (
	"log/slog"

	"github.com/hupe1980/sparseset/internal/buffer"
	"github.com/hupe1980/sparseset/resource"
)

// DefaultInitialCapacity is the first capacity allocated by GrowthDoubling.
const DefaultInitialCapacity = 64

// GrowthPolicy selects how both buffers grow.
type GrowthPolicy uint8

const (
	// GrowthDoubling tracks capacity separately from length and doubles it
	// when exceeded, starting from the initial capacity. Inserts are
	// amortized O(1).
	GrowthDoubling GrowthPolicy = iota

	// GrowthExact reallocates to exactly the needed size on every growth
	// event. Uses the least memory at the cost of one copy per growth.
	GrowthExact
)

// String implements fmt.Stringer.
func (p GrowthPolicy) String() string {
	return p.policy().String()
}

func (p GrowthPolicy) policy() buffer.Policy {
	switch p {
	case GrowthExact:
		return buffer.Exact
	case GrowthDoubling:
		return buffer.Doubling
	default:
		return buffer.Policy(p)
	}
}

type options struct {
	initialCapacity  int
	growthPolicy     GrowthPolicy
	metricsCollector MetricsCollector
	logger           *Logger
	resources        *resource.Controller
}

// Option configures a Set at construction.
type Option func(*options)

// WithInitialCapacity sets how many entries the buffers hold before their
// first doubling. Storage is still allocated lazily on the first insert.
// Values <= 0 select DefaultInitialCapacity. Ignored by GrowthExact.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = DefaultInitialCapacity
		}
		o.initialCapacity = n
	}
}

// WithGrowthPolicy configures the growth strategy shared by the sparse and
// dense buffers. Unknown policies are ignored.
func WithGrowthPolicy(p GrowthPolicy) Option {
	return func(o *options) {
		if !p.policy().Valid() {
			return
		}
		o.growthPolicy = p
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &sparseset.BasicMetricsCollector{}
//	s := sparseset.New(sparseset.WithMetricsCollector(metrics))
//	// ... use s ...
//	stats := metrics.GetStats()
//	fmt.Printf("Inserts: %d, dense grows: %d\n", stats.InsertCount, stats.DenseGrowCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured tracing of operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := sparseset.NewJSONLogger(slog.LevelDebug)
//	s := sparseset.New(sparseset.WithLogger(logger.WithName("players")))
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

// WithResourceController charges buffer growth against rc. When the budget is
// exhausted Insert, Reserve and Clone return an error wrapping ErrOutOfMemory
// instead of allocating. Pass nil to disable accounting.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resources = rc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		initialCapacity:  DefaultInitialCapacity,
		growthPolicy:     GrowthDoubling,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

func (o options) allocator() buffer.Allocator {
	a := buffer.Allocator{
		Policy:  o.growthPolicy.policy(),
		Initial: o.initialCapacity,
		Limit:   maxEntities,
	}
	if o.resources != nil {
		a.Acct = o.resources
	}
	return a
}
