package sequence

import (
	"context"
	"sync"

	"github.com/zoobzio/clockz"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
)

// Option configures a Sequence.
type Option func(*options)

type options struct {
	ctx       context.Context
	logger    *logger.Logger
	metrics   *observability.Metrics
	tracer    trace.Tracer
	clock     clockz.Clock
	strict    bool
	logDrives bool
}

var (
	defaultsMu sync.RWMutex
	defaults   []Option
)

// SetDefaults installs options applied to every Sequence created afterwards,
// before its own options. The returned func restores the previous defaults.
func SetDefaults(opts ...Option) (restore func()) {
	defaultsMu.Lock()
	prev := defaults
	defaults = append([]Option(nil), opts...)
	defaultsMu.Unlock()
	return func() {
		defaultsMu.Lock()
		defaults = prev
		defaultsMu.Unlock()
	}
}

func newOptions(opts []Option) options {
	o := options{
		ctx:       context.Background(),
		logger:    logger.NewNop(),
		logDrives: true,
	}
	defaultsMu.RLock()
	for _, opt := range defaults {
		opt(&o)
	}
	defaultsMu.RUnlock()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithLogger sets the logger for construction errors and drive events.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = logger.NewNop()
		}
		o.logger = l.WithComponent("sequence")
	}
}

// WithMetrics records drive metrics on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithTracer wraps every terminal drive in a span from t.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) { o.tracer = t }
}

// WithContext sets the parent context of drive spans.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithStrict makes New reject non-iterable sources the way From does.
func WithStrict(strict bool) Option {
	return func(o *options) { o.strict = strict }
}

// WithDriveLogging toggles the debug event logged after each drive.
func WithDriveLogging(enabled bool) Option {
	return func(o *options) { o.logDrives = enabled }
}

// WithClock times drives on c instead of the wall clock.
func WithClock(c clockz.Clock) Option {
	return func(o *options) { o.clock = c }
}
