package bootstrap

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/seqkit/config"
	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/sequence"
	"github.com/kbukum/seqkit/version"
)

// Runtime holds the ambient stack installed for sequences.
type Runtime struct {
	Settings *config.Settings
	Logger   *logger.Logger
	Metrics  *observability.Metrics
	Tracer   trace.Tracer
	Summary  *Summary

	options    []sequence.Option
	restore    func()
	prevGlobal *logger.Logger

	mu      sync.Mutex
	onClose []Hook
	closed  bool
}

// Setup loads Settings for the named program and applies them.
func Setup(name string, opts ...config.LoaderOption) (*Runtime, error) {
	settings, err := config.Load(name, opts...)
	if err != nil {
		return nil, errors.InvalidConfig(err)
	}
	return Apply(settings)
}

// Apply installs the stack described by settings as sequence defaults.
func Apply(settings *config.Settings, opts ...Option) (*Runtime, error) {
	start := time.Now()
	if settings == nil {
		return nil, errors.InvalidConfig(fmt.Errorf("settings are nil"))
	}
	settings.ApplyDefaults()
	if err := settings.Validate(); err != nil {
		return nil, errors.InvalidConfig(err)
	}

	o := resolveOptions(opts)
	rt := &Runtime{Settings: settings}

	// Logger: use custom if provided, otherwise build from settings.
	switch {
	case o.logger != nil:
		rt.Logger = o.logger
	case o.writer != nil:
		rt.Logger = logger.NewWithWriter(&settings.Logging, settings.Name, o.writer)
	default:
		rt.prevGlobal = logger.GetGlobalLogger()
		rt.Logger = logger.New(&settings.Logging, settings.Name)
		logger.SetGlobalLogger(rt.Logger)
	}
	logger.Register("sequence", rt.Logger.WithComponent("sequence"))

	instrumentation := settings.Observability.InstrumentationName
	if settings.Observability.Metrics {
		var meter metric.Meter
		if o.meterProvider != nil {
			meter = o.meterProvider.Meter(instrumentation, metric.WithInstrumentationVersion(version.Short()))
		} else {
			meter = observability.Meter(instrumentation)
		}
		m, err := observability.NewMetrics(meter)
		if err != nil {
			rt.restoreLogger()
			return nil, fmt.Errorf("creating drive metrics: %w", err)
		}
		rt.Metrics = m
	}
	if settings.Observability.Tracing {
		if o.tracerProvider != nil {
			rt.Tracer = o.tracerProvider.Tracer(instrumentation, trace.WithInstrumentationVersion(version.Short()))
		} else {
			rt.Tracer = observability.Tracer(instrumentation)
		}
	}

	rt.options = []sequence.Option{
		sequence.WithLogger(rt.Logger),
		sequence.WithStrict(settings.Sequence.Strict),
		sequence.WithDriveLogging(settings.Sequence.TraceDrives),
	}
	if rt.Metrics != nil {
		rt.options = append(rt.options, sequence.WithMetrics(rt.Metrics))
	}
	if rt.Tracer != nil {
		rt.options = append(rt.options, sequence.WithTracer(rt.Tracer))
	}
	rt.restore = sequence.SetDefaults(rt.options...)

	rt.Summary = NewSummary(settings, time.Since(start))
	rt.Summary.Log(rt.Logger)
	return rt, nil
}

// Options returns the sequence options installed by Apply, for passing to
// sequence.New explicitly.
func (r *Runtime) Options() []sequence.Option {
	return append([]sequence.Option(nil), r.options...)
}

// Close runs the close hooks and restores the sequence defaults and global
// logger that were in place before Apply. Calling Close again is a no-op.
func (r *Runtime) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	hooks := r.onClose
	r.mu.Unlock()

	err := runHooks(context.Background(), hooks)
	if r.restore != nil {
		r.restore()
	}
	r.restoreLogger()
	if err != nil {
		r.Logger.Warn("seqkit runtime closed with errors", logger.ErrorFields("close", err))
	}
	return err
}

func (r *Runtime) restoreLogger() {
	if r.prevGlobal != nil {
		logger.SetGlobalLogger(r.prevGlobal)
		r.prevGlobal = nil
	}
}
