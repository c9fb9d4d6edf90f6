package bootstrap

import (
	"io"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/seqkit/logger"
)

// Option configures Apply.
type Option func(*runtimeOptions)

// runtimeOptions collects all option values before they are applied.
type runtimeOptions struct {
	logger         *logger.Logger
	writer         io.Writer
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
}

// resolveOptions applies all options and returns the collected values.
func resolveOptions(opts []Option) *runtimeOptions {
	o := &runtimeOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithLogger sets a custom logger.
// If not set, the logger is initialized from the settings' Logging section.
func WithLogger(l *logger.Logger) Option {
	return func(o *runtimeOptions) {
		o.logger = l
	}
}

// WithLogWriter builds the logger from settings but writes to w.
func WithLogWriter(w io.Writer) Option {
	return func(o *runtimeOptions) {
		o.writer = w
	}
}

// WithMeterProvider records drive metrics on mp instead of the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *runtimeOptions) {
		o.meterProvider = mp
	}
}

// WithTracerProvider takes drive spans from tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *runtimeOptions) {
		o.tracerProvider = tp
	}
}
