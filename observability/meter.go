package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/seqkit/version"
)

// Drive outcomes recorded on seqkit.drive.total.
const (
	OutcomeExhausted = "exhausted"
	OutcomeStopped   = "stopped"
	OutcomeError     = "error"
)

// MeterConfig configures an in-process meter provider.
type MeterConfig struct {
	// ServiceName is the name of the host program.
	ServiceName string
	// ServiceVersion is the version of the host program.
	ServiceVersion string
	// Environment is the deployment environment (development, staging, production).
	Environment string
}

// DefaultMeterConfig returns defaults for the named program.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "dev",
		Environment:    "development",
	}
}

// NewMeterProvider builds an SDK meter provider tagged with the program's
// resource. Readers (exporters) are supplied by the caller through opts;
// none are created here.
func NewMeterProvider(config MeterConfig, opts ...sdkmetric.Option) (*sdkmetric.MeterProvider, error) {
	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}
	opts = append([]sdkmetric.Option{sdkmetric.WithResource(res)}, opts...)
	return sdkmetric.NewMeterProvider(opts...), nil
}

// Meter returns a named meter from the global provider, tagged with the
// linked seqkit version.
func Meter(name string) metric.Meter {
	return otel.Meter(name, metric.WithInstrumentationVersion(version.Short()))
}

// Metrics holds the instruments recorded for sequence drives.
type Metrics struct {
	driveTotal         metric.Int64Counter
	driveElements      metric.Int64Counter
	driveDuration      metric.Float64Histogram
	constructionErrors metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	driveTotal, err := meter.Int64Counter("seqkit.drive.total",
		metric.WithDescription("Total number of terminal drives"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating seqkit.drive.total counter: %w", err)
	}

	driveElements, err := meter.Int64Counter("seqkit.drive.elements",
		metric.WithDescription("Source elements pulled by terminal drives"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating seqkit.drive.elements counter: %w", err)
	}

	driveDuration, err := meter.Float64Histogram("seqkit.drive.duration",
		metric.WithDescription("Duration of terminal drives in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating seqkit.drive.duration histogram: %w", err)
	}

	constructionErrors, err := meter.Int64Counter("seqkit.construction.errors",
		metric.WithDescription("Invalid stage or sequence constructions by error code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating seqkit.construction.errors counter: %w", err)
	}

	return &Metrics{
		driveTotal:         driveTotal,
		driveElements:      driveElements,
		driveDuration:      driveDuration,
		constructionErrors: constructionErrors,
	}, nil
}

// RecordDrive records a completed terminal drive.
func (m *Metrics) RecordDrive(ctx context.Context, operation, outcome string, pulled int, duration time.Duration) {
	op := attribute.String(AttrOperation, operation)
	m.driveTotal.Add(ctx, 1, metric.WithAttributes(op, attribute.String(AttrOutcome, outcome)))
	m.driveElements.Add(ctx, int64(pulled), metric.WithAttributes(op))
	m.driveDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(op))
}

// RecordConstructionError records a rejected stage or sequence construction.
func (m *Metrics) RecordConstructionError(ctx context.Context, code string) {
	m.constructionErrors.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrCode, code)))
}
