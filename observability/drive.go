package observability

import (
	"context"
	"time"

	"github.com/zoobzio/clockz"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DriveContext holds observability state for one terminal drive.
type DriveContext struct {
	ID         string
	Operation  string
	SourceKind string
	StartTime  time.Time
	Metrics    *Metrics
	Tracer     trace.Tracer
	Clock      clockz.Clock

	elapsed time.Duration
	ended   bool
}

// NewDriveContext creates a drive context. A nil metrics or tracer skips
// that signal.
func NewDriveContext(id, operation, sourceKind string, metrics *Metrics, tracer trace.Tracer) *DriveContext {
	return &DriveContext{
		ID:         id,
		Operation:  operation,
		SourceKind: sourceKind,
		StartTime:  clockz.RealClock.Now(),
		Metrics:    metrics,
		Tracer:     tracer,
		Clock:      clockz.RealClock,
	}
}

// SetClock times the drive on c, restarting it at c.Now().
func (dc *DriveContext) SetClock(c clockz.Clock) {
	if c == nil {
		return
	}
	dc.Clock = c
	dc.StartTime = c.Now()
}

type driveContextKey struct{}

// WithDriveContext stores a DriveContext in the context.
func WithDriveContext(ctx context.Context, dc *DriveContext) context.Context {
	return context.WithValue(ctx, driveContextKey{}, dc)
}

// DriveContextFromContext retrieves the DriveContext from context, or nil.
func DriveContextFromContext(ctx context.Context) *DriveContext {
	if dc, ok := ctx.Value(driveContextKey{}).(*DriveContext); ok {
		return dc
	}
	return nil
}

// Start opens the drive span when a tracer is configured. The returned span
// is never nil.
func (dc *DriveContext) Start(ctx context.Context) (context.Context, trace.Span) {
	ctx = WithDriveContext(ctx, dc)
	if dc.Tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	ctx, span := dc.Tracer.Start(ctx, SpanPrefix+dc.Operation)
	span.SetAttributes(
		attribute.String(AttrOperation, dc.Operation),
		attribute.String(AttrSourceKind, dc.SourceKind),
	)
	if dc.ID != "" {
		span.SetAttributes(attribute.String(AttrDriveID, dc.ID))
	}
	return ctx, span
}

// End closes the span opened by Start and records drive metrics.
func (dc *DriveContext) End(ctx context.Context, span trace.Span, outcome string, pulled int, err error) {
	duration := dc.Duration()
	dc.elapsed, dc.ended = duration, true

	if dc.Tracer != nil {
		SetSpanError(ctx, err)
		SetSpanAttribute(ctx, AttrOutcome, outcome)
		SetSpanAttribute(ctx, AttrPulled, pulled)
		SetSpanAttribute(ctx, AttrStopped, outcome == OutcomeStopped)
		SetSpanAttribute(ctx, AttrDurationMs, duration.Milliseconds())
		span.End()
	}

	if dc.Metrics != nil {
		dc.Metrics.RecordDrive(ctx, dc.Operation, outcome, pulled, duration)
	}
}

// Duration returns the time the drive took, or the time elapsed so far if
// End has not been called.
func (dc *DriveContext) Duration() time.Duration {
	if dc.ended {
		return dc.elapsed
	}
	return dc.Clock.Now().Sub(dc.StartTime)
}
