package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

type driveIDKey struct{}

// ContextWithDriveID stores a drive ID for WithContext to pick up.
func ContextWithDriveID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, driveIDKey{}, id)
}

// DriveIDFromContext returns the drive ID stored by ContextWithDriveID.
func DriveIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(driveIDKey{}).(string)
	return id, ok
}

// WithContext returns a logger tagged with the drive ID and the trace and
// span IDs of the active span in ctx, when present.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}
	zc := l.zl.With()
	if id, ok := DriveIDFromContext(ctx); ok {
		zc = zc.Str(FieldDriveID, id)
	}
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		zc = zc.Str(FieldTraceID, sc.TraceID().String()).Str(FieldSpanID, sc.SpanID().String())
	}
	return l.derive(zc.Logger())
}
