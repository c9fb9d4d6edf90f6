// Package observability provides OpenTelemetry tracing and metrics for
// sequence drives.
//
// Instruments are created on any metric.Meter; the global provider is a
// no-op until the host program installs an SDK:
//
//	metrics, err := observability.NewMetrics(observability.Meter(observability.DefaultInstrumentationName))
//	metrics.RecordDrive(ctx, "reduce", observability.OutcomeExhausted, 42, elapsed)
//
// A drive is wrapped in a span named seqkit.<operation>:
//
//	dc := observability.NewDriveContext(id, "first", "indexable", metrics, tracer)
//	ctx, span := dc.Start(ctx)
//	...
//	dc.End(ctx, span, observability.OutcomeStopped, pulled, nil)
//
// NewTracerProvider and NewMeterProvider build SDK providers tagged with the
// program's resource. They never create exporters; callers pass span
// processors or readers as options.
package observability
