package observability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/zoobzio/clockz"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/kbukum/seqkit/errors"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}
	return rm
}

func findMetric(rm metricdata.ResourceMetrics, name string) (metricdata.Metrics, bool) {
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				return m, true
			}
		}
	}
	return metricdata.Metrics{}, false
}

func sumWhere(m metricdata.Metrics, key, value string) int64 {
	sum, ok := m.Data.(metricdata.Sum[int64])
	if !ok {
		return -1
	}
	var total int64
	for _, dp := range sum.DataPoints {
		if v, ok := dp.Attributes.Value(attribute.Key(key)); ok && v.AsString() == value {
			total += dp.Value
		}
	}
	return total
}

func spanAttr(span sdktrace.ReadOnlySpan, key string) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("test-service")

	if cfg.ServiceName != "test-service" {
		t.Errorf("expected ServiceName 'test-service', got %s", cfg.ServiceName)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("test-service")
	if cfg.ServiceName != "test-service" {
		t.Errorf("expected ServiceName 'test-service', got %s", cfg.ServiceName)
	}
	if cfg.Environment != "development" {
		t.Errorf("expected Environment 'development', got %s", cfg.Environment)
	}
}

func TestNewMetrics_Noop(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	metrics, err := NewMetrics(meter)
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}
	if metrics == nil {
		t.Fatal("expected non-nil metrics")
	}

	ctx := context.Background()
	metrics.RecordDrive(ctx, "reduce", OutcomeExhausted, 3, time.Millisecond)
	metrics.RecordConstructionError(ctx, "INVALID_ARGUMENT")
}

func TestMetrics_RecordDrive(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp, err := NewMeterProvider(DefaultMeterConfig("test"), sdkmetric.WithReader(reader))
	if err != nil {
		t.Fatal(err)
	}
	defer mp.Shutdown(context.Background())

	metrics, err := NewMetrics(mp.Meter(DefaultInstrumentationName))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	metrics.RecordDrive(ctx, "first", OutcomeStopped, 1, time.Millisecond)
	metrics.RecordDrive(ctx, "toArray", OutcomeExhausted, 4, time.Millisecond)
	metrics.RecordDrive(ctx, "toArray", OutcomeExhausted, 2, time.Millisecond)
	metrics.RecordConstructionError(ctx, "INVALID_ARGUMENT")

	rm := collect(t, reader)

	total, ok := findMetric(rm, "seqkit.drive.total")
	if !ok {
		t.Fatal("seqkit.drive.total not recorded")
	}
	if got := sumWhere(total, AttrOutcome, OutcomeExhausted); got != 2 {
		t.Errorf("exhausted drives = %d, want 2", got)
	}
	if got := sumWhere(total, AttrOutcome, OutcomeStopped); got != 1 {
		t.Errorf("stopped drives = %d, want 1", got)
	}

	elements, ok := findMetric(rm, "seqkit.drive.elements")
	if !ok {
		t.Fatal("seqkit.drive.elements not recorded")
	}
	if got := sumWhere(elements, AttrOperation, "toArray"); got != 6 {
		t.Errorf("toArray elements = %d, want 6", got)
	}

	if _, ok := findMetric(rm, "seqkit.drive.duration"); !ok {
		t.Error("seqkit.drive.duration not recorded")
	}

	errs, ok := findMetric(rm, "seqkit.construction.errors")
	if !ok {
		t.Fatal("seqkit.construction.errors not recorded")
	}
	if got := sumWhere(errs, AttrCode, "INVALID_ARGUMENT"); got != 1 {
		t.Errorf("construction errors = %d, want 1", got)
	}
}

func TestDriveContext_Span(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp, err := NewTracerProvider(DefaultTracerConfig("test"), sdktrace.WithSpanProcessor(recorder))
	if err != nil {
		t.Fatal(err)
	}
	defer tp.Shutdown(context.Background())

	dc := NewDriveContext("drive-1", "first", "indexable", nil, tp.Tracer(DefaultInstrumentationName))
	ctx, span := dc.Start(context.Background())
	if DriveContextFromContext(ctx) != dc {
		t.Error("drive context not stored in context")
	}
	dc.End(ctx, span, OutcomeStopped, 1, nil)

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Name() != "seqkit.first" {
		t.Errorf("span name = %q", spans[0].Name())
	}
	if v, ok := spanAttr(spans[0], AttrPulled); !ok || v.AsInt64() != 1 {
		t.Errorf("pulled attribute = %v, %v", v, ok)
	}
	if v, ok := spanAttr(spans[0], AttrStopped); !ok || !v.AsBool() {
		t.Errorf("stopped attribute = %v, %v", v, ok)
	}
	if v, ok := spanAttr(spans[0], AttrDriveID); !ok || v.AsString() != "drive-1" {
		t.Errorf("drive id attribute = %v, %v", v, ok)
	}
}

func TestDriveContext_SpanError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer tp.Shutdown(context.Background())

	dc := NewDriveContext("", "reduce", "empty", nil, tp.Tracer("test"))
	ctx, span := dc.Start(context.Background())
	dc.End(ctx, span, OutcomeError, 0, errors.EmptyReduction())

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Status().Code != codes.Error {
		t.Errorf("status = %v, want error", spans[0].Status().Code)
	}
	if _, ok := spanAttr(spans[0], AttrDriveID); ok {
		t.Error("drive id attribute should be omitted when empty")
	}
	if v, ok := spanAttr(spans[0], AttrCode); !ok || v.AsString() != "EMPTY_REDUCTION" {
		t.Errorf("code attribute = %v, %v", v, ok)
	}
}

func TestDriveContext_NoSignals(t *testing.T) {
	dc := NewDriveContext("", "count", "indexable", nil, nil)
	ctx, span := dc.Start(context.Background())
	if span == nil {
		t.Fatal("expected non-nil span")
	}
	dc.End(ctx, span, OutcomeExhausted, 3, nil)
	if dc.Duration() < 0 {
		t.Error("negative duration")
	}
}

func TestDriveContext_Clock(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background())
	m, err := NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatal(err)
	}

	clock := clockz.NewFakeClock()
	dc := NewDriveContext("", "toArray", "indexable", m, nil)
	dc.SetClock(clock)
	ctx, span := dc.Start(context.Background())

	clock.Advance(250 * time.Millisecond)
	if got := dc.Duration(); got != 250*time.Millisecond {
		t.Errorf("running duration = %v, want 250ms", got)
	}
	dc.End(ctx, span, OutcomeExhausted, 2, nil)
	clock.Advance(time.Second)
	if got := dc.Duration(); got != 250*time.Millisecond {
		t.Errorf("duration after End = %v, want 250ms", got)
	}

	rm := collect(t, reader)
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			if md.Name != "seqkit.drive.duration" {
				continue
			}
			hist, ok := md.Data.(metricdata.Histogram[float64])
			if !ok || len(hist.DataPoints) != 1 {
				t.Fatalf("unexpected duration data %T", md.Data)
			}
			if sum := hist.DataPoints[0].Sum; sum != 0.25 {
				t.Errorf("duration sum = %v, want 0.25", sum)
			}
			return
		}
	}
	t.Error("seqkit.drive.duration not recorded")
}

func TestDriveContextFromContext_NotSet(t *testing.T) {
	if DriveContextFromContext(context.Background()) != nil {
		t.Error("expected nil when drive context not set")
	}
}

func TestNewTracerProvider_Sampling(t *testing.T) {
	tests := []struct {
		name      string
		rate      float64
		recording bool
	}{
		{"always", 1.0, true},
		{"never", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTracerConfig("test")
			cfg.SampleRate = tt.rate
			tp, err := NewTracerProvider(cfg)
			if err != nil {
				t.Fatal(err)
			}
			defer tp.Shutdown(context.Background())
			_, span := tp.Tracer("test").Start(context.Background(), "op")
			defer span.End()
			if span.IsRecording() != tt.recording {
				t.Errorf("IsRecording() = %v, want %v", span.IsRecording(), tt.recording)
			}
		})
	}
}

func TestTracerAndMeter(t *testing.T) {
	if Tracer("test-tracer") == nil {
		t.Fatal("expected non-nil tracer")
	}
	if Meter("test-meter") == nil {
		t.Fatal("expected non-nil meter")
	}
}

func TestSetSpanAttribute(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer tp.Shutdown(context.Background())

	ctx, span := tp.Tracer("test").Start(context.Background(), "test-attrs")
	SetSpanAttribute(ctx, "string-key", "value")
	SetSpanAttribute(ctx, "int-key", 42)
	SetSpanAttribute(ctx, "int64-key", int64(100))
	SetSpanAttribute(ctx, "float-key", 3.14)
	SetSpanAttribute(ctx, "bool-key", true)
	SetSpanAttribute(ctx, "string-slice-key", []string{"a", "b"})
	SetSpanAttribute(ctx, "unsupported-key", struct{}{})
	SetSpanError(ctx, fmt.Errorf("test error"))
	span.End()

	ended := recorder.Ended()
	if len(ended) != 1 {
		t.Fatalf("expected 1 span, got %d", len(ended))
	}
	if len(ended[0].Attributes()) != 6 {
		t.Errorf("expected 6 attributes, got %d", len(ended[0].Attributes()))
	}
	if len(ended[0].Events()) != 1 {
		t.Errorf("expected 1 error event, got %d", len(ended[0].Events()))
	}
}

func TestSetSpanAttributeNoSpan(t *testing.T) {
	SetSpanAttribute(context.Background(), "key", "value")
	SetSpanError(context.Background(), fmt.Errorf("ignored"))
}
