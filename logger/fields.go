package logger

import "time"

// Field keys shared by every seqkit log event.
const (
	FieldComponent  = "component"
	FieldTraceID    = "trace_id"
	FieldSpanID     = "span_id"
	FieldDriveID    = "drive_id"
	FieldOperation  = "operation"
	FieldSourceKind = "source_kind"
	FieldPulled     = "pulled"
	FieldStopped    = "stopped"
	FieldError      = "error"
	FieldDuration   = "duration_ms"
	FieldVersion    = "version"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
// A trailing key without a value is dropped.
//
//	logger.Info("done", logger.Fields("op", "reduce", "pulled", 42))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for an operation that failed.
func ErrorFields(op string, err error) map[string]interface{} {
	return MergeWithError(Fields(FieldOperation, op), err)
}

// DriveFields describes a finished terminal drive.
func DriveFields(op, sourceKind string, pulled int, stopped bool, d time.Duration) map[string]interface{} {
	return Fields(
		FieldOperation, op,
		FieldSourceKind, sourceKind,
		FieldPulled, pulled,
		FieldStopped, stopped,
		FieldDuration, d.Milliseconds(),
	)
}

// MergeWithError adds an error field to fields. A nil err leaves them as is.
func MergeWithError(fields map[string]interface{}, err error) map[string]interface{} {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	if err != nil {
		fields[FieldError] = err.Error()
	}
	return fields
}
