package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Sentinels for use with errors.Is. Matching is by code only.
var (
	ErrInvalidArgument = &AppError{Code: ErrCodeInvalidArgument, Message: Describe(ErrCodeInvalidArgument)}
	ErrEmptyReduction  = &AppError{Code: ErrCodeEmptyReduction, Message: Describe(ErrCodeEmptyReduction)}
	ErrInvalidConfig   = &AppError{Code: ErrCodeInvalidConfig, Message: Describe(ErrCodeInvalidConfig)}
)

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// Is reports whether target is an *AppError with the same code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Constructors ---

// InvalidArgument creates an AppError for an unusable argument.
// The message is built with fmt.Sprintf semantics.
func InvalidArgument(format string, args ...any) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidArgument,
		Message: fmt.Sprintf(format, args...),
	}
}

// EmptyReduction creates an AppError for a seedless reduce over no elements.
func EmptyReduction() *AppError {
	return &AppError{
		Code:    ErrCodeEmptyReduction,
		Message: "reduce of empty sequence with no initial value",
	}
}

// InvalidConfig creates an AppError wrapping a settings failure.
func InvalidConfig(cause error) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidConfig,
		Message: "settings could not be loaded or are invalid",
		Cause:   cause,
	}
}

// --- Inspection ---

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf returns the code of the first AppError in err's chain, or "".
func CodeOf(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ""
}

// IsInvalidArgument reports whether err carries ErrCodeInvalidArgument.
func IsInvalidArgument(err error) bool { return CodeOf(err) == ErrCodeInvalidArgument }

// IsEmptyReduction reports whether err carries ErrCodeEmptyReduction.
func IsEmptyReduction(err error) bool { return CodeOf(err) == ErrCodeEmptyReduction }
