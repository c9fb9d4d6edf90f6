package validation

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/kbukum/seqkit/errors"
)

// Validator collects validation errors.
type Validator struct {
	errors []FieldError
}

// FieldError represents a validation error for a specific argument or field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// New creates a new Validator.
func New() *Validator {
	return &Validator{
		errors: make([]FieldError, 0),
	}
}

// AddError adds a field error.
func (v *Validator) AddError(field, message string) {
	v.errors = append(v.errors, FieldError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns all validation errors.
func (v *Validator) Errors() []FieldError {
	return v.errors
}

// Validate returns an AppError if there are validation errors, nil otherwise.
func (v *Validator) Validate() *errors.AppError {
	if !v.HasErrors() {
		return nil
	}

	messages := make([]string, len(v.errors))
	for i, e := range v.errors {
		messages[i] = fmt.Sprintf("%s %s", e.Field, e.Message)
	}

	appErr := errors.InvalidArgument("%s", strings.Join(messages, "; "))
	appErr.Details = map[string]any{
		"fields": v.errors,
	}

	return appErr
}

// Err is Validate as a plain error; it is untyped nil when nothing failed.
func (v *Validator) Err() error {
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

// Callable checks that fn is a non-nil function value.
func (v *Validator) Callable(field string, fn any) *Validator {
	if !IsCallable(fn) {
		v.AddError(field, "must be a function")
	}
	return v
}

// Finite checks that a number is neither NaN nor infinite.
func (v *Validator) Finite(field string, value float64) *Validator {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		v.AddError(field, "must be a finite number")
	}
	return v
}

// NonZero checks that a number is not zero.
func (v *Validator) NonZero(field string, value float64) *Validator {
	if value == 0 {
		v.AddError(field, "must not be zero")
	}
	return v
}

// Min checks if a number meets minimum value.
func (v *Validator) Min(field string, value, minVal int) *Validator {
	if value < minVal {
		v.AddError(field, fmt.Sprintf("must be at least %d", minVal))
	}
	return v
}

// Custom applies a custom validation condition.
func (v *Validator) Custom(condition bool, field, message string) *Validator {
	if !condition {
		v.AddError(field, message)
	}
	return v
}

// IsCallable reports whether fn holds a non-nil func value.
// A typed nil func stored in an interface is not callable.
func IsCallable(fn any) bool {
	if fn == nil {
		return false
	}
	rv := reflect.ValueOf(fn)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

// Callable validates a single function argument.
func Callable(field string, fn any) error {
	return New().Callable(field, fn).Err()
}

// Finite validates a single numeric argument.
func Finite(field string, value float64) error {
	return New().Finite(field, value).Err()
}
