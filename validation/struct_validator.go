package validation

import (
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/kbukum/seqkit/errors"
)

var structValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(tagName)
	return v
})

// tagName names fields after the mapstructure key used in config files,
// falling back to the snake_case Go name.
func tagName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("mapstructure"), ",")
	if name == "" || name == "-" {
		return snakeCase(fld.Name)
	}
	return name
}

// Struct validates s using `validate` tags. Violations are reported as one
// INVALID_ARGUMENT error listing every field, with a "fields" detail.
func Struct(s any) error {
	err := structValidator().Struct(s)
	if err == nil {
		return nil
	}
	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.InvalidArgument("validation failed").WithCause(err)
	}

	fields := make([]FieldError, 0, len(violations))
	messages := make([]string, 0, len(violations))
	for _, v := range violations {
		fe := FieldError{Field: fieldPath(v.Namespace()), Message: describe(v)}
		fields = append(fields, fe)
		messages = append(messages, fe.Field+": "+fe.Message)
	}
	return errors.InvalidArgument("%s", strings.Join(messages, "; ")).WithDetail("fields", fields)
}

// fieldPath drops the root struct name from a validator namespace,
// so "Settings.logging.level" becomes "logging.level".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + e.Param()
	case "max":
		return "must be at most " + e.Param()
	case "oneof":
		return "must be one of: " + e.Param()
	case "semver":
		return "must be a semantic version"
	default:
		return "is invalid"
	}
}

// snakeCase converts a Go field name such as TraceDrives to trace_drives.
func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
