package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Argument errors
const (
	// ErrCodeInvalidArgument indicates a required function or numeric argument was unusable.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeEmptyReduction indicates a reduce without a seed ran over an empty sequence.
	ErrCodeEmptyReduction ErrorCode = "EMPTY_REDUCTION"
)

// Setup errors
const (
	// ErrCodeInvalidConfig indicates settings failed to load or validate.
	ErrCodeInvalidConfig ErrorCode = "CONFIG_INVALID"
)

var codeNames = map[ErrorCode]string{
	ErrCodeInvalidArgument: "invalid argument",
	ErrCodeEmptyReduction:  "empty reduction",
	ErrCodeInvalidConfig:   "invalid configuration",
}

// Describe returns a short human-readable name for a code.
func Describe(code ErrorCode) string {
	if name, ok := codeNames[code]; ok {
		return name
	}
	return string(code)
}
