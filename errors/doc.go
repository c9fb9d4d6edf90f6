// Package errors provides the error taxonomy shared by every seqkit package.
//
// All failures are reported as *AppError values carrying a machine-readable
// ErrorCode. Construction problems (a nil mapper, a non-finite step, a
// non-iterable source handed to a strict constructor) use
// ErrCodeInvalidArgument; reducing an empty sequence without a seed uses
// ErrCodeEmptyReduction.
//
// Errors compare by code, so the exported sentinels work with errors.Is:
//
//	if errors.Is(err, seqerrors.ErrInvalidArgument) { ... }
package errors
