// Package validation provides argument guards and settings validation.
//
// Guards run when a stage or generator is built, before any element of a
// source is touched. They collect failures and report them as a single
// INVALID_ARGUMENT AppError.
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Callable("mapper", fn).Finite("step", step)
//	if err := v.Err(); err != nil { ... }
//
// # Struct Tag Validation
//
//	type Settings struct {
//	    Level string `validate:"oneof=debug info"`
//	}
//	err := validation.Struct(cfg)
package validation
