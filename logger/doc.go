// Package logger is seqkit's zerolog-backed structured logger.
//
// Sequences log through a *Logger supplied as an option; the default is
// NewNop, so nothing is written unless a host program opts in. Drive events
// are debug level and carry the drive ID plus the trace and span IDs of the
// surrounding span.
//
//	logging:
//	  level: debug
//	  format: json
//
//	log := logger.Get("sequence")
//	log.Debug("drive finished", logger.DriveFields("toArray", "indexable", 12, false, d))
package logger
