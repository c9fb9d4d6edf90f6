package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger for one named program.
type Logger struct {
	zl   zerolog.Logger
	name string
}

// New creates a logger writing to cfg.Output.
func New(cfg *Config, name string) *Logger {
	return NewWithWriter(cfg, name, cfg.writer())
}

// NewWithWriter creates a logger that writes to w instead of cfg.Output.
func NewWithWriter(cfg *Config, name string, w io.Writer) *Logger {
	zl := zerolog.New(w)
	if cfg.console() {
		zl = zerolog.New(consoleWriter(cfg, w, name))
	}
	zc := zl.Level(cfg.level()).With()
	if cfg.Timestamp {
		zc = zc.Timestamp()
	}
	if cfg.Caller {
		zc = zc.Caller()
	}
	return &Logger{zl: zc.Logger(), name: name}
}

// NewFromEnv creates a logger configured from SEQKIT_LOG_LEVEL,
// SEQKIT_LOG_FORMAT, SEQKIT_LOG_OUTPUT and SEQKIT_LOG_NO_COLOR.
func NewFromEnv(name string) *Logger {
	cfg := &Config{
		Level:   os.Getenv("SEQKIT_LOG_LEVEL"),
		Format:  os.Getenv("SEQKIT_LOG_FORMAT"),
		Output:  os.Getenv("SEQKIT_LOG_OUTPUT"),
		NoColor: os.Getenv("SEQKIT_LOG_NO_COLOR") == "true",
	}
	cfg.ApplyDefaults()
	return New(cfg, name)
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// Name returns the program name the logger was created for.
func (l *Logger) Name() string { return l.name }

func (l *Logger) derive(zl zerolog.Logger) *Logger {
	return &Logger{zl: zl, name: l.name}
}

// WithComponent returns a logger tagged with a component name.
func (l *Logger) WithComponent(name string) *Logger {
	return l.derive(l.zl.With().Str(FieldComponent, name).Logger())
}

// WithFields returns a logger with additional fields.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return l.derive(l.zl.With().Fields(fields).Logger())
}

// WithError returns a logger with an error field.
func (l *Logger) WithError(err error) *Logger {
	return l.derive(l.zl.With().Err(err).Logger())
}

// DebugEnabled reports whether debug events would be written. Drives use
// it to skip building fields and drive IDs.
func (l *Logger) DebugEnabled() bool {
	return l.zl.GetLevel() <= zerolog.DebugLevel && zerolog.GlobalLevel() <= zerolog.DebugLevel
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...map[string]interface{}) {
	emit(l.zl.Debug(), msg, fields)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...map[string]interface{}) {
	emit(l.zl.Info(), msg, fields)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...map[string]interface{}) {
	emit(l.zl.Warn(), msg, fields)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...map[string]interface{}) {
	emit(l.zl.Error(), msg, fields)
}

// emit is a no-op for disabled levels, where zerolog hands back a nil event.
func emit(event *zerolog.Event, msg string, fields []map[string]interface{}) {
	if event == nil {
		return
	}
	for _, fm := range fields {
		event.Fields(fm)
	}
	event.Msg(msg)
}
