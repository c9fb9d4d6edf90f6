package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/kbukum/seqkit/config"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/version"
)

// Summary describes what Apply installed.
type Summary struct {
	Name            string
	Environment     string
	Version         string
	Library         string
	Metrics         bool
	Tracing         bool
	Strict          bool
	TraceDrives     bool
	StartupDuration time.Duration
}

// NewSummary creates a summary from the applied settings.
func NewSummary(settings *config.Settings, startup time.Duration) *Summary {
	return &Summary{
		Name:            settings.Name,
		Environment:     settings.Environment,
		Version:         settings.Version,
		Library:         version.Short(),
		Metrics:         settings.Observability.Metrics,
		Tracing:         settings.Observability.Tracing,
		Strict:          settings.Sequence.Strict,
		TraceDrives:     settings.Sequence.TraceDrives,
		StartupDuration: startup,
	}
}

// Fields returns the summary as structured log fields.
func (s *Summary) Fields() map[string]interface{} {
	return logger.Fields(
		"name", s.Name,
		"environment", s.Environment,
		logger.FieldVersion, s.Version,
		"seqkit_version", s.Library,
		"metrics", s.Metrics,
		"tracing", s.Tracing,
		"strict", s.Strict,
		"trace_drives", s.TraceDrives,
		logger.FieldDuration, s.StartupDuration.Milliseconds(),
	)
}

// Log writes the summary as a single info event.
func (s *Summary) Log(l *logger.Logger) {
	if l == nil {
		return
	}
	l.Info("seqkit runtime ready", s.Fields())
}

// String renders the summary on one line, e.g.
// "reports v1.0.0 (production) seqkit=v1.2.0 metrics=on tracing=off strict=on".
func (s *Summary) String() string {
	var b strings.Builder
	b.WriteString(s.Name)
	if s.Version != "" {
		b.WriteString(" " + s.Version)
	}
	fmt.Fprintf(&b, " (%s) seqkit=%s", s.Environment, s.Library)
	fmt.Fprintf(&b, " metrics=%s tracing=%s strict=%s", onOff(s.Metrics), onOff(s.Tracing), onOff(s.Strict))
	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
