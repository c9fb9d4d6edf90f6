package config

import (
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/validation"
)

// Settings is the configuration a host program loads for seqkit.
//
// Example config.yml:
//
//	name: reports
//	environment: production
//	logging:
//	  level: debug
//	  format: json
//	observability:
//	  metrics: true
//	sequence:
//	  strict: true
//	  trace_drives: true
type Settings struct {
	Name          string              `yaml:"name" mapstructure:"name" validate:"required"`
	Environment   string              `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Version       string              `yaml:"version" mapstructure:"version" validate:"omitempty,semver"`
	Logging       logger.Config       `yaml:"logging" mapstructure:"logging"`
	Observability ObservabilityConfig `yaml:"observability" mapstructure:"observability"`
	Sequence      SequenceConfig      `yaml:"sequence" mapstructure:"sequence"`
}

// ObservabilityConfig selects which OpenTelemetry signals drives report.
type ObservabilityConfig struct {
	Metrics             bool   `yaml:"metrics" mapstructure:"metrics"`
	Tracing             bool   `yaml:"tracing" mapstructure:"tracing"`
	InstrumentationName string `yaml:"instrumentation_name" mapstructure:"instrumentation_name" validate:"required"`
}

// SequenceConfig holds the defaults installed for every new sequence.
type SequenceConfig struct {
	// Strict makes sequence.New reject non-iterable sources.
	Strict bool `yaml:"strict" mapstructure:"strict"`
	// TraceDrives logs a debug event after every terminal drive.
	TraceDrives bool `yaml:"trace_drives" mapstructure:"trace_drives"`
}

// ApplyDefaults fills unset fields.
func (c *Settings) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "seqkit"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Observability.InstrumentationName == "" {
		c.Observability.InstrumentationName = observability.DefaultInstrumentationName
	}
	c.Logging.ApplyDefaults()
}

// Validate checks struct tags and the logging section.
func (c *Settings) Validate() error {
	if err := validation.Struct(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}

// YAML renders the effective settings in config.yml form.
func (c *Settings) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal settings: %w", err)
	}
	return out, nil
}
