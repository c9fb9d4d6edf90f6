// Package config loads seqkit Settings from YAML files, .env files and
// environment variables.
//
// # Usage
//
//	settings, err := config.Load("reports")
//
// LoadConfig resolves config.yml and .env files from standard locations
// (or explicit paths given as options), overlays environment variables with
// Viper, and unmarshals into any struct:
//
//	var cfg MyConfig
//	err := config.LoadConfig("reports", &cfg, config.WithConfigFile("deploy/reports.yml"))
//
// Environment variables map onto nested keys by splitting on underscores:
// LOGGING_LEVEL sets logging.level and SEQUENCE_TRACE_DRIVES sets
// sequence.trace_drives. WithEnvPrefix restricts binding to variables with
// a prefix such as SEQKIT_.
package config
