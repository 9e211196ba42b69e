package app

import (
	"errors"
	"fmt"

	"github.com/vk/sizecalc/internal/dag"
	"github.com/vk/sizecalc/internal/report"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Inputs, either from positional arguments or from ProfilePath.
	ObjectSize  string
	BlockSize   string
	Expressions dag.Expressions
	// Requests converts the bench size into a request count of BlockSize.
	Requests bool
	// ExtraArgs are positional arguments beyond the request-count token.
	// Their presence disables the conversion.
	ExtraArgs          []string
	AllowBareReference bool
	ProfilePath        string

	Output    report.Format
	Explain   bool
	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Output == "" {
		cfg.Output = report.FormatText
	}
	if _, err := report.ParseFormat(string(cfg.Output)); err != nil {
		return nil, err
	}

	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	switch cfg.LogLevel {
	case "":
		cfg.LogLevel = "warn"
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	if cfg.ProfilePath == "" && cfg.ObjectSize == "" {
		return nil, errors.New("ObjectSize is required when no profile is given")
	}

	return &cfg, nil
}
