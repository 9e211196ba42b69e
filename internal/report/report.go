// Package report writes resolved sizing results in the supported output formats.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format selects how a Result is written.
type Format string

const (
	// FormatText is a single space-separated line: object count, cache size,
	// then bench size or request count.
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("invalid output format %q: must be 'text', 'json' or 'yaml'", s)
}

// Result holds the printed values of one calculation.
type Result struct {
	ObjectCount string `json:"object_count" yaml:"object_count"`
	CacheSize   string `json:"cache_size" yaml:"cache_size"`
	BenchSize   string `json:"bench_size" yaml:"bench_size"`
	// Requests is set when the bench size was converted into a request count.
	Requests string `json:"requests,omitempty" yaml:"requests,omitempty"`
}

// Write renders r to w in the given format.
func Write(w io.Writer, f Format, r Result) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		last := r.BenchSize
		if r.Requests != "" {
			last = r.Requests
		}
		_, err := fmt.Fprintf(w, "%s %s %s\n", r.ObjectCount, r.CacheSize, last)
		return err
	}
	return fmt.Errorf("unsupported output format %q", f)
}
