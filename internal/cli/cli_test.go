package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vk/sizecalc/internal/app"
	"github.com/vk/sizecalc/internal/dag"
	"github.com/vk/sizecalc/internal/report"
)

func TestParse(t *testing.T) {
	t.Parallel()

	defaultExprs := dag.Expressions{ObjectCount: "1024", CacheSize: "co*2", BenchSize: "cs*4"}

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectErr      error
		expectCode     int
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name: "Positional arguments with defaults",
			args: []string{"4096", "512", "1024", "co*2", "cs*4"},
			expectedConfig: &app.Config{
				ObjectSize:  "4096",
				BlockSize:   "512",
				Expressions: defaultExprs,
				Output:      report.FormatText,
				LogFormat:   "text",
				LogLevel:    "warn",
			},
		},
		{
			name: "Request token enables conversion",
			args: []string{"4096", "512", "1024", "co*2", "cs*4", "req"},
			expectedConfig: &app.Config{
				ObjectSize:  "4096",
				BlockSize:   "512",
				Expressions: defaultExprs,
				Requests:    true,
				Output:      report.FormatText,
				LogFormat:   "text",
				LogLevel:    "warn",
			},
		},
		{
			name: "Extra arguments disable conversion",
			args: []string{"4096", "512", "1024", "co*2", "cs*4", "req", "extra"},
			expectedConfig: &app.Config{
				ObjectSize:  "4096",
				BlockSize:   "512",
				Expressions: defaultExprs,
				ExtraArgs:   []string{"req", "extra"},
				Output:      report.FormatText,
				LogFormat:   "text",
				LogLevel:    "warn",
			},
		},
		{
			name: "All flags",
			args: []string{
				"--allow-bare-refs",
				"-output=JSON",
				"-explain",
				"--log-level=debug",
				"--log-format=json",
				"4k", "4k", "cs/1", "1G", "cs",
			},
			expectedConfig: &app.Config{
				ObjectSize:         "4k",
				BlockSize:          "4k",
				Expressions:        dag.Expressions{ObjectCount: "cs/1", CacheSize: "1G", BenchSize: "cs"},
				AllowBareReference: true,
				Output:             report.FormatJSON,
				Explain:            true,
				LogFormat:          "json",
				LogLevel:           "debug",
			},
		},
		{
			name: "Profile shorthand",
			args: []string{"-p", "/tmp/sizes.hcl"},
			expectedConfig: &app.Config{
				ProfilePath: "/tmp/sizes.hcl",
				Output:      report.FormatText,
				LogFormat:   "text",
				LogLevel:    "warn",
			},
		},
		{
			name:       "Help flag triggers clean exit",
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "Usage:", "Expected help text to be printed")
			},
		},
		{
			name:       "No arguments prints usage and fails",
			args:       []string{},
			expectErr:  ErrMissingArgument,
			expectCode: 2,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "Usage:", "Expected help text to be printed")
			},
		},
		{
			name:       "Too few positional arguments",
			args:       []string{"4096", "512", "1024", "co*2"},
			expectErr:  ErrMissingArgument,
			expectCode: 2,
		},
		{
			name: "Same profile path in both flags",
			args: []string{"-profile", "sizes.hcl", "-p", "sizes.hcl"},
			expectedConfig: &app.Config{
				ProfilePath: "sizes.hcl",
				Output:      report.FormatText,
				LogFormat:   "text",
				LogLevel:    "warn",
			},
		},
		{
			name:       "Conflicting profile paths",
			args:       []string{"-profile", "a.hcl", "-p", "b.hcl"},
			expectCode: 2,
		},
		{
			name:       "Profile combined with positional arguments",
			args:       []string{"-profile", "sizes.hcl", "4096"},
			expectCode: 2,
		},
		{
			name:       "Invalid output format",
			args:       []string{"-output", "xml", "4096", "512", "1024", "co*2", "cs*4"},
			expectCode: 2,
		},
		{
			name:       "Invalid log level",
			args:       []string{"-log-level", "loud", "4096", "512", "1024", "co*2", "cs*4"},
			expectCode: 2,
		},
		{
			name:       "Unknown flag",
			args:       []string{"--this-is-not-a-valid-flag"},
			expectCode: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out := &bytes.Buffer{}

			cfg, shouldExit, err := Parse(tc.args, out)

			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}

			if tc.expectCode != 0 {
				require.Error(t, err)
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr), "expected an ExitError, got %T", err)
				require.Equal(t, tc.expectCode, exitErr.Code)
				if tc.expectErr != nil {
					require.ErrorIs(t, err, tc.expectErr)
				}
				require.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expectExit, shouldExit)
			if tc.expectExit {
				require.Nil(t, cfg)
				return
			}

			if diff := cmp.Diff(tc.expectedConfig, cfg); diff != "" {
				t.Errorf("Parse() config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
