package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/sizecalc/internal/app"
	"github.com/vk/sizecalc/internal/dag"
	"github.com/vk/sizecalc/internal/report"
)

// ErrMissingArgument is returned when fewer positional arguments than
// required are given.
var ErrMissingArgument = errors.New("missing argument")

// requiredArgs is the number of positional arguments without the optional
// request-count token.
const requiredArgs = 5

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// usageError builds an ExitError for invalid invocations.
func usageError(err error) *ExitError {
	return &ExitError{Code: 2, Message: err.Error(), Err: err}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("sizecalc", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
sizecalc - Resolves cache object count, cache size and bench size for a benchmark run.

Usage:
  sizecalc [options] OBJECT_SIZE BLOCK_SIZE CO CS BS [REQUESTS]
  sizecalc [options] -profile FILE

Arguments:
  OBJECT_SIZE, BLOCK_SIZE
    Sizes such as 512, 4k or 1G (K, M and G are powers of 1024).
  CO, CS, BS
    Cache objects, cache size and bench size. Each is a size or a
    dependency on another one, e.g. "co*2" or "cs/4".
  REQUESTS
    Any token. Prints the bench size as a number of BLOCK_SIZE requests.

Options:
`)
		flagSet.PrintDefaults()
	}

	profileFlag := flagSet.String("profile", "", "Path to an HCL profile holding the inputs.")
	pFlag := flagSet.String("p", "", "Path to an HCL profile holding the inputs (shorthand).")
	bareRefsFlag := flagSet.Bool("allow-bare-refs", false, "Treat a bare node name such as \"cs\" as \"cs*1\".")
	outputFlag := flagSet.String("output", "text", "Result format. Options: 'text', 'json' or 'yaml'.")
	explainFlag := flagSet.Bool("explain", false, "Print the dependency table before and after resolution to stderr.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, usageError(err)
	}
	slog.Debug("Arguments parsed successfully.", "positional", flagSet.NArg())

	profilePath := *profileFlag
	switch {
	case profilePath == "":
		profilePath = *pFlag
	case *pFlag != "" && *pFlag != profilePath:
		return nil, false, usageError(fmt.Errorf("conflicting profile paths: -profile %q and -p %q", profilePath, *pFlag))
	}

	cfg := app.Config{
		ProfilePath:        profilePath,
		AllowBareReference: *bareRefsFlag,
		Output:             report.Format(strings.ToLower(*outputFlag)),
		Explain:            *explainFlag,
		LogFormat:          strings.ToLower(*logFormatFlag),
		LogLevel:           strings.ToLower(*logLevelFlag),
	}

	positional := flagSet.Args()
	switch {
	case profilePath != "" && len(positional) > 0:
		return nil, false, usageError(errors.New("positional arguments cannot be combined with -profile"))
	case profilePath != "":
		slog.Debug("Inputs will be read from profile.", "path", profilePath)
	case len(positional) == 0:
		flagSet.Usage()
		return nil, false, usageError(fmt.Errorf("%w: expected at least %d positional arguments", ErrMissingArgument, requiredArgs))
	case len(positional) < requiredArgs:
		return nil, false, usageError(fmt.Errorf("%w: expected at least %d positional arguments, got %d", ErrMissingArgument, requiredArgs, len(positional)))
	default:
		cfg.ObjectSize = positional[0]
		cfg.BlockSize = positional[1]
		cfg.Expressions = dag.Expressions{
			ObjectCount: positional[2],
			CacheSize:   positional[3],
			BenchSize:   positional[4],
		}
		switch len(positional) {
		case requiredArgs + 1:
			cfg.Requests = true
		case requiredArgs:
		default:
			// Reported by the app once its configured logger exists.
			cfg.ExtraArgs = positional[requiredArgs:]
		}
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, usageError(err)
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
