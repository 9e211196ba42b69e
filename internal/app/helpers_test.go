package app

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/vk/sizecalc/internal/profile"
)

// setupAppTest creates an App with captured output and log streams.
func setupAppTest(t *testing.T, cfg Config, loader ProfileLoader) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	config, err := NewConfig(cfg)
	if err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	testApp := NewApp(out, logs, config, loader)

	t.Cleanup(func() {
		if os.Getenv("SIZECALC_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	return testApp, out, logs
}

// staticLoader returns a fixed profile regardless of path.
type staticLoader struct {
	profile *profile.Profile
	err     error
	paths   []string
}

func (l *staticLoader) Load(_ context.Context, path string) (*profile.Profile, error) {
	l.paths = append(l.paths, path)
	return l.profile, l.err
}
