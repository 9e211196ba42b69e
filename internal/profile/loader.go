package profile

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/sizecalc/internal/ctxlog"
	"github.com/vk/sizecalc/internal/dag"
	"github.com/zclconf/go-cty/cty"
)

// Profile is the decoded, format-agnostic content of a profile file.
type Profile struct {
	ObjectSize         string
	BlockSize          string
	Expressions        dag.Expressions
	Requests           bool
	AllowBareReference bool
}

// fileRoot mirrors the attributes accepted at the top level of a profile.
type fileRoot struct {
	ObjectSize    string `hcl:"object_size"`
	BlockSize     string `hcl:"block_size"`
	CacheObjects  string `hcl:"cache_objects"`
	CacheSize     string `hcl:"cache_size"`
	BenchSize     string `hcl:"bench_size"`
	Requests      *bool  `hcl:"requests,optional"`
	AllowBareRefs *bool  `hcl:"allow_bare_refs,optional"`
}

// Loader reads profile files.
type Loader struct {
	environ func() []string
}

// NewLoader creates a loader that exposes the process environment as `env`.
func NewLoader() *Loader {
	return &Loader{environ: os.Environ}
}

// Load parses and decodes the profile at path.
func (l *Loader) Load(ctx context.Context, path string) (*Profile, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Profile loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, l.evalContext(), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	p := &Profile{
		ObjectSize: root.ObjectSize,
		BlockSize:  root.BlockSize,
		Expressions: dag.Expressions{
			ObjectCount: root.CacheObjects,
			CacheSize:   root.CacheSize,
			BenchSize:   root.BenchSize,
		},
		Requests:           root.Requests != nil && *root.Requests,
		AllowBareReference: root.AllowBareRefs != nil && *root.AllowBareRefs,
	}

	logger.Debug("Profile loaded.", "object_size", p.ObjectSize, "block_size", p.BlockSize, "requests", p.Requests)
	return p, nil
}

// evalContext exposes environment variables as attributes of `env`.
func (l *Loader) evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, e := range l.environ() {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) == 2 && pair[0] != "" {
			vars[pair[0]] = cty.StringVal(pair[1])
		}
	}

	env := cty.EmptyObjectVal
	if len(vars) > 0 {
		env = cty.ObjectVal(vars)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
	}
}
