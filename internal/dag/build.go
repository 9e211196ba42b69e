package dag

import (
	"context"
	"fmt"

	"github.com/vk/sizecalc/internal/ctxlog"
	"github.com/vk/sizecalc/internal/nodeid"
)

// Build constructs a validated dependency graph from the raw expressions.
// Format and dependency errors are reported here, before any arithmetic.
func Build(ctx context.Context, exprs Expressions, opts Options) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting graph construction.", "allow_bare_reference", opts.AllowBareReference)
	graph := newGraph()

	for _, id := range nodeid.All {
		if err := linkNode(ctx, graph, graph.Node(id), exprs.For(id), opts); err != nil {
			return nil, err
		}
	}
	logger.Debug("Build: Node linking complete.")

	if err := graph.detectCycles(); err != nil {
		return nil, fmt.Errorf("error validating dependency graph: %w", err)
	}
	logger.Debug("Build: Cycle detection passed.")

	return graph, nil
}
