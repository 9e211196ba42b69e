package dag

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/vk/sizecalc/internal/ctxlog"
	"github.com/vk/sizecalc/internal/nodeid"
	"github.com/vk/sizecalc/internal/units"
)

// ResolveAll resolves every node against the object size, in the order co, cs, bs.
func (g *Graph) ResolveAll(ctx context.Context, objectSize int64) error {
	for _, id := range nodeid.All {
		if err := g.Resolve(ctx, id, objectSize); err != nil {
			return err
		}
	}
	return nil
}

// Resolve computes the value of a single node and, first, of everything it
// depends on. A node that is already resolved is returned untouched.
func (g *Graph) Resolve(ctx context.Context, id nodeid.ID, objectSize int64) error {
	return g.resolve(ctx, g.Node(id), objectSize)
}

func (g *Graph) resolve(ctx context.Context, n *Node, objectSize int64) error {
	if n.Resolved {
		return nil
	}
	logger := ctxlog.FromContext(ctx).With("node", n.ID.String())
	logger.Debug("Resolving node.", "expr", n.Raw)

	value := n.Literal
	if dep := n.DependsOn; dep != nil {
		if err := g.resolve(ctx, dep, objectSize); err != nil {
			return err
		}

		var err error
		value, err = derive(n, dep, objectSize)
		if err != nil {
			return fmt.Errorf("resolving %s=%q: %w", n.ID, n.Raw, err)
		}
	}

	if err := n.settle(value); err != nil {
		return fmt.Errorf("resolving %s=%q: %w", n.ID, n.Raw, err)
	}

	if n.ID.IsSize() {
		logger.Debug("Node resolved.", "value", n.Text, "human", humanize.IBytes(uint64(n.Value)))
	} else {
		logger.Debug("Node resolved.", "value", n.Text)
	}
	return nil
}

// derive applies the arithmetic rule selected by which nodes are involved.
func derive(n, dep *Node, objectSize int64) (int64, error) {
	var base int64
	var err error

	switch {
	case n.ID == nodeid.ObjectCount:
		base, err = divide(dep.Value, objectSize)
	case dep.ID == nodeid.ObjectCount:
		base, err = multiply(dep.Value, objectSize)
	default:
		base = dep.Value
	}
	if err != nil {
		return 0, err
	}

	return n.Op.apply(base, n.Operand)
}

// settle records the final value. Derived sizes are normalized through the
// unit converter, so a dependent sees the same truncated value that is
// printed. Literals keep their exact byte count and are only rendered.
func (n *Node) settle(value int64) error {
	if !n.ID.IsSize() {
		n.Value = value
		n.Text = strconv.FormatInt(value, 10)
		n.Resolved = true
		return nil
	}

	text, err := units.Render(value)
	if err != nil {
		return err
	}
	if n.DependsOn != nil {
		value, err = units.Parse(text)
		if err != nil {
			return err
		}
	}

	n.Value = value
	n.Text = text
	n.Resolved = true
	return nil
}
