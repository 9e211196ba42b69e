package dag

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/vk/sizecalc/internal/ctxlog"
	"github.com/vk/sizecalc/internal/nodeid"
	"github.com/vk/sizecalc/internal/units"
)

// separators are tried in this order; the first one present splits the expression.
var separators = []struct {
	sep string
	op  Operator
}{
	{"/", OpDivide},
	{"*", OpMultiply},
}

// operandRegex restricts operands to plain decimal constants.
var operandRegex = regexp.MustCompile(`^\d+$`)

// linkNode interprets a raw expression and fills in the node's dependency,
// operator and operand, or its literal value.
func linkNode(ctx context.Context, g *Graph, n *Node, raw string, opts Options) error {
	logger := ctxlog.FromContext(ctx).With("node", n.ID.String())
	n.Raw = raw

	for _, s := range separators {
		name, operand, found := strings.Cut(raw, s.sep)
		if !found {
			continue
		}

		depID, err := nodeid.Parse(name)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidDependency, n.ID, raw, err)
		}
		if !operandRegex.MatchString(operand) {
			return fmt.Errorf("%w: %s=%q: operand %q is not an integer constant", units.ErrInvalidFormat, n.ID, raw, operand)
		}
		value, err := strconv.ParseInt(operand, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", units.ErrInvalidFormat, n.ID, raw, err)
		}

		n.DependsOn = g.Node(depID)
		n.Op = s.op
		n.Operand = value
		logger.Debug("Linking dependency.", "depends_on", depID.String(), "op", s.op.String(), "operand", value)
		return nil
	}

	if opts.AllowBareReference && nodeid.IsName(raw) {
		depID, _ := nodeid.Parse(raw)
		n.DependsOn = g.Node(depID)
		n.Op = OpMultiply
		n.Operand = 1
		logger.Debug("Linking bare reference.", "depends_on", depID.String())
		return nil
	}

	literal, err := units.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s=%q: %w", n.ID, raw, err)
	}
	n.Literal = literal
	logger.Debug("Node is a literal.", "value", literal)
	return nil
}
