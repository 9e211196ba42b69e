package dag

import (
	"fmt"
	"math"

	"github.com/vk/sizecalc/internal/units"
)

// detectCycles follows each node's dependency chain and fails if a node is
// reached twice on the same walk.
func (g *Graph) detectCycles() error {
	visited := make(map[*Node]bool)

	for _, start := range g.Nodes() {
		visiting := make(map[*Node]bool)
		for n := start; n != nil && !visited[n]; n = n.DependsOn {
			if visiting[n] {
				return fmt.Errorf("%w involving '%s'", ErrCyclicDependency, n.ID)
			}
			visiting[n] = true
		}
		for n := range visiting {
			visited[n] = true
		}
	}
	return nil
}

// apply combines lhs with rhs. Division truncates toward zero.
func (o Operator) apply(lhs, rhs int64) (int64, error) {
	switch o {
	case OpDivide:
		return divide(lhs, rhs)
	case OpMultiply:
		return multiply(lhs, rhs)
	}
	return lhs, nil
}

func divide(lhs, rhs int64) (int64, error) {
	if rhs == 0 {
		return 0, fmt.Errorf("%w: %d / 0", ErrDivideByZero, lhs)
	}
	return lhs / rhs, nil
}

// multiply fails instead of wrapping around; operands are never negative.
func multiply(lhs, rhs int64) (int64, error) {
	if lhs != 0 && rhs > math.MaxInt64/lhs {
		return 0, fmt.Errorf("%w: %d * %d overflows 64-bit bytes", units.ErrValueTooLarge, lhs, rhs)
	}
	return lhs * rhs, nil
}
