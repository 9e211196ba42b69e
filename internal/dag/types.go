package dag

import (
	"errors"

	"github.com/vk/sizecalc/internal/nodeid"
)

var (
	// ErrInvalidDependency is returned when an expression references a name
	// that is not a known node.
	ErrInvalidDependency = errors.New("invalid dependency")
	// ErrDivideByZero is returned when resolution divides by zero.
	ErrDivideByZero = errors.New("divide by zero")
	// ErrCyclicDependency is returned when nodes depend on each other in a loop.
	ErrCyclicDependency = errors.New("cyclic dependency")
)

// Operator is the arithmetic relation between a node and its dependency.
type Operator int

const (
	// OpNone marks a literal node.
	OpNone Operator = iota
	// OpDivide divides by the operand.
	OpDivide
	// OpMultiply multiplies by the operand.
	OpMultiply
)

// String returns the operator symbol as written in expressions.
func (o Operator) String() string {
	switch o {
	case OpDivide:
		return "/"
	case OpMultiply:
		return "*"
	}
	return ""
}

// Node is one sizing quantity. Fields describing the expression are set by
// Build; Value, Text and Resolved are filled in once by Resolve.
type Node struct {
	ID nodeid.ID
	// Raw is the expression exactly as given.
	Raw string
	// DependsOn is nil for literal nodes.
	DependsOn *Node
	Op        Operator
	// Operand is the constant paired with Op.
	Operand int64
	// Literal is the parsed byte (or object) count of a literal node.
	Literal int64

	// Value is the resolved bytes, or the object count for co.
	Value int64
	// Text is Value as printed: a sized value, or a plain integer for co.
	Text     string
	Resolved bool
}

// Graph owns the three nodes for one calculation. It is not safe for
// concurrent use.
type Graph struct {
	nodes [len(nodeid.All)]*Node
}

// Expressions holds the raw expression for each node.
type Expressions struct {
	ObjectCount string
	CacheSize   string
	BenchSize   string
}

// For returns the expression of the given node.
func (e Expressions) For(id nodeid.ID) string {
	switch id {
	case nodeid.ObjectCount:
		return e.ObjectCount
	case nodeid.CacheSize:
		return e.CacheSize
	case nodeid.BenchSize:
		return e.BenchSize
	}
	return ""
}

// Options tunes how expressions are interpreted.
type Options struct {
	// AllowBareReference lets an expression that is only a node name, such as
	// "cs", stand for "cs*1".
	AllowBareReference bool
}
