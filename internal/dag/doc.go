// Package dag builds and resolves the dependency graph between the three
// sizing quantities (object count, cache size and bench size).
//
// Each node is either a literal sized value or an expression of the form
// `<name><op><constant>` that derives its value from another node. Build
// turns the raw expressions into a Graph and rejects unknown references and
// cycles. Resolve then evaluates nodes recursively, dependencies first, and
// memoizes every result on the node so each one is computed exactly once.
//
// Arithmetic depends on which nodes are involved, because the object count is
// a dimensionless number while the other two quantities are byte sizes:
//
//	co = dep / objectSize  (op) constant
//	x  = co * objectSize   (op) constant   when x depends on co
//	x  = dep               (op) constant   otherwise
//
// All arithmetic is on int64 and truncates.
package dag
