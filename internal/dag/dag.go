package dag

import (
	"github.com/vk/sizecalc/internal/nodeid"
)

// newGraph returns a graph with one empty node per identifier.
func newGraph() *Graph {
	g := &Graph{}
	for _, id := range nodeid.All {
		g.nodes[id] = &Node{ID: id}
	}
	return g
}

// Node returns the node with the given identifier.
func (g *Graph) Node(id nodeid.ID) *Node {
	return g.nodes[id]
}

// Nodes returns every node in resolution order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for _, id := range nodeid.All {
		out = append(out, g.nodes[id])
	}
	return out
}

// Dependents returns the nodes that depend directly on id.
func (g *Graph) Dependents(id nodeid.ID) []nodeid.ID {
	var out []nodeid.ID
	for _, n := range g.Nodes() {
		if n.DependsOn != nil && n.DependsOn.ID == id {
			out = append(out, n.ID)
		}
	}
	return out
}
