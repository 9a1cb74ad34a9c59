package patternast

import (
	"github.com/wke/ogpm/lattice"
	"github.com/wke/ogpm/layout"
)

// Graph is a rooted Layout Graph with a per-node type annotation —
// either a *lattice.Class or a *lattice.ValueSet — serving as both the
// Pattern Graph of spec.md §3 and the frozen view produced by
// state.Extract.
type Graph struct {
	Layout *layout.Graph
	types  map[layout.Node]lattice.Type
}

// NewGraph wraps lg with an empty type annotation.
func NewGraph(lg *layout.Graph) *Graph {
	return &Graph{Layout: lg, types: make(map[layout.Node]lattice.Type)}
}

// SetType annotates n with t.
func (g *Graph) SetType(n layout.Node, t lattice.Type) {
	g.types[n] = t
}

// TypeOf returns n's annotated type, or nil if n has none.
func (g *Graph) TypeOf(n layout.Node) lattice.Type {
	return g.types[n]
}
